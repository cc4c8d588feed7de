package complaint

import "fmt"

// Visible messages that never go through the generator.
const (
	msgAllCollected = "Thank you! I have collected all the necessary information for your robbery complaint. Let me save this to our records."

	msgAlreadyComplete = "Your complaint has already been recorded. Please reset the session to file another complaint."

	msgWelcomeBack = "Welcome back! Please continue with your complaint."

	msgResetDone = "Chat session reset successfully"

	msgSaveFailed = "Sorry, your complaint could not be saved right now. Your answers are kept; please try again later."
)

func msgSaved(complaintID string) string {
	return fmt.Sprintf("Your complaint has been saved with ID: %s", complaintID)
}

// Generator prompts. Each one scopes the model to the assistant role and
// embeds the conversation slice it needs.

const greetingPromptTmpl = `You are an official police complaint registration assistant. A citizen has come to file a robbery/theft complaint. This is a legitimate government service.

Greet them professionally and ask them: %s

Explain this is standard police procedure for crime reporting. Keep it brief and official.`

const acknowledgePromptTmpl = `You are a helpful police complaint assistant. The user just provided: "%s" for %s.

Now you need to ask them: %s

Start with a brief acknowledgment like "Thank you" and then ask the next question naturally and professionally. Keep it brief and clear.`

const clarifyPromptTmpl = `You are a helpful police complaint assistant. The user said: "%s"

You need to ask them: %s

The user may not have understood or may need clarification. Ask the question clearly and professionally. Be helpful and patient.`

func greetingPrompt(first Field) string {
	return fmt.Sprintf(greetingPromptTmpl, first.Question)
}

func acknowledgePrompt(value string, prev, next Field) string {
	return fmt.Sprintf(acknowledgePromptTmpl, value, prev.Key, next.Question)
}

func clarifyPrompt(userText string, target Field) string {
	return fmt.Sprintf(clarifyPromptTmpl, userText, target.Question)
}

// Fixed template texts used whenever the generator is distrusted. Keyed by
// the built-in schema; fields from a custom schema fall back to their plain
// question text.
var fallbackTemplates = map[string]string{
	"name":                            "Let's get started. What is your full name?",
	"mobile":                          "Thank you. What is your mobile number?",
	"email":                           "Got it. What is your email address?",
	"age":                             "Thank you. What is your age?",
	"gender":                          "Noted. What is your gender?",
	"father_name":                     "Thank you. What is your father's name?",
	"present_address":                 "Noted. What is your present address?",
	"district":                        "Thank you. Which district do you live in?",
	"nearest_police_station_home":     "Noted. What is the nearest police station to your house?",
	"incident_location":               "Thank you. Where did the robbery/theft happen?",
	"stolen_items":                    "I'm sorry to hear that. What was stolen from you?",
	"robber_description":              "Thank you. Can you describe how the robbers looked like?",
	"nearest_police_station_incident": "Noted. What is the nearest police station to where the incident occurred?",
	"incident_description":            "Almost done. Please provide a brief description of the entire incident.",
}

func fallbackFor(f Field) string {
	if t, ok := fallbackTemplates[f.Key]; ok {
		return t
	}
	return "Thank you. " + f.Question
}

func fallbackGreeting(first Field) string {
	return "Hello! I'll help you file a robbery complaint. " + first.Question
}
