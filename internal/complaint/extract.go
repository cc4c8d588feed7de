package complaint

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	mobileRe = regexp.MustCompile(`\b\d{10}\b`)
	emailRe  = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	ageRe    = regexp.MustCompile(`\b\d{1,3}\b`)
)

// Replies that carry no extractable content regardless of field.
var contentless = map[string]struct{}{
	"ok":   {},
	"okok": {},
	"yes":  {},
	"no":   {},
	"yeah": {},
	"yep":  {},
}

var genderKeywords = []string{"male", "female", "man", "woman", "boy", "girl", "m", "f"}

// Extract pulls a value for the named field out of free-form user text.
// It is pure: no I/O, no state. The second return is false when the text
// does not plausibly answer the field's question.
func Extract(text, field string) (string, bool) {
	text = strings.TrimSpace(text)

	if utf8.RuneCountInString(text) < 2 {
		return "", false
	}
	if _, skip := contentless[strings.ToLower(text)]; skip {
		return "", false
	}

	switch field {
	case "mobile":
		if m := mobileRe.FindString(text); m != "" {
			return m, true
		}
		return "", false

	case "email":
		if m := emailRe.FindString(text); m != "" {
			return m, true
		}
		return "", false

	case "age":
		// First in-range number wins; out-of-range runs are skipped, not
		// grounds for rejection.
		for _, m := range ageRe.FindAllString(text, -1) {
			if n, err := strconv.Atoi(m); err == nil && n >= 1 && n <= 120 {
				return m, true
			}
		}
		return "", false

	case "name":
		if utf8.RuneCountInString(text) > 2 && containsLetter(text) {
			// Casers carry transform state, so build one per call.
			return cases.Title(language.English).String(text), true
		}
		return "", false

	case "gender":
		lower := strings.ToLower(text)
		for _, kw := range genderKeywords {
			if strings.Contains(lower, kw) {
				return capitalize(text), true
			}
		}
		return "", false
	}

	// Any other field: accept substantial free text as-is.
	if utf8.RuneCountInString(text) > 2 {
		return text, true
	}
	return "", false
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	lower := strings.ToLower(s)
	r, size := utf8.DecodeRuneInString(lower)
	if r == utf8.RuneError {
		return lower
	}
	return string(unicode.ToUpper(r)) + lower[size:]
}
