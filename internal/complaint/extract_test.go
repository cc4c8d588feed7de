package complaint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMobile(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"bare number", "9876543210", "9876543210", true},
		{"embedded in sentence", "call me at 9876543210 please", "9876543210", true},
		{"eleven digits is not a mobile", "98765432101", "", false},
		{"nine digits is not a mobile", "987654321", "", false},
		{"no digits", "I don't remember", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Extract(tt.text, "mobile")
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractEmail(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"plain address", "john.smith@example.com", "john.smith@example.com", true},
		{"embedded", "reach me on j_s+1@mail.example.org thanks", "j_s+1@mail.example.org", true},
		{"missing tld", "john@example", "", false},
		{"not an email", "I use carrier pigeons", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Extract(tt.text, "email")
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractAge(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"bare age", "34", "34", true},
		{"embedded", "I am 27 years old", "27", true},
		{"out-of-range run skipped", "apartment 500, I am 30", "30", true},
		{"zero skipped", "0 or maybe 45", "45", true},
		{"only out-of-range", "I am 500 years old", "", false},
		{"no number", "none of your business", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Extract(tt.text, "age")
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractName(t *testing.T) {
	got, ok := Extract("john smith", "name")
	assert.True(t, ok)
	assert.Equal(t, "John Smith", got)

	got, ok = Extract("  John Smith  ", "name")
	assert.True(t, ok)
	assert.Equal(t, "John Smith", got)

	_, ok = Extract("12", "name")
	assert.False(t, ok, "digits only is not a name")

	_, ok = Extract("ab", "name")
	assert.False(t, ok, "too short")
}

func TestExtractGender(t *testing.T) {
	got, ok := Extract("male", "gender")
	assert.True(t, ok)
	assert.Equal(t, "Male", got)

	got, ok = Extract("FEMALE", "gender")
	assert.True(t, ok)
	assert.Equal(t, "Female", got)

	_, ok = Extract("dog", "gender")
	assert.False(t, ok)
}

func TestExtractGenericField(t *testing.T) {
	got, ok := Extract("a gold chain and my phone", "stolen_items")
	assert.True(t, ok)
	assert.Equal(t, "a gold chain and my phone", got)

	_, ok = Extract("ab", "stolen_items")
	assert.False(t, ok, "too short for a substantial answer")
}

func TestExtractRejectsContentlessReplies(t *testing.T) {
	for _, text := range []string{"ok", "OK", "okok", "yes", "no", "yeah", "Yep", "x", ""} {
		t.Run(text, func(t *testing.T) {
			for _, field := range []string{"name", "mobile", "stolen_items"} {
				_, ok := Extract(text, field)
				assert.False(t, ok, "field %s should reject %q", field, text)
			}
		})
	}
}
