package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Monday.com", "monday com"},
		{"  Google   Workspace ", "google workspace"},
		{"CRM (HubSpot, Salesforce)", "crm hubspot salesforce"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Normalize(tc.in))
	}
}

func TestContainsPhraseSurvivesPunctuation(t *testing.T) {
	text := Normalize("Proficient in Monday.com and Google Workspace.")
	assert.True(t, ContainsPhrase(text, Normalize("monday.com")))
	assert.True(t, ContainsPhrase(text, Normalize("google workspace")))
	assert.False(t, ContainsPhrase(text, Normalize("asana")))
	assert.False(t, ContainsPhrase(text, ""))
}

func TestCountPhrase(t *testing.T) {
	text := Normalize("Calendar management and more calendar management.")
	assert.Equal(t, 2, CountPhrase(text, Normalize("calendar management")))
	assert.Equal(t, 0, CountPhrase(text, Normalize("data entry")))
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 3, WordCount("  one two   three "))
}
