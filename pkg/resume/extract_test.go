package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Maria Santos
maria.santos@example.com | 555-123-4567
Austin, TX
linkedin.com/in/maria-santos

Professional Summary
Detail-oriented virtual assistant with 6 years of administrative support
experience for remote executives across three time zones.

Experience

Senior Virtual Assistant
Remote Office Partners
2020-2024
• Managed calendars for 12 executives, reducing scheduling conflicts by 40%
• Coordinated travel arrangements for 25+ international trips annually

Administrative Assistant
Brightline Consulting
2017-2020
• Organized weekly team meetings and maintained minutes for 30+ participants

Education
BA in Business Administration
State University
Graduated May 2017, GPA: 3.8

Skills
Calendar Management, Email Management, Data Entry, CRM, Asana, Trello, Slack
`

func TestExtractFullResume(t *testing.T) {
	rec := Extract(sampleResume)

	assert.Equal(t, "Maria Santos", rec.Name)
	assert.Equal(t, "maria.santos@example.com", rec.Email)
	assert.Equal(t, "555-123-4567", rec.Phone)
	assert.Equal(t, "Austin, TX", rec.Location)
	assert.Equal(t, "linkedin.com/in/maria-santos", rec.ProfileLink)
	assert.Contains(t, rec.Summary, "Detail-oriented virtual assistant")

	require.Len(t, rec.Experiences, 2)
	first := rec.Experiences[0]
	assert.Equal(t, "Senior Virtual Assistant", first.Role)
	assert.Equal(t, "Remote Office Partners", first.Company)
	assert.Equal(t, "2020-2024", first.Duration)
	require.Len(t, first.Responsibilities, 2)
	assert.Equal(t, "Managed calendars for 12 executives, reducing scheduling conflicts by 40%", first.Responsibilities[0])

	require.Len(t, rec.Education, 1)
	assert.Equal(t, "BA in Business Administration", rec.Education[0].Degree)
	assert.Equal(t, "State University", rec.Education[0].Institution)
	assert.Equal(t, "May 2017", rec.Education[0].GraduationDate)
	assert.Equal(t, "3.8", rec.Education[0].GPA)

	assert.Equal(t, []string{
		"Calendar Management", "Email Management", "Data Entry", "CRM",
		"Asana", "Trello", "Slack",
	}, rec.Skills)
}

func TestExtractIsIdempotent(t *testing.T) {
	first := Extract(sampleResume)
	second := Extract(sampleResume)
	assert.Equal(t, first, second)
}

func TestExtractEmptyInput(t *testing.T) {
	rec := Extract("")

	assert.Empty(t, rec.Name)
	assert.Empty(t, rec.Email)
	assert.Empty(t, rec.Summary)
	assert.Empty(t, rec.Experiences)
	assert.Equal(t, []string{}, rec.Skills)
	// Education carries a sentinel entry instead of being empty.
	require.Len(t, rec.Education, 1)
	assert.Equal(t, NoEducation, rec.Education[0].Degree)
}

func TestExtractNameRules(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"two words", "Jane Doe\n", "Jane Doe"},
		{"four words", "Jane Marie van Doe\n", "Jane Marie van Doe"},
		{"single word rejected", "Jane\n", ""},
		{"five words rejected", "One Two Three Four Five\n", ""},
		{"email line rejected", "jane@example.com\n", ""},
		{"separator rejected", "Jane Doe • Designer\n", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Extract(tc.text).Name)
		})
	}
}

func TestExtractInlineSectionHeader(t *testing.T) {
	rec := Extract("Jane Doe\n\nSkills: Asana, Trello, Slack\n")
	assert.Equal(t, []string{"Asana", "Trello", "Slack"}, rec.Skills)
}

func TestExtractSkillsDedupeCaseInsensitive(t *testing.T) {
	rec := Extract("Jane Doe\n\nSkills\nExcel, excel, EXCEL, Asana, asana, Trello\n")
	assert.Equal(t, []string{"Excel", "Asana", "Trello"}, rec.Skills)
}

func TestExtractSkillsLengthBand(t *testing.T) {
	long := "This is a deliberately overlong skill token that keeps going well past the hundred character limit for one entry"
	rec := Extract("Jane Doe\n\nSkills\nGo, " + long + ", Excel\n")
	assert.Equal(t, []string{"Excel"}, rec.Skills)
}

func TestExtractExperienceSentinels(t *testing.T) {
	text := `Jane Doe

Experience

Office Coordinator
Acme Corporation
Responsible for the smooth running of a busy office floor
`
	rec := Extract(text)
	require.Len(t, rec.Experiences, 1)
	exp := rec.Experiences[0]
	assert.Equal(t, NoDuration, exp.Duration)
	assert.Equal(t, []string{NoResponsibilities}, exp.Responsibilities)
}

func TestExtractExperienceCap(t *testing.T) {
	text := "Jane Doe\n\nExperience\n"
	for i := 0; i < 7; i++ {
		text += "\nSome Role Title Here\nSome Company Name Here\n2020-2024\n"
	}
	rec := Extract(text)
	assert.LessOrEqual(t, len(rec.Experiences), 5)
}

func TestExtractFirstHeaderWins(t *testing.T) {
	text := `Jane Doe

Skills
Asana, Trello

Skills
Cooking, Baking
`
	rec := Extract(text)
	assert.Equal(t, []string{"Asana", "Trello"}, rec.Skills)
}
