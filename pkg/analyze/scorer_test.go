package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resumeq/pkg/resume"
)

func sampleRecord() resume.Record {
	return resume.Record{
		Name:  "Maria Santos",
		Email: "maria.santos@example.com",
		Phone: "555-123-4567",
		Summary: "Detail-oriented virtual assistant with 6 years of administrative support " +
			"experience for remote executives. Skilled in calendar management, email management " +
			"and CRM upkeep, with a track record of reducing scheduling conflicts and keeping " +
			"inboxes at zero. Comfortable across Google Workspace, Asana and Slack.",
		Experiences: []resume.Experience{
			{
				Role:     "Senior Virtual Assistant",
				Company:  "Remote Office Partners",
				Duration: "2020-2024",
				Responsibilities: []string{
					"Managed calendars for 12 executives, reducing scheduling conflicts by 40%",
					"Coordinated travel arrangements for 25+ international trips annually",
					"Implemented a shared inbox workflow that cut email response time by 35%",
					"Processed expense reports totaling $250K per quarter with zero discrepancies",
				},
			},
			{
				Role:     "Administrative Assistant",
				Company:  "Brightline Consulting",
				Duration: "2017-2020",
				Responsibilities: []string{
					"Organized weekly team meetings and maintained minutes for 30+ participants",
					"Streamlined the client onboarding checklist, shortening setup time by 20%",
					"Maintained CRM records for 500+ accounts with 99% data accuracy",
				},
			},
		},
		Education: []resume.Education{
			{Degree: "BA in Business Administration", Institution: "State University", GraduationDate: "2017"},
		},
		Skills: []string{
			"Calendar Management", "Email Management", "Data Entry", "CRM",
			"Google Workspace", "Asana", "Trello", "Slack", "Zoom",
			"Microsoft Office", "Excel", "PowerPoint", "Bookkeeping",
		},
	}
}

func TestAnalyzeOverallIsExactSum(t *testing.T) {
	rep := NewAnalyzer().Analyze(sampleRecord())

	sum := rep.Scores.Formatting + rep.Scores.ContentQuality +
		rep.Scores.ATSOptimization + rep.Scores.SkillsSection +
		rep.Scores.ProfessionalSummary
	assert.Equal(t, sum, rep.Scores.Overall)
	assert.LessOrEqual(t, rep.Scores.Overall, 100.0)
	assert.LessOrEqual(t, rep.Scores.Formatting, 20.0)
	assert.LessOrEqual(t, rep.Scores.ContentQuality, 30.0)
	assert.LessOrEqual(t, rep.Scores.ATSOptimization, 25.0)
	assert.LessOrEqual(t, rep.Scores.SkillsSection, 15.0)
	assert.LessOrEqual(t, rep.Scores.ProfessionalSummary, 10.0)
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	a := NewAnalyzer()
	rec := sampleRecord()
	first := a.Analyze(rec)
	second := a.Analyze(rec)
	assert.Equal(t, first, second)
}

func TestAnalyzeEmptySummaryScoresZero(t *testing.T) {
	rec := sampleRecord()
	rec.Summary = ""

	rep := NewAnalyzer().Analyze(rec)

	assert.Equal(t, 0.0, rep.Scores.ProfessionalSummary)

	var summaryIssues []Issue
	for _, i := range rep.Issues {
		if i.Category == CategorySummary {
			summaryIssues = append(summaryIssues, i)
		}
	}
	require.Len(t, summaryIssues, 1)
	assert.Equal(t, SeverityHigh, summaryIssues[0].Severity)

	summarySuggestions := 0
	for _, s := range rep.Suggestions {
		if s.Category == CategorySummary {
			summarySuggestions++
		}
	}
	assert.Equal(t, 1, summarySuggestions)
}

func TestAnalyzeSkillsRelevanceRatio(t *testing.T) {
	rec := sampleRecord()
	// 15 skills, exactly 6 of them role-relevant: 5 + 5 + (6/15)*5 = 12.0.
	rec.Skills = []string{
		"Asana", "Trello", "Slack", "Zoom", "Excel", "Data Entry",
		"Cooking", "Gardening", "Chess", "Painting", "Violin",
		"Pottery", "Surfing", "Archery", "Juggling",
	}

	rep := NewAnalyzer().Analyze(rec)
	assert.InDelta(t, 12.0, rep.Scores.SkillsSection, 1e-9)
}

func TestAnalyzeEmptySkillsShortCircuits(t *testing.T) {
	rec := sampleRecord()
	rec.Skills = nil

	rep := NewAnalyzer().Analyze(rec)
	assert.Equal(t, 0.0, rep.Scores.SkillsSection)

	found := false
	for _, i := range rep.Issues {
		if i.Category == CategorySkills {
			assert.Equal(t, SeverityCritical, i.Severity)
			found = true
		}
	}
	assert.True(t, found, "expected a critical skills issue")
}

func TestAnalyzeNoBulletsShortCircuitsContent(t *testing.T) {
	rec := sampleRecord()
	for i := range rec.Experiences {
		rec.Experiences[i].Responsibilities = nil
	}

	rep := NewAnalyzer().Analyze(rec)
	assert.Equal(t, 5.0, rep.Scores.ContentQuality)

	found := false
	for _, i := range rep.Issues {
		if i.Category == CategoryContent && i.Severity == SeverityCritical {
			found = true
		}
	}
	assert.True(t, found, "expected a critical content issue")
	assert.False(t, rep.Metadata.HasActionVerbs)
	assert.False(t, rep.Metadata.HasQuantifiableAchievements)
}

func TestAnalyzeSuggestionThemesNotDuplicated(t *testing.T) {
	// Weak everywhere: low keyword coverage issues from both ATS and summary
	// must still yield a single ATS suggestion.
	rec := resume.Record{
		Name:    "John Doe",
		Summary: "Hard worker looking for a job.",
		Experiences: []resume.Experience{
			{
				Role:     "Worker",
				Company:  "Company",
				Duration: "Date range not specified",
				Responsibilities: []string{
					"did various things at the office",
					"helped with whatever was needed",
				},
			},
		},
		Education: []resume.Education{{Degree: "Education section not fully parsed"}},
		Skills:    []string{"Typing", "Filing"},
	}

	rep := NewAnalyzer().Analyze(rec)

	byTheme := map[string]int{}
	for _, s := range rep.Suggestions {
		byTheme[s.Category+"/"+s.Text]++
	}
	for theme, n := range byTheme {
		assert.Equal(t, 1, n, "theme emitted more than once: %s", theme)
	}

	atsSuggestions := 0
	for _, s := range rep.Suggestions {
		if s.Category == CategoryATS {
			atsSuggestions++
		}
	}
	assert.Equal(t, 1, atsSuggestions)
}

func TestAnalyzeMetadata(t *testing.T) {
	rep := NewAnalyzer().Analyze(sampleRecord())

	md := rep.Metadata
	assert.Equal(t, []string{"contact", "summary", "experience", "education", "skills"}, md.SectionsFound)
	assert.True(t, md.HasActionVerbs)
	assert.True(t, md.HasQuantifiableAchievements)
	assert.Positive(t, md.WordCount)
	assert.Contains(t, md.KeywordDensity, "calendar management")
	for kw, n := range md.KeywordDensity {
		assert.Positive(t, n, "zero count leaked into density map for %q", kw)
	}
}

func TestAnalyzeDateFormatConsistency(t *testing.T) {
	rec := sampleRecord()
	base := NewAnalyzer().Analyze(rec).Scores.Formatting

	rec.Experiences[1].Duration = "Jan 2017 - Mar 2020"
	mixed := NewAnalyzer().Analyze(rec).Scores.Formatting

	assert.InDelta(t, 2.5, base-mixed, 1e-9)
}
