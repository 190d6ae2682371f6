package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resumeq/pkg/resume"
)

func testRecord() resume.Record {
	return resume.Record{
		Name:     "Maria Santos",
		Email:    "maria@example.com",
		Phone:    "555-123-4567",
		Location: "Austin, TX",
		Summary:  "Detail-oriented virtual assistant with 6 years of experience.",
		Experiences: []resume.Experience{{
			Role:             "Senior Virtual Assistant",
			Company:          "Remote Office Partners",
			Duration:         "2020-2024",
			Responsibilities: []string{"Managed calendars for 12 executives"},
		}},
		Education: []resume.Education{{Degree: "BA in Business Administration", Institution: "State University"}},
		Skills:    []string{"Asana", "Trello", "Slack"},
	}
}

func TestRenderAllTemplates(t *testing.T) {
	r := NewPDFRenderer()
	for _, tpl := range []Template{TemplateModern, TemplateProfessional, TemplateATSOptimized, TemplateExecutive} {
		t.Run(string(tpl), func(t *testing.T) {
			data, err := r.Render(testRecord(), tpl)
			require.NoError(t, err)
			require.NotEmpty(t, data)
			assert.Equal(t, "%PDF", string(data[:4]))
		})
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := NewPDFRenderer().Render(testRecord(), Template("fancy"))
	assert.Error(t, err)
}

func TestRenderSkipsSentinels(t *testing.T) {
	rec := resume.Record{
		Name: "Jane Doe",
		Experiences: []resume.Experience{{
			Role:             "Assistant",
			Company:          "Acme",
			Duration:         resume.NoDuration,
			Responsibilities: []string{resume.NoResponsibilities},
		}},
		Education: []resume.Education{{Degree: resume.NoEducation}},
	}
	data, err := NewPDFRenderer().Render(rec, TemplateATSOptimized)
	require.NoError(t, err)
	require.NotEmpty(t, data)
}
