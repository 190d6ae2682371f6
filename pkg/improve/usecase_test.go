package improve

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resumeq/pkg/resume"
)

type fakeModel struct {
	calls   int
	failFor int // number of leading calls that fail
	err     error
	reply   string
}

func (f *fakeModel) Ask(ctx context.Context, system, user string) (string, error) {
	f.calls++
	if f.calls <= f.failFor {
		return "", f.err
	}
	if f.reply != "" {
		return f.reply, nil
	}
	return "Coordinated 20+ executive calendars, cutting conflicts by 35%", nil
}

type transientErr struct{}

func (transientErr) Error() string   { return "rate limited" }
func (transientErr) Transient() bool { return true }

func fastImprover(m *fakeModel) *Improver {
	im := New(m)
	im.policy.BaseDelay = 0
	im.policy.MaxDelay = 0
	return im
}

func weakRecord() resume.Record {
	return resume.Record{
		Summary: "Hard worker.",
		Experiences: []resume.Experience{{
			Role:    "Virtual Assistant",
			Company: "Acme",
			Responsibilities: []string{
				"answered phones and emails sometimes",
				"Managed calendars for 12 executives, reducing scheduling conflicts by 40% across teams",
			},
		}},
		Skills: []string{"Typing"},
	}
}

func TestImproveSkipsStrongBullets(t *testing.T) {
	m := &fakeModel{}
	res, err := fastImprover(m).Improve(context.Background(), "imp-1", weakRecord(), []string{FocusBulletPoints})
	require.NoError(t, err)

	// Only the weak bullet goes to the model.
	assert.Equal(t, 1, m.calls)
	require.Len(t, res.Improvements, 1)
	got := res.Improvements[0]
	assert.Equal(t, TypeBulletPoint, got.Type)
	assert.Equal(t, "answered phones and emails sometimes", got.Original)
	assert.Equal(t, "experiences[0].responsibilities[0]", got.Section)
}

func TestImproveSkipsSentinelBullet(t *testing.T) {
	m := &fakeModel{}
	rec := weakRecord()
	rec.Experiences[0].Responsibilities = []string{resume.NoResponsibilities}

	res, err := fastImprover(m).Improve(context.Background(), "imp-1", rec, []string{FocusBulletPoints})
	require.NoError(t, err)
	assert.Zero(t, m.calls)
	assert.Empty(t, res.Improvements)
}

func TestImproveShortSummaryRewritten(t *testing.T) {
	m := &fakeModel{reply: "Detail-oriented Virtual Assistant with 6 years supporting executives."}
	res, err := fastImprover(m).Improve(context.Background(), "imp-1", weakRecord(), []string{FocusSummary})
	require.NoError(t, err)

	require.Len(t, res.Improvements, 1)
	assert.Equal(t, TypeSummary, res.Improvements[0].Type)
	assert.Equal(t, "summary", res.Improvements[0].Section)
}

func TestImproveLongSummaryUntouched(t *testing.T) {
	m := &fakeModel{}
	rec := weakRecord()
	rec.Summary = strings.Repeat("Experienced assistant. ", 5)

	res, err := fastImprover(m).Improve(context.Background(), "imp-1", rec, []string{FocusSummary})
	require.NoError(t, err)
	assert.Zero(t, m.calls)
	assert.Empty(t, res.Improvements)
}

func TestImproveKeywordsAreDeterministic(t *testing.T) {
	m := &fakeModel{}
	res, err := fastImprover(m).Improve(context.Background(), "imp-1", weakRecord(), []string{FocusKeywords})
	require.NoError(t, err)

	assert.Zero(t, m.calls)
	require.Len(t, res.Improvements, 1)
	got := res.Improvements[0]
	assert.Equal(t, TypeKeyword, got.Type)
	assert.Contains(t, got.Improved, "email management")
	// The record already mentions scheduling, so that keyword is not suggested.
	assert.NotContains(t, got.Improved, "scheduling")
}

func TestImproveRetriesTransientErrors(t *testing.T) {
	m := &fakeModel{failFor: 2, err: transientErr{}}
	res, err := fastImprover(m).Improve(context.Background(), "imp-1", weakRecord(), []string{FocusBulletPoints})
	require.NoError(t, err)

	assert.Equal(t, 3, m.calls)
	require.Len(t, res.Improvements, 1)
}

func TestImproveGivesUpOnPermanentErrors(t *testing.T) {
	m := &fakeModel{failFor: 10, err: errors.New("invalid api key")}
	_, err := fastImprover(m).Improve(context.Background(), "imp-1", weakRecord(), []string{FocusBulletPoints})
	require.Error(t, err)
	assert.Equal(t, 1, m.calls)
}

func TestImproveScoreIncreaseCapped(t *testing.T) {
	m := &fakeModel{}
	rec := weakRecord()
	var bullets []string
	for i := 0; i < 30; i++ {
		bullets = append(bullets, "did some office work around here")
	}
	rec.Experiences[0].Responsibilities = bullets

	res, err := fastImprover(m).Improve(context.Background(), "imp-1", rec, []string{FocusBulletPoints})
	require.NoError(t, err)
	assert.Equal(t, 30, res.TotalImprovements)
	assert.Equal(t, 25.0, res.EstimatedScoreIncrease)
}
