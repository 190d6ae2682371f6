package jobs

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJob() Job {
	return Job{
		ID:         uuid.NewString(),
		Function:   "analyze_resume",
		Payload:    json.RawMessage(`{"text":"hello"}`),
		Status:     StatusQueued,
		EnqueuedAt: time.Now(),
	}
}

func TestMemoryStoreStatusBeforeClaim(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	job := newJob()
	require.NoError(t, s.Enqueue(ctx, job))

	got, err := s.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusQueued, got.Status)
}

func TestMemoryStoreClaimTransitions(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	job := newJob()
	require.NoError(t, s.Enqueue(ctx, job))

	claimed, ok, err := s.Claim(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, job.ID, claimed.ID)
	assert.Equal(t, StatusInProgress, claimed.Status)

	// Queue is now empty.
	_, ok, err = s.Claim(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreClaimIsFIFO(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	first, second := newJob(), newJob()
	require.NoError(t, s.Enqueue(ctx, first))
	require.NoError(t, s.Enqueue(ctx, second))

	got, ok, err := s.Claim(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, first.ID, got.ID)
}

func TestMemoryStoreFinishSuccess(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	job := newJob()
	require.NoError(t, s.Enqueue(ctx, job))
	_, _, err := s.Claim(ctx)
	require.NoError(t, err)

	env := Envelope{Success: true, JobID: job.ID, Data: json.RawMessage(`{"ok":true}`)}
	require.NoError(t, s.Finish(ctx, job.ID, env, time.Hour))

	got, err := s.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusComplete, got.Status)
	assert.JSONEq(t, `{"ok":true}`, string(got.Result))
}

func TestMemoryStoreFinishIsConditional(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	job := newJob()
	require.NoError(t, s.Enqueue(ctx, job))

	// Finish without a claim is ignored: the job is not in_progress.
	env := Envelope{Success: true, JobID: job.ID}
	require.NoError(t, s.Finish(ctx, job.ID, env, time.Hour))
	got, err := s.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusQueued, got.Status)

	// First terminal write wins, the second is a no-op.
	_, _, err = s.Claim(ctx)
	require.NoError(t, err)
	require.NoError(t, s.Finish(ctx, job.ID, Envelope{Success: false, JobID: job.ID, Error: "boom", ErrorType: ErrorTypeDomain}, time.Hour))
	require.NoError(t, s.Finish(ctx, job.ID, Envelope{Success: true, JobID: job.ID}, time.Hour))

	got, err = s.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, got.Status)
	assert.Equal(t, "boom", got.Error)
}

func TestMemoryStoreUnknownJob(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Get(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreTTLExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	current := time.Now()
	s.now = func() time.Time { return current }

	job := newJob()
	require.NoError(t, s.Enqueue(ctx, job))
	_, _, err := s.Claim(ctx)
	require.NoError(t, err)
	require.NoError(t, s.Finish(ctx, job.ID, Envelope{Success: true, JobID: job.ID}, time.Hour))

	_, err = s.Get(ctx, job.ID)
	require.NoError(t, err)

	current = current.Add(time.Hour + time.Second)
	_, err = s.Get(ctx, job.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreSweep(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	current := time.Now()
	s.now = func() time.Time { return current }

	expired := newJob()
	pending := newJob()
	require.NoError(t, s.Enqueue(ctx, expired))
	require.NoError(t, s.Enqueue(ctx, pending))
	_, _, err := s.Claim(ctx)
	require.NoError(t, err)
	require.NoError(t, s.Finish(ctx, expired.ID, Envelope{Success: true, JobID: expired.ID}, time.Minute))

	removed, err := s.Sweep(ctx, current.Add(2*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	// The queued job survives the sweep regardless of age.
	_, err = s.Get(ctx, pending.ID)
	assert.NoError(t, err)
}
