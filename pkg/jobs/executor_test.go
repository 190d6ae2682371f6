package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testExecutor(store Store) *Executor {
	return NewExecutor(store, ExecutorConfig{
		Workers:      2,
		PollInterval: 5 * time.Millisecond,
		JobTimeout:   time.Second,
		ResultTTL:    time.Hour,
	}, zap.NewNop())
}

func waitTerminal(t *testing.T, store Store, id string) Job {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		job, err := store.Get(context.Background(), id)
		require.NoError(t, err)
		if job.Status.Terminal() {
			return job
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("job did not reach a terminal status")
	return Job{}
}

func TestExecutorRunsJobToCompletion(t *testing.T) {
	store := NewMemoryStore()
	exec := testExecutor(store)
	exec.Register("echo", func(ctx context.Context, payload json.RawMessage) (any, error) {
		var in map[string]string
		if err := json.Unmarshal(payload, &in); err != nil {
			return nil, err
		}
		return map[string]string{"echo": in["msg"]}, nil
	})

	svc := NewService(store, zap.NewNop())
	job, err := svc.Enqueue(context.Background(), "echo", map[string]string{"msg": "hi"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go exec.Run(ctx)

	done := waitTerminal(t, store, job.ID)
	assert.Equal(t, StatusComplete, done.Status)
	assert.JSONEq(t, `{"echo":"hi"}`, string(done.Result))
}

func TestExecutorClassifiesFailures(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantType string
	}{
		{"validation", AsValidation(errors.New("text is empty")), ErrorTypeValidation},
		{"domain", errors.New("unsupported file format"), ErrorTypeDomain},
		{"timeout", context.DeadlineExceeded, ErrorTypeTimeout},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := NewMemoryStore()
			exec := testExecutor(store)
			exec.Register("fail", func(ctx context.Context, payload json.RawMessage) (any, error) {
				return nil, tc.err
			})

			svc := NewService(store, zap.NewNop())
			job, err := svc.Enqueue(context.Background(), "fail", nil)
			require.NoError(t, err)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			go exec.Run(ctx)

			done := waitTerminal(t, store, job.ID)
			assert.Equal(t, StatusFailed, done.Status)
			assert.Equal(t, tc.wantType, done.ErrorType)
			assert.NotEmpty(t, done.Error)
		})
	}
}

func TestExecutorUnknownFunctionFails(t *testing.T) {
	store := NewMemoryStore()
	exec := testExecutor(store)

	svc := NewService(store, zap.NewNop())
	job, err := svc.Enqueue(context.Background(), "no_such_function", nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go exec.Run(ctx)

	done := waitTerminal(t, store, job.ID)
	assert.Equal(t, StatusFailed, done.Status)
	assert.Equal(t, ErrorTypeDomain, done.ErrorType)
}

func TestExecutorRecoversFromPanic(t *testing.T) {
	store := NewMemoryStore()
	exec := testExecutor(store)
	exec.Register("boom", func(ctx context.Context, payload json.RawMessage) (any, error) {
		panic("unexpected state")
	})
	exec.Register("ok", func(ctx context.Context, payload json.RawMessage) (any, error) {
		return "fine", nil
	})

	svc := NewService(store, zap.NewNop())
	bad, err := svc.Enqueue(context.Background(), "boom", nil)
	require.NoError(t, err)
	good, err := svc.Enqueue(context.Background(), "ok", nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go exec.Run(ctx)

	failed := waitTerminal(t, store, bad.ID)
	assert.Equal(t, StatusFailed, failed.Status)
	assert.Contains(t, failed.Error, "panic")

	// The pool keeps serving after a panic.
	done := waitTerminal(t, store, good.ID)
	assert.Equal(t, StatusComplete, done.Status)
}

func TestExecutorAppliesJobTimeout(t *testing.T) {
	store := NewMemoryStore()
	exec := NewExecutor(store, ExecutorConfig{
		Workers:      1,
		PollInterval: 5 * time.Millisecond,
		JobTimeout:   20 * time.Millisecond,
		ResultTTL:    time.Hour,
	}, zap.NewNop())
	exec.Register("slow", func(ctx context.Context, payload json.RawMessage) (any, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(5 * time.Second):
			return "done", nil
		}
	})

	svc := NewService(store, zap.NewNop())
	job, err := svc.Enqueue(context.Background(), "slow", nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go exec.Run(ctx)

	done := waitTerminal(t, store, job.ID)
	assert.Equal(t, StatusFailed, done.Status)
	assert.Equal(t, ErrorTypeTimeout, done.ErrorType)
}
