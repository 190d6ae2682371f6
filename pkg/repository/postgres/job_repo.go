package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/resumeq/pkg/jobs"
)

// JobRepository implements jobs.Store backed by PostgreSQL (pgx).
// Claim uses FOR UPDATE SKIP LOCKED so several worker processes can share
// one queue without double-claiming.
type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) (*JobRepository, error) {
	repo := &JobRepository{pool: pool}
	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *JobRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS jobs (
			id UUID PRIMARY KEY,
			function TEXT NOT NULL,
			payload JSONB NOT NULL,
			status TEXT NOT NULL,
			result JSONB,
			error TEXT,
			error_type TEXT,
			enqueued_at TIMESTAMPTZ NOT NULL,
			started_at TIMESTAMPTZ,
			finished_at TIMESTAMPTZ,
			expires_at TIMESTAMPTZ
		);
		CREATE INDEX IF NOT EXISTS jobs_status_enqueued_idx ON jobs (status, enqueued_at);
		CREATE INDEX IF NOT EXISTS jobs_expires_idx ON jobs (expires_at) WHERE expires_at IS NOT NULL;
	`)
	return err
}

func (r *JobRepository) Enqueue(ctx context.Context, job jobs.Job) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO jobs (id, function, payload, status, enqueued_at)
		VALUES ($1, $2, $3, $4, $5)
	`, job.ID, job.Function, job.Payload, string(jobs.StatusQueued), job.EnqueuedAt)
	return err
}

func (r *JobRepository) Claim(ctx context.Context) (jobs.Job, bool, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE jobs SET status = $1, started_at = NOW()
		WHERE id = (
			SELECT id FROM jobs
			WHERE status = $2
			ORDER BY enqueued_at
			FOR UPDATE SKIP LOCKED
			LIMIT 1
		)
		RETURNING id, function, payload, status, enqueued_at, started_at
	`, string(jobs.StatusInProgress), string(jobs.StatusQueued))

	var job jobs.Job
	var status string
	var startedAt time.Time
	err := row.Scan(&job.ID, &job.Function, &job.Payload, &status, &job.EnqueuedAt, &startedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return jobs.Job{}, false, nil
	}
	if err != nil {
		return jobs.Job{}, false, err
	}
	job.Status = jobs.Status(status)
	job.StartedAt = startedAt.UTC()
	return job, true, nil
}

func (r *JobRepository) Finish(ctx context.Context, id string, env jobs.Envelope, ttl time.Duration) error {
	status := jobs.StatusFailed
	if env.Success {
		status = jobs.StatusComplete
	}
	// Conditional terminal write: only an in_progress job can be finished,
	// so the first terminal write wins.
	_, err := r.pool.Exec(ctx, `
		UPDATE jobs
		SET status = $2, result = $3, error = NULLIF($4, ''), error_type = NULLIF($5, ''),
		    finished_at = NOW(), expires_at = NOW() + $6
		WHERE id = $1 AND status = $7
	`, id, string(status), env.Data, env.Error, env.ErrorType, ttl, string(jobs.StatusInProgress))
	return err
}

func (r *JobRepository) Get(ctx context.Context, id string) (jobs.Job, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, function, payload, status,
		       COALESCE(result, 'null'::jsonb), COALESCE(error, ''), COALESCE(error_type, ''),
		       enqueued_at, started_at, finished_at, expires_at
		FROM jobs
		WHERE id = $1 AND (expires_at IS NULL OR expires_at > NOW())
	`, id)

	var job jobs.Job
	var status string
	var startedAt, finishedAt, expiresAt *time.Time
	err := row.Scan(&job.ID, &job.Function, &job.Payload, &status,
		&job.Result, &job.Error, &job.ErrorType,
		&job.EnqueuedAt, &startedAt, &finishedAt, &expiresAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return jobs.Job{}, jobs.ErrNotFound
	}
	if err != nil {
		return jobs.Job{}, err
	}
	job.Status = jobs.Status(status)
	if startedAt != nil {
		job.StartedAt = startedAt.UTC()
	}
	if finishedAt != nil {
		job.FinishedAt = finishedAt.UTC()
	}
	if expiresAt != nil {
		job.ExpiresAt = expiresAt.UTC()
	}
	if string(job.Result) == "null" {
		job.Result = nil
	}
	return job, nil
}

func (r *JobRepository) Sweep(ctx context.Context, now time.Time) (int, error) {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM jobs
		WHERE expires_at IS NOT NULL AND expires_at <= $1
	`, now)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
