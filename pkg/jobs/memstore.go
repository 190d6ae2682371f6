package jobs

import (
	"context"
	"sync"
	"time"
)

// MemoryStore — очередь в памяти процесса. Используется встроенным
// исполнителем (QUEUE_DRIVER=memory) и тестами. FIFO по порядку постановки.
type MemoryStore struct {
	mu    sync.Mutex
	byID  map[string]*Job
	queue []string
	now   func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID: make(map[string]*Job),
		now:  time.Now,
	}
}

func (s *MemoryStore) Enqueue(ctx context.Context, job Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	job.Status = StatusQueued
	s.byID[job.ID] = &job
	s.queue = append(s.queue, job.ID)
	return nil
}

func (s *MemoryStore) Claim(ctx context.Context) (Job, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for len(s.queue) > 0 {
		id := s.queue[0]
		s.queue = s.queue[1:]
		j, ok := s.byID[id]
		if !ok || j.Status != StatusQueued {
			continue
		}
		j.Status = StatusInProgress
		j.StartedAt = s.now()
		return *j, true, nil
	}
	return Job{}, false, nil
}

func (s *MemoryStore) Finish(ctx context.Context, id string, env Envelope, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.byID[id]
	if !ok || j.Status != StatusInProgress {
		// Lost race or repeated finish: the first terminal write wins.
		return nil
	}
	if env.Success {
		j.Status = StatusComplete
		j.Result = env.Data
	} else {
		j.Status = StatusFailed
		j.Error = env.Error
		j.ErrorType = env.ErrorType
	}
	j.FinishedAt = s.now()
	j.ExpiresAt = j.FinishedAt.Add(ttl)
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.byID[id]
	if !ok {
		return Job{}, ErrNotFound
	}
	if j.Status.Terminal() && !j.ExpiresAt.After(s.now()) {
		delete(s.byID, id)
		return Job{}, ErrNotFound
	}
	return *j, nil
}

func (s *MemoryStore) Sweep(ctx context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, j := range s.byID {
		if j.Status.Terminal() && !j.ExpiresAt.After(now) {
			delete(s.byID, id)
			removed++
		}
	}
	return removed, nil
}
