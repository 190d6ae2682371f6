package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service — фасад очереди для HTTP-слоя: постановка и чтение заданий.
type Service struct {
	store Store
	log   *zap.Logger
}

func NewService(store Store, log *zap.Logger) *Service {
	return &Service{store: store, log: log}
}

// Enqueue сериализует payload и ставит задание в очередь.
func (s *Service) Enqueue(ctx context.Context, function string, payload any) (Job, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Job{}, fmt.Errorf("marshal payload: %w", err)
	}
	job := Job{
		ID:         uuid.NewString(),
		Function:   function,
		Payload:    data,
		Status:     StatusQueued,
		EnqueuedAt: time.Now(),
	}
	if err := s.store.Enqueue(ctx, job); err != nil {
		return Job{}, fmt.Errorf("enqueue job: %w", err)
	}
	s.log.Info("job enqueued",
		zap.String("job_id", job.ID),
		zap.String("function", function),
	)
	return job, nil
}

// Lookup возвращает задание. ErrNotFound пробрасывается как есть: для
// клиента неизвестное и вычищенное задание выглядят одинаково.
func (s *Service) Lookup(ctx context.Context, id string) (Job, error) {
	return s.store.Get(ctx, id)
}
