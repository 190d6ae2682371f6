package jobs

import (
	"context"
	"time"
)

// Store — персистентность очереди. Реализации: Postgres для боевого
// режима и in-memory для встроенного исполнителя и тестов.
type Store interface {
	// Enqueue сохраняет новое задание в состоянии queued.
	Enqueue(ctx context.Context, job Job) error
	// Claim атомарно забирает одно queued-задание и переводит его в
	// in_progress. Второй результат false, если очередь пуста.
	Claim(ctx context.Context) (Job, bool, error)
	// Finish записывает терминальный результат. Запись условная: задание
	// должно быть in_progress, повторный Finish игнорируется.
	Finish(ctx context.Context, id string, env Envelope, ttl time.Duration) error
	// Get возвращает задание. Для неизвестных и истёкших — ErrNotFound.
	Get(ctx context.Context, id string) (Job, error)
	// Sweep удаляет терминальные задания с истёкшим TTL, возвращает число
	// удалённых.
	Sweep(ctx context.Context, now time.Time) (int, error)
}
