// Package retry реализует политику повторов с экспоненциальной задержкой.
// Политика — явный value object: вызывающий код видит число попыток и
// границы задержек, а не скрытую магию внутри клиента.
package retry

import (
	"context"
	"time"
)

// Policy описывает повторы одной операции. Нулевое значение непригодно,
// используйте DefaultPolicy или заполняйте поля явно.
type Policy struct {
	// MaxAttempts — всего попыток, включая первую.
	MaxAttempts int
	// BaseDelay — задержка перед второй попыткой, далее удваивается.
	BaseDelay time.Duration
	// MaxDelay — потолок задержки.
	MaxDelay time.Duration
	// Retryable решает, имеет ли смысл повторять после данной ошибки.
	// nil означает "повторять всё".
	Retryable func(error) bool
}

// DefaultPolicy повторяет трижды с задержками 2s, 4s (потолок 10s).
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 3,
		BaseDelay:   2 * time.Second,
		MaxDelay:    10 * time.Second,
	}
}

// Do выполняет fn по политике. Возвращает nil после первого успеха, последнюю
// ошибку после исчерпания попыток или первую non-retryable ошибку сразу.
// Отмена контекста прерывает ожидание между попытками.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	delay := p.BaseDelay

	var err error
	for attempt := 1; ; attempt++ {
		err = fn(ctx)
		if err == nil {
			return nil
		}
		if p.Retryable != nil && !p.Retryable(err) {
			return err
		}
		if attempt >= attempts {
			return err
		}
		if delay > p.MaxDelay && p.MaxDelay > 0 {
			delay = p.MaxDelay
		}
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay *= 2
		if p.MaxDelay > 0 && delay > p.MaxDelay {
			delay = p.MaxDelay
		}
	}
}
