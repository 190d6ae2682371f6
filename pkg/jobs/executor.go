package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Func — тело задания. Возвращённое значение сериализуется в Data конверта.
type Func func(ctx context.Context, payload json.RawMessage) (any, error)

// ExecutorConfig — параметры пула исполнителей.
type ExecutorConfig struct {
	Workers      int
	PollInterval time.Duration
	JobTimeout   time.Duration
	ResultTTL    time.Duration
}

// Executor — пул воркеров поверх Store. Каждый воркер в цикле забирает
// задание, исполняет его под индивидуальным таймаутом и записывает
// терминальный конверт. Паника в теле задания превращается в failed,
// воркер продолжает работать.
type Executor struct {
	store    Store
	registry map[string]Func
	cfg      ExecutorConfig
	log      *zap.Logger
}

func NewExecutor(store Store, cfg ExecutorConfig, log *zap.Logger) *Executor {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 500 * time.Millisecond
	}
	return &Executor{
		store:    store,
		registry: make(map[string]Func),
		cfg:      cfg,
		log:      log,
	}
}

// Register связывает имя функции с реализацией. Вызывается до Run.
func (e *Executor) Register(name string, fn Func) {
	e.registry[name] = fn
}

// Run блокируется до отмены контекста.
func (e *Executor) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for i := 0; i < e.cfg.Workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			e.workerLoop(ctx, id)
		}(i)
	}
	wg.Wait()
}

func (e *Executor) workerLoop(ctx context.Context, worker int) {
	for {
		job, ok, err := e.store.Claim(ctx)
		if err != nil {
			e.log.Warn("claim failed", zap.Int("worker", worker), zap.Error(err))
		}
		if err != nil || !ok {
			select {
			case <-ctx.Done():
				return
			case <-time.After(e.cfg.PollInterval):
			}
			continue
		}
		e.execute(ctx, job)
		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}

func (e *Executor) execute(ctx context.Context, job Job) {
	start := time.Now()
	e.log.Info("job started",
		zap.String("job_id", job.ID),
		zap.String("function", job.Function),
	)

	env := e.run(ctx, job)

	if err := e.store.Finish(ctx, job.ID, env, e.cfg.ResultTTL); err != nil {
		e.log.Error("finish failed", zap.String("job_id", job.ID), zap.Error(err))
		return
	}
	if env.Success {
		e.log.Info("job complete",
			zap.String("job_id", job.ID),
			zap.String("function", job.Function),
			zap.Duration("took", time.Since(start)),
		)
	} else {
		e.log.Warn("job failed",
			zap.String("job_id", job.ID),
			zap.String("function", job.Function),
			zap.String("error_type", env.ErrorType),
			zap.String("error", env.Error),
			zap.Duration("took", time.Since(start)),
		)
	}
}

func (e *Executor) run(ctx context.Context, job Job) (env Envelope) {
	env = Envelope{JobID: job.ID}

	defer func() {
		if r := recover(); r != nil {
			env.Success = false
			env.Data = nil
			env.Error = fmt.Sprintf("panic: %v", r)
			env.ErrorType = ErrorTypeDomain
		}
	}()

	fn, ok := e.registry[job.Function]
	if !ok {
		env.Error = fmt.Sprintf("unknown job function %q", job.Function)
		env.ErrorType = ErrorTypeDomain
		return env
	}

	runCtx := ctx
	if e.cfg.JobTimeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, e.cfg.JobTimeout)
		defer cancel()
	}

	result, err := fn(runCtx, job.Payload)
	if err != nil {
		env.Error = err.Error()
		env.ErrorType = Classify(err)
		return env
	}
	data, err := json.Marshal(result)
	if err != nil {
		env.Error = fmt.Sprintf("marshal job result: %v", err)
		env.ErrorType = ErrorTypeDomain
		return env
	}
	env.Success = true
	env.Data = data
	return env
}

// RunSweeper периодически удаляет истёкшие терминальные задания.
// Блокируется до отмены контекста.
func (e *Executor) RunSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			removed, err := e.store.Sweep(ctx, now)
			if err != nil {
				e.log.Warn("sweep failed", zap.Error(err))
				continue
			}
			if removed > 0 {
				e.log.Info("swept expired jobs", zap.Int("removed", removed))
			}
		}
	}
}
