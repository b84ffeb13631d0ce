package worker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"taskpad/internal/model"
	"taskpad/internal/store"
)

// Reporter периодически пишет в лог сводку по коллекции. Читает
// через тот же List, что и API, то есть вместе с его задержкой.
type Reporter struct {
	store  store.TaskStore
	logger *zap.Logger
	every  time.Duration
	wg     sync.WaitGroup
	stop   chan struct{}
}

func NewReporter(store store.TaskStore, logger *zap.Logger, every time.Duration) *Reporter {
	return &Reporter{
		store:  store,
		logger: logger,
		every:  every,
		stop:   make(chan struct{}),
	}
}

func (r *Reporter) Start(ctx context.Context) {
	r.logger.Info("Starting store reporter", zap.Duration("every", r.every))

	r.wg.Add(1)
	go r.run(ctx)
}

func (r *Reporter) Stop() {
	r.logger.Info("Stopping store reporter...")
	close(r.stop)
	r.wg.Wait()
	r.logger.Info("Store reporter stopped")
}

func (r *Reporter) run(ctx context.Context) {
	defer r.wg.Done()

	ticker := time.NewTicker(r.every)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.report(ctx)
		}
	}
}

func (r *Reporter) report(ctx context.Context) {
	env := r.store.List(ctx)
	if !env.Success {
		r.logger.Error("reporter list failed", zap.String("error", env.Error))
		return
	}

	tasks := env.Data.([]model.Task)
	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}

	r.logger.Info("Store snapshot",
		zap.Int("total", len(tasks)),
		zap.Int("completed", completed),
		zap.Int("active", len(tasks)-completed),
	)
}
