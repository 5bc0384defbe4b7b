package queue

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type Worker struct {
	ID       int
	JobChan  <-chan Job
	Wg       *sync.WaitGroup
	Handler  JobHandler
	OnResult func(ProcessedJob)
	Log      *zap.Logger
}

func (w *Worker) Start(ctx context.Context) {
	go func() {
		defer w.Wg.Done()
		for {
			select {
			case job, ok := <-w.JobChan:
				if !ok {
					w.Log.Debug("job channel closed", zap.Int("worker", w.ID))
					return
				}
				w.processJob(ctx, job)
			case <-ctx.Done():
				w.Log.Debug("stopping on context cancellation", zap.Int("worker", w.ID))
				return
			}
		}
	}()
}

func (w *Worker) processJob(ctx context.Context, job Job) {
	log := w.Log.With(zap.Int("worker", w.ID), zap.String("job_id", job.ID), zap.String("type", string(job.Type)))
	log.Info("processing job")

	res := w.Handler.Handle(ctx, job)
	log.Info("job finished", zap.String("status", res.Status))
	if w.OnResult != nil {
		w.OnResult(res)
	}
}
