package queue

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type WorkerPool struct {
	JobChan chan Job
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewWorkerPool starts workerCount workers, each running one pipeline call
// at a time.
func NewWorkerPool(workerCount int, handler JobHandler, onResult func(ProcessedJob), log *zap.Logger) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())
	pool := &WorkerPool{
		JobChan: make(chan Job, 100),
		ctx:     ctx,
		cancel:  cancel,
	}
	for i := 0; i < workerCount; i++ {
		worker := &Worker{
			ID:       i,
			JobChan:  pool.JobChan,
			Wg:       &pool.wg,
			Handler:  handler,
			OnResult: onResult,
			Log:      log.Named("worker"),
		}
		pool.wg.Add(1)
		worker.Start(pool.ctx)
	}
	return pool
}

func (p *WorkerPool) AddJob(job Job) {
	p.JobChan <- job
}

// Shutdown stops accepting jobs, lets queued ones finish and then releases
// the workers' context.
func (p *WorkerPool) Shutdown() {
	close(p.JobChan)
	p.wg.Wait()
	p.cancel()
}
