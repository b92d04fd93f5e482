package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jaynikam2005/ai-resume-job-matcher/internal/config"
	"github.com/jaynikam2005/ai-resume-job-matcher/internal/metrics"
	"github.com/jaynikam2005/ai-resume-job-matcher/pkg/logger_i"
)

// Pool offloads blocking, CPU-bound work (document extraction, embedding
// encoding) so it does not stall request handling. Submitters block on the
// task result; workers scale between min and max and retire when idle.
type Pool struct {
	tasks          chan *task
	dispatcher     chan bool
	stop           chan bool
	group          *sync.WaitGroup
	submittedCount int64
	workerCount    int64
	minWorkerCount int64
	logger         *logger_i.Logger
}

type outcome struct {
	value any
	err   error
}

type task struct {
	ctx    context.Context
	run    func(ctx context.Context) (any, error)
	result chan outcome
}

func NewPool(stop chan bool, group *sync.WaitGroup) *Pool {
	p := &Pool{
		tasks:          make(chan *task, config.TaskBufferLimit),
		dispatcher:     make(chan bool, 1),
		stop:           stop,
		group:          group,
		minWorkerCount: config.MinWorkerCount,
		logger:         logger_i.NewLogger("WorkerPool"),
	}
	p.logger.Info("Initializing worker pool")
	go p.dispatch()
	return p
}

// Submit queues fn and blocks until a worker has finished it or ctx expires.
// An expired ctx abandons the wait only: the task itself is not recalled once
// queued, cancellation of in-flight work is best effort through its ctx.
func (p *Pool) Submit(ctx context.Context, fn func(ctx context.Context) (any, error)) (any, error) {
	t := &task{ctx: ctx, run: fn, result: make(chan outcome, 1)}

	metrics.IncrementTasksInQueue()
	select {
	case p.tasks <- t:
	case <-ctx.Done():
		metrics.DecrementTasksInQueue()
		return nil, ctx.Err()
	}

	// scale up every N submissions
	if atomic.AddInt64(&p.submittedCount, 1)%config.RequestsPerNewWorkerCount == 0 {
		metrics.StartDispatcherSignalCount()
		select {
		case p.dispatcher <- true:
		default:
		}
	}

	select {
	case out := <-t.result:
		return out.value, out.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (p *Pool) dispatch() {
	p.createWorker()
	p.logger.Info("Dispatcher started")
	for range p.dispatcher {
		if atomic.LoadInt64(&p.workerCount) < config.MaxWorkerCount {
			p.logger.Info("Creating new worker", "WorkerCount :", atomic.LoadInt64(&p.workerCount))
			p.createWorker()
		}
	}
}

func (p *Pool) createWorker() {
	p.group.Add(1)
	go p.worker()
	atomic.AddInt64(&p.workerCount, 1)
	metrics.IncrementActiveWorkerCount()
	p.logger.Info("Created new worker")
}

func (p *Pool) worker() {
	for {
		select {
		case t := <-p.tasks:
			p.executeTask(t)
			metrics.DecrementTasksInQueue()

		case <-p.stop:
			p.removeWorker("Stop worker signal received")
			return

		case <-time.After(config.IdleWorkerTimeout):
			// idle for too long, retire unless we are the floor
			if atomic.LoadInt64(&p.workerCount) > p.minWorkerCount {
				p.removeWorker("Idle worker timeout")
				return
			}
		}
	}
}
