package worker

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/jaynikam2005/ai-resume-job-matcher/internal/metrics"
)

func (p *Pool) executeTask(t *task) {
	start := time.Now()
	defer func() {
		metrics.CaptureStageMetrics("pool_task", time.Since(start))
	}()

	// a panicking task must not take the worker down with it
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("task panicked", "panic", r)
			t.result <- outcome{err: fmt.Errorf("task panicked: %v", r)}
		}
	}()

	if err := t.ctx.Err(); err != nil {
		t.result <- outcome{err: err}
		return
	}

	value, err := t.run(t.ctx)
	t.result <- outcome{value: value, err: err}
}

func (p *Pool) removeWorker(reason string) {
	p.group.Done()
	atomic.AddInt64(&p.workerCount, -1)
	p.logger.Info("Removed worker", "reason", reason, "workerCount", atomic.LoadInt64(&p.workerCount))
	metrics.DecrementActiveWorkerCount()
}
