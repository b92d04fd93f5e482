package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestPool_SubmitReturnsResult(t *testing.T) {
	stopChan := make(chan bool)
	wg := &sync.WaitGroup{}
	p := NewPool(stopChan, wg)
	defer close(stopChan)

	value, err := p.Submit(context.Background(), func(ctx context.Context) (any, error) {
		return 42, nil
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if value.(int) != 42 {
		t.Errorf("got %v, want 42", value)
	}
}

func TestPool_SubmitPropagatesTaskError(t *testing.T) {
	stopChan := make(chan bool)
	wg := &sync.WaitGroup{}
	p := NewPool(stopChan, wg)
	defer close(stopChan)

	wantErr := errors.New("extraction blew up")
	_, err := p.Submit(context.Background(), func(ctx context.Context) (any, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("got %v, want %v", err, wantErr)
	}
}

func TestPool_PanickingTaskDoesNotKillWorker(t *testing.T) {
	stopChan := make(chan bool)
	wg := &sync.WaitGroup{}
	p := NewPool(stopChan, wg)
	defer close(stopChan)

	_, err := p.Submit(context.Background(), func(ctx context.Context) (any, error) {
		panic("boom")
	})
	if err == nil {
		t.Fatal("expected an error from the panicking task")
	}

	// the same pool must still serve the next task
	value, err := p.Submit(context.Background(), func(ctx context.Context) (any, error) {
		return "alive", nil
	})
	if err != nil || value.(string) != "alive" {
		t.Errorf("worker did not survive the panic: %v %v", value, err)
	}
}

func TestPool_CancelledContextAbandonsWait(t *testing.T) {
	stopChan := make(chan bool)
	wg := &sync.WaitGroup{}
	p := NewPool(stopChan, wg)
	defer close(stopChan)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Submit(ctx, func(ctx context.Context) (any, error) {
		return 1, nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestPool_ScalesUpUnderLoad(t *testing.T) {
	stopChan := make(chan bool)
	wg := &sync.WaitGroup{}
	p := NewPool(stopChan, wg)
	defer close(stopChan)

	var done sync.WaitGroup
	var processed int32
	for i := 0; i < 25; i++ {
		done.Add(1)
		go func() {
			defer done.Done()
			_, err := p.Submit(context.Background(), func(ctx context.Context) (any, error) {
				time.Sleep(10 * time.Millisecond)
				return nil, nil
			})
			if err == nil {
				atomic.AddInt32(&processed, 1)
			}
		}()
	}
	done.Wait()

	if got := atomic.LoadInt32(&processed); got != 25 {
		t.Errorf("processed %d of 25 tasks", got)
	}
	if count := atomic.LoadInt64(&p.workerCount); count < 1 {
		t.Errorf("expected at least one live worker, got %d", count)
	}
}

func TestPool_StopRetiresWorkers(t *testing.T) {
	stopChan := make(chan bool)
	wg := &sync.WaitGroup{}
	p := NewPool(stopChan, wg)

	// let the first worker spin up before stopping
	_, _ = p.Submit(context.Background(), func(ctx context.Context) (any, error) {
		return nil, nil
	})

	close(stopChan)
	wg.Wait()

	if count := atomic.LoadInt64(&p.workerCount); count != 0 {
		t.Errorf("expected all workers retired, got %d", count)
	}
}
