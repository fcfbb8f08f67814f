package resilience

import (
	"context"
	"sync/atomic"
	"testing"
)

// These scenarios mirror internal/node/service.Node.refreshOnce, which
// submits one AnnounceArrival fan-out job per leaf-set/routing-table
// neighbor and closes the pool once the node shuts down.

func TestWorkerPoolRunsOneJobPerFanOutTarget(t *testing.T) {
	pool := NewWorkerPool(4, 16)
	defer pool.Close()

	neighbors := 12
	var announced int32
	for i := 0; i < neighbors; i++ {
		if err := pool.Submit(context.Background(), func() {
			atomic.AddInt32(&announced, 1)
		}); err != nil {
			t.Fatalf("submit for fan-out target %d failed: %v", i, err)
		}
	}

	pool.Close()
	pool.Wait()

	if got := atomic.LoadInt32(&announced); got != int32(neighbors) {
		t.Fatalf("expected %d neighbors announced to, got %d", neighbors, got)
	}
}

func TestWorkerPoolRejectsSubmitAfterNodeShutdown(t *testing.T) {
	pool := NewWorkerPool(2, 4)
	pool.Close() // mirrors Node.Shutdown closing the pool

	if err := pool.Submit(context.Background(), func() {}); err != ErrWorkerPoolClosed {
		t.Fatalf("expected a refresh job submitted after shutdown to be rejected, got %v", err)
	}
}

func TestWorkerPoolSubmitHonorsCallerContextWhenQueueIsFull(t *testing.T) {
	pool := NewWorkerPool(1, 1)
	defer pool.Close()

	block := make(chan struct{})
	// Occupy the single worker so the queue backs up behind it.
	if err := pool.Submit(context.Background(), func() { <-block }); err != nil {
		t.Fatalf("initial submit failed: %v", err)
	}
	if err := pool.Submit(context.Background(), func() {}); err != nil {
		t.Fatalf("queueing one pending job failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := pool.Submit(ctx, func() {}); err != context.Canceled {
		t.Fatalf("expected a full queue with a canceled context to return context.Canceled, got %v", err)
	}
	close(block)
}
