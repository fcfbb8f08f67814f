package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

// These scenarios mirror how internal/node/adapter/outbound/grpc.ClientAdapter
// uses a CircuitBreaker: one breaker per peer address, wrapping a single
// outbound RPC call (Join, Query, AnnounceArrival, ...).

func TestCircuitBreakerOpensAfterRepeatedRPCFailures(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{
		Name:             "10.0.0.5:7000",
		FailureThreshold: 3,
		OpenTimeout:      200 * time.Millisecond,
	})

	announceArrivalFailed := func(context.Context) error { return errors.New("connection refused") }

	for i := 0; i < 3; i++ {
		if err := cb.Execute(context.Background(), announceArrivalFailed); err == nil {
			t.Fatalf("expected RPC failure %d to propagate", i+1)
		}
	}
	if cb.State() != CircuitOpen {
		t.Fatalf("expected circuit open after reaching the failure threshold, got %s", cb.State())
	}

	if err := cb.Execute(context.Background(), announceArrivalFailed); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected a short-circuited call once open, got %v", err)
	}
}

func TestCircuitBreakerRecoversOnceTargetAnswersAgain(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{
		Name:             "10.0.0.5:7000",
		FailureThreshold: 1,
		SuccessThreshold: 1,
		OpenTimeout:      100 * time.Millisecond,
	})

	_ = cb.Execute(context.Background(), func(context.Context) error {
		return errors.New("connection refused")
	})
	if cb.State() != CircuitOpen {
		t.Fatalf("expected circuit open after first failure, got %s", cb.State())
	}

	time.Sleep(120 * time.Millisecond)

	joinSucceeded := func(context.Context) error { return nil }
	if err := cb.Execute(context.Background(), joinSucceeded); err != nil {
		t.Fatalf("expected the half-open probe to succeed, got %v", err)
	}
	if cb.State() != CircuitClosed {
		t.Fatalf("expected circuit closed after a successful probe, got %s", cb.State())
	}
}

func TestCircuitBreakerDoesNotPenalizeContextCancellation(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{
		Name:             "10.0.0.5:7000",
		FailureThreshold: 1,
	})

	// A caller cancelling its own context (request timeout elsewhere in the
	// call chain) must not look like the peer itself failing.
	canceled := func(context.Context) error { return context.Canceled }
	if err := cb.Execute(context.Background(), canceled); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled to propagate unchanged, got %v", err)
	}
	if cb.State() != CircuitClosed {
		t.Fatalf("expected circuit to remain closed after a canceled call, got %s", cb.State())
	}
}

func TestCircuitOpenErrorCarriesPeerNameAndRetryAfter(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{
		Name:             "10.0.0.5:7000",
		FailureThreshold: 1,
		OpenTimeout:      200 * time.Millisecond,
	})

	_ = cb.Execute(context.Background(), func(context.Context) error {
		return errors.New("connection refused")
	})

	err := cb.Execute(context.Background(), func(context.Context) error { return nil })

	var openErr *CircuitOpenError
	if !errors.As(err, &openErr) {
		t.Fatalf("expected CircuitOpenError, got %T", err)
	}
	if openErr.Name != "10.0.0.5:7000" {
		t.Fatalf("expected the failing peer address in the error, got %s", openErr.Name)
	}
	if openErr.RetryAfter <= 0 {
		t.Fatalf("expected a positive retry_after so a caller knows when to try the peer again, got %s", openErr.RetryAfter)
	}
}
