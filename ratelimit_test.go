package lingua

import (
	"context"
	"errors"
	"testing"
)

func TestRateLimiter_BurstThenExhaustion(t *testing.T) {
	limiter := NewRateLimiter(RateLimitConfig{RequestsPerMinute: 60, BurstSize: 3})

	for i := 0; i < 3; i++ {
		if !limiter.TryAcquire() {
			t.Fatalf("acquire %d within the burst should succeed", i+1)
		}
	}
	if limiter.TryAcquire() {
		t.Error("acquire beyond the burst should fail without waiting")
	}
}

func TestRateLimiter_Defaults(t *testing.T) {
	limiter := NewRateLimiter(RateLimitConfig{})
	if avail := limiter.Available(); avail < 59 || avail > 60 {
		t.Errorf("default bucket should start near 60 tokens, got %v", avail)
	}
}

func TestRateLimiter_WaitCancelled(t *testing.T) {
	limiter := NewRateLimiter(RateLimitConfig{RequestsPerMinute: 1, BurstSize: 1})
	if !limiter.TryAcquire() {
		t.Fatal("first acquire should succeed")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := limiter.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRateLimitedTranslator_TranslatesWithinBudget(t *testing.T) {
	delegate := newStubDelegate()
	translator := NewRateLimitedTranslator(delegate, RateLimitConfig{RequestsPerMinute: 600, BurstSize: 10})

	out, err := translator.Translate(context.Background(), "Hello", "en", "es", ContextUI)
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if out != "Hola" {
		t.Errorf("expected 'Hola', got %q", out)
	}
}

func TestRateLimitedTranslator_CancelledWaitIsNotRetryable(t *testing.T) {
	delegate := newStubDelegate()
	translator := NewRateLimitedTranslator(delegate, RateLimitConfig{RequestsPerMinute: 1, BurstSize: 1})

	// Drain the single token.
	if _, err := translator.Translate(context.Background(), "Hello", "en", "es", ContextUI); err != nil {
		t.Fatalf("first Translate failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := translator.Translate(ctx, "World", "en", "es", ContextUI)
	if err == nil {
		t.Fatal("expected cancellation error")
	}

	var engineErr *EngineError
	if !errors.As(err, &engineErr) {
		t.Fatalf("expected *EngineError, got %T", err)
	}
	if engineErr.Retryable {
		t.Error("a cancelled wait must not be flagged retryable")
	}
	if !errors.Is(err, context.Canceled) {
		t.Error("the context error should be reachable through Unwrap")
	}
	if delegate.calls() != 1 {
		t.Errorf("delegate should not run after a cancelled wait, got %d calls", delegate.calls())
	}
}

func TestRateLimitedTranslator_ReadinessNotLimited(t *testing.T) {
	delegate := newStubDelegate()
	translator := NewRateLimitedTranslator(delegate, RateLimitConfig{RequestsPerMinute: 1, BurstSize: 1})

	// Drain the bucket, then verify probes still go through.
	translator.Limiter().TryAcquire()

	if ready, err := translator.IsReady(context.Background(), "en", "es"); err != nil || !ready {
		t.Errorf("IsReady should bypass the limiter: ready=%v err=%v", ready, err)
	}
	if result, err := translator.Prepare(context.Background(), "en", "es"); err != nil || result.State != PrepareReady {
		t.Errorf("Prepare should bypass the limiter: %+v err=%v", result, err)
	}
}
