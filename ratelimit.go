package lingua

import (
	"context"
	"sync"
	"time"
)

// RateLimiter controls the rate of delegate calls using a token bucket.
type RateLimiter struct {
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
	mu         sync.Mutex
}

// RateLimitConfig configures the rate limiter.
type RateLimitConfig struct {
	RequestsPerMinute int // Maximum requests per minute
	BurstSize         int // Maximum burst size (default: same as RPM)
}

// NewRateLimiter creates a new rate limiter.
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	rpm := float64(cfg.RequestsPerMinute)
	if rpm <= 0 {
		rpm = 60 // Default: 60 RPM
	}

	burst := float64(cfg.BurstSize)
	if burst <= 0 {
		burst = rpm // Default burst = RPM
	}

	return &RateLimiter{
		tokens:     burst, // Start with full bucket
		maxTokens:  burst,
		refillRate: rpm / 60.0,
		lastRefill: time.Now(),
	}
}

// Wait blocks until a token is available or the context is cancelled.
func (r *RateLimiter) Wait(ctx context.Context) error {
	for {
		if r.TryAcquire() {
			return nil
		}

		r.mu.Lock()
		waitTime := time.Duration(float64(time.Second) / r.refillRate)
		r.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
			// Try again
		}
	}
}

// TryAcquire attempts to acquire a token without blocking.
func (r *RateLimiter) TryAcquire() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.refill()

	if r.tokens >= 1 {
		r.tokens--
		return true
	}

	return false
}

// refill adds tokens based on elapsed time (must be called with lock held).
func (r *RateLimiter) refill() {
	now := time.Now()
	elapsed := now.Sub(r.lastRefill).Seconds()
	r.lastRefill = now

	r.tokens += elapsed * r.refillRate
	if r.tokens > r.maxTokens {
		r.tokens = r.maxTokens
	}
}

// Available returns the current number of available tokens.
func (r *RateLimiter) Available() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.refill()
	return r.tokens
}

// RateLimitedTranslator wraps a Translator with rate limiting on Translate.
// Readiness and preparation calls are not limited.
type RateLimitedTranslator struct {
	delegate Translator
	limiter  *RateLimiter
}

// NewRateLimitedTranslator creates a rate-limited translator.
func NewRateLimitedTranslator(delegate Translator, cfg RateLimitConfig) *RateLimitedTranslator {
	return &RateLimitedTranslator{
		delegate: delegate,
		limiter:  NewRateLimiter(cfg),
	}
}

// Translate implements Translator with rate limiting.
func (t *RateLimitedTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string, tc TextContext) (string, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return "", &EngineError{
			Message:   "rate limit wait cancelled",
			Cause:     err,
			Retryable: false,
		}
	}

	return t.delegate.Translate(ctx, text, sourceLang, targetLang, tc)
}

// IsReady passes through to the delegate.
func (t *RateLimitedTranslator) IsReady(ctx context.Context, sourceLang, targetLang string) (bool, error) {
	return t.delegate.IsReady(ctx, sourceLang, targetLang)
}

// Prepare passes through to the delegate.
func (t *RateLimitedTranslator) Prepare(ctx context.Context, sourceLang, targetLang string) (PrepareResult, error) {
	return t.delegate.Prepare(ctx, sourceLang, targetLang)
}

// Close closes the delegate.
func (t *RateLimitedTranslator) Close() error {
	return t.delegate.Close()
}

// Limiter returns the underlying rate limiter for inspection.
func (t *RateLimitedTranslator) Limiter() *RateLimiter {
	return t.limiter
}

// Verify RateLimitedTranslator implements Translator.
var _ Translator = (*RateLimitedTranslator)(nil)
