package lingua

import (
	"context"
	"errors"
	"time"
)

// RetryConfig holds configuration for retry behavior.
type RetryConfig struct {
	MaxRetries int           // Maximum number of retry attempts
	BaseDelay  time.Duration // Initial delay between retries
	MaxDelay   time.Duration // Maximum delay between retries
}

// DefaultRetryConfig returns sensible defaults for retry behavior.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries: 3,
		BaseDelay:  1 * time.Second,
		MaxDelay:   30 * time.Second,
	}
}

// RetryFunc is a function that can be retried.
type RetryFunc[T any] func() (T, error)

// WithRetry executes a function with exponential backoff retry. Only errors
// IsRetryable reports retryable are attempted again.
func WithRetry[T any](ctx context.Context, cfg RetryConfig, fn RetryFunc[T]) (T, error) {
	var lastErr error
	var zero T

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		default:
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}

		lastErr = err

		if !IsRetryable(err) {
			return zero, err
		}

		// Don't sleep after the last attempt
		if attempt < cfg.MaxRetries {
			delay := cfg.BaseDelay * time.Duration(1<<attempt)
			if delay > cfg.MaxDelay {
				delay = cfg.MaxDelay
			}

			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return zero, lastErr
}

// IsRetryable reports whether an error may succeed on retry. Only transient
// engine failures flagged retryable qualify; unsupported languages,
// unprepared engines, and context errors never do.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var engineErr *EngineError
	if errors.As(err, &engineErr) {
		return engineErr.Retryable
	}

	return false
}

// RetryableTranslator wraps a Translator with retry logic on Translate. The
// caching decorator itself never retries; wrapping the delegate is the
// opt-in way to add it.
type RetryableTranslator struct {
	delegate Translator
	config   RetryConfig
}

// NewRetryableTranslator creates a translator with retry logic.
func NewRetryableTranslator(delegate Translator, cfg RetryConfig) *RetryableTranslator {
	return &RetryableTranslator{
		delegate: delegate,
		config:   cfg,
	}
}

// Translate implements Translator with retry logic.
func (t *RetryableTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string, tc TextContext) (string, error) {
	return WithRetry(ctx, t.config, func() (string, error) {
		return t.delegate.Translate(ctx, text, sourceLang, targetLang, tc)
	})
}

// IsReady passes through to the delegate.
func (t *RetryableTranslator) IsReady(ctx context.Context, sourceLang, targetLang string) (bool, error) {
	return t.delegate.IsReady(ctx, sourceLang, targetLang)
}

// Prepare passes through to the delegate.
func (t *RetryableTranslator) Prepare(ctx context.Context, sourceLang, targetLang string) (PrepareResult, error) {
	return t.delegate.Prepare(ctx, sourceLang, targetLang)
}

// Close closes the delegate.
func (t *RetryableTranslator) Close() error {
	return t.delegate.Close()
}

// Verify RetryableTranslator implements Translator.
var _ Translator = (*RetryableTranslator)(nil)
