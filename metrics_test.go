package lingua

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/ZaguanLabs/lingua/cache"
)

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *Metrics

	// A nil *Metrics records nothing and must never panic.
	m.cacheHit()
	m.cacheMiss()
	m.translateDone(time.Millisecond)
	m.translateFailed()
	m.tokensDropped(3)
}

func TestMetrics_CountsDecoratorActivity(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	delegate := newStubDelegate()
	translator := NewCachingTranslator(delegate,
		WithCache(cache.NewLRUCache(16, 0)),
		WithMetrics(m),
	)
	ctx := context.Background()

	translator.Translate(ctx, "Hello", "en", "es", ContextUI) // miss + success
	translator.Translate(ctx, "Hello", "en", "es", ContextUI) // hit

	delegate.err = &EngineError{Message: "down"}
	translator.Translate(ctx, "World", "en", "es", ContextUI) // miss + failure

	if got := testutil.ToFloat64(m.CacheHits); got != 1 {
		t.Errorf("cache hits = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.CacheMisses); got != 2 {
		t.Errorf("cache misses = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.Translations); got != 1 {
		t.Errorf("translations = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.Failures); got != 1 {
		t.Errorf("failures = %v, want 1", got)
	}
}
