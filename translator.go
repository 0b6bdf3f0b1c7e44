package lingua

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ZaguanLabs/lingua/cache"
)

// Translator is the capability any backing translation engine must provide.
type Translator interface {
	// Translate produces translated text or fails with a translation error
	// (unsupported language, engine unavailable, transient engine failure).
	Translate(ctx context.Context, text, sourceLang, targetLang string, tc TextContext) (string, error)

	// IsReady probes whether the engine can serve the language pair. It may
	// still require I/O (e.g., checking a local model registry).
	IsReady(ctx context.Context, sourceLang, targetLang string) (bool, error)

	// Prepare triggers whatever warm-up the pair needs (e.g., asset
	// download) and returns Ready immediately if none is needed. The error
	// slot is reserved for transport/context failures; a warm-up failure is
	// the in-band Failed state.
	Prepare(ctx context.Context, sourceLang, targetLang string) (PrepareResult, error)

	// Close releases held resources. Idempotent.
	Close() error
}

// CachingTranslator decorates a backing Translator with a translation cache
// and placeholder protection. It exclusively owns its masker and cache
// instances; the delegate is shared by reference and closed by whoever
// constructed the top-level facade.
type CachingTranslator struct {
	delegate    Translator
	cache       cache.TranslationCache
	masker      *PlaceholderMasker
	protect     bool
	matchPolicy LanguageMatchPolicy
	metrics     *Metrics
	logger      zerolog.Logger
}

// Option is a functional option for configuring the CachingTranslator.
type Option func(*CachingTranslator)

// WithCache sets the translation cache. Without one, every call reaches the
// delegate.
func WithCache(c cache.TranslationCache) Option {
	return func(t *CachingTranslator) {
		t.cache = c
	}
}

// WithMasker replaces the default placeholder masker (e.g., to use custom
// token delimiters).
func WithMasker(m *PlaceholderMasker) Option {
	return func(t *CachingTranslator) {
		if m != nil {
			t.masker = m
		}
	}
}

// WithoutProtection disables placeholder masking; text reaches the delegate
// verbatim.
func WithoutProtection() Option {
	return func(t *CachingTranslator) {
		t.protect = false
	}
}

// WithLanguageMatchPolicy sets the policy for the same-language
// short-circuit. Default is exact case-insensitive matching.
func WithLanguageMatchPolicy(p LanguageMatchPolicy) Option {
	return func(t *CachingTranslator) {
		t.matchPolicy = p
	}
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(m *Metrics) Option {
	return func(t *CachingTranslator) {
		t.metrics = m
	}
}

// WithLogger sets the logger. Default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(t *CachingTranslator) {
		t.logger = logger
	}
}

// NewCachingTranslator creates the caching decorator around a backing
// engine. Placeholder protection is on by default.
func NewCachingTranslator(delegate Translator, opts ...Option) *CachingTranslator {
	t := &CachingTranslator{
		delegate:    delegate,
		masker:      NewPlaceholderMasker(),
		protect:     true,
		matchPolicy: MatchExact,
		logger:      zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Translate returns the cached translation when available, otherwise
// delegates with placeholder protection and stores the result.
//
// Identical source and target languages, and empty or whitespace-only text,
// short-circuit without a cache entry or delegate call. Delegate failures
// propagate and are never cached, so a transient error is retried from
// scratch on the next call.
func (t *CachingTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string, tc TextContext) (string, error) {
	if SameLanguage(sourceLang, targetLang, t.matchPolicy) {
		return text, nil
	}
	if strings.TrimSpace(text) == "" {
		return text, nil
	}

	key := NewCacheKey(text, sourceLang, targetLang, tc)
	if t.cache != nil {
		if cached, ok := t.cache.Get(ctx, key.String()); ok {
			t.metrics.cacheHit()
			return cached, nil
		}
		t.metrics.cacheMiss()
	}

	start := time.Now()
	var (
		translated string
		err        error
	)
	if t.protect {
		var dropped []string
		translated, dropped, err = t.masker.TranslateWithProtection(text, func(masked string) (string, error) {
			return t.delegate.Translate(ctx, masked, sourceLang, targetLang, tc)
		})
		if len(dropped) > 0 {
			t.metrics.tokensDropped(len(dropped))
			t.logger.Debug().
				Strs("tokens", dropped).
				Str("target", targetLang).
				Msg("translator dropped placeholder tokens")
		}
	} else {
		translated, err = t.delegate.Translate(ctx, text, sourceLang, targetLang, tc)
	}
	if err != nil {
		t.metrics.translateFailed()
		return "", err
	}
	t.metrics.translateDone(time.Since(start))

	if t.cache != nil {
		if perr := t.cache.Put(ctx, key.String(), translated); perr != nil {
			// Losing the cache write must not fail a successful translation.
			t.logger.Warn().Err(perr).Msg("caching translation failed")
		}
	}

	return translated, nil
}

// IsReady passes straight through to the delegate; the cache and masker play
// no role in readiness.
func (t *CachingTranslator) IsReady(ctx context.Context, sourceLang, targetLang string) (bool, error) {
	return t.delegate.IsReady(ctx, sourceLang, targetLang)
}

// Prepare passes straight through to the delegate.
func (t *CachingTranslator) Prepare(ctx context.Context, sourceLang, targetLang string) (PrepareResult, error) {
	return t.delegate.Prepare(ctx, sourceLang, targetLang)
}

// Close closes the delegate.
func (t *CachingTranslator) Close() error {
	return t.delegate.Close()
}

// ClearCache empties the cache; no-op without one.
func (t *CachingTranslator) ClearCache(ctx context.Context) error {
	if t.cache == nil {
		return nil
	}
	return t.cache.Clear(ctx)
}

// CacheSize returns the cache entry count; 0 without a cache.
func (t *CachingTranslator) CacheSize(ctx context.Context) int {
	if t.cache == nil {
		return 0
	}
	return t.cache.Size(ctx)
}

// Verify CachingTranslator implements Translator.
var _ Translator = (*CachingTranslator)(nil)
