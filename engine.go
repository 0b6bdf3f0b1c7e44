package lingua

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/ZaguanLabs/lingua/cache"
)

// LanguageSource supplies the caller's current target language tag. A
// locale-selection facade typically implements this; fixed-pair setups use
// StaticLanguage.
type LanguageSource interface {
	TargetLang() string
}

// StaticLanguage is a LanguageSource that always returns the same tag.
type StaticLanguage string

// TargetLang implements LanguageSource.
func (s StaticLanguage) TargetLang() string {
	return string(s)
}

// EngineConfig configures an Engine. This is the explicit "configure once,
// call everywhere" object; there is no hidden process-wide state.
type EngineConfig struct {
	// SourceLang is the fixed source language tag.
	SourceLang string

	// Target supplies the target tag, read on every call.
	Target LanguageSource

	// Delegate is the backing translation engine. The Engine closes it on
	// Close.
	Delegate Translator

	// Cache holds translations. Nil disables caching.
	Cache cache.TranslationCache

	// Options are extra decorator options (masking, match policy, metrics).
	Options []Option

	// Logger records fallbacks and degradations. Zero value discards.
	Logger zerolog.Logger
}

// Engine is the top-level facade applications call. Unlike the
// CachingTranslator underneath it, Engine.Translate never fails: a
// propagated delegate failure degrades to returning the original text, with
// a log line instead of an error.
type Engine struct {
	translator *CachingTranslator
	cache      cache.TranslationCache
	sourceLang string
	target     LanguageSource
	logger     zerolog.Logger
}

// NewEngine builds the facade: the caching decorator around the delegate,
// wired to the configured cache and logger.
func NewEngine(cfg EngineConfig) (*Engine, error) {
	if cfg.Delegate == nil {
		return nil, errors.New("lingua: engine requires a delegate translator")
	}
	if cfg.SourceLang == "" {
		return nil, errors.New("lingua: engine requires a source language")
	}
	if cfg.Target == nil {
		return nil, errors.New("lingua: engine requires a target language source")
	}

	opts := make([]Option, 0, len(cfg.Options)+2)
	if cfg.Cache != nil {
		opts = append(opts, WithCache(cfg.Cache))
	}
	opts = append(opts, WithLogger(cfg.Logger))
	opts = append(opts, cfg.Options...)

	return &Engine{
		translator: NewCachingTranslator(cfg.Delegate, opts...),
		cache:      cfg.Cache,
		sourceLang: cfg.SourceLang,
		target:     cfg.Target,
		logger:     cfg.Logger,
	}, nil
}

// Translate translates text into the current target language. On any
// failure it returns the original text unchanged; the failure is logged,
// never raised.
func (e *Engine) Translate(ctx context.Context, text string, tc TextContext) string {
	targetLang := e.target.TargetLang()
	out, err := e.translator.Translate(ctx, text, e.sourceLang, targetLang, tc)
	if err != nil {
		e.logger.Warn().
			Err(err).
			Str("source", e.sourceLang).
			Str("target", targetLang).
			Msg("translation failed, falling back to original text")
		return text
	}
	return out
}

// IsReady reports whether the backing engine can serve the current pair.
// Probe failures read as not ready.
func (e *Engine) IsReady(ctx context.Context) bool {
	ready, err := e.translator.IsReady(ctx, e.sourceLang, e.target.TargetLang())
	if err != nil {
		e.logger.Debug().Err(err).Msg("readiness probe failed")
		return false
	}
	return ready
}

// Prepare triggers warm-up for the current pair. A transport failure is
// folded into a Failed result.
func (e *Engine) Prepare(ctx context.Context) PrepareResult {
	result, err := e.translator.Prepare(ctx, e.sourceLang, e.target.TargetLang())
	if err != nil {
		return FailedResult(err)
	}
	return result
}

// ClearCache empties the translation cache.
func (e *Engine) ClearCache(ctx context.Context) error {
	if e.cache == nil {
		return nil
	}
	return e.cache.Clear(ctx)
}

// Close releases the backing engine. The Engine constructed the facade, so
// it owns the delegate's shutdown.
func (e *Engine) Close() error {
	return e.translator.Close()
}
