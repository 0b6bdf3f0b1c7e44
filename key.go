package lingua

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// CacheKey is the identity of one cached translation: a case-normalized
// language pair, the context, and a fixed-width hash of the original
// (unmasked) source text. Two keys are equal iff all four fields are equal.
//
// The key never embeds the raw source text, so keys stay bounded in size and
// the cache store never sees user content through its keys. The hash is
// non-cryptographic; a false hit on a collision is a tolerable rare
// inaccuracy, not a correctness blocker.
type CacheKey struct {
	SourceLang  string
	TargetLang  string
	ContentHash uint64
	TextContext TextContext
}

// NewCacheKey builds a CacheKey for one translate call. Language tags are
// lower-cased so key equality is independent of input casing.
func NewCacheKey(text, sourceLang, targetLang string, tc TextContext) CacheKey {
	return CacheKey{
		SourceLang:  strings.ToLower(sourceLang),
		TargetLang:  strings.ToLower(targetLang),
		ContentHash: xxhash.Sum64String(text),
		TextContext: tc,
	}
}

// String returns the canonical storage-key form:
// {sourceLang}_{targetLang}_{context}_{hash}. Callers must not rely on this
// string being reversible to the original text.
func (k CacheKey) String() string {
	return fmt.Sprintf("%s_%s_%s_%016x", k.SourceLang, k.TargetLang, k.TextContext, k.ContentHash)
}
