// Package lingua provides a translation-caching and text-protection pipeline.
package lingua

// TextContext describes the provenance of a piece of text. It is part of the
// cache identity, so the same string translated as a UI label and as user
// content occupies two distinct cache slots.
type TextContext string

const (
	// ContextUI marks interface labels and other chrome text.
	ContextUI TextContext = "ui"
	// ContextBackend marks text originating from backend payloads.
	ContextBackend TextContext = "backend"
	// ContextUserContent marks user-authored content.
	ContextUserContent TextContext = "user_content"
	// ContextSystem marks system messages (errors, notifications).
	ContextSystem TextContext = "system"
)

// Valid reports whether the context is one of the closed enumeration values.
func (c TextContext) Valid() bool {
	switch c {
	case ContextUI, ContextBackend, ContextUserContent, ContextSystem:
		return true
	}
	return false
}

// MaskResult is the intermediate value produced by masking: the text with
// volatile substrings replaced by opaque tokens, and the mapping back to the
// original substrings. It is scoped to one translate call and never cached.
type MaskResult struct {
	MaskedText   string            // Text with placeholders replaced by tokens
	Placeholders map[string]string // Token -> original substring
}
