package lingua

import (
	"strings"
	"testing"
)

func TestNewCacheKey_CaseInsensitiveLanguages(t *testing.T) {
	a := NewCacheKey("Hello", "EN", "ES", ContextUI)
	b := NewCacheKey("Hello", "en", "es", ContextUI)

	if a != b {
		t.Errorf("keys should be equal regardless of tag casing: %v vs %v", a, b)
	}
	if a.String() != b.String() {
		t.Errorf("canonical forms should match: %q vs %q", a.String(), b.String())
	}
}

func TestNewCacheKey_FieldsDistinguish(t *testing.T) {
	base := NewCacheKey("Hello", "en", "es", ContextUI)

	tests := []struct {
		name string
		key  CacheKey
	}{
		{"different text", NewCacheKey("Goodbye", "en", "es", ContextUI)},
		{"different source", NewCacheKey("Hello", "de", "es", ContextUI)},
		{"different target", NewCacheKey("Hello", "en", "fr", ContextUI)},
		{"different context", NewCacheKey("Hello", "en", "es", ContextBackend)},
	}

	for _, tt := range tests {
		if tt.key == base {
			t.Errorf("%s: key should differ from base", tt.name)
		}
		if tt.key.String() == base.String() {
			t.Errorf("%s: canonical form should differ from base", tt.name)
		}
	}
}

func TestCacheKey_StringNeverEmbedsText(t *testing.T) {
	text := "some private user sentence"
	key := NewCacheKey(text, "en", "es", ContextUserContent)

	s := key.String()
	if strings.Contains(s, text) {
		t.Errorf("canonical key %q embeds raw source text", s)
	}
	if !strings.HasPrefix(s, "en_es_user_content_") {
		t.Errorf("unexpected canonical form %q", s)
	}
}

func TestCacheKey_Deterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		a := NewCacheKey("text", "en", "ja-JP", ContextSystem)
		b := NewCacheKey("text", "en", "ja-JP", ContextSystem)
		if a.String() != b.String() {
			t.Fatalf("key creation is not deterministic: %q vs %q", a.String(), b.String())
		}
	}
}
