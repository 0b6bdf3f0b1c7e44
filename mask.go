package lingua

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Default token delimiters: mathematical white square brackets (U+27E6,
// U+27E7). They never appear in any recognized placeholder pattern, so an
// inserted token can never be re-matched by a later pattern class.
const (
	defaultTokenOpen  = "⟦"
	defaultTokenClose = "⟧"
)

// placeholderPatterns are the recognized placeholder classes, in fixed scan
// order. Order only prevents double-masking of overlapping matches; the
// final unmasked output is the same either way.
var placeholderPatterns = []*regexp.Regexp{
	// Positional/format specifiers, including the literal %% escape.
	regexp.MustCompile(`%(?:\d+\$)?[-+ #0,(]*(?:\d+)?(?:\.\d+)?[diouxXeEfFgGaAcsStTbBhHnp%]`),
	// Brace-named placeholders and purely numeric braces: {name}, {0}.
	regexp.MustCompile(`\{(?:[a-zA-Z_][a-zA-Z0-9_]*|\d+)\}`),
	// Template expressions: ${...} with arbitrary non-} content.
	regexp.MustCompile(`\$\{[^}]*\}`),
	// Markup tags: opening (with attributes), closing, and self-closing.
	regexp.MustCompile(`</?[a-zA-Z][a-zA-Z0-9]*(?:\s+[^<>]*)?/?>`),
}

// PlaceholderMasker protects machine-meaningful substrings (format
// specifiers, named tokens, template expressions, markup tags) from being
// mutated by a natural-language translator. Masking and unmasking are total
// functions over arbitrary strings and never fail.
//
// A PlaceholderMasker is stateless apart from its delimiter configuration and
// is safe for concurrent use.
type PlaceholderMasker struct {
	tokenOpen  string
	tokenClose string
}

// MaskerOption configures a PlaceholderMasker.
type MaskerOption func(*PlaceholderMasker)

// WithTokenDelimiters overrides the token delimiter pair. The delimiters must
// be drawn from characters that cannot appear inside any placeholder pattern
// match; the defaults satisfy this.
func WithTokenDelimiters(open, close string) MaskerOption {
	return func(m *PlaceholderMasker) {
		if open != "" && close != "" {
			m.tokenOpen = open
			m.tokenClose = close
		}
	}
}

// NewPlaceholderMasker creates a masker with the default token delimiters.
func NewPlaceholderMasker(opts ...MaskerOption) *PlaceholderMasker {
	m := &PlaceholderMasker{
		tokenOpen:  defaultTokenOpen,
		tokenClose: defaultTokenClose,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// token renders the opaque token for index n, e.g. ⟦PH0⟧.
func (m *PlaceholderMasker) token(n int) string {
	return m.tokenOpen + "PH" + strconv.Itoa(n) + m.tokenClose
}

// tokenIndex parses the numeric index out of a token. Returns -1 for a
// malformed token.
func (m *PlaceholderMasker) tokenIndex(token string) int {
	inner := strings.TrimPrefix(token, m.tokenOpen+"PH")
	inner = strings.TrimSuffix(inner, m.tokenClose)
	n, err := strconv.Atoi(inner)
	if err != nil {
		return -1
	}
	return n
}

// Mask replaces every recognized placeholder with a unique opaque token and
// returns the masked text together with the token->original mapping. Text
// with no placeholders (including the empty string) is returned unchanged
// with an empty mapping.
func (m *PlaceholderMasker) Mask(text string) MaskResult {
	placeholders := make(map[string]string)
	if text == "" {
		return MaskResult{MaskedText: text, Placeholders: placeholders}
	}

	masked := text
	next := 0

	for _, pattern := range placeholderPatterns {
		locs := pattern.FindAllStringIndex(masked, -1)
		if len(locs) == 0 {
			continue
		}

		// Snapshot the text the matches were found in; each match is
		// re-verified against it before replacement.
		snapshot := masked

		// Assign indices left-to-right, replace right-to-left so earlier
		// replacements don't shift the offsets of pending matches.
		base := next
		for i := len(locs) - 1; i >= 0; i-- {
			start, end := locs[i][0], locs[i][1]
			original := snapshot[start:end]

			// The span must still hold exactly the matched substring, and the
			// match must not cover an already-inserted token.
			if masked[start:end] != original ||
				strings.Contains(original, m.tokenOpen) ||
				strings.Contains(original, m.tokenClose) {
				continue
			}

			tok := m.token(base + i)
			placeholders[tok] = original
			masked = masked[:start] + tok + masked[end:]
		}
		// Skipped matches leave gaps in the sequence rather than risking a
		// reused index in the next class.
		next = base + len(locs)
	}

	return MaskResult{MaskedText: masked, Placeholders: placeholders}
}

// Unmask restores original placeholder text for every token present in
// maskedText. Tokens are processed in descending index order so a
// shorter-numeral token can never match inside a longer one (PH1 vs PH10).
//
// Tokens the translator dropped from the text are returned in the second
// value; that is a soft degradation, never an error.
func (m *PlaceholderMasker) Unmask(maskedText string, placeholders map[string]string) (string, []string) {
	if len(placeholders) == 0 {
		return maskedText, nil
	}

	tokens := make([]string, 0, len(placeholders))
	for tok := range placeholders {
		tokens = append(tokens, tok)
	}
	sort.Slice(tokens, func(i, j int) bool {
		return m.tokenIndex(tokens[i]) > m.tokenIndex(tokens[j])
	})

	var dropped []string
	out := maskedText
	for _, tok := range tokens {
		if !strings.Contains(out, tok) {
			dropped = append(dropped, tok)
			continue
		}
		out = strings.ReplaceAll(out, tok, placeholders[tok])
	}
	return out, dropped
}

// TranslateWithProtection masks text, runs the supplied translate function on
// the masked form, and unmasks the result. This is the single entry point the
// caching decorator uses; callers should not run Mask/Unmask as a manual
// two-step sequence.
//
// The returned slice lists tokens the translate function dropped from the
// text, if any.
func (m *PlaceholderMasker) TranslateWithProtection(text string, translate func(masked string) (string, error)) (string, []string, error) {
	result := m.Mask(text)
	translated, err := translate(result.MaskedText)
	if err != nil {
		return "", nil, err
	}
	out, dropped := m.Unmask(translated, result.Placeholders)
	return out, dropped, nil
}
