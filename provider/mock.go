package provider

import (
	"context"
	"fmt"
	"sync"

	"github.com/ZaguanLabs/lingua"
)

// MockTranslator is a scriptable backing engine for tests: fixed
// translations, failure injection, unsupported-language simulation, and a
// staged prepare sequence for exercising the warm-up protocol.
type MockTranslator struct {
	mu sync.Mutex

	// Translations maps source text to translation. Unknown text is echoed
	// back bracketed.
	Translations map[string]string

	// Err, when set, fails every Translate call.
	Err error

	// Unsupported marks target language tags the engine rejects.
	Unsupported map[string]bool

	// PrepareSteps is the staged sequence Prepare walks through, one result
	// per call; the last step repeats. Empty means immediately Ready.
	PrepareSteps []lingua.PrepareResult

	// Ready is what IsReady reports. NewMockTranslator defaults it to true.
	Ready bool

	CallCount   int    // Number of Translate calls
	LastText    string // Text received by the most recent Translate call
	CloseCount  int    // Number of Close calls
	prepareCall int
}

// NewMockTranslator creates a mock with a few default translations, ready to
// serve.
func NewMockTranslator() *MockTranslator {
	return &MockTranslator{
		Translations: map[string]string{
			"Hello":       "Hola",
			"World":       "Mundo",
			"Hello World": "Hola Mundo",
		},
		Ready: true,
	}
}

// Translate returns the scripted translation, or the bracketed source text
// for unknown input.
func (m *MockTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string, tc lingua.TextContext) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CallCount++
	m.LastText = text

	if m.Err != nil {
		return "", m.Err
	}
	if m.Unsupported[targetLang] {
		return "", &lingua.UnsupportedLanguageError{Lang: targetLang}
	}

	if translation, ok := m.Translations[text]; ok {
		return translation, nil
	}
	return fmt.Sprintf("[%s]", text), nil
}

// IsReady reports the scripted readiness.
func (m *MockTranslator) IsReady(ctx context.Context, sourceLang, targetLang string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Ready, nil
}

// Prepare walks the staged sequence; once a terminal Ready step is reached
// the mock also reports ready.
func (m *MockTranslator) Prepare(ctx context.Context, sourceLang, targetLang string) (lingua.PrepareResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.PrepareSteps) == 0 {
		m.Ready = true
		return lingua.ReadyResult(), nil
	}

	step := m.PrepareSteps[m.prepareCall]
	if m.prepareCall < len(m.PrepareSteps)-1 {
		m.prepareCall++
	}
	if step.State == lingua.PrepareReady {
		m.Ready = true
	}
	return step, nil
}

// Close counts invocations; idempotent.
func (m *MockTranslator) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CloseCount++
	return nil
}

// Reset clears the call bookkeeping and the staged prepare position.
func (m *MockTranslator) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CallCount = 0
	m.LastText = ""
	m.CloseCount = 0
	m.prepareCall = 0
}

// Verify MockTranslator implements the contract.
var _ lingua.Translator = (*MockTranslator)(nil)
