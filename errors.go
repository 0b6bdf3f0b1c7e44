package lingua

import (
	"errors"
	"fmt"
)

// UnsupportedLanguageError indicates the backing translator cannot map a
// requested language tag to anything it understands. Never retried
// automatically and not resolvable via Prepare.
type UnsupportedLanguageError struct {
	Lang  string
	Cause error
}

func (e *UnsupportedLanguageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("unsupported language %q: %v", e.Lang, e.Cause)
	}
	return fmt.Sprintf("unsupported language %q", e.Lang)
}

func (e *UnsupportedLanguageError) Unwrap() error {
	return e.Cause
}

// EngineUnavailableError indicates the backing translator is not prepared for
// the requested language pair. Distinct from UnsupportedLanguageError: it is
// resolvable via Prepare.
type EngineUnavailableError struct {
	SourceLang string
	TargetLang string
	Cause      error
}

func (e *EngineUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("engine not prepared for %s->%s: %v", e.SourceLang, e.TargetLang, e.Cause)
	}
	return fmt.Sprintf("engine not prepared for %s->%s", e.SourceLang, e.TargetLang)
}

func (e *EngineUnavailableError) Unwrap() error {
	return e.Cause
}

// EngineError indicates a transient engine failure during a translate call
// (network error, runtime failure). The core never retries these; the
// Retryable flag tells callers and wrappers whether a retry may help.
type EngineError struct {
	Message   string
	Cause     error
	Retryable bool
}

func (e *EngineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("engine error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("engine error: %s", e.Message)
}

func (e *EngineError) Unwrap() error {
	return e.Cause
}

// PrepareError indicates a warm-up/preparation failure for a language pair.
type PrepareError struct {
	SourceLang string
	TargetLang string
	Cause      error
}

func (e *PrepareError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("preparation failed for %s->%s: %v", e.SourceLang, e.TargetLang, e.Cause)
	}
	return fmt.Sprintf("preparation failed for %s->%s", e.SourceLang, e.TargetLang)
}

func (e *PrepareError) Unwrap() error {
	return e.Cause
}

// IsUnsupportedLanguage reports whether err wraps an UnsupportedLanguageError.
func IsUnsupportedLanguage(err error) bool {
	var target *UnsupportedLanguageError
	return errors.As(err, &target)
}

// IsEngineUnavailable reports whether err wraps an EngineUnavailableError,
// meaning a Prepare call may resolve the failure.
func IsEngineUnavailable(err error) bool {
	var target *EngineUnavailableError
	return errors.As(err, &target)
}
