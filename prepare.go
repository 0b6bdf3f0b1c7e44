package lingua

import (
	"context"
	"fmt"
	"time"
)

// PrepareState is the tag of a PrepareResult.
type PrepareState int

const (
	// PrepareReady means the engine can serve the language pair now.
	PrepareReady PrepareState = iota
	// PrepareDownloading means warm-up is in progress. Transient: it must
	// eventually resolve to Ready or Failed (or be re-polled).
	PrepareDownloading
	// PrepareFailed means warm-up failed; the result carries the cause.
	PrepareFailed
)

func (s PrepareState) String() string {
	switch s {
	case PrepareReady:
		return "ready"
	case PrepareDownloading:
		return "downloading"
	case PrepareFailed:
		return "failed"
	}
	return fmt.Sprintf("PrepareState(%d)", int(s))
}

// PrepareResult is the tagged outcome of a warm-up/preparation call.
// Terminal states are Ready and Failed.
type PrepareResult struct {
	State    PrepareState
	Progress float64 // 0.0-1.0, meaningful only while Downloading
	Err      error   // Set only when Failed
}

// ReadyResult returns a terminal Ready outcome.
func ReadyResult() PrepareResult {
	return PrepareResult{State: PrepareReady, Progress: 1}
}

// DownloadingResult returns a transient Downloading outcome with progress
// clamped to [0, 1].
func DownloadingResult(progress float64) PrepareResult {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	return PrepareResult{State: PrepareDownloading, Progress: progress}
}

// FailedResult returns a terminal Failed outcome carrying its cause.
func FailedResult(err error) PrepareResult {
	return PrepareResult{State: PrepareFailed, Err: err}
}

// Terminal reports whether the result is Ready or Failed.
func (r PrepareResult) Terminal() bool {
	return r.State != PrepareDownloading
}

// AwaitReady polls Prepare until the engine reaches a terminal state. Returns
// nil once Ready, a PrepareError once Failed, or the context error if the
// caller gives up. Abandoning the wait has no effect on the underlying
// download, which is owned by the delegate.
func AwaitReady(ctx context.Context, t Translator, sourceLang, targetLang string, pollInterval time.Duration) error {
	if pollInterval <= 0 {
		pollInterval = 500 * time.Millisecond
	}

	for {
		result, err := t.Prepare(ctx, sourceLang, targetLang)
		if err != nil {
			return err
		}

		switch result.State {
		case PrepareReady:
			return nil
		case PrepareFailed:
			return &PrepareError{
				SourceLang: sourceLang,
				TargetLang: targetLang,
				Cause:      result.Err,
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(pollInterval):
		}
	}
}
