// Package resume loads the résumé PDF and tracks the paged viewer state.
package resume

import (
	"context"
	"log/slog"
	"sync"
)

// FailureMessage is shown when the résumé cannot be loaded.
const FailureMessage = "Failed to load resume. Please try downloading instead."

// State is the phase of a viewer's single load attempt.
type State int

const (
	Loading State = iota
	Loaded
	Failed
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// ViewState is a snapshot of a viewer.
type ViewState struct {
	State       State
	CurrentPage int
	TotalPages  int
	Error       string
}

// Loading reports whether the load is still in flight.
func (v ViewState) Loading() bool { return v.State == Loading }

// Paged reports whether page controls should render.
func (v ViewState) Paged() bool { return v.State == Loaded && v.TotalPages > 1 }

// HasPrev reports whether a previous page exists.
func (v ViewState) HasPrev() bool { return v.Paged() && v.CurrentPage > 1 }

// HasNext reports whether a next page exists.
func (v ViewState) HasNext() bool { return v.Paged() && v.CurrentPage < v.TotalPages }

// Viewer is the state machine Loading -> Loaded | Failed. Failed is final:
// there is no retry, the page offers a direct download instead.
type Viewer struct {
	logger *slog.Logger

	mu     sync.Mutex
	state  State
	page   int
	doc    *Document
	errMsg string
	closed bool
	cancel context.CancelFunc
	done   chan struct{}
}

// NewViewer returns a viewer in the Loading state.
func NewViewer(logger *slog.Logger) *Viewer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Viewer{logger: logger, state: Loading, page: 1, done: make(chan struct{})}
}

// Start begins loading in the background. It must be called at most once.
// The result is dropped if the viewer is closed before the load finishes.
func (v *Viewer) Start(ctx context.Context, loader Loader) {
	ctx, cancel := context.WithCancel(ctx)
	v.mu.Lock()
	v.cancel = cancel
	v.mu.Unlock()

	go func() {
		defer close(v.done)
		defer cancel()

		doc, err := loader.Load(ctx)

		v.mu.Lock()
		defer v.mu.Unlock()
		if v.closed || ctx.Err() != nil {
			v.logger.Debug("discarding resume load result after teardown")
			return
		}
		if err != nil {
			v.logger.Error("error loading resume", "error", err)
			v.state = Failed
			v.errMsg = FailureMessage
			return
		}
		v.doc = doc
		v.page = 1
		v.state = Loaded
	}()
}

// Done is closed once the load attempt finishes, whether or not its
// result was applied.
func (v *Viewer) Done() <-chan struct{} {
	return v.done
}

// Close tears the viewer down and cancels an in-flight load.
func (v *Viewer) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
	if v.cancel != nil {
		v.cancel()
	}
}

// State returns a snapshot of the viewer.
func (v *Viewer) State() ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshot()
}

func (v *Viewer) snapshot() ViewState {
	vs := ViewState{State: v.state, CurrentPage: v.page, Error: v.errMsg}
	if v.doc != nil {
		vs.TotalPages = v.doc.Pages
	}
	return vs
}

// NextPage moves forward one page, stopping at the last page.
func (v *Viewer) NextPage() ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state == Loaded && v.page < v.doc.Pages {
		v.page++
	}
	return v.snapshot()
}

// PrevPage moves back one page, stopping at page 1.
func (v *Viewer) PrevPage() ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state == Loaded && v.page > 1 {
		v.page--
	}
	return v.snapshot()
}

// Document returns the loaded document, if any.
func (v *Viewer) Document() (*Document, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state != Loaded {
		return nil, false
	}
	return v.doc, true
}
