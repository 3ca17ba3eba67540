// Package surface abstracts the browser-driven shorts feed behind a narrow
// contract so the walker and extractor never touch automation details.
package surface

import (
	"context"
	"errors"
	"time"
)

// ErrFeedLoadTimeout reports that the feed surface did not become ready
// within the bounded wait. Session-fatal for the walker.
var ErrFeedLoadTimeout = errors.New("feed surface did not become ready")

// Captured is one network response recorded by the surface since the last
// ClearCaptured call.
type Captured struct {
	URL  string
	Body []byte
}

// Surface is the contract the walker needs from the feed layer. One surface
// instance is exclusively owned by one walker for its lifetime.
//go:generate moq -out mocks/surface.go -pkg mocks -skip-ensure -fmt goimports . Surface

type Surface interface {
	// Load navigates to the given feed entry point
	Load(ctx context.Context, url string) error

	// WaitReady blocks until the feed signals ready or the timeout elapses,
	// returning ErrFeedLoadTimeout on timeout
	WaitReady(ctx context.Context, timeout time.Duration) error

	// CurrentURL returns the url of the item currently in view
	CurrentURL() (string, error)

	// Text returns the text of the first element matching the selector.
	// Absence is a normal, typed state, not an error.
	Text(selector string) (string, bool)

	// Advance moves the feed cursor to the next item
	Advance(ctx context.Context) error

	// Engage sends the training engagement signal (like) for the current
	// item. Never called during measurement.
	Engage(ctx context.Context) error

	// CapturedTimedText returns caption-track responses observed since the
	// last ClearCaptured
	CapturedTimedText() []Captured

	// ClearCaptured drops buffered responses. Must run before advancing to
	// the next item or a later item can be mis-attributed an earlier item's
	// transcript.
	ClearCaptured()

	// Close tears the surface down. Safe to call more than once.
	Close() error
}
