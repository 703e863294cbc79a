package contact

import (
	"context"
	"strings"
	"time"
)

// Adapter converts form submissions into a navigation to a mailto URI.
type Adapter struct {
	navigator Navigator
	observer  Observer
}

// NewAdapter creates an adapter. A nil navigator falls back to
// DefaultNavigator and a nil observer discards events.
func NewAdapter(navigator Navigator, observer Observer) *Adapter {
	if navigator == nil {
		navigator = DefaultNavigator()
	}
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Adapter{navigator: navigator, observer: observer}
}

// Submit builds the URI for f, hands it to the navigator and returns it.
// Navigation failures go to the observer only.
func (a *Adapter) Submit(ctx context.Context, f Fields) string {
	uri, _ := a.SubmitChecked(ctx, f)
	return uri
}

// SubmitChecked is Submit that also returns the navigation error, for
// callers that want to tell the user the URI was not opened.
func (a *Adapter) SubmitChecked(ctx context.Context, f Fields) (string, error) {
	uri := BuildURI(f)
	start := time.Now()
	err := a.navigator.Navigate(ctx, uri)
	a.observer.ObserveSubmit(ctx, SubmitEvent{
		HasName:    strings.TrimSpace(f.Name) != "",
		MessageLen: len(f.Message),
		URILen:     len(uri),
		Duration:   time.Since(start),
		Err:        err,
	})
	return uri, err
}
