package contact

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/pkg/browser"
)

// Navigator hands a URI to the host environment.
type Navigator interface {
	Navigate(ctx context.Context, uri string) error
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(ctx context.Context, uri string) error

func (f NavigatorFunc) Navigate(ctx context.Context, uri string) error { return f(ctx, uri) }

// OpenerNavigator launches the platform's default URI handler.
type OpenerNavigator struct {
	open func(uri string) error
}

// NewOpenerNavigator creates an opener backed by the system URL handler.
func NewOpenerNavigator() *OpenerNavigator {
	// Handler output would draw over the TUI.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return &OpenerNavigator{open: browser.OpenURL}
}

func (o *OpenerNavigator) Navigate(ctx context.Context, uri string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := o.open(uri); err != nil {
		return fmt.Errorf("opening mail client: %w", err)
	}
	return nil
}

// ClipboardNavigator copies the URI to the system clipboard so it can be
// pasted into a mail client when no opener is available.
type ClipboardNavigator struct {
	unsupported bool
	write       func(string) error
}

// ErrClipboardUnsupported is returned when no clipboard utility is present.
var ErrClipboardUnsupported = errors.New("clipboard unsupported on this system")

// NewClipboardNavigator creates a navigator that writes to the clipboard.
func NewClipboardNavigator() *ClipboardNavigator {
	return &ClipboardNavigator{unsupported: clipboard.Unsupported, write: clipboard.WriteAll}
}

func (c *ClipboardNavigator) Navigate(_ context.Context, uri string) error {
	if c.unsupported {
		return ErrClipboardUnsupported
	}
	if err := c.write(uri); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}

// MultiNavigator tries each navigator in order and stops at the first
// that succeeds. The returned error joins every failure.
type MultiNavigator []Navigator

func (m MultiNavigator) Navigate(ctx context.Context, uri string) error {
	var errs []error
	for _, n := range m {
		err := n.Navigate(ctx, uri)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return errors.New("no navigator configured")
	}
	return errors.Join(errs...)
}

// DefaultNavigator opens the URI with the platform handler and falls back
// to the clipboard.
func DefaultNavigator() Navigator {
	return MultiNavigator{NewOpenerNavigator(), NewClipboardNavigator()}
}

// RecordingNavigator stores every URI it is given. Used by tests and by
// print-only runs.
type RecordingNavigator struct {
	URIs []string
}

func (r *RecordingNavigator) Navigate(_ context.Context, uri string) error {
	r.URIs = append(r.URIs, uri)
	return nil
}

// Last returns the most recent URI, or "".
func (r *RecordingNavigator) Last() string {
	if len(r.URIs) == 0 {
		return ""
	}
	return r.URIs[len(r.URIs)-1]
}
