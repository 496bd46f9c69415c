// Package platform wraps the host integrations the guide uses but does not
// own: the clipboard and link sharing. Callers treat every operation here as
// best effort.
package platform

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

var (
	// ErrClipboardUnavailable indicates no clipboard backend could be used.
	ErrClipboardUnavailable = errors.New("clipboard unavailable")

	// ErrShareUnsupported indicates the host has no native share facility.
	ErrShareUnsupported = errors.New("share not supported")
)

// Clipboard writes text to a clipboard.
type Clipboard interface {
	WriteText(text string) error
}

// SystemClipboard uses the operating system clipboard (pbcopy, xclip,
// wl-copy, clip.exe).
type SystemClipboard struct{}

func (SystemClipboard) WriteText(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("system clipboard: %w", err)
	}
	return nil
}

// OSC52Clipboard asks the terminal emulator to set the clipboard with an
// OSC 52 escape sequence. It works over SSH where no system clipboard is
// reachable.
type OSC52Clipboard struct {
	Out io.Writer
}

func (c OSC52Clipboard) WriteText(text string) error {
	out := c.Out
	if out == nil {
		out = os.Stderr
	}
	if _, err := osc52.New(text).WriteTo(out); err != nil {
		return fmt.Errorf("osc52 clipboard: %w", err)
	}
	return nil
}

// FallbackClipboard tries each clipboard in order until one succeeds.
type FallbackClipboard []Clipboard

func (f FallbackClipboard) WriteText(text string) error {
	errs := make([]error, 0, len(f))
	for _, c := range f {
		err := c.WriteText(text)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return ErrClipboardUnavailable
	}
	return errors.Join(append([]error{ErrClipboardUnavailable}, errs...)...)
}

// NoClipboard rejects every write. Used when copying is switched off.
type NoClipboard struct{}

func (NoClipboard) WriteText(string) error { return ErrClipboardUnavailable }

// NewClipboard returns the clipboard for a backend name: "system", "osc52",
// "off", or "auto" (system first, then OSC 52).
func NewClipboard(backend string) (Clipboard, error) {
	switch backend {
	case "", "auto":
		return FallbackClipboard{SystemClipboard{}, OSC52Clipboard{}}, nil
	case "system":
		return SystemClipboard{}, nil
	case "osc52":
		return OSC52Clipboard{}, nil
	case "off":
		return NoClipboard{}, nil
	}
	return nil, fmt.Errorf("clipboard backend %q: unknown", backend)
}
