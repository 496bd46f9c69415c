package platform

import (
	"context"
	"errors"
	"fmt"
)

// ShareRequest is the payload handed to a native share sheet.
type ShareRequest struct {
	Title string
	Text  string
	URL   string
}

// Sharer opens a native share facility.
type Sharer interface {
	Share(ctx context.Context, req ShareRequest) error
}

// NoShare is the Sharer for hosts without a share sheet, which includes
// every terminal.
type NoShare struct{}

func (NoShare) Share(context.Context, ShareRequest) error { return ErrShareUnsupported }

// ShareOutcome reports which path ShareOrCopy took.
type ShareOutcome int

const (
	OutcomeShared ShareOutcome = iota
	OutcomeCopied
	OutcomeFailed
)

// ShareOrCopy shares req natively and falls back to copying req.URL when the
// host cannot share. The returned error is for logging only.
func ShareOrCopy(ctx context.Context, s Sharer, c Clipboard, req ShareRequest) (ShareOutcome, error) {
	if s != nil {
		err := s.Share(ctx, req)
		if err == nil {
			return OutcomeShared, nil
		}
		if !errors.Is(err, ErrShareUnsupported) {
			return OutcomeFailed, fmt.Errorf("sharing: %w", err)
		}
	}
	if c == nil {
		return OutcomeFailed, ErrClipboardUnavailable
	}
	if err := c.WriteText(req.URL); err != nil {
		return OutcomeFailed, fmt.Errorf("copying share link: %w", err)
	}
	return OutcomeCopied, nil
}
