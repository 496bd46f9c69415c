package testutil

import (
	"context"
	"sync"

	"github.com/alexanderramin/aiguide/internal/platform"
)

// Clipboard records writes and fails with Err when it is set. The TUI
// writes from Cmd goroutines, so access is guarded.
type Clipboard struct {
	mu    sync.Mutex
	texts []string
	Err   error
}

var _ platform.Clipboard = (*Clipboard)(nil)

func (c *Clipboard) WriteText(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return c.Err
	}
	c.texts = append(c.texts, text)
	return nil
}

// Last returns the most recent write, or "".
func (c *Clipboard) Last() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.texts) == 0 {
		return ""
	}
	return c.texts[len(c.texts)-1]
}

// Writes returns how many writes succeeded.
func (c *Clipboard) Writes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.texts)
}

// Sharer is a native share sheet that records requests and fails with Err
// when it is set.
type Sharer struct {
	mu       sync.Mutex
	requests []platform.ShareRequest
	Err      error
}

var _ platform.Sharer = (*Sharer)(nil)

func (s *Sharer) Share(_ context.Context, req platform.ShareRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.requests = append(s.requests, req)
	return nil
}

// Requests returns the successful share requests.
func (s *Sharer) Requests() []platform.ShareRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]platform.ShareRequest(nil), s.requests...)
}
