package testutil

import (
	"context"
	"sync/atomic"
)

// FailingWriter is a test document writer that returns Err from every Write
// call while counting the attempts.
type FailingWriter struct {
	Err   error
	calls atomic.Int32
}

func (w *FailingWriter) Write(ctx context.Context, text string) (string, error) {
	w.calls.Add(1)
	return "", w.Err
}

// Calls returns how many times Write was invoked.
func (w *FailingWriter) Calls() int {
	return int(w.calls.Load())
}

// MemoryWriter records the last text written to it.
type MemoryWriter struct {
	Path string
	Text string
	N    int
}

func (w *MemoryWriter) Write(ctx context.Context, text string) (string, error) {
	w.Text = text
	w.N++
	return w.Path, nil
}
