// Package testsupport holds helpers shared by the package tests: a
// recording container, a change counter and log capture.
package testsupport

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/goliatone/go-uibind/internal/logging"
	"github.com/goliatone/go-uibind/pkg/widgets"
)

// Recorder is a container that keeps every appended element.
type Recorder struct {
	Elements []widgets.Element
}

// Append records el.
func (r *Recorder) Append(el widgets.Element) {
	r.Elements = append(r.Elements, el)
}

// Keys returns the bound keys of the recorded elements in append order.
func (r *Recorder) Keys() []string {
	out := make([]string, 0, len(r.Elements))
	for _, el := range r.Elements {
		out = append(out, el.View().Key)
	}
	return out
}

// Views snapshots the recorded elements.
func (r *Recorder) Views() []widgets.View {
	out := make([]widgets.View, 0, len(r.Elements))
	for _, el := range r.Elements {
		out = append(out, el.View())
	}
	return out
}

// Counter counts change callbacks.
type Counter struct {
	Calls int
}

// Inc is the change callback.
func (c *Counter) Inc() { c.Calls++ }

// LogBuffer is a concurrency-safe log sink.
type LogBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *LogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// String returns everything logged so far.
func (b *LogBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// CaptureLogs routes the library logger into a text handler at level for
// the rest of the test and restores the silent logger afterwards.
func CaptureLogs(t *testing.T, level slog.Level) *LogBuffer {
	t.Helper()
	buf := &LogBuffer{}
	logging.Set(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: level})))
	t.Cleanup(func() { logging.Set(nil) })
	return buf
}
