package quickplot

import (
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"
)

// Device is where a figure is shown. Show blocks until the figure has
// been handed over completely; afterwards the caller clears the figure
// so a device must not keep a reference to it.
type Device interface {
	Show(fig *Figure) error
}

// DeviceFunc adapts an ordinary function to a Device.
type DeviceFunc func(fig *Figure) error

func (f DeviceFunc) Show(fig *Figure) error { return f(fig) }

// -------------------------------------------------------------------------
// Recorder

// Recorder is a device keeping a copy of every figure shown.
type Recorder struct {
	mu      sync.Mutex
	figures []*Figure
}

func (r *Recorder) Show(fig *Figure) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.figures = append(r.figures, fig.Clone())
	return nil
}

// Figures returns the figures recorded so far.
func (r *Recorder) Figures() []*Figure {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*Figure(nil), r.figures...)
}

// Last returns the most recently shown figure or nil.
func (r *Recorder) Last() *Figure {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.figures) == 0 {
		return nil
	}
	return r.figures[len(r.figures)-1]
}

// Reset forgets all recorded figures.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.figures = nil
}

// WriteYAML dumps all recorded figures as a YAML stream to w.
func (r *Recorder) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for _, fig := range r.Figures() {
		if err := enc.Encode(fig); err != nil {
			return fmt.Errorf("encode figure %q: %w", fig.Title, err)
		}
	}
	return enc.Close()
}
