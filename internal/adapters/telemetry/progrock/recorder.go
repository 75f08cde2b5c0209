// Package progrock records per-unit progress with vito/progrock.
package progrock

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/unibuild/internal/core/ports"
)

// Recorder implements ports.Telemetry with one progrock vertex per unit.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
	run string
}

// New creates a Recorder writing to a fresh tape.
func New(runID string) *Recorder {
	return NewRecorder(progrock.NewTape(), runID)
}

// NewRecorder creates a Recorder writing to w. Vertex digests are scoped to
// runID so that repeated runs in one process do not collide.
func NewRecorder(w progrock.Writer, runID string) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
		run: runID,
	}
}

// Record starts a vertex named after the unit.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	d := digest.FromString(r.run + "/" + name)
	v := &Vertex{vertex: r.rec.Vertex(d, name)}
	return ports.ContextWithVertex(ctx, v), v
}

// Close closes the underlying writer if it supports closing.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
