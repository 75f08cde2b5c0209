package progrock

import (
	"io"

	"github.com/vito/progrock"
)

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Stdout returns a writer for the unit's command output.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Stderr returns a writer for the unit's command errors.
func (v *Vertex) Stderr() io.Writer {
	return v.vertex.Stderr()
}

// Complete marks the vertex as finished.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}

// Cached marks the vertex as up to date.
func (v *Vertex) Cached() {
	v.vertex.Cached()
}
