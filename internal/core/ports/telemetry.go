package ports

import (
	"context"
	"io"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the progress of a run as one vertex per unit.
type Telemetry interface {
	// Record starts a vertex and returns a context carrying it.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes the recording.
	Close() error
}

// Vertex is the progress record of one unit.
type Vertex interface {
	// Stdout returns a writer for the unit's command output.
	Stdout() io.Writer
	// Stderr returns a writer for the unit's command errors.
	Stderr() io.Writer
	// Complete marks the vertex as finished, successfully when err is nil.
	Complete(err error)
	// Cached marks the vertex as skipped because it was up to date.
	Cached()
}

type vertexKey struct{}

// ContextWithVertex returns a context carrying v.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexKey{}, v)
}

// VertexFromContext returns the vertex in ctx, if any.
func VertexFromContext(ctx context.Context) (Vertex, bool) {
	v, ok := ctx.Value(vertexKey{}).(Vertex)
	return v, ok
}
