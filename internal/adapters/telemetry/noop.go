// Package telemetry provides telemetry adapters that do not record anything.
package telemetry

import (
	"context"
	"io"

	"go.trai.ch/unibuild/internal/core/ports"
)

// NoOp is a ports.Telemetry that discards everything. Dry runs use it.
type NoOp struct{}

// NewNoOp creates a new NoOp.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns ctx carrying a vertex that discards output.
func (n *NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	v := noopVertex{}
	return ports.ContextWithVertex(ctx, v), v
}

// Close does nothing.
func (n *NoOp) Close() error { return nil }

type noopVertex struct{}

func (noopVertex) Stdout() io.Writer { return io.Discard }
func (noopVertex) Stderr() io.Writer { return io.Discard }
func (noopVertex) Complete(error)    {}
func (noopVertex) Cached()           {}
