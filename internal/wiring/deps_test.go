package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.trai.ch/unibuild/internal/app"
	_ "go.trai.ch/unibuild/internal/wiring"
)

// TestGraftResolvesComponents builds the full node graph, so a node whose
// dependency is not registered or not declared fails here.
func TestGraftResolvesComponents(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
}
