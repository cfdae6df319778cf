package interpreters

import (
	"context"
	"testing"

	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/uri"
	"go.uber.org/zap"
)

func TestActiveInterpreter(t *testing.T) {
	ctx := context.Background()
	g := New(zap.NewNop().Sugar())
	resource := uri.File("/workspace/analysis.ipynb")

	interp, err := g.GetActiveInterpreter(ctx, resource)
	require.NoError(t, err)
	assert.Nil(t, interp)

	want := &entity.Interpreter{Path: "/usr/bin/python3", EnvName: "base"}
	require.NoError(t, g.SetActiveInterpreter(ctx, resource, want))

	interp, err = g.GetActiveInterpreter(ctx, resource)
	require.NoError(t, err)
	assert.Equal(t, want, interp)

	require.NoError(t, g.SetActiveInterpreter(ctx, resource, nil))
	interp, err = g.GetActiveInterpreter(ctx, resource)
	require.NoError(t, err)
	assert.Nil(t, interp)
}

func TestGetInterpreterDetails(t *testing.T) {
	ctx := context.Background()
	g := New(zap.NewNop().Sugar())

	require.NoError(t, g.SetInterpreters(ctx, []*entity.Interpreter{
		{Path: "/usr/bin/python3", DisplayName: "Python 3.11"},
		{Path: "/opt/venv/bin/python3", EnvName: "venv"},
	}))

	t.Run("known path matched by hash", func(t *testing.T) {
		// A differently spelled path still resolves to the same interpreter.
		interp, err := g.GetInterpreterDetails(ctx, "/usr/bin/../bin/python3")
		require.NoError(t, err)
		require.NotNil(t, interp)
		assert.Equal(t, "Python 3.11", interp.DisplayName)
	})

	t.Run("unknown path", func(t *testing.T) {
		interp, err := g.GetInterpreterDetails(ctx, "/nowhere/python")
		require.NoError(t, err)
		assert.Nil(t, interp)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := g.GetInterpreterDetails(ctx, "")
		assert.Error(t, err)
	})
}
