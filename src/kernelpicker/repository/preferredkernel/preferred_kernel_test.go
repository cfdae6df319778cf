package preferredkernel

import (
	"context"
	"testing"

	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tally "github.com/uber-go/tally/v4"
	"go.lsp.dev/uri"
)

func TestPreferredKernelRepository(t *testing.T) {
	testScope := tally.NewTestScope("testing", make(map[string]string, 0))
	resource := uri.File("/workspace/analysis.ipynb")

	t.Run("should Set and Get successfully", func(t *testing.T) {
		repository := New(testScope)

		err := repository.Set(context.Background(), resource, "session-1")
		require.NoError(t, err)
		val, err := repository.Get(context.Background(), resource)
		require.NoError(t, err)
		assert.Equal(t, "session-1", val)
	})

	t.Run("should fail to get something that was not Set", func(t *testing.T) {
		repository := New(testScope)

		_, err := repository.Get(context.Background(), resource)
		require.Error(t, err)
		var nf *errors.ResourceNotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, resource, nf.Resource)
	})

	t.Run("should reject empty kernel id", func(t *testing.T) {
		repository := New(testScope)

		err := repository.Set(context.Background(), resource, "")
		assert.Error(t, err)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	testScope := tally.NewTestScope("testing", make(map[string]string, 0))
	resource := uri.File("/workspace/analysis.ipynb")

	repository := New(testScope)
	require.NoError(t, repository.Set(ctx, resource, "session-1"))

	count, err := repository.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, repository.Delete(ctx, resource))

	_, err = repository.Get(ctx, resource)
	assert.Error(t, err)

	count, err = repository.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// Deleting an absent entry is a no-op.
	assert.NoError(t, repository.Delete(ctx, resource))
}
