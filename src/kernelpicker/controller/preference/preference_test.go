package preference

import (
	"context"
	"testing"

	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/controller/ranking/rankingmock"
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/entity"
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/gateway/discovery/discoverymock"
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/gateway/interpreters/interpretersmock"
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/internal/specwatcher"
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/repository/preferredkernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tally "github.com/uber-go/tally/v4"
	"go.lsp.dev/uri"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type stubWatcher struct {
	ch        chan specwatcher.ChangeEvent
	cancelled bool
}

func (s *stubWatcher) Subscribe() (<-chan specwatcher.ChangeEvent, func()) {
	return s.ch, func() { s.cancelled = true }
}

type fixture struct {
	ctrl         Controller
	ranking      *rankingmock.MockController
	discovery    *discoverymock.MockGateway
	interpreters *interpretersmock.MockGateway
	watcher      *stubWatcher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	mc := gomock.NewController(t)
	f := &fixture{
		ranking:      rankingmock.NewMockController(mc),
		discovery:    discoverymock.NewMockGateway(mc),
		interpreters: interpretersmock.NewMockGateway(mc),
		watcher:      &stubWatcher{ch: make(chan specwatcher.ChangeEvent, 1)},
	}
	f.ctrl = New(Params{
		Logger:       zap.NewNop().Sugar(),
		Stats:        tally.NewTestScope("test", nil),
		Ranking:      f.ranking,
		Discovery:    f.discovery,
		Interpreters: f.interpreters,
		Preferred:    preferredkernel.New(tally.NewTestScope("test", nil)),
		Watcher:      f.watcher,
	})
	return f
}

const testMetadata = `{"kernelspec": {"name": "julia", "display_name": "Julia 1.9"}}`

func TestPreferredKernel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	resource := uri.File("/workspace/nb.ipynb")

	julia := &entity.LocalKernelSpecConnection{ID: "julia", KernelSpec: &entity.KernelSpec{Name: "julia"}}
	python := &entity.PythonKernelConnection{ID: "python"}
	candidates := []entity.KernelConnection{python, julia}

	f.discovery.EXPECT().ListKernelConnections(ctx).Return(candidates, nil)
	f.interpreters.EXPECT().GetActiveInterpreter(ctx, resource).Return(nil, nil)
	f.ranking.EXPECT().
		RankKernels(ctx, resource, candidates, gomock.Any(), nil, "").
		DoAndReturn(func(_ context.Context, _ uri.URI, _ []entity.KernelConnection, profile *entity.NotebookProfile, _ *entity.Interpreter, _ string) ([]entity.KernelConnection, error) {
			require.NotNil(t, profile.KernelSpec)
			assert.Equal(t, "julia", profile.KernelSpec.Name)
			return []entity.KernelConnection{python, julia}, nil
		})
	f.ranking.EXPECT().IsExactMatch(julia, gomock.Any(), "").Return(true)

	rec, err := f.ctrl.PreferredKernel(ctx, resource, []byte(testMetadata))
	require.NoError(t, err)
	require.NotNil(t, rec.Connection)
	assert.Equal(t, "julia", rec.Connection.ConnectionID())
	assert.True(t, rec.Exact)
}

func TestPreferredKernelNoCandidates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	resource := uri.File("/workspace/nb.ipynb")

	f.discovery.EXPECT().ListKernelConnections(ctx).Return(nil, nil)
	f.interpreters.EXPECT().GetActiveInterpreter(ctx, resource).Return(nil, nil)
	f.ranking.EXPECT().RankKernels(ctx, resource, nil, gomock.Any(), nil, "").Return(nil, nil)

	rec, err := f.ctrl.PreferredKernel(ctx, resource, nil)
	require.NoError(t, err)
	assert.Nil(t, rec.Connection)
	assert.False(t, rec.Exact)
}

func TestPreferredKernelThreadsPinnedID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	resource := uri.File("/workspace/nb.ipynb")
	require.NoError(t, f.ctrl.SetPreferredRemoteKernel(ctx, resource, "session-1"))

	live := &entity.LiveRemoteKernelConnection{ID: "session-1", ServerID: "hub"}
	f.discovery.EXPECT().ListKernelConnections(ctx).Return([]entity.KernelConnection{live}, nil)
	f.interpreters.EXPECT().GetActiveInterpreter(ctx, resource).Return(nil, nil)
	f.ranking.EXPECT().
		RankKernels(ctx, resource, gomock.Any(), gomock.Any(), nil, "session-1").
		Return([]entity.KernelConnection{live}, nil)
	f.ranking.EXPECT().IsExactMatch(live, gomock.Any(), "session-1").Return(true)

	rec, err := f.ctrl.PreferredKernel(ctx, resource, nil)
	require.NoError(t, err)
	assert.True(t, rec.Exact)

	// Clearing the pin removes the stored entry.
	require.NoError(t, f.ctrl.SetPreferredRemoteKernel(ctx, resource, ""))
	f.discovery.EXPECT().ListKernelConnections(ctx).Return(nil, nil)
	f.interpreters.EXPECT().GetActiveInterpreter(ctx, resource).Return(nil, nil)
	f.ranking.EXPECT().RankKernels(ctx, resource, gomock.Any(), gomock.Any(), nil, "").Return(nil, nil)
	_, err = f.ctrl.PreferredKernel(ctx, resource, nil)
	require.NoError(t, err)
}

func TestPreferredKernelMalformedMetadata(t *testing.T) {
	f := newFixture(t)
	_, err := f.ctrl.PreferredKernel(context.Background(), uri.File("/workspace/nb.ipynb"), []byte("{not json"))
	assert.Error(t, err)
}

func TestIsExactMatch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	resource := uri.File("/workspace/nb.ipynb")
	julia := &entity.LocalKernelSpecConnection{ID: "julia", KernelSpec: &entity.KernelSpec{Name: "julia"}}

	f.ranking.EXPECT().IsExactMatch(julia, gomock.Any(), "").Return(true)

	exact, err := f.ctrl.IsExactMatch(ctx, resource, julia, []byte(testMetadata))
	require.NoError(t, err)
	assert.True(t, exact)
}

func TestSpecChanges(t *testing.T) {
	f := newFixture(t)
	f.watcher.ch <- specwatcher.ChangeEvent{Path: "/kernels/julia/kernel.json"}

	events, cancel := f.ctrl.SpecChanges()
	select {
	case ev := <-events:
		assert.Equal(t, "/kernels/julia/kernel.json", ev.Path)
	default:
		t.Fatal("expected a buffered change event")
	}

	cancel()
	assert.True(t, f.watcher.cancelled)
}
