// Package preference picks the default kernel connection for a notebook. It
// pulls candidates and the active interpreter from the gateways, the pinned
// live kernel from the repository, and delegates the ordering decision to the
// ranking controller.
package preference

import (
	"context"
	"fmt"

	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/controller/ranking"
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/entity"
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/gateway/discovery"
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/gateway/interpreters"
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/internal/errors"
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/internal/specwatcher"
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/mapper"
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/repository/preferredkernel"
	tally "github.com/uber-go/tally/v4"
	"go.lsp.dev/uri"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const _nameKey = "preference"

// Recommendation is the outcome of a preferred-kernel query.
type Recommendation struct {
	// Connection is the best-ranked candidate, nil when nothing qualifies.
	Connection entity.KernelConnection
	// Exact reports whether the connection matched the profile perfectly,
	// letting callers auto-select without prompting.
	Exact bool
}

// Controller answers preferred-kernel queries for notebook resources.
type Controller interface {
	// PreferredKernel ranks the current candidate snapshot against the
	// notebook's persisted metadata and returns the top recommendation.
	// A nil Connection means no candidate qualifies.
	PreferredKernel(ctx context.Context, resource uri.URI, rawMetadata []byte) (Recommendation, error)

	// IsExactMatch re-checks a single candidate against the metadata,
	// typically after the candidate set changed.
	IsExactMatch(ctx context.Context, resource uri.URI, candidate entity.KernelConnection, rawMetadata []byte) (bool, error)

	// SetPreferredRemoteKernel pins the live remote kernel for a resource.
	// An empty id clears the pin.
	SetPreferredRemoteKernel(ctx context.Context, resource uri.URI, kernelID string) error

	// SpecChanges signals that the kernelspec directories changed and a
	// fresh discovery plus re-rank is warranted. The cancel func ends the
	// subscription and closes the channel.
	SpecChanges() (<-chan specwatcher.ChangeEvent, func())
}

// Params are inbound parameters to initialize the preference controller.
type Params struct {
	fx.In

	Logger       *zap.SugaredLogger
	Stats        tally.Scope
	Ranking      ranking.Controller
	Discovery    discovery.Gateway
	Interpreters interpreters.Gateway
	Preferred    preferredkernel.Repository
	Watcher      specwatcher.Watcher
}

type controller struct {
	logger       *zap.SugaredLogger
	stats        tally.Scope
	ranking      ranking.Controller
	discovery    discovery.Gateway
	interpreters interpreters.Gateway
	preferred    preferredkernel.Repository
	watcher      specwatcher.Watcher
}

// New creates a preference controller.
func New(p Params) Controller {
	return &controller{
		logger:       p.Logger.With("component", _nameKey),
		stats:        p.Stats.SubScope(_nameKey),
		ranking:      p.Ranking,
		discovery:    p.Discovery,
		interpreters: p.Interpreters,
		preferred:    p.Preferred,
		watcher:      p.Watcher,
	}
}

func (c *controller) PreferredKernel(ctx context.Context, resource uri.URI, rawMetadata []byte) (Recommendation, error) {
	profile, err := c.profileFor(rawMetadata)
	if err != nil {
		return Recommendation{}, err
	}

	candidates, err := c.discovery.ListKernelConnections(ctx)
	if err != nil {
		return Recommendation{}, fmt.Errorf("listing kernel connections: %w", err)
	}
	active, err := c.interpreters.GetActiveInterpreter(ctx, resource)
	if err != nil {
		return Recommendation{}, fmt.Errorf("resolving active interpreter: %w", err)
	}
	pinnedID := c.pinnedKernelID(ctx, resource)

	ranked, err := c.ranking.RankKernels(ctx, resource, candidates, profile, active, pinnedID)
	if err != nil {
		return Recommendation{}, err
	}
	if len(ranked) == 0 {
		c.stats.Counter("no_recommendation").Inc(1)
		return Recommendation{}, nil
	}

	best := ranked[len(ranked)-1]
	return Recommendation{
		Connection: best,
		Exact:      c.ranking.IsExactMatch(best, profile, pinnedID),
	}, nil
}

func (c *controller) IsExactMatch(ctx context.Context, resource uri.URI, candidate entity.KernelConnection, rawMetadata []byte) (bool, error) {
	profile, err := c.profileFor(rawMetadata)
	if err != nil {
		return false, err
	}
	return c.ranking.IsExactMatch(candidate, profile, c.pinnedKernelID(ctx, resource)), nil
}

func (c *controller) SetPreferredRemoteKernel(ctx context.Context, resource uri.URI, kernelID string) error {
	if kernelID == "" {
		return c.preferred.Delete(ctx, resource)
	}
	return c.preferred.Set(ctx, resource, kernelID)
}

func (c *controller) SpecChanges() (<-chan specwatcher.ChangeEvent, func()) {
	return c.watcher.Subscribe()
}

// profileFor parses raw notebook metadata into a profile. Absent metadata is
// not an error: it ranks as an unconstrained profile.
func (c *controller) profileFor(rawMetadata []byte) (*entity.NotebookProfile, error) {
	if len(rawMetadata) == 0 {
		return &entity.NotebookProfile{}, nil
	}
	meta, err := mapper.ParseNotebookMetadata(rawMetadata)
	if err != nil {
		return nil, fmt.Errorf("parsing notebook metadata: %w", err)
	}
	return mapper.NotebookMetadataToProfile(meta), nil
}

func (c *controller) pinnedKernelID(ctx context.Context, resource uri.URI) string {
	id, err := c.preferred.Get(ctx, resource)
	if err != nil {
		if _, ok := errors.NotFoundResource(err); !ok {
			c.logger.Warnw("reading preferred kernel id", "resource", resource, "error", err)
		}
		return ""
	}
	return id
}
