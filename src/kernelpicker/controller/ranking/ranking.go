// Package ranking orders candidate kernel connections against a notebook's
// persisted profile. It is pure computation: discovery, transport and kernel
// lifecycle live elsewhere, and every call is independent of every other.
package ranking

import (
	"context"
	"fmt"
	"sort"

	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/entity"
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/internal/identity"
	tally "github.com/uber-go/tally/v4"
	"go.lsp.dev/uri"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const _nameKey = "ranking"

// Controller ranks kernel connection candidates for a notebook.
type Controller interface {
	// RankKernels returns the candidates sorted ascending by suitability,
	// so the best candidate is the last element. The pool may grow by one
	// synthesized connection when the preferred interpreter has no
	// discovered counterpart. A cancelled context yields (nil, ctx.Err()),
	// never a partial order.
	RankKernels(ctx context.Context, resource uri.URI, candidates []entity.KernelConnection, profile *entity.NotebookProfile, preferredInterpreter *entity.Interpreter, preferredRemoteKernelID string) ([]entity.KernelConnection, error)

	// IsExactMatch reports whether the candidate is a perfect match for
	// the profile by strict corroborated evidence. Pure and callable
	// independent of ranking.
	IsExactMatch(candidate entity.KernelConnection, profile *entity.NotebookProfile, preferredRemoteKernelID string) bool
}

// Params are inbound parameters to initialize the ranking controller.
type Params struct {
	fx.In

	Logger *zap.SugaredLogger
	Stats  tally.Scope
}

type controller struct {
	logger *zap.SugaredLogger
	stats  tally.Scope
}

// New creates a ranking controller.
func New(p Params) Controller {
	return &controller{
		logger: p.Logger.With("component", _nameKey),
		stats:  p.Stats.SubScope(_nameKey),
	}
}

func (c *controller) RankKernels(ctx context.Context, resource uri.URI, candidates []entity.KernelConnection, profile *entity.NotebookProfile, preferredInterpreter *entity.Interpreter, preferredRemoteKernelID string) (ranked []entity.KernelConnection, err error) {
	// Ranking must degrade to "no recommendation" rather than take down
	// candidate selection.
	defer func() {
		if r := recover(); r != nil {
			c.stats.Counter("rank_panics").Inc(1)
			c.logger.Errorw("ranking failed", "error", r)
			ranked, err = nil, fmt.Errorf("ranking kernels: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.stats.Counter("rank_calls").Inc(1)

	pool := make([]entity.KernelConnection, len(candidates))
	copy(pool, candidates)

	var active entity.KernelConnection
	if preferredInterpreter != nil {
		active = findConnectionMatchingInterpreter(preferredInterpreter, pool)
		if active == nil {
			active = synthesizeInterpreterConnection(preferredInterpreter)
			pool = append(pool, active)
		}
	}

	language := profile.TargetLanguage(resource)
	pool = filterByLanguage(pool, language, profile)

	hashes, hashErr := identity.ResolveHashes(ctx, pool)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if hashErr != nil {
		// Affected candidates rank as if no interpreter were attached.
		c.logger.Warnw("interpreter hashing incomplete", "error", hashErr)
	}

	rc := rankingContext{
		profile:           profile,
		language:          language,
		active:            active,
		hashes:            hashes,
		preferredRemoteID: preferredRemoteKernelID,
	}
	sort.SliceStable(pool, func(i, j int) bool {
		return rc.compare(pool[i], pool[j]) < 0
	})
	return pool, nil
}

func (c *controller) IsExactMatch(candidate entity.KernelConnection, profile *entity.NotebookProfile, preferredRemoteKernelID string) bool {
	c.stats.Counter("exact_match_checks").Inc(1)
	matched := isExactMatch(candidate, profile, preferredRemoteKernelID)
	if matched {
		c.stats.Counter("exact_match_hits").Inc(1)
	}
	return matched
}
