// Package discovery is the gateway to the candidate discovery service.
// Scanning installed interpreters, kernelspec directories and remote server
// registries happens elsewhere; the enumerated candidates are pushed into
// this gateway and controllers read the current snapshot.
package discovery

import (
	"context"
	"sync"

	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/entity"
	"go.uber.org/zap"
)

// Gateway exposes the discovered candidate set to controllers.
type Gateway interface {
	// ListKernelConnections returns the current candidate snapshot. May be
	// empty; never nil error for an empty set.
	ListKernelConnections(ctx context.Context) ([]entity.KernelConnection, error)
	// ReplaceKernelConnections swaps in a freshly discovered candidate set.
	ReplaceKernelConnections(ctx context.Context, conns []entity.KernelConnection) error
}

type gateway struct {
	mu     sync.Mutex
	conns  []entity.KernelConnection
	logger *zap.SugaredLogger
}

// New returns a Gateway holding the client-supplied candidate snapshot.
func New(logger *zap.SugaredLogger) Gateway {
	return &gateway{
		logger: logger.With("gateway", "discovery"),
	}
}

func (g *gateway) ListKernelConnections(ctx context.Context) ([]entity.KernelConnection, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]entity.KernelConnection, len(g.conns))
	copy(out, g.conns)
	return out, nil
}

func (g *gateway) ReplaceKernelConnections(ctx context.Context, conns []entity.KernelConnection) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.conns = make([]entity.KernelConnection, len(conns))
	copy(g.conns, conns)
	g.logger.Debugw("kernel connection snapshot replaced", "count", len(conns))
	return nil
}
