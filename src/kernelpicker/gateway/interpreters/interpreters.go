// Package interpreters is the gateway to the interpreter service. Interpreter
// enumeration happens in the editor process; the client feeds its results
// into this gateway, and the rest of the service only reads the snapshot.
package interpreters

import (
	"context"
	"sync"

	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/entity"
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/internal/identity"
	"go.lsp.dev/uri"
	"go.uber.org/zap"
)

// Gateway exposes the interpreter service to controllers.
type Gateway interface {
	// GetActiveInterpreter returns the interpreter active for the given
	// resource, or nil when none is known.
	GetActiveInterpreter(ctx context.Context, resource uri.URI) (*entity.Interpreter, error)
	// GetInterpreters returns all known interpreters.
	GetInterpreters(ctx context.Context) ([]*entity.Interpreter, error)
	// GetInterpreterDetails returns the known interpreter with the given
	// path, matched by content hash, or nil when unknown.
	GetInterpreterDetails(ctx context.Context, path string) (*entity.Interpreter, error)

	// SetActiveInterpreter replaces the active interpreter snapshot for a
	// resource. A nil interpreter clears it.
	SetActiveInterpreter(ctx context.Context, resource uri.URI, interp *entity.Interpreter) error
	// SetInterpreters replaces the known interpreter snapshot.
	SetInterpreters(ctx context.Context, interps []*entity.Interpreter) error
}

type gateway struct {
	mu           sync.Mutex
	active       map[uri.URI]*entity.Interpreter
	interpreters []*entity.Interpreter
	logger       *zap.SugaredLogger
}

// New returns a Gateway holding client-supplied interpreter snapshots.
func New(logger *zap.SugaredLogger) Gateway {
	return &gateway{
		active: make(map[uri.URI]*entity.Interpreter),
		logger: logger.With("gateway", "interpreters"),
	}
}

func (g *gateway) GetActiveInterpreter(ctx context.Context, resource uri.URI) (*entity.Interpreter, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.active[resource], nil
}

func (g *gateway) GetInterpreters(ctx context.Context) ([]*entity.Interpreter, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]*entity.Interpreter, len(g.interpreters))
	copy(out, g.interpreters)
	return out, nil
}

func (g *gateway) GetInterpreterDetails(ctx context.Context, path string) (*entity.Interpreter, error) {
	want, err := identity.Hash(&entity.Interpreter{Path: path})
	if err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	for _, interp := range g.interpreters {
		got, err := identity.Hash(interp)
		if err != nil {
			continue
		}
		if got == want {
			return interp, nil
		}
	}
	return nil, nil
}

func (g *gateway) SetActiveInterpreter(ctx context.Context, resource uri.URI, interp *entity.Interpreter) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if interp == nil {
		delete(g.active, resource)
		return nil
	}
	g.active[resource] = interp
	return nil
}

func (g *gateway) SetInterpreters(ctx context.Context, interps []*entity.Interpreter) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.interpreters = make([]*entity.Interpreter, len(interps))
	copy(g.interpreters, interps)
	g.logger.Debugw("interpreter snapshot replaced", "count", len(interps))
	return nil
}
