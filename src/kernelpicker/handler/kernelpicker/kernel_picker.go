// Package kernelpicker implements the kernel-picker service's JSON-RPC
// surface. Each client connection gets its own router; ranking and
// preference decisions are delegated to the controllers, and snapshot
// notifications feed the gateways.
package kernelpicker

import (
	"context"
	"fmt"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/controller/preference"
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/controller/ranking"
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/gateway/discovery"
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/gateway/interpreters"
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/internal/jsonrpcfx"
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/internal/specwatcher"
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/model"
	tally "github.com/uber-go/tally/v4"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Params are inbound parameters to initialize the handler.
type Params struct {
	fx.In

	Logger       *zap.SugaredLogger
	Stats        tally.Scope
	JSONRPC      jsonrpcfx.JSONRPCModule
	Ranking      ranking.Controller
	Preference   preference.Controller
	Discovery    discovery.Gateway
	Interpreters interpreters.Gateway
}

// New registers a connection manager with the JSON-RPC module and returns it.
func New(p Params) (jsonrpcfx.ConnectionManager, error) {
	c := &jsonRPCConnectionManager{
		logger:        p.Logger.With("component", "handler"),
		stats:         p.Stats.SubScope("json_rpc"),
		ranking:       p.Ranking,
		preference:    p.Preference,
		discovery:     p.Discovery,
		interpreters:  p.Interpreters,
		subscriptions: make(map[uuid.UUID]func()),
	}
	if err := p.JSONRPC.RegisterConnectionManager(c); err != nil {
		return nil, err
	}
	return c, nil
}

type jsonRPCConnectionManager struct {
	logger       *zap.SugaredLogger
	stats        tally.Scope
	ranking      ranking.Controller
	preference   preference.Controller
	discovery    discovery.Gateway
	interpreters interpreters.Gateway

	mu            sync.Mutex
	subscriptions map[uuid.UUID]func()
}

// NewConnection returns a router bound to a fresh session id and starts
// forwarding kernelspec change notifications to the client.
func (c *jsonRPCConnectionManager) NewConnection(ctx context.Context, conn *jsonrpc2.Conn) (jsonrpcfx.Router, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("error while creating new connection: %w", err)
	}

	if conn != nil {
		events, cancel := c.preference.SpecChanges()
		c.mu.Lock()
		c.subscriptions[id] = cancel
		c.mu.Unlock()
		go c.forwardSpecChanges(ctx, *conn, events)
	}

	return &jsonRPCRouter{
		logger:       c.logger,
		stats:        c.stats,
		uuid:         id,
		ranking:      c.ranking,
		preference:   c.preference,
		discovery:    c.discovery,
		interpreters: c.interpreters,
	}, nil
}

// RemoveConnection cleans up a closed connection.
func (c *jsonRPCConnectionManager) RemoveConnection(ctx context.Context, id uuid.UUID) {
	c.mu.Lock()
	cancel := c.subscriptions[id]
	delete(c.subscriptions, id)
	c.mu.Unlock()
	if cancel != nil {
		cancel()
	}

	c.logger.Debugw("connection removed", zap.Stringer("uuid", id))
}

// forwardSpecChanges pushes kernelspec change events to the client until the
// subscription is cancelled.
func (c *jsonRPCConnectionManager) forwardSpecChanges(ctx context.Context, conn jsonrpc2.Conn, events <-chan specwatcher.ChangeEvent) {
	for ev := range events {
		c.stats.Counter("specs_changed").Inc(1)
		if err := conn.Notify(ctx, MethodSpecsChanged, model.SpecsChangedParams{Path: ev.Path}); err != nil {
			c.logger.Warnw("failed to notify client of kernelspec change", "path", ev.Path, "error", err)
		}
	}
}
