package app

import (
	"context"
	"time"

	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/gateway"
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/handler"
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/internal/core"
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/internal/jsonrpcfx"
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/internal/specwatcher"
	tally "github.com/uber-go/tally/v4"
	"go.uber.org/fx"
)

// Module defines the kernel-picker application module.
var Module = fx.Options(
	gateway.Module, // outbounds
	handler.Module, // inbounds
	jsonrpcfx.Module,
	core.ConfigModule,
	core.LoggerModule,
	fx.Provide(specwatcher.New),
	fx.Provide(func(lc fx.Lifecycle) tally.Scope {
		rs, closer := tally.NewRootScope(tally.ScopeOptions{
			Tags: map[string]string{
				"service": "kernel-picker",
			},
		}, 1*time.Second)

		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})

		return rs
	}),
	fx.Decorate(decorateEnvContext),
	fx.Decorate(decorateConfigProvider),
	fx.Provide(func() Context {
		return Context{
			Environment:        "local",
			RuntimeEnvironment: "local",
		}
	}),
)
