package gateway

import (
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/gateway/discovery"
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/gateway/interpreters"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(discovery.New),
	fx.Provide(interpreters.New),
)
