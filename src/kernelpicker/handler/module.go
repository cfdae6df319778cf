package handler

import (
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/controller"
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/controller/preference"
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/handler/kernelpicker"
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/internal/jsonrpcfx"
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/repository/preferredkernel"
	"go.uber.org/fx"
)

// Module provides the kernel-picker server into an Fx application.
var Module = fx.Options(
	controller.Module,
	fx.Provide(preferredkernel.New),
	fx.Provide(kernelpicker.New),
	fx.Invoke(func(m jsonrpcfx.ConnectionManager) {}),
	fx.Invoke(func(c preference.Controller) {}),
)
