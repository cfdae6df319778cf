package controller

import (
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/controller/preference"
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/controller/ranking"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(ranking.New),
	fx.Provide(preference.New),
)
