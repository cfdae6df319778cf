package main

import (
	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/app"
	"go.uber.org/fx"
)

func opts() fx.Option {
	return fx.Options(
		app.Module,
	)
}

func main() {
	fx.New(opts()).Run()
}
