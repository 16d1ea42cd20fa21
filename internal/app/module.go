package app

import (
	"go.uber.org/fx"

	"materi/internal/app/bus"
	"materi/internal/app/catalog"
	"materi/internal/app/cli"
	"materi/internal/app/progress"
	"materi/internal/app/render"
	"materi/internal/app/report"
	"materi/internal/app/server"
	"materi/internal/app/ui"
	"materi/internal/app/view"
)

// Module wires every component behind the command line
var Module = fx.Options(
	bus.Module,
	report.Module,
	catalog.Module,
	progress.Module,
	render.Module,
	view.Module,
	server.Module,
	ui.Module,
	cli.Module,
	fx.Provide(NewApp),
	fx.Invoke(Register),
)
