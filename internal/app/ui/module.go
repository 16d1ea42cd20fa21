package ui

import (
	"go.uber.org/fx"

	"materi/internal/app/ui/browse"
)

// Module provides the fx dependency injection options for the ui package
var Module = fx.Options(
	browse.Module,
)
