package worker

import "go.uber.org/fx"

// Module provides the reload worker pool
var Module = fx.Options(
	fx.Provide(NewWorkerPool),
)
