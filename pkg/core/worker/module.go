package worker

import (
	"go.uber.org/fx"
)

// NewWorkersModule forces instantiation of every worker registered in the
// "workers" group so their lifecycle hooks are attached. Compose it once
// in the application entrypoint.
func NewWorkersModule() fx.Option {
	return fx.Invoke(
		fx.Annotate(
			func(workers []worker) {},
			fx.ParamTags(`group:"workers"`),
		),
	)
}
