//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"atd/internal"
	"atd/internal/controllers"
	"atd/internal/providers"
	"atd/internal/services"
	"atd/internal/structures"
	"atd/internal/tracking"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewCacheProvider,
		providers.NewMetricsProvider,

		tracking.NewCompressor,
		services.NewTrackingService,
		tracking.NewFileManager,
		tracking.NewExporter,
		tracking.NewInputSampler,
		tracking.NewProcessSampler,
		tracking.NewTracker,
		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
