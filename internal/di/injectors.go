//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"respire/internal"
	"respire/internal/controllers"
	"respire/internal/coping"
	"respire/internal/providers"
	"respire/internal/services"
	"respire/internal/storage"
	"respire/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		storage.NewMemoryStore,
		storage.NewZstdCompressor,
		storage.NewFileManager,
		storage.NewKeyValueStore,
		storage.NewKeys,
		storage.NewScheduler,

		services.NewWriteGuard,
		services.NewSystemClock,
		services.NewSettingsService,
		services.NewTriggerLogService,
		services.NewQuitClockService,
		services.NewBountyLedgerService,
		services.NewDashboardService,
		services.NewResetService,
		provideJournal,
		coping.NewProtocol,

		controllers.NewLedgerController,
		controllers.NewPanicController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
