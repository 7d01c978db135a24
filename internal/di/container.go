// Package di provides dependency injection configuration for the Record Candy server.
package di

import (
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/recordcandy/recordcandy-server/internal/config"
	"github.com/recordcandy/recordcandy-server/internal/di/providers"
	"github.com/recordcandy/recordcandy-server/internal/metadata/kakao"
	"github.com/recordcandy/recordcandy-server/internal/metadata/tmdb"
	"github.com/recordcandy/recordcandy-server/internal/service"
	"github.com/recordcandy/recordcandy-server/internal/validation"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideValidator)

	// Database layer
	do.Provide(injector, providers.ProvideStore)

	// Metadata layer
	do.Provide(injector, providers.ProvideTMDBClient)
	do.Provide(injector, providers.ProvideKakaoClient)

	// Business services
	do.Provide(injector, providers.ProvideRecordService)
	do.Provide(injector, providers.ProvideSearchService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns the injector ready for use.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*slog.Logger](injector)
	_ = do.MustInvoke[*validation.Validator](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*tmdb.Client](injector)
	_ = do.MustInvoke[*kakao.Client](injector)
	_ = do.MustInvoke[*service.RecordService](injector)
	_ = do.MustInvoke[*service.SearchService](injector)
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
