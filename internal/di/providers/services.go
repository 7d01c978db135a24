package providers

import (
	"context"
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/recordcandy/recordcandy-server/internal/config"
	"github.com/recordcandy/recordcandy-server/internal/metadata/kakao"
	"github.com/recordcandy/recordcandy-server/internal/metadata/tmdb"
	"github.com/recordcandy/recordcandy-server/internal/service"
)

// ProvideRecordService provides the record lifecycle service.
func ProvideRecordService(i do.Injector) (*service.RecordService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*slog.Logger](i)

	svc, err := service.NewRecordService(context.Background(), storeHandle.Store, log)
	if err != nil {
		return nil, err
	}

	log.Info("Record service initialized")

	return svc, nil
}

// ProvideSearchService provides the combined movie and book search service.
func ProvideSearchService(i do.Injector) (*service.SearchService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*slog.Logger](i)
	movies := do.MustInvoke[*tmdb.Client](i)
	books := do.MustInvoke[*kakao.Client](i)

	svc := service.NewSearchService(movies, books, cfg.Search.SettleWindow, log)

	log.Info("Search service initialized", "settle_window", cfg.Search.SettleWindow)

	return svc, nil
}
