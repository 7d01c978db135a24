package providers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/recordcandy/recordcandy-server/internal/api"
	"github.com/recordcandy/recordcandy-server/internal/config"
	"github.com/recordcandy/recordcandy-server/internal/metadata/kakao"
	"github.com/recordcandy/recordcandy-server/internal/metadata/tmdb"
	"github.com/recordcandy/recordcandy-server/internal/service"
	"github.com/recordcandy/recordcandy-server/internal/validation"
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
	app *api.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := h.Server.Shutdown(ctx)
	h.app.Close()
	return err
}

// ProvideHTTPServer provides the HTTP server.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*slog.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	records := do.MustInvoke[*service.RecordService](i)
	search := do.MustInvoke[*service.SearchService](i)
	movies := do.MustInvoke[*tmdb.Client](i)
	books := do.MustInvoke[*kakao.Client](i)
	validator := do.MustInvoke[*validation.Validator](i)

	handler := api.NewServer(storeHandle.Store, records, search, movies, books, validator, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start in background
	go func() {
		log.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error", "error", err)
		}
	}()

	return &HTTPServerHandle{Server: srv, app: handler}, nil
}
