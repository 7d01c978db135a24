package providers

import (
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/recordcandy/recordcandy-server/internal/config"
	"github.com/recordcandy/recordcandy-server/internal/metadata/kakao"
	"github.com/recordcandy/recordcandy-server/internal/metadata/tmdb"
)

// ProvideTMDBClient provides the TMDB movie catalog client.
func ProvideTMDBClient(i do.Injector) (*tmdb.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*slog.Logger](i)

	client := tmdb.New(tmdb.Config{
		APIKey:   cfg.TMDB.APIKey,
		Language: cfg.TMDB.Language,
		Region:   cfg.TMDB.Region,
	}, log)

	if cfg.TMDB.APIKey == "" {
		log.Warn("TMDB API key not configured, movie search will be unavailable")
	} else {
		log.Info("TMDB client initialized", "language", cfg.TMDB.Language, "region", cfg.TMDB.Region)
	}

	return client, nil
}

// ProvideKakaoClient provides the Kakao book catalog client.
func ProvideKakaoClient(i do.Injector) (*kakao.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*slog.Logger](i)

	client := kakao.New(cfg.Kakao.RESTAPIKey, log)

	if cfg.Kakao.RESTAPIKey == "" {
		log.Warn("Kakao REST API key not configured, book search will be unavailable")
	} else {
		log.Info("Kakao client initialized")
	}

	return client, nil
}
