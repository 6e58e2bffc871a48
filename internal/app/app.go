package app

import (
	"context"
	"net/http"
	"time"

	"civic_backend/internal/config"
)

const sessionCleanupInterval = time.Hour

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

func (s *App) Run() error {
	s.initServiceProvider()
	log := s.ServiceProvider.Logger()

	err := config.Load(".env")
	if err != nil {
		// Not fatal: configuration may come from the environment directly.
		log.Warn().Err(err).Msg("no .env file loaded")
	}

	ctx := context.Background()
	r := s.ServiceProvider.Router(ctx)

	go s.runSessionCleanup(ctx)

	log.Info().Str("addr", s.ServiceProvider.HTTPCfg().Address()).Msg("starting server")

	return http.ListenAndServe(s.ServiceProvider.HTTPCfg().Address(), r)
}

// runSessionCleanup - drops expired sessions on a fixed interval.
func (s *App) runSessionCleanup(ctx context.Context) {
	log := s.ServiceProvider.Logger()
	ticker := time.NewTicker(sessionCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := s.ServiceProvider.SessionRepo(ctx).DeleteExpired(ctx, time.Now())
			if err != nil {
				log.Warn().Err(err).Msg("session cleanup")
				continue
			}
			if removed > 0 {
				log.Info().Int64("removed", removed).Msg("expired sessions removed")
			}
		}
	}
}
