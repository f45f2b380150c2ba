package loginbackend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/ahmadqaf171-stack/login-backend/internal/config"
	"github.com/ahmadqaf171-stack/login-backend/internal/lib/jwt"
	authservice "github.com/ahmadqaf171-stack/login-backend/internal/services/auth"
	settingsservice "github.com/ahmadqaf171-stack/login-backend/internal/services/settings"
	statisticsservice "github.com/ahmadqaf171-stack/login-backend/internal/services/statistics"
	usersservice "github.com/ahmadqaf171-stack/login-backend/internal/services/users"
	"github.com/ahmadqaf171-stack/login-backend/internal/storage"
	"github.com/ahmadqaf171-stack/login-backend/internal/storage/file"
	"github.com/ahmadqaf171-stack/login-backend/internal/storage/memory"
	"github.com/ahmadqaf171-stack/login-backend/internal/storage/redisstore"
)

// App держит HTTP-сервер и выбранную подложку хранилища.
type App struct {
	server *http.Server
	logger *slog.Logger
	store  storage.Store
}

// New собирает приложение: хранилище по конфигу, сервисы, маршруты и сервер.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	store, err := newStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	guard := storage.NewGuard(store)
	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	authService := authservice.NewAuthService(guard, jwtMaker)
	userService := usersservice.NewUserService(guard)
	settingsService := settingsservice.NewSettingsService(guard)
	statisticsService := statisticsservice.NewStatisticsService(guard)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, jwtMaker, authService, userService, settingsService, statisticsService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		store:  store,
	}, nil
}

func newStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.Kind {
	case "file":
		return file.New(cfg.FilePath)
	case "memory":
		return memory.New()
	case "redis":
		return redisstore.New(ctx, cfg.RedisConnection, cfg.RedisKey)
	default:
		return nil, fmt.Errorf("unknown storage kind: %q", cfg.Kind)
	}
}

// Run запускает HTTP-сервер и останавливает его мягко по отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if closer, ok := a.store.(io.Closer); ok {
			_ = closer.Close()
		}
		return err
	}
}
