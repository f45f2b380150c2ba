// Package loginbackend собирает приложение: маршруты, middleware и HTTP-сервер.
package loginbackend

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/ahmadqaf171-stack/login-backend/internal/http/handlers/auth/login"
	"github.com/ahmadqaf171-stack/login-backend/internal/http/handlers/auth/register"
	"github.com/ahmadqaf171-stack/login-backend/internal/http/handlers/health"
	"github.com/ahmadqaf171-stack/login-backend/internal/http/handlers/root"
	settingsread "github.com/ahmadqaf171-stack/login-backend/internal/http/handlers/settings/read"
	settingsupdate "github.com/ahmadqaf171-stack/login-backend/internal/http/handlers/settings/update"
	"github.com/ahmadqaf171-stack/login-backend/internal/http/handlers/statistics/report"
	"github.com/ahmadqaf171-stack/login-backend/internal/http/handlers/users/create"
	"github.com/ahmadqaf171-stack/login-backend/internal/http/handlers/users/list"
	userread "github.com/ahmadqaf171-stack/login-backend/internal/http/handlers/users/read"
	"github.com/ahmadqaf171-stack/login-backend/internal/http/handlers/users/remove"
	userupdate "github.com/ahmadqaf171-stack/login-backend/internal/http/handlers/users/update"
	"github.com/ahmadqaf171-stack/login-backend/internal/http/middlewarectx"
	"github.com/ahmadqaf171-stack/login-backend/internal/lib/jwt"
	authservice "github.com/ahmadqaf171-stack/login-backend/internal/services/auth"
	settingsservice "github.com/ahmadqaf171-stack/login-backend/internal/services/settings"
	statisticsservice "github.com/ahmadqaf171-stack/login-backend/internal/services/statistics"
	usersservice "github.com/ahmadqaf171-stack/login-backend/internal/services/users"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(
	r chi.Router,
	logger *slog.Logger,
	jwtMaker jwt.Maker,
	authService *authservice.AuthService,
	userService *usersservice.UserService,
	settingsService *settingsservice.SettingsService,
	statisticsService *statisticsservice.StatisticsService,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)
	r.Use(middlewarectx.CORSMiddleware())
	r.Use(middlewarectx.MetricsMiddleware())

	r.Get("/", root.New(logger).ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		// Открытые конечные точки
		r.Get("/health", health.New(logger).ServeHTTP)
		r.Post("/auth/login", login.New(logger, authService).ServeHTTP)
		r.Post("/auth/register", register.New(logger, authService).ServeHTTP)

		// Группа с проверкой токена сессии
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Get("/users", list.New(logger, userService).ServeHTTP)
			r.Get("/users/{id}", userread.New(logger, userService).ServeHTTP)
			r.Post("/users", create.New(logger, userService).ServeHTTP)
			r.Put("/users/{id}", userupdate.New(logger, userService).ServeHTTP)
			r.Delete("/users/{id}", remove.New(logger, userService).ServeHTTP)
			r.Get("/statistics", report.New(logger, statisticsService).ServeHTTP)
			r.Get("/settings/{userId}", settingsread.New(logger, settingsService).ServeHTTP)
			r.Put("/settings/{userId}", settingsupdate.New(logger, settingsService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
