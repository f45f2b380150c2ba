// Package root реализует корневой HTTP-обработчик со списком
// доступных конечных точек API.
package root

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

// Handler обрабатывает запросы к корню сервиса.
type Handler struct {
	log *slog.Logger
}

// New создаёт новый Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// ServeHTTP отдаёт баннер сервиса и перечень конечных точек.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]any{
		"message": "Backend API is running!",
		"endpoints": []string{
			"POST /api/auth/login",
			"POST /api/auth/register",
			"GET /api/users",
			"GET /api/users/{id}",
			"POST /api/users",
			"PUT /api/users/{id}",
			"DELETE /api/users/{id}",
			"GET /api/statistics",
			"GET /api/settings/{userId}",
			"PUT /api/settings/{userId}",
		},
	})
}
