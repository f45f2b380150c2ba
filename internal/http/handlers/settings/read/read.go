// Package read реализует HTTP-обработчик получения настроек пользователя.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ahmadqaf171-stack/login-backend/internal/http/response"
	"github.com/ahmadqaf171-stack/login-backend/internal/lib/sl"
	"github.com/ahmadqaf171-stack/login-backend/internal/models"
	"github.com/ahmadqaf171-stack/login-backend/internal/services/settings"
)

// Service описывает интерфейс бизнес-логики чтения настроек.
type Service interface {
	Get(ctx context.Context, userID int) (*settings.UserSettings, error)
}

// Handler обрабатывает запросы чтения настроек пользователя.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создаёт новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Настройки пользователя
// @Tags Settings
// @Produce  json
// @Security BearerAuth
// @Param userId path int true "Идентификатор пользователя"
// @Success 200 {object} settings.UserSettings
// @Failure 404 {object} response.Message "Пользователь не найден"
// @Router /api/settings/{userId} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.settings.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, err := strconv.Atoi(chi.URLParam(r, "userId"))
	if err != nil {
		log.Error("failed to decode userId from url", sl.Err(err))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("المستخدم غير موجود"))
		return
	}

	result, err := h.service.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			log.Error("user not found", slog.Int("userId", userID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("المستخدم غير موجود"))
			return
		}
		log.Error("failed to read settings", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("خطأ داخلي في الخادم"))
		return
	}

	log.Info("settings read", slog.Int("userId", userID))
	render.JSON(w, r, result)
}
