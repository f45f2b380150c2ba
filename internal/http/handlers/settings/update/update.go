// Package update реализует HTTP-обработчик обновления настроек пользователя.
//
// Переданные ключи поверхностно сливаются с существующими настройками;
// вложенные значения заменяются целиком, не рекурсивно.
package update

import (
	"context"
	"encoding/json"
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
)

// Request — тело запроса обновления настроек.
type Request struct {
	Settings map[string]any `json:"settings"`
}

// Service описывает интерфейс бизнес-логики обновления настроек.
type Service interface {
	Update(ctx context.Context, userID int, patch map[string]any) (map[string]any, error)
}

// Handler обрабатывает запросы обновления настроек пользователя.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создаёт новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Обновление настроек пользователя
// @Tags Settings
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param userId path int true "Идентификатор пользователя"
// @Param request body Request true "Изменяемые настройки"
// @Success 200 {object} map[string]any "Итоговые настройки"
// @Failure 404 {object} response.Message "Пользователь не найден"
// @Router /api/settings/{userId} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.settings.update"

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

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("طلب غير صالح"))
		return
	}

	merged, err := h.service.Update(r.Context(), userID, req.Settings)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			log.Error("user not found", slog.Int("userId", userID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("المستخدم غير موجود"))
			return
		}
		log.Error("failed to update settings", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("خطأ داخلي في الخادم"))
		return
	}

	log.Info("settings updated", slog.Int("userId", userID))
	render.JSON(w, r, map[string]any{
		"message":  "تم تحديث الإعدادات بنجاح",
		"settings": merged,
	})
}
