// Package update реализует HTTP-обработчик частичного обновления пользователя.
//
// Меняются только переданные скалярные поля; ответ, как и все остальные
// пути чтения, не содержит поля password.
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
	"github.com/ahmadqaf171-stack/login-backend/internal/services/users"
)

// Request — частично заполняемые поля пользователя.
type Request struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar"`
	Status   string `json:"status"`
}

// Service описывает интерфейс бизнес-логики обновления пользователя.
type Service interface {
	Update(ctx context.Context, id int, entry users.UpdateEntry) (*models.PublicUser, error)
}

// Handler обрабатывает запросы обновления пользователя.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создаёт новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Обновление пользователя
// @Tags Users
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path int true "Идентификатор пользователя"
// @Param request body Request true "Изменяемые поля"
// @Success 200 {object} map[string]any "Пользователь обновлен"
// @Failure 404 {object} response.Message "Пользователь не найден"
// @Router /api/users/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
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

	user, err := h.service.Update(r.Context(), id, users.UpdateEntry{
		Username: req.Username,
		Email:    req.Email,
		Role:     req.Role,
		Avatar:   req.Avatar,
		Status:   req.Status,
	})
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			log.Error("user not found", slog.Int("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("المستخدم غير موجود"))
			return
		}
		log.Error("failed to update user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("خطأ داخلي في الخادم"))
		return
	}

	log.Info("user updated", slog.Int("id", id))
	render.JSON(w, r, map[string]any{
		"message": "تم تحديث المستخدم بنجاح",
		"user":    user,
	})
}
