// Package create реализует HTTP-обработчик административного добавления пользователя.
//
// В отличие от регистрации, пароль необязателен: при его отсутствии
// назначается пароль по умолчанию.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/ahmadqaf171-stack/login-backend/internal/http/response"
	"github.com/ahmadqaf171-stack/login-backend/internal/lib/sl"
	"github.com/ahmadqaf171-stack/login-backend/internal/models"
	"github.com/ahmadqaf171-stack/login-backend/internal/services/users"
)

// Request — входные данные для добавления пользователя.
type Request struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar"`
	Status   string `json:"status"`
}

// Service описывает интерфейс бизнес-логики добавления пользователя.
type Service interface {
	Create(ctx context.Context, entry users.CreateEntry) (*models.PublicUser, error)
}

// Handler обрабатывает запросы добавления пользователя.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создаёт новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Добавление пользователя
// @Tags Users
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body Request true "Данные пользователя"
// @Success 201 {object} map[string]any "Пользователь добавлен"
// @Failure 400 {object} response.Message "Имя или почта не переданы"
// @Router /api/users [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("الاسم والبريد مطلوبان"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("الاسم والبريد مطلوبان"))
		return
	}

	user, err := h.service.Create(r.Context(), users.CreateEntry{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Avatar:   req.Avatar,
		Status:   req.Status,
	})
	if err != nil {
		log.Error("failed to create user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("خطأ داخلي في الخادم"))
		return
	}

	log.Info("user created", slog.Int("id", user.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, map[string]any{
		"message": "تم إضافة المستخدم بنجاح",
		"user":    user,
	})
}
