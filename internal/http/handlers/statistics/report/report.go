// Package report реализует HTTP-обработчик сводки для панели управления.
package report

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ahmadqaf171-stack/login-backend/internal/http/response"
	"github.com/ahmadqaf171-stack/login-backend/internal/lib/sl"
	"github.com/ahmadqaf171-stack/login-backend/internal/services/statistics"
)

// Service описывает интерфейс бизнес-логики формирования сводки.
type Service interface {
	Report(ctx context.Context) (*statistics.Report, error)
}

// Handler обрабатывает запросы сводки.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создаёт новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Сводка панели управления
// @Tags Statistics
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} statistics.Report
// @Failure 401 {object} response.Message
// @Failure 403 {object} response.Message
// @Router /api/statistics [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.statistics.report"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	report, err := h.service.Report(r.Context())
	if err != nil {
		log.Error("failed to build report", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("خطأ داخلي في الخادم"))
		return
	}

	log.Info("report built", slog.Int("total_users", report.TotalUsers))
	render.JSON(w, r, report)
}
