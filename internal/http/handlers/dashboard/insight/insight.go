// Package insight реализует HTTP-обработчик рекомендаций генеративной
// модели. Обработчик всегда отвечает успехом: при недоступности модели
// сервис подставляет запасное арабское сообщение.
package insight

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/alaagym/gym-ledger/internal/http/response"
)

// Handler управляет HTTP-запросами на получение рекомендаций.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс получения текста рекомендаций.
type Service interface {
	Get(ctx context.Context) string
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.dashboard.insight"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	text := h.service.Get(r.Context())
	log.Debug("insight served")
	render.JSON(w, r, response.OKWithData(map[string]any{
		"insight": text,
	}))
}
