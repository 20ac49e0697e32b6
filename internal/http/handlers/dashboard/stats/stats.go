// Package stats реализует HTTP-обработчик сводки по коллекции:
// счётчики по статусам, должники, собранные и недополученные суммы.
package stats

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/alaagym/gym-ledger/internal/http/response"
	"github.com/alaagym/gym-ledger/internal/lib/sl"
	"github.com/alaagym/gym-ledger/internal/models"
)

// Handler управляет HTTP-запросами на получение сводки.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс агрегации сводки.
type Service interface {
	Collect(ctx context.Context) (models.DashboardStats, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.dashboard.stats"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	stats, err := h.service.Collect(r.Context())
	if err != nil {
		log.Error("failed to collect stats", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not collect stats"))
		return
	}

	render.JSON(w, r, response.OKWithData(stats))
}
