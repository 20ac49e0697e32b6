// Package list реализует HTTP-обработчик выборки членов клуба.
//
// Фильтры передаются query-параметрами: q (поиск по имени и телефону),
// status, plan_id, debt=true. Статус каждой записи пересчитывается
// на момент запроса.
package list

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

// Handler управляет HTTP-запросами на выборку записей.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики выборки.
type Service interface {
	List(ctx context.Context, filter models.MemberFilter) ([]models.Member, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.member.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	filter := models.MemberFilter{
		Query:       r.URL.Query().Get("q"),
		Status:      models.Status(r.URL.Query().Get("status")),
		PlanID:      r.URL.Query().Get("plan_id"),
		OnlyDebtors: r.URL.Query().Get("debt") == "true",
	}

	members, err := h.service.List(r.Context(), filter)
	if err != nil {
		log.Error("failed to list members", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list members"))
		return
	}

	render.JSON(w, r, response.OKWithData(members))
}
