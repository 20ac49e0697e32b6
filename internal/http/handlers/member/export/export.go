// Package export реализует HTTP-обработчик выгрузки коллекции в CSV.
//
// Ответ — файл с арабскими заголовками и маркером UTF-8 BOM, имя файла
// включает дату формирования. Пустая коллекция даёт файл с одними
// заголовками.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	csvexport "github.com/alaagym/gym-ledger/internal/export"
	"github.com/alaagym/gym-ledger/internal/http/response"
	"github.com/alaagym/gym-ledger/internal/lib/sl"
	"github.com/alaagym/gym-ledger/internal/models"
)

// Handler управляет HTTP-запросами на выгрузку коллекции.
type Handler struct {
	log     *slog.Logger
	service Service
	plans   *models.PlanCatalog
	now     func() time.Time
}

// Service описывает интерфейс бизнес-логики выборки.
type Service interface {
	List(ctx context.Context, filter models.MemberFilter) ([]models.Member, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service, plans *models.PlanCatalog) *Handler {
	return &Handler{
		log:     log,
		service: service,
		plans:   plans,
		now:     time.Now,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.member.export"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	members, err := h.service.List(r.Context(), models.MemberFilter{})
	if err != nil {
		log.Error("failed to list members", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not export members"))
		return
	}

	now := h.now()
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", csvexport.Filename(now)))

	if err := csvexport.WriteCSV(w, members, h.plans, now); err != nil {
		// Заголовки уже ушли клиенту, менять статус поздно.
		log.Error("failed to write csv", sl.Err(err))
		return
	}
	log.Info("members exported", slog.Int("count", len(members)))
}
