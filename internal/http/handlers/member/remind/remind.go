// Package remind реализует HTTP-обработчик формирования ссылки
// напоминания в WhatsApp для одного члена клуба.
//
// Вид напоминания задаётся query-параметром kind: expiring (по
// умолчанию) или debt. Сервер не отправляет сообщение сам, а отдаёт
// готовую ссылку wa.me с подставленным текстом.
package remind

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/alaagym/gym-ledger/internal/http/response"
	"github.com/alaagym/gym-ledger/internal/lib/sl"
	"github.com/alaagym/gym-ledger/internal/lib/whatsapp"
	"github.com/alaagym/gym-ledger/internal/models"
	"github.com/alaagym/gym-ledger/internal/storage/snapshot"
)

// Handler управляет HTTP-запросами на формирование ссылок напоминаний.
type Handler struct {
	log     *slog.Logger
	service Service
	plans   *models.PlanCatalog
}

// Service описывает интерфейс бизнес-логики чтения записи.
type Service interface {
	Read(ctx context.Context, id string) (*models.Member, error)
}

// New создает новый Handler.
func New(log *slog.Logger, service Service, plans *models.PlanCatalog) *Handler {
	return &Handler{
		log:     log,
		service: service,
		plans:   plans,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.member.remind"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	if id == "" {
		log.Error("empty member id")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("member id is required"))
		return
	}

	kind := models.ReminderKind(r.URL.Query().Get("kind"))
	switch kind {
	case "":
		kind = models.ReminderExpiring
	case models.ReminderExpiring, models.ReminderDebt:
	default:
		log.Error("unknown reminder kind", slog.String("kind", string(kind)))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("unknown reminder kind"))
		return
	}

	member, err := h.service.Read(r.Context(), id)
	if err != nil {
		if errors.Is(err, snapshot.ErrMemberNotFound) {
			log.Error("member not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("member not found"))
			return
		}
		log.Error("failed to read member", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read member"))
		return
	}

	planName := ""
	if plan, ok := h.plans.Find(member.PlanID); ok {
		planName = plan.Name
	}

	job := models.ReminderJob{
		Kind:            kind,
		MemberID:        member.ID,
		Name:            member.Name,
		Phone:           member.Phone,
		PlanName:        planName,
		Status:          member.Status,
		RemainingAmount: member.RemainingAmount,
		EndDate:         member.EndDate,
	}

	log.Info("reminder link built", slog.String("id", id), slog.String("kind", string(kind)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"link":    whatsapp.ReminderLink(job),
		"message": whatsapp.ReminderMessage(job),
	}))
}
