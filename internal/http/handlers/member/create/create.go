// Package create реализует HTTP-обработчик добавления члена клуба.
//
// Handler принимает JSON-запрос с данными записи, валидирует их,
// вызывает бизнес-логику, которая вычисляет производные поля
// (end_date, status, remaining_amount), и возвращает созданную запись.
// Ссылка на несуществующий тариф — нарушение предусловия: запись
// не создаётся.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/alaagym/gym-ledger/internal/http/response"
	"github.com/alaagym/gym-ledger/internal/lib/sl"
	"github.com/alaagym/gym-ledger/internal/models"
	"github.com/alaagym/gym-ledger/internal/services/ledger"
)

// Handler управляет HTTP-запросами на добавление членов клуба.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики добавления записи.
type Service interface {
	Create(ctx context.Context, req models.DummyMember) (*models.Member, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.member.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyMember
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	member, err := h.service.Create(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrUnknownPlan):
			log.Error("unknown plan", sl.Err(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("unknown plan"))
		case errors.Is(err, ledger.ErrInvalidStartDate):
			log.Error("invalid start date", sl.Err(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("invalid start date"))
		default:
			log.Error("failed to create member", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not create member"))
		}
		return
	}

	log.Info("member created", slog.String("id", member.ID))
	render.JSON(w, r, response.OKWithData(member))
}
