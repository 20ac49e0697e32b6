// Package remove реализует HTTP-обработчик удаления записи члена клуба.
//
// Удаление несуществующей записи не считается ошибкой: коллекция
// просто остаётся прежней, а в ответе возвращается число удалённых.
package remove

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/alaagym/gym-ledger/internal/http/response"
	"github.com/alaagym/gym-ledger/internal/lib/sl"
)

// Handler управляет HTTP-запросами на удаление записей.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики удаления записи.
type Service interface {
	Remove(ctx context.Context, id string) (int, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.member.remove"
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

	count, err := h.service.Remove(r.Context(), id)
	if err != nil {
		log.Error("failed to remove member", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not remove member"))
		return
	}

	log.Info("member removed", slog.String("id", id), slog.Int("count", count))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"removed": count,
	}))
}
