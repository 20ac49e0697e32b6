// Package login реализует HTTP-обработчик входа оператора зала.
//
// Handler сверяет учётные данные с конфигурацией (пароль хранится
// bcrypt-хэшем) и выдаёт JWT токен для остальных операций API.
package login

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/alaagym/gym-ledger/internal/config"
	"github.com/alaagym/gym-ledger/internal/http/response"
	"github.com/alaagym/gym-ledger/internal/lib/jwt"
	"github.com/alaagym/gym-ledger/internal/lib/password"
	"github.com/alaagym/gym-ledger/internal/lib/sl"
)

// Request — учётные данные оператора.
type Request struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Handler управляет HTTP-запросами входа.
type Handler struct {
	log      *slog.Logger
	admin    config.Admin
	maker    jwt.Maker
	validate *validator.Validate
}

// New создает новый Handler.
func New(log *slog.Logger, admin config.Admin, maker jwt.Maker) *Handler {
	return &Handler{
		log:      log,
		admin:    admin,
		maker:    maker,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
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

	if req.Username != h.admin.Username {
		log.Error("unknown username")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("invalid credentials"))
		return
	}
	if err := password.CompareHash(h.admin.PasswordHash, req.Password); err != nil {
		log.Error("wrong password", sl.Err(err))
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("invalid credentials"))
		return
	}

	token, err := h.maker.GenerateToken(req.Username, "admin")
	if err != nil {
		log.Error("failed to generate token", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not generate token"))
		return
	}

	log.Info("operator logged in", slog.String("username", req.Username))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"token": token,
	}))
}
