package userremove

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/store-api/internal/http/response"
	"github.com/magabrotheeeer/store-api/internal/lib/sl"
)

// MsgDeleted ответ на успешное удаление.
const MsgDeleted = "Usuario eliminado correctamente"

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	Remove(ctx context.Context, id int) error
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.remove"
	log := sl.ForRequest(h.log, op, r)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("invalid id format", sl.Err(err))
		response.JSON(w, r, http.StatusBadRequest, response.Error("ID inválido"))
		return
	}

	if err = h.service.Remove(r.Context(), id); err != nil {
		log.Error("failed to delete user", sl.Err(err))
		response.Fail(w, r, err)
		return
	}

	log.Info("success to delete user", slog.Int("id", id))
	response.JSON(w, r, http.StatusOK, response.Message(MsgDeleted))
}
