// Package usertoggle реализует HTTP-обработчик переключения активности пользователя.
// В отличие от чтения, работает и с неактивными пользователями.
package usertoggle

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/store-api/internal/http/response"
	"github.com/magabrotheeeer/store-api/internal/lib/sl"
	"github.com/magabrotheeeer/store-api/internal/models"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	ToggleActive(ctx context.Context, id int) (*models.User, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.toggle"
	log := sl.ForRequest(h.log, op, r)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		response.JSON(w, r, http.StatusBadRequest, response.Error("ID inválido"))
		return
	}

	res, err := h.service.ToggleActive(r.Context(), id)
	if err != nil {
		log.Error("failed to toggle user status", sl.Err(err))
		response.Fail(w, r, err)
		return
	}

	log.Info("success to toggle user status", slog.Int("id", id), slog.Bool("is_active", res.IsActive))
	response.JSON(w, r, http.StatusOK, response.OKWithData(res))
}
