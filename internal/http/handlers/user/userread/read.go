// Package userread реализует HTTP-обработчик получения пользователя по ID.
// Неактивные пользователи считаются отсутствующими.
package userread

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
	Read(ctx context.Context, id int) (*models.User, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.read"
	log := sl.ForRequest(h.log, op, r)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		response.JSON(w, r, http.StatusBadRequest, response.Error("ID inválido"))
		return
	}

	res, err := h.service.Read(r.Context(), id)
	if err != nil {
		log.Error("failed to read user", sl.Err(err))
		response.Fail(w, r, err)
		return
	}

	log.Info("success to read user", slog.Int("id", id))
	response.JSON(w, r, http.StatusOK, response.OKWithData(res))
}
