// Package userlist реализует HTTP-обработчик списка активных пользователей.
package userlist

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/magabrotheeeer/store-api/internal/http/response"
	"github.com/magabrotheeeer/store-api/internal/lib/sl"
	"github.com/magabrotheeeer/store-api/internal/models"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	List(ctx context.Context) ([]*models.User, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.list"
	log := sl.ForRequest(h.log, op, r)

	res, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list users", sl.Err(err))
		response.Fail(w, r, err)
		return
	}

	log.Info("success to list users", slog.Int("count", len(res)))
	response.JSON(w, r, http.StatusOK, response.OKWithData(res))
}
