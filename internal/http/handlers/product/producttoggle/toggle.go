// Package producttoggle реализует HTTP-обработчик переключения доступности товара.
// Тело запроса игнорируется.
package producttoggle

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
	ToggleAvailability(ctx context.Context, id int) (*models.Product, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.toggle"
	log := sl.ForRequest(h.log, op, r)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		response.JSON(w, r, http.StatusBadRequest, response.Error("ID inválido"))
		return
	}

	res, err := h.service.ToggleAvailability(r.Context(), id)
	if err != nil {
		log.Error("failed to toggle product availability", sl.Err(err))
		response.Fail(w, r, err)
		return
	}

	log.Info("success to toggle product availability", slog.Int("id", id), slog.Bool("availability", res.Availability))
	response.JSON(w, r, http.StatusOK, response.OKWithData(res))
}
