// Package productlist реализует HTTP-обработчик получения всех товаров.
package productlist

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
	List(ctx context.Context) ([]*models.Product, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP возвращает все товары, начиная с самого дорогого.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.list"
	log := sl.ForRequest(h.log, op, r)

	res, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list products", sl.Err(err))
		response.Fail(w, r, err)
		return
	}

	log.Info("success to list products", slog.Int("count", len(res)))
	response.JSON(w, r, http.StatusOK, response.OKWithData(res))
}
