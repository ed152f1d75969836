package productupdate

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/store-api/internal/http/middlewarectx"
	"github.com/magabrotheeeer/store-api/internal/http/response"
	"github.com/magabrotheeeer/store-api/internal/lib/sl"
	"github.com/magabrotheeeer/store-api/internal/models"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	Update(ctx context.Context, id int, in models.ProductInput) (*models.Product, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.update"
	log := sl.ForRequest(h.log, op, r)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		response.JSON(w, r, http.StatusBadRequest, response.Error("ID inválido"))
		return
	}

	var req models.ProductRequest
	if err = render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		response.JSON(w, r, http.StatusBadRequest, response.Error(middlewarectx.MsgInvalidBody))
		return
	}
	in, err := req.Input()
	if err != nil {
		log.Error("failed to convert request", sl.Err(err))
		response.JSON(w, r, http.StatusBadRequest, response.Error("El precio debe ser un número"))
		return
	}

	res, err := h.service.Update(r.Context(), id, in)
	if err != nil {
		log.Error("failed to update product", sl.Err(err))
		response.Fail(w, r, err)
		return
	}

	log.Info("success to update product", slog.Int("id", id))
	response.JSON(w, r, http.StatusOK, response.OKWithData(res))
}
