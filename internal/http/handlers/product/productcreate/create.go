// Package productcreate реализует HTTP-обработчик создания товара.
//
// Тело запроса к этому моменту уже проверено middlewarectx.Validate,
// поэтому обработчик только декодирует его и вызывает сервис.
package productcreate

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/store-api/internal/http/middlewarectx"
	"github.com/magabrotheeeer/store-api/internal/http/response"
	"github.com/magabrotheeeer/store-api/internal/lib/sl"
	"github.com/magabrotheeeer/store-api/internal/models"
)

// Handler обрабатывает запросы на создание товара.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики товаров
}

// Service описывает интерфейс бизнес-логики создания товара.
type Service interface {
	Create(ctx context.Context, in models.ProductInput) (*models.Product, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Crear producto
// @Tags Products
// @Accept  json
// @Produce  json
// @Param request body models.ProductRequest true "Datos del producto"
// @Success 200 {object} response.DataResponse
// @Failure 400 {object} response.ValidationResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /products [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.create"
	log := sl.ForRequest(h.log, op, r)

	var req models.ProductRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
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

	res, err := h.service.Create(r.Context(), in)
	if err != nil {
		log.Error("failed to create product", sl.Err(err))
		response.Fail(w, r, err)
		return
	}

	log.Info("success to create product", slog.Int("id", res.ID))
	response.JSON(w, r, http.StatusOK, response.OKWithData(res))
}
