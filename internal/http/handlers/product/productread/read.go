// Package productread реализует HTTP-обработчик получения товара по ID.
package productread

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

// Handler обрабатывает запросы на получение товара по идентификатору.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения товара.
type Service interface {
	Read(ctx context.Context, id int) (*models.Product, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP обрабатывает HTTP-запрос на получение товара по ID.
//
// Выполняет:
// - Парсинг ID из URL.
// - Вызов бизнес-логики для чтения товара.
// - Формирование JSON-ответа с данными или ошибкой.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.read"
	log := sl.ForRequest(h.log, op, r)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		response.JSON(w, r, http.StatusBadRequest, response.Error("ID inválido"))
		return
	}

	res, err := h.service.Read(r.Context(), id)
	if err != nil {
		log.Error("failed to read product", sl.Err(err))
		response.Fail(w, r, err)
		return
	}

	log.Info("success to read product", slog.Int("id", id))
	response.JSON(w, r, http.StatusOK, response.OKWithData(res))
}
