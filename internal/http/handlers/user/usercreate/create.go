// Package usercreate реализует HTTP-обработчик создания пользователя.
//
// Handler декодирует проверенное тело запроса и вызывает сервис, который
// отклоняет занятые username и email.
package usercreate

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

// Handler обрабатывает запросы на создание пользователя.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики пользователей
}

// Service описывает интерфейс бизнес-логики создания пользователя.
type Service interface {
	Create(ctx context.Context, req models.UserCreateRequest) (*models.User, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Crear usuario
// @Tags Users
// @Accept  json
// @Produce  json
// @Param request body models.UserCreateRequest true "Datos del usuario"
// @Success 200 {object} response.DataResponse
// @Failure 400 {object} response.ErrorResponse "Validación o usuario duplicado"
// @Failure 500 {object} response.ErrorResponse
// @Router /users [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.create"
	log := sl.ForRequest(h.log, op, r)

	var req models.UserCreateRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		response.JSON(w, r, http.StatusBadRequest, response.Error(middlewarectx.MsgInvalidBody))
		return
	}

	res, err := h.service.Create(r.Context(), req)
	if err != nil {
		log.Error("failed to create user", sl.Err(err))
		response.Fail(w, r, err)
		return
	}

	log.Info("success to create user", slog.Int("id", res.ID))
	response.JSON(w, r, http.StatusOK, response.OKWithData(res))
}
