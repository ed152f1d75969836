// Package userupdate реализует HTTP-обработчик полного обновления пользователя.
//
// Тело использует ключи username_V, email_V и role_V. Наличие ключа password
// всегда приводит к ответу 400: пароль через этот маршрут не меняется.
package userupdate

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
	Update(ctx context.Context, id int, upd models.UserUpdate) (*models.User, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.update"
	log := sl.ForRequest(h.log, op, r)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		response.JSON(w, r, http.StatusBadRequest, response.Error("ID inválido"))
		return
	}

	var req models.UserUpdateRequest
	if err = render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		response.JSON(w, r, http.StatusBadRequest, response.Error(middlewarectx.MsgInvalidBody))
		return
	}

	res, err := h.service.Update(r.Context(), id, req.Update())
	if err != nil {
		log.Error("failed to update user", sl.Err(err))
		response.Fail(w, r, err)
		return
	}

	log.Info("success to update user", slog.Int("id", id))
	response.JSON(w, r, http.StatusOK, response.OKWithData(res))
}
