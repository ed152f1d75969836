// Package health реализует проверку доступности сервиса и базы данных.
package health

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/magabrotheeeer/store-api/internal/http/response"
	"github.com/magabrotheeeer/store-api/internal/lib/sl"
)

type Handler struct {
	log *slog.Logger
	db  Pinger
}

// Pinger проверяет соединение с хранилищем.
type Pinger interface {
	Ping(ctx context.Context) error
}

func New(log *slog.Logger, db Pinger) *Handler {
	return &Handler{
		log: log,
		db:  db,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health"

	if err := h.db.Ping(r.Context()); err != nil {
		sl.ForRequest(h.log, op, r).Error("database is unavailable", sl.Err(err))
		response.JSON(w, r, http.StatusServiceUnavailable, response.Error("unavailable"))
		return
	}
	response.JSON(w, r, http.StatusOK, response.OKWithData(map[string]any{
		"status": "ok",
	}))
}
