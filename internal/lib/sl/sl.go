// Package sl содержит вспомогательные функции для логгера slog.
package sl

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
)

// Err возвращает атрибут "error" с текстом ошибки. Для nil значение пустое.
//
//	log.Error("failed to read product", sl.Err(err))
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}

// ForRequest возвращает логгер с полями op и request_id.
func ForRequest(log *slog.Logger, op string, r *http.Request) *slog.Logger {
	return log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
}

// New создает логгер для окружения env: текст с уровнем debug для local и dev,
// JSON с уровнем info для остальных.
func New(env string, w io.Writer) *slog.Logger {
	switch env {
	case "local", "dev":
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
}
