// Package middlewarectx содержит chi-middleware приложения: проверку входных
// данных маршрута, ограничение частоты запросов и метрики Prometheus.
package middlewarectx

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/store-api/internal/http/response"
	"github.com/magabrotheeeer/store-api/internal/lib/sl"
	"github.com/magabrotheeeer/store-api/internal/validation"
)

// MsgInvalidBody ответ на тело, которое не является JSON-объектом.
const MsgInvalidBody = "El cuerpo de la solicitud no es un JSON válido"

// MsgBodyTooLarge ответ на тело больше MaxBodyBytes.
const MsgBodyTooLarge = "El cuerpo de la solicitud es demasiado grande"

// MaxBodyBytes предел размера тела, которое читает Validate.
const MaxBodyBytes = 1 << 20

func hasBodyRules(rules []validation.Rule) bool {
	for _, rule := range rules {
		if rule.In == validation.Body {
			return true
		}
	}
	return false
}

// Validate проверяет параметры пути и тело запроса по таблице rules.
// При ошибках отвечает 400 со списком errors и не вызывает обработчик.
// Тело читается только если в rules есть правила для тела, и восстанавливается,
// чтобы обработчик мог прочитать его снова.
func Validate(log *slog.Logger, rules []validation.Rule) func(http.Handler) http.Handler {
	readBody := hasBodyRules(rules)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := sl.ForRequest(log, "middlewarectx.Validate", r)

			in := validation.Input{
				Params: map[string]string{},
				Body:   map[string]any{},
			}
			for _, rule := range rules {
				if rule.In == validation.Params {
					in.Params[rule.Field] = chi.URLParam(r, rule.Field)
				}
			}

			if readBody && r.Body != nil {
				raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
				if err != nil {
					var tooLarge *http.MaxBytesError
					if errors.As(err, &tooLarge) {
						log.Info("request body is too large", slog.Int64("limit", tooLarge.Limit))
						response.JSON(w, r, http.StatusRequestEntityTooLarge, response.Error(MsgBodyTooLarge))
						return
					}
					log.Error("failed to read request body", sl.Err(err))
					response.JSON(w, r, http.StatusBadRequest, response.Error(MsgInvalidBody))
					return
				}
				_ = r.Body.Close()
				r.Body = io.NopCloser(bytes.NewReader(raw))

				if len(bytes.TrimSpace(raw)) > 0 {
					dec := json.NewDecoder(bytes.NewReader(raw))
					dec.UseNumber()
					if err := dec.Decode(&in.Body); err != nil {
						log.Info("request body is not a json object", sl.Err(err))
						response.JSON(w, r, http.StatusBadRequest, response.Error(MsgInvalidBody))
						return
					}
					if in.Body == nil {
						in.Body = map[string]any{}
					}
				}
			}

			if errs := validation.Validate(rules, in); len(errs) > 0 {
				log.Info("validation failed", slog.Any("errors", errs))
				response.JSON(w, r, http.StatusBadRequest, response.ValidationError(errs))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
