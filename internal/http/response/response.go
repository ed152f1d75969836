// Package response содержит типы JSON-ответов и единственную точку
// преобразования ошибок бизнес-логики в HTTP-статусы. Успешные ответы
// используют поле data или message, ошибки - error или errors; поля
// никогда не смешиваются.
package response

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/store-api/internal/lib/apperr"
	"github.com/magabrotheeeer/store-api/internal/validation"
)

// InternalErrorMessage сообщение для любых неожиданных ошибок.
const InternalErrorMessage = "Error interno del servidor"

// DataResponse успешный ответ с данными.
type DataResponse struct {
	Data any `json:"data"`
}

// MessageResponse успешный ответ с сообщением.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse ответ с одной ошибкой.
type ErrorResponse struct {
	Error string `json:"error" example:"Producto no encontrado"`
}

// ValidationResponse ответ со списком ошибок валидации.
type ValidationResponse struct {
	Errors []validation.FieldError `json:"errors"`
}

// OKWithData возвращает успешный ответ с данными.
func OKWithData(data any) DataResponse {
	return DataResponse{Data: data}
}

// Message возвращает успешный ответ с сообщением.
func Message(msg string) MessageResponse {
	return MessageResponse{Message: msg}
}

// Error возвращает ответ с ошибкой.
func Error(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

// ValidationError возвращает ответ со списком ошибок валидации.
func ValidationError(errs []validation.FieldError) ValidationResponse {
	return ValidationResponse{Errors: errs}
}

// FromError выбирает статус и тело ответа по виду ошибки:
// не найдено - 404, нарушение бизнес-правила - 400, остальное - 500
// с общим сообщением без подробностей.
func FromError(err error) (int, ErrorResponse) {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		return http.StatusNotFound, Error(clientMessage(err))
	case apperr.KindConflict:
		return http.StatusBadRequest, Error(clientMessage(err))
	default:
		return http.StatusInternalServerError, Error(InternalErrorMessage)
	}
}

// clientMessage сообщение *apperr.Error без префиксов оборачивания.
func clientMessage(err error) string {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return appErr.Msg
	}
	return InternalErrorMessage
}

// JSON записывает v с указанным статусом.
func JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

// Fail записывает ответ для ошибки err через FromError.
func Fail(w http.ResponseWriter, r *http.Request, err error) {
	status, body := FromError(err)
	JSON(w, r, status, body)
}
