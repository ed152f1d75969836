package response

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/store-api/internal/lib/apperr"
	"github.com/magabrotheeeer/store-api/internal/validation"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "not found",
			err:        apperr.NotFound("Producto no encontrado"),
			wantStatus: http.StatusNotFound,
			wantMsg:    "Producto no encontrado",
		},
		{
			name:       "wrapped conflict keeps client message",
			err:        fmt.Errorf("services.user.Create: %w", apperr.Conflict("El correo electrónico ya está en uso.")),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "El correo electrónico ya está en uso.",
		},
		{
			name:       "internal kind is hidden",
			err:        &apperr.Error{Kind: apperr.KindInternal, Msg: "detalle interno"},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    InternalErrorMessage,
		},
		{
			name:       "store failure is hidden",
			err:        errors.New("storage.ReadProduct: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    InternalErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := FromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, body.Error)
		})
	}
}

func TestJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	JSON(w, r, http.StatusNotFound, Error("Usuario no encontrado"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, `{"error":"Usuario no encontrado"}`, w.Body.String())
}

func TestEnvelopes(t *testing.T) {
	tests := []struct {
		name string
		body any
		want string
	}{
		{name: "data", body: OKWithData(map[string]int{"id": 1}), want: `{"data":{"id":1}}`},
		{name: "message", body: Message("Producto eliminado con id: 1"), want: `{"message":"Producto eliminado con id: 1"}`},
		{
			name: "validation",
			body: ValidationError([]validation.FieldError{{Field: "name", Message: "El nombre es obligatorio", Location: validation.Body}}),
			want: `{"errors":[{"field":"name","message":"El nombre es obligatorio","location":"body"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			w := httptest.NewRecorder()
			JSON(w, r, http.StatusOK, tt.body)
			assert.JSONEq(t, tt.want, w.Body.String())
		})
	}
}
