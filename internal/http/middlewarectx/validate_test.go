package middlewarectx

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/store-api/internal/validation"
)

func TestValidate(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name           string
		method         string
		url            string
		body           string
		rules          []validation.Rule
		expectedStatus int
		expectedBody   string
		wantNext       bool
	}{
		{
			name:           "valid product body reaches handler with body intact",
			method:         http.MethodPost,
			url:            "/products",
			body:           `{"name":"Agua","price":10}`,
			rules:          validation.ProductCreateRules,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"name":"Agua","price":10}`,
			wantNext:       true,
		},
		{
			name:           "empty body is reported field by field",
			method:         http.MethodPost,
			url:            "/products",
			body:           ``,
			rules:          validation.ProductCreateRules,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"field":"price","message":"El precio es obligatorio"`,
		},
		{
			name:           "invalid id",
			method:         http.MethodGet,
			url:            "/products/abc",
			rules:          validation.ProductIDRules,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"El ID debe ser un número"`,
		},
		{
			name:           "negative id",
			method:         http.MethodDelete,
			url:            "/products/-4",
			rules:          validation.ProductIDRules,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"message":"El ID debe ser mayor que 0"`,
		},
		{
			name:           "malformed json",
			method:         http.MethodPost,
			url:            "/products",
			body:           `{"name":`,
			rules:          validation.ProductCreateRules,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"` + MsgInvalidBody + `"}`,
		},
		{
			name:           "array body",
			method:         http.MethodPost,
			url:            "/products",
			body:           `[1,2]`,
			rules:          validation.ProductCreateRules,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   MsgInvalidBody,
		},
		{
			name:           "id-only rules ignore a non-json body",
			method:         http.MethodPatch,
			url:            "/products/1",
			body:           `availability=false`,
			rules:          validation.ProductIDRules,
			expectedStatus: http.StatusOK,
			expectedBody:   `availability=false`,
			wantNext:       true,
		},
		{
			name:           "id-only rules ignore an array body",
			method:         http.MethodDelete,
			url:            "/products/1",
			body:           `[true]`,
			rules:          validation.ProductIDRules,
			expectedStatus: http.StatusOK,
			expectedBody:   `[true]`,
			wantNext:       true,
		},
		{
			name:           "oversized body",
			method:         http.MethodPost,
			url:            "/products",
			body:           `{"name":"` + strings.Repeat("a", MaxBodyBytes) + `","price":10}`,
			rules:          validation.ProductCreateRules,
			expectedStatus: http.StatusRequestEntityTooLarge,
			expectedBody:   MsgBodyTooLarge,
		},
		{
			name:           "user update body id must match url",
			method:         http.MethodPut,
			url:            "/products/1",
			body:           `{"id":2,"username_V":"nextUser","email_V":"next@gmail.com","role_V":"admin"}`,
			rules:          validation.UserUpdateRules,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"field":"id"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				body, _ := io.ReadAll(r.Body)
				_, _ = w.Write(body)
			})

			router := chi.NewRouter()
			router.With(Validate(logger, tt.rules)).Post("/products", next)
			router.With(Validate(logger, tt.rules)).Get("/products/{id}", next)
			router.With(Validate(logger, tt.rules)).Put("/products/{id}", next)
			router.With(Validate(logger, tt.rules)).Patch("/products/{id}", next)
			router.With(Validate(logger, tt.rules)).Delete("/products/{id}", next)

			req := httptest.NewRequest(tt.method, tt.url, strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.wantNext, called)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())
		})
	}
}
