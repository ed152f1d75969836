// Package storeapi собирает HTTP-приложение магазина: маршруты, middleware и сервер.
package storeapi

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/store-api/internal/http/handlers/health"
	"github.com/magabrotheeeer/store-api/internal/http/handlers/product/productcreate"
	"github.com/magabrotheeeer/store-api/internal/http/handlers/product/productlist"
	"github.com/magabrotheeeer/store-api/internal/http/handlers/product/productread"
	"github.com/magabrotheeeer/store-api/internal/http/handlers/product/productremove"
	"github.com/magabrotheeeer/store-api/internal/http/handlers/product/producttoggle"
	"github.com/magabrotheeeer/store-api/internal/http/handlers/product/productupdate"
	"github.com/magabrotheeeer/store-api/internal/http/handlers/user/usercreate"
	"github.com/magabrotheeeer/store-api/internal/http/handlers/user/userlist"
	"github.com/magabrotheeeer/store-api/internal/http/handlers/user/userread"
	"github.com/magabrotheeeer/store-api/internal/http/handlers/user/userremove"
	"github.com/magabrotheeeer/store-api/internal/http/handlers/user/usertoggle"
	"github.com/magabrotheeeer/store-api/internal/http/handlers/user/userupdate"
	"github.com/magabrotheeeer/store-api/internal/http/middlewarectx"
	"github.com/magabrotheeeer/store-api/internal/models"
	"github.com/magabrotheeeer/store-api/internal/validation"
)

// ProductService объединяет операции над товарами, нужные обработчикам.
type ProductService interface {
	Create(ctx context.Context, in models.ProductInput) (*models.Product, error)
	List(ctx context.Context) ([]*models.Product, error)
	Read(ctx context.Context, id int) (*models.Product, error)
	Update(ctx context.Context, id int, in models.ProductInput) (*models.Product, error)
	ToggleAvailability(ctx context.Context, id int) (*models.Product, error)
	Remove(ctx context.Context, id int) error
}

// UserService объединяет операции над пользователями, нужные обработчикам.
type UserService interface {
	Create(ctx context.Context, req models.UserCreateRequest) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Read(ctx context.Context, id int) (*models.User, error)
	Update(ctx context.Context, id int, upd models.UserUpdate) (*models.User, error)
	ToggleActive(ctx context.Context, id int) (*models.User, error)
	Remove(ctx context.Context, id int) error
}

// Deps зависимости, из которых строится роутер.
type Deps struct {
	Products ProductService
	Users    UserService
	DB       health.Pinger
	Registry *prometheus.Registry
	Limiter  *rate.Limiter
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, deps Deps) {
	metrics := middlewarectx.NewMetrics(deps.Registry)

	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		metrics.Middleware,
	)

	r.Route("/api", func(r chi.Router) {
		if deps.Limiter != nil {
			r.Use(middlewarectx.RateLimitMiddleware(logger, deps.Limiter))
		}

		r.Route("/products", func(r chi.Router) {
			r.Get("/", productlist.New(logger, deps.Products).ServeHTTP)
			r.With(middlewarectx.Validate(logger, validation.ProductCreateRules)).
				Post("/", productcreate.New(logger, deps.Products).ServeHTTP)
			r.With(middlewarectx.Validate(logger, validation.ProductIDRules)).
				Get("/{id}", productread.New(logger, deps.Products).ServeHTTP)
			r.With(middlewarectx.Validate(logger, validation.ProductUpdateRules)).
				Put("/{id}", productupdate.New(logger, deps.Products).ServeHTTP)
			r.With(middlewarectx.Validate(logger, validation.ProductIDRules)).
				Patch("/{id}", producttoggle.New(logger, deps.Products).ServeHTTP)
			r.With(middlewarectx.Validate(logger, validation.ProductIDRules)).
				Delete("/{id}", productremove.New(logger, deps.Products).ServeHTTP)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", userlist.New(logger, deps.Users).ServeHTTP)
			r.With(middlewarectx.Validate(logger, validation.UserCreateRules)).
				Post("/", usercreate.New(logger, deps.Users).ServeHTTP)
			r.With(middlewarectx.Validate(logger, validation.UserIDRules)).
				Get("/{id}", userread.New(logger, deps.Users).ServeHTTP)
			r.With(middlewarectx.Validate(logger, validation.UserUpdateRules)).
				Put("/{id}", userupdate.New(logger, deps.Users).ServeHTTP)
			r.With(middlewarectx.Validate(logger, validation.UserIDRules)).
				Patch("/{id}", usertoggle.New(logger, deps.Users).ServeHTTP)
			r.With(middlewarectx.Validate(logger, validation.UserIDRules)).
				Delete("/{id}", userremove.New(logger, deps.Users).ServeHTTP)
		})
	})

	r.Get("/health", health.New(logger, deps.DB).ServeHTTP)
	r.Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}
