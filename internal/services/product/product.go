// Package product содержит бизнес-логику работы с товарами.
package product

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/store-api/internal/lib/apperr"
	"github.com/magabrotheeeer/store-api/internal/models"
	"github.com/magabrotheeeer/store-api/internal/storage"
)

var (
	// ErrProductNotFound товар с указанным ID отсутствует.
	ErrProductNotFound = apperr.NotFound("Producto no encontrado")
	// ErrInvalidPrice цена не помещается в хранилище.
	ErrInvalidPrice = apperr.Conflict("El precio no es válido")
)

// Repository определяет методы хранилища товаров.
type Repository interface {
	CreateProduct(ctx context.Context, p models.Product) (*models.Product, error)
	ListProducts(ctx context.Context) ([]*models.Product, error)
	ReadProduct(ctx context.Context, id int) (*models.Product, error)
	UpdateProduct(ctx context.Context, p models.Product) (*models.Product, error)
	ToggleProductAvailability(ctx context.Context, id int) (*models.Product, error)
	RemoveProduct(ctx context.Context, id int) error
}

// Service реализует операции над товарами.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// NewService создает новый экземпляр Service.
func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Create создает товар. Если доступность не передана, товар доступен.
func (s *Service) Create(ctx context.Context, in models.ProductInput) (*models.Product, error) {
	const op = "services.product.Create"

	p := models.Product{
		Name:         in.Name,
		Price:        in.Price,
		Availability: true,
	}
	if in.Availability != nil {
		p.Availability = *in.Availability
	}

	res, err := s.repo.CreateProduct(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, translate(err))
	}
	s.log.Info("created new product", slog.Int("id", res.ID))
	return res, nil
}

// List возвращает все товары по убыванию цены.
func (s *Service) List(ctx context.Context) ([]*models.Product, error) {
	const op = "services.product.List"

	res, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if res == nil {
		res = []*models.Product{}
	}
	return res, nil
}

// Read возвращает товар по ID.
func (s *Service) Read(ctx context.Context, id int) (*models.Product, error) {
	const op = "services.product.Read"

	res, err := s.repo.ReadProduct(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, translate(err))
	}
	return res, nil
}

// Update перезаписывает название и цену товара, а доступность - если она передана.
func (s *Service) Update(ctx context.Context, id int, in models.ProductInput) (*models.Product, error) {
	const op = "services.product.Update"

	current, err := s.repo.ReadProduct(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, translate(err))
	}

	current.Name = in.Name
	current.Price = in.Price
	if in.Availability != nil {
		current.Availability = *in.Availability
	}

	res, err := s.repo.UpdateProduct(ctx, *current)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, translate(err))
	}
	s.log.Info("updated product", slog.Int("id", id))
	return res, nil
}

// ToggleAvailability инвертирует доступность товара.
func (s *Service) ToggleAvailability(ctx context.Context, id int) (*models.Product, error) {
	const op = "services.product.ToggleAvailability"

	res, err := s.repo.ToggleProductAvailability(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, translate(err))
	}
	s.log.Info("toggled product availability", slog.Int("id", id), slog.Bool("availability", res.Availability))
	return res, nil
}

// Remove удаляет товар по ID.
func (s *Service) Remove(ctx context.Context, id int) error {
	const op = "services.product.Remove"

	if err := s.repo.RemoveProduct(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, translate(err))
	}
	s.log.Info("removed product", slog.Int("id", id))
	return nil
}

func translate(err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return ErrProductNotFound
	case errors.Is(err, storage.ErrInvalidPrice):
		return ErrInvalidPrice
	default:
		return err
	}
}
