package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/store-api/internal/models"
)

const productColumns = `id, name, price, availability, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var p models.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Availability, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProduct вставляет новый товар и возвращает сохранённую запись.
func (s *Storage) CreateProduct(ctx context.Context, p models.Product) (*models.Product, error) {
	const op = "storage.CreateProduct"

	query := `INSERT INTO products (name, price, availability)
			  VALUES ($1, $2, $3)
			  RETURNING ` + productColumns
	res, err := scanProduct(s.DB.QueryRowContext(ctx, query, p.Name, p.Price, p.Availability))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, priceViolation(err))
	}
	return res, nil
}

// ListProducts возвращает все товары, упорядоченные по цене по убыванию.
func (s *Storage) ListProducts(ctx context.Context) ([]*models.Product, error) {
	const op = "storage.ListProducts"

	query := `SELECT ` + productColumns + `
			  FROM products
			  ORDER BY price DESC, id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]*models.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ReadProduct возвращает товар по ID или ErrNotFound.
func (s *Storage) ReadProduct(ctx context.Context, id int) (*models.Product, error) {
	const op = "storage.ReadProduct"

	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	res, err := scanProduct(s.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

// UpdateProduct перезаписывает название, цену и доступность товара.
func (s *Storage) UpdateProduct(ctx context.Context, p models.Product) (*models.Product, error) {
	const op = "storage.UpdateProduct"

	query := `UPDATE products
			  SET name = $1, price = $2, availability = $3, updated_at = NOW()
			  WHERE id = $4
			  RETURNING ` + productColumns
	res, err := scanProduct(s.DB.QueryRowContext(ctx, query, p.Name, p.Price, p.Availability, p.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, priceViolation(err))
	}
	return res, nil
}

// ToggleProductAvailability инвертирует доступность товара одним запросом.
func (s *Storage) ToggleProductAvailability(ctx context.Context, id int) (*models.Product, error) {
	const op = "storage.ToggleProductAvailability"

	query := `UPDATE products
			  SET availability = NOT availability, updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + productColumns
	res, err := scanProduct(s.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

// RemoveProduct удаляет товар по ID.
func (s *Storage) RemoveProduct(ctx context.Context, id int) error {
	const op = "storage.RemoveProduct"

	result, err := s.DB.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}
