// Package storage реализует хранилище товаров и пользователей на основе PostgreSQL.
// Предоставляет методы создания, чтения, обновления, переключения статуса
// и удаления записей.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

var (
	// ErrNotFound запись с указанным ID отсутствует.
	ErrNotFound = errors.New("record not found")
	// ErrUsernameExists нарушено ограничение уникальности users.username.
	ErrUsernameExists = errors.New("username already exists")
	// ErrEmailExists нарушено ограничение уникальности users.email.
	ErrEmailExists = errors.New("email already exists")
	// ErrInvalidPrice цена нарушает CHECK (price > 0) или не помещается в NUMERIC(10, 2).
	ErrInvalidPrice = errors.New("invalid price")
)

// Имена ограничений из migrations/000001_init.up.sql.
const (
	usernameConstraint = "users_username_key"
	emailConstraint    = "users_email_key"
)

// Storage инкапсулирует соединение с базой данных PostgreSQL.
type Storage struct {
	DB *sql.DB
}

// New открывает соединение с PostgreSQL и проверяет его доступность.
func New(ctx context.Context, storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// Ping проверяет, что база данных отвечает.
func (s *Storage) Ping(ctx context.Context) error {
	const op = "storage.Ping"
	if err := s.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Close закрывает пул соединений.
func (s *Storage) Close() error {
	return s.DB.Close()
}

// Clear удаляет все товары и пользователей и сбрасывает счётчики ID.
func (s *Storage) Clear(ctx context.Context) error {
	const op = "storage.Clear"
	if _, err := s.DB.ExecContext(ctx, `TRUNCATE TABLE products, users RESTART IDENTITY`); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// uniqueViolation переводит нарушение уникальности в ErrUsernameExists или ErrEmailExists.
// Остальные ошибки возвращаются без изменений.
func uniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return err
	}
	switch pgErr.ConstraintName {
	case usernameConstraint:
		return ErrUsernameExists
	case emailConstraint:
		return ErrEmailExists
	default:
		return err
	}
}

// priceViolation переводит нарушение CHECK и переполнение NUMERIC в ErrInvalidPrice.
func priceViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgerrcode.CheckViolation, pgerrcode.NumericValueOutOfRange:
		return ErrInvalidPrice
	default:
		return err
	}
}
