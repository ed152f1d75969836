package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/store-api/internal/models"
)

const userColumns = `id, username, email, password_hash, role, is_active, created_at, updated_at`

func scanUser(row rowScanner) (*models.User, error) {
	var u models.User
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role,
		&u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUser сохраняет нового пользователя. Дубликаты username и email
// отклоняются ограничениями уникальности и возвращаются как
// ErrUsernameExists и ErrEmailExists.
func (s *Storage) CreateUser(ctx context.Context, u models.User) (*models.User, error) {
	const op = "storage.CreateUser"

	query := `INSERT INTO users (username, email, password_hash, role, is_active)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING ` + userColumns
	res, err := scanUser(s.DB.QueryRowContext(ctx, query,
		u.Username, u.Email, u.PasswordHash, string(u.Role), u.IsActive))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, uniqueViolation(err))
	}
	return res, nil
}

// ListActiveUsers возвращает не более limit активных пользователей,
// упорядоченных по username по убыванию.
func (s *Storage) ListActiveUsers(ctx context.Context, limit int) ([]*models.User, error) {
	const op = "storage.ListActiveUsers"

	query := `SELECT ` + userColumns + `
			  FROM users
			  WHERE is_active = true
			  ORDER BY username DESC
			  LIMIT $1`
	rows, err := s.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]*models.User, 0, limit)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ReadUser возвращает пользователя по ID независимо от is_active.
func (s *Storage) ReadUser(ctx context.Context, id int) (*models.User, error) {
	const op = "storage.ReadUser"

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	res, err := scanUser(s.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

// UsernameExists проверяет, занят ли username (точное совпадение с учётом регистра).
func (s *Storage) UsernameExists(ctx context.Context, username string) (bool, error) {
	const op = "storage.UsernameExists"

	var exists bool
	err := s.DB.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

// EmailExists проверяет, занят ли email.
func (s *Storage) EmailExists(ctx context.Context, email string) (bool, error) {
	const op = "storage.EmailExists"

	var exists bool
	err := s.DB.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

// UpdateUser перезаписывает username, email и роль пользователя. Пароль не меняется.
func (s *Storage) UpdateUser(ctx context.Context, u models.User) (*models.User, error) {
	const op = "storage.UpdateUser"

	query := `UPDATE users
			  SET username = $1, email = $2, role = $3, updated_at = NOW()
			  WHERE id = $4
			  RETURNING ` + userColumns
	res, err := scanUser(s.DB.QueryRowContext(ctx, query, u.Username, u.Email, string(u.Role), u.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, uniqueViolation(err))
	}
	return res, nil
}

// ToggleUserActive инвертирует is_active, в том числе у неактивных пользователей.
func (s *Storage) ToggleUserActive(ctx context.Context, id int) (*models.User, error) {
	const op = "storage.ToggleUserActive"

	query := `UPDATE users
			  SET is_active = NOT is_active, updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + userColumns
	res, err := scanUser(s.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

// RemoveUser безвозвратно удаляет пользователя по ID.
func (s *Storage) RemoveUser(ctx context.Context, id int) error {
	const op = "storage.RemoveUser"

	result, err := s.DB.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
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
