// Package user содержит бизнес-логику работы с пользователями:
// проверку уникальности username и email, запрет смены пароля через
// обновление и сокрытие неактивных пользователей.
package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/store-api/internal/lib/apperr"
	"github.com/magabrotheeeer/store-api/internal/lib/password"
	"github.com/magabrotheeeer/store-api/internal/models"
	"github.com/magabrotheeeer/store-api/internal/storage"
)

// ListLimit максимальное число пользователей в списке.
const ListLimit = 5

var (
	ErrUserNotFound   = apperr.NotFound("Usuario no encontrado")
	ErrUsernameTaken  = apperr.Conflict("El nombre de usuario ya está en uso.")
	ErrEmailTaken     = apperr.Conflict("El correo electrónico ya está en uso.")
	ErrPasswordChange = apperr.Conflict("No se puede actualizar la contraseña directamente.")
	ErrInvalidRole    = apperr.Conflict("Rol inválido")
)

// Repository определяет методы хранилища пользователей.
type Repository interface {
	CreateUser(ctx context.Context, u models.User) (*models.User, error)
	ListActiveUsers(ctx context.Context, limit int) ([]*models.User, error)
	ReadUser(ctx context.Context, id int) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateUser(ctx context.Context, u models.User) (*models.User, error)
	ToggleUserActive(ctx context.Context, id int) (*models.User, error)
	RemoveUser(ctx context.Context, id int) error
}

// Hasher хеширует пароль перед сохранением.
type Hasher func(password string) (string, error)

// Service реализует операции над пользователями.
type Service struct {
	repo Repository
	hash Hasher
	log  *slog.Logger
}

// NewService создает новый экземпляр Service с bcrypt-хешированием паролей.
func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		hash: password.GetHash,
		log:  log,
	}
}

// WithHasher заменяет функцию хеширования паролей.
func (s *Service) WithHasher(h Hasher) *Service {
	s.hash = h
	return s
}

// Create создает активного пользователя. Проверки уникальности здесь
// только дают понятное сообщение; гарантию даёт ограничение в базе.
func (s *Service) Create(ctx context.Context, req models.UserCreateRequest) (*models.User, error) {
	const op = "services.user.Create"

	taken, err := s.repo.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if taken {
		return nil, ErrUsernameTaken
	}
	taken, err = s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	hash, err := s.hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	res, err := s.repo.CreateUser(ctx, models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, translate(err))
	}
	s.log.Info("created new user", slog.Int("id", res.ID))
	return res, nil
}

// List возвращает до ListLimit активных пользователей по убыванию username.
func (s *Service) List(ctx context.Context) ([]*models.User, error) {
	const op = "services.user.List"

	res, err := s.repo.ListActiveUsers(ctx, ListLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if res == nil {
		res = []*models.User{}
	}
	return res, nil
}

// Read возвращает активного пользователя по ID.
func (s *Service) Read(ctx context.Context, id int) (*models.User, error) {
	const op = "services.user.Read"

	res, err := s.readActive(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

// Update перезаписывает username, email и роль активного пользователя.
func (s *Service) Update(ctx context.Context, id int, upd models.UserUpdate) (*models.User, error) {
	const op = "services.user.Update"

	current, err := s.readActive(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if upd.PasswordPresent {
		return nil, ErrPasswordChange
	}

	if upd.Username != current.Username {
		taken, err := s.repo.UsernameExists(ctx, upd.Username)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if taken {
			return nil, ErrUsernameTaken
		}
	}
	if upd.Email != current.Email {
		taken, err := s.repo.EmailExists(ctx, upd.Email)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if taken {
			return nil, ErrEmailTaken
		}
	}
	if !upd.Role.Valid() {
		return nil, ErrInvalidRole
	}

	current.Username = upd.Username
	current.Email = upd.Email
	current.Role = upd.Role

	res, err := s.repo.UpdateUser(ctx, *current)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, translate(err))
	}
	s.log.Info("updated user", slog.Int("id", id))
	return res, nil
}

// ToggleActive инвертирует is_active. Работает и для неактивных пользователей,
// иначе их нельзя было бы активировать снова.
func (s *Service) ToggleActive(ctx context.Context, id int) (*models.User, error) {
	const op = "services.user.ToggleActive"

	res, err := s.repo.ToggleUserActive(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, translate(err))
	}
	s.log.Info("toggled user status", slog.Int("id", id), slog.Bool("is_active", res.IsActive))
	return res, nil
}

// Remove безвозвратно удаляет пользователя, в том числе неактивного.
func (s *Service) Remove(ctx context.Context, id int) error {
	const op = "services.user.Remove"

	if err := s.repo.RemoveUser(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, translate(err))
	}
	s.log.Info("removed user", slog.Int("id", id))
	return nil
}

func (s *Service) readActive(ctx context.Context, id int) (*models.User, error) {
	res, err := s.repo.ReadUser(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	if !res.IsActive {
		return nil, ErrUserNotFound
	}
	return res, nil
}

// translate переводит ошибки хранилища в ошибки бизнес-логики.
func translate(err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return ErrUserNotFound
	case errors.Is(err, storage.ErrUsernameExists):
		return ErrUsernameTaken
	case errors.Is(err, storage.ErrEmailExists):
		return ErrEmailTaken
	default:
		return err
	}
}
