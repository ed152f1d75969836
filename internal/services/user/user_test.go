package user

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/store-api/internal/models"
	"github.com/magabrotheeeer/store-api/internal/storage"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateUser(ctx context.Context, u models.User) (*models.User, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *RepoMock) ListActiveUsers(ctx context.Context, limit int) ([]*models.User, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *RepoMock) ReadUser(ctx context.Context, id int) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *RepoMock) UsernameExists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *RepoMock) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *RepoMock) UpdateUser(ctx context.Context, u models.User) (*models.User, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *RepoMock) ToggleUserActive(ctx context.Context, id int) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *RepoMock) RemoveUser(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func newService(repo *RepoMock) *Service {
	svc := NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return svc.WithHasher(func(p string) (string, error) { return "hashed:" + p, nil })
}

func storageErr(err error) error {
	return fmt.Errorf("storage.op: %w", err)
}

func activeUser() *models.User {
	return &models.User{ID: 1, Username: "u1", Email: "u1@x.com", Role: models.RoleUser, IsActive: true}
}

func TestService_Create(t *testing.T) {
	req := models.UserCreateRequest{Username: "u1", Email: "u1@x.com", Password: "pass123", Role: models.RoleUser}

	tests := []struct {
		name    string
		req     models.UserCreateRequest
		setup   func(m *RepoMock)
		wantErr error
	}{
		{
			name: "success hashes password",
			req:  req,
			setup: func(m *RepoMock) {
				m.On("UsernameExists", mock.Anything, "u1").Return(false, nil)
				m.On("EmailExists", mock.Anything, "u1@x.com").Return(false, nil)
				m.On("CreateUser", mock.Anything, models.User{
					Username: "u1", Email: "u1@x.com", PasswordHash: "hashed:pass123",
					Role: models.RoleUser, IsActive: true,
				}).Return(activeUser(), nil)
			},
		},
		{
			name: "empty role defaults to user",
			req:  models.UserCreateRequest{Username: "u1", Email: "u1@x.com", Password: "pass123"},
			setup: func(m *RepoMock) {
				m.On("UsernameExists", mock.Anything, "u1").Return(false, nil)
				m.On("EmailExists", mock.Anything, "u1@x.com").Return(false, nil)
				m.On("CreateUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
					return u.Role == models.RoleUser
				})).Return(activeUser(), nil)
			},
		},
		{
			name: "username taken",
			req:  req,
			setup: func(m *RepoMock) {
				m.On("UsernameExists", mock.Anything, "u1").Return(true, nil)
			},
			wantErr: ErrUsernameTaken,
		},
		{
			name: "email taken",
			req:  req,
			setup: func(m *RepoMock) {
				m.On("UsernameExists", mock.Anything, "u1").Return(false, nil)
				m.On("EmailExists", mock.Anything, "u1@x.com").Return(true, nil)
			},
			wantErr: ErrEmailTaken,
		},
		{
			name: "race caught by unique constraint",
			req:  req,
			setup: func(m *RepoMock) {
				m.On("UsernameExists", mock.Anything, "u1").Return(false, nil)
				m.On("EmailExists", mock.Anything, "u1@x.com").Return(false, nil)
				m.On("CreateUser", mock.Anything, mock.Anything).Return(nil, storageErr(storage.ErrUsernameExists))
			},
			wantErr: ErrUsernameTaken,
		},
		{
			name: "invalid role",
			req:  models.UserCreateRequest{Username: "u1", Email: "u1@x.com", Password: "pass123", Role: "root"},
			setup: func(m *RepoMock) {
				m.On("UsernameExists", mock.Anything, "u1").Return(false, nil)
				m.On("EmailExists", mock.Anything, "u1@x.com").Return(false, nil)
			},
			wantErr: ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			tt.setup(repo)

			got, err := newService(repo).Create(context.Background(), tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.IsActive)
			repo.AssertExpectations(t)
		})
	}
}

func TestService_List(t *testing.T) {
	repo := new(RepoMock)
	repo.On("ListActiveUsers", mock.Anything, ListLimit).Return([]*models.User{activeUser()}, nil)

	got, err := newService(repo).List(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
	repo.AssertExpectations(t)
}

func TestService_Read(t *testing.T) {
	inactive := activeUser()
	inactive.ID = 2
	inactive.IsActive = false

	repo := new(RepoMock)
	repo.On("ReadUser", mock.Anything, 1).Return(activeUser(), nil)
	repo.On("ReadUser", mock.Anything, 2).Return(inactive, nil)
	repo.On("ReadUser", mock.Anything, 3).Return(nil, storageErr(storage.ErrNotFound))
	repo.On("ReadUser", mock.Anything, 4).Return(nil, errors.New("db down"))

	svc := newService(repo)

	got, err := svc.Read(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "u1", got.Username)

	_, err = svc.Read(context.Background(), 2)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.Read(context.Background(), 3)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.Read(context.Background(), 4)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}

func TestService_Update(t *testing.T) {
	upd := models.UserUpdate{Username: "u2", Email: "u2@x.com", Role: models.RoleAdmin}

	tests := []struct {
		name    string
		upd     models.UserUpdate
		setup   func(m *RepoMock)
		wantErr error
	}{
		{
			name: "success",
			upd:  upd,
			setup: func(m *RepoMock) {
				m.On("ReadUser", mock.Anything, 1).Return(activeUser(), nil)
				m.On("UsernameExists", mock.Anything, "u2").Return(false, nil)
				m.On("EmailExists", mock.Anything, "u2@x.com").Return(false, nil)
				m.On("UpdateUser", mock.Anything, models.User{
					ID: 1, Username: "u2", Email: "u2@x.com", Role: models.RoleAdmin, IsActive: true,
				}).Return(&models.User{ID: 1, Username: "u2", Email: "u2@x.com", Role: models.RoleAdmin, IsActive: true}, nil)
			},
		},
		{
			name: "unchanged username and email skip lookups",
			upd:  models.UserUpdate{Username: "u1", Email: "u1@x.com", Role: models.RoleAdmin},
			setup: func(m *RepoMock) {
				m.On("ReadUser", mock.Anything, 1).Return(activeUser(), nil)
				m.On("UpdateUser", mock.Anything, mock.Anything).Return(activeUser(), nil)
			},
		},
		{
			name: "password present",
			upd:  models.UserUpdate{Username: "u2", Email: "u2@x.com", Role: models.RoleAdmin, PasswordPresent: true},
			setup: func(m *RepoMock) {
				m.On("ReadUser", mock.Anything, 1).Return(activeUser(), nil)
			},
			wantErr: ErrPasswordChange,
		},
		{
			name: "inactive user",
			upd:  upd,
			setup: func(m *RepoMock) {
				u := activeUser()
				u.IsActive = false
				m.On("ReadUser", mock.Anything, 1).Return(u, nil)
			},
			wantErr: ErrUserNotFound,
		},
		{
			name: "missing user",
			upd:  upd,
			setup: func(m *RepoMock) {
				m.On("ReadUser", mock.Anything, 1).Return(nil, storageErr(storage.ErrNotFound))
			},
			wantErr: ErrUserNotFound,
		},
		{
			name: "username belongs to another user",
			upd:  upd,
			setup: func(m *RepoMock) {
				m.On("ReadUser", mock.Anything, 1).Return(activeUser(), nil)
				m.On("UsernameExists", mock.Anything, "u2").Return(true, nil)
			},
			wantErr: ErrUsernameTaken,
		},
		{
			name: "email belongs to another user",
			upd:  upd,
			setup: func(m *RepoMock) {
				m.On("ReadUser", mock.Anything, 1).Return(activeUser(), nil)
				m.On("UsernameExists", mock.Anything, "u2").Return(false, nil)
				m.On("EmailExists", mock.Anything, "u2@x.com").Return(true, nil)
			},
			wantErr: ErrEmailTaken,
		},
		{
			name: "invalid role",
			upd:  models.UserUpdate{Username: "u1", Email: "u1@x.com", Role: "root"},
			setup: func(m *RepoMock) {
				m.On("ReadUser", mock.Anything, 1).Return(activeUser(), nil)
			},
			wantErr: ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			tt.setup(repo)

			_, err := newService(repo).Update(context.Background(), 1, tt.upd)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			repo.AssertExpectations(t)
		})
	}
}

func TestService_ToggleActive(t *testing.T) {
	repo := new(RepoMock)
	repo.On("ToggleUserActive", mock.Anything, 1).Return(&models.User{ID: 1, IsActive: true}, nil)
	repo.On("ToggleUserActive", mock.Anything, 2).Return(nil, storageErr(storage.ErrNotFound))

	svc := newService(repo)

	got, err := svc.ToggleActive(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, got.IsActive)

	_, err = svc.ToggleActive(context.Background(), 2)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestService_Remove(t *testing.T) {
	repo := new(RepoMock)
	repo.On("RemoveUser", mock.Anything, 1).Return(nil)
	repo.On("RemoveUser", mock.Anything, 2).Return(storageErr(storage.ErrNotFound))

	svc := newService(repo)

	assert.NoError(t, svc.Remove(context.Background(), 1))
	assert.ErrorIs(t, svc.Remove(context.Background(), 2), ErrUserNotFound)
}
