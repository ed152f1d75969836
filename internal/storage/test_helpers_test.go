package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/magabrotheeeer/store-api/internal/migrations"
	"github.com/magabrotheeeer/store-api/internal/models"
)

// setupTestDatabase поднимает PostgreSQL в контейнере и применяет миграции.
func setupTestDatabase(t *testing.T) (*Storage, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	storage, err := New(ctx, dsn)
	require.NoError(t, err)

	migrationsPath, err := filepath.Abs("../../migrations")
	require.NoError(t, err)
	require.NoError(t, migrations.Run(storage.DB, migrationsPath))

	cleanup := func() {
		if storage != nil && storage.DB != nil {
			_ = storage.Close()
		}
		if postgresContainer != nil {
			_ = postgresContainer.Terminate(ctx)
		}
	}

	return storage, cleanup
}

// TestDataFactory содержит методы для создания тестовых данных.
type TestDataFactory struct {
	storage *Storage
}

// NewTestDataFactory создает новую фабрику тестовых данных.
func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

// CreateProduct создает тестовый товар.
func (f *TestDataFactory) CreateProduct(t *testing.T, name string, price float64, availability bool) *models.Product {
	p, err := f.storage.CreateProduct(context.Background(), models.Product{
		Name:         name,
		Price:        price,
		Availability: availability,
	})
	require.NoError(t, err)
	return p
}

// CreateUser создает тестового пользователя со случайными username и email.
func (f *TestDataFactory) CreateUser(t *testing.T, active bool) *models.User {
	suffix := uuid.New().String()[:8]
	return f.CreateNamedUser(t, "user_"+suffix, suffix+"@example.com", active)
}

// CreateNamedUser создает тестового пользователя с заданными username и email.
func (f *TestDataFactory) CreateNamedUser(t *testing.T, username, email string, active bool) *models.User {
	u, err := f.storage.CreateUser(context.Background(), models.User{
		Username:     username,
		Email:        email,
		PasswordHash: "hashedpassword",
		Role:         models.RoleUser,
		IsActive:     active,
	})
	require.NoError(t, err)
	return u
}
