// Package commands содержит команды storectl.
package commands

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/magabrotheeeer/store-api/internal/config"
	"github.com/magabrotheeeer/store-api/internal/lib/sl"
	"github.com/magabrotheeeer/store-api/internal/storage"
)

// Store операции хранилища, которые нужны командам.
type Store interface {
	Clear(ctx context.Context) error
	Close() error
}

// Env окружение команд. Open и LoadConf подменяются в тестах.
type Env struct {
	ConfigPath string
	Out        io.Writer

	Open     func(ctx context.Context, cfg *config.Config) (Store, Migrator, error)
	LoadConf func(path string) (*config.Config, error)
}

// NewRootCmd создает корневую команду с настоящим хранилищем.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&Env{
		Out:      os.Stdout,
		Open:     openStorage,
		LoadConf: config.Load,
	})
}

func newRootCmd(env *Env) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "storectl",
		Short:         "Maintenance commands for the store database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&env.ConfigPath, "config", "c", os.Getenv("CONFIG_PATH"), "path to the config file")
	rootCmd.SetOut(env.Out)

	rootCmd.AddCommand(
		newMigrateCommand(env),
		newClearCommand(env),
	)
	return rootCmd
}

// setup загружает конфиг и открывает хранилище.
func (e *Env) setup(ctx context.Context) (*slog.Logger, Store, Migrator, error) {
	cfg, err := e.LoadConf(e.ConfigPath)
	if err != nil {
		return nil, nil, nil, err
	}
	log := sl.New(cfg.Env, e.Out)

	store, m, err := e.Open(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return log, store, m, nil
}

func openStorage(ctx context.Context, cfg *config.Config) (Store, Migrator, error) {
	db, err := storage.New(ctx, cfg.StorageConnectionString)
	if err != nil {
		return nil, nil, err
	}
	return db, dbMigrator{db: db.DB, path: cfg.MigrationsPath}, nil
}
