package commands

import (
	"database/sql"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/magabrotheeeer/store-api/internal/lib/sl"
	"github.com/magabrotheeeer/store-api/internal/migrations"
)

// Migrator применяет и откатывает схему.
type Migrator interface {
	Up() error
	Down() error
}

type dbMigrator struct {
	db   *sql.DB
	path string
}

func (m dbMigrator) Up() error   { return migrations.Run(m.db, m.path) }
func (m dbMigrator) Down() error { return migrations.Down(m.db, m.path) }

func newMigrateCommand(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "migrate",
		Args:    cobra.NoArgs,
		Aliases: []string{"m"},
		Short:   "Database migration commands",
	}

	cmd.AddCommand(
		newMigrateStep(env, "up", "Apply all pending migrations", Migrator.Up),
		newMigrateStep(env, "down", "Roll back all migrations", Migrator.Down),
	)
	return cmd
}

func newMigrateStep(env *Env, use, short string, step func(Migrator) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Args:  cobra.NoArgs,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, store, m, err := env.setup(cmd.Context())
			if err != nil {
				return err
			}
			defer func() {
				if err := store.Close(); err != nil {
					log.Error("failed to close storage", sl.Err(err))
				}
			}()

			if err := step(m); err != nil {
				log.Error("migration failed", slog.String("direction", use), sl.Err(err))
				return err
			}
			log.Info("migration finished", slog.String("direction", use))
			return nil
		},
	}
}
