package commands

import (
	"github.com/spf13/cobra"

	"github.com/magabrotheeeer/store-api/internal/lib/sl"
)

func newClearCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Args:  cobra.NoArgs,
		Short: "Delete every product and user and reset identifiers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, store, _, err := env.setup(cmd.Context())
			if err != nil {
				return err
			}
			defer func() {
				if err := store.Close(); err != nil {
					log.Error("failed to close storage", sl.Err(err))
				}
			}()

			if err := store.Clear(cmd.Context()); err != nil {
				log.Error("failed to clear tables", sl.Err(err))
				return err
			}
			log.Info("tables cleared")
			return nil
		},
	}
}
