// Package main утилита обслуживания базы магазина: миграции и очистка таблиц.
package main

import (
	"fmt"
	"os"

	"github.com/magabrotheeeer/store-api/cmd/storectl/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
