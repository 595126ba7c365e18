package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecopumpafrik/gestion-api/internal/infrastructure/postgres"
	"github.com/ecopumpafrik/gestion-api/pkg/config"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Applique les migrations du schéma PostgreSQL",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)

	migrateCmd.Flags().String("source", "file://migrations", "Source des fichiers de migration")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	source, _ := cmd.Flags().GetString("source")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("chargement de la configuration: %w", err)
	}
	if err := postgres.RunMigrations(cfg.DB, source); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	fmt.Println("Schéma à jour.")
	return nil
}
