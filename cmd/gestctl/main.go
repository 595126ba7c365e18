// gestctl est l'outil d'administration en ligne de commande de l'API de
// gestion ECO PUMP AFRIK: migrations du schéma, amorçage des données et
// consultation rapide des statistiques sans passer par l'API HTTP.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/ecopumpafrik/gestion-api/internal/infrastructure/postgres"
	"github.com/ecopumpafrik/gestion-api/pkg/config"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:     "gestctl",
	Short:   "Outil d'administration de l'API de gestion commerciale",
	Version: version,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Erreur: %v\n", err)
		os.Exit(1)
	}
}

// openPool charge la configuration et ouvre un pool PostgreSQL partagé par
// les sous-commandes.
func openPool(ctx context.Context) (*config.Config, *pgxpool.Pool, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("chargement de la configuration: %w", err)
	}
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("connexion à PostgreSQL: %w", err)
	}
	return cfg, pool, nil
}
