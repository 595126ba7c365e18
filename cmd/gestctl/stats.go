package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ecopumpafrik/gestion-api/internal/application/analytics"
	"github.com/ecopumpafrik/gestion-api/internal/infrastructure/postgres"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Affiche les statistiques du tableau de bord",
	Long: `Affiche les compteurs et montants du tableau de bord sur la période donnée.

Sans --du ni --au, la période va du premier jour du mois courant à aujourd'hui.`,
	Example: `  gestctl stats
  gestctl stats --du 2026-01-01 --au 2026-03-31`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().String("du", "", "Début de la période (format: AAAA-MM-JJ)")
	statsCmd.Flags().String("au", "", "Fin de la période (format: AAAA-MM-JJ)")
}

func runStats(cmd *cobra.Command, args []string) error {
	duStr, _ := cmd.Flags().GetString("du")
	auStr, _ := cmd.Flags().GetString("au")

	var du, au time.Time
	if duStr != "" || auStr != "" {
		var err error
		if du, err = time.Parse("2006-01-02", duStr); err != nil {
			return fmt.Errorf("flag --du invalide, format attendu AAAA-MM-JJ: %w", err)
		}
		if au, err = time.Parse("2006-01-02", auStr); err != nil {
			return fmt.Errorf("flag --au invalide, format attendu AAAA-MM-JJ: %w", err)
		}
		au = au.Add(24*time.Hour - time.Nanosecond)
	}

	ctx := context.Background()
	_, pool, err := openPool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	uc := analytics.NewDashboardUseCase(postgres.NewStatsRepository(pool))
	stats, err := uc.GetStats(ctx, du, au)
	if err != nil {
		return err
	}

	fmt.Printf("Clients          : %d (FCFA: %d, EUR: %d)\n",
		stats.TotalClients, stats.ClientsFCFA, stats.ClientsEUR)
	fmt.Printf("Fournisseurs     : %d\n", stats.TotalFournisseurs)
	fmt.Printf("Devis            : %d (période: %d, %s)\n",
		stats.TotalDevis, stats.DevisPeriode, stats.MontantDevisPeriode.StringFixed(2))
	fmt.Printf("Factures         : %d (période: %d, %s)\n",
		stats.TotalFactures, stats.FacturesPeriode, stats.MontantFacturesPeriode.StringFixed(2))
	fmt.Printf("Créances totales : %s\n", stats.TotalCreances.StringFixed(2))
	fmt.Printf("Alertes stock    : %d\n", stats.AlertesStock)
	return nil
}
