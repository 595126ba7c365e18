package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ecopumpafrik/gestion-api/internal/application/billing"
	"github.com/ecopumpafrik/gestion-api/internal/infrastructure/postgres"
)

var numeroCmd = &cobra.Command{
	Use:   "numero <DEV|FACT> <nom-du-client>",
	Short: "Prévisualise le prochain numéro de document",
	Long: `Prévisualise le numéro qui serait attribué au prochain devis ou à la
prochaine facture du client donné, à la date du jour ou à la date passée
via --date. Le numéro n'est pas réservé: seule la création du document
le consomme.`,
	Example: `  gestctl numero DEV "SODECI"
  gestctl numero FACT "CIE Abidjan" --date 2026-08-15`,
	Args: cobra.ExactArgs(2),
	RunE: runNumero,
}

func init() {
	rootCmd.AddCommand(numeroCmd)

	numeroCmd.Flags().String("date", "", "Date du document (format: AAAA-MM-JJ, défaut: aujourd'hui)")
}

func runNumero(cmd *cobra.Command, args []string) error {
	prefix := strings.ToUpper(args[0])
	counterparty := args[1]

	dateStr, _ := cmd.Flags().GetString("date")
	date := time.Now()
	if dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return fmt.Errorf("flag --date invalide, format attendu AAAA-MM-JJ: %w", err)
		}
		date = parsed
	}

	ctx := context.Background()
	_, pool, err := openPool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	uc := billing.NewNumberingUseCase(
		postgres.NewQuoteRepository(pool),
		postgres.NewInvoiceRepository(pool),
	)
	numero, err := uc.AllocateNumber(prefix, counterparty, date)
	if err != nil {
		return err
	}

	fmt.Println(numero)
	return nil
}
