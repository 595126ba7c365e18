package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/ecopumpafrik/gestion-api/internal/domain"
	"github.com/ecopumpafrik/gestion-api/internal/domain/entity"
	"github.com/ecopumpafrik/gestion-api/internal/infrastructure/postgres"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Crée le compte administrateur initial",
	Long: `Crée le compte administrateur initial dans la base.

La commande est idempotente: si l'email existe déjà, elle ne fait rien.`,
	Example: `  gestctl seed --email admin@ecopumpafrik.com --password "changez-moi"`,
	RunE:    runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().String("email", "admin@ecopumpafrik.com", "Email du compte administrateur")
	seedCmd.Flags().String("password", "", "Mot de passe du compte (obligatoire)")
	seedCmd.Flags().String("nom", "Administrateur", "Nom affiché du compte")
}

func runSeed(cmd *cobra.Command, args []string) error {
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
	nom, _ := cmd.Flags().GetString("nom")
	if password == "" {
		return fmt.Errorf("le flag --password est obligatoire")
	}

	ctx := context.Background()
	_, pool, err := openPool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	users := postgres.NewUserRepository(pool)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hachage du mot de passe: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Nom:          nom,
		Role:         entity.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := users.Create(user); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			fmt.Printf("Le compte %s existe déjà, rien à faire.\n", email)
			return nil
		}
		return fmt.Errorf("création du compte: %w", err)
	}

	fmt.Printf("Compte administrateur %s créé.\n", email)
	return nil
}
