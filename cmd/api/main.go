package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ecopumpafrik/gestion-api/internal/application/analytics"
	"github.com/ecopumpafrik/gestion-api/internal/application/auth"
	"github.com/ecopumpafrik/gestion-api/internal/application/billing"
	"github.com/ecopumpafrik/gestion-api/internal/application/stock"
	infrapdf "github.com/ecopumpafrik/gestion-api/internal/infrastructure/pdf"
	"github.com/ecopumpafrik/gestion-api/internal/infrastructure/postgres"
	httpRouter "github.com/ecopumpafrik/gestion-api/internal/interfaces/http"
	"github.com/ecopumpafrik/gestion-api/pkg/config"
	"github.com/ecopumpafrik/gestion-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("chargement de la configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("démarrage de l'application")

	if err := postgres.RunMigrations(cfg.DB, "file://migrations"); err != nil {
		log.Fatal().Err(err).Msg("migrations du schéma")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connexion à PostgreSQL")
	}
	defer pool.Close()

	clientRepo := postgres.NewClientRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	quoteRepo := postgres.NewQuoteRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	clientUC := billing.NewClientUseCase(clientRepo, quoteRepo, invoiceRepo)
	supplierUC := billing.NewSupplierUseCase(supplierRepo)
	quoteUC := billing.NewQuoteUseCase(clientRepo, quoteRepo, txRunner)
	invoiceUC := billing.NewInvoiceUseCase(clientRepo, invoiceRepo, txRunner)
	convertUC := billing.NewConvertQuoteUseCase(quoteRepo, invoiceRepo, txRunner)
	paymentUC := billing.NewPaymentUseCase(paymentRepo, invoiceRepo, false)
	stockUC := stock.NewUseCase(stockRepo)
	dashboardUC := analytics.NewDashboardUseCase(statsRepo)

	pdfGenerator := infrapdf.NewMarotoGenerator(cfg.Societe)
	documentPDFUC := billing.NewDocumentPDFUseCase(
		quoteRepo, invoiceRepo, paymentRepo, clientRepo, pdfGenerator,
	)
	reportsUC := analytics.NewReportsUseCase(statsRepo, paymentRepo, pdfGenerator)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClientUC:    clientUC,
		SupplierUC:  supplierUC,
		QuoteUC:     quoteUC,
		ConvertUC:   convertUC,
		InvoiceUC:   invoiceUC,
		PaymentUC:   paymentUC,
		StockUC:     stockUC,
		DashboardUC: dashboardUC,
		DocumentPDF: documentPDFUC,
		ReportsUC:   reportsUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("serveur HTTP terminé")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("signal d'arrêt reçu, fermeture du serveur...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arrêt du serveur")
	}

	log.Info().Msg("application arrêtée")
}
