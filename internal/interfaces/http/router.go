package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ecopumpafrik/gestion-api/internal/application/analytics"
	"github.com/ecopumpafrik/gestion-api/internal/application/auth"
	"github.com/ecopumpafrik/gestion-api/internal/application/billing"
	"github.com/ecopumpafrik/gestion-api/internal/application/stock"
	"github.com/ecopumpafrik/gestion-api/internal/domain/entity"
)

// RouterDeps dépendances pour le routeur.
type RouterDeps struct {
	ClientUC    *billing.ClientUseCase
	SupplierUC  *billing.SupplierUseCase
	QuoteUC     *billing.QuoteUseCase
	ConvertUC   *billing.ConvertQuoteUseCase
	InvoiceUC   *billing.InvoiceUseCase
	PaymentUC   *billing.PaymentUseCase
	StockUC     *stock.UseCase
	DashboardUC *analytics.DashboardUseCase
	DocumentPDF *billing.DocumentPDFUseCase
	ReportsUC   *analytics.ReportsUseCase
	AuthUC      *auth.UseCase
	JWTSecret   string
}

// Router enregistre les routes de l'API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Routes protégées (Bearer Token requis)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Rôles par famille d'opérations. Le commercial établit devis et fiches;
	// seuls l'admin et le comptable touchent aux factures et aux paiements.
	tous := RequireRole(entity.RoleAdmin, entity.RoleComptable, entity.RoleCommercial)
	comptables := RequireRole(entity.RoleAdmin, entity.RoleComptable)

	// Clients
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", tous, clientHandler.Create)
	clients.Get("/", tous, clientHandler.List)
	clients.Get("/:id", tous, clientHandler.GetByID)
	clients.Put("/:id", tous, clientHandler.Update)
	clients.Delete("/:id", RequireRole(entity.RoleAdmin), clientHandler.Delete)

	// Fournisseurs
	fournisseurs := protected.Group("/fournisseurs")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	fournisseurs.Post("/", tous, supplierHandler.Create)
	fournisseurs.Get("/", tous, supplierHandler.List)
	fournisseurs.Get("/:id", tous, supplierHandler.GetByID)
	fournisseurs.Put("/:id", tous, supplierHandler.Update)
	fournisseurs.Delete("/:id", RequireRole(entity.RoleAdmin), supplierHandler.Delete)

	// Devis + conversion
	devis := protected.Group("/devis")
	quoteHandler := NewQuoteHandler(deps.QuoteUC, deps.ConvertUC)
	devis.Post("/", tous, quoteHandler.Create)
	devis.Get("/", tous, quoteHandler.List)
	devis.Get("/:id", tous, quoteHandler.GetByID)
	devis.Patch("/:id/statut", tous, quoteHandler.UpdateStatus)
	devis.Post("/:id/convert-to-facture", comptables, quoteHandler.Convert)

	// Factures
	factures := protected.Group("/factures")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	factures.Post("/", comptables, invoiceHandler.Create)
	factures.Get("/", tous, invoiceHandler.List)
	factures.Get("/:id", tous, invoiceHandler.GetByID)
	factures.Patch("/:id/statut", comptables, invoiceHandler.UpdateStatus)

	// Paiements
	paiements := protected.Group("/paiements")
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	paiements.Post("/", comptables, paymentHandler.Create)
	paiements.Get("/", comptables, paymentHandler.List)
	paiements.Get("/document/:id", comptables, paymentHandler.ListByDocument)
	paiements.Get("/:id", comptables, paymentHandler.GetByID)

	// Stock
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stockGroup.Post("/", tous, stockHandler.Create)
	stockGroup.Get("/", tous, stockHandler.List)
	stockGroup.Get("/alerts", tous, stockHandler.Alerts)
	stockGroup.Get("/:id", tous, stockHandler.GetByID)
	stockGroup.Put("/:id", tous, stockHandler.Update)
	stockGroup.Delete("/:id", RequireRole(entity.RoleAdmin), stockHandler.Delete)

	// Tableau de bord
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", tous, dashboardHandler.Stats)

	// PDF
	pdf := protected.Group("/pdf")
	pdfHandler := NewPDFHandler(deps.DocumentPDF, deps.ReportsUC)
	pdf.Get("/document/devis/:id", tous, pdfHandler.QuotePDF)
	pdf.Get("/document/facture/:id", tous, pdfHandler.InvoicePDF)
	pdf.Get("/document/paiement/:id", comptables, pdfHandler.PaymentPDF)
	pdf.Get("/rapport/:type", comptables, pdfHandler.ReportPDF)
}
