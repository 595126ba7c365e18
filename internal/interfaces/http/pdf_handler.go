package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/ecopumpafrik/gestion-api/internal/application/analytics"
	"github.com/ecopumpafrik/gestion-api/internal/application/billing"
)

// PDFHandler sert les documents et rapports en PDF.
type PDFHandler struct {
	documents *billing.DocumentPDFUseCase
	reports   *analytics.ReportsUseCase
}

// NewPDFHandler construit le handler.
func NewPDFHandler(documents *billing.DocumentPDFUseCase, reports *analytics.ReportsUseCase) *PDFHandler {
	return &PDFHandler{documents: documents, reports: reports}
}

// QuotePDF GET /api/pdf/document/devis/:id
func (h *PDFHandler) QuotePDF(c *fiber.Ctx) error {
	data, err := h.documents.QuotePDF(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return servePDF(c, "devis", data)
}

// InvoicePDF GET /api/pdf/document/facture/:id
func (h *PDFHandler) InvoicePDF(c *fiber.Ctx) error {
	data, err := h.documents.InvoicePDF(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return servePDF(c, "facture", data)
}

// PaymentPDF GET /api/pdf/document/paiement/:id
func (h *PDFHandler) PaymentPDF(c *fiber.Ctx) error {
	data, err := h.documents.PaymentPDF(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return servePDF(c, "recu-paiement", data)
}

// ReportPDF GET /api/pdf/rapport/:type?du=...&au=...
// Types: journal_ventes, balance_clients, journal_achats,
// balance_fournisseurs, tresorerie, compte_resultat.
func (h *PDFHandler) ReportPDF(c *fiber.Ctx) error {
	from, to, ok := parsePeriod(c)
	if !ok {
		return nil
	}
	data, err := h.reports.ReportPDF(c.Context(), c.Params("type"), from, to)
	if err != nil {
		return fail(c, err)
	}
	return servePDF(c, c.Params("type"), data)
}

func servePDF(c *fiber.Ctx, name string, data []byte) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", name+".pdf"))
	return c.Send(data)
}
