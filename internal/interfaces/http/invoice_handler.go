package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ecopumpafrik/gestion-api/internal/application/billing"
	"github.com/ecopumpafrik/gestion-api/internal/application/dto"
)

// InvoiceHandler gère les requêtes HTTP des factures.
type InvoiceHandler struct {
	uc *billing.InvoiceUseCase
}

// NewInvoiceHandler construit le handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// Create POST /api/factures (facture directe, sans devis d'origine)
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if !parseBody(c, &in) {
		return nil
	}
	invoice, err := h.uc.CreateInvoice(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// List GET /api/factures?limit=20&offset=0
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	list, err := h.uc.ListInvoices(c.Context(), limit, offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/factures/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	invoice, err := h.uc.GetInvoice(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(invoice)
}

// UpdateStatus PATCH /api/factures/:id/statut
// Seuls "envoyée" et "annulée" sont acceptés; "payée" est dérivé par la
// réconciliation des paiements.
func (h *InvoiceHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateInvoiceStatusRequest
	if !parseBody(c, &in) {
		return nil
	}
	invoice, err := h.uc.UpdateStatus(c.Context(), c.Params("id"), in.Statut)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(invoice)
}
