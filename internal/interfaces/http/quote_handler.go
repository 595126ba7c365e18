package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ecopumpafrik/gestion-api/internal/application/billing"
	"github.com/ecopumpafrik/gestion-api/internal/application/dto"
)

// QuoteHandler gère les requêtes HTTP des devis, conversion incluse.
type QuoteHandler struct {
	uc      *billing.QuoteUseCase
	convert *billing.ConvertQuoteUseCase
}

// NewQuoteHandler construit le handler.
func NewQuoteHandler(uc *billing.QuoteUseCase, convert *billing.ConvertQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{uc: uc, convert: convert}
}

// Create POST /api/devis
func (h *QuoteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateQuoteRequest
	if !parseBody(c, &in) {
		return nil
	}
	quote, err := h.uc.CreateQuote(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(quote)
}

// List GET /api/devis?limit=20&offset=0
func (h *QuoteHandler) List(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	list, err := h.uc.ListQuotes(c.Context(), limit, offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/devis/:id
func (h *QuoteHandler) GetByID(c *fiber.Ctx) error {
	quote, err := h.uc.GetQuote(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(quote)
}

// UpdateStatus PATCH /api/devis/:id/statut
// "converti" n'est jamais accepté ici: seule la conversion le pose.
func (h *QuoteHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateQuoteStatusRequest
	if !parseBody(c, &in) {
		return nil
	}
	quote, err := h.uc.UpdateStatus(c.Context(), c.Params("id"), in.Statut)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(quote)
}

// Convert POST /api/devis/:id/convert-to-facture
// 409 si le devis est déjà converti.
func (h *QuoteHandler) Convert(c *fiber.Ctx) error {
	invoice, err := h.convert.Convert(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}
