package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ecopumpafrik/gestion-api/internal/application/billing"
	"github.com/ecopumpafrik/gestion-api/internal/application/dto"
)

// PaymentHandler gère les requêtes HTTP des paiements.
type PaymentHandler struct {
	uc *billing.PaymentUseCase
}

// NewPaymentHandler construit le handler.
func NewPaymentHandler(uc *billing.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// Create POST /api/paiements
// Enregistre le paiement et réconcilie la facture cible. 422 en cas de
// trop-perçu (politique durcie). Le paiement est accepté même si la facture
// n'existe pas: la réponse porte alors statut_facture vide.
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaymentRequest
	if !parseBody(c, &in) {
		return nil
	}
	payment, err := h.uc.Apply(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(payment)
}

// List GET /api/paiements?limit=20&offset=0
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	list, err := h.uc.ListPayments(c.Context(), limit, offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/paiements/:id
func (h *PaymentHandler) GetByID(c *fiber.Ctx) error {
	payment, err := h.uc.GetPayment(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(payment)
}

// ListByDocument GET /api/paiements/document/:id
func (h *PaymentHandler) ListByDocument(c *fiber.Ctx) error {
	list, err := h.uc.ListByDocument(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}
