package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ecopumpafrik/gestion-api/internal/application/billing"
	"github.com/ecopumpafrik/gestion-api/internal/application/dto"
)

// SupplierHandler gère les requêtes HTTP des fournisseurs.
type SupplierHandler struct {
	uc *billing.SupplierUseCase
}

// NewSupplierHandler construit le handler.
func NewSupplierHandler(uc *billing.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// Create POST /api/fournisseurs
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if !parseBody(c, &in) {
		return nil
	}
	supplier, err := h.uc.CreateSupplier(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(supplier)
}

// List GET /api/fournisseurs?limit=20&offset=0
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	list, err := h.uc.ListSuppliers(c.Context(), limit, offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/fournisseurs/:id
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	supplier, err := h.uc.GetSupplier(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(supplier)
}

// Update PUT /api/fournisseurs/:id
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSupplierRequest
	if !parseBody(c, &in) {
		return nil
	}
	supplier, err := h.uc.UpdateSupplier(c.Context(), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(supplier)
}

// Delete DELETE /api/fournisseurs/:id
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteSupplier(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
