package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ecopumpafrik/gestion-api/internal/application/dto"
	"github.com/ecopumpafrik/gestion-api/internal/application/stock"
)

// StockHandler gère les requêtes HTTP des articles de stock.
type StockHandler struct {
	uc *stock.UseCase
}

// NewStockHandler construit le handler.
func NewStockHandler(uc *stock.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Create POST /api/stock
func (h *StockHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockItemRequest
	if !parseBody(c, &in) {
		return nil
	}
	item, err := h.uc.CreateItem(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// List GET /api/stock?limit=20&offset=0
func (h *StockHandler) List(c *fiber.Ctx) error {
	limit, offset := pagination(c)
	list, err := h.uc.ListItems(c.Context(), limit, offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

// Alerts GET /api/stock/alerts
func (h *StockHandler) Alerts(c *fiber.Ctx) error {
	list, err := h.uc.ListAlerts(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/stock/:id
func (h *StockHandler) GetByID(c *fiber.Ctx) error {
	item, err := h.uc.GetItem(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(item)
}

// Update PUT /api/stock/:id
func (h *StockHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateStockItemRequest
	if !parseBody(c, &in) {
		return nil
	}
	item, err := h.uc.UpdateItem(c.Context(), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(item)
}

// Delete DELETE /api/stock/:id
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteItem(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
