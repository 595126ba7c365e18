package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ecopumpafrik/gestion-api/internal/application/analytics"
	"github.com/ecopumpafrik/gestion-api/internal/application/dto"
)

// DashboardHandler gère les requêtes du tableau de bord.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construit le handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats GET /api/dashboard/stats?du=2026-03-01&au=2026-03-31
// Sans bornes, la période court du premier jour du mois en cours à aujourd'hui.
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	from, to, ok := parsePeriod(c)
	if !ok {
		return nil
	}
	stats, err := h.uc.GetStats(c.Context(), from, to)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(stats)
}

// parsePeriod lit les bornes du/au (format 2006-01-02). Les deux bornes vont
// ensemble: une seule borne fournie est une erreur. Retourne ok=false si une
// réponse d'erreur a déjà été écrite.
func parsePeriod(c *fiber.Ctx) (from, to time.Time, ok bool) {
	du := c.Query("du")
	au := c.Query("au")
	if du == "" && au == "" {
		return time.Time{}, time.Time{}, true
	}
	if du == "" || au == "" {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "les bornes du et au vont ensemble"})
		return time.Time{}, time.Time{}, false
	}
	from, err := time.Parse("2006-01-02", du)
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "borne du invalide (format AAAA-MM-JJ)"})
		return time.Time{}, time.Time{}, false
	}
	to, err = time.Parse("2006-01-02", au)
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "borne au invalide (format AAAA-MM-JJ)"})
		return time.Time{}, time.Time{}, false
	}
	// Fin de journée incluse
	to = to.Add(24*time.Hour - time.Nanosecond)
	if to.Before(from) {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la borne au précède la borne du"})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}
