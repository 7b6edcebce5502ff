package leadsync

import (
	"edu-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type LeadSyncController struct {
	LeadSyncService *LeadSyncService
}

func NewLeadSyncController(leadSyncService *LeadSyncService) *LeadSyncController {
	return &LeadSyncController{
		LeadSyncService: leadSyncService,
	}
}

// RunSync godoc
// @Summary Import leads from the external source
// @Tags leadsync
// @Produce json
// @Success 200 {object} SyncResult
// @Failure 500 {object} map[string]interface{}
// @Router /api/leadsync/run [post]
func (ctrl *LeadSyncController) RunSync(ctx *fiber.Ctx) error {
	claims := middleware.Claims(ctx)
	result, err := ctrl.LeadSyncService.Run(ctx.UserContext(), claims.UserID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(result)
}
