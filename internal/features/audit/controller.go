package audit

import (
	"github.com/gofiber/fiber/v2"
)

type AuditController struct {
	AuditService AuditService
}

func NewAuditController(auditService AuditService) *AuditController {
	return &AuditController{
		AuditService: auditService,
	}
}

// ListLogs godoc
// @Summary List audit logs
// @Description List user activity logs with optional filters
// @Tags audit
// @Produce json
// @Param entity query string false "Entity name"
// @Param actor_id query string false "Actor user ID"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {array} models.AuditLog
// @Failure 500 {object} map[string]interface{}
// @Router /api/audit [get]
func (ctrl *AuditController) ListLogs(ctx *fiber.Ctx) error {
	filters := map[string]interface{}{
		"entity":   ctx.Query("entity"),
		"actor_id": ctx.Query("actor_id"),
		"action":   ctx.Query("action"),
	}

	page := int64(ctx.QueryInt("page", 1))
	limit := int64(ctx.QueryInt("limit", 50))

	logs, err := ctrl.AuditService.ListLogs(ctx.UserContext(), filters, page, limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(logs)
}
