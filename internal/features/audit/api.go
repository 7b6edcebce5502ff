package audit

import (
	"edu-crm/internal/common/api"
	"edu-crm/internal/config"
	"edu-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type AuditApi struct {
	AuditController *AuditController
	Config          *config.Config
}

func NewAuditApi(auditController *AuditController, cfg *config.Config) api.Route {
	return &AuditApi{
		AuditController: auditController,
		Config:          cfg,
	}
}

func (api *AuditApi) Setup(app *fiber.App) {
	group := app.Group("/api/audit", middleware.AuthMiddleware(api.Config.SkipAuth), middleware.AdminMiddleware())

	group.Get("/", api.AuditController.ListLogs)
}
