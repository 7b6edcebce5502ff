package leadsync

import (
	"edu-crm/internal/common/api"
	"edu-crm/internal/config"
	"edu-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type LeadSyncApi struct {
	LeadSyncController *LeadSyncController
	Config             *config.Config
}

func NewLeadSyncApi(leadSyncController *LeadSyncController, cfg *config.Config) api.Route {
	return &LeadSyncApi{
		LeadSyncController: leadSyncController,
		Config:             cfg,
	}
}

func (api *LeadSyncApi) Setup(app *fiber.App) {
	group := app.Group("/api/leadsync",
		middleware.AuthMiddleware(api.Config.SkipAuth),
		middleware.AdminMiddleware())

	group.Post("/run", api.LeadSyncController.RunSync)
}
