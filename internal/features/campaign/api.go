package campaign

import (
	"edu-crm/internal/common/api"
	"edu-crm/internal/config"
	"edu-crm/internal/middleware"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

type CampaignApi struct {
	CampaignController *CampaignController
	Hub                *Hub
	Config             *config.Config
}

func NewCampaignApi(campaignController *CampaignController, hub *Hub, cfg *config.Config) api.Route {
	return &CampaignApi{
		CampaignController: campaignController,
		Hub:                hub,
		Config:             cfg,
	}
}

func (api *CampaignApi) Setup(app *fiber.App) {
	group := app.Group("/api/campaigns", middleware.AuthMiddleware(api.Config.SkipAuth))

	group.Get("/", api.CampaignController.ListCampaigns)
	group.Get("/:id", api.CampaignController.GetCampaign)

	admin := group.Group("", middleware.AdminMiddleware())
	admin.Post("/", api.CampaignController.CreateCampaign)
	admin.Post("/:id/send", api.CampaignController.SendCampaign)
	admin.Delete("/:id", api.CampaignController.DeleteCampaign)

	// Progress stream for send jobs
	app.Use("/ws/campaigns", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/campaigns", websocket.New(api.Hub.Handle))
}
