package interaction

import (
	"edu-crm/internal/common/api"
	"edu-crm/internal/config"
	"edu-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type InteractionApi struct {
	InteractionController *InteractionController
	Config                *config.Config
}

func NewInteractionApi(interactionController *InteractionController, cfg *config.Config) api.Route {
	return &InteractionApi{
		InteractionController: interactionController,
		Config:                cfg,
	}
}

func (api *InteractionApi) Setup(app *fiber.App) {
	group := app.Group("/api/interactions", middleware.AuthMiddleware(api.Config.SkipAuth))

	group.Post("/", api.InteractionController.LogInteraction)
	group.Get("/inquiry/:id", api.InteractionController.ListByInquiry)
}
