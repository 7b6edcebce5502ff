package system

import (
	"edu-crm/internal/common/api"
	"edu-crm/internal/config"

	"github.com/gofiber/fiber/v2"
)

type HealthApi struct {
	Config *config.Config
}

func NewHealthApi(cfg *config.Config) api.Route {
	return &HealthApi{Config: cfg}
}

func (h *HealthApi) Setup(app *fiber.App) {
	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"status":      "ok",
			"product":     h.Config.ProductName,
			"environment": h.Config.Environment,
		})
	})
}
