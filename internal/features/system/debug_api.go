package system

import (
	"edu-crm/internal/common/api"
	"edu-crm/internal/config"
	"edu-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type DebugApi struct {
	config *config.Config
}

func NewDebugApi(cfg *config.Config) api.Route {
	return &DebugApi{config: cfg}
}

func (h *DebugApi) Setup(app *fiber.App) {
	debug := app.Group("/api/debug", middleware.AuthMiddleware(h.config.SkipAuth))

	debug.Get("/me", func(ctx *fiber.Ctx) error {
		claims := middleware.Claims(ctx)
		return ctx.JSON(fiber.Map{
			"user_id": claims.UserID,
			"name":    claims.Name,
			"role":    claims.Role,
		})
	})
}
