package auth

import (
	"edu-crm/internal/common/api"
	"edu-crm/internal/config"
	"edu-crm/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthApi struct {
	AuthController *AuthController
	Config         *config.Config
}

func NewAuthApi(authController *AuthController, cfg *config.Config) api.Route {
	// Inject the shared JWT secret once at startup
	utils.SetSecret(cfg.JWTSecret)

	return &AuthApi{
		AuthController: authController,
		Config:         cfg,
	}
}

func (api *AuthApi) Setup(app *fiber.App) {
	group := app.Group("/api/auth")

	group.Post("/register", api.AuthController.Register)
	group.Post("/login", api.AuthController.Login)
}
