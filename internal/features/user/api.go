package user

import (
	"edu-crm/internal/common/api"
	"edu-crm/internal/config"
	"edu-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type UserApi struct {
	UserController *UserController
	Config         *config.Config
}

func NewUserApi(userController *UserController, cfg *config.Config) api.Route {
	return &UserApi{
		UserController: userController,
		Config:         cfg,
	}
}

func (api *UserApi) Setup(app *fiber.App) {
	group := app.Group("/api/users", middleware.AuthMiddleware(api.Config.SkipAuth))

	group.Get("/", api.UserController.ListUsers)
	group.Get("/:id", api.UserController.GetUser)

	admin := group.Group("", middleware.AdminMiddleware())
	admin.Post("/", api.UserController.CreateUser)
	admin.Put("/:id", api.UserController.UpdateUser)
	admin.Delete("/:id", api.UserController.DeactivateUser)
}
