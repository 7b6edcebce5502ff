package program

import (
	"edu-crm/internal/common/api"
	"edu-crm/internal/config"
	"edu-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ProgramApi struct {
	ProgramController *ProgramController
	Config            *config.Config
}

func NewProgramApi(programController *ProgramController, cfg *config.Config) api.Route {
	return &ProgramApi{
		ProgramController: programController,
		Config:            cfg,
	}
}

func (api *ProgramApi) Setup(app *fiber.App) {
	group := app.Group("/api/programs", middleware.AuthMiddleware(api.Config.SkipAuth))

	group.Get("/", api.ProgramController.ListPrograms)
	group.Get("/:id", api.ProgramController.GetProgram)

	admin := group.Group("", middleware.AdminMiddleware())
	admin.Post("/", api.ProgramController.CreateProgram)
	admin.Put("/:id", api.ProgramController.UpdateProgram)
	admin.Delete("/:id", api.ProgramController.DeleteProgram)
}
