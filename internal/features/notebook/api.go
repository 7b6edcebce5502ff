package notebook

import (
	"edu-crm/internal/common/api"
	"edu-crm/internal/config"
	"edu-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type NotebookApi struct {
	NotebookController *NotebookController
	Config             *config.Config
}

func NewNotebookApi(notebookController *NotebookController, cfg *config.Config) api.Route {
	return &NotebookApi{
		NotebookController: notebookController,
		Config:             cfg,
	}
}

func (api *NotebookApi) Setup(app *fiber.App) {
	group := app.Group("/api/notebooks", middleware.AuthMiddleware(api.Config.SkipAuth))

	group.Post("/", api.NotebookController.CreateNotebook)
	group.Get("/", api.NotebookController.ListNotebooks)
	group.Get("/:id", api.NotebookController.GetNotebook)
	group.Put("/:id", api.NotebookController.RenameNotebook)
	group.Delete("/:id", api.NotebookController.DeleteNotebook)

	group.Post("/:id/notes", api.NotebookController.AddNote)
	group.Put("/:id/notes/:noteId", api.NotebookController.UpdateNote)
	group.Delete("/:id/notes/:noteId", api.NotebookController.RemoveNote)
}
