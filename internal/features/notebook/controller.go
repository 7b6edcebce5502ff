package notebook

import (
	"edu-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type NotebookController struct {
	NotebookService NotebookService
}

func NewNotebookController(notebookService NotebookService) *NotebookController {
	return &NotebookController{
		NotebookService: notebookService,
	}
}

// CreateNotebook godoc
// @Summary Create notebook
// @Tags notebooks
// @Accept json
// @Produce json
// @Success 201 {object} Notebook
// @Failure 400 {object} map[string]interface{}
// @Router /api/notebooks [post]
func (ctrl *NotebookController) CreateNotebook(ctx *fiber.Ctx) error {
	var notebook Notebook
	if err := ctx.BodyParser(&notebook); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	claims := middleware.Claims(ctx)
	if err := ctrl.NotebookService.CreateNotebook(ctx.UserContext(), claims.UserID, &notebook); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(notebook)
}

// ListNotebooks godoc
// @Summary List notebooks
// @Tags notebooks
// @Produce json
// @Success 200 {array} Notebook
// @Router /api/notebooks [get]
func (ctrl *NotebookController) ListNotebooks(ctx *fiber.Ctx) error {
	claims := middleware.Claims(ctx)
	notebooks, err := ctrl.NotebookService.ListNotebooks(ctx.UserContext(), claims.UserID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(notebooks)
}

// GetNotebook godoc
// @Summary Get notebook
// @Tags notebooks
// @Produce json
// @Param id path string true "Notebook ID"
// @Success 200 {object} Notebook
// @Failure 404 {object} map[string]interface{}
// @Router /api/notebooks/{id} [get]
func (ctrl *NotebookController) GetNotebook(ctx *fiber.Ctx) error {
	claims := middleware.Claims(ctx)
	notebook, err := ctrl.NotebookService.GetNotebook(ctx.UserContext(), claims.UserID, ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(notebook)
}

type renameRequest struct {
	Name string `json:"name"`
}

// RenameNotebook godoc
// @Summary Rename notebook
// @Tags notebooks
// @Accept json
// @Param id path string true "Notebook ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/notebooks/{id} [put]
func (ctrl *NotebookController) RenameNotebook(ctx *fiber.Ctx) error {
	var req renameRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	claims := middleware.Claims(ctx)
	if err := ctrl.NotebookService.RenameNotebook(ctx.UserContext(), claims.UserID, ctx.Params("id"), req.Name); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"message": "Notebook renamed successfully"})
}

// DeleteNotebook godoc
// @Summary Delete notebook
// @Tags notebooks
// @Param id path string true "Notebook ID"
// @Success 204 {object} nil
// @Failure 500 {object} map[string]interface{}
// @Router /api/notebooks/{id} [delete]
func (ctrl *NotebookController) DeleteNotebook(ctx *fiber.Ctx) error {
	claims := middleware.Claims(ctx)
	if err := ctrl.NotebookService.DeleteNotebook(ctx.UserContext(), claims.UserID, ctx.Params("id")); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

// AddNote godoc
// @Summary Add note
// @Tags notebooks
// @Accept json
// @Produce json
// @Param id path string true "Notebook ID"
// @Success 201 {object} Note
// @Failure 400 {object} map[string]interface{}
// @Router /api/notebooks/{id}/notes [post]
func (ctrl *NotebookController) AddNote(ctx *fiber.Ctx) error {
	var note Note
	if err := ctx.BodyParser(&note); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	claims := middleware.Claims(ctx)
	if err := ctrl.NotebookService.AddNote(ctx.UserContext(), claims.UserID, ctx.Params("id"), &note); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(note)
}

// UpdateNote godoc
// @Summary Update note
// @Tags notebooks
// @Accept json
// @Param id path string true "Notebook ID"
// @Param noteId path string true "Note ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/notebooks/{id}/notes/{noteId} [put]
func (ctrl *NotebookController) UpdateNote(ctx *fiber.Ctx) error {
	var updates map[string]interface{}
	if err := ctx.BodyParser(&updates); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	claims := middleware.Claims(ctx)
	if err := ctrl.NotebookService.UpdateNote(ctx.UserContext(), claims.UserID, ctx.Params("id"), ctx.Params("noteId"), updates); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"message": "Note updated successfully"})
}

// RemoveNote godoc
// @Summary Remove note
// @Tags notebooks
// @Param id path string true "Notebook ID"
// @Param noteId path string true "Note ID"
// @Success 204 {object} nil
// @Failure 500 {object} map[string]interface{}
// @Router /api/notebooks/{id}/notes/{noteId} [delete]
func (ctrl *NotebookController) RemoveNote(ctx *fiber.Ctx) error {
	claims := middleware.Claims(ctx)
	if err := ctrl.NotebookService.RemoveNote(ctx.UserContext(), claims.UserID, ctx.Params("id"), ctx.Params("noteId")); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
