package program

import (
	"edu-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ProgramController struct {
	ProgramService ProgramService
}

func NewProgramController(programService ProgramService) *ProgramController {
	return &ProgramController{
		ProgramService: programService,
	}
}

// CreateProgram godoc
// @Summary Create program
// @Tags programs
// @Accept json
// @Produce json
// @Success 201 {object} Program
// @Failure 400 {object} map[string]interface{}
// @Router /api/programs [post]
func (ctrl *ProgramController) CreateProgram(ctx *fiber.Ctx) error {
	var program Program
	if err := ctx.BodyParser(&program); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	claims := middleware.Claims(ctx)
	if err := ctrl.ProgramService.CreateProgram(ctx.UserContext(), claims.UserID, &program); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(program)
}

// ListPrograms godoc
// @Summary List programs
// @Tags programs
// @Produce json
// @Param active query bool false "Active only"
// @Success 200 {array} Program
// @Router /api/programs [get]
func (ctrl *ProgramController) ListPrograms(ctx *fiber.Ctx) error {
	activeOnly := ctx.QueryBool("active", false)
	programs, err := ctrl.ProgramService.ListPrograms(ctx.UserContext(), activeOnly)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(programs)
}

// GetProgram godoc
// @Summary Get program
// @Tags programs
// @Produce json
// @Param id path string true "Program ID"
// @Success 200 {object} Program
// @Failure 404 {object} map[string]interface{}
// @Router /api/programs/{id} [get]
func (ctrl *ProgramController) GetProgram(ctx *fiber.Ctx) error {
	program, err := ctrl.ProgramService.GetProgram(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(program)
}

// UpdateProgram godoc
// @Summary Update program
// @Tags programs
// @Accept json
// @Produce json
// @Param id path string true "Program ID"
// @Success 200 {object} Program
// @Failure 400 {object} map[string]interface{}
// @Router /api/programs/{id} [put]
func (ctrl *ProgramController) UpdateProgram(ctx *fiber.Ctx) error {
	var program Program
	if err := ctx.BodyParser(&program); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	claims := middleware.Claims(ctx)
	if err := ctrl.ProgramService.UpdateProgram(ctx.UserContext(), claims.UserID, ctx.Params("id"), &program); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(program)
}

// DeleteProgram godoc
// @Summary Delete program
// @Tags programs
// @Param id path string true "Program ID"
// @Success 204 {object} nil
// @Failure 500 {object} map[string]interface{}
// @Router /api/programs/{id} [delete]
func (ctrl *ProgramController) DeleteProgram(ctx *fiber.Ctx) error {
	claims := middleware.Claims(ctx)
	if err := ctrl.ProgramService.DeleteProgram(ctx.UserContext(), claims.UserID, ctx.Params("id")); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
