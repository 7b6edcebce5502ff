package interaction

import (
	"edu-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type InteractionController struct {
	InteractionService InteractionService
}

func NewInteractionController(interactionService InteractionService) *InteractionController {
	return &InteractionController{
		InteractionService: interactionService,
	}
}

// LogInteraction godoc
// @Summary Log interaction
// @Description Record a contact attempt and its outcome
// @Tags interactions
// @Accept json
// @Produce json
// @Success 201 {object} Interaction
// @Failure 400 {object} map[string]interface{}
// @Router /api/interactions [post]
func (ctrl *InteractionController) LogInteraction(ctx *fiber.Ctx) error {
	var interaction Interaction
	if err := ctx.BodyParser(&interaction); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if interaction.InquiryID.IsZero() {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "inquiry_id is required"})
	}

	claims := middleware.Claims(ctx)
	if err := ctrl.InteractionService.LogInteraction(ctx.UserContext(), claims.UserID, &interaction); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(interaction)
}

// ListByInquiry godoc
// @Summary List interactions for an inquiry
// @Tags interactions
// @Produce json
// @Param id path string true "Inquiry ID"
// @Success 200 {array} Interaction
// @Failure 500 {object} map[string]interface{}
// @Router /api/interactions/inquiry/{id} [get]
func (ctrl *InteractionController) ListByInquiry(ctx *fiber.Ctx) error {
	interactions, err := ctrl.InteractionService.ListByInquiry(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(interactions)
}
