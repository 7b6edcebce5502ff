package campaign

import (
	"edu-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type CampaignController struct {
	CampaignService *CampaignService
}

func NewCampaignController(campaignService *CampaignService) *CampaignController {
	return &CampaignController{
		CampaignService: campaignService,
	}
}

// CreateCampaign godoc
// @Summary Create campaign
// @Tags campaigns
// @Accept json
// @Produce json
// @Success 201 {object} Campaign
// @Failure 400 {object} map[string]interface{}
// @Router /api/campaigns [post]
func (ctrl *CampaignController) CreateCampaign(ctx *fiber.Ctx) error {
	var campaign Campaign
	if err := ctx.BodyParser(&campaign); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	claims := middleware.Claims(ctx)
	created, err := ctrl.CampaignService.CreateCampaign(ctx.UserContext(), claims, &campaign)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(created)
}

// ListCampaigns godoc
// @Summary List campaigns
// @Tags campaigns
// @Produce json
// @Success 200 {array} Campaign
// @Router /api/campaigns [get]
func (ctrl *CampaignController) ListCampaigns(ctx *fiber.Ctx) error {
	campaigns, err := ctrl.CampaignService.ListCampaigns(ctx.UserContext())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(campaigns)
}

// GetCampaign godoc
// @Summary Get campaign
// @Tags campaigns
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} Campaign
// @Failure 404 {object} map[string]interface{}
// @Router /api/campaigns/{id} [get]
func (ctrl *CampaignController) GetCampaign(ctx *fiber.Ctx) error {
	campaign, err := ctrl.CampaignService.GetCampaign(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(campaign)
}

// SendCampaign godoc
// @Summary Send campaign
// @Tags campaigns
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 202 {object} Campaign
// @Failure 400 {object} map[string]interface{}
// @Router /api/campaigns/{id}/send [post]
func (ctrl *CampaignController) SendCampaign(ctx *fiber.Ctx) error {
	claims := middleware.Claims(ctx)
	campaign, err := ctrl.CampaignService.SendCampaign(ctx.UserContext(), claims, ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusAccepted).JSON(campaign)
}

// DeleteCampaign godoc
// @Summary Delete campaign
// @Tags campaigns
// @Param id path string true "Campaign ID"
// @Success 204 {object} nil
// @Failure 400 {object} map[string]interface{}
// @Router /api/campaigns/{id} [delete]
func (ctrl *CampaignController) DeleteCampaign(ctx *fiber.Ctx) error {
	claims := middleware.Claims(ctx)
	if err := ctrl.CampaignService.DeleteCampaign(ctx.UserContext(), claims, ctx.Params("id")); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
