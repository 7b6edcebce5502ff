package meeting

import (
	"edu-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type MeetingController struct {
	MeetingService MeetingService
}

func NewMeetingController(meetingService MeetingService) *MeetingController {
	return &MeetingController{
		MeetingService: meetingService,
	}
}

// ScheduleMeeting godoc
// @Summary Schedule meeting
// @Tags meetings
// @Accept json
// @Produce json
// @Success 201 {object} Meeting
// @Failure 400 {object} map[string]interface{}
// @Router /api/meetings [post]
func (ctrl *MeetingController) ScheduleMeeting(ctx *fiber.Ctx) error {
	var meeting Meeting
	if err := ctx.BodyParser(&meeting); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	claims := middleware.Claims(ctx)
	if err := ctrl.MeetingService.ScheduleMeeting(ctx.UserContext(), claims.UserID, &meeting); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(meeting)
}

// ListMeetings godoc
// @Summary List meetings
// @Tags meetings
// @Produce json
// @Param upcoming query bool false "Upcoming only"
// @Param mine query bool false "Organized by the caller only"
// @Success 200 {array} Meeting
// @Router /api/meetings [get]
func (ctrl *MeetingController) ListMeetings(ctx *fiber.Ctx) error {
	claims := middleware.Claims(ctx)

	organizerID := ""
	if ctx.QueryBool("mine", false) || !claims.IsAdmin() {
		organizerID = claims.UserID
	}

	meetings, err := ctrl.MeetingService.ListMeetings(ctx.UserContext(), organizerID, ctx.QueryBool("upcoming", false))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(meetings)
}

// GetMeeting godoc
// @Summary Get meeting
// @Tags meetings
// @Produce json
// @Param id path string true "Meeting ID"
// @Success 200 {object} Meeting
// @Failure 404 {object} map[string]interface{}
// @Router /api/meetings/{id} [get]
func (ctrl *MeetingController) GetMeeting(ctx *fiber.Ctx) error {
	meeting, err := ctrl.MeetingService.GetMeeting(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(meeting)
}

// UpdateMeeting godoc
// @Summary Update meeting
// @Tags meetings
// @Accept json
// @Param id path string true "Meeting ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/meetings/{id} [put]
func (ctrl *MeetingController) UpdateMeeting(ctx *fiber.Ctx) error {
	var updates map[string]interface{}
	if err := ctx.BodyParser(&updates); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	claims := middleware.Claims(ctx)
	if err := ctrl.MeetingService.UpdateMeeting(ctx.UserContext(), claims.UserID, ctx.Params("id"), updates); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"message": "Meeting updated successfully"})
}

// CancelMeeting godoc
// @Summary Cancel meeting
// @Tags meetings
// @Param id path string true "Meeting ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/meetings/{id}/cancel [post]
func (ctrl *MeetingController) CancelMeeting(ctx *fiber.Ctx) error {
	claims := middleware.Claims(ctx)
	if err := ctrl.MeetingService.CancelMeeting(ctx.UserContext(), claims.UserID, ctx.Params("id")); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"message": "Meeting cancelled"})
}
