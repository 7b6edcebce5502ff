package inquiry

import (
	"edu-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type InquiryController struct {
	InquiryService InquiryService
}

func NewInquiryController(inquiryService InquiryService) *InquiryController {
	return &InquiryController{
		InquiryService: inquiryService,
	}
}

// CreateInquiry godoc
// @Summary Create inquiry
// @Description Register a new lead
// @Tags inquiries
// @Accept json
// @Produce json
// @Success 201 {object} Inquiry
// @Failure 400 {object} map[string]interface{}
// @Router /api/inquiries [post]
func (ctrl *InquiryController) CreateInquiry(ctx *fiber.Ctx) error {
	var inquiry Inquiry
	if err := ctx.BodyParser(&inquiry); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if inquiry.StudentName == "" || inquiry.Phone == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "student_name and phone are required"})
	}

	claims := middleware.Claims(ctx)
	if err := ctrl.InquiryService.CreateInquiry(ctx.UserContext(), claims, &inquiry); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(inquiry)
}

// ListInquiries godoc
// @Summary List inquiries
// @Description List inquiries visible to the caller, with filters and pagination
// @Tags inquiries
// @Produce json
// @Param stage query string false "Stage"
// @Param source query string false "Source"
// @Param search query string false "Name or phone search"
// @Success 200 {object} map[string]interface{}
// @Router /api/inquiries [get]
func (ctrl *InquiryController) ListInquiries(ctx *fiber.Ctx) error {
	claims := middleware.Claims(ctx)

	filters := map[string]string{
		"stage":  ctx.Query("stage"),
		"source": ctx.Query("source"),
		"search": ctx.Query("search"),
	}
	page := int64(ctx.QueryInt("page", 1))
	limit := int64(ctx.QueryInt("limit", 50))

	inquiries, total, err := ctrl.InquiryService.ListInquiries(ctx.UserContext(), claims, filters, page, limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"data":  inquiries,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetInquiry godoc
// @Summary Get inquiry
// @Tags inquiries
// @Produce json
// @Param id path string true "Inquiry ID"
// @Success 200 {object} Inquiry
// @Failure 404 {object} map[string]interface{}
// @Router /api/inquiries/{id} [get]
func (ctrl *InquiryController) GetInquiry(ctx *fiber.Ctx) error {
	claims := middleware.Claims(ctx)
	inquiry, err := ctrl.InquiryService.GetInquiry(ctx.UserContext(), claims, ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(inquiry)
}

// UpdateInquiry godoc
// @Summary Update inquiry
// @Tags inquiries
// @Accept json
// @Produce json
// @Param id path string true "Inquiry ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/inquiries/{id} [put]
func (ctrl *InquiryController) UpdateInquiry(ctx *fiber.Ctx) error {
	var updates map[string]interface{}
	if err := ctx.BodyParser(&updates); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	claims := middleware.Claims(ctx)
	if err := ctrl.InquiryService.UpdateInquiry(ctx.UserContext(), claims, ctx.Params("id"), updates); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"message": "Inquiry updated successfully"})
}

type moveStageRequest struct {
	Stage string `json:"stage"`
}

// MoveStage godoc
// @Summary Move inquiry stage
// @Description Reassign an inquiry to a new pipeline stage (board drop target)
// @Tags inquiries
// @Accept json
// @Produce json
// @Param id path string true "Inquiry ID"
// @Success 200 {object} Inquiry
// @Failure 400 {object} map[string]interface{}
// @Router /api/inquiries/{id}/stage [patch]
func (ctrl *InquiryController) MoveStage(ctx *fiber.Ctx) error {
	var req moveStageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	claims := middleware.Claims(ctx)
	inquiry, err := ctrl.InquiryService.MoveStage(ctx.UserContext(), claims, ctx.Params("id"), req.Stage)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(inquiry)
}

// DeleteInquiry godoc
// @Summary Delete inquiry
// @Tags inquiries
// @Param id path string true "Inquiry ID"
// @Success 204 {object} nil
// @Failure 500 {object} map[string]interface{}
// @Router /api/inquiries/{id} [delete]
func (ctrl *InquiryController) DeleteInquiry(ctx *fiber.Ctx) error {
	claims := middleware.Claims(ctx)
	if err := ctrl.InquiryService.DeleteInquiry(ctx.UserContext(), claims, ctx.Params("id")); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

// Board godoc
// @Summary Follow-up board
// @Description Inquiries grouped by stage for the Kanban board
// @Tags inquiries
// @Produce json
// @Success 200 {object} map[string][]Inquiry
// @Failure 500 {object} map[string]interface{}
// @Router /api/inquiries/board [get]
func (ctrl *InquiryController) Board(ctx *fiber.Ctx) error {
	claims := middleware.Claims(ctx)
	board, err := ctrl.InquiryService.Board(ctx.UserContext(), claims)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(board)
}
