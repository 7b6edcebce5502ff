package inquiry

import (
	"edu-crm/internal/common/api"
	"edu-crm/internal/config"
	"edu-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type InquiryApi struct {
	InquiryController *InquiryController
	Config            *config.Config
}

func NewInquiryApi(inquiryController *InquiryController, cfg *config.Config) api.Route {
	return &InquiryApi{
		InquiryController: inquiryController,
		Config:            cfg,
	}
}

func (api *InquiryApi) Setup(app *fiber.App) {
	group := app.Group("/api/inquiries", middleware.AuthMiddleware(api.Config.SkipAuth))

	group.Post("/", api.InquiryController.CreateInquiry)
	group.Get("/", api.InquiryController.ListInquiries)
	group.Get("/board", api.InquiryController.Board)
	group.Get("/:id", api.InquiryController.GetInquiry)
	group.Put("/:id", api.InquiryController.UpdateInquiry)
	group.Patch("/:id/stage", api.InquiryController.MoveStage)
	group.Delete("/:id", api.InquiryController.DeleteInquiry)
}
