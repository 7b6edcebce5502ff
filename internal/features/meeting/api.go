package meeting

import (
	"edu-crm/internal/common/api"
	"edu-crm/internal/config"
	"edu-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type MeetingApi struct {
	MeetingController *MeetingController
	Config            *config.Config
}

func NewMeetingApi(meetingController *MeetingController, cfg *config.Config) api.Route {
	return &MeetingApi{
		MeetingController: meetingController,
		Config:            cfg,
	}
}

func (api *MeetingApi) Setup(app *fiber.App) {
	group := app.Group("/api/meetings", middleware.AuthMiddleware(api.Config.SkipAuth))

	group.Post("/", api.MeetingController.ScheduleMeeting)
	group.Get("/", api.MeetingController.ListMeetings)
	group.Get("/:id", api.MeetingController.GetMeeting)
	group.Put("/:id", api.MeetingController.UpdateMeeting)
	group.Post("/:id/cancel", api.MeetingController.CancelMeeting)
}
