package main

import (
	"context"
	"fmt"
	"log"

	common_api "edu-crm/internal/common/api"
	"edu-crm/internal/config"
	"edu-crm/internal/database"
	"edu-crm/internal/email"
	"edu-crm/internal/features/audit"
	"edu-crm/internal/features/auth"
	"edu-crm/internal/features/campaign"
	"edu-crm/internal/features/inquiry"
	"edu-crm/internal/features/interaction"
	"edu-crm/internal/features/leadsync"
	"edu-crm/internal/features/meeting"
	"edu-crm/internal/features/notebook"
	"edu-crm/internal/features/program"
	"edu-crm/internal/features/report"
	"edu-crm/internal/features/system"
	"edu-crm/internal/features/user"
	"edu-crm/internal/logger"
	"edu-crm/internal/middleware"

	_ "edu-crm/docs" // Import swagger docs

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(middleware.CORSMiddleware())

	return app
}

// AsRoute is a helper function to reduce boilerplate.
// It tags the constructor so Fx knows to add it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

// RegisterAllRoutes takes the group "routes" (slice of interfaces)
// and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	for _, route := range routes {
		route.Setup(app)
	}
	log.Printf("Registered %d routes\n", len(routes))
}

// RegisterAllRoutesWithAnnotation wraps RegisterAllRoutes with fx annotations
var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			database.NewDatabase,
			logger.NewLogger,
			NewFiberServer,

			email.NewSMTPSender,
			campaign.NewWhatsAppSender,
			campaign.NewHub,

			// Repositories
			audit.NewAuditRepository,
			user.NewUserRepository,
			inquiry.NewInquiryRepository,
			interaction.NewInteractionRepository,
			program.NewProgramRepository,
			notebook.NewNotebookRepository,
			meeting.NewMeetingRepository,
			campaign.NewCampaignRepo,

			// Services
			audit.NewAuditService,
			auth.NewAuthService,
			user.NewUserService,
			inquiry.NewInquiryService,
			interaction.NewInteractionService,
			program.NewProgramService,
			notebook.NewNotebookService,
			meeting.NewMeetingService,
			campaign.NewCampaignService,
			leadsync.NewLeadSyncService,
			report.NewReportService,

			// Interface adapters to break circular dependencies
			func(r user.UserRepository) audit.UserFinder { return r },

			// Controllers
			auth.NewAuthController,
			user.NewUserController,
			inquiry.NewInquiryController,
			interaction.NewInteractionController,
			program.NewProgramController,
			notebook.NewNotebookController,
			meeting.NewMeetingController,
			campaign.NewCampaignController,
			leadsync.NewLeadSyncController,
			report.NewReportController,
			audit.NewAuditController,

			// API routes
			AsRoute(auth.NewAuthApi),
			AsRoute(user.NewUserApi),
			AsRoute(inquiry.NewInquiryApi),
			AsRoute(interaction.NewInteractionApi),
			AsRoute(program.NewProgramApi),
			AsRoute(notebook.NewNotebookApi),
			AsRoute(meeting.NewMeetingApi),
			AsRoute(campaign.NewCampaignApi),
			AsRoute(leadsync.NewLeadSyncApi),
			AsRoute(report.NewReportApi),
			AsRoute(audit.NewAuditApi),
			AsRoute(system.NewHealthApi),
			AsRoute(system.NewDebugApi),
			AsRoute(system.NewSwaggerApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			RegisterAllRoutesWithAnnotation,
			StartServer,
			func(lc fx.Lifecycle, meetingService meeting.MeetingService) {
				lc.Append(fx.Hook{
					OnStart: func(ctx context.Context) error {
						return meetingService.StartReminderScheduler()
					},
					OnStop: func(ctx context.Context) error {
						meetingService.StopReminderScheduler()
						return nil
					},
				})
			},
		),
	)

	app.Run()
}
