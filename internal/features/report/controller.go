package report

import (
	"fmt"

	"edu-crm/internal/config"
	"edu-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ReportController struct {
	ReportService *ReportService
	Config        *config.Config
	Logger        *zap.Logger
}

func NewReportController(reportService *ReportService, cfg *config.Config, logger *zap.Logger) *ReportController {
	return &ReportController{
		ReportService: reportService,
		Config:        cfg,
		Logger:        logger,
	}
}

// GetAnalyticsReport godoc
// @Summary Analytics report snapshot or export
// @Tags reports
// @Produce json
// @Param format query string false "Output format" Enums(json, pdf, xlsx)
// @Success 200 {object} Snapshot
// @Failure 500 {object} map[string]interface{}
// @Router /api/reports/analytics [get]
func (ctrl *ReportController) GetAnalyticsReport(ctx *fiber.Ctx) error {
	claims := middleware.Claims(ctx)

	snap, err := ctrl.ReportService.BuildSnapshot(ctx.UserContext(), claims)
	if err != nil {
		ctrl.Logger.Error("analytics aggregation failed", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to generate report"})
	}

	format := ctx.Query("format", "json")
	switch format {
	case "json":
		return ctx.JSON(snap)
	case "pdf":
		document, err := RenderPDF(snap, ctrl.Config.ProductName)
		if err != nil {
			ctrl.Logger.Error("report pdf rendering failed", zap.Error(err))
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to generate report"})
		}
		ctrl.ReportService.RecordExport(ctx.UserContext(), claims, "pdf")
		ctx.Set(fiber.HeaderContentType, "application/pdf")
		ctx.Set(fiber.HeaderContentDisposition, ctrl.attachmentName("pdf", snap))
		return ctx.Send(document)
	case "xlsx":
		workbook, err := RenderExcel(snap)
		if err != nil {
			ctrl.Logger.Error("report excel rendering failed", zap.Error(err))
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to generate report"})
		}
		ctrl.ReportService.RecordExport(ctx.UserContext(), claims, "xlsx")
		ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		ctx.Set(fiber.HeaderContentDisposition, ctrl.attachmentName("xlsx", snap))
		return ctx.Send(workbook)
	default:
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "format must be json, pdf or xlsx"})
	}
}

func (ctrl *ReportController) attachmentName(ext string, snap *Snapshot) string {
	return fmt.Sprintf(`attachment; filename="%s-Analytics-Report-%s.%s"`,
		ctrl.Config.ProductName, snap.GeneratedAt.Format("2006-01-02"), ext)
}
