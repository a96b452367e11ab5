package controller

import (
	"net/http"

	"elearning_backend/internal/service"
	"elearning_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	ReportService *service.ReportService
}

func NewReportController(reportService *service.ReportService) *ReportController {
	return &ReportController{ReportService: reportService}
}

// CompletionReport godoc
// @Summary Download an exam completion report as xlsx
// @Tags reports
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security ApiKeyAuth
// @Param   id path int true "Exam ID"
// @Success 200 {file} binary
// @Failure 404 {object} util.Response
// @Router /api/admin/exams/{id}/report [get]
func (c *ReportController) CompletionReport(ctx *gin.Context) {
	data, filename, err := c.ReportService.ExportCompletionExcel(ctx.Request.Context(), util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", "attachment; filename="+filename)
	ctx.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
