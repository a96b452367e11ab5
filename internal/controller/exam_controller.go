package controller

import (
	"strconv"

	"elearning_backend/internal/service"
	"elearning_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ExamController struct {
	ExamService *service.ExamService
}

func NewExamController(examService *service.ExamService) *ExamController {
	return &ExamController{ExamService: examService}
}

// List godoc
// @Summary List exams with filters and pagination
// @Tags exams
// @Produce  json
// @Security ApiKeyAuth
// @Param   page query int false "Page number" default(1)
// @Param   limit query int false "Page size" default(10)
// @Param   type query string false "Exam type (TOEIC or IELTS)"
// @Param   year query int false "Exam year"
// @Param   search query string false "Title or code substring"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/exams [get]
func (c *ExamController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	year, _ := strconv.Atoi(ctx.DefaultQuery("year", "0"))
	examType := ctx.Query("type")
	search := ctx.Query("search")

	exams, total, err := c.ExamService.ListExams(page, limit, examType, search, year)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  exams,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// Detail godoc
// @Summary Full exam tree with completion statistics
// @Tags exams
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Exam ID"
// @Success 200 {object} util.Response{data=service.ExamDetailResponse}
// @Failure 404 {object} util.Response
// @Router /api/admin/exams/{id}/details [get]
func (c *ExamController) Detail(ctx *gin.Context) {
	detail, err := c.ExamService.GetExamDetail(ctx.Request.Context(), util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, detail)
}

// Create godoc
// @Summary Create an exam
// @Tags exams
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.ExamRequest true "Exam"
// @Success 201 {object} util.Response{data=model.Exam}
// @Failure 400 {object} util.Response
// @Router /api/admin/exams [post]
func (c *ExamController) Create(ctx *gin.Context) {
	var req service.ExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	exam, err := c.ExamService.CreateExam(req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, exam)
}

// Update godoc
// @Summary Update an exam
// @Tags exams
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Exam ID"
// @Param   body body service.ExamRequest true "Exam"
// @Success 200 {object} util.Response{data=model.Exam}
// @Failure 404 {object} util.Response
// @Router /api/admin/exams/{id} [put]
func (c *ExamController) Update(ctx *gin.Context) {
	var req service.ExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	exam, err := c.ExamService.UpdateExam(ctx.Request.Context(), util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, exam)
}

// Delete godoc
// @Summary Delete an exam and everything under it
// @Tags exams
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Exam ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/exams/{id} [delete]
func (c *ExamController) Delete(ctx *gin.Context) {
	if err := c.ExamService.DeleteExam(ctx.Request.Context(), util.MustParseUint(ctx.Param("id"))); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}
