package controller

import (
	"elearning_backend/internal/service"
	"elearning_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	QuestionService *service.QuestionService
}

func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{QuestionService: questionService}
}

// Create godoc
// @Summary Create a question and place it in a container
// @Description The question and its container link are created in one transaction.
// @Tags questions
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.CreateQuestionRequest true "Question with placement"
// @Success 201 {object} util.Response{data=model.ContainerQuestion}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response "Container not found"
// @Router /api/admin/questions [post]
func (c *QuestionController) Create(ctx *gin.Context) {
	var req service.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	placement, err := c.QuestionService.CreateQuestion(ctx.Request.Context(), req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, placement)
}

// Update godoc
// @Summary Update a question's content and explanation
// @Tags questions
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Question ID"
// @Param   body body service.UpdateQuestionRequest true "Question"
// @Success 200 {object} util.Response{data=model.Question}
// @Failure 404 {object} util.Response
// @Router /api/admin/questions/{id} [put]
func (c *QuestionController) Update(ctx *gin.Context) {
	var req service.UpdateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.QuestionService.UpdateQuestion(ctx.Request.Context(), util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, question)
}

// Attach godoc
// @Summary Place an existing question into a container
// @Tags questions
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.AttachQuestionRequest true "Placement"
// @Success 201 {object} util.Response{data=model.ContainerQuestion}
// @Failure 400 {object} util.Response
// @Router /api/admin/container-questions [post]
func (c *QuestionController) Attach(ctx *gin.Context) {
	var req service.AttachQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	placement, err := c.QuestionService.AttachQuestion(ctx.Request.Context(), req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, placement)
}

// GetPlacement godoc
// @Summary One placed question with its options
// @Tags questions
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Container question ID"
// @Success 200 {object} util.Response{data=model.ContainerQuestion}
// @Failure 404 {object} util.Response
// @Router /api/admin/container-questions/{id} [get]
func (c *QuestionController) GetPlacement(ctx *gin.Context) {
	placement, err := c.QuestionService.GetPlacement(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, placement)
}

type reorderRequest struct {
	Order int `json:"order" binding:"required"`
}

// Reorder godoc
// @Summary Change a question's position inside its container
// @Tags questions
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Container question ID"
// @Param   body body reorderRequest true "New order"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/container-questions/{id}/order [patch]
func (c *QuestionController) Reorder(ctx *gin.Context) {
	var req reorderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.QuestionService.ReorderPlacement(ctx.Request.Context(), util.MustParseUint(ctx.Param("id")), req.Order); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"order": req.Order})
}

// Detach godoc
// @Summary Remove a question from a container
// @Description Deletes the placement and its options. The question itself is kept for reuse.
// @Tags questions
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Container question ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/container-questions/{id} [delete]
func (c *QuestionController) Detach(ctx *gin.Context) {
	if err := c.QuestionService.DetachQuestion(ctx.Request.Context(), util.MustParseUint(ctx.Param("id"))); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}
