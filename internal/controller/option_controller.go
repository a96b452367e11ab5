package controller

import (
	"elearning_backend/internal/service"
	"elearning_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type OptionController struct {
	QuestionService *service.QuestionService
}

func NewOptionController(questionService *service.QuestionService) *OptionController {
	return &OptionController{QuestionService: questionService}
}

// Create godoc
// @Summary Add an answer option to a question
// @Description A question holds at most four options, labels must be unique and at most one option is correct. Violations return 409.
// @Tags options
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.OptionRequest true "Option"
// @Success 201 {object} util.Response{data=model.QuestionOption}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/admin/question-options [post]
func (c *OptionController) Create(ctx *gin.Context) {
	var req service.OptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	option, err := c.QuestionService.CreateOption(ctx.Request.Context(), req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, option)
}

// Update godoc
// @Summary Update an answer option
// @Tags options
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Option ID"
// @Param   body body service.OptionRequest true "Option"
// @Success 200 {object} util.Response{data=model.QuestionOption}
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/admin/question-options/{id} [put]
func (c *OptionController) Update(ctx *gin.Context) {
	var req service.OptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	option, err := c.QuestionService.UpdateOption(ctx.Request.Context(), util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, option)
}

// Delete godoc
// @Summary Delete an answer option
// @Tags options
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Option ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/question-options/{id} [delete]
func (c *OptionController) Delete(ctx *gin.Context) {
	if err := c.QuestionService.DeleteOption(ctx.Request.Context(), util.MustParseUint(ctx.Param("id"))); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}
