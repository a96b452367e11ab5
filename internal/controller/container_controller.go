package controller

import (
	"elearning_backend/internal/service"
	"elearning_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ContainerController struct {
	ExamService *service.ExamService
}

func NewContainerController(examService *service.ExamService) *ContainerController {
	return &ContainerController{ExamService: examService}
}

// Create godoc
// @Summary Add a part, passage or question group to an exam
// @Tags containers
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.ContainerRequest true "Container"
// @Success 201 {object} util.Response{data=model.ExamContainer}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response "Order already used in this exam"
// @Router /api/admin/exam-containers [post]
func (c *ContainerController) Create(ctx *gin.Context) {
	var req service.ContainerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	container, err := c.ExamService.CreateContainer(ctx.Request.Context(), req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, container)
}

// Update godoc
// @Summary Update a container
// @Tags containers
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Container ID"
// @Param   body body service.ContainerRequest true "Container"
// @Success 200 {object} util.Response{data=model.ExamContainer}
// @Failure 404 {object} util.Response
// @Router /api/admin/exam-containers/{id} [put]
func (c *ContainerController) Update(ctx *gin.Context) {
	var req service.ContainerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	container, err := c.ExamService.UpdateContainer(ctx.Request.Context(), util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, container)
}

// Delete godoc
// @Summary Delete a container, its questions and options
// @Tags containers
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Container ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/exam-containers/{id} [delete]
func (c *ContainerController) Delete(ctx *gin.Context) {
	if err := c.ExamService.DeleteContainer(ctx.Request.Context(), util.MustParseUint(ctx.Param("id"))); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}

// Stats godoc
// @Summary Completion statistics for one container
// @Tags containers
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Container ID"
// @Success 200 {object} util.Response{data=service.ContainerStatistics}
// @Failure 404 {object} util.Response
// @Router /api/admin/exam-containers/{id}/stats [get]
func (c *ContainerController) Stats(ctx *gin.Context) {
	stats, err := c.ExamService.GetContainerStats(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}
