package controller

import (
	"elearning_backend/internal/service"
	"elearning_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MediaController struct {
	MediaService *service.MediaService
}

func NewMediaController(mediaService *service.MediaService) *MediaController {
	return &MediaController{MediaService: mediaService}
}

// Create godoc
// @Summary Attach an uploaded audio track to an exam
// @Tags media
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.ExamMediaRequest true "Media record"
// @Success 201 {object} util.Response{data=model.ExamMedia}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response "Exam not found"
// @Router /api/admin/exam-media [post]
func (c *MediaController) Create(ctx *gin.Context) {
	var req service.ExamMediaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	media, err := c.MediaService.AddExamMedia(ctx.Request.Context(), req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, media)
}

// ListByExam godoc
// @Summary Audio tracks of an exam
// @Tags media
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Exam ID"
// @Success 200 {object} util.Response{data=[]model.ExamMedia}
// @Failure 404 {object} util.Response
// @Router /api/admin/exams/{id}/media [get]
func (c *MediaController) ListByExam(ctx *gin.Context) {
	media, err := c.MediaService.ListExamMedia(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, media)
}

type attachAudioRequest struct {
	AudioURL *string `json:"audio_url"`
}

// AttachContainerAudio godoc
// @Summary Set or clear a container's audio track
// @Tags media
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Container ID"
// @Param   body body attachAudioRequest true "Audio URL, null to clear"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/exam-containers/{id}/audio [put]
func (c *MediaController) AttachContainerAudio(ctx *gin.Context) {
	var req attachAudioRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.MediaService.AttachContainerAudio(ctx.Request.Context(), util.MustParseUint(ctx.Param("id")), req.AudioURL); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"audio_url": req.AudioURL})
}

type attachImageRequest struct {
	ImageURL *string `json:"image_url"`
}

// AttachQuestionImage godoc
// @Summary Set or clear the image on a placed question
// @Tags media
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Container question ID"
// @Param   body body attachImageRequest true "Image URL, null to clear"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/container-questions/{id}/image [put]
func (c *MediaController) AttachQuestionImage(ctx *gin.Context) {
	var req attachImageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.MediaService.AttachQuestionImage(ctx.Request.Context(), util.MustParseUint(ctx.Param("id")), req.ImageURL); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"image_url": req.ImageURL})
}

// Delete godoc
// @Summary Remove an audio track record
// @Tags media
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Media ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/exam-media/{id} [delete]
func (c *MediaController) Delete(ctx *gin.Context) {
	if err := c.MediaService.DeleteExamMedia(ctx.Request.Context(), util.MustParseUint(ctx.Param("id"))); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}
