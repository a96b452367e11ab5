package controller

import (
	"os"
	"path/filepath"
	"strings"

	"elearning_backend/internal/config"
	"elearning_backend/internal/service"
	"elearning_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UploadController struct {
	StorageService *service.StorageService
	Config         *config.Config
}

func NewUploadController(storageService *service.StorageService, cfg *config.Config) *UploadController {
	return &UploadController{StorageService: storageService, Config: cfg}
}

// UploadAudio godoc
// @Summary Upload an exam audio file
// @Description Stores the file and probes its duration with ffprobe. The returned duration feeds the exam-media record.
// @Tags upload
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   file formData file true "Audio file (mp3, wav, m4a, aac, ogg)"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Router /api/upload/exam/audio [post]
func (c *UploadController) UploadAudio(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	maxSize := int64(c.Config.Upload.MaxAudioSizeMB) << 20
	if file.Size > maxSize {
		util.RespondError(ctx, util.Uploadf("audio file exceeds %dMB limit", c.Config.Upload.MaxAudioSizeMB))
		return
	}

	src, err := file.Open()
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	mimeType, _ := util.ValidateMimeType(src, []string{util.MimeAudio, "application/ogg", util.MimeOctetStream})
	src.Close()

	// MP3 files without ID3 tags sniff as octet-stream, so fall back to the
	// extension for those.
	if !util.IsAudio(mimeType) && !util.HasAllowedExtension(file.Filename, util.AllowedAudioExtensions) {
		util.RespondError(ctx, util.Uploadf("invalid audio file type: %s", mimeType))
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	objectName := "exam/audio/" + uuid.New().String() + ext

	tmpPath := filepath.Join(os.TempDir(), uuid.New().String()+ext)
	if err := ctx.SaveUploadedFile(file, tmpPath); err != nil {
		util.RespondError(ctx, err)
		return
	}
	defer os.Remove(tmpPath)

	duration := 0
	format := ""
	if info, err := util.GetAudioInfo(tmpPath); err == nil {
		duration = int(info.Duration)
		format = info.Format
	}

	f, err := os.Open(tmpPath)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	defer f.Close()

	url, err := c.StorageService.Upload(ctx.Request.Context(), objectName, f, file.Size, mimeType)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"url":              url,
		"duration":         duration,
		"duration_display": util.FormatAudioDuration(duration),
		"format":           format,
		"size":             file.Size,
	})
}

// UploadImage godoc
// @Summary Upload an exam image
// @Tags upload
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   file formData file true "Image file (jpg, png, gif, webp)"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Router /api/upload/exam/images [post]
func (c *UploadController) UploadImage(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	maxSize := int64(c.Config.Upload.MaxImageSizeMB) << 20
	if file.Size > maxSize {
		util.RespondError(ctx, util.Uploadf("image file exceeds %dMB limit", c.Config.Upload.MaxImageSizeMB))
		return
	}

	src, err := file.Open()
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	mimeType, mimeErr := util.ValidateMimeType(src, []string{util.MimeImage})
	src.Close()
	if mimeErr != nil {
		util.RespondError(ctx, mimeErr)
		return
	}
	if !util.HasAllowedExtension(file.Filename, util.AllowedImageExtensions) {
		util.RespondError(ctx, util.Uploadf("image extension not allowed: %s", filepath.Ext(file.Filename)))
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	objectName := "exam/images/" + uuid.New().String() + ext

	src, err = file.Open()
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	defer src.Close()

	url, err := c.StorageService.Upload(ctx.Request.Context(), objectName, src, file.Size, mimeType)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"url":  url,
		"size": file.Size,
	})
}
