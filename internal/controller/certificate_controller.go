package controller

import (
	"elearning_backend/internal/service"
	"elearning_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CertificateController struct {
	CertService *service.CertificateService
}

func NewCertificateController(certService *service.CertificateService) *CertificateController {
	return &CertificateController{CertService: certService}
}

// List godoc
// @Summary List certificates
// @Tags certificates
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Certificate}
// @Router /api/certificates [get]
func (c *CertificateController) List(ctx *gin.Context) {
	certs, err := c.CertService.ListCertificates()
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, certs)
}

// Create godoc
// @Summary Create a certificate
// @Tags certificates
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.CertificateRequest true "Certificate"
// @Success 201 {object} util.Response{data=model.Certificate}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/admin/certificates [post]
func (c *CertificateController) Create(ctx *gin.Context) {
	var req service.CertificateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	cert, err := c.CertService.CreateCertificate(req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, cert)
}

// Update godoc
// @Summary Rename a certificate
// @Tags certificates
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Certificate ID"
// @Param   body body service.CertificateRequest true "Certificate"
// @Success 200 {object} util.Response{data=model.Certificate}
// @Failure 404 {object} util.Response
// @Router /api/admin/certificates/{id} [put]
func (c *CertificateController) Update(ctx *gin.Context) {
	var req service.CertificateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	cert, err := c.CertService.UpdateCertificate(util.MustParseUint(ctx.Param("id")), req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, cert)
}

// Delete godoc
// @Summary Delete a certificate
// @Tags certificates
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Certificate ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/certificates/{id} [delete]
func (c *CertificateController) Delete(ctx *gin.Context) {
	if err := c.CertService.DeleteCertificate(util.MustParseUint(ctx.Param("id"))); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}
