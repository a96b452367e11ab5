package app

import (
	"elearning_backend/internal/config"
	"elearning_backend/internal/middleware"
	"elearning_backend/internal/model"
	"elearning_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)
	router.GET("/api/health", c.health.HealthCheck)

	// Public routes.
	router.POST("/api/register", c.auth.Register)
	router.POST("/api/login", c.auth.Login)

	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))
	{
		api.GET("/profile", c.auth.Profile)
		api.GET("/certificates", c.cert.List)

		upload := api.Group("/upload")
		upload.Use(middleware.RoleMiddleware(model.Editor))
		{
			upload.POST("/exam/audio", c.upload.UploadAudio)
			upload.POST("/exam/images", c.upload.UploadImage)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.RoleMiddleware(model.Editor))
		{
			admin.POST("/certificates", c.cert.Create)
			admin.PUT("/certificates/:id", c.cert.Update)
			admin.DELETE("/certificates/:id", c.cert.Delete)

			admin.GET("/exams", c.exam.List)
			admin.POST("/exams", c.exam.Create)
			admin.GET("/exams/:id/details", c.exam.Detail)
			admin.PUT("/exams/:id", c.exam.Update)
			admin.DELETE("/exams/:id", c.exam.Delete)
			admin.GET("/exams/:id/media", c.media.ListByExam)
			admin.GET("/exams/:id/report", c.report.CompletionReport)

			admin.POST("/exam-containers", c.container.Create)
			admin.PUT("/exam-containers/:id", c.container.Update)
			admin.DELETE("/exam-containers/:id", c.container.Delete)
			admin.GET("/exam-containers/:id/stats", c.container.Stats)
			admin.PUT("/exam-containers/:id/audio", c.media.AttachContainerAudio)

			admin.POST("/questions", c.question.Create)
			admin.PUT("/questions/:id", c.question.Update)

			admin.POST("/container-questions", c.question.Attach)
			admin.GET("/container-questions/:id", c.question.GetPlacement)
			admin.PATCH("/container-questions/:id/order", c.question.Reorder)
			admin.PUT("/container-questions/:id/image", c.media.AttachQuestionImage)
			admin.DELETE("/container-questions/:id", c.question.Detach)

			admin.POST("/question-options", c.option.Create)
			admin.PUT("/question-options/:id", c.option.Update)
			admin.DELETE("/question-options/:id", c.option.Delete)

			admin.POST("/exam-media", c.media.Create)
			admin.DELETE("/exam-media/:id", c.media.Delete)
		}
	}
}
