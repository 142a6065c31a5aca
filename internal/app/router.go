package app

import (
	"question_bank_backend/internal/config"
	"question_bank_backend/internal/middleware"
	"question_bank_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/users/register/", c.auth.Register)
		public.POST("/users/login/", c.auth.Login)
	}

	// 2. 需要授权的路由（员工及学生均可访问）
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg, repos.user, a.Redis))
	{
		authGroup.GET("/users/me/", c.auth.Profile)
		authGroup.PUT("/users/profile/update/", c.user.UpdateProfile)

		authGroup.GET("/subjects/:id/topics/", c.topic.ListBySubject)

		authGroup.GET("/questions/", c.question.List)
		authGroup.GET("/questions/:id/", c.question.Get)

		authGroup.GET("/examinations/", c.examination.List)
		authGroup.GET("/examinations/:id/", c.examination.Get)
	}

	// 3. 管理员路由（题库内容的全部写操作）
	adminGroup := router.Group("/api")
	adminGroup.Use(middleware.AuthMiddleware(cfg, repos.user, a.Redis), middleware.AdminRequired())
	{
		adminGroup.GET("/users/", c.user.List)
		adminGroup.GET("/users/:id/", c.user.Get)
		adminGroup.PUT("/users/:id/update/", c.user.Update)
		adminGroup.DELETE("/users/:id/delete/", c.user.Delete)

		adminGroup.GET("/subjects/", c.subject.List)
		adminGroup.POST("/subjects/create/", c.subject.Create)
		adminGroup.PUT("/subjects/:id/update/", c.subject.Update)
		adminGroup.DELETE("/subjects/:id/delete/", c.subject.Delete)

		adminGroup.POST("/subjects/:id/topic/create/", c.topic.Create)
		adminGroup.PUT("/subjects/topic/:id/update/", c.topic.Update)
		adminGroup.DELETE("/subjects/topic/:id/delete/", c.topic.Delete)

		adminGroup.POST("/subjects/topic/:id/question/create/", c.question.Create)
		adminGroup.DELETE("/questions/:id/delete/", c.question.Delete)

		adminGroup.POST("/files/upload/", c.file.Upload)
		adminGroup.DELETE("/files/:id/delete/", c.file.Delete)

		adminGroup.POST("/examinations/create/", c.examination.Create)
		adminGroup.PUT("/examinations/:id/update/", c.examination.Update)
		adminGroup.DELETE("/examinations/:id/delete/", c.examination.Delete)
	}
}
