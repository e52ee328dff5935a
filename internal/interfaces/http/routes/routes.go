package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/leafmoes/bangumi-catalog/internal/application/services"
	"github.com/leafmoes/bangumi-catalog/internal/infrastructure/ratelimit"
	"github.com/leafmoes/bangumi-catalog/internal/interfaces/http/handlers"
	"github.com/leafmoes/bangumi-catalog/internal/interfaces/http/middleware"
)

// RoutesConfig 路由配置
type RoutesConfig struct {
	container *services.ServiceContainer
}

// NewRoutesConfig 创建路由配置
func NewRoutesConfig(container *services.ServiceContainer) *RoutesConfig {
	return &RoutesConfig{container: container}
}

// SetupRouter 创建并装配路由
func (rc *RoutesConfig) SetupRouter() *gin.Engine {
	router := gin.New()

	limiter := ratelimit.NewRateLimiter(rc.container.GetConfig().Server.QPS)

	router.Use(middleware.RecoverMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestLogMiddleware())
	router.Use(middleware.ErrorHandlerMiddleware())
	router.Use(middleware.RateLimitMiddleware(limiter))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	catalogHandler := handlers.NewCatalogHandler(rc.container)
	taskHandler := handlers.NewTaskHandler(rc.container)

	api := router.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		catalogGroup := api.Group("/catalog")
		{
			catalogGroup.POST("/scan", catalogHandler.Scan)
			catalogGroup.POST("/export", catalogHandler.Export)
			catalogGroup.GET("/rules", catalogHandler.Rules)
		}

		tasks := api.Group("/tasks")
		{
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("", taskHandler.ListTasks)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			tasks.POST("/:id/run", taskHandler.RunTaskNow)
		}
	}

	return router
}
