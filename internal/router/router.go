package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/taskflow-dev/taskflow/internal/handlers"
	"github.com/taskflow-dev/taskflow/internal/services"
	"gorm.io/gorm"
)

func NewRouter(database *gorm.DB) *gin.Engine {
	r := gin.Default()

	// The API is called from arbitrary origins. AllowAllOrigins cannot
	// be combined with credentials, so every origin is echoed back.
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	projectService := services.NewProjectService(database)
	taskService := services.NewTaskService(database)
	userService := services.NewUserService(database)

	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService)
	userHandler := handlers.NewUserHandler(userService)
	dashboardHandler := handlers.NewDashboardHandler(projectService, taskService, userService)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/dashboard", dashboardHandler.Get)

		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.List)
			projects.POST("", projectHandler.Create)
			projects.GET("/:project_id", projectHandler.Get)
			projects.PATCH("/:project_id", projectHandler.Update)
			projects.DELETE("/:project_id", projectHandler.Delete)
		}

		tasks := api.Group("/tasks")
		{
			tasks.GET("", taskHandler.List)
			tasks.POST("", taskHandler.Create)
			tasks.GET("/:task_id", taskHandler.Get)
			tasks.PATCH("/:task_id", taskHandler.Update)
			tasks.DELETE("/:task_id", taskHandler.Delete)
			tasks.PATCH("/:task_id/complete", taskHandler.MarkComplete)
		}

		users := api.Group("/users")
		{
			users.GET("", userHandler.List)
			users.POST("", userHandler.Create)
			users.GET("/:user_id", userHandler.Get)
			users.PATCH("/:user_id", userHandler.Update)
			users.DELETE("/:user_id", userHandler.Delete)
		}
	}

	return r
}
