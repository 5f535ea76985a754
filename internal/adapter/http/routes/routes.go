package routes

import (
	"github.com/gin-gonic/gin"

	"todoapi/internal/adapter/http/handler"
	"todoapi/internal/adapter/http/middleware"
	"todoapi/pkg/auth"
	"todoapi/pkg/logger"
	"todoapi/pkg/telemetry"
)

type HandlersConfig struct {
	AuthHandler *handler.AuthHandler
	TodoHandler *handler.TodoHandler
	JWT         *auth.JWT
}

func SetupRouter(handlers HandlersConfig, serviceName string, metrics *telemetry.AppMetrics, log *logger.Logger) *gin.Engine {
	if gin.Mode() == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	middleware.Setup(router, serviceName, metrics, log)

	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	if handlers.AuthHandler != nil {
		setupPublicRoutes(router, handlers.AuthHandler)
	}

	if handlers.TodoHandler != nil {
		setupProtectedRoutes(router, handlers.TodoHandler, handlers.JWT)
	}

	return router
}

func setupPublicRoutes(router *gin.Engine, authHandler *handler.AuthHandler) {
	public := router.Group("/auth")
	{
		public.POST("/register", authHandler.Register)
		public.POST("/login", authHandler.Login)
	}
}

func setupProtectedRoutes(router *gin.Engine, todoHandler *handler.TodoHandler, jwt *auth.JWT) {
	protected := router.Group("/todos")
	protected.Use(jwt.GinMiddleware())
	{
		protected.GET("", todoHandler.ListTodos)
		protected.POST("", todoHandler.CreateTodo)
		protected.GET("/:uuid", todoHandler.GetTodo)
		protected.PATCH("/:uuid", todoHandler.UpdateTodo)
		protected.DELETE("/:uuid", todoHandler.DeleteTodo)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// SetupRouterForTests wires routes without telemetry or logging middleware.
func SetupRouterForTests(handlers HandlersConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	if handlers.AuthHandler != nil {
		setupPublicRoutes(router, handlers.AuthHandler)
	}

	if handlers.TodoHandler != nil {
		setupProtectedRoutes(router, handlers.TodoHandler, handlers.JWT)
	}

	return router
}
