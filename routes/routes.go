package routes

import (
	"Jokerscore/controllers"
	"Jokerscore/middleware"
	"Jokerscore/services/redis"
	utils "Jokerscore/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes. db and redisClient may be nil, in
// which case history and caching are turned off.
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisClient *redis.RedisClient, jwtSecret []byte) {
	// utils global
	router.Use(utils.Logger(), utils.ErrorHandler())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes group
	api := router.Group("/")

	api.GET("/ping", controllers.Ping)

	api.POST("/score", controllers.ScoreRound(db, redisClient))

	api.GET("/last", controllers.LastScore)

	authentication := api.Group("/auth")
	authentication.Use(middleware.AuthRequired(jwtSecret))
	{
		authentication.GET("/rounds", controllers.ListRounds(db))

		authentication.GET("/rounds/:id", controllers.GetRound(db))
	}
}
