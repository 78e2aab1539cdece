package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/skillswap/backend/config"
	"github.com/skillswap/backend/internal/middleware"
	"github.com/skillswap/backend/internal/service"
)

// SetupAPI wires services, handlers and routes onto the engine.
// redisClient and s3Config may be nil; rate limiting and avatar uploads
// are then disabled.
func SetupAPI(router *gin.Engine, db *gorm.DB, cfg *config.Config, redisClient *redis.Client, s3Config *config.S3Config) {
	presenceService := service.NewPresenceService(db, redisClient)
	authService := service.NewAuthService(db, cfg.JWTSecret, presenceService)
	userService := service.NewUserService(db)
	skillService := service.NewSkillService(db)
	messageService := service.NewMessageService(db)

	var avatarService *service.AvatarService
	if s3Config != nil {
		avatarService = service.NewAvatarService(db, s3Config)
	}

	var sendLimit, createLimit []gin.HandlerFunc
	if redisClient != nil {
		sendLimit = append(sendLimit, middleware.NewMessageSendLimiter(redisClient).Middleware())
		createLimit = append(createLimit, middleware.NewSkillCreationLimiter(redisClient).Middleware())
	}

	authHandler := NewAuthHandler(authService)
	userHandler := NewUserHandler(userService, avatarService)
	skillHandler := NewSkillHandler(skillService)
	chatHandler := NewChatHandler(messageService)
	statsHandler := NewStatsHandler(db, presenceService)

	api := router.Group("/api")
	{
		api.GET("/health", HealthCheck)
		authHandler.RegisterRoutes(api)
		skillHandler.RegisterPublicRoutes(api)
		statsHandler.RegisterRoutes(api)

		user := api.Group("/user")
		user.Use(middleware.AuthMiddleware(authService))
		userHandler.RegisterRoutes(user)
		skillHandler.RegisterOwnedRoutes(user, createLimit...)

		chats := api.Group("")
		chats.Use(middleware.AuthMiddleware(authService))
		chatHandler.RegisterRoutes(chats, sendLimit...)
	}
}

// HealthCheck reports service liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Server is running",
	})
}
