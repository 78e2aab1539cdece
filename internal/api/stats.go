package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/skillswap/backend/internal/models"
	"github.com/skillswap/backend/internal/service"
)

// StatsHandler serves the public marketplace counters.
type StatsHandler struct {
	db       *gorm.DB
	presence *service.PresenceService
}

func NewStatsHandler(db *gorm.DB, presence *service.PresenceService) *StatsHandler {
	return &StatsHandler{db: db, presence: presence}
}

func (h *StatsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/stats", h.GetStats)
}

func (h *StatsHandler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	var totalUsers, totalSkills int64
	if err := h.db.WithContext(ctx).Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		log.Printf("count users failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	if err := h.db.WithContext(ctx).Model(&models.Skill{}).Count(&totalSkills).Error; err != nil {
		log.Printf("count skills failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	onlineUsers, err := h.presence.OnlineCount(ctx)
	if err != nil {
		log.Printf("count online users failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalUsers":  totalUsers,
		"totalSkills": totalSkills,
		"onlineUsers": onlineUsers,
	})
}
