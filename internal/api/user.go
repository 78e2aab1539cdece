package api

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillswap/backend/internal/middleware"
	"github.com/skillswap/backend/internal/models"
	"github.com/skillswap/backend/internal/service"
	"github.com/skillswap/backend/internal/types"
)

// Avatar uploads beyond this are rejected before touching S3.
const maxAvatarSize = 5 << 20

// UserHandler serves the authenticated user's profile and credit ledger.
type UserHandler struct {
	userService   *service.UserService
	avatarService *service.AvatarService
}

func NewUserHandler(userService *service.UserService, avatarService *service.AvatarService) *UserHandler {
	return &UserHandler{
		userService:   userService,
		avatarService: avatarService,
	}
}

// RegisterRoutes registers the /user routes. The caller wires the auth
// middleware onto the group.
func (h *UserHandler) RegisterRoutes(user *gin.RouterGroup) {
	user.GET("", h.GetUser)
	user.PUT("", h.UpdateProfile)
	user.POST("/credits/add", h.AddCredits)
	user.POST("/credits/spend", h.SpendCredits)
	user.POST("/avatar", h.UploadAvatar)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	user, err := h.userService.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		log.Printf("get user %d failed: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoFields):
			c.JSON(http.StatusBadRequest, gin.H{"message": "No fields to update"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		default:
			log.Printf("update profile for user %d failed: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) AddCredits(c *gin.Context) {
	h.adjustCredits(c, h.userService.AddCredits)
}

func (h *UserHandler) SpendCredits(c *gin.Context) {
	h.adjustCredits(c, h.userService.SpendCredits)
}

func (h *UserHandler) adjustCredits(c *gin.Context, op func(context.Context, uint, int) (*models.User, error)) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	var req types.CreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid amount"})
		return
	}

	user, err := op(c.Request.Context(), userID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid amount"})
		case errors.Is(err, service.ErrInsufficientCredits):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Insufficient credits"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		default:
			log.Printf("credit update for user %d failed: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UploadAvatar(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	if h.avatarService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Avatar uploads are not configured"})
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Avatar file is required"})
		return
	}
	if fileHeader.Size > maxAvatarSize {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Avatar file too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("avatar open failed for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("avatar read failed for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	user, err := h.avatarService.SetAvatar(c.Request.Context(), userID, data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		log.Printf("avatar upload failed for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, user)
}
