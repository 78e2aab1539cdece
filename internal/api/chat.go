package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/skillswap/backend/internal/middleware"
	"github.com/skillswap/backend/internal/service"
	"github.com/skillswap/backend/internal/types"
)

// ChatHandler serves the per-pair message log and derived conversations.
type ChatHandler struct {
	messageService *service.MessageService
}

func NewChatHandler(messageService *service.MessageService) *ChatHandler {
	return &ChatHandler{messageService: messageService}
}

// RegisterRoutes registers the /chats routes on an auth-protected
// group. sendMiddleware guards message sending when a rate limiter is
// configured.
func (h *ChatHandler) RegisterRoutes(router *gin.RouterGroup, sendMiddleware ...gin.HandlerFunc) {
	chats := router.Group("/chats")
	{
		chats.GET("", h.ListConversations)
		chats.GET("/:userId", h.ListWith)
		chats.POST("/:userId", append(sendMiddleware, h.Send)...)
	}
}

func (h *ChatHandler) ListConversations(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	conversations, err := h.messageService.ListConversations(c.Request.Context(), callerID)
	if err != nil {
		log.Printf("list conversations for user %d failed: %v", callerID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, conversations)
}

func (h *ChatHandler) ListWith(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	otherID, ok := chatParam(c)
	if !ok {
		return
	}

	messages, err := h.messageService.ListWith(c.Request.Context(), callerID, otherID)
	if err != nil {
		log.Printf("list messages between %d and %d failed: %v", callerID, otherID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, messages)
}

func (h *ChatHandler) Send(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	otherID, ok := chatParam(c)
	if !ok {
		return
	}

	var req types.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Message text is required"})
		return
	}

	message, err := h.messageService.Send(c.Request.Context(), callerID, otherID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyText):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Message text is required"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		default:
			log.Printf("send message from %d to %d failed: %v", callerID, otherID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		}
		return
	}

	c.JSON(http.StatusOK, message)
}

func chatParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return 0, false
	}
	return uint(id), true
}
