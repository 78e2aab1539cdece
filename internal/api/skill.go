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

// SkillHandler serves the caller-owned skill routes and the public
// browse routes.
type SkillHandler struct {
	skillService *service.SkillService
}

func NewSkillHandler(skillService *service.SkillService) *SkillHandler {
	return &SkillHandler{skillService: skillService}
}

// RegisterOwnedRoutes registers the /user/skills routes on an
// auth-protected group. createMiddleware guards skill creation when a
// rate limiter is configured.
func (h *SkillHandler) RegisterOwnedRoutes(user *gin.RouterGroup, createMiddleware ...gin.HandlerFunc) {
	skills := user.Group("/skills")
	{
		skills.GET("", h.ListMine)
		skills.POST("", append(createMiddleware, h.Create)...)
		skills.PUT("/:id", h.Update)
		skills.DELETE("/:id", h.Delete)
	}
}

// RegisterPublicRoutes registers the unauthenticated browse routes.
func (h *SkillHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	skills := router.Group("/skills")
	{
		skills.GET("", h.ListAll)
		skills.GET("/:id", h.Get)
	}
}

func (h *SkillHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	skills, err := h.skillService.ListMine(c.Request.Context(), userID)
	if err != nil {
		log.Printf("list skills for user %d failed: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, skills)
}

func (h *SkillHandler) Create(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	var req types.CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	skill, err := h.skillService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
			return
		}
		log.Printf("create skill for user %d failed: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusCreated, skill)
}

func (h *SkillHandler) Update(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	skillID, ok := skillParam(c)
	if !ok {
		return
	}

	var req types.UpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	skill, err := h.skillService.Update(c.Request.Context(), userID, skillID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoFields):
			c.JSON(http.StatusBadRequest, gin.H{"message": "No fields to update"})
		case errors.Is(err, service.ErrSkillNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Skill not found"})
		default:
			log.Printf("update skill %d for user %d failed: %v", skillID, userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		}
		return
	}

	c.JSON(http.StatusOK, skill)
}

func (h *SkillHandler) Delete(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	skillID, ok := skillParam(c)
	if !ok {
		return
	}

	if err := h.skillService.Delete(c.Request.Context(), userID, skillID); err != nil {
		if errors.Is(err, service.ErrSkillNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Skill not found"})
			return
		}
		log.Printf("delete skill %d for user %d failed: %v", skillID, userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Skill deleted successfully"})
}

func (h *SkillHandler) ListAll(c *gin.Context) {
	listings, err := h.skillService.ListAll(c.Request.Context())
	if err != nil {
		log.Printf("list skills failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, listings)
}

func (h *SkillHandler) Get(c *gin.Context) {
	skillID, ok := skillParam(c)
	if !ok {
		return
	}

	listing, err := h.skillService.Get(c.Request.Context(), skillID)
	if err != nil {
		if errors.Is(err, service.ErrSkillNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Skill not found"})
			return
		}
		log.Printf("get skill %d failed: %v", skillID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, listing)
}

// skillParam parses the :id path segment. A non-numeric id can never
// match a row, so it reports the same merged not-found.
func skillParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Skill not found"})
		return 0, false
	}
	return uint(id), true
}
