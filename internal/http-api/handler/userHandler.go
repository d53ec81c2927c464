package handler

import (
	"errors"
	"log"
	"net/http"

	"bookhub/internal/http-api/dto"
	"bookhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRoutes registers profile routes; reading a profile is public,
// editing one requires the caller to be its owner.
func (h *UserHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/users/:id", h.Get)
	public.GET("/users/:id/stats", h.Stats)

	protected.PUT("/users/:id", h.Update)
}

// Get returns a user's public profile
// GET /api/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userService.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		log.Printf("get user %s: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch user"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// Stats returns a user's reading statistics
// GET /api/users/:id/stats
func (h *UserHandler) Stats(c *gin.Context) {
	stats, err := h.userService.GetStats(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("get user stats %s: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch user stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Update edits the caller's own profile
// PUT /api/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID.(string), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "cannot update another user's profile"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		default:
			log.Printf("update user %s: %v", c.Param("id"), err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user"})
		}
		return
	}

	c.JSON(http.StatusOK, user)
}
