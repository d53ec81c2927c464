package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"bookhub/internal/http-api/dto"
	"bookhub/internal/http-api/models"
	"bookhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type ReadingListHandler struct {
	svc service.ReadingListService
}

func NewReadingListHandler(svc service.ReadingListService) *ReadingListHandler {
	return &ReadingListHandler{svc: svc}
}

// RegisterRoutes registers the reading list routes; all of them operate on
// the caller's own list.
func (h *ReadingListHandler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.GET("/reading-list", h.List)
	protected.POST("/reading-list", h.AddOrUpdate)
	protected.PUT("/reading-list/:bookId", h.Update)
	protected.DELETE("/reading-list/:bookId", h.Remove)
}

// List returns the caller's reading list, optionally filtered by status
// GET /api/reading-list?status=reading
func (h *ReadingListHandler) List(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	status := c.Query("status")
	if status != "" && !models.ValidStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reading list status"})
		return
	}

	entries, err := h.svc.List(c.Request.Context(), userID.(string), status)
	if err != nil {
		log.Printf("list reading list: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch reading list"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// AddOrUpdate upserts a book onto the caller's list
// POST /api/reading-list
func (h *ReadingListHandler) AddOrUpdate(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.AddToReadingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.svc.AddOrUpdate(c.Request.Context(), userID.(string), req)
	if err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
			return
		}
		log.Printf("add to reading list: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update reading list"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// Update applies a partial update to an existing entry
// PUT /api/reading-list/:bookId
func (h *ReadingListHandler) Update(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	bookID, err := strconv.ParseInt(c.Param("bookId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book ID"})
		return
	}

	var req dto.UpdateReadingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.svc.Update(c.Request.Context(), userID.(string), bookID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotInReadingList):
			c.JSON(http.StatusNotFound, gin.H{"error": "book not in reading list"})
		case errors.Is(err, service.ErrEmptyUpdate):
			c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
		default:
			log.Printf("update reading list entry: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update reading list"})
		}
		return
	}

	c.JSON(http.StatusOK, entry)
}

// Remove hard-deletes an entry; removing an absent entry succeeds
// DELETE /api/reading-list/:bookId
func (h *ReadingListHandler) Remove(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	bookID, err := strconv.ParseInt(c.Param("bookId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book ID"})
		return
	}

	if err := h.svc.Remove(c.Request.Context(), userID.(string), bookID); err != nil {
		log.Printf("remove from reading list: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update reading list"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "removed from reading list"})
}
