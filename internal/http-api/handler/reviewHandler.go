package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"bookhub/internal/http-api/dto"
	"bookhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// RegisterRoutes registers review and like routes.
func (h *ReviewHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/books/:id/reviews", h.List)

	protected.POST("/books/:id/reviews", h.Create)
	protected.POST("/reviews/:id/like", h.Like)
	protected.DELETE("/reviews/:id/like", h.Unlike)
}

// List retrieves all reviews for a book with author and like counts
// GET /api/books/:id/reviews?sortBy=helpful
func (h *ReviewHandler) List(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book ID"})
		return
	}

	reviews, err := h.reviewService.GetBookReviews(c.Request.Context(), bookID, c.Query("sortBy"))
	if err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
			return
		}
		log.Printf("list reviews for book %d: %v", bookID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch reviews"})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// Create adds a review to a book and refreshes the book's rating stats
// POST /api/books/:id/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book ID"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateReviewDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), userID.(string), bookID, req)
	if err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
			return
		}
		log.Printf("create review for book %d: %v", bookID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create review"})
		return
	}

	c.JSON(http.StatusCreated, review)
}

// Like endorses a review; liking twice is a no-op
// POST /api/reviews/:id/like
func (h *ReviewHandler) Like(c *gin.Context) {
	reviewID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review ID"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.reviewService.LikeReview(c.Request.Context(), userID.(string), reviewID); err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
			return
		}
		log.Printf("like review %d: %v", reviewID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to like review"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "review liked"})
}

// Unlike removes an endorsement; absent likes are a no-op
// DELETE /api/reviews/:id/like
func (h *ReviewHandler) Unlike(c *gin.Context) {
	reviewID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review ID"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.reviewService.UnlikeReview(c.Request.Context(), userID.(string), reviewID); err != nil {
		log.Printf("unlike review %d: %v", reviewID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to unlike review"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "review unliked"})
}
