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

type BookHandler struct {
	bookService service.BookService
}

func NewBookHandler(bookService service.BookService) *BookHandler {
	return &BookHandler{bookService: bookService}
}

// RegisterRoutes registers book routes; reads are public, creation needs an
// authenticated caller.
func (h *BookHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/books", h.List)
	public.GET("/books/featured", h.Featured)
	public.GET("/books/:id", h.Get)

	protected.POST("/books", h.Create)
}

// List is the catalog listing with filters, sorting and pagination
// GET /api/books?search=&genre=&rating=4%2B&year=older&sortBy=title&page=1&limit=12
func (h *BookHandler) List(c *gin.Context) {
	filter := dto.ParseBookFilter(
		c.Query("search"),
		c.Query("genre"),
		c.Query("rating"),
		c.Query("year"),
		c.Query("sortBy"),
	)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 12
	}

	books, total, err := h.bookService.List(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		log.Printf("list books: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch books"})
		return
	}

	c.JSON(http.StatusOK, dto.PaginatedBookResponse{
		Books: books,
		Total: total,
		Page:  page,
		Limit: pageSize,
	})
}

// Featured returns the top-rated shelf
// GET /api/books/featured
func (h *BookHandler) Featured(c *gin.Context) {
	books, err := h.bookService.GetFeatured(c.Request.Context())
	if err != nil {
		log.Printf("featured books: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch featured books"})
		return
	}
	c.JSON(http.StatusOK, books)
}

// Get returns a single book
// GET /api/books/:id
func (h *BookHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book ID"})
		return
	}

	book, err := h.bookService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "book not found"})
			return
		}
		log.Printf("get book %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch book"})
		return
	}

	c.JSON(http.StatusOK, book)
}

// Create adds a book to the catalog
// POST /api/books
func (h *BookHandler) Create(c *gin.Context) {
	var req dto.CreateBookDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	book := req.ToModel()
	if err := h.bookService.Create(c.Request.Context(), &book); err != nil {
		log.Printf("create book: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create book"})
		return
	}

	c.JSON(http.StatusCreated, book)
}
