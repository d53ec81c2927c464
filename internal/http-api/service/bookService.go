package service

import (
	"context"
	"errors"
	"strings"

	"bookhub/internal/cache"
	"bookhub/internal/http-api/models"
	"bookhub/internal/http-api/repository"

	"gorm.io/gorm"
)

// FeaturedShelfSize is how many top-rated books the featured shelf holds.
const FeaturedShelfSize = 4

// BookGetter is the slice of the book repository the review and reading
// list services need for existence checks.
type BookGetter interface {
	GetByID(ctx context.Context, id int64) (*models.Book, error)
}

type BookService interface {
	List(ctx context.Context, filter repository.BookFilter, page, pageSize int) ([]models.Book, int64, error)
	GetByID(ctx context.Context, id int64) (*models.Book, error)
	Create(ctx context.Context, b *models.Book) error
	GetFeatured(ctx context.Context) ([]models.Book, error)
}

type bookService struct {
	repo  *repository.BookRepo
	cache *cache.BookCache
}

func NewBookService(repo *repository.BookRepo, bookCache *cache.BookCache) BookService {
	return &bookService{repo: repo, cache: bookCache}
}

func (s *bookService) List(ctx context.Context, filter repository.BookFilter, page, pageSize int) ([]models.Book, int64, error) {
	return s.repo.List(ctx, filter, page, pageSize)
}

func (s *bookService) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return book, nil
}

func (s *bookService) Create(ctx context.Context, b *models.Book) error {
	// binding already rejected empty fields, normalize what's left
	b.Title = strings.TrimSpace(b.Title)
	b.Author = strings.TrimSpace(b.Author)

	if err := s.repo.Create(ctx, b); err != nil {
		return err
	}

	// a new book can displace a shelf member once it gathers ratings,
	// drop the cached shelf
	s.cache.InvalidateFeatured(ctx)
	return nil
}

// GetFeatured serves the shelf from redis when possible and falls back to
// the store. Cache failures degrade silently.
func (s *bookService) GetFeatured(ctx context.Context) ([]models.Book, error) {
	if books, ok := s.cache.GetFeatured(ctx); ok {
		return books, nil
	}

	books, err := s.repo.GetFeatured(ctx, FeaturedShelfSize)
	if err != nil {
		return nil, err
	}

	s.cache.SetFeatured(ctx, books)
	return books, nil
}
