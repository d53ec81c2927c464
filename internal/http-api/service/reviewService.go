package service

import (
	"context"
	"errors"

	"bookhub/internal/cache"
	"bookhub/internal/http-api/dto"
	"bookhub/internal/http-api/models"
	"bookhub/internal/http-api/repository"

	"gorm.io/gorm"
)

type ReviewService interface {
	CreateReview(ctx context.Context, userID string, bookID int64, req dto.CreateReviewDTO) (*models.Review, error)
	GetBookReviews(ctx context.Context, bookID int64, sortBy string) ([]dto.ReviewResponse, error)
	LikeReview(ctx context.Context, userID string, reviewID int64) error
	UnlikeReview(ctx context.Context, userID string, reviewID int64) error
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	likeRepo   repository.ReviewLikeRepository
	bookRepo   BookGetter
	cache      *cache.BookCache
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	likeRepo repository.ReviewLikeRepository,
	bookRepo BookGetter,
	bookCache *cache.BookCache,
) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		likeRepo:   likeRepo,
		bookRepo:   bookRepo,
		cache:      bookCache,
	}
}

// CreateReview inserts the review; the repository recomputes the book's
// average rating and review count inside the same transaction. Multiple
// reviews by the same user for one book are allowed.
func (s *reviewService) CreateReview(ctx context.Context, userID string, bookID int64, req dto.CreateReviewDTO) (*models.Review, error) {
	// Check if book exists
	if _, err := s.bookRepo.GetByID(ctx, bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	review := &models.Review{
		UserID:  userID,
		BookID:  bookID,
		Rating:  req.Rating,
		Title:   req.Title,
		Content: req.Content,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	// new stats can reshuffle the featured shelf
	s.cache.InvalidateFeatured(ctx)

	return review, nil
}

func (s *reviewService) GetBookReviews(ctx context.Context, bookID int64, sortBy string) ([]dto.ReviewResponse, error) {
	// Check if book exists
	if _, err := s.bookRepo.GetByID(ctx, bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	rows, err := s.reviewRepo.GetByBook(ctx, bookID, sortBy)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ReviewResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, dto.FromReviewWithLikes(row))
	}
	return responses, nil
}

// LikeReview is idempotent: liking an already-liked review changes nothing.
func (s *reviewService) LikeReview(ctx context.Context, userID string, reviewID int64) error {
	if _, err := s.reviewRepo.GetByID(ctx, reviewID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}
	return s.likeRepo.Like(ctx, userID, reviewID)
}

// UnlikeReview removes the like if present; unliking an absent like is a
// no-op.
func (s *reviewService) UnlikeReview(ctx context.Context, userID string, reviewID int64) error {
	return s.likeRepo.Unlike(ctx, userID, reviewID)
}
