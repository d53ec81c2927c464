package repository

import (
	"context"
	"fmt"

	"bookhub/internal/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewLikeRepository interface {
	Like(ctx context.Context, userID string, reviewID int64) error
	Unlike(ctx context.Context, userID string, reviewID int64) error
	Count(ctx context.Context, reviewID int64) (int64, error)
}

type reviewLikeRepository struct {
	db *gorm.DB
}

func NewReviewLikeRepository(db *gorm.DB) ReviewLikeRepository {
	return &reviewLikeRepository{db: db}
}

// Like inserts the like row. A duplicate hits the (user_id, review_id)
// unique index and is dropped, so liking twice is a no-op.
func (r *reviewLikeRepository) Like(ctx context.Context, userID string, reviewID int64) error {
	like := &models.ReviewLike{
		UserID:   userID,
		ReviewID: reviewID,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(like).Error
	if err != nil {
		return fmt.Errorf("like review: %w", err)
	}
	return nil
}

// Unlike deletes the like row if present; an absent row is a no-op rather
// than an error.
func (r *reviewLikeRepository) Unlike(ctx context.Context, userID string, reviewID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND review_id = ?", userID, reviewID).
		Delete(&models.ReviewLike{})
	if result.Error != nil {
		return fmt.Errorf("unlike review: %w", result.Error)
	}
	return nil
}

func (r *reviewLikeRepository) Count(ctx context.Context, reviewID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ReviewLike{}).
		Where("review_id = ?", reviewID).
		Count(&count).Error
	return count, err
}
