package repository

import (
	"context"
	"math"
	"sort"

	"bookhub/internal/http-api/models"

	"gorm.io/gorm"
)

// Review sort orders.
const (
	ReviewSortHelpful    = "helpful"
	ReviewSortRatingHigh = "rating-high"
	ReviewSortRatingLow  = "rating-low"
	ReviewSortRecent     = "recent"
)

// ReviewWithLikes pairs a review (author preloaded) with its like count.
type ReviewWithLikes struct {
	models.Review
	LikesCount int64 `json:"likes_count"`
}

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, reviewID int64) (*models.Review, error)
	GetByBook(ctx context.Context, bookID int64, sortBy string) ([]ReviewWithLikes, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Create inserts the review and recomputes the book's denormalized stats in
// a single transaction. A crash between the two statements can never leave
// the stats stale, and concurrent reviews of the same book cannot lose
// updates.
func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return err
		}
		return recomputeBookStats(tx, review.BookID)
	})
}

// recomputeBookStats writes the mean rating and review count back to the
// book row. With no reviews both fall back to zero.
func recomputeBookStats(tx *gorm.DB, bookID int64) error {
	var stats struct {
		Average float64
		Total   int64
	}

	err := tx.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) as average, COUNT(id) as total").
		Where("book_id = ?", bookID).
		Scan(&stats).Error
	if err != nil {
		return err
	}

	return tx.Model(&models.Book{}).
		Where("id = ?", bookID).
		Updates(map[string]interface{}{
			"average_rating": roundRating(stats.Average),
			"review_count":   stats.Total,
		}).Error
}

// roundRating rounds to 2 decimal places to match the decimal(3,2) column.
func roundRating(avg float64) float64 {
	return math.Round(avg*100) / 100
}

func (r *reviewRepository) GetByID(ctx context.Context, reviewID int64) (*models.Review, error) {
	var review models.Review
	err := r.db.WithContext(ctx).
		Preload("User").
		First(&review, reviewID).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// GetByBook retrieves all reviews for a book with their authors and like
// counts. Reviews without likes are included with a zero count.
func (r *reviewRepository) GetByBook(ctx context.Context, bookID int64, sortBy string) ([]ReviewWithLikes, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Where("book_id = ?", bookID).
		Preload("User").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}

	rows := make([]ReviewWithLikes, 0, len(reviews))
	if len(reviews) == 0 {
		return rows, nil
	}

	ids := make([]int64, 0, len(reviews))
	for _, review := range reviews {
		ids = append(ids, review.ID)
	}

	var counts []struct {
		ReviewID int64
		Likes    int64
	}
	err = r.db.WithContext(ctx).
		Model(&models.ReviewLike{}).
		Select("review_id, COUNT(id) as likes").
		Where("review_id IN ?", ids).
		Group("review_id").
		Find(&counts).Error
	if err != nil {
		return nil, err
	}

	likesByReview := make(map[int64]int64, len(counts))
	for _, c := range counts {
		likesByReview[c.ReviewID] = c.Likes
	}

	for _, review := range reviews {
		rows = append(rows, ReviewWithLikes{
			Review:     review,
			LikesCount: likesByReview[review.ID],
		})
	}

	sortReviews(rows, sortBy)
	return rows, nil
}

// sortReviews orders the full result set for one book; id ascending breaks
// every tie so the order is deterministic.
func sortReviews(rows []ReviewWithLikes, sortBy string) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		switch sortBy {
		case ReviewSortHelpful:
			if a.LikesCount != b.LikesCount {
				return a.LikesCount > b.LikesCount
			}
		case ReviewSortRatingHigh:
			if a.Rating != b.Rating {
				return a.Rating > b.Rating
			}
		case ReviewSortRatingLow:
			if a.Rating != b.Rating {
				return a.Rating < b.Rating
			}
		default: // recent
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
		}
		return a.ID < b.ID
	})
}

// CountByUser counts reviews written by a user, used by the profile stats.
func (r *reviewRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
