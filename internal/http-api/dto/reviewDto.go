package dto

import (
	"time"

	"bookhub/internal/http-api/repository"
)

// CreateReviewDTO for creating a review
type CreateReviewDTO struct {
	Rating  int     `json:"rating" binding:"required,min=1,max=5"`
	Title   *string `json:"title,omitempty" binding:"omitempty,max=255"`
	Content *string `json:"content,omitempty"`
}

// ReviewAuthor is the identity slice of a review's writer
type ReviewAuthor struct {
	ID              string  `json:"id"`
	FirstName       *string `json:"first_name,omitempty"`
	LastName        *string `json:"last_name,omitempty"`
	ProfileImageURL *string `json:"profile_image_url,omitempty"`
}

// ReviewResponse for returning a review with its author and like count
type ReviewResponse struct {
	ID         int64        `json:"id"`
	BookID     int64        `json:"book_id"`
	Rating     int          `json:"rating"`
	Title      *string      `json:"title,omitempty"`
	Content    *string      `json:"content,omitempty"`
	LikesCount int64        `json:"likes_count"`
	User       ReviewAuthor `json:"user"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// FromReviewWithLikes converts a repository row to a ReviewResponse
func FromReviewWithLikes(row repository.ReviewWithLikes) ReviewResponse {
	return ReviewResponse{
		ID:         row.ID,
		BookID:     row.BookID,
		Rating:     row.Rating,
		Title:      row.Title,
		Content:    row.Content,
		LikesCount: row.LikesCount,
		User: ReviewAuthor{
			ID:              row.User.ID,
			FirstName:       row.User.FirstName,
			LastName:        row.User.LastName,
			ProfileImageURL: row.User.ProfileImageURL,
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
