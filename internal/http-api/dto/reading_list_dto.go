package dto

import "time"

// AddToReadingListRequest for POST /api/reading-list (upsert)
type AddToReadingListRequest struct {
	BookID int64  `json:"book_id" binding:"required"`
	Status string `json:"status" binding:"omitempty,oneof=want_to_read reading read"`
}

// UpdateReadingListRequest for PUT /api/reading-list/:bookId; every field is
// optional, absent fields stay untouched.
type UpdateReadingListRequest struct {
	Status     *string    `json:"status,omitempty" binding:"omitempty,oneof=want_to_read reading read"`
	UserRating *int       `json:"user_rating,omitempty" binding:"omitempty,min=1,max=5"`
	DateRead   *time.Time `json:"date_read,omitempty"`
}

// ToUpdates builds the column map for the partial update.
func (d UpdateReadingListRequest) ToUpdates() map[string]interface{} {
	updates := make(map[string]interface{})
	if d.Status != nil {
		updates["status"] = *d.Status
	}
	if d.UserRating != nil {
		updates["user_rating"] = *d.UserRating
	}
	if d.DateRead != nil {
		updates["date_read"] = *d.DateRead
	}
	return updates
}
