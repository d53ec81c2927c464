package models

import "time"

// ReviewLike is an endorsement join-row; absence of a row means not liked.
// Unique on (user_id, review_id) so duplicate likes collapse into one row.
type ReviewLike struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:uk_review_likes_user_review,priority:1" json:"user_id"`
	ReviewID  int64     `gorm:"not null;uniqueIndex:uk_review_likes_user_review,priority:2" json:"review_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"user,omitempty"`
	Review *Review `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE;" json:"review,omitempty"`
}

func (ReviewLike) TableName() string {
	return "review_likes"
}
