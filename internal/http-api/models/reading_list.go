package models

import "time"

// Reading list statuses a user can assign to a book.
const (
	StatusWantToRead = "want_to_read"
	StatusReading    = "reading"
	StatusRead       = "read"
)

// ReadingListEntry is one row per (user, book); upserts land on the
// composite unique index.
type ReadingListEntry struct {
	ID         int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     string     `gorm:"type:uuid;not null;uniqueIndex:uk_reading_lists_user_book,priority:1" json:"user_id"`
	BookID     int64      `gorm:"not null;uniqueIndex:uk_reading_lists_user_book,priority:2" json:"book_id"`
	Status     string     `gorm:"size:20;not null;default:'want_to_read'" json:"status"`
	UserRating *int       `json:"user_rating,omitempty"`
	DateRead   *time.Time `json:"date_read,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Book *Book `gorm:"foreignKey:BookID" json:"book,omitempty"`
}

func (ReadingListEntry) TableName() string {
	return "reading_lists"
}

// ValidStatus reports whether s is one of the allowed reading list statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusWantToRead, StatusReading, StatusRead:
		return true
	}
	return false
}
