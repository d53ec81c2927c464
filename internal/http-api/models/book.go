package models

import "time"

type Book struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title         string    `json:"title" gorm:"size:255;not null"`
	Author        string    `json:"author" gorm:"size:255;not null"`
	Description   *string   `json:"description,omitempty" gorm:"type:text"`
	Genre         *string   `json:"genre,omitempty" gorm:"size:100;index"`
	PublishedYear *int      `json:"published_year,omitempty"`
	Pages         *int      `json:"pages,omitempty"`
	CoverImageURL *string   `json:"cover_image_url,omitempty"`
	ISBN          *string   `json:"isbn,omitempty" gorm:"size:13"`
	AverageRating float64   `json:"average_rating" gorm:"type:decimal(3,2);default:0"`
	ReviewCount   int       `json:"review_count" gorm:"default:0"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Book) TableName() string {
	return "books"
}
