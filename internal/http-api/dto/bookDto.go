package dto

import (
	"strconv"
	"strings"

	"bookhub/internal/http-api/models"
	"bookhub/internal/http-api/repository"
)

// CreateBookDTO used for POST /api/books. Rating stats are derived columns
// and deliberately not bindable.
type CreateBookDTO struct {
	Title         string  `json:"title" binding:"required,max=255"`
	Author        string  `json:"author" binding:"required,max=255"`
	Description   *string `json:"description,omitempty"`
	Genre         *string `json:"genre,omitempty" binding:"omitempty,max=100"`
	PublishedYear *int    `json:"published_year,omitempty"`
	Pages         *int    `json:"pages,omitempty" binding:"omitempty,min=1"`
	CoverImageURL *string `json:"cover_image_url,omitempty"`
	ISBN          *string `json:"isbn,omitempty" binding:"omitempty,max=13"`
}

func (d CreateBookDTO) ToModel() models.Book {
	return models.Book{
		Title:         d.Title,
		Author:        d.Author,
		Description:   d.Description,
		Genre:         d.Genre,
		PublishedYear: d.PublishedYear,
		Pages:         d.Pages,
		CoverImageURL: d.CoverImageURL,
		ISBN:          d.ISBN,
	}
}

// PaginatedBookResponse for GET /api/books.
type PaginatedBookResponse struct {
	Books []models.Book `json:"books"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

// ParseBookFilter turns the raw catalog query params into a BookFilter.
// Malformed rating/year values degrade to "filter absent" instead of
// failing the request.
func ParseBookFilter(search, genre, rating, year, sortBy string) repository.BookFilter {
	f := repository.BookFilter{
		Search: strings.TrimSpace(search),
		Genre:  strings.TrimSpace(genre),
		SortBy: sortBy,
	}

	if rating != "" {
		// "4+" means average rating of at least 4
		raw := strings.TrimSuffix(rating, "+")
		if min, err := strconv.ParseFloat(raw, 64); err == nil {
			f.MinRating = &min
		}
	}

	if year != "" {
		if year == "older" {
			// fixed catalog cutoff, not derived from the current date
			f.OlderThan2022 = true
		} else if y, err := strconv.Atoi(year); err == nil {
			f.Year = &y
		}
	}

	return f
}
