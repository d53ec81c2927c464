package repository

import (
	"context"
	"fmt"

	"bookhub/internal/http-api/models"

	"gorm.io/gorm"
)

// Sort orders accepted by BookRepo.List.
const (
	SortPopular = "popular"
	SortRating  = "rating"
	SortRecent  = "recent"
	SortTitle   = "title"
)

// BookFilter carries the optional catalog predicates. All set fields combine
// with AND. Building the WHERE clause from a struct keeps the composition
// testable and out of raw string concatenation.
type BookFilter struct {
	Search        string   // case-insensitive substring match on title OR author
	Genre         string   // exact match
	MinRating     *float64 // average_rating >= MinRating
	Year          *int     // published_year exact match
	OlderThan2022 bool     // published_year < 2022, mutually exclusive with Year
	SortBy        string   // one of the Sort* constants, default SortPopular
}

type BookRepo struct {
	db *gorm.DB
}

func NewBookRepo(db *gorm.DB) *BookRepo {
	return &BookRepo{db: db}
}

// applyFilter attaches the filter predicates to a query. Called once for the
// page query and once for the count query so both see identical conditions.
func applyFilter(db *gorm.DB, f BookFilter) *gorm.DB {
	if f.Search != "" {
		p := "%" + f.Search + "%"
		db = db.Where("(title ILIKE ? OR author ILIKE ?)", p, p)
	}
	if f.Genre != "" {
		db = db.Where("genre = ?", f.Genre)
	}
	if f.MinRating != nil {
		db = db.Where("average_rating >= ?", *f.MinRating)
	}
	if f.OlderThan2022 {
		db = db.Where("published_year < ?", 2022)
	} else if f.Year != nil {
		db = db.Where("published_year = ?", *f.Year)
	}
	return db
}

// orderClause maps a sort key to its ORDER BY. Secondary id sort keeps
// pagination stable when the primary key ties.
func orderClause(sortBy string) string {
	switch sortBy {
	case SortRating:
		return "average_rating DESC, id ASC"
	case SortRecent:
		return "created_at DESC, id ASC"
	case SortTitle:
		return "title ASC, id ASC"
	default: // popular
		return "review_count DESC, id ASC"
	}
}

// List returns one page of books matching the filter plus the total count of
// matches before pagination. The two queries share the same predicates but
// run independently.
func (r *BookRepo) List(ctx context.Context, f BookFilter, page, pageSize int) ([]models.Book, int64, error) {
	var list []models.Book
	var total int64

	// Count total records under the same predicates
	if err := applyFilter(r.db.WithContext(ctx).Model(&models.Book{}), f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Calculate offset
	offset := (page - 1) * pageSize

	// Fetch paginated results
	if err := applyFilter(r.db.WithContext(ctx), f).
		Order(orderClause(f.SortBy)).
		Limit(pageSize).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *BookRepo) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	var b models.Book
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookRepo) Create(ctx context.Context, b *models.Book) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		return fmt.Errorf("create book: %w", err)
	}
	// GORM will populate b.ID and b.CreatedAt
	return nil
}

// GetFeatured returns the shelf of top-rated books, ties broken by review
// volume.
func (r *BookRepo) GetFeatured(ctx context.Context, limit int) ([]models.Book, error) {
	var list []models.Book
	if err := r.db.WithContext(ctx).
		Order("average_rating DESC, review_count DESC, id ASC").
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("featured books: %w", err)
	}
	return list, nil
}
