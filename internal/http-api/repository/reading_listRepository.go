package repository

import (
	"context"
	"errors"
	"fmt"

	"bookhub/internal/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReadingListRepository interface {
	Upsert(ctx context.Context, entry *models.ReadingListEntry) error
	Update(ctx context.Context, userID string, bookID int64, updates map[string]interface{}) (*models.ReadingListEntry, error)
	Remove(ctx context.Context, userID string, bookID int64) error
	List(ctx context.Context, userID string, status string) ([]models.ReadingListEntry, error)
	CountByStatus(ctx context.Context, userID string, status string) (int64, error)
}

type readingListRepository struct {
	db *gorm.DB
}

func NewReadingListRepository(db *gorm.DB) ReadingListRepository {
	return &readingListRepository{db: db}
}

// Upsert relies on the (user_id, book_id) unique index: an existing entry
// has its status refreshed instead of producing a second row. RETURNING
// scans the stored row back into entry, so on the conflict path the caller
// sees the original created_at rather than the values of the failed insert.
func (r *readingListRepository) Upsert(ctx context.Context, entry *models.ReadingListEntry) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "book_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
		}, clause.Returning{}).
		Create(entry).Error
	if err != nil {
		return fmt.Errorf("upsert reading list entry: %w", err)
	}
	return nil
}

// Update applies a partial update to an existing entry. Missing rows map to
// gorm.ErrRecordNotFound so the service layer can answer 404.
func (r *readingListRepository) Update(ctx context.Context, userID string, bookID int64, updates map[string]interface{}) (*models.ReadingListEntry, error) {
	result := r.db.WithContext(ctx).
		Model(&models.ReadingListEntry{}).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("update reading list entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var entry models.ReadingListEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// Remove hard-deletes the entry; removing an absent entry is a no-op.
func (r *readingListRepository) Remove(ctx context.Context, userID string, bookID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Delete(&models.ReadingListEntry{})
	if result.Error != nil {
		return fmt.Errorf("remove from reading list: %w", result.Error)
	}
	return nil
}

// List returns the user's entries with their books, newest first. An empty
// status returns every entry.
func (r *readingListRepository) List(ctx context.Context, userID string, status string) ([]models.ReadingListEntry, error) {
	query := r.db.WithContext(ctx).
		Preload("Book").
		Where("user_id = ?", userID)

	if status != "" {
		if !models.ValidStatus(status) {
			return nil, errors.New("invalid reading list status")
		}
		query = query.Where("status = ?", status)
	}

	var entries []models.ReadingListEntry
	if err := query.Order("created_at DESC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list reading list: %w", err)
	}
	return entries, nil
}

func (r *readingListRepository) CountByStatus(ctx context.Context, userID string, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ReadingListEntry{}).
		Where("user_id = ? AND status = ?", userID, status).
		Count(&count).Error
	return count, err
}
