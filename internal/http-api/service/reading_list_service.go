package service

import (
	"context"
	"errors"

	"bookhub/internal/http-api/dto"
	"bookhub/internal/http-api/models"
	"bookhub/internal/http-api/repository"

	"gorm.io/gorm"
)

type ReadingListService interface {
	AddOrUpdate(ctx context.Context, userID string, req dto.AddToReadingListRequest) (*models.ReadingListEntry, error)
	Update(ctx context.Context, userID string, bookID int64, req dto.UpdateReadingListRequest) (*models.ReadingListEntry, error)
	Remove(ctx context.Context, userID string, bookID int64) error
	List(ctx context.Context, userID string, status string) ([]models.ReadingListEntry, error)
}

type readingListService struct {
	repo     repository.ReadingListRepository
	bookRepo BookGetter
}

func NewReadingListService(repo repository.ReadingListRepository, bookRepo BookGetter) ReadingListService {
	return &readingListService{repo: repo, bookRepo: bookRepo}
}

// AddOrUpdate upserts the (user, book) entry; a second add overwrites the
// status of the first and refreshes its update timestamp.
func (s *readingListService) AddOrUpdate(ctx context.Context, userID string, req dto.AddToReadingListRequest) (*models.ReadingListEntry, error) {
	// Check if book exists
	if _, err := s.bookRepo.GetByID(ctx, req.BookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.StatusWantToRead
	}

	entry := &models.ReadingListEntry{
		UserID: userID,
		BookID: req.BookID,
		Status: status,
	}
	if err := s.repo.Upsert(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *readingListService) Update(ctx context.Context, userID string, bookID int64, req dto.UpdateReadingListRequest) (*models.ReadingListEntry, error) {
	updates := req.ToUpdates()
	if len(updates) == 0 {
		return nil, ErrEmptyUpdate
	}

	entry, err := s.repo.Update(ctx, userID, bookID, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotInReadingList
		}
		return nil, err
	}
	return entry, nil
}

func (s *readingListService) Remove(ctx context.Context, userID string, bookID int64) error {
	return s.repo.Remove(ctx, userID, bookID)
}

func (s *readingListService) List(ctx context.Context, userID string, status string) ([]models.ReadingListEntry, error) {
	return s.repo.List(ctx, userID, status)
}
