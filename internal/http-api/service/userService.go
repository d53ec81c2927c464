package service

import (
	"context"
	"errors"

	"bookhub/internal/http-api/dto"
	"bookhub/internal/http-api/models"
	"bookhub/internal/http-api/repository"

	"gorm.io/gorm"
)

type UserService interface {
	GetProfile(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, callerID, targetID string, req dto.UpdateProfileRequest) (*models.User, error)
	GetStats(ctx context.Context, id string) (*dto.UserStatsResponse, error)
}

type userService struct {
	userRepo        repository.UserRepository
	reviewRepo      repository.ReviewRepository
	readingListRepo repository.ReadingListRepository
}

func NewUserService(
	userRepo repository.UserRepository,
	reviewRepo repository.ReviewRepository,
	readingListRepo repository.ReadingListRepository,
) UserService {
	return &userService{
		userRepo:        userRepo,
		reviewRepo:      reviewRepo,
		readingListRepo: readingListRepo,
	}
}

func (s *userService) GetProfile(ctx context.Context, id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile only lets a user edit their own profile; the caller identity
// comes in explicitly from the auth middleware, never from ambient state.
func (s *userService) UpdateProfile(ctx context.Context, callerID, targetID string, req dto.UpdateProfileRequest) (*models.User, error) {
	if callerID != targetID {
		return nil, ErrForbidden
	}

	updates := req.ToUpdates()
	if len(updates) == 0 {
		return s.GetProfile(ctx, targetID)
	}

	user, err := s.userRepo.UpdateProfile(ctx, targetID, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// GetStats runs three independent count queries. Followers stays 0 until a
// follow graph exists.
func (s *userService) GetStats(ctx context.Context, id string) (*dto.UserStatsResponse, error) {
	booksRead, err := s.readingListRepo.CountByStatus(ctx, id, models.StatusRead)
	if err != nil {
		return nil, err
	}

	reviewsWritten, err := s.reviewRepo.CountByUser(ctx, id)
	if err != nil {
		return nil, err
	}

	toRead, err := s.readingListRepo.CountByStatus(ctx, id, models.StatusWantToRead)
	if err != nil {
		return nil, err
	}

	return &dto.UserStatsResponse{
		BooksRead:      booksRead,
		ReviewsWritten: reviewsWritten,
		ToReadList:     toRead,
		Followers:      0,
	}, nil
}
