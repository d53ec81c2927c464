package service

import (
	"context"

	"bookhub/internal/http-api/models"
	"bookhub/internal/http-api/repository"

	"github.com/stretchr/testify/mock"
)

// --- HELPER FUNCTIONS FOR POINTERS ---
func stringPtr(s string) *string { return &s }

// --- MOCK REPOSITORIES ---

type MockBookGetter struct {
	mock.Mock
}

func (m *MockBookGetter) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Book), args.Error(1)
}

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) GetByID(ctx context.Context, reviewID int64) (*models.Review, error) {
	args := m.Called(ctx, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) GetByBook(ctx context.Context, bookID int64, sortBy string) ([]repository.ReviewWithLikes, error) {
	args := m.Called(ctx, bookID, sortBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ReviewWithLikes), args.Error(1)
}

func (m *MockReviewRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type MockReviewLikeRepository struct {
	mock.Mock
}

func (m *MockReviewLikeRepository) Like(ctx context.Context, userID string, reviewID int64) error {
	args := m.Called(ctx, userID, reviewID)
	return args.Error(0)
}

func (m *MockReviewLikeRepository) Unlike(ctx context.Context, userID string, reviewID int64) error {
	args := m.Called(ctx, userID, reviewID)
	return args.Error(0)
}

func (m *MockReviewLikeRepository) Count(ctx context.Context, reviewID int64) (int64, error) {
	args := m.Called(ctx, reviewID)
	return args.Get(0).(int64), args.Error(1)
}

type MockReadingListRepository struct {
	mock.Mock
}

func (m *MockReadingListRepository) Upsert(ctx context.Context, entry *models.ReadingListEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockReadingListRepository) Update(ctx context.Context, userID string, bookID int64, updates map[string]interface{}) (*models.ReadingListEntry, error) {
	args := m.Called(ctx, userID, bookID, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReadingListEntry), args.Error(1)
}

func (m *MockReadingListRepository) Remove(ctx context.Context, userID string, bookID int64) error {
	args := m.Called(ctx, userID, bookID)
	return args.Error(0)
}

func (m *MockReadingListRepository) List(ctx context.Context, userID string, status string) ([]models.ReadingListEntry, error) {
	args := m.Called(ctx, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ReadingListEntry), args.Error(1)
}

func (m *MockReadingListRepository) CountByStatus(ctx context.Context, userID string, status string) (int64, error) {
	args := m.Called(ctx, userID, status)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id string, updates map[string]interface{}) (*models.User, error) {
	args := m.Called(ctx, id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
