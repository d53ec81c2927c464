package service

import (
	"context"
	"testing"

	"bookhub/internal/http-api/dto"
	"bookhub/internal/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestUserService_GetStats(t *testing.T) {
	userRepo := new(MockUserRepository)
	reviewRepo := new(MockReviewRepository)
	listRepo := new(MockReadingListRepository)
	svc := NewUserService(userRepo, reviewRepo, listRepo)

	listRepo.On("CountByStatus", mock.Anything, "user-1", models.StatusRead).Return(int64(7), nil)
	reviewRepo.On("CountByUser", mock.Anything, "user-1").Return(int64(3), nil)
	listRepo.On("CountByStatus", mock.Anything, "user-1", models.StatusWantToRead).Return(int64(12), nil)

	stats, err := svc.GetStats(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Equal(t, int64(7), stats.BooksRead)
	assert.Equal(t, int64(3), stats.ReviewsWritten)
	assert.Equal(t, int64(12), stats.ToReadList)
	assert.Equal(t, int64(0), stats.Followers)
	listRepo.AssertExpectations(t)
	reviewRepo.AssertExpectations(t)
}

func TestUserService_UpdateProfile_Forbidden(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewUserService(userRepo, new(MockReviewRepository), new(MockReadingListRepository))

	_, err := svc.UpdateProfile(context.Background(), "caller-1", "other-user", dto.UpdateProfileRequest{
		Bio: stringPtr("new bio"),
	})

	assert.ErrorIs(t, err, ErrForbidden)
	userRepo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_UpdateProfile_EmptyBodyReturnsProfile(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewUserService(userRepo, new(MockReviewRepository), new(MockReadingListRepository))

	existing := &models.User{ID: "user-1", Bio: stringPtr("unchanged")}
	userRepo.On("FindByID", mock.Anything, "user-1").Return(existing, nil)

	user, err := svc.UpdateProfile(context.Background(), "user-1", "user-1", dto.UpdateProfileRequest{})

	assert.NoError(t, err)
	assert.Equal(t, existing, user)
	userRepo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_UpdateProfile_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewUserService(userRepo, new(MockReviewRepository), new(MockReadingListRepository))

	updated := &models.User{ID: "user-1", Bio: stringPtr("reader of long novels")}
	userRepo.On("UpdateProfile", mock.Anything, "user-1", map[string]interface{}{
		"bio": "reader of long novels",
	}).Return(updated, nil)

	user, err := svc.UpdateProfile(context.Background(), "user-1", "user-1", dto.UpdateProfileRequest{
		Bio: stringPtr("reader of long novels"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "reader of long novels", *user.Bio)
	userRepo.AssertExpectations(t)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewUserService(userRepo, new(MockReviewRepository), new(MockReadingListRepository))

	userRepo.On("FindByID", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetProfile(context.Background(), "ghost")

	assert.ErrorIs(t, err, ErrUserNotFound)
}
