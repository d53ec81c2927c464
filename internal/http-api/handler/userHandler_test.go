package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookhub/internal/http-api/dto"
	"bookhub/internal/http-api/handler"
	"bookhub/internal/http-api/models"
	"bookhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- MOCK SERVICE ---

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetProfile(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, callerID, targetID string, req dto.UpdateProfileRequest) (*models.User, error) {
	args := m.Called(ctx, callerID, targetID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) GetStats(ctx context.Context, id string) (*dto.UserStatsResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserStatsResponse), args.Error(1)
}

// --- SETUP ---

func setupUserRouter(mockService *MockUserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewUserHandler(mockService)

	public := r.Group("/api")
	protected := r.Group("/api")
	protected.Use(func(c *gin.Context) {
		c.Set("userID", "test-user-id")
	})
	h.RegisterRoutes(public, protected)
	return r
}

func TestUserGet(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockUserService)
		r := setupUserRouter(mockService)

		user := &models.User{ID: "user-1", FirstName: stringPtr("Ada")}
		mockService.On("GetProfile", mock.Anything, "user-1").Return(user, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/users/user-1", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var got models.User
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "Ada", *got.FirstName)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockService := new(MockUserService)
		r := setupUserRouter(mockService)

		mockService.On("GetProfile", mock.Anything, "ghost").Return(nil, service.ErrUserNotFound)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/users/ghost", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUserStats(t *testing.T) {
	mockService := new(MockUserService)
	r := setupUserRouter(mockService)

	stats := &dto.UserStatsResponse{BooksRead: 7, ReviewsWritten: 3, ToReadList: 12, Followers: 0}
	mockService.On("GetStats", mock.Anything, "user-1").Return(stats, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/users/user-1/stats", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got dto.UserStatsResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, int64(7), got.BooksRead)
	assert.Equal(t, int64(0), got.Followers)
}

func TestUserUpdate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockUserService)
		r := setupUserRouter(mockService)

		updated := &models.User{ID: "test-user-id", Bio: stringPtr("new bio")}
		mockService.On("UpdateProfile", mock.Anything, "test-user-id", "test-user-id",
			dto.UpdateProfileRequest{Bio: stringPtr("new bio")}).Return(updated, nil)

		body, _ := json.Marshal(map[string]interface{}{"bio": "new bio"})
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPut, "/api/users/test-user-id", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("OtherUsersProfile", func(t *testing.T) {
		mockService := new(MockUserService)
		r := setupUserRouter(mockService)

		mockService.On("UpdateProfile", mock.Anything, "test-user-id", "someone-else", mock.Anything).
			Return(nil, service.ErrForbidden)

		body, _ := json.Marshal(map[string]interface{}{"bio": "hijacked"})
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPut, "/api/users/someone-else", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
