// service/auth_service_test.go
package service

import (
	"database/sql"
	"testing"

	"github.com/Prasanth-1011/Blog-System/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// TestAuthService_HashAndCheckPassword ensures that password hashing and verification methods work correctly.
func TestAuthService_HashAndCheckPassword(t *testing.T) {
	// HashPassword and CheckPasswordHash don't touch the repository, so nil
	// dependencies are fine here.
	authService := NewAuthService(nil, nil)
	password := "mySecretPassword123"

	hashedPassword, err := authService.HashPassword(password)
	if err != nil {
		t.Fatalf("authService.HashPassword() returned an unexpected error: %v", err)
	}

	if hashedPassword == password {
		t.Errorf("Hashed password should not be the same as the original password.")
	}

	match := authService.CheckPasswordHash(password, hashedPassword)
	if !match {
		t.Errorf("authService.CheckPasswordHash() should have returned true for a matching password, but got false.")
	}

	wrongPassword := "notMyPassword"
	match = authService.CheckPasswordHash(wrongPassword, hashedPassword)
	if match {
		t.Errorf("authService.CheckPasswordHash() should have returned false for a non-matching password, but got true.")
	}
}

func TestAuthService_Register(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("GetUserByEmail", "new@test.com").Return(nil, sql.ErrNoRows).Once()
		mockRepo.On("CreateUser", mock.AnythingOfType("*model.User")).Return(nil).Once()

		authService := NewAuthService(mockRepo, nil)
		user, err := authService.Register(model.RegisterRequest{
			Name:     "New User",
			Email:    "new@test.com",
			Password: "password123",
		})

		assert.NoError(t, err)
		assert.Equal(t, string(model.RoleUser), user.Role)
		assert.Equal(t, model.UserStatusActive, user.Status)
		assert.NotEqual(t, "password123", user.Password)
		mockRepo.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("GetUserByEmail", "taken@test.com").
			Return(&model.User{ID: 1, Email: "taken@test.com"}, nil).Once()

		authService := NewAuthService(mockRepo, nil)
		user, err := authService.Register(model.RegisterRequest{
			Name:     "Someone",
			Email:    "taken@test.com",
			Password: "password123",
		})

		assert.Nil(t, user)
		assert.Equal(t, ErrEmailTaken, err)
		mockRepo.AssertNotCalled(t, "CreateUser")
	})
}

func TestAuthService_Login(t *testing.T) {
	authService := NewAuthService(nil, nil)
	hashed, _ := authService.HashPassword("password123")

	t.Run("wrong password", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("GetUserByEmail", "user@test.com").
			Return(&model.User{ID: 1, Email: "user@test.com", Password: hashed, Status: model.UserStatusActive}, nil).Once()

		svc := NewAuthService(mockRepo, nil)
		token, user, err := svc.Login(model.LoginRequest{Email: "user@test.com", Password: "wrong"})

		assert.Empty(t, token)
		assert.Nil(t, user)
		assert.Equal(t, ErrInvalidCredentials, err)
	})

	t.Run("unknown email", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("GetUserByEmail", "ghost@test.com").Return(nil, sql.ErrNoRows).Once()

		svc := NewAuthService(mockRepo, nil)
		_, _, err := svc.Login(model.LoginRequest{Email: "ghost@test.com", Password: "password123"})

		assert.Equal(t, ErrInvalidCredentials, err)
	})

	t.Run("suspended account", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("GetUserByEmail", "banned@test.com").
			Return(&model.User{ID: 2, Email: "banned@test.com", Password: hashed, Status: model.UserStatusSuspended}, nil).Once()

		svc := NewAuthService(mockRepo, nil)
		_, _, err := svc.Login(model.LoginRequest{Email: "banned@test.com", Password: "password123"})

		assert.Equal(t, ErrAccountSuspended, err)
	})
}

func TestAuthService_UpdateProfile(t *testing.T) {
	t.Run("email conflict", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("GetUserByID", 1).
			Return(&model.User{ID: 1, Email: "old@test.com"}, nil).Once()
		mockRepo.On("GetUserByEmail", "taken@test.com").
			Return(&model.User{ID: 2, Email: "taken@test.com"}, nil).Once()

		newEmail := "taken@test.com"
		svc := NewAuthService(mockRepo, nil)
		user, err := svc.UpdateProfile(1, model.UpdateProfileRequest{Email: &newEmail})

		assert.Nil(t, user)
		assert.Equal(t, ErrEmailTaken, err)
		mockRepo.AssertNotCalled(t, "UpdateProfile")
	})

	t.Run("partial update", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("GetUserByID", 1).
			Return(&model.User{ID: 1, Name: "Old Name", Email: "me@test.com"}, nil).Once()
		mockRepo.On("UpdateProfile", mock.AnythingOfType("*model.User")).Return(nil).Once()

		newBio := "Writer of things"
		svc := NewAuthService(mockRepo, nil)
		user, err := svc.UpdateProfile(1, model.UpdateProfileRequest{Bio: &newBio})

		assert.NoError(t, err)
		assert.Equal(t, "Old Name", user.Name)
		assert.Equal(t, "Writer of things", user.Bio)
		mockRepo.AssertExpectations(t)
	})
}
