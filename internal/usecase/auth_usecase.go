package usecase

import (
	"context"
	"strings"
	"time"

	"luxestore/internal/domain/entity"
	"luxestore/internal/domain/repository"
	"luxestore/pkg/errors"
	"luxestore/pkg/logger"
)

type AuthUseCase struct {
	userRepo     repository.UserRepository
	firebaseAuth FirebaseAuthClient
}

func NewAuthUseCase(userRepo repository.UserRepository, firebaseAuth FirebaseAuthClient) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		firebaseAuth: firebaseAuth,
	}
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// AuthResult carries the signed-in profile and where the client should land.
type AuthResult struct {
	UID   string       `json:"uid"`
	User  *entity.User `json:"user"`
	Token string       `json:"token,omitempty"`
	Home  string       `json:"home"`
}

// Register creates the auth account and a customer profile. The role is
// never taken from input.
func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	displayName := strings.TrimSpace(input.FirstName + " " + input.LastName)
	uid, err := uc.firebaseAuth.CreateUser(ctx, input.Email, input.Password, displayName)
	if err != nil {
		logger.Error("Failed to create auth user for %s: %v", input.Email, err)
		return nil, errors.BadRequest("Could not create account. The email may already be in use.", err)
	}

	user := &entity.User{
		UID:       uid,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Role:      entity.RoleCustomer,
		CreatedAt: time.Now(),
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		logger.Error("Failed to create profile for %s: %v", uid, err)
		if delErr := uc.firebaseAuth.DeleteUser(ctx, uid); delErr != nil {
			logger.Error("Failed to roll back auth user %s: %v", uid, delErr)
		}
		return nil, errors.Internal("Failed to create user record", err)
	}

	result := &AuthResult{UID: uid, User: user, Home: user.HomeRoute()}

	_, token, err := uc.firebaseAuth.SignInWithEmailPassword(ctx, input.Email, input.Password)
	if err != nil {
		logger.Warn("Account %s created but automatic sign-in failed: %v", uid, err)
		return result, nil
	}
	result.Token = token
	return result, nil
}

// Login signs in with email/password. A user without a profile document
// still signs in and is sent to the storefront home.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	uid, token, err := uc.firebaseAuth.SignInWithEmailPassword(ctx, email, password)
	if err != nil {
		logger.Warn("Login failed for %s: %v", email, err)
		return nil, errors.Unauthorized("Invalid email or password", err)
	}

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		logger.Error("Failed to load profile %s: %v", uid, err)
		return nil, errors.Internal("Failed to load profile", err)
	}

	return &AuthResult{
		UID:   uid,
		User:  user,
		Token: token,
		Home:  user.HomeRoute(),
	}, nil
}

// GetUserByID returns the profile or a NOT_FOUND error.
func (uc *AuthUseCase) GetUserByID(ctx context.Context, uid string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.Internal("Failed to load profile", err)
	}
	if user == nil {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}
