package service

import (
	"context"
	"errors"
	"fmt"

	"qna_forum/internal/common"
	"qna_forum/internal/common/security"
	"qna_forum/internal/domain/model"
	"qna_forum/internal/domain/repository"

	"github.com/google/uuid"
)

type AuthService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

type RegisterRequest struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message string            `json:"message"`
	Token   string            `json:"token"`
	User    model.UserSummary `json:"user"`
}

func (s *AuthService) Register(ctx context.Context, req RegisterRequest) error {
	if req.Username == "" || req.FirstName == "" || req.LastName == "" ||
		req.Email == "" || req.Password == "" {
		return common.Errorf("please provide all required fields: %w", common.ErrValidation)
	}
	if len(req.Password) < 8 {
		return common.Errorf("password must be at least 8 characters: %w", common.ErrValidation)
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:             uuid.NewString(),
		Username:       req.Username,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		HashedPassword: hashedPassword,
	}

	// Duplicate username/email surfaces as common.ErrConflict from the repo;
	// the unique constraints are the arbiter, so concurrent registrations
	// cannot both win.
	return s.userRepo.Create(ctx, user)
}

func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, common.Errorf("please provide both email and password: %w", common.ErrValidation)
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// Same error as a bad password so callers cannot probe for
			// registered emails.
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !security.CheckPasswordHash(req.Password, user.HashedPassword) {
		return nil, common.ErrInvalidCredentials
	}

	token, err := security.GenerateToken(user.ID, user.Username, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResponse{
		Message: "User login successful",
		Token:   token,
		User: model.UserSummary{
			UserID:   user.ID,
			UserName: user.Username,
			Email:    user.Email,
		},
	}, nil
}
