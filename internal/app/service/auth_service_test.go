package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"qna_forum/internal/common"
	"qna_forum/internal/common/security"
	"qna_forum/internal/domain/model"
	"qna_forum/internal/platform/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserRepo struct {
	createFn      func(ctx context.Context, user *model.User) error
	findByEmailFn func(ctx context.Context, email string) (*model.User, error)
}

func (s *stubUserRepo) Create(ctx context.Context, user *model.User) error {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	return nil
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.findByEmailFn != nil {
		return s.findByEmailFn(ctx, email)
	}
	return nil, common.ErrNotFound
}

func initTestJWT(t *testing.T) {
	t.Helper()
	config.AppConfig = &config.Config{
		JWTKey: []byte("test-secret"),
		JWTExp: time.Hour,
	}
	security.InitJWT()
}

func validRegisterRequest() RegisterRequest {
	return RegisterRequest{
		Username:  "alice",
		FirstName: "Alice",
		LastName:  "Jones",
		Email:     "alice@example.com",
		Password:  "longenough",
	}
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RegisterRequest)
	}{
		{"missing username", func(r *RegisterRequest) { r.Username = "" }},
		{"missing first name", func(r *RegisterRequest) { r.FirstName = "" }},
		{"missing last name", func(r *RegisterRequest) { r.LastName = "" }},
		{"missing email", func(r *RegisterRequest) { r.Email = "" }},
		{"missing password", func(r *RegisterRequest) { r.Password = "" }},
		{"short password", func(r *RegisterRequest) { r.Password = "seven77" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created := false
			svc := NewAuthService(&stubUserRepo{
				createFn: func(ctx context.Context, user *model.User) error {
					created = true
					return nil
				},
			})

			req := validRegisterRequest()
			tt.mutate(&req)

			err := svc.Register(context.Background(), req)
			assert.ErrorIs(t, err, common.ErrValidation)
			assert.False(t, created, "invalid request must not reach the store")
		})
	}
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	var stored *model.User
	svc := NewAuthService(&stubUserRepo{
		createFn: func(ctx context.Context, user *model.User) error {
			stored = user
			return nil
		},
	})

	err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)
	require.NotNil(t, stored)

	_, err = uuid.Parse(stored.ID)
	assert.NoError(t, err, "id must be an application-generated uuid")
	assert.NotEqual(t, "longenough", stored.HashedPassword)
	assert.True(t, security.CheckPasswordHash("longenough", stored.HashedPassword))
}

func TestRegisterConflict(t *testing.T) {
	svc := NewAuthService(&stubUserRepo{
		createFn: func(ctx context.Context, user *model.User) error {
			return fmt.Errorf("user already exists: %w", common.ErrConflict)
		},
	})

	err := svc.Register(context.Background(), validRegisterRequest())
	assert.ErrorIs(t, err, common.ErrConflict)
	// The message must not reveal whether username or email collided.
	assert.NotContains(t, err.Error(), "username")
	assert.NotContains(t, err.Error(), "email")
}

func TestLoginValidation(t *testing.T) {
	svc := NewAuthService(&stubUserRepo{})

	_, err := svc.Login(context.Background(), LoginRequest{Email: "", Password: "x"})
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = svc.Login(context.Background(), LoginRequest{Email: "a@b.c", Password: ""})
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestLoginFailuresIndistinguishable(t *testing.T) {
	initTestJWT(t)

	hash, err := security.HashPassword("rightpassword")
	require.NoError(t, err)

	known := &model.User{
		ID:             uuid.NewString(),
		Username:       "alice",
		Email:          "alice@example.com",
		HashedPassword: hash,
	}
	svc := NewAuthService(&stubUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			if email == known.Email {
				return known, nil
			}
			return nil, common.ErrNotFound
		},
	})

	_, unknownEmailErr := svc.Login(context.Background(), LoginRequest{
		Email: "nobody@example.com", Password: "rightpassword",
	})
	_, wrongPasswordErr := svc.Login(context.Background(), LoginRequest{
		Email: known.Email, Password: "wrongpassword",
	})

	require.Error(t, unknownEmailErr)
	require.Error(t, wrongPasswordErr)
	assert.Equal(t, unknownEmailErr, wrongPasswordErr, "both failures must look the same to the caller")
	assert.True(t, errors.Is(unknownEmailErr, common.ErrInvalidCredentials))
}

func TestLoginSuccess(t *testing.T) {
	initTestJWT(t)

	hash, err := security.HashPassword("rightpassword")
	require.NoError(t, err)

	known := &model.User{
		ID:             uuid.NewString(),
		Username:       "alice",
		Email:          "alice@example.com",
		HashedPassword: hash,
	}
	svc := NewAuthService(&stubUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return known, nil
		},
	})

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email: known.Email, Password: "rightpassword",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, known.ID, resp.User.UserID)
	assert.Equal(t, "alice", resp.User.UserName)
	assert.Equal(t, known.Email, resp.User.Email)

	token, err := security.TokenAuth.Decode(resp.Token)
	require.NoError(t, err)
	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, known.ID, claims["user_id"])
}
