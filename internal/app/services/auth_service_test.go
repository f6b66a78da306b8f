package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amitk/attendance/internal/app/models/dto"
	"github.com/amitk/attendance/internal/pkg/apperrors"
	"github.com/amitk/attendance/internal/pkg/auth"
)

func newTestAuthService(userRepo *stubUserRepo) (AuthService, *auth.JWTService) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "service-test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "attendance.api",
	})
	return NewAuthService(userRepo, jwtService, zerolog.Nop()), jwtService
}

func registerRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Type:        "admin",
		FullName:    "Amit Kumar",
		Username:    "amit",
		Email:       "amit@example.com",
		Password:    "amit@123",
		SubmittedBy: "admin",
	}
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	require.NotZero(t, user.ID)

	stored := repo.users["amit"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "amit@123", stored.Password)
	assert.True(t, auth.CheckPassword(stored.Password, "amit@123"))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	dup := registerRequest()
	dup.Email = "other@example.com"
	_, err = svc.Register(context.Background(), dup)
	assert.ErrorIs(t, err, apperrors.ErrUsernameAlreadyExists)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	dup := registerRequest()
	dup.Username = "other"
	_, err = svc.Register(context.Background(), dup)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLoginIssuesValidToken(t *testing.T) {
	repo := newStubUserRepo()
	svc, jwtService := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "amit", Password: "amit@123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)

	claims, err := jwtService.ValidateAndExtractClaims(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "amit", claims.Username)
}

func TestLoginFailuresAreUniform(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	// Unknown username and wrong password must be indistinguishable.
	_, errUnknown := svc.Login(context.Background(), &dto.LoginRequest{Username: "nobody", Password: "amit@123"})
	_, errWrongPw := svc.Login(context.Background(), &dto.LoginRequest{Username: "amit", Password: "wrong"})

	assert.ErrorIs(t, errUnknown, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, apperrors.ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errWrongPw)
}
