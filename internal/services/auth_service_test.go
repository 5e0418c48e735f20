package services_test

import (
	"fmt"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/ksrami99/SkillSwap/internal/apperror"
	"github.com/ksrami99/SkillSwap/internal/dto"
	"github.com/ksrami99/SkillSwap/internal/models"
	"github.com/ksrami99/SkillSwap/internal/services"
	"github.com/rs/xid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerReq(email string) *dto.RegisterRequest {
	return &dto.RegisterRequest{Name: "Alice", Email: email, Password: "password123"}
}

func TestAuthRegister(t *testing.T) {
	db := setupDB(t)
	svc := services.NewAuthService(db, testConfig())

	email := fmt.Sprintf("alice-%s@example.com", xid.New().String())
	resp, err := svc.Register(registerReq(email))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	require.NotNil(t, resp.User)
	assert.Equal(t, email, resp.User.Email)
	assert.Equal(t, models.VisibilityPublic, resp.User.Visibility)
	assert.Equal(t, models.RoleUser, resp.User.Role)

	// The password never leaves as plaintext.
	assert.NotEqual(t, "password123", resp.User.Password)

	// The access token carries the user id and verifies with the secret.
	token, err := jwt.Parse(resp.AccessToken, func(*jwt.Token) (any, error) {
		return []byte(testConfig().JWTSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, resp.User.ID.String(), claims["sub"])
}

func TestAuthRegisterEmailTaken(t *testing.T) {
	db := setupDB(t)
	svc := services.NewAuthService(db, testConfig())

	email := fmt.Sprintf("alice-%s@example.com", xid.New().String())
	_, err := svc.Register(registerReq(email))
	require.NoError(t, err)

	// Uniqueness is case-insensitive.
	_, err = svc.Register(registerReq("ALICE" + email[5:]))
	require.Error(t, err)
	assert.Equal(t, apperror.CodeEmailTaken, apperror.CodeOf(err))
}

func TestAuthLogin(t *testing.T) {
	db := setupDB(t)
	svc := services.NewAuthService(db, testConfig())

	email := fmt.Sprintf("alice-%s@example.com", xid.New().String())
	_, err := svc.Register(registerReq(email))
	require.NoError(t, err)

	resp, err := svc.Login(&dto.LoginRequest{Email: email, Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	// Wrong password and unknown email fail identically.
	_, badPass := svc.Login(&dto.LoginRequest{Email: email, Password: "wrong"})
	require.Error(t, badPass)
	assert.Equal(t, apperror.CodeInvalidCredentials, apperror.CodeOf(badPass))

	_, badEmail := svc.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	require.Error(t, badEmail)
	assert.Equal(t, apperror.CodeInvalidCredentials, apperror.CodeOf(badEmail))
}

func TestAuthRefreshRotation(t *testing.T) {
	db := setupDB(t)
	svc := services.NewAuthService(db, testConfig())

	email := fmt.Sprintf("alice-%s@example.com", xid.New().String())
	first, err := svc.Register(registerReq(email))
	require.NoError(t, err)

	second, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: first.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// The presented token is single-use.
	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: first.RefreshToken})
	require.Error(t, err)
	assert.Equal(t, apperror.CodeInvalidToken, apperror.CodeOf(err))

	// The rotated token still works.
	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: second.RefreshToken})
	assert.NoError(t, err)
}

func TestAuthRefreshGarbageToken(t *testing.T) {
	db := setupDB(t)
	svc := services.NewAuthService(db, testConfig())

	_, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: "not-a-token"})
	require.Error(t, err)
	assert.Equal(t, apperror.CodeInvalidToken, apperror.CodeOf(err))
}

func TestAuthLogout(t *testing.T) {
	db := setupDB(t)
	svc := services.NewAuthService(db, testConfig())

	email := fmt.Sprintf("alice-%s@example.com", xid.New().String())
	resp, err := svc.Register(registerReq(email))
	require.NoError(t, err)

	require.NoError(t, svc.Logout(&dto.LogoutRequest{RefreshToken: resp.RefreshToken}))

	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	require.Error(t, err)
	assert.Equal(t, apperror.CodeInvalidToken, apperror.CodeOf(err))

	// Logging out an unknown token is a no-op, not an error.
	assert.NoError(t, svc.Logout(&dto.LogoutRequest{RefreshToken: "unknown"}))
}

func TestAuthCurrentUser(t *testing.T) {
	db := setupDB(t)
	svc := services.NewAuthService(db, testConfig())

	alice := createUser(t, db, "alice", models.VisibilityPrivate)

	got, err := svc.CurrentUser(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.Email, got.Email)
}
