package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/finware/FinanceTracker/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type stubUserService struct {
	users map[string]*user.User
}

func (s *stubUserService) Register(email, fullName, password string) (*user.User, error) {
	return nil, nil
}

func (s *stubUserService) GetUserByID(userID string) (*user.User, error) {
	for _, u := range s.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (s *stubUserService) GetUserByEmail(email string) (*user.User, error) {
	if u, ok := s.users[email]; ok {
		return u, nil
	}
	return nil, user.ErrUserNotFound
}

func newTestAuthService(t *testing.T) (Service, *stubUserService) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &stubUserService{users: map[string]*user.User{
		"alice@example.com": {
			ID:           "user-123",
			Email:        "alice@example.com",
			FullName:     "Alice",
			PasswordHash: string(hash),
		},
	}}
	return NewAuthService(users, NewJWTManager(), BcryptVerifier{}), users
}

func TestLogin(t *testing.T) {
	authService, _ := newTestAuthService(t)

	token, err := authService.Login("alice@example.com", "correct horse")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLogin_WrongPassword(t *testing.T) {
	authService, _ := newTestAuthService(t)

	_, err := authService.Login("alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	authService, _ := newTestAuthService(t)

	_, err := authService.Login("nobody@example.com", "correct horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestMiddleware_ValidToken(t *testing.T) {
	authService, _ := newTestAuthService(t)

	token, err := NewJWTManager().GenerateAccessJWT("user-123", time.Hour)
	require.NoError(t, err)

	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = r.Context().Value("userID").(string)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/protected/transactions", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	authService.JWTAccessTokenMiddleware()(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-123", gotUserID)
}

func TestMiddleware_Rejections(t *testing.T) {
	authService, _ := newTestAuthService(t)

	expired, err := NewJWTManager().GenerateAccessJWT("user-123", -time.Minute)
	require.NoError(t, err)
	unknownUser, err := NewJWTManager().GenerateAccessJWT("ghost", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not.a.token"},
		{"expired token", "Bearer " + expired},
		{"deleted user", "Bearer " + unknownUser},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Error("handler should not be reached")
			})

			req := httptest.NewRequest(http.MethodGet, "/api/protected/transactions", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			authService.JWTAccessTokenMiddleware()(next).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}
