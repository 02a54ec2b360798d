package auth

import (
	"errors"
	"net/http"

	"github.com/finware/FinanceTracker/internal/user"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrInternalError      = errors.New("internal Server Error")
)

// CredentialVerifier checks a presented secret against a stored credential.
// Swappable so the boundary does not hard-code one auth scheme.
type CredentialVerifier interface {
	Verify(storedCredential, presented string) error
}

type BcryptVerifier struct{}

func (BcryptVerifier) Verify(storedCredential, presented string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(storedCredential), []byte(presented)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

type Service interface {
	Login(email, password string) (string, error)
	JWTAccessTokenMiddleware() func(http.Handler) http.Handler
}

type service struct {
	userService user.Service
	jwtManager  JWTManagerInterface
	verifier    CredentialVerifier
}

func NewAuthService(userService user.Service, jwtManager JWTManagerInterface, verifier CredentialVerifier) Service {
	return &service{
		userService: userService,
		jwtManager:  jwtManager,
		verifier:    verifier,
	}
}

// Login resolves an identity from an email/password pair and issues an access
// token carrying the user id. A wrong email and a wrong password are
// indistinguishable to the caller.
func (s *service) Login(email, password string) (string, error) {
	existingUser, err := s.userService.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := s.verifier.Verify(existingUser.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.jwtManager.GenerateAccessJWT(existingUser.ID, defaultJWTDuration)
}
