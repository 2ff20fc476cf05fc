package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/diewo77/portfolio-app/internal/models"
	"github.com/diewo77/portfolio-app/internal/store"
)

var (
	// ErrEmailTaken reports a registration against an email that already has an account.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUnknownEmail reports a sign-in for an email with no account.
	ErrUnknownEmail = errors.New("unknown email")
	// ErrWrongPassword reports a sign-in with a password that does not match.
	ErrWrongPassword = errors.New("wrong password")
)

// AuthService verifies credentials and creates accounts. Session cookie
// handling stays in the auth package; this service only decides whether a
// request may become authenticated.
type AuthService struct {
	users *store.UserStore
}

func NewAuthService(users *store.UserStore) *AuthService {
	return &AuthService{users: users}
}

// Register creates an account from a plaintext password. The email
// pre-check gives a friendly error; the unique index catches races past it.
// Callers establish the session on success (registration implies sign-in).
func (s *AuthService) Register(username, email, password string) (*models.User, error) {
	if existing, err := s.users.FindByEmail(email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user, err := s.users.Create(username, email, string(hash))
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// SignIn checks the password against the stored hash. The bcrypt compare
// is constant-time; the plaintext is never stored or logged.
func (s *AuthService) SignIn(email, password string) (*models.User, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnknownEmail
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrWrongPassword
	}
	return user, nil
}
