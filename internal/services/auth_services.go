package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Anhngoc0603/sneakerstore/internal/repository"
)

const MinPasswordLen = 6

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type AuthService struct {
	Users *repository.AuthRepository
}

func NewAuthService(u *repository.AuthRepository) *AuthService {
	return &AuthService{Users: u}
}

func (s *AuthService) validateEmail(email string) error {
	if email == "" {
		return errors.New("email is required")
	}
	if !emailRegex.MatchString(email) {
		return errors.New("invalid email format")
	}
	return nil
}

func (s *AuthService) validatePassword(pw string) error {
	if len(pw) < MinPasswordLen {
		return fmt.Errorf("password too short: must be at least %d characters", MinPasswordLen)
	}
	return nil
}

// Register creates an account with role "user".
func (s *AuthService) Register(ctx context.Context, fullName, email, password string) (int64, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.ToLower(strings.TrimSpace(email))
	if fullName == "" {
		return 0, errors.New("full name is required")
	}
	if err := s.validateEmail(email); err != nil {
		return 0, err
	}
	if err := s.validatePassword(password); err != nil {
		return 0, err
	}
	exists, err := s.Users.EmailExists(ctx, email)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, errors.New("email already registered")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	return s.Users.CreateUser(ctx, fullName, email, string(hash), "user")
}

// Login verifies credentials and returns the account.
func (s *AuthService) Login(ctx context.Context, email, password string) (*repository.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	account, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, errors.New("invalid email or password")
	}
	return account, nil
}
