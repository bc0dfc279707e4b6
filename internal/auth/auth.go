// Package auth is the demo user directory: registration, login and the
// current-user record, all kept in the local store. Passwords are stored
// as bcrypt hashes.
package auth

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Anhngoc0603/sneakerstore/internal/localstore"
	"github.com/Anhngoc0603/sneakerstore/internal/model"
)

const MinPasswordLen = 6

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ErrInvalidCredentials deliberately does not reveal whether the email
// exists.
var ErrInvalidCredentials = errors.New("invalid email or password")

type Service struct {
	store localstore.Store
	now   func() time.Time
}

func NewService(store localstore.Store) *Service {
	return &Service{store: store, now: time.Now}
}

func (s *Service) users(ctx context.Context) []model.User {
	var users []model.User
	s.store.Get(ctx, localstore.KeyUsers, &users)
	return users
}

// Register creates a user, stores it in the directory and signs it in.
func (s *Service) Register(ctx context.Context, fullName, email, password string) (*model.User, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.ToLower(strings.TrimSpace(email))
	if fullName == "" {
		return nil, errors.New("please enter your full name")
	}
	if !emailRe.MatchString(email) {
		return nil, errors.New("please enter a valid email address")
	}
	if len(password) < MinPasswordLen {
		return nil, errors.New("password must be at least 6 characters long")
	}

	users := s.users(ctx)
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return nil, errors.New("an account with this email already exists")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := model.User{
		ID:           s.now().UnixMilli(),
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
	}
	users = append(users, user)
	if err := s.store.Set(ctx, localstore.KeyUsers, users); err != nil {
		return nil, err
	}

	signedIn := user.WithoutPassword()
	if err := s.store.Set(ctx, localstore.KeyCurrentUser, signedIn); err != nil {
		return nil, err
	}
	return &signedIn, nil
}

// Login checks credentials and records the current user.
func (s *Service) Login(ctx context.Context, email, password string) (*model.User, error) {
	if !emailRe.MatchString(email) {
		return nil, errors.New("please enter a valid email address")
	}
	if password == "" {
		return nil, errors.New("please enter your password")
	}
	for _, u := range s.users(ctx) {
		if !strings.EqualFold(u.Email, email) {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			return nil, ErrInvalidCredentials
		}
		signedIn := u.WithoutPassword()
		if err := s.store.Set(ctx, localstore.KeyCurrentUser, signedIn); err != nil {
			return nil, err
		}
		return &signedIn, nil
	}
	return nil, ErrInvalidCredentials
}

// Current returns the signed-in user, if any.
func (s *Service) Current(ctx context.Context) (*model.User, bool) {
	var u model.User
	found, _ := s.store.Get(ctx, localstore.KeyCurrentUser, &u)
	if !found || u.Email == "" {
		return nil, false
	}
	return &u, true
}

// Logout clears the current-user record.
func (s *Service) Logout(ctx context.Context) error {
	return s.store.Delete(ctx, localstore.KeyCurrentUser)
}

// PasswordStrength grades a password as weak, medium or strong.
func PasswordStrength(password string) string {
	score := 0
	if len(password) >= 8 {
		score++
	}
	if strings.ContainsAny(password, "abcdefghijklmnopqrstuvwxyz") &&
		strings.ContainsAny(password, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		score++
	}
	if strings.ContainsAny(password, "0123456789") {
		score++
	}
	for _, r := range password {
		if !('a' <= r && r <= 'z') && !('A' <= r && r <= 'Z') && !('0' <= r && r <= '9') {
			score++
			break
		}
	}
	switch {
	case score <= 1:
		return "weak"
	case score <= 3:
		return "medium"
	default:
		return "strong"
	}
}
