// Package auth is the local credential stub from the dashboard: accounts
// live in the same key-value substrate as everything else. It keeps a
// shop operator's session across restarts and is not a security boundary.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jmallard/storefront/internal/hash"
	"github.com/jmallard/storefront/internal/kvstore"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNotLoggedIn        = errors.New("not logged in")
)

// TestAccount is seeded on first use so the dashboard works out of the box.
var TestAccount = struct {
	Email    string
	Password string
	Name     string
}{
	Email:    "test@example.com",
	Password: "password123",
	Name:     "Test User",
}

type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

// record is the stored account shape, password hash included. It is never
// returned to callers.
type record struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password"`
	Avatar       string `json:"avatar"`
}

type Service struct {
	KV  kvstore.Store
	Log *slog.Logger
}

func (s *Service) Login(ctx context.Context, email, password string) (*User, error) {
	records, err := s.users(ctx)
	if err != nil {
		return nil, err
	}

	for _, r := range records {
		if r.Email != email || !hash.CheckPassword(r.PasswordHash, password) {
			continue
		}
		user := User{ID: r.ID, Name: r.Name, Email: r.Email, Avatar: r.Avatar}
		if err := s.setCurrent(ctx, user); err != nil {
			return nil, err
		}
		return &user, nil
	}
	return nil, ErrInvalidCredentials
}

func (s *Service) Signup(ctx context.Context, name, email, password string) (*User, error) {
	records, err := s.users(ctx)
	if err != nil {
		return nil, err
	}

	for _, r := range records {
		if r.Email == email {
			return nil, ErrEmailTaken
		}
	}

	passwordHash, err := hash.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	r := record{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}
	records = append(records, r)
	if err := s.saveUsers(ctx, records); err != nil {
		return nil, err
	}

	user := User{ID: r.ID, Name: r.Name, Email: r.Email}
	if err := s.setCurrent(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) Logout(ctx context.Context) error {
	return s.KV.Delete(ctx, kvstore.KeyUser)
}

// Current returns the logged-in user, or ErrNotLoggedIn.
func (s *Service) Current(ctx context.Context) (*User, error) {
	data, ok, err := s.KV.Get(ctx, kvstore.KeyUser)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotLoggedIn
	}

	var user User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, ErrNotLoggedIn
	}
	return &user, nil
}

// users loads the account records, seeding the test account the first
// time around.
func (s *Service) users(ctx context.Context) ([]record, error) {
	data, ok, err := s.KV.Get(ctx, kvstore.KeyUsers)
	if err != nil {
		return nil, err
	}
	if ok {
		var records []record
		if err := json.Unmarshal(data, &records); err == nil {
			return records, nil
		}
		s.Log.Error("users record malformed, reseeding")
	}

	passwordHash, err := hash.HashPassword(TestAccount.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	seeded := []record{{
		ID:           "0",
		Name:         TestAccount.Name,
		Email:        TestAccount.Email,
		PasswordHash: passwordHash,
	}}
	if err := s.saveUsers(ctx, seeded); err != nil {
		return nil, err
	}
	return seeded, nil
}

func (s *Service) saveUsers(ctx context.Context, records []record) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal users: %w", err)
	}
	return s.KV.Set(ctx, kvstore.KeyUsers, data)
}

func (s *Service) setCurrent(ctx context.Context, user User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	return s.KV.Set(ctx, kvstore.KeyUser, data)
}
