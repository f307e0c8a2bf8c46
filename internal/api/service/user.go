package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/restbook/internal/api/domain"
	"github.com/aussiebroadwan/restbook/internal/api/store"
	"github.com/aussiebroadwan/restbook/pkg/cryptox"
	"github.com/aussiebroadwan/restbook/pkg/slogx"
)

var ErrInvalidUser = errors.New("invalid_user")

type UserService struct {
	Store store.Store
}

// EnsureUser creates the account when it does not exist yet. An existing
// account is left untouched, including its password. Reports whether a user
// was created.
func (s *UserService) EnsureUser(ctx context.Context, username, fullName, password string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return false, ErrInvalidUser
	}

	_, err := s.Store.Users().FindByUsername(ctx, username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return false, err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return false, err
	}

	_, err = s.Store.Users().Create(ctx, domain.User{
		Username:     username,
		FullName:     fullName,
		PasswordHash: hash,
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		// Lost a race with another instance.
		return false, nil
	}
	if err != nil {
		return false, err
	}

	slogx.FromContext(ctx).Info("user created", slog.String("username", username))
	return true, nil
}
