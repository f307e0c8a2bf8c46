package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/restbook/internal/api/domain"
	"github.com/aussiebroadwan/restbook/internal/api/store/drivers/sqlite/gen"
)

type usersRepo struct {
	q *gen.Queries
}

func (r *usersRepo) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	row, err := r.q.GetUserByUsername(ctx, username)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	now := ts(time.Now())
	err := r.q.CreateUser(ctx, gen.CreateUserParams{
		Username:     u.Username,
		FullName:     u.FullName,
		PasswordHash: u.PasswordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return domain.User{}, mapConstraint(err)
	}
	return r.FindByUsername(ctx, u.Username)
}

func (r *usersRepo) PersistRefreshToken(
	ctx context.Context,
	username, tokenHash string,
	expiresAt time.Time,
) (domain.User, error) {
	err := requireAffected(r.q.UpdateUserRefreshToken(ctx, gen.UpdateUserRefreshTokenParams{
		RefreshTokenHash:      mapStringNull(tokenHash),
		RefreshTokenExpiresAt: mapTimeNull(expiresAt),
		UpdatedAt:             ts(time.Now()),
		Username:              username,
	}))
	if err != nil {
		return domain.User{}, err
	}
	return r.FindByUsername(ctx, username)
}

func (r *usersRepo) ClearRefreshToken(ctx context.Context, username string) (bool, error) {
	n, err := r.q.ClearUserRefreshToken(ctx, gen.ClearUserRefreshTokenParams{
		UpdatedAt: ts(time.Now()),
		Username:  username,
	})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *usersRepo) ClearExpiredRefreshTokens(ctx context.Context, now time.Time) (int64, error) {
	return r.q.ClearExpiredRefreshTokens(ctx, ts(now))
}

func mapUser(row gen.User) domain.User {
	return domain.User{
		ID:                    row.ID,
		Username:              row.Username,
		FullName:              row.FullName,
		PasswordHash:          row.PasswordHash,
		RefreshTokenHash:      mapNullString(row.RefreshTokenHash),
		RefreshTokenExpiresAt: mapNullTimePtr(row.RefreshTokenExpiresAt),
		CreatedAt:             row.CreatedAt,
		UpdatedAt:             row.UpdatedAt,
	}
}
