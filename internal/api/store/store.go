package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/restbook/internal/api/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement this.
// Sub-repositories are methods so a Tx-scoped store exposes the same set and
// nobody opens a transaction inside a transaction by accident.
type Store interface {
	Users() Users
	Persons() Persons
	Books() Books
	Files() Files

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// FindByUsername is used during sign-in and refresh.
	FindByUsername(ctx context.Context, username string) (domain.User, error)

	// Create inserts a new user. Duplicate usernames yield ErrAlreadyExists.
	Create(ctx context.Context, u domain.User) (domain.User, error)

	// PersistRefreshToken overwrites the stored refresh token fingerprint and
	// expiry, returning the updated record.
	PersistRefreshToken(ctx context.Context, username, tokenHash string, expiresAt time.Time) (domain.User, error)

	// ClearRefreshToken nulls the refresh token and its expiry. Reports false
	// when no such user exists.
	ClearRefreshToken(ctx context.Context, username string) (bool, error)

	// ClearExpiredRefreshTokens is housekeeping; returns the rows touched.
	ClearExpiredRefreshTokens(ctx context.Context, now time.Time) (int64, error)
}

type Persons interface {
	List(ctx context.Context) ([]domain.Person, error)
	Get(ctx context.Context, id int64) (domain.Person, error)
	Create(ctx context.Context, p domain.Person) (domain.Person, error)
	Update(ctx context.Context, p domain.Person) (domain.Person, error)

	// SetEnabled flips the enabled flag and returns the updated person.
	SetEnabled(ctx context.Context, id int64, enabled bool) (domain.Person, error)
	Delete(ctx context.Context, id int64) error

	// FindByName matches each non-empty part as a substring.
	FindByName(ctx context.Context, firstName, lastName string) ([]domain.Person, error)

	// Search filters first names by substring, ordered by first name.
	Search(ctx context.Context, q domain.PageQuery) ([]domain.Person, int64, error)
}

type Books interface {
	List(ctx context.Context) ([]domain.Book, error)
	Get(ctx context.Context, id int64) (domain.Book, error)
	Create(ctx context.Context, b domain.Book) (domain.Book, error)
	Update(ctx context.Context, b domain.Book) (domain.Book, error)
	Delete(ctx context.Context, id int64) error

	// Search filters titles by substring, ordered by title.
	Search(ctx context.Context, q domain.PageQuery) ([]domain.Book, int64, error)
}

type Files interface {
	// Save stores a document in the database. Re-uploading a name replaces it.
	Save(ctx context.Context, f domain.StoredFile) error

	// GetByName returns the most recent document stored under name.
	GetByName(ctx context.Context, name string) (domain.StoredFile, error)
}
