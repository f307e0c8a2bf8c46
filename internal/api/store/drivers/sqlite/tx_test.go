package sqlite

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aussiebroadwan/restbook/internal/api/store"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewStoreFromDB(db), mock
}

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`(?s)^UPDATE\s+users\s+SET\s+refresh_token_hash\s*=\s*NULL`).
		WithArgs(sqlmock.AnyArg(), "alice").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.WithTx(context.Background(), func(tx store.Tx) error {
		ok, err := tx.Users().ClearRefreshToken(context.Background(), "alice")
		require.True(t, ok)
		return err
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	s, mock := newMockStore(t)
	dbErr := errors.New("disk I/O error")

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users`)).
		WillReturnError(dbErr)
	mock.ExpectRollback()

	err := s.WithTx(context.Background(), func(tx store.Tx) error {
		_, err := tx.Users().ClearRefreshToken(context.Background(), "alice")
		return err
	})
	require.ErrorIs(t, err, dbErr)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_BeginFailure(t *testing.T) {
	s, mock := newMockStore(t)
	mock.ExpectBegin().WillReturnError(errors.New("database is locked"))

	called := false
	err := s.WithTx(context.Background(), func(store.Tx) error {
		called = true
		return nil
	})
	require.Error(t, err)
	require.False(t, called)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPersistRefreshToken_MissingUser(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(`(?s)^UPDATE\s+users\s+SET\s+refresh_token_hash\s*=\s*\?`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := s.Users().PersistRefreshToken(context.Background(), "ghost", "fp", ts(fixedTime))
	require.ErrorIs(t, err, store.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDescending(t *testing.T) {
	require.True(t, descending("desc"))
	require.False(t, descending("asc"))
	require.False(t, descending("desc; DROP TABLE books"))
}

func TestLikePattern(t *testing.T) {
	tests := []struct {
		filter string
		want   string
	}{
		{"", `%%`},
		{"ada", `%ada%`},
		{"100%", `%100\%%`},
		{"a_b", `%a\_b%`},
		{`c:\dir`, `%c:\\dir%`},
	}

	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			require.Equal(t, tt.want, likePattern(tt.filter))
		})
	}
}

var fixedTime = mustParse("2026-01-02T03:04:05Z")

func mustParse(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}
