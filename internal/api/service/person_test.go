package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/restbook/internal/api/domain"
	"github.com/stretchr/testify/require"
)

func TestPersonService(t *testing.T) {
	ctx := context.Background()
	svc := &PersonService{Store: newTestStore(t)}

	ada, err := svc.Create(ctx, domain.Person{ID: 42, FirstName: "Ada", LastName: "Lovelace", Gender: "Female", Enabled: true})
	require.NoError(t, err)
	require.NotEqual(t, int64(42), ada.ID, "ids come from the store")
	_, err = svc.Create(ctx, domain.Person{FirstName: "Alan", LastName: "Turing", Gender: "Male", Enabled: true})
	require.NoError(t, err)

	t.Run("find by id", func(t *testing.T) {
		got, err := svc.FindByID(ctx, ada.ID)
		require.NoError(t, err)
		require.Equal(t, ada, got)

		_, err = svc.FindByID(ctx, 9999)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("disable toggles", func(t *testing.T) {
		p, err := svc.Disable(ctx, ada.ID)
		require.NoError(t, err)
		require.False(t, p.Enabled)

		p, err = svc.Disable(ctx, ada.ID)
		require.NoError(t, err)
		require.True(t, p.Enabled)

		_, err = svc.Disable(ctx, 9999)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("find by name", func(t *testing.T) {
		_, err := svc.FindByName(ctx, " ", "")
		require.ErrorIs(t, err, ErrMissingSearchTerm)

		found, err := svc.FindByName(ctx, "", "turing")
		require.NoError(t, err)
		require.Len(t, found, 1)
	})

	t.Run("search", func(t *testing.T) {
		page, err := svc.Search(ctx, "a", "", 0, 1)
		require.NoError(t, err)
		require.Equal(t, 10, page.PageSize)
		require.Equal(t, "desc", page.SortDirections)
		require.EqualValues(t, 2, page.TotalResults)
		require.Equal(t, "Alan", page.List[0].FirstName)
		require.Equal(t, map[string]any{"name": "a"}, page.Filters)
	})

	t.Run("update and delete missing", func(t *testing.T) {
		_, err := svc.Update(ctx, domain.Person{ID: 9999, FirstName: "x", LastName: "y", Gender: "z"})
		require.ErrorIs(t, err, ErrNotFound)
		require.ErrorIs(t, svc.Delete(ctx, 9999), ErrNotFound)
		require.NoError(t, svc.Delete(ctx, ada.ID))
	})
}

func TestBookService(t *testing.T) {
	ctx := context.Background()
	svc := &BookService{Store: newTestStore(t)}
	launch := time.Date(2009, 1, 10, 0, 0, 0, 0, time.UTC)

	for _, title := range []string{"Refactoring", "Clean Code", "Code Complete"} {
		_, err := svc.Create(ctx, domain.Book{Author: "someone", Title: title, LaunchDate: launch, Price: 10})
		require.NoError(t, err)
	}

	all, err := svc.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	page, err := svc.Search(ctx, "code", "asc", 1, 2)
	require.NoError(t, err)
	require.EqualValues(t, 2, page.TotalResults)
	require.Len(t, page.List, 1)
	require.Equal(t, "Code Complete", page.List[0].Title)
	require.Equal(t, 2, page.CurrentPage)

	_, err = svc.FindByID(ctx, 9999)
	require.ErrorIs(t, err, ErrNotFound)
}
