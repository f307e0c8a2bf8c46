package service

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/restbook/internal/api/domain"
	"github.com/aussiebroadwan/restbook/internal/api/store"
	"github.com/aussiebroadwan/restbook/pkg/slogx"
)

type BookService struct {
	Store store.Store
}

func (s *BookService) FindAll(ctx context.Context) ([]domain.Book, error) {
	return s.Store.Books().List(ctx)
}

func (s *BookService) FindByID(ctx context.Context, id int64) (domain.Book, error) {
	b, err := s.Store.Books().Get(ctx, id)
	return b, mapStoreErr(err)
}

func (s *BookService) Create(ctx context.Context, b domain.Book) (domain.Book, error) {
	b.ID = 0
	created, err := s.Store.Books().Create(ctx, b)
	if err != nil {
		return domain.Book{}, err
	}
	slogx.FromContext(ctx).Info("book created", slog.Int64("book_id", created.ID))
	return created, nil
}

func (s *BookService) Update(ctx context.Context, b domain.Book) (domain.Book, error) {
	updated, err := s.Store.Books().Update(ctx, b)
	return updated, mapStoreErr(err)
}

func (s *BookService) Delete(ctx context.Context, id int64) error {
	return mapStoreErr(s.Store.Books().Delete(ctx, id))
}

// Search returns one page of books whose title contains title.
func (s *BookService) Search(
	ctx context.Context,
	title, sortDirection string,
	pageSize, page int,
) (domain.Page[domain.Book], error) {
	q := domain.NewPageQuery(title, sortDirection, pageSize, page)

	list, total, err := s.Store.Books().Search(ctx, q)
	if err != nil {
		return domain.Page[domain.Book]{}, err
	}

	out := domain.Page[domain.Book]{
		CurrentPage:    q.Page,
		PageSize:       q.PageSize,
		TotalResults:   total,
		SortFields:     "title",
		SortDirections: q.SortDirection,
		List:           list,
	}
	if q.Filter != "" {
		out.Filters = map[string]any{"title": q.Filter}
	}
	return out, nil
}
