package sqlite

import (
	"context"

	"github.com/aussiebroadwan/restbook/internal/api/domain"
	"github.com/aussiebroadwan/restbook/internal/api/store/drivers/sqlite/gen"
)

type booksRepo struct {
	q *gen.Queries
}

func (r *booksRepo) List(ctx context.Context) ([]domain.Book, error) {
	rows, err := r.q.ListBooks(ctx)
	if err != nil {
		return nil, err
	}
	return mapBooks(rows), nil
}

func (r *booksRepo) Get(ctx context.Context, id int64) (domain.Book, error) {
	row, err := r.q.GetBook(ctx, id)
	if err != nil {
		return domain.Book{}, mapNotFound(err)
	}
	return mapBook(row), nil
}

func (r *booksRepo) Create(ctx context.Context, b domain.Book) (domain.Book, error) {
	id, err := r.q.CreateBook(ctx, gen.CreateBookParams{
		Author:     b.Author,
		Title:      b.Title,
		LaunchDate: ts(b.LaunchDate),
		Price:      b.Price,
	})
	if err != nil {
		return domain.Book{}, mapConstraint(err)
	}
	return r.Get(ctx, id)
}

func (r *booksRepo) Update(ctx context.Context, b domain.Book) (domain.Book, error) {
	err := requireAffected(r.q.UpdateBook(ctx, gen.UpdateBookParams{
		Author:     b.Author,
		Title:      b.Title,
		LaunchDate: ts(b.LaunchDate),
		Price:      b.Price,
		ID:         b.ID,
	}))
	if err != nil {
		return domain.Book{}, err
	}
	return r.Get(ctx, b.ID)
}

func (r *booksRepo) Delete(ctx context.Context, id int64) error {
	return requireAffected(r.q.DeleteBook(ctx, id))
}

func (r *booksRepo) Search(ctx context.Context, q domain.PageQuery) ([]domain.Book, int64, error) {
	pattern := likePattern(q.Filter)

	total, err := r.q.CountBooksByTitle(ctx, pattern)
	if err != nil {
		return nil, 0, err
	}

	var rows []gen.Book
	if descending(q.SortDirection) {
		rows, err = r.q.SearchBooksDesc(ctx, gen.SearchBooksDescParams{
			Pattern: pattern,
			Limit:   int64(q.PageSize),
			Offset:  int64(q.Offset()),
		})
	} else {
		rows, err = r.q.SearchBooksAsc(ctx, gen.SearchBooksAscParams{
			Pattern: pattern,
			Limit:   int64(q.PageSize),
			Offset:  int64(q.Offset()),
		})
	}
	if err != nil {
		return nil, 0, err
	}
	return mapBooks(rows), total, nil
}

func mapBook(row gen.Book) domain.Book {
	return domain.Book{
		ID:         row.ID,
		Author:     row.Author,
		Title:      row.Title,
		LaunchDate: row.LaunchDate.UTC(),
		Price:      row.Price,
	}
}

func mapBooks(rows []gen.Book) []domain.Book {
	out := make([]domain.Book, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapBook(row))
	}
	return out
}
