package apiclient

import (
	"context"
	"net/http"
	"strconv"
)

func (s *Session) ListBooks(ctx context.Context) ([]Book, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/book/v1", nil, nil)
	if err != nil {
		return nil, err
	}

	var out []Book
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) GetBook(ctx context.Context, id int64) (*Book, error) {
	return s.bookRequest(ctx, http.MethodGet, bookPath(id), nil)
}

func (s *Session) CreateBook(ctx context.Context, b Book) (*Book, error) {
	b.Links = nil
	return s.bookRequest(ctx, http.MethodPost, "/api/book/v1", b)
}

func (s *Session) UpdateBook(ctx context.Context, b Book) (*Book, error) {
	b.Links = nil
	return s.bookRequest(ctx, http.MethodPut, "/api/book/v1", b)
}

func (s *Session) DeleteBook(ctx context.Context, id int64) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, bookPath(id), nil, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// SearchBooks returns one page of books whose title contains title.
func (s *Session) SearchBooks(ctx context.Context, title, sortDirection string, pageSize, page int) (*Page[Book], error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, searchPath("book", title, "title", sortDirection, pageSize, page), nil, nil)
	if err != nil {
		return nil, err
	}

	var out Page[Book]
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) bookRequest(ctx context.Context, method, path string, body any) (*Book, error) {
	resp, err := s.doAuthJSON(ctx, method, path, body)
	if err != nil {
		return nil, err
	}

	var b Book
	if err := decodeJSON(resp, &b, http.StatusOK); err != nil {
		return nil, err
	}
	return &b, nil
}

func bookPath(id int64) string {
	return "/api/book/v1/" + strconv.FormatInt(id, 10)
}
