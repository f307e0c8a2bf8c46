package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/restbook/internal/api/domain"
	"github.com/aussiebroadwan/restbook/internal/api/store"
	"github.com/aussiebroadwan/restbook/pkg/slogx"
)

var (
	ErrNotFound = errors.New("not_found")

	// ErrMissingSearchTerm is returned by FindByName when neither name part
	// is given.
	ErrMissingSearchTerm = errors.New("missing_search_term")
)

type PersonService struct {
	Store store.Store
}

func (s *PersonService) FindAll(ctx context.Context) ([]domain.Person, error) {
	return s.Store.Persons().List(ctx)
}

func (s *PersonService) FindByID(ctx context.Context, id int64) (domain.Person, error) {
	p, err := s.Store.Persons().Get(ctx, id)
	return p, mapStoreErr(err)
}

func (s *PersonService) Create(ctx context.Context, p domain.Person) (domain.Person, error) {
	p.ID = 0
	created, err := s.Store.Persons().Create(ctx, p)
	if err != nil {
		return domain.Person{}, err
	}
	slogx.FromContext(ctx).Info("person created", slog.Int64("person_id", created.ID))
	return created, nil
}

func (s *PersonService) Update(ctx context.Context, p domain.Person) (domain.Person, error) {
	updated, err := s.Store.Persons().Update(ctx, p)
	return updated, mapStoreErr(err)
}

// Disable toggles the enabled flag. Calling it twice re-enables the person.
func (s *PersonService) Disable(ctx context.Context, id int64) (domain.Person, error) {
	var out domain.Person
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		p, err := tx.Persons().Get(ctx, id)
		if err != nil {
			return err
		}
		out, err = tx.Persons().SetEnabled(ctx, id, !p.Enabled)
		return err
	})
	return out, mapStoreErr(err)
}

func (s *PersonService) Delete(ctx context.Context, id int64) error {
	return mapStoreErr(s.Store.Persons().Delete(ctx, id))
}

// FindByName matches the given name parts as substrings. At least one part
// must be non-blank.
func (s *PersonService) FindByName(ctx context.Context, firstName, lastName string) ([]domain.Person, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" && lastName == "" {
		return nil, ErrMissingSearchTerm
	}
	return s.Store.Persons().FindByName(ctx, firstName, lastName)
}

// Search returns one page of people whose first name contains name.
func (s *PersonService) Search(
	ctx context.Context,
	name, sortDirection string,
	pageSize, page int,
) (domain.Page[domain.Person], error) {
	q := domain.NewPageQuery(name, sortDirection, pageSize, page)

	list, total, err := s.Store.Persons().Search(ctx, q)
	if err != nil {
		return domain.Page[domain.Person]{}, err
	}

	out := domain.Page[domain.Person]{
		CurrentPage:    q.Page,
		PageSize:       q.PageSize,
		TotalResults:   total,
		SortFields:     "first_name",
		SortDirections: q.SortDirection,
		List:           list,
	}
	if q.Filter != "" {
		out.Filters = map[string]any{"name": q.Filter}
	}
	return out, nil
}

// mapStoreErr converts store.ErrNotFound into the service's ErrNotFound and
// passes everything else through.
func mapStoreErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
