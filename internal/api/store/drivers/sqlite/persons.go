package sqlite

import (
	"context"

	"github.com/aussiebroadwan/restbook/internal/api/domain"
	"github.com/aussiebroadwan/restbook/internal/api/store/drivers/sqlite/gen"
)

type personsRepo struct {
	q *gen.Queries
}

func (r *personsRepo) List(ctx context.Context) ([]domain.Person, error) {
	rows, err := r.q.ListPersons(ctx)
	if err != nil {
		return nil, err
	}
	return mapPersons(rows), nil
}

func (r *personsRepo) Get(ctx context.Context, id int64) (domain.Person, error) {
	row, err := r.q.GetPerson(ctx, id)
	if err != nil {
		return domain.Person{}, mapNotFound(err)
	}
	return mapPerson(row), nil
}

func (r *personsRepo) Create(ctx context.Context, p domain.Person) (domain.Person, error) {
	row, err := r.q.CreatePerson(ctx, gen.CreatePersonParams{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Address:   p.Address,
		Gender:    p.Gender,
		Enabled:   p.Enabled,
	})
	if err != nil {
		return domain.Person{}, mapConstraint(err)
	}
	return mapPerson(row), nil
}

func (r *personsRepo) Update(ctx context.Context, p domain.Person) (domain.Person, error) {
	row, err := r.q.UpdatePerson(ctx, gen.UpdatePersonParams{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Address:   p.Address,
		Gender:    p.Gender,
		Enabled:   p.Enabled,
		ID:        p.ID,
	})
	if err != nil {
		return domain.Person{}, mapNotFound(err)
	}
	return mapPerson(row), nil
}

func (r *personsRepo) SetEnabled(ctx context.Context, id int64, enabled bool) (domain.Person, error) {
	row, err := r.q.SetPersonEnabled(ctx, gen.SetPersonEnabledParams{
		Enabled: enabled,
		ID:      id,
	})
	if err != nil {
		return domain.Person{}, mapNotFound(err)
	}
	return mapPerson(row), nil
}

func (r *personsRepo) Delete(ctx context.Context, id int64) error {
	return requireAffected(r.q.DeletePerson(ctx, id))
}

// FindByName matches each part as a substring; an empty part matches
// everything.
func (r *personsRepo) FindByName(ctx context.Context, firstName, lastName string) ([]domain.Person, error) {
	rows, err := r.q.FindPersonsByName(ctx, gen.FindPersonsByNameParams{
		FirstNamePattern: likePattern(firstName),
		LastNamePattern:  likePattern(lastName),
	})
	if err != nil {
		return nil, err
	}
	return mapPersons(rows), nil
}

func (r *personsRepo) Search(ctx context.Context, q domain.PageQuery) ([]domain.Person, int64, error) {
	pattern := likePattern(q.Filter)

	total, err := r.q.CountPersonsByFirstName(ctx, pattern)
	if err != nil {
		return nil, 0, err
	}

	var rows []gen.Person
	if descending(q.SortDirection) {
		rows, err = r.q.SearchPersonsDesc(ctx, gen.SearchPersonsDescParams{
			Pattern: pattern,
			Limit:   int64(q.PageSize),
			Offset:  int64(q.Offset()),
		})
	} else {
		rows, err = r.q.SearchPersonsAsc(ctx, gen.SearchPersonsAscParams{
			Pattern: pattern,
			Limit:   int64(q.PageSize),
			Offset:  int64(q.Offset()),
		})
	}
	if err != nil {
		return nil, 0, err
	}
	return mapPersons(rows), total, nil
}

func mapPerson(row gen.Person) domain.Person {
	return domain.Person{
		ID:        row.ID,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Address:   row.Address,
		Gender:    row.Gender,
		Enabled:   row.Enabled,
	}
}

func mapPersons(rows []gen.Person) []domain.Person {
	out := make([]domain.Person, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapPerson(row))
	}
	return out
}
