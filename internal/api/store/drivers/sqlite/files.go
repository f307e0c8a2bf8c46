package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/restbook/internal/api/domain"
	"github.com/aussiebroadwan/restbook/internal/api/store/drivers/sqlite/gen"
	"github.com/aussiebroadwan/restbook/pkg/idx"
)

type filesRepo struct {
	q *gen.Queries
}

// Save inserts the document, replacing any earlier one with the same name.
func (r *filesRepo) Save(ctx context.Context, f domain.StoredFile) error {
	if f.ID == "" {
		f.ID = idx.New().String()
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now()
	}

	err := r.q.UpsertFileDetail(ctx, gen.UpsertFileDetailParams{
		ID:           f.ID,
		DocumentName: f.DocumentName,
		DocType:      f.DocType,
		Data:         f.Data,
		CreatedAt:    ts(f.CreatedAt),
	})
	return mapConstraint(err)
}

func (r *filesRepo) GetByName(ctx context.Context, name string) (domain.StoredFile, error) {
	row, err := r.q.GetFileDetailByName(ctx, name)
	if err != nil {
		return domain.StoredFile{}, mapNotFound(err)
	}
	return domain.StoredFile{
		ID:           row.ID,
		DocumentName: row.DocumentName,
		DocType:      row.DocType,
		Data:         row.Data,
		CreatedAt:    row.CreatedAt.UTC(),
	}, nil
}
