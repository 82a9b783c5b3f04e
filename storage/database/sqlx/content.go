package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/classboard/core/content"
)

type contentRow struct {
	ID          string      `db:"id"`
	Title       string      `db:"title"`
	Description null.String `db:"description"`
	Subject     null.String `db:"subject"`
	CreatedAt   time.Time   `db:"created_at"`
	CreatedBy   null.String `db:"created_by"`
}

func (row contentRow) item(kind content.Kind) content.Item {
	return content.Item{
		ID:          row.ID,
		Kind:        kind,
		Title:       row.Title,
		Description: row.Description.String,
		Subject:     row.Subject.String,
		CreatedAt:   row.CreatedAt,
		CreatedBy:   row.CreatedBy.String,
	}
}

type contentRepository struct {
	exec sqlx.ExtContext
}

var _ content.Repository = (*contentRepository)(nil) // interface compliance check

func NewContentRepository(exec sqlx.ExtContext) *contentRepository {
	return &contentRepository{exec: exec}
}

func (repo contentRepository) QueryContent(ctx context.Context, kind content.Kind) ([]content.Item, error) {
	if !kind.Valid() {
		return nil, content.ErrUnknownKind
	}

	var rows []contentRow
	q := "SELECT id, title, description, subject, created_at, created_by FROM " + kind.Table() + " ORDER BY created_at DESC"
	if err := sqlx.SelectContext(ctx, repo.exec, &rows, q); err != nil {
		return nil, errors.Wrapf(err, "querying %s", kind.Table())
	}
	items := make([]content.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.item(kind))
	}
	return items, nil
}

func (repo contentRepository) UpdateContent(ctx context.Context, kind content.Kind, id string, uc content.UpdateContent) error {
	if !kind.Valid() {
		return content.ErrUnknownKind
	}
	if _, err := uuid.Parse(id); err != nil {
		return content.ErrNotFound
	}

	q := "UPDATE " + kind.Table() + " SET title = $1, description = $2, subject = $3 WHERE id = $4"
	res, err := repo.exec.ExecContext(ctx, q,
		uc.Title,
		null.NewString(uc.Description, uc.Description != ""),
		null.NewString(uc.Subject, uc.Subject != ""),
		id,
	)
	if err != nil {
		return errors.Wrapf(err, "updating %s", kind.Table())
	}
	return checkAffected(res)
}

func (repo contentRepository) DeleteContent(ctx context.Context, kind content.Kind, id string) error {
	if !kind.Valid() {
		return content.ErrUnknownKind
	}
	if _, err := uuid.Parse(id); err != nil {
		return content.ErrNotFound
	}

	res, err := repo.exec.ExecContext(ctx, "DELETE FROM "+kind.Table()+" WHERE id = $1", id)
	if err != nil {
		return errors.Wrapf(err, "deleting from %s", kind.Table())
	}
	return checkAffected(res)
}

// checkAffected maps a write that matched no row to content.ErrNotFound.
// Row-level security silently filters rows, so this is also how a denied write shows up.
func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "reading affected rows")
	}
	if n == 0 {
		return content.ErrNotFound
	}
	return nil
}
