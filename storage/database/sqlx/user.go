package sqlxrepos

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/classboard/core"
	"github.com/trezcool/classboard/core/user"
)

const profileColumns = "id, full_name, role, created_at"

// sortable profile fields, by API name
var userOrderingFields = map[string]string{
	"created_at": "created_at",
	"name":       "full_name",
	"role":       "role",
}

type profileRow struct {
	ID        string      `db:"id"`
	FullName  null.String `db:"full_name"`
	Role      string      `db:"role"`
	CreatedAt time.Time   `db:"created_at"`
}

func (row profileRow) user() user.User {
	return user.User{
		ID:        row.ID,
		Name:      row.FullName.String,
		Role:      user.Role(row.Role),
		CreatedAt: row.CreatedAt,
	}
}

type userRepository struct {
	exec sqlx.ExtContext
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(exec sqlx.ExtContext) *userRepository {
	return &userRepository{exec: exec}
}

func (repo userRepository) QueryUsers(ctx context.Context, filter *user.QueryFilter, ordering []core.DBOrdering) ([]user.User, error) {
	var (
		conds []string
		args  []interface{}
	)
	where := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter != nil {
		if filter.Search != "" {
			where("full_name ILIKE $%d", "%"+filter.Search+"%")
		}
		if filter.Role != "" {
			where("role = $%d", string(filter.Role))
		}
		if !filter.CreatedFrom.IsZero() {
			where("created_at >= $%d", filter.CreatedFrom.UTC())
		}
		if !filter.CreatedTo.IsZero() {
			where("created_at <= $%d", filter.CreatedTo.UTC())
		}
	}

	q := "SELECT " + profileColumns + " FROM profiles"
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY " + core.OrderBy(ordering, userOrderingFields, user.DefaultOrdering[0])

	var rows []profileRow
	if err := sqlx.SelectContext(ctx, repo.exec, &rows, q, args...); err != nil {
		return nil, errors.Wrap(err, "querying profiles")
	}
	users := make([]user.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.user())
	}
	return users, nil
}

func (repo userRepository) GetUser(ctx context.Context, id string) (user.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return user.User{}, user.ErrNotFound
	}

	var row profileRow
	err := sqlx.GetContext(ctx, repo.exec, &row, "SELECT "+profileColumns+" FROM profiles WHERE id = $1", id)
	if err != nil {
		if err == sql.ErrNoRows {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, errors.Wrap(err, "finding profile by ID")
	}
	return row.user(), nil
}
