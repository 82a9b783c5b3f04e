package user

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/classboard/core"
)

var (
	nowFunc = time.Now // mockable

	// errors
	ErrNotFound = errors.New("user not found")

	// DefaultOrdering lists the most recent users first.
	DefaultOrdering = []core.DBOrdering{{Field: "created_at"}}
)

type (
	Repository interface {
		// QueryUsers applies AND operation on available QueryFilter fields.
		// QueryFilter.Search does a case-insensitive match on User.Name.
		QueryUsers(ctx context.Context, filter *QueryFilter, ordering []core.DBOrdering) ([]User, error)
		GetUser(ctx context.Context, id string) (User, error)
	}

	ServiceInterface interface {
		Query(ctx context.Context, filter *QueryFilter, ordering []core.DBOrdering) ([]User, error)
		GetByID(ctx context.Context, id string) (User, error)
		Stats(ctx context.Context) (Summary, error)
	}

	Service struct {
		repo Repository
		loc  *time.Location
	}
)

var _ ServiceInterface = (*Service)(nil) // interface compliance check

func NewService(repo Repository, conf *core.Config) *Service {
	return &Service{repo: repo, loc: conf.Timezone}
}

func (svc *Service) Query(ctx context.Context, filter *QueryFilter, ordering []core.DBOrdering) ([]User, error) {
	if len(ordering) == 0 {
		ordering = DefaultOrdering
	}
	return svc.repo.QueryUsers(ctx, filter, ordering)
}

func (svc *Service) GetByID(ctx context.Context, id string) (User, error) {
	return svc.repo.GetUser(ctx, id)
}

// Stats fetches every profile and summarizes them.
// A result arriving after ctx is done is dropped.
func (svc *Service) Stats(ctx context.Context) (Summary, error) {
	users, err := svc.repo.QueryUsers(ctx, nil, DefaultOrdering)
	if err != nil {
		return Summary{}, errors.Wrap(err, "querying users")
	}
	if err = ctx.Err(); err != nil {
		return Summary{}, err
	}
	return Summarize(users, nowFunc(), svc.loc), nil
}
