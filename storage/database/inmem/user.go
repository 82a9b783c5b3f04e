package inmemdb

import (
	"context"
	"sort"

	"github.com/trezcool/classboard/core"
	"github.com/trezcool/classboard/core/user"
)

type userRepository struct {
	db *DB
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(db *DB) *userRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) QueryUsers(_ context.Context, filter *user.QueryFilter, ordering []core.DBOrdering) ([]user.User, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	if err := repo.db.failure("profiles"); err != nil {
		return nil, err
	}

	users := make([]user.User, 0, len(repo.db.profiles))
	for _, usr := range repo.db.profiles {
		if filter.Match(usr) {
			users = append(users, usr)
		}
	}
	if len(ordering) == 0 {
		ordering = user.DefaultOrdering
	}
	sort.SliceStable(users, func(i, j int) bool {
		return lessUser(users[i], users[j], ordering)
	})
	return users, nil
}

func (repo *userRepository) GetUser(_ context.Context, id string) (user.User, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	if err := repo.db.failure("profiles"); err != nil {
		return user.User{}, err
	}

	if usr, ok := repo.db.profiles[id]; ok {
		return usr, nil
	}
	return user.User{}, user.ErrNotFound
}

// lessUser compares by each ordering in turn, falling back to the ID so the order is total.
func lessUser(a, b user.User, ordering []core.DBOrdering) bool {
	for _, ord := range ordering {
		var cmp int
		switch ord.Field {
		case "created_at":
			switch {
			case a.CreatedAt.Before(b.CreatedAt):
				cmp = -1
			case a.CreatedAt.After(b.CreatedAt):
				cmp = 1
			}
		case "name":
			cmp = compareStrings(a.Name, b.Name)
		case "role":
			cmp = compareStrings(string(a.Role), string(b.Role))
		}
		if cmp == 0 {
			continue
		}
		if ord.Ascending {
			return cmp < 0
		}
		return cmp > 0
	}
	return a.ID < b.ID
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
