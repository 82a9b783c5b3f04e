package inmemdb

import (
	"context"

	"github.com/trezcool/classboard/core/content"
)

type contentRepository struct {
	db *DB
}

var _ content.Repository = (*contentRepository)(nil) // interface compliance check

func NewContentRepository(db *DB) *contentRepository {
	return &contentRepository{db: db}
}

func (repo *contentRepository) QueryContent(_ context.Context, kind content.Kind) ([]content.Item, error) {
	if !kind.Valid() {
		return nil, content.ErrUnknownKind
	}
	repo.db.RLock()
	defer repo.db.RUnlock()
	if err := repo.db.failure(kind.Table()); err != nil {
		return nil, err
	}

	items := make([]content.Item, len(repo.db.contents[kind]))
	copy(items, repo.db.contents[kind])
	content.SortByCreatedAt(items)
	return items, nil
}

func (repo *contentRepository) UpdateContent(_ context.Context, kind content.Kind, id string, uc content.UpdateContent) error {
	if !kind.Valid() {
		return content.ErrUnknownKind
	}
	repo.db.Lock()
	defer repo.db.Unlock()
	if err := repo.db.failure(kind.Table()); err != nil {
		return err
	}

	table := repo.db.contents[kind]
	for i := range table {
		if table[i].ID == id {
			table[i].Title = uc.Title
			table[i].Description = uc.Description
			table[i].Subject = uc.Subject
			return nil
		}
	}
	return content.ErrNotFound
}

func (repo *contentRepository) DeleteContent(_ context.Context, kind content.Kind, id string) error {
	if !kind.Valid() {
		return content.ErrUnknownKind
	}
	repo.db.Lock()
	defer repo.db.Unlock()
	if err := repo.db.failure(kind.Table()); err != nil {
		return err
	}

	table := repo.db.contents[kind]
	for i := range table {
		if table[i].ID == id {
			repo.db.contents[kind] = append(table[:i:i], table[i+1:]...)
			return nil
		}
	}
	return content.ErrNotFound
}
