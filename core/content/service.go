package content

import (
	"context"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type (
	Repository interface {
		QueryContent(ctx context.Context, kind Kind) ([]Item, error)
		UpdateContent(ctx context.Context, kind Kind, id string, uc UpdateContent) error
		DeleteContent(ctx context.Context, kind Kind, id string) error
	}

	ServiceInterface interface {
		List(ctx context.Context) (Listing, error)
		Update(ctx context.Context, kind Kind, id string, uc UpdateContent) (Listing, error)
		Delete(ctx context.Context, kind Kind, id string) (Listing, error)
	}

	Service struct {
		repo Repository
	}
)

var _ ServiceInterface = (*Service)(nil) // interface compliance check

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List fetches every kind concurrently and merges the results, most recent first.
// A failed fetch does not stop the others: its kind is reported in Listing.Failed and the first
// failure is returned alongside the partial listing.
func (svc *Service) List(ctx context.Context) (Listing, error) {
	var (
		eg      errgroup.Group // no shared context: a failing table must not cancel the others
		results [numKinds][]Item
		failed  [numKinds]bool
	)
	for _, kind := range Kinds {
		kind := kind
		eg.Go(func() error {
			items, err := svc.repo.QueryContent(ctx, kind)
			if err != nil {
				failed[kind] = true
				return errors.Wrapf(err, "querying %s", kind.Table())
			}
			results[kind] = items
			return nil
		})
	}
	err := eg.Wait()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Listing{}, ctxErr
	}

	var total int
	for _, items := range results {
		total += len(items)
	}
	listing := Listing{
		Items:  make([]Item, 0, total),
		Failed: make([]Kind, 0),
	}
	for _, kind := range Kinds {
		if failed[kind] {
			listing.Failed = append(listing.Failed, kind)
			continue
		}
		listing.Items = append(listing.Items, results[kind]...)
	}
	SortByCreatedAt(listing.Items)
	return listing, err
}

// Update saves the new fields of an item then re-fetches the full listing.
func (svc *Service) Update(ctx context.Context, kind Kind, id string, uc UpdateContent) (Listing, error) {
	if !kind.Valid() {
		return Listing{}, ErrUnknownKind
	}
	if err := svc.repo.UpdateContent(ctx, kind, id, uc); err != nil {
		return Listing{}, &WriteError{Action: ActionUpdate, Kind: kind, Err: err}
	}
	return svc.List(ctx)
}

// Delete removes an item then re-fetches the full listing.
func (svc *Service) Delete(ctx context.Context, kind Kind, id string) (Listing, error) {
	if !kind.Valid() {
		return Listing{}, ErrUnknownKind
	}
	if err := svc.repo.DeleteContent(ctx, kind, id); err != nil {
		return Listing{}, &WriteError{Action: ActionDelete, Kind: kind, Err: err}
	}
	return svc.List(ctx)
}

// SortByCreatedAt sorts items most recent first, keeping the current order of ties.
func SortByCreatedAt(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}
