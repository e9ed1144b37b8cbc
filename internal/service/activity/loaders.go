package activity

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/azulpack/juridico-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// loaders batch the lookups of one listing. They cache results, so a fresh
// set is built per call.
type loaders struct {
	processByID   *dataloader.Loader[int64, *domain.Process]
	profileByUser *dataloader.Loader[uuid.UUID, *domain.Profile]
	emailByUser   *dataloader.Loader[uuid.UUID, string]
}

func newLoaders(processes processLookup, profiles profileLookup, emails emailLookup) *loaders {
	return &loaders{
		processByID:   newLoader(newProcessBatchFn(processes)),
		profileByUser: newLoader(newProfileBatchFn(profiles)),
		emailByUser:   newLoader(newEmailBatchFn(emails)),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[K comparable, V any](batchFn dataloader.BatchFunc[K, V]) *dataloader.Loader[K, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[K, V](wait),
		dataloader.WithBatchCapacity[K, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Processes by ID
// ---------------------------------------------------------------------------

func newProcessBatchFn(repo processLookup) dataloader.BatchFunc[int64, *domain.Process] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[*domain.Process] {
		processes, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[int64, *domain.Process](len(keys), err)
		}

		byID := make(map[int64]*domain.Process, len(processes))
		for i := range processes {
			byID[processes[i].ID] = &processes[i]
		}
		return mapResults(keys, byID, nilValue[domain.Process])
	}
}

// ---------------------------------------------------------------------------
// Profiles by user ID
// ---------------------------------------------------------------------------

func newProfileBatchFn(repo profileLookup) dataloader.BatchFunc[uuid.UUID, *domain.Profile] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Profile] {
		profiles, err := repo.ProfilesByIDs(ctx, keys)
		if err != nil {
			return errorResults[uuid.UUID, *domain.Profile](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.Profile, len(profiles))
		for i := range profiles {
			byID[profiles[i].UserID] = &profiles[i]
		}
		return mapResults(keys, byID, nilValue[domain.Profile])
	}
}

// ---------------------------------------------------------------------------
// Emails by user ID
// ---------------------------------------------------------------------------

func newEmailBatchFn(repo emailLookup) dataloader.BatchFunc[uuid.UUID, string] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[string] {
		found, err := repo.EmailsByIDs(ctx, keys)
		if err != nil {
			return errorResults[uuid.UUID, string](len(keys), err)
		}

		byID := make(map[uuid.UUID]string, len(found))
		for _, ue := range found {
			byID[ue.UserID] = ue.Email
		}
		return mapResults(keys, byID, func() string { return "" })
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns n results all carrying err.
func errorResults[K comparable, V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps found values back to key order, using defaultFn for missing keys.
func mapResults[K comparable, V any](keys []K, found map[K]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := found[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

func nilValue[T any]() *T { return nil }
