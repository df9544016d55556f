// Package loader provides per-request DataLoaders that batch handler
// queries into single SQL calls. Loaders call repositories directly,
// bypassing the service layer. Authorization is ensured via SQL
// (WHERE user_id filters in repo queries).
package loader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
	"github.com/heartmarshall/timetrack-backend/pkg/ctxutil"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type recordRepo interface {
	TotalsByTaskIDs(ctx context.Context, userID uuid.UUID, taskIDs []uuid.UUID) (map[uuid.UUID]int64, error)
}

// Repos holds all repositories required by loaders.
type Repos struct {
	Record recordRepo
}

// Loaders contains the per-request DataLoader instances. Created per-request
// via NewLoaders so the internal cache never outlives a request.
type Loaders struct {
	TaskTotalMs *dataloader.Loader[uuid.UUID, int64]
}

// NewLoaders creates a new set of loaders backed by the given repositories.
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		TaskTotalMs: newLoader(newTaskTotalsBatchFn(repos.Record)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

// newTaskTotalsBatchFn collapses N per-task total lookups into one grouped
// SUM query. Tasks without records resolve to zero.
func newTaskTotalsBatchFn(repo recordRepo) dataloader.BatchFunc[uuid.UUID, int64] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[int64] {
		userID, ok := ctxutil.UserIDFromCtx(ctx)
		if !ok {
			return errorResults[int64](len(keys), domain.ErrUnauthorized)
		}

		totals, err := repo.TotalsByTaskIDs(ctx, userID, keys)
		if err != nil {
			return errorResults[int64](len(keys), err)
		}

		results := make([]*dataloader.Result[int64], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[int64]{Data: totals[key]}
		}
		return results
	}
}

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("loader: loaders not found in context - is middleware configured?")
	}
	return l
}
