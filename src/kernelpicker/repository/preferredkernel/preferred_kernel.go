// Package preferredkernel stores the preferred live remote kernel id for
// each notebook resource. An entry pins the "last attached kernel" so it can
// be re-selected without prompting.
package preferredkernel

import (
	"context"
	"sync"

	"github.com/notebook-lsp/kernel-picker/src/kernelpicker/internal/errors"
	tally "github.com/uber-go/tally/v4"
	"go.lsp.dev/uri"
)

// Repository is a resource-scoped store of preferred remote kernel ids.
type Repository interface {
	Get(ctx context.Context, resource uri.URI) (string, error)
	Set(ctx context.Context, resource uri.URI, kernelID string) error
	Delete(ctx context.Context, resource uri.URI) error
	Count(ctx context.Context) (int, error)
}

type repository struct {
	mu       sync.Mutex
	memstore map[uri.URI]string
	stats    tally.Scope
}

// New returns a repository backed by an in-memory key-value store.
func New(stats tally.Scope) Repository {
	return &repository{
		memstore: make(map[uri.URI]string),
		stats:    stats.SubScope("preferred_kernel"),
	}
}

// Get returns the preferred kernel id recorded for the given resource.
func (r *repository) Get(ctx context.Context, resource uri.URI) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.memstore[resource]
	if !ok {
		return "", &errors.ResourceNotFoundError{Resource: resource}
	}
	return id, nil
}

// Set records the preferred kernel id for the given resource.
func (r *repository) Set(ctx context.Context, resource uri.URI, kernelID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if kernelID == "" {
		return errors.New("can't save empty kernel id")
	}
	r.memstore[resource] = kernelID
	r.stats.Gauge("entries").Update(float64(len(r.memstore)))
	return nil
}

// Delete removes the entry recorded for the given resource.
func (r *repository) Delete(ctx context.Context, resource uri.URI) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.memstore, resource)
	r.stats.Gauge("entries").Update(float64(len(r.memstore)))
	return nil
}

// Count returns the total count of stored entries.
func (r *repository) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.memstore), nil
}
