package products

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("product not found")

// Repository is the capability the table core works against. The server wires
// the pgx-backed Repo, the table client wires either the HTTP remote or the
// in-memory variant; the orchestrator never branches on which one it got.
type Repository interface {
	// List returns every product in stable id order.
	List(ctx context.Context) ([]Product, error)

	// Create persists p (its ID field is ignored) and returns the assigned id.
	Create(ctx context.Context, p Product) (int64, error)

	// Update replaces the record identified by id in place.
	Update(ctx context.Context, id int64, p Product) error

	// Delete removes one record by id.
	Delete(ctx context.Context, id int64) error

	// DeleteMany removes every listed id. Implementations decide the fan-out;
	// a failure on one id does not roll back the others.
	DeleteMany(ctx context.Context, ids []int64) error
}
