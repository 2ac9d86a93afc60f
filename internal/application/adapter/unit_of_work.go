// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// UnitOfWork runs a function inside a single storage transaction. Repository
// calls made with the context passed to fn join that transaction; if fn
// returns an error every write is rolled back.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
