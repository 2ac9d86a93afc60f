// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/finledger/backend/internal/application/adapter"
)

type txContextKey struct{}

// WithTx returns a context carrying the given transaction handle.
// Repositories resolve their connection via conn, so work done under this
// context joins the transaction.
func WithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txContextKey{}, tx)
}

// conn returns the transaction bound to the context, or the base handle when
// no transaction is open.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txContextKey{}).(*gorm.DB); ok {
		return tx
	}
	return db
}

// gormUnitOfWork implements adapter.UnitOfWork over a gorm transaction.
type gormUnitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a new unit of work backed by the given database.
func NewUnitOfWork(db *gorm.DB) adapter.UnitOfWork {
	return &gormUnitOfWork{db: db}
}

// Do runs fn inside a single database transaction. Any error returned by fn
// rolls back everything written through the transaction-bound context.
func (u *gormUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(WithTx(ctx, tx))
	})
}
