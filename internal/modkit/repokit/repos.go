// Package repokit provides common types and helpers for repository implementations
package repokit

import (
	"context"

	"lostfound/internal/platform/store"
)

// Queryer is the minimal read and write surface for SQL repos
type Queryer = store.RowQuerier

// TxRunner can execute a function inside a transaction
type TxRunner = store.TxRunner

type (
	// Rows are the result set of a query
	Rows = store.Rows

	// Row is a single row result from a query
	Row = store.Row

	// CommandTag is the result of a command that modifies data
	CommandTag = store.CommandTag
)

// WithTx runs fn inside a transaction with serialization retries
func WithTx(ctx context.Context, tx TxRunner, fn func(ctx context.Context, q Queryer) error) error {
	return store.RunTx(ctx, tx, fn)
}
