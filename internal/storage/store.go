// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/splitledger/internal/models"
)

// ErrNotFound is returned when a requested expense does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for expense storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL)
// without changing the ledger or service layers.
//
// Implementations must be safe for concurrent use. They provide no
// read-modify-write isolation across calls; each ListExpenses result is an
// independent snapshot.
type Store interface {
	// CreateExpense persists a new expense.
	// The ID, CreatedAt and UpdatedAt fields are populated by the store.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// GetExpense retrieves an expense by its ID.
	// Returns ErrNotFound if the expense does not exist.
	GetExpense(ctx context.Context, id string) (*models.Expense, error)

	// ListExpenses returns every expense, newest first.
	ListExpenses(ctx context.Context) ([]*models.Expense, error)

	// UpdateExpense applies a partial update and returns the stored result.
	// Returns ErrNotFound if the expense does not exist.
	UpdateExpense(ctx context.Context, id string, update models.ExpenseUpdate) (*models.Expense, error)

	// DeleteExpense removes an expense by ID.
	// Returns ErrNotFound if the expense does not exist.
	DeleteExpense(ctx context.Context, id string) error

	// Close releases any resources held by the store.
	Close() error
}
