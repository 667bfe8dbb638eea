// Package storagetest provides a behavioural test-suite shared by every
// storage.Store implementation.
package storagetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

// Factory returns an empty store. The suite closes it when the test ends.
type Factory func(t *testing.T) storage.Store

// Run exercises the storage.Store contract against stores built by newStore.
// Each subtest gets a fresh store.
func Run(t *testing.T, newStore Factory) {
	t.Helper()

	tests := []struct {
		name string
		fn   func(t *testing.T, store storage.Store)
	}{
		{"CreateExpense generates ID and timestamps", testCreateGeneratesFields},
		{"CreateExpense defaults category", testCreateDefaultsCategory},
		{"GetExpense returns stored expense", testGetExpense},
		{"GetExpense unknown ID", testGetUnknown},
		{"CreateExpense largest amount", testLargestAmount},
		{"ListExpenses empty", testListEmpty},
		{"ListExpenses newest first", testListOrder},
		{"UpdateExpense partial", testUpdatePartial},
		{"UpdateExpense all fields", testUpdateAll},
		{"UpdateExpense unknown ID", testUpdateUnknown},
		{"DeleteExpense", testDelete},
		{"DeleteExpense unknown ID", testDeleteUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStore(t)
			t.Cleanup(func() { _ = store.Close() })
			tt.fn(t, store)
		})
	}
}

func newExpense(paidBy string, amount float64) *models.Expense {
	return &models.Expense{
		Amount:      amount,
		Description: "Dinner",
		PaidBy:      paidBy,
		Category:    "Food",
	}
}

func testCreateGeneratesFields(t *testing.T, store storage.Store) {
	ctx := context.Background()
	expense := newExpense("Alice", 42.5)

	require.NoError(t, store.CreateExpense(ctx, expense))

	assert.NotEmpty(t, expense.ID)
	assert.False(t, expense.CreatedAt.IsZero(), "CreatedAt should be set")
	assert.False(t, expense.UpdatedAt.IsZero(), "UpdatedAt should be set")
}

func testLargestAmount(t *testing.T, store storage.Store) {
	ctx := context.Background()
	expense := newExpense("Alice", 9999999999.99)

	require.NoError(t, store.CreateExpense(ctx, expense))

	got, err := store.GetExpense(ctx, expense.ID)
	require.NoError(t, err)
	assert.Equal(t, 9999999999.99, got.Amount)
}

func testCreateDefaultsCategory(t *testing.T, store storage.Store) {
	ctx := context.Background()
	expense := newExpense("Alice", 10)
	expense.Category = ""

	require.NoError(t, store.CreateExpense(ctx, expense))

	got, err := store.GetExpense(ctx, expense.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCategory, got.Category)
}

func testGetExpense(t *testing.T, store storage.Store) {
	ctx := context.Background()
	original := newExpense("Bob", 19.99)
	original.Description = "Movie tickets"
	original.Category = "Entertainment"
	require.NoError(t, store.CreateExpense(ctx, original))

	got, err := store.GetExpense(ctx, original.ID)
	require.NoError(t, err)

	assert.Equal(t, original.ID, got.ID)
	assert.Equal(t, 19.99, got.Amount)
	assert.Equal(t, "Movie tickets", got.Description)
	assert.Equal(t, "Bob", got.PaidBy)
	assert.Equal(t, "Entertainment", got.Category)
	assert.WithinDuration(t, original.CreatedAt, got.CreatedAt, time.Second)
}

func testGetUnknown(t *testing.T, store storage.Store) {
	_, err := store.GetExpense(context.Background(), "3f1c1f0e-0000-4000-8000-000000000000")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func testListEmpty(t *testing.T, store storage.Store) {
	expenses, err := store.ListExpenses(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, expenses)
	assert.Empty(t, expenses)
}

func testListOrder(t *testing.T, store storage.Store) {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, name := range []string{"first", "second", "third"} {
		expense := newExpense("Alice", float64(i+1))
		expense.Description = name
		expense.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, store.CreateExpense(ctx, expense))
	}

	expenses, err := store.ListExpenses(ctx)
	require.NoError(t, err)
	require.Len(t, expenses, 3)

	assert.Equal(t, "third", expenses[0].Description)
	assert.Equal(t, "second", expenses[1].Description)
	assert.Equal(t, "first", expenses[2].Description)
}

func testUpdatePartial(t *testing.T, store storage.Store) {
	ctx := context.Background()
	expense := newExpense("Alice", 30)
	require.NoError(t, store.CreateExpense(ctx, expense))

	amount := 45.75
	updated, err := store.UpdateExpense(ctx, expense.ID, models.ExpenseUpdate{Amount: &amount})
	require.NoError(t, err)

	assert.Equal(t, 45.75, updated.Amount)
	assert.Equal(t, "Dinner", updated.Description)
	assert.Equal(t, "Alice", updated.PaidBy)
	assert.Equal(t, "Food", updated.Category)
	assert.False(t, updated.UpdatedAt.Before(expense.UpdatedAt), "UpdatedAt should not go backwards")

	got, err := store.GetExpense(ctx, expense.ID)
	require.NoError(t, err)
	assert.Equal(t, 45.75, got.Amount)
}

func testUpdateAll(t *testing.T, store storage.Store) {
	ctx := context.Background()
	expense := newExpense("Alice", 30)
	require.NoError(t, store.CreateExpense(ctx, expense))

	amount := 12.0
	description := "Taxi"
	paidBy := "Bob"
	category := "Travel"
	updated, err := store.UpdateExpense(ctx, expense.ID, models.ExpenseUpdate{
		Amount:      &amount,
		Description: &description,
		PaidBy:      &paidBy,
		Category:    &category,
	})
	require.NoError(t, err)

	assert.Equal(t, expense.ID, updated.ID)
	assert.Equal(t, 12.0, updated.Amount)
	assert.Equal(t, "Taxi", updated.Description)
	assert.Equal(t, "Bob", updated.PaidBy)
	assert.Equal(t, "Travel", updated.Category)
}

func testUpdateUnknown(t *testing.T, store storage.Store) {
	description := "nothing"
	_, err := store.UpdateExpense(context.Background(), "3f1c1f0e-0000-4000-8000-000000000000",
		models.ExpenseUpdate{Description: &description})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func testDelete(t *testing.T, store storage.Store) {
	ctx := context.Background()
	keep := newExpense("Alice", 10)
	drop := newExpense("Bob", 20)
	require.NoError(t, store.CreateExpense(ctx, keep))
	require.NoError(t, store.CreateExpense(ctx, drop))

	require.NoError(t, store.DeleteExpense(ctx, drop.ID))

	_, err := store.GetExpense(ctx, drop.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	expenses, err := store.ListExpenses(ctx)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, keep.ID, expenses[0].ID)
}

func testDeleteUnknown(t *testing.T, store storage.Store) {
	err := store.DeleteExpense(context.Background(), "3f1c1f0e-0000-4000-8000-000000000000")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
