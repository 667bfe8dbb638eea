// Package postgres provides a PostgreSQL-backed implementation of the
// storage.Store interface, for hosted deployments.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

// Ensure PostgresStore implements storage.Store
var _ storage.Store = (*PostgresStore)(nil)

const expenseColumns = "id::text, amount::float8, description, paid_by, category, created_at, updated_at"

// PostgresStore implements storage.Store on a pgx connection pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// Options configures New.
type Options struct {
	// Migrate applies the embedded schema migrations before connecting.
	Migrate bool
}

// New connects to databaseURL and verifies the connection.
func New(ctx context.Context, databaseURL string, opts Options) (*PostgresStore, error) {
	if opts.Migrate {
		if err := runMigrations(databaseURL); err != nil {
			return nil, err
		}
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

// CreateExpense persists a new expense. Timestamps default to the database clock.
func (s *PostgresStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	id := uuid.New()
	if expense.ID != "" {
		parsed, err := uuid.Parse(expense.ID)
		if err != nil {
			return fmt.Errorf("invalid expense id %q: %w", expense.ID, err)
		}
		id = parsed
	}
	if expense.Category == "" {
		expense.Category = models.DefaultCategory
	}

	var createdAt any
	if !expense.CreatedAt.IsZero() {
		createdAt = expense.CreatedAt
	}

	row := s.pool.QueryRow(ctx,
		`INSERT INTO expenses (id, amount, description, paid_by, category, created_at)
		 VALUES ($1, $2::float8, $3, $4, $5, COALESCE($6::timestamptz, now()))
		 RETURNING `+expenseColumns,
		id, expense.Amount, expense.Description, expense.PaidBy, expense.Category, createdAt,
	)
	stored, err := scanExpense(row)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	*expense = *stored
	return nil
}

// GetExpense retrieves an expense by ID.
func (s *PostgresStore) GetExpense(ctx context.Context, id string) (*models.Expense, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		// Not a UUID, so it cannot exist
		return nil, fmt.Errorf("expense %s: %w", id, storage.ErrNotFound)
	}

	row := s.pool.QueryRow(ctx, "SELECT "+expenseColumns+" FROM expenses WHERE id = $1", parsed)
	expense, err := scanExpense(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("expense %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return expense, nil
}

// ListExpenses returns all expenses, newest first.
func (s *PostgresStore) ListExpenses(ctx context.Context) ([]*models.Expense, error) {
	rows, err := s.pool.Query(ctx, "SELECT "+expenseColumns+" FROM expenses ORDER BY created_at DESC, id")
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	expenses := []*models.Expense{}
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	return expenses, nil
}

// UpdateExpense applies the non-nil fields of update in a single statement.
func (s *PostgresStore) UpdateExpense(ctx context.Context, id string, update models.ExpenseUpdate) (*models.Expense, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("expense %s: %w", id, storage.ErrNotFound)
	}

	row := s.pool.QueryRow(ctx,
		`UPDATE expenses SET
			amount = COALESCE($2::float8::numeric, amount),
			description = COALESCE($3::text, description),
			paid_by = COALESCE($4::text, paid_by),
			category = COALESCE($5::text, category),
			updated_at = now()
		 WHERE id = $1
		 RETURNING `+expenseColumns,
		parsed, update.Amount, update.Description, update.PaidBy, update.Category,
	)
	expense, err := scanExpense(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("expense %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}
	return expense, nil
}

// DeleteExpense removes an expense by ID.
func (s *PostgresStore) DeleteExpense(ctx context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("expense %s: %w", id, storage.ErrNotFound)
	}

	tag, err := s.pool.Exec(ctx, "DELETE FROM expenses WHERE id = $1", parsed)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("expense %s: %w", id, storage.ErrNotFound)
	}
	return nil
}

func scanExpense(row pgx.Row) (*models.Expense, error) {
	var expense models.Expense
	if err := row.Scan(&expense.ID, &expense.Amount, &expense.Description, &expense.PaidBy,
		&expense.Category, &expense.CreatedAt, &expense.UpdatedAt); err != nil {
		return nil, err
	}
	expense.CreatedAt = expense.CreatedAt.UTC()
	expense.UpdatedAt = expense.UpdatedAt.UTC()
	return &expense, nil
}
