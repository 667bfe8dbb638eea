// Package ledger orchestrates expense bookkeeping: it validates input, talks
// to the store, and feeds read snapshots to the calculator.
package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

// DefaultCategories is the catalogue offered when none is configured.
var DefaultCategories = []string{"Food", "Travel", "Utilities", "Entertainment", models.DefaultCategory}

// Recorder receives ledger statistics after each derived read.
type Recorder interface {
	ObserveLedger(expenses, participants int)
	ObserveSettlements(count int)
}

// Option configures a Service.
type Option func(*Service)

// WithCategories sets the category catalogue returned by Categories.
func WithCategories(categories []string) Option {
	return func(s *Service) {
		if len(categories) > 0 {
			s.categories = append([]string(nil), categories...)
		}
	}
}

// WithRecorder reports ledger statistics to r.
func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		s.recorder = r
	}
}

// Service is the expense ledger. It is safe for concurrent use as long as the
// store is. Each derived read works on a single ListExpenses snapshot, so
// concurrent writes are either fully included or not at all.
type Service struct {
	store      storage.Store
	categories []string
	recorder   Recorder
}

// New creates a ledger Service backed by store.
func New(store storage.Store, opts ...Option) *Service {
	s := &Service{
		store:      store,
		categories: DefaultCategories,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Categories returns the configured category catalogue.
func (s *Service) Categories() []string {
	return append([]string(nil), s.categories...)
}

// ListExpenses returns all expenses, newest first.
func (s *Service) ListExpenses(ctx context.Context) ([]*models.Expense, error) {
	expenses, err := s.store.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}

// GetExpense returns one expense or storage.ErrNotFound.
func (s *Service) GetExpense(ctx context.Context, id string) (*models.Expense, error) {
	return s.store.GetExpense(ctx, id)
}

// AddExpense validates and records a new expense.
func (s *Service) AddExpense(ctx context.Context, in models.NewExpense) (*models.Expense, error) {
	in = normalizeNew(in)
	if err := validateAmount(in.Amount); err != nil {
		return nil, err
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	expense := &models.Expense{
		Amount:      in.Amount,
		Description: in.Description,
		PaidBy:      in.PaidBy,
		Category:    in.Category,
	}
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("add expense: %w", err)
	}

	slog.Info("Expense added",
		"expense_id", expense.ID,
		"paid_by", expense.PaidBy,
		"amount", expense.Amount,
		"category", expense.Category,
	)
	return expense, nil
}

// UpdateExpense validates and applies a partial update.
// Returns storage.ErrNotFound if the expense does not exist.
func (s *Service) UpdateExpense(ctx context.Context, id string, update models.ExpenseUpdate) (*models.Expense, error) {
	if update.IsEmpty() {
		return nil, &ValidationError{Field: "request", Message: "At least one field must be provided"}
	}

	update = normalizeUpdate(update)
	if err := validateUpdate(update); err != nil {
		return nil, err
	}

	expense, err := s.store.UpdateExpense(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("update expense: %w", err)
	}

	slog.Info("Expense updated", "expense_id", expense.ID)
	return expense, nil
}

// DeleteExpense removes an expense. Returns storage.ErrNotFound if it does not exist.
func (s *Service) DeleteExpense(ctx context.Context, id string) error {
	if err := s.store.DeleteExpense(ctx, id); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	slog.Info("Expense deleted", "expense_id", id)
	return nil
}

// ListPeople returns the sorted distinct payers.
func (s *Service) ListPeople(ctx context.Context) ([]string, error) {
	expenses, err := s.snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}
	return calculator.Participants(expenses), nil
}

// Balances computes every participant's balance from a fresh snapshot.
func (s *Service) Balances(ctx context.Context) ([]models.Balance, error) {
	expenses, err := s.snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCalculationFailed, err)
	}

	balances, err := calculator.CalculateBalances(expenses)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCalculationFailed, err)
	}

	s.observeLedger(len(expenses), len(balances))
	return balances, nil
}

// Settlements computes the settlement plan from a fresh snapshot.
func (s *Service) Settlements(ctx context.Context) ([]models.Settlement, error) {
	expenses, err := s.snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCalculationFailed, err)
	}

	balances, settlements, err := calculator.Settle(expenses)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCalculationFailed, err)
	}

	s.observeLedger(len(expenses), len(balances))
	if s.recorder != nil {
		s.recorder.ObserveSettlements(len(settlements))
	}
	slog.Debug("Settlements planned", "participants", len(balances), "settlements", len(settlements))
	return settlements, nil
}

// CategoryBreakdown totals spending per category.
func (s *Service) CategoryBreakdown(ctx context.Context) ([]models.CategoryTotal, error) {
	expenses, err := s.snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCalculationFailed, err)
	}

	totals, err := calculator.SummarizeByCategory(expenses)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCalculationFailed, err)
	}
	return totals, nil
}

// MonthlySpending totals spending per calendar month.
func (s *Service) MonthlySpending(ctx context.Context) ([]models.MonthlyTotal, error) {
	expenses, err := s.snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCalculationFailed, err)
	}

	totals, err := calculator.SummarizeByMonth(expenses)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCalculationFailed, err)
	}
	return totals, nil
}

// snapshot reads the full ledger once as plain values for the calculator.
func (s *Service) snapshot(ctx context.Context) ([]models.Expense, error) {
	stored, err := s.store.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	expenses := make([]models.Expense, len(stored))
	for i, e := range stored {
		expenses[i] = *e
	}
	return expenses, nil
}

func (s *Service) observeLedger(expenses, participants int) {
	if s.recorder != nil {
		s.recorder.ObserveLedger(expenses, participants)
	}
}
