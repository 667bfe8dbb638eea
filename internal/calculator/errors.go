package calculator

import (
	"errors"
	"fmt"
	"math"

	"github.com/mmynk/splitledger/internal/models"
)

// ErrInvalidExpense is the sentinel for expenses that violate the calculator's
// input contract. Callers are expected to validate amounts before they reach
// the calculator, so this indicates a bug rather than bad user input.
var ErrInvalidExpense = errors.New("invalid expense")

// ContractError describes the offending expense.
type ContractError struct {
	Index     int
	ExpenseID string
	Amount    float64
	Reason    string
}

func (e *ContractError) Error() string {
	if e.ExpenseID != "" {
		return fmt.Sprintf("invalid expense %s (index %d): %s: %v", e.ExpenseID, e.Index, e.Reason, e.Amount)
	}
	return fmt.Sprintf("invalid expense at index %d: %s: %v", e.Index, e.Reason, e.Amount)
}

// Unwrap returns ErrInvalidExpense for errors.Is.
func (e *ContractError) Unwrap() error {
	return ErrInvalidExpense
}

func checkAmount(index int, expense models.Expense) error {
	var reason string
	switch {
	case math.IsNaN(expense.Amount) || math.IsInf(expense.Amount, 0):
		reason = "amount is not finite"
	case expense.Amount < 0:
		reason = "amount is negative"
	default:
		return nil
	}
	return &ContractError{
		Index:     index,
		ExpenseID: expense.ID,
		Amount:    expense.Amount,
		Reason:    reason,
	}
}
