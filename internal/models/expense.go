package models

import "time"

// DefaultCategory is assigned to expenses recorded without a category.
const DefaultCategory = "Other"

// Expense represents a single shared expense paid by one participant.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	// Generated by the store on create.
	ID string `json:"id"`

	// Amount is the positive amount paid, at 2-place currency precision.
	Amount float64 `json:"amount"`

	// Description is what the money was spent on (e.g., "Groceries").
	Description string `json:"description"`

	// PaidBy is the name of the participant who paid.
	PaidBy string `json:"paid_by"`

	// Category groups expenses for analytics. Defaults to DefaultCategory.
	Category string `json:"category"`

	// CreatedAt is when the expense was recorded. Set by the store.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the expense was last modified. Set by the store.
	UpdatedAt time.Time `json:"updated_at"`
}

// MaxAmount is the exclusive upper bound of an expense amount. It keeps every
// amount inside the NUMERIC(12,2) column of the Postgres store.
const MaxAmount = 1e10

// NewExpense carries the caller-supplied fields of an expense to be added.
type NewExpense struct {
	Amount      float64 `validate:"gt=0,lt=10000000000"`
	Description string  `validate:"required"`
	PaidBy      string  `validate:"required"`
	Category    string
}

// ExpenseUpdate is a partial update. Nil fields are left unchanged.
// Supplied text fields must be non-blank after trimming.
type ExpenseUpdate struct {
	Amount      *float64 `validate:"omitnil,gt=0,lt=10000000000"`
	Description *string
	PaidBy      *string
	Category    *string
}

// IsEmpty reports whether the update changes nothing.
func (u ExpenseUpdate) IsEmpty() bool {
	return u.Amount == nil && u.Description == nil && u.PaidBy == nil && u.Category == nil
}

// Apply returns a copy of e with the non-nil fields of u applied.
func (u ExpenseUpdate) Apply(e Expense) Expense {
	if u.Amount != nil {
		e.Amount = *u.Amount
	}
	if u.Description != nil {
		e.Description = *u.Description
	}
	if u.PaidBy != nil {
		e.PaidBy = *u.PaidBy
	}
	if u.Category != nil {
		e.Category = *u.Category
	}
	return e
}
