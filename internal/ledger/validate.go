package ledger

import (
	"errors"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// fieldMessages are the user-facing messages per struct field.
var fieldMessages = map[string]string{
	"Amount":      "Amount must be a positive number",
	"Description": "Description is required",
	"PaidBy":      "Paid by field is required",
}

// tagMessages override fieldMessages for specific field/tag failures.
var tagMessages = map[string]string{
	"Amount.lt": "Amount must be less than 10000000000",
}

// fieldNames maps struct fields to their wire names.
var fieldNames = map[string]string{
	"Amount":      "amount",
	"Description": "description",
	"PaidBy":      "paid_by",
	"Category":    "category",
}

// normalizeNew trims text fields, fills the default category and rounds the
// amount to currency precision.
func normalizeNew(in models.NewExpense) models.NewExpense {
	in.Description = strings.TrimSpace(in.Description)
	in.PaidBy = strings.TrimSpace(in.PaidBy)
	in.Category = strings.TrimSpace(in.Category)
	if in.Category == "" {
		in.Category = models.DefaultCategory
	}
	in.Amount = roundAmount(in.Amount)
	return in
}

// normalizeUpdate applies the same rules as normalizeNew to the supplied fields.
func normalizeUpdate(in models.ExpenseUpdate) models.ExpenseUpdate {
	if in.Amount != nil {
		amount := roundAmount(*in.Amount)
		in.Amount = &amount
	}
	in.Description = trimmed(in.Description)
	in.PaidBy = trimmed(in.PaidBy)
	if in.Category != nil {
		category := strings.TrimSpace(*in.Category)
		if category == "" {
			category = models.DefaultCategory
		}
		in.Category = &category
	}
	return in
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

// roundAmount rounds to 2 places. Non-finite values are passed through for
// validation to reject.
func roundAmount(amount float64) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return amount
	}
	f, _ := decimal.NewFromFloat(amount).Round(2).Float64()
	return f
}

// validateStruct runs the struct tags and converts the first failure into a
// ValidationError.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		field := fieldErrs[0].StructField()
		msg, ok := tagMessages[field+"."+fieldErrs[0].Tag()]
		if !ok {
			msg = fieldMessages[field]
		}
		return &ValidationError{Field: fieldNames[field], Message: msg}
	}
	return &ValidationError{Field: "request", Message: err.Error()}
}

// validateUpdate checks the supplied fields of a normalized update. The
// validator treats a non-nil pointer as present even when it points at "", so
// text fields are checked on their values.
func validateUpdate(u models.ExpenseUpdate) error {
	if u.Amount != nil {
		if err := validateAmount(*u.Amount); err != nil {
			return err
		}
	}
	if err := validateStruct(u); err != nil {
		return err
	}
	if err := requireText("Description", u.Description); err != nil {
		return err
	}
	return requireText("PaidBy", u.PaidBy)
}

func requireText(field string, value *string) error {
	if value == nil {
		return nil
	}
	if err := validate.Var(*value, "required"); err != nil {
		return &ValidationError{Field: fieldNames[field], Message: fieldMessages[field]}
	}
	return nil
}

func validateAmount(amount float64) error {
	// +Inf passes gt=0
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return &ValidationError{Field: "amount", Message: fieldMessages["Amount"]}
	}
	return nil
}
