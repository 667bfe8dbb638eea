package models

// Balance is one participant's net position across the whole ledger.
type Balance struct {
	// Person is the participant name.
	Person string `json:"person"`

	// Balance is Owed minus Owes. Positive = owed money, negative = owes money.
	Balance float64 `json:"balance"`

	// Owes is the participant's equal share of total spend.
	Owes float64 `json:"owes"`

	// Owed is the total amount the participant has paid.
	Owed float64 `json:"owed"`
}

// Settlement is a suggested payment that reduces outstanding balances.
type Settlement struct {
	// From is the debtor making the payment.
	From string `json:"from"`

	// To is the creditor receiving the payment.
	To string `json:"to"`

	// Amount is the positive payment amount, rounded to 2 places.
	Amount float64 `json:"amount"`
}
