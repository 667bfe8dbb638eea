// Package ledgerv1 holds the wire messages of the ledger.v1 Connect API
// declared in proto/ledger/v1/ledger.proto.
//
// Messages are plain structs encoded as JSON. Argument-less requests and the
// DeleteExpense response use google.protobuf.Empty.
package ledgerv1

// Expense is a recorded expense. Timestamps are RFC 3339 in UTC.
type Expense struct {
	Id          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	PaidBy      string  `json:"paidBy"`
	Category    string  `json:"category"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type Balance struct {
	Person  string  `json:"person"`
	Balance float64 `json:"balance"`
	Owes    float64 `json:"owes"`
	Owed    float64 `json:"owed"`
}

type Settlement struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

type CategoryTotal struct {
	Category   string  `json:"category"`
	Total      float64 `json:"total"`
	Count      int32   `json:"count"`
	Percentage float64 `json:"percentage"`
}

type MonthlyTotal struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
	Count int32   `json:"count"`
}

type ListExpensesResponse struct {
	Expenses []*Expense `json:"expenses"`
}

type AddExpenseRequest struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	PaidBy      string  `json:"paidBy"`
	Category    string  `json:"category,omitempty"`
}

type AddExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

// UpdateExpenseRequest changes only the fields that are set.
type UpdateExpenseRequest struct {
	Id          string   `json:"id"`
	Amount      *float64 `json:"amount,omitempty"`
	Description *string  `json:"description,omitempty"`
	PaidBy      *string  `json:"paidBy,omitempty"`
	Category    *string  `json:"category,omitempty"`
}

type UpdateExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type DeleteExpenseRequest struct {
	Id string `json:"id"`
}

type ListPeopleResponse struct {
	People []string `json:"people"`
}

type GetBalancesResponse struct {
	Balances []*Balance `json:"balances"`
}

type GetSettlementsResponse struct {
	Settlements []*Settlement `json:"settlements"`
}

type GetCategoryBreakdownResponse struct {
	Categories []*CategoryTotal `json:"categories"`
}

type GetMonthlySpendingResponse struct {
	Months []*MonthlyTotal `json:"months"`
}

type ListCategoriesResponse struct {
	Categories []string `json:"categories"`
}
