package calculator

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/models"
)

// currencyPlaces is the number of decimal places amounts are rounded to.
const currencyPlaces = 2

// CalculateBalances computes one balance per distinct payer.
//
// Algorithm:
//   - total = sum of all expense amounts
//   - share = total / number of participants (equal split, no weighting)
//   - paid  = sum of amounts the participant paid
//   - balance = paid - share
//
// Arithmetic is done on unrounded decimals; only the outputs are rounded to
// 2 places. Results are sorted by balance descending, ties in name order.
//
// The expenses are a read snapshot supplied by the caller and are not modified.
func CalculateBalances(expenses []models.Expense) ([]models.Balance, error) {
	amounts, err := toDecimals(expenses)
	if err != nil {
		return nil, err
	}

	participants := Participants(expenses)
	if len(participants) == 0 {
		return []models.Balance{}, nil
	}

	total := decimal.Zero
	paid := make(map[string]decimal.Decimal, len(participants))
	for i, expense := range expenses {
		total = total.Add(amounts[i])
		paid[expense.PaidBy] = paid[expense.PaidBy].Add(amounts[i])
	}

	share := total.Div(decimal.NewFromInt(int64(len(participants))))

	balances := make([]models.Balance, 0, len(participants))
	for _, person := range participants {
		balances = append(balances, models.Balance{
			Person:  person,
			Balance: roundCurrency(paid[person].Sub(share)),
			Owes:    roundCurrency(share),
			Owed:    roundCurrency(paid[person]),
		})
	}

	// Largest creditor first
	sort.SliceStable(balances, func(i, j int) bool {
		return balances[i].Balance > balances[j].Balance
	})

	return balances, nil
}

// Participants returns the sorted distinct set of payers in expenses.
func Participants(expenses []models.Expense) []string {
	seen := make(map[string]struct{}, len(expenses))
	people := make([]string, 0)
	for _, expense := range expenses {
		if _, ok := seen[expense.PaidBy]; ok {
			continue
		}
		seen[expense.PaidBy] = struct{}{}
		people = append(people, expense.PaidBy)
	}
	sort.Strings(people)
	return people
}

// Settle computes balances and the settlement plan from a single snapshot.
func Settle(expenses []models.Expense) ([]models.Balance, []models.Settlement, error) {
	balances, err := CalculateBalances(expenses)
	if err != nil {
		return nil, nil, err
	}
	return balances, PlanSettlements(balances), nil
}

// toDecimals converts expense amounts, rejecting values that break the
// calculator's input contract.
func toDecimals(expenses []models.Expense) ([]decimal.Decimal, error) {
	amounts := make([]decimal.Decimal, len(expenses))
	for i, expense := range expenses {
		if err := checkAmount(i, expense); err != nil {
			return nil, err
		}
		amounts[i] = decimal.NewFromFloat(expense.Amount)
	}
	return amounts, nil
}

func roundCurrency(d decimal.Decimal) float64 {
	f, _ := d.Round(currencyPlaces).Float64()
	return f
}
