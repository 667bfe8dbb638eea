package calculator

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/models"
)

// settleThreshold is the smallest amount worth a payment. Residues at or
// below it are treated as already settled.
var settleThreshold = decimal.New(1, -currencyPlaces)

// position is a participant's remaining balance during matching.
type position struct {
	person  string
	balance decimal.Decimal
}

// PlanSettlements converts balances into point-to-point payments that zero
// them out.
//
// Greedy matching: the largest creditor is paired with the largest debtor,
// the smaller of the two amounts is transferred, and whichever side reaches
// zero is dropped. This keeps the number of payments low but is not the
// minimum-transaction optimum.
//
// Matching runs on a local copy; balances is not modified. Ties in sort
// order keep their input order.
func PlanSettlements(balances []models.Balance) []models.Settlement {
	settlements := []models.Settlement{}
	if len(balances) == 0 {
		return settlements
	}

	var creditors, debtors []position
	for _, b := range balances {
		p := position{person: b.Person, balance: decimal.NewFromFloat(b.Balance)}
		switch p.balance.Sign() {
		case 1:
			creditors = append(creditors, p)
		case -1:
			debtors = append(debtors, p)
		}
	}

	sort.SliceStable(creditors, func(i, j int) bool {
		return creditors[i].balance.GreaterThan(creditors[j].balance)
	})
	// Most negative first
	sort.SliceStable(debtors, func(i, j int) bool {
		return debtors[i].balance.LessThan(debtors[j].balance)
	})

	i, j := 0, 0
	for i < len(creditors) && j < len(debtors) {
		creditor := &creditors[i]
		debtor := &debtors[j]

		amount := decimal.Min(creditor.balance, debtor.balance.Abs())

		if amount.GreaterThan(settleThreshold) {
			f, _ := amount.Round(currencyPlaces).Float64()
			settlements = append(settlements, models.Settlement{
				From:   debtor.person,
				To:     creditor.person,
				Amount: f,
			})
		}

		creditor.balance = creditor.balance.Sub(amount)
		debtor.balance = debtor.balance.Add(amount)

		// Both cursors may advance on the same step
		if creditor.balance.Abs().LessThan(settleThreshold) {
			i++
		}
		if debtor.balance.Abs().LessThan(settleThreshold) {
			j++
		}
	}

	return settlements
}
