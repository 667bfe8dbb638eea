package calculator

import (
	"math"
	"reflect"
	"testing"

	"github.com/mmynk/splitledger/internal/models"
)

func TestPlanSettlements(t *testing.T) {
	tests := []struct {
		name     string
		balances []models.Balance
		want     []models.Settlement
	}{
		{
			name:     "no balances",
			balances: nil,
			want:     []models.Settlement{},
		},
		{
			name: "one debtor, one creditor",
			balances: []models.Balance{
				{Person: "A", Balance: 25},
				{Person: "B", Balance: -25},
			},
			want: []models.Settlement{
				{From: "B", To: "A", Amount: 25},
			},
		},
		{
			name: "equal debtors keep input order",
			balances: []models.Balance{
				{Person: "A", Balance: 40},
				{Person: "B", Balance: -20},
				{Person: "C", Balance: -20},
			},
			want: []models.Settlement{
				{From: "B", To: "A", Amount: 20},
				{From: "C", To: "A", Amount: 20},
			},
		},
		{
			name: "zero balance is ignored",
			balances: []models.Balance{
				{Person: "A", Balance: 10},
				{Person: "Z", Balance: 0},
				{Person: "B", Balance: -10},
			},
			want: []models.Settlement{
				{From: "B", To: "A", Amount: 10},
			},
		},
		{
			name: "single participant settled",
			balances: []models.Balance{
				{Person: "Alice", Balance: 0},
			},
			want: []models.Settlement{},
		},
		{
			name: "largest debtor matched with largest creditor",
			balances: []models.Balance{
				{Person: "Small", Balance: 10},
				{Person: "Big", Balance: 50},
				{Person: "Owes5", Balance: -5},
				{Person: "Owes55", Balance: -55},
			},
			want: []models.Settlement{
				{From: "Owes55", To: "Big", Amount: 50},
				{From: "Owes55", To: "Small", Amount: 5},
				{From: "Owes5", To: "Small", Amount: 5},
			},
		},
		{
			name: "unsorted input is sorted before matching",
			balances: []models.Balance{
				{Person: "D1", Balance: -30},
				{Person: "C1", Balance: 10},
				{Person: "C2", Balance: 20},
			},
			want: []models.Settlement{
				{From: "D1", To: "C2", Amount: 20},
				{From: "D1", To: "C1", Amount: 10},
			},
		},
		{
			name: "penny residue is suppressed",
			balances: []models.Balance{
				{Person: "A", Balance: 0.01},
				{Person: "B", Balance: -0.01},
			},
			want: []models.Settlement{},
		},
		{
			name: "rounding residue from uneven share",
			balances: []models.Balance{
				{Person: "A", Balance: 66.66},
				{Person: "B", Balance: -33.33},
				{Person: "C", Balance: -33.33},
			},
			want: []models.Settlement{
				{From: "B", To: "A", Amount: 33.33},
				{From: "C", To: "A", Amount: 33.33},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlanSettlements(tt.balances)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PlanSettlements() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPlanSettlements_DoesNotMutateInput(t *testing.T) {
	balances := []models.Balance{
		{Person: "A", Balance: 40, Owes: 50, Owed: 90},
		{Person: "B", Balance: -20, Owes: 50, Owed: 30},
		{Person: "C", Balance: -20, Owes: 50, Owed: 30},
	}
	snapshot := append([]models.Balance(nil), balances...)

	PlanSettlements(balances)

	if !reflect.DeepEqual(balances, snapshot) {
		t.Errorf("balances modified: got %+v, want %+v", balances, snapshot)
	}
}

// TestPlanSettlements_ZeroesBalances applies every planned payment back onto
// the balances computed from a ledger and checks nothing is left over.
func TestPlanSettlements_ZeroesBalances(t *testing.T) {
	ledgers := map[string][]models.Expense{
		"two people": {expense("A", 100), expense("B", 50)},
		"three people": {
			expense("A", 90), expense("B", 30), expense("C", 30),
		},
		"uneven share": {
			expense("A", 100), expense("B", 0.01), expense("C", 0.01),
		},
		"many people": {
			expense("Alice", 120.5), expense("Bob", 33.1), expense("Carol", 0.99),
			expense("Dan", 75), expense("Eve", 12.34), expense("Alice", 8.76),
			expense("Frank", 250), expense("Grace", 1),
		},
	}

	for name, expenses := range ledgers {
		t.Run(name, func(t *testing.T) {
			balances, err := CalculateBalances(expenses)
			if err != nil {
				t.Fatalf("CalculateBalances() error = %v", err)
			}

			remaining := make(map[string]float64, len(balances))
			for _, b := range balances {
				remaining[b.Person] = b.Balance
			}

			for _, s := range PlanSettlements(balances) {
				if s.Amount <= 0.01 {
					t.Errorf("settlement %+v at or below threshold", s)
				}
				if s.From == s.To {
					t.Errorf("settlement %+v pays itself", s)
				}
				remaining[s.To] -= s.Amount
				remaining[s.From] += s.Amount
			}

			// Uneven shares can leave one rounding step per participant
			tolerance := 0.005*float64(len(balances)) + 1e-9
			for person, rest := range remaining {
				if math.Abs(rest) > tolerance {
					t.Errorf("%s left with %v after settlements", person, rest)
				}
			}
		})
	}
}
