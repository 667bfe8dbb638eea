package calculator

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/models"
)

var hundred = decimal.NewFromInt(100)

type bucket struct {
	total decimal.Decimal
	count int
}

// SummarizeByCategory totals spending per category, largest first.
// Expenses without a category count as models.DefaultCategory.
func SummarizeByCategory(expenses []models.Expense) ([]models.CategoryTotal, error) {
	amounts, err := toDecimals(expenses)
	if err != nil {
		return nil, err
	}

	grand := decimal.Zero
	buckets := make(map[string]*bucket)
	for i, expense := range expenses {
		category := expense.Category
		if category == "" {
			category = models.DefaultCategory
		}
		b, ok := buckets[category]
		if !ok {
			b = &bucket{}
			buckets[category] = b
		}
		b.total = b.total.Add(amounts[i])
		b.count++
		grand = grand.Add(amounts[i])
	}

	totals := make([]models.CategoryTotal, 0, len(buckets))
	for category, b := range buckets {
		percentage := decimal.Zero
		if !grand.IsZero() {
			percentage = b.total.Mul(hundred).Div(grand)
		}
		totals = append(totals, models.CategoryTotal{
			Category:   category,
			Total:      roundCurrency(b.total),
			Count:      b.count,
			Percentage: roundCurrency(percentage),
		})
	}

	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Total != totals[j].Total {
			return totals[i].Total > totals[j].Total
		}
		return totals[i].Category < totals[j].Category
	})

	return totals, nil
}

// SummarizeByMonth totals spending per UTC calendar month of CreatedAt,
// oldest month first.
func SummarizeByMonth(expenses []models.Expense) ([]models.MonthlyTotal, error) {
	amounts, err := toDecimals(expenses)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]*bucket)
	for i, expense := range expenses {
		month := expense.CreatedAt.UTC().Format("2006-01")
		b, ok := buckets[month]
		if !ok {
			b = &bucket{}
			buckets[month] = b
		}
		b.total = b.total.Add(amounts[i])
		b.count++
	}

	totals := make([]models.MonthlyTotal, 0, len(buckets))
	for month, b := range buckets {
		totals = append(totals, models.MonthlyTotal{
			Month: month,
			Total: roundCurrency(b.total),
			Count: b.count,
		})
	}

	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Month < totals[j].Month
	})

	return totals, nil
}
