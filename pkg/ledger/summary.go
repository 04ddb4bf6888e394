package ledger

import (
	"github.com/shopspring/decimal"
	"github.com/taya-finance/backend/pkg/models"
)

// Summary aggregates a set of movements.
type Summary struct {
	TotalMovements int64
	TotalIncome    decimal.Decimal // Sum of all positive amounts
	TotalExpenses  decimal.Decimal // Absolute value of the sum of all negative amounts
}

// summaryRow is the raw result of the aggregation query.
type summaryRow struct {
	TotalMovements int64
	TotalIncome    decimal.NullDecimal
	TotalExpenses  decimal.NullDecimal
}

// summarySelect aggregates in a single statement. Amounts of exactly
// zero are counted, but are neither income nor expense.
const summarySelect = `COUNT(*) AS total_movements,
	SUM(CASE WHEN movements.amount > 0 THEN movements.amount ELSE 0 END) AS total_income,
	SUM(CASE WHEN movements.amount < 0 THEN movements.amount ELSE 0 END) AS total_expenses`

func (r summaryRow) summary() Summary {
	return Summary{
		TotalMovements: r.TotalMovements,
		TotalIncome:    r.TotalIncome.Decimal.Round(models.AmountPlaces),
		TotalExpenses:  r.TotalExpenses.Decimal.Abs().Round(models.AmountPlaces),
	}
}
