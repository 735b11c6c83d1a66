package inventory

import (
	"fmt"
	"time"
)

// Window is a half-open date range [Start, End) over YYYY-MM-DD strings.
// Lexicographic comparison of dates in this format is chronological, so the
// window works directly on the stored date strings, including syntactically
// valid dates that name no real calendar day.
type Window struct {
	Start string
	End   string
}

// Contains reports whether the date falls inside the window
func (w Window) Contains(date string) bool {
	return date >= w.Start && date < w.End
}

// MonthWindow returns the window covering a whole calendar month
func MonthWindow(month time.Month, year int) Window {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Window{
		Start: start.Format("2006-01-02"),
		End:   start.AddDate(0, 1, 0).Format("2006-01-02"),
	}
}

// YearWindow returns the window [Jan 1 year, Jan 1 year+1)
func YearWindow(year int) Window {
	return Window{
		Start: fmt.Sprintf("%04d-01-01", year),
		End:   fmt.Sprintf("%04d-01-01", year+1),
	}
}

// PeriodAggregate holds the stock totals over a reporting window.
// It is derived on demand and never persisted.
type PeriodAggregate struct {
	TotalStockIn  int64 `json:"totalStockIn"`
	TotalStockOut int64 `json:"totalStockOut"`
	EndingStock   int64 `json:"endingStock"`
}

// AggregateTransactions folds a transaction set into period totals:
// stock-in quantities sum into TotalStockIn, stock-out into TotalStockOut,
// and EndingStock is their difference.
func AggregateTransactions(txs []StockTransaction) PeriodAggregate {
	var agg PeriodAggregate
	for _, tx := range txs {
		switch {
		case tx.Kind.IsStockIn():
			agg.TotalStockIn += tx.Quantity
		case tx.Kind.IsStockOut():
			agg.TotalStockOut += tx.Quantity
		}
	}
	agg.EndingStock = agg.TotalStockIn - agg.TotalStockOut
	return agg
}
