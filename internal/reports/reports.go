// Package reports aggregates finalized sales for dashboard-style views.
// Everything here reads snapshots and computes on the fly; nothing feeds back
// into the engine.
package reports

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"pos-terminal/internal/domain"
)

// Summary condenses a set of sales into headline numbers.
type Summary struct {
	SaleCount      int             `json:"saleCount"`
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`
	TotalTax       decimal.Decimal `json:"totalTax"`
	ItemsSold      int             `json:"itemsSold"`
	AvgTransaction decimal.Decimal `json:"avgTransaction"`
}

// ProductStat ranks a product by sold quantity and revenue.
type ProductStat struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// Summarize computes headline numbers over the given sales.
func Summarize(sales []domain.Sale) Summary {
	s := Summary{
		SaleCount:      len(sales),
		TotalRevenue:   decimal.Zero,
		TotalTax:       decimal.Zero,
		AvgTransaction: decimal.Zero,
	}
	for _, sale := range sales {
		s.TotalRevenue = s.TotalRevenue.Add(sale.Total)
		s.TotalTax = s.TotalTax.Add(sale.Tax)
		for _, item := range sale.Items {
			s.ItemsSold += item.Quantity
		}
	}
	if s.SaleCount > 0 {
		s.AvgTransaction = s.TotalRevenue.Div(decimal.NewFromInt(int64(s.SaleCount)))
	}
	return s
}

// SummarizeDay narrows the sales to a single calendar day before summarizing.
func SummarizeDay(sales []domain.Sale, day time.Time) Summary {
	y, m, d := day.Date()
	var filtered []domain.Sale
	for _, sale := range sales {
		sy, sm, sd := sale.Timestamp.In(day.Location()).Date()
		if sy == y && sm == m && sd == d {
			filtered = append(filtered, sale)
		}
	}
	return Summarize(filtered)
}

// TopProducts returns up to limit products ranked by revenue, highest first.
func TopProducts(sales []domain.Sale, limit int) []ProductStat {
	byProduct := make(map[string]*ProductStat)
	var order []string
	for _, sale := range sales {
		for _, item := range sale.Items {
			stat, ok := byProduct[item.ProductID]
			if !ok {
				stat = &ProductStat{
					ProductID:   item.ProductID,
					ProductName: item.ProductName,
					Revenue:     decimal.Zero,
				}
				byProduct[item.ProductID] = stat
				order = append(order, item.ProductID)
			}
			stat.Quantity += item.Quantity
			stat.Revenue = stat.Revenue.Add(item.Total)
		}
	}

	stats := make([]ProductStat, 0, len(order))
	for _, id := range order {
		stats = append(stats, *byProduct[id])
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Revenue.GreaterThan(stats[j].Revenue)
	})
	if limit > 0 && len(stats) > limit {
		stats = stats[:limit]
	}
	return stats
}
