package report

import (
	"slices"
	"strings"

	"github.com/invoicer/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ProductStatistics summarises a product list
type ProductStatistics struct {
	Count         int             `json:"count"`
	CategoryCount int             `json:"category_count"`
	AverageRate   decimal.Decimal `json:"average_rate"`
}

// FilterProducts keeps products in category whose name or details contain
// query. The category must match exactly; catalog.AllCategories or an empty
// category disables that filter.
func FilterProducts(products []catalog.Product, query, category string) []catalog.Product {
	q := fold(query)
	category = strings.TrimSpace(category)
	anyCategory := category == "" || category == catalog.AllCategories
	if q == "" && anyCategory {
		return products
	}

	out := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if !anyCategory && p.Category != category {
			continue
		}
		if q != "" && !contains(p.Name, q) && !contains(p.Details, q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ProductStats counts products and distinct non-empty categories and
// averages the rate over the given products. Empty input yields zeros.
func ProductStats(products []catalog.Product) ProductStatistics {
	stats := ProductStatistics{Count: len(products), AverageRate: decimal.Zero}
	if len(products) == 0 {
		return stats
	}

	sum := decimal.Zero
	categories := make(map[string]struct{})
	for _, p := range products {
		sum = sum.Add(p.Rate)
		if p.Category != "" {
			categories[p.Category] = struct{}{}
		}
	}
	stats.CategoryCount = len(categories)
	stats.AverageRate = sum.Div(decimal.NewFromInt(int64(len(products))))
	return stats
}

// Categories returns the distinct categories sorted, with
// catalog.AllCategories first for use as a picker
func Categories(products []catalog.Product) []string {
	set := make(map[string]struct{})
	for _, p := range products {
		if p.Category != "" {
			set[p.Category] = struct{}{}
		}
	}
	names := make([]string, 0, len(set))
	for c := range set {
		names = append(names, c)
	}
	slices.Sort(names)
	return append([]string{catalog.AllCategories}, names...)
}
