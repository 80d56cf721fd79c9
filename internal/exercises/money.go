package exercises

import (
	"fmt"

	"github.com/Clark-Hu/typed-exercises/internal/domain"
)

// Profit returns the worldwide gross minus the budget. A negative result is
// a loss.
func Profit(movie domain.Movie) int64 {
	return movie.BoxOffice.GrossWorldwide - movie.BoxOffice.Budget
}

// Total sums the prices of products. An empty list totals zero.
func Total(products []domain.Product) float64 {
	var total float64
	for _, p := range products {
		total += p.Price
	}
	return total
}

// FormatTotal renders a total the way the checkout prints it.
func FormatTotal(total float64) string {
	return fmt.Sprintf("Total Price: $%.2f", total)
}
