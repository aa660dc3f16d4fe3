package invoice

import (
	"fmt"
	"strings"

	"hallbook/internal/domain"
)

// Summary renders a quote as plain text, one line per item in quote order,
// with the grand total after a blank line. Amounts round to two decimals at
// this boundary only.
func Summary(q *domain.Quote, currency string) string {
	var b strings.Builder
	for _, it := range q.Items {
		fmt.Fprintf(&b, "%s - %s x%d: %s %.2f\n", it.Category, it.Label, it.Quantity, currency, it.Subtotal)
	}
	fmt.Fprintf(&b, "\nTotal: %s %.2f\n", currency, q.Total)
	return b.String()
}
