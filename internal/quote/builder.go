package quote

import (
	"hallbook/internal/domain"
)

// Build computes an itemized quote for a booking request. It derives the
// prorated hall-hire quantities, runs the selection rules, and prices the
// resolved items against the tariff table snapshot. Missing labels price at
// zero. Build is pure: identical inputs always produce an identical quote.
func Build(req *domain.BookingRequest, sel domain.SelectionSet, table *domain.TariffTable) (*domain.Quote, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}

	merged := make(domain.SelectionSet, len(sel)+2)
	for key, s := range sel {
		// Derived lines are server-owned; drop whatever the client sent.
		if ClassOf(key.Category, key.Label) == ClassProrated {
			continue
		}
		merged[key] = s
	}
	for key, qty := range HallHireQuantities(req) {
		if qty > 0 {
			merged[key] = domain.Selection{Checked: true, Quantity: qty}
		}
	}

	resolved, err := ApplyRules(merged, table)
	if err != nil {
		return nil, err
	}

	q := &domain.Quote{Items: make([]domain.QuoteLineItem, 0, len(resolved))}
	for _, ri := range resolved {
		price, _ := table.Price(ri.Category, ri.Label)
		sub := float64(ri.Quantity) * price
		q.Items = append(q.Items, domain.QuoteLineItem{
			Category:  ri.Category,
			Label:     ri.Label,
			Quantity:  ri.Quantity,
			UnitPrice: price,
			Subtotal:  sub,
		})
		q.Total += sub
	}
	return q, nil
}

// ValidateRequest checks the booking-request invariants the quote engine
// depends on. Date parsing failures are deliberately not errors.
func ValidateRequest(req *domain.BookingRequest) error {
	if req.GuestCount < 0 {
		return domain.NewValidationError("guest_count", "guest count cannot be negative")
	}
	if req.TimeSelection != domain.TimeCustom {
		return nil
	}
	if req.CustomStart == "" || req.CustomEnd == "" {
		return domain.NewValidationError("custom_start/custom_end",
			"custom hours require both a start and an end time")
	}
	if _, ok := parseHour(req.CustomStart); !ok {
		return domain.NewValidationError("custom_start", "custom start time must be an HH:MM value")
	}
	if _, ok := parseHour(req.CustomEnd); !ok {
		return domain.NewValidationError("custom_end", "custom end time must be an HH:MM value")
	}
	// An end at or before the start rolls over midnight, so the normalized
	// end is always after the start.
	return nil
}
