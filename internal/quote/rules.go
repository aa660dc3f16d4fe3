package quote

import (
	"fmt"
	"sort"

	"hallbook/internal/domain"
)

// ResolvedItem is a selection after server-side policy enforcement.
type ResolvedItem struct {
	Category string
	Label    string
	Quantity int
}

// ApplyRules enforces the selection policies over a caller-supplied selection
// set, in order: no-quantity forcing, kitchen mutual exclusion, deposit
// auto-inclusion, crockery-family deposit, pass-through. The client-side form
// applies the same rules for display only; this is the sole authority.
//
// Output preserves the tariff table's category and item order. Deposit lines
// are appended at the end of their owning category's block. Selections naming
// items absent from the table pass through after the table's categories, in
// lexical order.
func ApplyRules(sel domain.SelectionSet, table *domain.TariffTable) ([]ResolvedItem, error) {
	if err := checkSelections(sel); err != nil {
		return nil, err
	}

	type depositLine struct {
		tag      Tag
		key      domain.ItemKey
		blockIdx int
	}

	var blocks [][]ResolvedItem
	var deposits []depositLine
	seen := make(map[domain.ItemKey]bool, len(sel))
	hallActive := false
	crockeryActive := false

	for _, cat := range tableCategories(table) {
		block := make([]ResolvedItem, 0, len(cat.Items))
		for _, it := range cat.Items {
			key := domain.ItemKey{Category: cat.Name, Label: it.Label}
			seen[key] = true
			tag := Classify(cat.Name, it.Label)
			if tag == TagHallDeposit || tag == TagCrockeryDeposit {
				// Never directly selectable; inclusion is derived below.
				deposits = append(deposits, depositLine{tag: tag, key: key, blockIdx: len(blocks)})
				continue
			}
			qty := resolveQuantity(key, sel[key])
			if qty == 0 {
				continue
			}
			block = append(block, ResolvedItem{Category: cat.Name, Label: it.Label, Quantity: qty})
			noteActivity(cat.Name, qty, &hallActive, &crockeryActive)
		}
		blocks = append(blocks, block)
	}

	extras := extraItems(sel, seen)
	for _, e := range extras {
		noteActivity(e.Category, e.Quantity, &hallActive, &crockeryActive)
	}

	for _, d := range deposits {
		include := (d.tag == TagHallDeposit && hallActive) ||
			(d.tag == TagCrockeryDeposit && crockeryActive)
		if include {
			blocks[d.blockIdx] = append(blocks[d.blockIdx],
				ResolvedItem{Category: d.key.Category, Label: d.key.Label, Quantity: 1})
		}
	}

	var out []ResolvedItem
	for _, block := range blocks {
		out = append(out, block...)
	}
	return append(out, extras...), nil
}

// checkSelections rejects contradictory input before any resolution: both
// kitchen variants checked, or a negative quantity anywhere.
func checkSelections(sel domain.SelectionSet) error {
	kitchenFull, kitchenServing := false, false
	for key, s := range sel {
		if s.Quantity < 0 {
			return domain.NewValidationError(
				fmt.Sprintf("%s / %s", key.Category, key.Label),
				"quantity cannot be negative")
		}
		if !s.Checked {
			continue
		}
		switch Classify(key.Category, key.Label) {
		case TagKitchenFull:
			kitchenFull = true
		case TagKitchenServing:
			kitchenServing = true
		}
	}
	if kitchenFull && kitchenServing {
		return domain.NewValidationError("kitchen hire",
			"kitchen full use and serving only are mutually exclusive; select one")
	}
	return nil
}

// resolveQuantity applies the per-class quantity policy to one selection.
func resolveQuantity(key domain.ItemKey, s domain.Selection) int {
	if !s.Checked {
		return 0
	}
	switch ClassOf(key.Category, key.Label) {
	case ClassFlag:
		return 1
	case ClassCounted:
		if s.Quantity == 0 {
			// Checking the box implies at least one unit.
			return 1
		}
		return s.Quantity
	default: // ClassProrated: quantity was derived upstream.
		return s.Quantity
	}
}

func noteActivity(category string, qty int, hallActive, crockeryActive *bool) {
	if qty <= 0 {
		return
	}
	if isHallHire(category) {
		*hallActive = true
	}
	if isCrockeryFamily(category) {
		*crockeryActive = true
	}
}

// extraItems resolves checked selections that name items absent from the
// tariff table. They price at zero later but still pass through, in a
// deterministic lexical order.
func extraItems(sel domain.SelectionSet, seen map[domain.ItemKey]bool) []ResolvedItem {
	var keys []domain.ItemKey
	for key, s := range sel {
		if seen[key] || !s.Checked {
			continue
		}
		tag := Classify(key.Category, key.Label)
		if tag == TagHallDeposit || tag == TagCrockeryDeposit {
			continue
		}
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Category != keys[j].Category {
			return keys[i].Category < keys[j].Category
		}
		return keys[i].Label < keys[j].Label
	})
	var out []ResolvedItem
	for _, key := range keys {
		if qty := resolveQuantity(key, sel[key]); qty > 0 {
			out = append(out, ResolvedItem{Category: key.Category, Label: key.Label, Quantity: qty})
		}
	}
	return out
}

func tableCategories(table *domain.TariffTable) []domain.TariffCategory {
	if table == nil {
		return nil
	}
	return table.Categories
}
