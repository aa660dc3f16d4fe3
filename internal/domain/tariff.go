package domain

// TariffItem is a single priced billing line within a tariff category.
type TariffItem struct {
	Label     string  `json:"label"`
	UnitPrice float64 `json:"unit_price"`
}

// TariffCategory is an ordered group of tariff items.
type TariffCategory struct {
	Name  string       `json:"name"`
	Items []TariffItem `json:"items"`
}

// TariffTable is the full venue tariff configuration. Order is significant:
// quotes preserve category order and, within a category, item order.
// Administrators replace the table wholesale; quote computation treats a
// fetched table as an immutable snapshot.
type TariffTable struct {
	Categories []TariffCategory `json:"categories"`
}

// Empty reports whether the table carries no priced items at all.
func (t *TariffTable) Empty() bool {
	if t == nil {
		return true
	}
	for _, c := range t.Categories {
		if len(c.Items) > 0 {
			return false
		}
	}
	return true
}

// Price returns the unit price for a category/label pair. The second return
// is false when the label is not configured; callers treat that as price 0
// (lenient lookup), never as an error.
func (t *TariffTable) Price(category, label string) (float64, bool) {
	if t == nil {
		return 0, false
	}
	for ci := range t.Categories {
		if t.Categories[ci].Name != category {
			continue
		}
		for _, it := range t.Categories[ci].Items {
			if it.Label == label {
				return it.UnitPrice, true
			}
		}
	}
	return 0, false
}

// Category returns the named category, or nil if absent.
func (t *TariffTable) Category(name string) *TariffCategory {
	if t == nil {
		return nil
	}
	for i := range t.Categories {
		if t.Categories[i].Name == name {
			return &t.Categories[i]
		}
	}
	return nil
}
