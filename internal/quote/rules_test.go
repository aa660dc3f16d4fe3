package quote_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hallbook/internal/domain"
	"hallbook/internal/quote"
)

const (
	labelHallDeposit     = "Refundable deposit at time of booking"
	labelCrockeryDeposit = "Refundable deposit for crockery, cutlery etc"
	labelKitchenFull     = "Per event, for full use (oven/stove/fridges)"
	labelKitchenServing  = "Per event, for serving only"
	labelWiFi            = "Wi Fi"
)

func fixtureTable() *domain.TariffTable {
	return &domain.TariffTable{Categories: []domain.TariffCategory{
		{Name: quote.CategoryHallHire, Items: []domain.TariffItem{
			{Label: quote.LabelDayRate, UnitPrice: 2200},
			{Label: quote.LabelFirstHour, UnitPrice: 220},
			{Label: quote.LabelAfterFirstHour, UnitPrice: 110},
			{Label: labelHallDeposit, UnitPrice: 2000},
		}},
		{Name: quote.CategoryMeetingRoom, Items: []domain.TariffItem{
			{Label: quote.LabelFirstHour, UnitPrice: 150},
			{Label: quote.LabelAfterFirstHour, UnitPrice: 75},
		}},
		{Name: quote.CategorySpotlights, Items: []domain.TariffItem{
			{Label: "Per event", UnitPrice: 350},
		}},
		{Name: quote.CategoryKitchen, Items: []domain.TariffItem{
			{Label: labelKitchenFull, UnitPrice: 750},
			{Label: labelKitchenServing, UnitPrice: 300},
		}},
		{Name: "Extras", Items: []domain.TariffItem{
			{Label: labelWiFi, UnitPrice: 100},
		}},
		{Name: quote.CategoryCrockery, Items: []domain.TariffItem{
			{Label: "Dinner plates", UnitPrice: 5},
		}},
		{Name: quote.CategoryCutlery, Items: []domain.TariffItem{
			{Label: "Knives", UnitPrice: 2},
		}},
		{Name: quote.CategoryGlassware, Items: []domain.TariffItem{
			{Label: "Wine glasses", UnitPrice: 3},
			{Label: labelCrockeryDeposit, UnitPrice: 500},
		}},
	}}
}

func checked(qty int) domain.Selection { return domain.Selection{Checked: true, Quantity: qty} }

func findItem(items []quote.ResolvedItem, category, label string) *quote.ResolvedItem {
	for i := range items {
		if items[i].Category == category && items[i].Label == label {
			return &items[i]
		}
	}
	return nil
}

func TestApplyRules_KitchenMutualExclusion(t *testing.T) {
	sel := domain.SelectionSet{
		{Category: quote.CategoryKitchen, Label: labelKitchenFull}:    checked(1),
		{Category: quote.CategoryKitchen, Label: labelKitchenServing}: checked(1),
	}
	_, err := quote.ApplyRules(sel, fixtureTable())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestApplyRules_SingleKitchenVariantAllowed(t *testing.T) {
	sel := domain.SelectionSet{
		// Submitted quantity is ignored for no-quantity items.
		{Category: quote.CategoryKitchen, Label: labelKitchenServing}: checked(7),
	}
	items, err := quote.ApplyRules(sel, fixtureTable())

	require.NoError(t, err)
	serving := findItem(items, quote.CategoryKitchen, labelKitchenServing)
	require.NotNil(t, serving)
	assert.Equal(t, 1, serving.Quantity)
	assert.Nil(t, findItem(items, quote.CategoryKitchen, labelKitchenFull))
}

func TestApplyRules_OrdinaryKitchenLineKeepsQuantity(t *testing.T) {
	table := fixtureTable()
	// An administrator-added kitchen line, alongside the serving variant.
	table.Categories[3].Items = append(table.Categories[3].Items,
		domain.TariffItem{Label: "Urn hire", UnitPrice: 50})

	sel := domain.SelectionSet{
		{Category: quote.CategoryKitchen, Label: "Urn hire"}:          checked(2),
		{Category: quote.CategoryKitchen, Label: labelKitchenServing}: checked(1),
	}
	items, err := quote.ApplyRules(sel, table)

	require.NoError(t, err)
	urn := findItem(items, quote.CategoryKitchen, "Urn hire")
	require.NotNil(t, urn)
	assert.Equal(t, 2, urn.Quantity)
	serving := findItem(items, quote.CategoryKitchen, labelKitchenServing)
	require.NotNil(t, serving)
	assert.Equal(t, 1, serving.Quantity)
}

func TestApplyRules_DepositWordingElsewhereIsOrdinary(t *testing.T) {
	table := fixtureTable()
	table.Categories[4].Items = append(table.Categories[4].Items,
		domain.TariffItem{Label: "Gate key deposit", UnitPrice: 150})

	sel := domain.SelectionSet{
		{Category: "Extras", Label: "Gate key deposit"}: checked(1),
	}
	items, err := quote.ApplyRules(sel, table)

	require.NoError(t, err)
	// Directly selectable, unlike the two refundable deposit lines.
	gate := findItem(items, "Extras", "Gate key deposit")
	require.NotNil(t, gate)
	assert.Equal(t, 1, gate.Quantity)
}

func TestApplyRules_WiFiIsFlagItem(t *testing.T) {
	sel := domain.SelectionSet{
		{Category: "Extras", Label: labelWiFi}: checked(5),
	}
	items, err := quote.ApplyRules(sel, fixtureTable())

	require.NoError(t, err)
	wifi := findItem(items, "Extras", labelWiFi)
	require.NotNil(t, wifi)
	assert.Equal(t, 1, wifi.Quantity)
}

func TestApplyRules_HallDepositAutoAttach(t *testing.T) {
	sel := domain.SelectionSet{
		{Category: quote.CategoryHallHire, Label: quote.LabelFirstHour}: checked(2),
	}
	items, err := quote.ApplyRules(sel, fixtureTable())

	require.NoError(t, err)
	dep := findItem(items, quote.CategoryHallHire, labelHallDeposit)
	require.NotNil(t, dep)
	assert.Equal(t, 1, dep.Quantity)
}

func TestApplyRules_HallDepositAbsentWithoutHallHire(t *testing.T) {
	sel := domain.SelectionSet{
		{Category: quote.CategoryKitchen, Label: labelKitchenFull}: checked(1),
	}
	items, err := quote.ApplyRules(sel, fixtureTable())

	require.NoError(t, err)
	// The row is absent, not present with quantity zero.
	assert.Nil(t, findItem(items, quote.CategoryHallHire, labelHallDeposit))
}

func TestApplyRules_DepositNotDirectlySelectable(t *testing.T) {
	sel := domain.SelectionSet{
		{Category: quote.CategoryHallHire, Label: labelHallDeposit}: checked(3),
	}
	items, err := quote.ApplyRules(sel, fixtureTable())

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestApplyRules_CrockeryFamilyDeposit(t *testing.T) {
	sel := domain.SelectionSet{
		{Category: quote.CategoryGlassware, Label: "Wine glasses"}: checked(2),
	}
	items, err := quote.ApplyRules(sel, fixtureTable())

	require.NoError(t, err)
	glasses := findItem(items, quote.CategoryGlassware, "Wine glasses")
	require.NotNil(t, glasses)
	assert.Equal(t, 2, glasses.Quantity)
	dep := findItem(items, quote.CategoryGlassware, labelCrockeryDeposit)
	require.NotNil(t, dep)
	assert.Equal(t, 1, dep.Quantity)

	// Unchecking removes the deposit on recomputation.
	items, err = quote.ApplyRules(domain.SelectionSet{
		{Category: quote.CategoryGlassware, Label: "Wine glasses"}: {Checked: false, Quantity: 0},
	}, fixtureTable())
	require.NoError(t, err)
	assert.Nil(t, findItem(items, quote.CategoryGlassware, labelCrockeryDeposit))
}

func TestApplyRules_CheckedCountedItemDefaultsToOne(t *testing.T) {
	sel := domain.SelectionSet{
		{Category: quote.CategoryCrockery, Label: "Dinner plates"}: checked(0),
	}
	items, err := quote.ApplyRules(sel, fixtureTable())

	require.NoError(t, err)
	plates := findItem(items, quote.CategoryCrockery, "Dinner plates")
	require.NotNil(t, plates)
	assert.Equal(t, 1, plates.Quantity)
}

func TestApplyRules_NegativeQuantityRejected(t *testing.T) {
	sel := domain.SelectionSet{
		{Category: quote.CategoryCutlery, Label: "Knives"}: {Checked: true, Quantity: -4},
	}
	_, err := quote.ApplyRules(sel, fixtureTable())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "negative")
}

func TestApplyRules_OrderFollowsTable(t *testing.T) {
	sel := domain.SelectionSet{
		{Category: quote.CategoryGlassware, Label: "Wine glasses"}:      checked(2),
		{Category: quote.CategoryHallHire, Label: quote.LabelFirstHour}: checked(1),
		{Category: "Extras", Label: labelWiFi}:                          checked(1),
	}
	items, err := quote.ApplyRules(sel, fixtureTable())
	require.NoError(t, err)

	var got []string
	for _, it := range items {
		got = append(got, it.Category+"/"+it.Label)
	}
	assert.Equal(t, []string{
		quote.CategoryHallHire + "/" + quote.LabelFirstHour,
		quote.CategoryHallHire + "/" + labelHallDeposit, // appended to its category block
		"Extras/" + labelWiFi,
		quote.CategoryGlassware + "/Wine glasses",
		quote.CategoryGlassware + "/" + labelCrockeryDeposit,
	}, got)
}

func TestApplyRules_UnknownItemsPassThroughAfterTable(t *testing.T) {
	sel := domain.SelectionSet{
		{Category: "Extras", Label: labelWiFi}:       checked(1),
		{Category: "Extras", Label: "Stage curtain"}: checked(2),
	}
	items, err := quote.ApplyRules(sel, fixtureTable())
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, labelWiFi, items[0].Label)
	assert.Equal(t, "Stage curtain", items[1].Label)
	assert.Equal(t, 2, items[1].Quantity)
}
