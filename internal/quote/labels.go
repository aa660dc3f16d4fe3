package quote

import "strings"

// Well-known tariff categories and hall-hire labels. Administrators add and
// rename ordinary items freely; only the closed set of special lines below
// carries rule behaviour.
const (
	CategoryHallHire    = "Hall Hire Rates"
	CategoryMeetingRoom = "Meeting Room Hire"
	CategorySpotlights  = "Spotlights & Sound"
	CategoryKitchen     = "Kitchen Hire"
	CategoryCrockery    = "Crockery (each)"
	CategoryCutlery     = "Cutlery (each)"
	CategoryGlassware   = "Glassware (each)"

	LabelDayRate        = "Rate per day up to 24h00"
	LabelFirstHour      = "Rate per hour: for 1st hour"
	LabelAfterFirstHour = "Rate per hour: after 1st hour"

	LabelHallDeposit     = "Refundable deposit at time of booking"
	LabelCrockeryDeposit = "Refundable deposit for crockery, cutlery etc"
	LabelKitchenFull     = "Per event, for full use (oven/stove/fridges)"
	LabelKitchenServing  = "Per event, for serving only"
	LabelWiFi            = "Wi Fi"
)

// Tag identifies a special tariff line whose handling is rule-driven rather
// than quantity-driven.
type Tag int

const (
	TagNone Tag = iota
	TagHallDeposit
	TagCrockeryDeposit
	TagKitchenFull
	TagKitchenServing
	TagWiFi
)

// Class describes how a line item's quantity is produced.
type Class int

const (
	// ClassCounted items take the caller-supplied quantity.
	ClassCounted Class = iota
	// ClassFlag items are billed 0-or-1; submitted quantities are ignored.
	ClassFlag
	// ClassProrated items have quantities derived from the date range and
	// time selection; caller-supplied values are discarded.
	ClassProrated
)

// normalize folds case, dashes, punctuation, and whitespace so cosmetic label
// edits ("Wi-Fi", trailing periods, double spaces) still hit the lookup table.
func normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.NewReplacer("-", " ", "–", " ", ",", " ", ".", " ", "(", " ", ")", " ", "/", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// specialLabels is the closed mapping of special tariff lines to their tags.
// Lines outside this table are ordinary items: no rule behaviour attaches to
// them no matter what their text contains.
var specialLabels = map[string]Tag{
	normalize(LabelHallDeposit):     TagHallDeposit,
	normalize(LabelCrockeryDeposit): TagCrockeryDeposit,
	normalize(LabelKitchenFull):     TagKitchenFull,
	normalize(LabelKitchenServing):  TagKitchenServing,
	normalize(LabelWiFi):            TagWiFi,
	"wifi":                          TagWiFi,
}

// Classify maps a tariff line to its special-item tag, or TagNone. Dispatch is
// by label lookup only; an administrator's additional lines in any category
// fall through to TagNone.
func Classify(category, label string) Tag {
	return specialLabels[normalize(label)]
}

// ClassOf reports how quantities for a tariff line are produced.
func ClassOf(category, label string) Class {
	if Classify(category, label) != TagNone {
		return ClassFlag
	}
	nc := normalize(category)
	switch nc {
	case normalize(CategoryHallHire), normalize(CategoryMeetingRoom):
		return ClassProrated
	case normalize(CategorySpotlights):
		return ClassFlag
	case normalize(CategoryCrockery), normalize(CategoryCutlery), normalize(CategoryGlassware):
		return ClassCounted
	}
	return ClassCounted
}

// isCrockeryFamily reports whether a category belongs to the crockery,
// cutlery, glassware group that triggers the crockery-family deposit.
func isCrockeryFamily(category string) bool {
	nc := normalize(category)
	return nc == normalize(CategoryCrockery) ||
		nc == normalize(CategoryCutlery) ||
		nc == normalize(CategoryGlassware)
}

// isHallHire reports whether a category is the hall-hire rate block that
// triggers the hall deposit.
func isHallHire(category string) bool {
	return normalize(category) == normalize(CategoryHallHire)
}
