package quote_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hallbook/internal/domain"
	"hallbook/internal/quote"
)

func TestDays(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       int
	}{
		{"single_day", "2025-06-01", "2025-06-01", 1},
		{"three_day_span", "2025-06-01", "2025-06-03", 3},
		{"inverted_range", "2025-06-03", "2025-06-01", 1},
		{"unparseable_start", "soon", "2025-06-03", 1},
		{"unparseable_end", "2025-06-01", "", 1},
		{"month_boundary", "2025-06-30", "2025-07-02", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, quote.Days(tt.start, tt.end))
		})
	}
}

func hallKey(label string) domain.ItemKey {
	return domain.ItemKey{Category: quote.CategoryHallHire, Label: label}
}

func TestHallHireQuantities_FullDay(t *testing.T) {
	req := &domain.BookingRequest{
		Space:          domain.SpaceMainHall,
		EventStartDate: "2025-06-01",
		EventEndDate:   "2025-06-03",
		TimeSelection:  domain.TimeFullDay,
	}
	got := quote.HallHireQuantities(req)

	assert.Equal(t, 3, got[hallKey(quote.LabelDayRate)])
	assert.NotContains(t, got, hallKey(quote.LabelFirstHour))
	assert.NotContains(t, got, hallKey(quote.LabelAfterFirstHour))
}

func TestHallHireQuantities_PartDaySelections(t *testing.T) {
	tests := []struct {
		name      string
		sel       domain.TimeSelection
		wantAfter int // per day, first-hour is always 1/day
	}{
		{"morning_4h", domain.TimeMorning, 3},
		{"afternoon_5h", domain.TimeAfternoon, 4},
		{"evening_6h", domain.TimeEvening, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &domain.BookingRequest{
				Space:          domain.SpaceMainHall,
				EventStartDate: "2025-06-01",
				EventEndDate:   "2025-06-02",
				TimeSelection:  tt.sel,
			}
			got := quote.HallHireQuantities(req)
			assert.Equal(t, 2, got[hallKey(quote.LabelFirstHour)])
			assert.Equal(t, 2*tt.wantAfter, got[hallKey(quote.LabelAfterFirstHour)])
		})
	}
}

func TestHallHireQuantities_AfternoonSingleDay(t *testing.T) {
	req := &domain.BookingRequest{
		Space:          domain.SpaceMainHall,
		EventStartDate: "2025-06-01",
		EventEndDate:   "2025-06-01",
		TimeSelection:  domain.TimeAfternoon,
	}
	got := quote.HallHireQuantities(req)

	assert.Equal(t, 1, got[hallKey(quote.LabelFirstHour)])
	assert.Equal(t, 4, got[hallKey(quote.LabelAfterFirstHour)])
}

func TestHallHireQuantities_CustomCrossMidnight(t *testing.T) {
	req := &domain.BookingRequest{
		Space:          domain.SpaceMainHall,
		EventStartDate: "2025-06-01",
		EventEndDate:   "2025-06-02",
		TimeSelection:  domain.TimeCustom,
		CustomStart:    "22:00",
		CustomEnd:      "02:00",
	}
	got := quote.HallHireQuantities(req)

	// 22:00-02:00 normalizes to 4 hours, never negative.
	assert.Equal(t, 2, got[hallKey(quote.LabelFirstHour)])
	assert.Equal(t, 2*3, got[hallKey(quote.LabelAfterFirstHour)])
}

func TestHallHireQuantities_CustomOneHour(t *testing.T) {
	req := &domain.BookingRequest{
		Space:          domain.SpaceMainHall,
		EventStartDate: "2025-06-01",
		EventEndDate:   "2025-06-01",
		TimeSelection:  domain.TimeCustom,
		CustomStart:    "10:00",
		CustomEnd:      "11:00",
	}
	got := quote.HallHireQuantities(req)

	assert.Equal(t, 1, got[hallKey(quote.LabelFirstHour)])
	assert.NotContains(t, got, hallKey(quote.LabelAfterFirstHour))
}

func TestHallHireQuantities_UnknownSelectionFallsBack(t *testing.T) {
	req := &domain.BookingRequest{
		Space:          domain.SpaceMainHall,
		EventStartDate: "2025-06-01",
		EventEndDate:   "2025-06-01",
		TimeSelection:  domain.TimeSelection("Weekend Special"),
	}
	got := quote.HallHireQuantities(req)

	// Fallback window is 08:00-17:00, nine hours.
	assert.Equal(t, 1, got[hallKey(quote.LabelFirstHour)])
	assert.Equal(t, 8, got[hallKey(quote.LabelAfterFirstHour)])
}

func TestHallHireQuantities_MeetingRoomOnly(t *testing.T) {
	req := &domain.BookingRequest{
		Space:          domain.SpaceMeetingRoom,
		EventStartDate: "2025-06-01",
		EventEndDate:   "2025-06-01",
		TimeSelection:  domain.TimeMorning,
	}
	got := quote.HallHireQuantities(req)

	mr := domain.ItemKey{Category: quote.CategoryMeetingRoom, Label: quote.LabelFirstHour}
	assert.Equal(t, 1, got[mr])
	assert.NotContains(t, got, hallKey(quote.LabelFirstHour))
	assert.NotContains(t, got, hallKey(quote.LabelDayRate))
}

func TestHallHireQuantities_BothSpacesBillsMainHallOnly(t *testing.T) {
	req := &domain.BookingRequest{
		Space:          domain.SpaceBothSpaces,
		EventStartDate: "2025-06-01",
		EventEndDate:   "2025-06-01",
		TimeSelection:  domain.TimeEvening,
	}
	got := quote.HallHireQuantities(req)

	assert.Equal(t, 1, got[hallKey(quote.LabelFirstHour)])
	for key := range got {
		assert.NotEqual(t, quote.CategoryMeetingRoom, key.Category)
	}
}
