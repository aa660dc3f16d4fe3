package quote

import (
	"strconv"
	"strings"
	"time"

	"hallbook/internal/domain"
)

const dateLayout = "2006-01-02"

// Fallback window applied when the time selection is unknown or missing.
const (
	fallbackStartHour = 8
	fallbackEndHour   = 17
)

// Days returns the inclusive whole-day count between two dates. Unparseable
// dates and inverted ranges both degrade to 1; a single-day booking is 1.
func Days(startDate, endDate string) int {
	start, err1 := time.Parse(dateLayout, strings.TrimSpace(startDate))
	end, err2 := time.Parse(dateLayout, strings.TrimSpace(endDate))
	if err1 != nil || err2 != nil {
		return 1
	}
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

// parseHour extracts the hour component of an HH:MM value. Minutes are
// ignored for duration purposes.
func parseHour(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	h, _, _ := strings.Cut(s, ":")
	n, err := strconv.Atoi(h)
	if err != nil {
		return 0, false
	}
	if n < 0 || n > 24 {
		return 0, false
	}
	return n, true
}

// window returns the billable start and end hours for a time selection.
// Custom end hours at or before the start roll over midnight. Selections the
// engine does not recognise fall back to the 08:00-17:00 window.
func window(sel domain.TimeSelection, customStart, customEnd string) (startHour, endHour int) {
	switch sel {
	case domain.TimeFullDay:
		return 8, 24
	case domain.TimeMorning:
		return 8, 12
	case domain.TimeAfternoon:
		return 13, 18
	case domain.TimeEvening:
		return 18, 24
	case domain.TimeCustom:
		start, okS := parseHour(customStart)
		end, okE := parseHour(customEnd)
		if !okS || !okE {
			return fallbackStartHour, fallbackEndHour
		}
		if end <= start {
			end += 24
		}
		return start, end
	}
	return fallbackStartHour, fallbackEndHour
}

// HallHireQuantities derives the prorated hire line quantities for a booking
// request. Full-day Main Hall bookings bill the day rate; every other
// selection bills one first-hour unit per day plus the remaining hours.
// Meeting-room-only bookings bill the meeting room's hourly lines under the
// same duration rules; "Both Spaces" bills Main Hall rates only.
func HallHireQuantities(req *domain.BookingRequest) map[domain.ItemKey]int {
	days := Days(req.EventStartDate, req.EventEndDate)
	out := make(map[domain.ItemKey]int, 2)

	if req.Space == domain.SpaceMeetingRoom {
		fillHourly(out, CategoryMeetingRoom, days, req)
		return out
	}

	if req.TimeSelection == domain.TimeFullDay {
		out[domain.ItemKey{Category: CategoryHallHire, Label: LabelDayRate}] = days
		return out
	}
	fillHourly(out, CategoryHallHire, days, req)
	return out
}

func fillHourly(out map[domain.ItemKey]int, category string, days int, req *domain.BookingRequest) {
	start, end := window(req.TimeSelection, req.CustomStart, req.CustomEnd)
	duration := end - start
	if duration < 0 {
		duration = 0
	}
	out[domain.ItemKey{Category: category, Label: LabelFirstHour}] = days
	after := 0
	if duration > 1 {
		after = days * (duration - 1)
	}
	if after > 0 {
		out[domain.ItemKey{Category: category, Label: LabelAfterFirstHour}] = after
	}
}
