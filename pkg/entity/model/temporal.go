package model

import "time"

// DayPeriod is the coarse time-of-day bucket a post falls into.
type DayPeriod string

const (
	PeriodMorning   DayPeriod = "Morning"
	PeriodAfternoon DayPeriod = "Afternoon"
	PeriodEvening   DayPeriod = "Evening"
	PeriodOvernight DayPeriod = "Overnight"
)

// PeriodOrder is the canonical presentation order of day periods. Outputs
// over this axis always carry all four buckets in this order.
var PeriodOrder = []DayPeriod{
	PeriodMorning,
	PeriodAfternoon,
	PeriodEvening,
	PeriodOvernight,
}

// WeekdayOrder is the canonical Monday-first presentation order. The names
// are a fixed vocabulary; day naming must never depend on the host locale.
var WeekdayOrder = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// weekdayNames maps time.Weekday (Sunday-first) to the canonical vocabulary.
var weekdayNames = [7]string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

// WeekdayName returns the canonical weekday name for t.
func WeekdayName(t time.Time) string {
	return weekdayNames[int(t.Weekday())]
}

// PeriodOfHour buckets an hour of day: Morning [5,12), Afternoon [12,18),
// Evening [18,23), Overnight [23,24) and [0,5).
func PeriodOfHour(hour int) DayPeriod {
	switch {
	case hour >= 5 && hour < 12:
		return PeriodMorning
	case hour >= 12 && hour < 18:
		return PeriodAfternoon
	case hour >= 18 && hour < 23:
		return PeriodEvening
	default:
		return PeriodOvernight
	}
}

// ClassifiedPost is a post with its temporal buckets attached.
type ClassifiedPost struct {
	*Post
	DayOfWeek string    `json:"dayOfWeek"`
	Period    DayPeriod `json:"periodOfDay"`
}
