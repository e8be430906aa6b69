package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CourtPricingService/pkg/types"
)

// Slot represents a requested court booking time range
type Slot struct {
	CompanyID int64
	BranchID  int64
	CourtID   int64
	Start     time.Time
	End       time.Time
}

// Weekday returns the weekday of the slot start
func (s Slot) Weekday() time.Weekday {
	return s.Start.Weekday()
}

// Date returns the calendar date of the slot start
func (s Slot) Date() time.Time {
	return DateOnly(s.Start)
}

// StartTimeOfDay returns the time of day of the slot start
func (s Slot) StartTimeOfDay() types.TimeString {
	return types.NewTimeString(s.Start)
}

// EndTimeOfDay returns the time of day of the slot end.
// An end exactly at the midnight following the start date is reported as 24:00.
func (s Slot) EndTimeOfDay() types.TimeString {
	if s.EndsAtNextMidnight() {
		return types.EndOfDay
	}
	return types.NewTimeString(s.End.In(s.Start.Location()))
}

// EndsAtNextMidnight returns true if the slot ends exactly at 00:00 of the day after its start
func (s Slot) EndsAtNextMidnight() bool {
	end := s.End.In(s.Start.Location())
	nextDay := DateOnly(s.Start).AddDate(0, 0, 1)
	return DateOnly(end).Equal(nextDay) &&
		end.Hour() == 0 && end.Minute() == 0 && end.Second() == 0 && end.Nanosecond() == 0
}

// IsSingleDay returns true if the slot starts and ends on the same calendar day
// (an end at the following midnight still counts as the same day)
func (s Slot) IsSingleDay() bool {
	end := s.End.In(s.Start.Location())
	return DateOnly(end).Equal(DateOnly(s.Start)) || s.EndsAtNextMidnight()
}

// DurationMinutes returns the whole minutes between start and end, never negative
func (s Slot) DurationMinutes() int {
	minutes := int(s.End.Sub(s.Start) / time.Minute)
	if minutes < 0 {
		return 0
	}
	return minutes
}

// PricingResult is the price of a slot. Rule is nil when no pricing rule matched.
type PricingResult struct {
	Currency        string
	HourlyRate      decimal.Decimal
	Total           decimal.Decimal
	DurationMinutes int
	Rule            *PricingRule
}

// IsPriced returns true if a pricing rule was applied
func (r PricingResult) IsPriced() bool {
	return r.Rule != nil
}
