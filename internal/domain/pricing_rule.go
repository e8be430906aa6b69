package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CourtPricingService/pkg/types"
)

// PricingRule represents an hourly court price active on one weekday within a time window.
// Rules are scoped to a branch and optionally narrowed to a single court.
type PricingRule struct {
	ID        int64
	CompanyID int64
	BranchID  int64
	Scope     Scope
	Name      string

	DayOfWeek time.Weekday // 0 = Sunday ... 6 = Saturday
	StartTime types.TimeString
	EndTime   types.TimeString // may be 24:00

	PricePerHour decimal.Decimal
	Currency     string

	EffectiveFrom *time.Time // inclusive, nil = unbounded
	EffectiveTo   *time.Time // inclusive, nil = unbounded

	Priority int // lower value = higher precedence

	DeletedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCourtSpecific returns true if the rule is bound to a single court
func (r *PricingRule) IsCourtSpecific() bool {
	return r.Scope.IsCourtSpecific()
}

// IsDeleted returns true if the rule was soft-deleted
func (r *PricingRule) IsDeleted() bool {
	return r.DeletedAt != nil
}

// AppliesToCourt returns true if the rule scope covers the court
func (r *PricingRule) AppliesToCourt(courtID int64) bool {
	return r.Scope.Covers(courtID)
}

// ContainsTimes returns true if [start, end] lies fully inside the rule window.
// Partial overlap does not count.
func (r *PricingRule) ContainsTimes(start, end types.TimeString) bool {
	return !r.StartTime.IsAfter(start) && !r.EndTime.IsBefore(end)
}

// CoversDate returns true if the calendar date lies inside the inclusive effective window
func (r *PricingRule) CoversDate(date time.Time) bool {
	day := DateOnly(date)
	if r.EffectiveFrom != nil && DateOnly(*r.EffectiveFrom).After(day) {
		return false
	}
	if r.EffectiveTo != nil && DateOnly(*r.EffectiveTo).Before(day) {
		return false
	}
	return true
}

// DateOnly truncates t to its calendar date (in t's own location) expressed as UTC midnight,
// so dates coming from different locations compare by year/month/day only
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
