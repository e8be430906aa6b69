// Package pricing resolves which court pricing rule applies to a slot and prices the slot.
// Everything here is a pure function of its inputs and is safe for concurrent use.
package pricing

import (
	"github.com/samber/lo"

	"github.com/m04kA/SMC-CourtPricingService/internal/domain"
)

// Resolve returns the highest-ranked rule eligible for the slot, or nil if none is eligible.
//
// Precedence among eligible rules:
//  1. court-specific rules rank above branch-wide rules;
//  2. lower Priority ranks higher;
//  3. lower ID ranks higher, so the result never depends on candidate order.
func Resolve(slot domain.Slot, candidates []*domain.PricingRule) *domain.PricingRule {
	eligible := Eligible(slot, candidates)
	if len(eligible) == 0 {
		return nil
	}
	return lo.MinBy(eligible, Outranks)
}

// Eligible returns the candidates that may price the slot, in their original order
func Eligible(slot domain.Slot, candidates []*domain.PricingRule) []*domain.PricingRule {
	return lo.Filter(candidates, func(rule *domain.PricingRule, _ int) bool {
		return IsEligible(rule, slot)
	})
}

// IsEligible checks a single rule against the slot: tenant and scope, weekday,
// full containment of the slot time range and the inclusive effective window
func IsEligible(rule *domain.PricingRule, slot domain.Slot) bool {
	if rule == nil || rule.IsDeleted() {
		return false
	}
	if rule.CompanyID != slot.CompanyID || rule.BranchID != slot.BranchID {
		return false
	}
	if !rule.AppliesToCourt(slot.CourtID) {
		return false
	}
	if rule.DayOfWeek != slot.Weekday() {
		return false
	}
	if !rule.ContainsTimes(slot.StartTimeOfDay(), slot.EndTimeOfDay()) {
		return false
	}
	return rule.CoversDate(slot.Date())
}

// Outranks reports whether rule a takes precedence over rule b
func Outranks(a, b *domain.PricingRule) bool {
	if a.IsCourtSpecific() != b.IsCourtSpecific() {
		return a.IsCourtSpecific()
	}
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return a.ID < b.ID
}
