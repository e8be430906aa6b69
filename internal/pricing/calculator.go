package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CourtPricingService/internal/domain"
)

var minutesPerHour = decimal.NewFromInt(domain.MinutesPerHour)

// Price computes the charge for the slot under the given rule.
// A nil rule yields the zero-price fallback in DefaultCurrency.
// Negative durations are clamped to zero; the total is rounded half-up to two decimals.
func Price(rule *domain.PricingRule, slot domain.Slot) domain.PricingResult {
	minutes := slot.DurationMinutes()

	if rule == nil {
		return domain.PricingResult{
			Currency:        domain.DefaultCurrency,
			HourlyRate:      decimal.Zero,
			Total:           decimal.Zero,
			DurationMinutes: minutes,
		}
	}

	total := rule.PricePerHour.
		Mul(decimal.NewFromInt(int64(minutes))).
		DivRound(minutesPerHour, domain.MoneyScale)

	return domain.PricingResult{
		Currency:        rule.Currency,
		HourlyRate:      rule.PricePerHour,
		Total:           total,
		DurationMinutes: minutes,
		Rule:            rule,
	}
}

// PriceSlot resolves the applicable rule among candidates and prices the slot with it
func PriceSlot(slot domain.Slot, candidates []*domain.PricingRule) domain.PricingResult {
	return Price(Resolve(slot, candidates), slot)
}
