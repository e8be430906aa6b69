package pricingrule

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CourtPricingService/internal/domain"
	"github.com/m04kA/SMC-CourtPricingService/pkg/types"
)

// cachedRule представление правила в кэше
type cachedRule struct {
	ID            int64            `json:"id"`
	CompanyID     int64            `json:"company_id"`
	BranchID      int64            `json:"branch_id"`
	CourtID       *int64           `json:"court_id,omitempty"`
	Name          string           `json:"name"`
	DayOfWeek     int              `json:"day_of_week"`
	StartTime     types.TimeString `json:"start_time"`
	EndTime       types.TimeString `json:"end_time"`
	PricePerHour  decimal.Decimal  `json:"price_per_hour"`
	Currency      string           `json:"currency"`
	EffectiveFrom *time.Time       `json:"effective_from,omitempty"`
	EffectiveTo   *time.Time       `json:"effective_to,omitempty"`
	Priority      int              `json:"priority"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

func fromDomain(rule *domain.PricingRule) cachedRule {
	return cachedRule{
		ID:            rule.ID,
		CompanyID:     rule.CompanyID,
		BranchID:      rule.BranchID,
		CourtID:       rule.Scope.CourtIDPtr(),
		Name:          rule.Name,
		DayOfWeek:     int(rule.DayOfWeek),
		StartTime:     rule.StartTime,
		EndTime:       rule.EndTime,
		PricePerHour:  rule.PricePerHour,
		Currency:      rule.Currency,
		EffectiveFrom: rule.EffectiveFrom,
		EffectiveTo:   rule.EffectiveTo,
		Priority:      rule.Priority,
		CreatedAt:     rule.CreatedAt,
		UpdatedAt:     rule.UpdatedAt,
	}
}

func (c cachedRule) toDomain() *domain.PricingRule {
	return &domain.PricingRule{
		ID:            c.ID,
		CompanyID:     c.CompanyID,
		BranchID:      c.BranchID,
		Scope:         domain.ScopeFromCourtID(c.CourtID),
		Name:          c.Name,
		DayOfWeek:     time.Weekday(c.DayOfWeek),
		StartTime:     c.StartTime,
		EndTime:       c.EndTime,
		PricePerHour:  c.PricePerHour,
		Currency:      c.Currency,
		EffectiveFrom: c.EffectiveFrom,
		EffectiveTo:   c.EffectiveTo,
		Priority:      c.Priority,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
