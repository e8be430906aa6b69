package models

import (
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CourtPricingService/internal/domain"
	"github.com/m04kA/SMC-CourtPricingService/pkg/ptr"
	"github.com/m04kA/SMC-CourtPricingService/pkg/types"
)

// Request модели

// CreateRuleRequest запрос на создание правила ценообразования
type CreateRuleRequest struct {
	CompanyID     int64            `json:"-"`                       // из пути запроса
	BranchID      int64            `json:"-"`                       // из пути запроса
	CourtID       *int64           `json:"courtId,omitempty"`       // NULL = для всех кортов филиала
	Name          string           `json:"name"`
	DayOfWeek     int              `json:"dayOfWeek"`               // 0 = воскресенье ... 6 = суббота
	StartTime     types.TimeString `json:"startTime"`               // "HH:MM"
	EndTime       types.TimeString `json:"endTime"`                 // "HH:MM", допускается "24:00"
	PricePerHour  decimal.Decimal  `json:"pricePerHour"`            // "90.00" или 90
	Currency      string           `json:"currency,omitempty"`      // по умолчанию USD
	EffectiveFrom *string          `json:"effectiveFrom,omitempty"` // "YYYY-MM-DD", включительно
	EffectiveTo   *string          `json:"effectiveTo,omitempty"`   // "YYYY-MM-DD", включительно
	Priority      *int             `json:"priority,omitempty"`      // меньше = важнее, по умолчанию 100
}

// Response модели

// RuleResponse ответ с данными правила
type RuleResponse struct {
	ID            int64     `json:"id"`
	CompanyID     int64     `json:"companyId"`
	BranchID      int64     `json:"branchId"`
	CourtID       *int64    `json:"courtId,omitempty"`
	Scope         string    `json:"scope"` // court | branch
	Name          string    `json:"name"`
	DayOfWeek     int       `json:"dayOfWeek"`
	StartTime     string    `json:"startTime"`
	EndTime       string    `json:"endTime"`
	PricePerHour  string    `json:"pricePerHour"`
	Currency      string    `json:"currency"`
	EffectiveFrom *string   `json:"effectiveFrom,omitempty"`
	EffectiveTo   *string   `json:"effectiveTo,omitempty"`
	Priority      int       `json:"priority"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// RuleListResponse ответ со списком правил
type RuleListResponse struct {
	Rules []RuleResponse `json:"rules"`
}

// Методы конвертации

// FromDomainRule конвертирует domain модель в DTO
func FromDomainRule(r *domain.PricingRule) *RuleResponse {
	if r == nil {
		return nil
	}

	return &RuleResponse{
		ID:            r.ID,
		CompanyID:     r.CompanyID,
		BranchID:      r.BranchID,
		CourtID:       r.Scope.CourtIDPtr(),
		Scope:         r.Scope.Kind().String(),
		Name:          r.Name,
		DayOfWeek:     int(r.DayOfWeek),
		StartTime:     r.StartTime.String(),
		EndTime:       r.EndTime.String(),
		PricePerHour:  r.PricePerHour.StringFixed(domain.MoneyScale),
		Currency:      r.Currency,
		EffectiveFrom: formatDate(r.EffectiveFrom),
		EffectiveTo:   formatDate(r.EffectiveTo),
		Priority:      r.Priority,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// FromDomainRuleList конвертирует список domain моделей в DTO
func FromDomainRuleList(rules []*domain.PricingRule) *RuleListResponse {
	return &RuleListResponse{
		Rules: lo.FilterMap(rules, func(r *domain.PricingRule, _ int) (RuleResponse, bool) {
			if r == nil {
				return RuleResponse{}, false
			}
			return *FromDomainRule(r), true
		}),
	}
}

// ToDomainRule конвертирует CreateRuleRequest в domain модель.
// Даты должны быть уже проверены; валюта и приоритет подставляются по умолчанию.
func (r *CreateRuleRequest) ToDomainRule(effectiveFrom, effectiveTo *time.Time) *domain.PricingRule {
	return &domain.PricingRule{
		CompanyID:     r.CompanyID,
		BranchID:      r.BranchID,
		Scope:         domain.ScopeFromCourtID(r.CourtID),
		Name:          r.Name,
		DayOfWeek:     time.Weekday(r.DayOfWeek),
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		PricePerHour:  r.PricePerHour,
		Currency:      lo.Ternary(r.Currency == "", domain.DefaultCurrency, r.Currency),
		EffectiveFrom: effectiveFrom,
		EffectiveTo:   effectiveTo,
		Priority:      lo.FromPtrOr(r.Priority, domain.DefaultPriority),
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	return ptr.Ptr(t.Format(domain.DateFormat))
}
