package create_pricing_rule

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CourtPricingService/internal/service/pricingrules/models"
	"github.com/m04kA/SMC-CourtPricingService/pkg/types"
)

// CreatePricingRuleRequest HTTP request model
type CreatePricingRuleRequest struct {
	CourtID       *int64           `json:"courtId,omitempty"`
	Name          string           `json:"name"`
	DayOfWeek     int              `json:"dayOfWeek"`
	StartTime     types.TimeString `json:"startTime"`
	EndTime       types.TimeString `json:"endTime"`
	PricePerHour  decimal.Decimal  `json:"pricePerHour"`
	Currency      string           `json:"currency,omitempty"`
	EffectiveFrom *string          `json:"effectiveFrom,omitempty"`
	EffectiveTo   *string          `json:"effectiveTo,omitempty"`
	Priority      *int             `json:"priority,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreatePricingRuleRequest) ToServiceRequest(companyID, branchID int64) *models.CreateRuleRequest {
	return &models.CreateRuleRequest{
		CompanyID:     companyID,
		BranchID:      branchID,
		CourtID:       r.CourtID,
		Name:          r.Name,
		DayOfWeek:     r.DayOfWeek,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		PricePerHour:  r.PricePerHour,
		Currency:      r.Currency,
		EffectiveFrom: r.EffectiveFrom,
		EffectiveTo:   r.EffectiveTo,
		Priority:      r.Priority,
	}
}
