package get_court_price

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtPricingService/internal/domain"
	"github.com/m04kA/SMC-CourtPricingService/internal/service/pricingrules/models"
	"github.com/m04kA/SMC-CourtPricingService/internal/usecase/price_court_slot"
)

// PriceResponse HTTP response model
type PriceResponse struct {
	Currency        string               `json:"currency"`
	HourlyRate      string               `json:"hourlyRate"`
	Total           string               `json:"total"`
	DurationMinutes int                  `json:"durationMinutes"`
	Matched         bool                 `json:"matched"`
	Rule            *models.RuleResponse `json:"rule,omitempty"`
}

// ToUseCaseRequest формирует запрос к use case из параметров пути и query параметров start, end (RFC3339)
func ToUseCaseRequest(companyID, branchID, courtID int64, startStr, endStr string) (*price_court_slot.Request, error) {
	if startStr == "" || endStr == "" {
		return nil, errors.New("start and end are required")
	}

	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		return nil, fmt.Errorf("invalid start: %w", err)
	}

	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		return nil, fmt.Errorf("invalid end: %w", err)
	}

	return &price_court_slot.Request{
		CompanyID: companyID,
		BranchID:  branchID,
		CourtID:   courtID,
		Start:     start,
		End:       end,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель; суммы отдаются строкой с 2 знаками
func FromUseCaseResponse(resp *price_court_slot.Response) *PriceResponse {
	return &PriceResponse{
		Currency:        resp.Currency,
		HourlyRate:      resp.HourlyRate.StringFixed(domain.MoneyScale),
		Total:           resp.Total.StringFixed(domain.MoneyScale),
		DurationMinutes: resp.DurationMinutes,
		Matched:         resp.Matched,
		Rule:            models.FromDomainRule(resp.Rule),
	}
}
