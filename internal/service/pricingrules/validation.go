package pricingrules

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/m04kA/SMC-CourtPricingService/internal/domain"
	"github.com/m04kA/SMC-CourtPricingService/internal/service/pricingrules/models"
)

// normalizeCreateRequest убирает пробелы и приводит код валюты к верхнему регистру
func normalizeCreateRequest(req *models.CreateRuleRequest) {
	req.Name = strings.TrimSpace(req.Name)
	req.Currency = strings.ToUpper(strings.TrimSpace(req.Currency))
}

// validateCreateRequest валидирует запрос на создание правила
// и возвращает разобранные даты периода действия
func validateCreateRequest(req *models.CreateRuleRequest) (effectiveFrom, effectiveTo *time.Time, err error) {
	if req.CompanyID <= 0 {
		return nil, nil, fmt.Errorf("%w: companyID must be positive", ErrInvalidInput)
	}

	if req.BranchID <= 0 {
		return nil, nil, fmt.Errorf("%w: branchID must be positive", ErrInvalidInput)
	}

	if req.CourtID != nil && *req.CourtID <= 0 {
		return nil, nil, fmt.Errorf("%w: courtId must be positive", ErrInvalidInput)
	}

	if req.Name == "" {
		return nil, nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.Name) > domain.MaxRuleNameLength {
		return nil, nil, fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxRuleNameLength)
	}

	if req.DayOfWeek < domain.MinDayOfWeek || req.DayOfWeek > domain.MaxDayOfWeek {
		return nil, nil, fmt.Errorf("%w: dayOfWeek must be between %d and %d",
			ErrInvalidInput, domain.MinDayOfWeek, domain.MaxDayOfWeek)
	}

	if err := validateTimeWindow(req); err != nil {
		return nil, nil, err
	}

	if req.PricePerHour.IsNegative() {
		return nil, nil, fmt.Errorf("%w: pricePerHour must not be negative", ErrInvalidInput)
	}

	if req.Currency != "" && !isCurrencyCode(req.Currency) {
		return nil, nil, fmt.Errorf("%w: currency must be a %d-letter code", ErrInvalidInput, domain.CurrencyCodeLength)
	}

	effectiveFrom, err = parseDate("effectiveFrom", req.EffectiveFrom)
	if err != nil {
		return nil, nil, err
	}

	effectiveTo, err = parseDate("effectiveTo", req.EffectiveTo)
	if err != nil {
		return nil, nil, err
	}

	if effectiveFrom != nil && effectiveTo != nil && effectiveFrom.After(*effectiveTo) {
		return nil, nil, fmt.Errorf("%w: effectiveFrom must not be after effectiveTo", ErrInvalidInput)
	}

	return effectiveFrom, effectiveTo, nil
}

// validateTimeWindow проверяет окно времени правила: start < end, конец не позже 24:00
func validateTimeWindow(req *models.CreateRuleRequest) error {
	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	return nil
}

func isCurrencyCode(code string) bool {
	if len(code) != domain.CurrencyCodeLength {
		return false
	}
	for _, r := range code {
		if r > unicode.MaxASCII || !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func parseDate(field string, value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}

	parsed, err := time.Parse(domain.DateFormat, *value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be in format YYYY-MM-DD", ErrInvalidInput, field)
	}

	return &parsed, nil
}
