package price_court_slot

import (
	"fmt"

	"github.com/m04kA/SMC-CourtPricingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CompanyID <= 0 {
		return fmt.Errorf("%w: companyID must be positive", ErrInvalidInput)
	}

	if req.BranchID <= 0 {
		return fmt.Errorf("%w: branchID must be positive", ErrInvalidInput)
	}

	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if req.Start.IsZero() || req.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}

	if !req.Start.Before(req.End) {
		return ErrInvalidTimeRange
	}

	return nil
}

// validateSlot проверяет, что слот укладывается в один календарный день
func validateSlot(slot domain.Slot) error {
	if !slot.IsSingleDay() {
		return ErrSlotSpansMidnight
	}
	return nil
}
