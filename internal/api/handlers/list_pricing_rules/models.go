package list_pricing_rules

import (
	"strconv"

	"github.com/m04kA/SMC-CourtPricingService/pkg/ptr"
)

// parseCourtID разбирает опциональный query параметр courtId; пустая строка означает все корты
func parseCourtID(courtIDStr string) (*int64, error) {
	if courtIDStr == "" {
		return nil, nil
	}

	courtID, err := strconv.ParseInt(courtIDStr, 10, 64)
	if err != nil {
		return nil, err
	}

	return ptr.Ptr(courtID), nil
}
