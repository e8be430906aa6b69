package list_pricing_rules

import (
	"context"

	"github.com/m04kA/SMC-CourtPricingService/internal/service/pricingrules/models"
)

type RuleService interface {
	ListByBranch(ctx context.Context, companyID, branchID int64, courtID *int64) (*models.RuleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
