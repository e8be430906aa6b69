package get_pricing_rule

import (
	"context"

	"github.com/m04kA/SMC-CourtPricingService/internal/service/pricingrules/models"
)

type RuleService interface {
	GetByID(ctx context.Context, id int64) (*models.RuleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
