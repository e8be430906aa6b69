package pricingrules

import (
	"context"

	"github.com/m04kA/SMC-CourtPricingService/internal/domain"
)

// RuleRepository интерфейс репозитория правил ценообразования
type RuleRepository interface {
	Create(ctx context.Context, rule *domain.PricingRule) (*domain.PricingRule, error)
	GetByID(ctx context.Context, id int64) (*domain.PricingRule, error)
	ListByBranch(ctx context.Context, companyID, branchID int64, courtID *int64) ([]*domain.PricingRule, error)
	SoftDelete(ctx context.Context, id int64) error
}

// VenueServiceClient интерфейс клиента сервиса площадок
type VenueServiceClient interface {
	CheckCourtWithGracefulDegradation(ctx context.Context, companyID, branchID int64, courtID *int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
