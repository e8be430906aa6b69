package pricingrule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtPricingService/internal/domain"
)

// RuleRepository источник правил, который оборачивает кэш
type RuleRepository interface {
	FindCandidateRules(ctx context.Context, companyID, branchID, courtID int64, dayOfWeek time.Weekday, date time.Time) ([]*domain.PricingRule, error)
	Create(ctx context.Context, rule *domain.PricingRule) (*domain.PricingRule, error)
	GetByID(ctx context.Context, id int64) (*domain.PricingRule, error)
	ListByBranch(ctx context.Context, companyID, branchID int64, courtID *int64) ([]*domain.PricingRule, error)
	SoftDelete(ctx context.Context, id int64) error
}

// Metrics счетчик попаданий и промахов кэша
type Metrics interface {
	IncCacheResult(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
