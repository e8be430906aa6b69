package price_court_slot

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CourtPricingService/internal/domain"
)

// RuleRepository интерфейс источника правил ценообразования
type RuleRepository interface {
	// FindCandidateRules получает правила филиала на день недели, которые могут подойти корту и дате
	FindCandidateRules(ctx context.Context, companyID, branchID, courtID int64, dayOfWeek time.Weekday, date time.Time) ([]*domain.PricingRule, error)
}

// Metrics интерфейс учета результатов расчета цены
type Metrics interface {
	IncPriceResolution(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
