package price_court_slot

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-CourtPricingService/internal/domain"
)

// Request модель запроса на расчет цены слота
type Request struct {
	CompanyID int64     // ID компании
	BranchID  int64     // ID филиала
	CourtID   int64     // ID корта
	Start     time.Time // Начало слота
	End       time.Time // Конец слота (допускается ровно следующая полночь)
}

// Response модель ответа с ценой слота
type Response struct {
	Currency        string              // Валюта цены
	HourlyRate      decimal.Decimal     // Цена за час примененного правила (0, если правило не найдено)
	Total           decimal.Decimal     // Итоговая цена, округленная до 2 знаков
	DurationMinutes int                 // Длительность слота в минутах
	Matched         bool                // Было ли найдено правило
	Rule            *domain.PricingRule // Примененное правило, nil если не найдено
}

// Исходы расчета цены для метрик
const (
	outcomeCourt    = "court"
	outcomeBranch   = "branch"
	outcomeFallback = "fallback"
	outcomeRejected = "rejected"
)
