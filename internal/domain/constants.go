package domain

// Pricing defaults
const (
	// DefaultCurrency валюта правила, если не указана, и валюта нулевой цены при отсутствии правила
	DefaultCurrency = "USD"
	// DefaultPriority приоритет правила, если не указан
	DefaultPriority = 100
)

// Business validation constants
const (
	MinDayOfWeek       = 0 // Sunday
	MaxDayOfWeek       = 6 // Saturday
	CurrencyCodeLength = 3
	MaxRuleNameLength  = 255
	MinutesPerHour     = 60
	MoneyScale         = 2 // знаков после запятой в итоговой сумме
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
