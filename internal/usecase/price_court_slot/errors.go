package price_court_slot

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidTimeRange возвращается, когда начало слота не раньше его конца
	ErrInvalidTimeRange = errors.New("slot start must be before end")

	// ErrSlotSpansMidnight возвращается, когда слот переходит через полночь
	ErrSlotSpansMidnight = errors.New("slot must start and end on the same day")

	// ErrNoPricingRule возвращается в строгом режиме, когда ни одно правило не подошло
	ErrNoPricingRule = errors.New("no pricing rule matches the slot")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
