package get_court_price

import (
	"context"

	"github.com/m04kA/SMC-CourtPricingService/internal/usecase/price_court_slot"
)

type PriceUseCase interface {
	Execute(ctx context.Context, req *price_court_slot.Request) (*price_court_slot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
