package price_court_slot

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtPricingService/internal/domain"
	"github.com/m04kA/SMC-CourtPricingService/internal/pricing"
)

// UseCase use case для расчета цены слота корта
type UseCase struct {
	ruleRepo    RuleRepository
	metrics     Metrics
	requireRule bool
	logger      Logger
}

// NewUseCase создает новый экземпляр use case.
// Если requireRule = true, слот без подходящего правила отклоняется с ErrNoPricingRule,
// иначе возвращается нулевая цена в валюте по умолчанию.
func NewUseCase(
	ruleRepo RuleRepository,
	metrics Metrics,
	requireRule bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		ruleRepo:    ruleRepo,
		metrics:     metrics,
		requireRule: requireRule,
		logger:      logger,
	}
}

// Execute выполняет use case расчета цены слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PriceCourtSlot: company=%d, branch=%d, court=%d, start=%s, end=%s",
		req.CompanyID, req.BranchID, req.CourtID, req.Start.Format(time.RFC3339), req.End.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("PriceCourtSlot: validation failed: %v", err)
		return nil, err
	}

	slot := domain.Slot{
		CompanyID: req.CompanyID,
		BranchID:  req.BranchID,
		CourtID:   req.CourtID,
		Start:     req.Start,
		End:       req.End,
	}

	if err := validateSlot(slot); err != nil {
		uc.logger.Warn("PriceCourtSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем кандидатов: правила корта и всего филиала на этот день недели и дату
	candidates, err := uc.ruleRepo.FindCandidateRules(ctx, req.CompanyID, req.BranchID, req.CourtID,
		slot.Weekday(), slot.Date())
	if err != nil {
		uc.logger.Error("PriceCourtSlot: failed to get pricing rules for company=%d, branch=%d, court=%d: %v",
			req.CompanyID, req.BranchID, req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get pricing rules: %v", ErrInternal, err)
	}

	// 3. Выбираем правило и считаем цену
	result := pricing.PriceSlot(slot, candidates)

	// 4. Нет подходящего правила
	if !result.IsPriced() {
		if uc.requireRule {
			uc.observe(outcomeRejected)
			uc.logger.Warn("PriceCourtSlot: no pricing rule for court=%d on %s %s-%s (%d candidates)",
				req.CourtID, slot.Weekday(), slot.StartTimeOfDay(), slot.EndTimeOfDay(), len(candidates))
			return nil, ErrNoPricingRule
		}

		uc.observe(outcomeFallback)
		uc.logger.Warn("PriceCourtSlot: no pricing rule for court=%d on %s %s-%s, using zero price",
			req.CourtID, slot.Weekday(), slot.StartTimeOfDay(), slot.EndTimeOfDay())
		return toResponse(result), nil
	}

	// 5. Фиксируем уровень примененного правила
	if result.Rule.IsCourtSpecific() {
		uc.observe(outcomeCourt)
	} else {
		uc.observe(outcomeBranch)
	}

	uc.logger.Info("PriceCourtSlot: court=%d priced by rule id=%d (scope: %s): %s %s for %d min",
		req.CourtID, result.Rule.ID, result.Rule.Scope.Kind(),
		result.Total.StringFixed(domain.MoneyScale), result.Currency, result.DurationMinutes)

	return toResponse(result), nil
}

func (uc *UseCase) observe(outcome string) {
	if uc.metrics != nil {
		uc.metrics.IncPriceResolution(outcome)
	}
}

func toResponse(result domain.PricingResult) *Response {
	return &Response{
		Currency:        result.Currency,
		HourlyRate:      result.HourlyRate,
		Total:           result.Total,
		DurationMinutes: result.DurationMinutes,
		Matched:         result.IsPriced(),
		Rule:            result.Rule,
	}
}
