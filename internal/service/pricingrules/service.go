package pricingrules

import (
	"context"
	"errors"
	"fmt"

	ruleRepo "github.com/m04kA/SMC-CourtPricingService/internal/infra/storage/pricingrule"
	venueClient "github.com/m04kA/SMC-CourtPricingService/internal/integrations/venueservice"
	"github.com/m04kA/SMC-CourtPricingService/internal/service/pricingrules/models"
)

// Service сервис управления правилами ценообразования кортов
type Service struct {
	ruleRepo    RuleRepository
	venueClient VenueServiceClient
	logger      Logger
}

// NewService создает новый экземпляр сервиса правил.
// venueClient может быть nil - тогда существование филиала и корта не проверяется.
func NewService(
	ruleRepo RuleRepository,
	venueClient VenueServiceClient,
	logger Logger,
) *Service {
	return &Service{
		ruleRepo:    ruleRepo,
		venueClient: venueClient,
		logger:      logger,
	}
}

// Create создает новое правило ценообразования
// Проверяет существование филиала (и корта, если правило привязано к корту)
func (s *Service) Create(ctx context.Context, req *models.CreateRuleRequest) (*models.RuleResponse, error) {
	s.logger.Info("Create: creating pricing rule for company=%d, branch=%d, court=%v, day=%d",
		req.CompanyID, req.BranchID, req.CourtID, req.DayOfWeek)

	// 1. Нормализуем и валидируем входные данные
	normalizeCreateRequest(req)
	effectiveFrom, effectiveTo, err := validateCreateRequest(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем филиал и корт в сервисе площадок
	if err := s.checkVenue(ctx, req); err != nil {
		return nil, err
	}

	// 3. Создаем правило
	createdRule, err := s.ruleRepo.Create(ctx, req.ToDomainRule(effectiveFrom, effectiveTo))
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created pricing rule id=%d (scope: %s)",
		createdRule.ID, createdRule.Scope.Kind())
	return models.FromDomainRule(createdRule), nil
}

// GetByID получает правило по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.RuleResponse, error) {
	s.logger.Info("GetByID: fetching pricing rule id=%d", id)

	rule, err := s.ruleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			s.logger.Warn("GetByID: pricing rule id=%d not found", id)
			return nil, ErrRuleNotFound
		}
		s.logger.Error("GetByID: repository error for pricing rule id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRule(rule), nil
}

// ListByBranch получает правила филиала
// Если courtID задан - правила этого корта и правила всего филиала
func (s *Service) ListByBranch(ctx context.Context, companyID, branchID int64, courtID *int64) (*models.RuleListResponse, error) {
	s.logger.Info("ListByBranch: fetching pricing rules for company=%d, branch=%d, court=%v",
		companyID, branchID, courtID)

	if companyID <= 0 || branchID <= 0 {
		return nil, fmt.Errorf("%w: companyID and branchID must be positive", ErrInvalidInput)
	}
	if courtID != nil && *courtID <= 0 {
		return nil, fmt.Errorf("%w: courtId must be positive", ErrInvalidInput)
	}

	rules, err := s.ruleRepo.ListByBranch(ctx, companyID, branchID, courtID)
	if err != nil {
		s.logger.Error("ListByBranch: repository error for company=%d, branch=%d: %v", companyID, branchID, err)
		return nil, fmt.Errorf("%w: ListByBranch - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByBranch: successfully fetched %d pricing rules for company=%d, branch=%d",
		len(rules), companyID, branchID)
	return models.FromDomainRuleList(rules), nil
}

// Delete мягко удаляет правило; удаленное правило больше не участвует в расчете цены
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting pricing rule id=%d", id)

	if err := s.ruleRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			s.logger.Warn("Delete: pricing rule id=%d not found", id)
			return ErrRuleNotFound
		}
		s.logger.Error("Delete: repository error for pricing rule id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted pricing rule id=%d", id)
	return nil
}

// Вспомогательные методы

// checkVenue проверяет существование филиала и корта.
// При недоступности сервиса площадок проверка пропускается.
func (s *Service) checkVenue(ctx context.Context, req *models.CreateRuleRequest) error {
	if s.venueClient == nil {
		return nil
	}

	err := s.venueClient.CheckCourtWithGracefulDegradation(ctx, req.CompanyID, req.BranchID, req.CourtID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, venueClient.ErrBranchNotFound):
		s.logger.Warn("Create: branch id=%d not found in company=%d", req.BranchID, req.CompanyID)
		return ErrBranchNotFound
	case errors.Is(err, venueClient.ErrCourtNotFound):
		s.logger.Warn("Create: court id=%v not found in branch=%d", req.CourtID, req.BranchID)
		return ErrCourtNotFound
	case errors.Is(err, venueClient.ErrServiceDegraded):
		s.logger.Warn("Create: skipping venue check: %v", err)
		return nil
	default:
		s.logger.Error("Create: failed to check venue: %v", err)
		return fmt.Errorf("%w: failed to check venue: %v", ErrInternal, err)
	}
}
