package pricingrule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/m04kA/SMC-CourtPricingService/internal/domain"
)

const (
	keyPrefix = "pricing:rules"

	cacheHit   = "hit"
	cacheMiss  = "miss"
	cacheError = "error"
)

// CachedRepository кэширует кандидатов для расчета цены в KV.
// Любая запись правил филиала сбрасывает все ключи этого филиала.
type CachedRepository struct {
	repo    RuleRepository
	kv      KV
	ttl     time.Duration
	metrics Metrics
	logger  Logger
}

// NewCachedRepository создает кэширующую обертку над репозиторием
func NewCachedRepository(repo RuleRepository, kv KV, ttl time.Duration, metrics Metrics, logger Logger) *CachedRepository {
	return &CachedRepository{
		repo:    repo,
		kv:      kv,
		ttl:     ttl,
		metrics: metrics,
		logger:  logger,
	}
}

// FindCandidateRules сначала читает кэш, при промахе идет в репозиторий и сохраняет результат.
// Ошибки кэша не прерывают чтение.
func (c *CachedRepository) FindCandidateRules(
	ctx context.Context,
	companyID, branchID, courtID int64,
	dayOfWeek time.Weekday,
	date time.Time,
) ([]*domain.PricingRule, error) {
	key := candidatesKey(companyID, branchID, courtID, dayOfWeek, date)

	rules, err := c.get(ctx, key)
	switch {
	case err == nil:
		c.incResult(cacheHit)
		return rules, nil
	case errors.Is(err, ErrCacheMiss):
		c.incResult(cacheMiss)
	default:
		c.incResult(cacheError)
		c.logger.Warn("pricing cache: failed to read key=%s: %v", key, err)
	}

	rules, err = c.repo.FindCandidateRules(ctx, companyID, branchID, courtID, dayOfWeek, date)
	if err != nil {
		return nil, err
	}

	if err := c.set(ctx, key, rules); err != nil {
		c.logger.Warn("pricing cache: failed to store key=%s: %v", key, err)
	}

	return rules, nil
}

// Create создает правило и сбрасывает кэш филиала
func (c *CachedRepository) Create(ctx context.Context, rule *domain.PricingRule) (*domain.PricingRule, error) {
	created, err := c.repo.Create(ctx, rule)
	if err != nil {
		return nil, err
	}

	c.invalidateBranch(ctx, created.CompanyID, created.BranchID)

	return created, nil
}

// GetByID читает правило напрямую из репозитория
func (c *CachedRepository) GetByID(ctx context.Context, id int64) (*domain.PricingRule, error) {
	return c.repo.GetByID(ctx, id)
}

// ListByBranch читает список напрямую из репозитория
func (c *CachedRepository) ListByBranch(ctx context.Context, companyID, branchID int64, courtID *int64) ([]*domain.PricingRule, error) {
	return c.repo.ListByBranch(ctx, companyID, branchID, courtID)
}

// SoftDelete удаляет правило и сбрасывает кэш его филиала
func (c *CachedRepository) SoftDelete(ctx context.Context, id int64) error {
	// 1. Узнаём филиал правила до удаления
	rule, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// 2. Удаляем
	if err := c.repo.SoftDelete(ctx, id); err != nil {
		return err
	}

	// 3. Сбрасываем кэш
	c.invalidateBranch(ctx, rule.CompanyID, rule.BranchID)

	return nil
}

func (c *CachedRepository) get(ctx context.Context, key string) ([]*domain.PricingRule, error) {
	raw, err := c.kv.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var cached []cachedRule
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		return nil, fmt.Errorf("%w: key %s: %v", ErrDecode, key, err)
	}

	return lo.Map(cached, func(item cachedRule, _ int) *domain.PricingRule {
		return item.toDomain()
	}), nil
}

func (c *CachedRepository) set(ctx context.Context, key string, rules []*domain.PricingRule) error {
	payload, err := json.Marshal(lo.Map(rules, func(rule *domain.PricingRule, _ int) cachedRule {
		return fromDomain(rule)
	}))
	if err != nil {
		return err
	}
	return c.kv.Set(ctx, key, string(payload), c.ttl)
}

func (c *CachedRepository) invalidateBranch(ctx context.Context, companyID, branchID int64) {
	pattern := branchPattern(companyID, branchID)

	keys, err := c.kv.ScanKeys(ctx, pattern)
	if err != nil {
		c.logger.Error("pricing cache: failed to scan pattern=%s: %v", pattern, err)
		return
	}

	if err := c.kv.Delete(ctx, keys...); err != nil {
		c.logger.Error("pricing cache: failed to delete %d keys for pattern=%s: %v", len(keys), pattern, err)
		return
	}

	c.logger.Info("pricing cache: invalidated %d keys for company=%d branch=%d", len(keys), companyID, branchID)
}

func (c *CachedRepository) incResult(result string) {
	if c.metrics != nil {
		c.metrics.IncCacheResult(result)
	}
}

func candidatesKey(companyID, branchID, courtID int64, dayOfWeek time.Weekday, date time.Time) string {
	return fmt.Sprintf("%s:%d:%d:%d:%d:%s",
		keyPrefix, companyID, branchID, courtID, int(dayOfWeek), domain.DateOnly(date).Format(domain.DateFormat))
}

func branchPattern(companyID, branchID int64) string {
	return fmt.Sprintf("%s:%d:%d:*", keyPrefix, companyID, branchID)
}
