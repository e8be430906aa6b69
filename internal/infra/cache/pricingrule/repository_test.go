package pricingrule

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtPricingService/internal/domain"
	"github.com/m04kA/SMC-CourtPricingService/pkg/logger"
	"github.com/m04kA/SMC-CourtPricingService/pkg/types"
)

type memoryKV struct {
	mu      sync.Mutex
	data    map[string]string
	getErr  error
	scanErr error
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: make(map[string]string)}
}

func (m *memoryKV) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return "", m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return "", ErrCacheMiss
	}
	return v, nil
}

func (m *memoryKV) Set(_ context.Context, key string, value string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memoryKV) ScanKeys(_ context.Context, pattern string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.scanErr != nil {
		return nil, m.scanErr
	}
	prefix := strings.TrimSuffix(pattern, "*")
	var keys []string
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func (m *memoryKV) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

type stubRepository struct {
	rules     map[int64]*domain.PricingRule
	findCalls int
	findErr   error
	nextID    int64
}

func (s *stubRepository) FindCandidateRules(_ context.Context, companyID, branchID, _ int64, _ time.Weekday, _ time.Time) ([]*domain.PricingRule, error) {
	s.findCalls++
	if s.findErr != nil {
		return nil, s.findErr
	}
	var out []*domain.PricingRule
	for _, r := range s.rules {
		if r.CompanyID == companyID && r.BranchID == branchID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubRepository) Create(_ context.Context, rule *domain.PricingRule) (*domain.PricingRule, error) {
	s.nextID++
	rule.ID = s.nextID
	s.rules[rule.ID] = rule
	return rule, nil
}

func (s *stubRepository) GetByID(_ context.Context, id int64) (*domain.PricingRule, error) {
	r, ok := s.rules[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return r, nil
}

func (s *stubRepository) ListByBranch(context.Context, int64, int64, *int64) ([]*domain.PricingRule, error) {
	return nil, nil
}

func (s *stubRepository) SoftDelete(_ context.Context, id int64) error {
	delete(s.rules, id)
	return nil
}

type countingMetrics struct {
	results map[string]int
}

func (c *countingMetrics) IncCacheResult(result string) {
	c.results[result]++
}

func weekdayRule(id int64, courtID *int64) *domain.PricingRule {
	start, _ := types.NewTimeStringFromString("08:00")
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &domain.PricingRule{
		ID:            id,
		CompanyID:     1,
		BranchID:      2,
		Scope:         domain.ScopeFromCourtID(courtID),
		Name:          "Weekday",
		DayOfWeek:     time.Monday,
		StartTime:     start,
		EndTime:       types.EndOfDay,
		PricePerHour:  decimal.RequireFromString("90.50"),
		Currency:      "USD",
		EffectiveFrom: &from,
		Priority:      100,
	}
}

func newCached(repo *stubRepository, kv KV) (*CachedRepository, *countingMetrics) {
	m := &countingMetrics{results: make(map[string]int)}
	return NewCachedRepository(repo, kv, time.Minute, m, logger.NewNop()), m
}

func TestCachedRepository_FindCandidateRules_MissThenHit(t *testing.T) {
	court := int64(3)
	repo := &stubRepository{rules: map[int64]*domain.PricingRule{
		1: weekdayRule(1, nil),
		2: weekdayRule(2, &court),
	}}
	kv := newMemoryKV()
	cached, m := newCached(repo, kv)

	date := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	ctx := context.Background()

	first, err := cached.FindCandidateRules(ctx, 1, 2, 3, time.Monday, date)
	require.NoError(t, err)
	assert.Len(t, first, 2)
	assert.Contains(t, kv.data, "pricing:rules:1:2:3:1:2024-01-01")

	second, err := cached.FindCandidateRules(ctx, 1, 2, 3, time.Monday, date)
	require.NoError(t, err)
	require.Len(t, second, 2)

	assert.Equal(t, 1, repo.findCalls)
	assert.Equal(t, 1, m.results[cacheMiss])
	assert.Equal(t, 1, m.results[cacheHit])

	for _, r := range second {
		original := repo.rules[r.ID]
		assert.Equal(t, original.Scope, r.Scope)
		assert.True(t, original.PricePerHour.Equal(r.PricePerHour))
		assert.True(t, original.StartTime.Equal(r.StartTime))
		assert.True(t, r.EndTime.IsEndOfDay())
		require.NotNil(t, r.EffectiveFrom)
		assert.True(t, original.EffectiveFrom.Equal(*r.EffectiveFrom))
	}
}

func TestCachedRepository_FindCandidateRules_CacheErrorFallsBack(t *testing.T) {
	repo := &stubRepository{rules: map[int64]*domain.PricingRule{1: weekdayRule(1, nil)}}
	kv := newMemoryKV()
	kv.getErr = errors.New("redis: connection refused")
	cached, m := newCached(repo, kv)

	rules, err := cached.FindCandidateRules(context.Background(), 1, 2, 3, time.Monday, time.Now())
	require.NoError(t, err)
	assert.Len(t, rules, 1)
	assert.Equal(t, 1, m.results[cacheError])
}

func TestCachedRepository_FindCandidateRules_CorruptedValue(t *testing.T) {
	repo := &stubRepository{rules: map[int64]*domain.PricingRule{1: weekdayRule(1, nil)}}
	kv := newMemoryKV()
	date := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	kv.data[candidatesKey(1, 2, 3, time.Monday, date)] = "{not json"
	cached, _ := newCached(repo, kv)

	rules, err := cached.FindCandidateRules(context.Background(), 1, 2, 3, time.Monday, date)
	require.NoError(t, err)
	assert.Len(t, rules, 1)
	assert.Equal(t, 1, repo.findCalls)
}

func TestCachedRepository_FindCandidateRules_RepositoryError(t *testing.T) {
	repoErr := errors.New("db down")
	repo := &stubRepository{rules: map[int64]*domain.PricingRule{}, findErr: repoErr}
	kv := newMemoryKV()
	cached, _ := newCached(repo, kv)

	_, err := cached.FindCandidateRules(context.Background(), 1, 2, 3, time.Monday, time.Now())
	assert.ErrorIs(t, err, repoErr)
	assert.Empty(t, kv.data)
}

func TestCachedRepository_WritesInvalidateBranch(t *testing.T) {
	repo := &stubRepository{rules: map[int64]*domain.PricingRule{1: weekdayRule(1, nil)}, nextID: 1}
	kv := newMemoryKV()
	cached, _ := newCached(repo, kv)
	ctx := context.Background()
	date := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	kv.data["pricing:rules:1:9:3:1:2024-01-01"] = "[]"

	_, err := cached.FindCandidateRules(ctx, 1, 2, 3, time.Monday, date)
	require.NoError(t, err)
	_, err = cached.FindCandidateRules(ctx, 1, 2, 4, time.Monday, date)
	require.NoError(t, err)
	assert.Len(t, kv.data, 3)

	_, err = cached.Create(ctx, weekdayRule(0, nil))
	require.NoError(t, err)

	assert.Len(t, kv.data, 1)
	assert.Contains(t, kv.data, "pricing:rules:1:9:3:1:2024-01-01")

	_, err = cached.FindCandidateRules(ctx, 1, 2, 3, time.Monday, date)
	require.NoError(t, err)
	assert.Len(t, kv.data, 2)

	require.NoError(t, cached.SoftDelete(ctx, 1))
	assert.Len(t, kv.data, 1)
}

func TestCachedRepository_SoftDelete_NotFound(t *testing.T) {
	repo := &stubRepository{rules: map[int64]*domain.PricingRule{}}
	cached, _ := newCached(repo, newMemoryKV())

	assert.Error(t, cached.SoftDelete(context.Background(), 99))
}

func TestCachedRepository_InvalidateScanError(t *testing.T) {
	repo := &stubRepository{rules: map[int64]*domain.PricingRule{}}
	kv := newMemoryKV()
	kv.scanErr = errors.New("scan failed")
	cached, _ := newCached(repo, kv)

	_, err := cached.Create(context.Background(), weekdayRule(0, nil))
	assert.NoError(t, err)
}
