package pricingrules

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtPricingService/internal/domain"
	ruleRepo "github.com/m04kA/SMC-CourtPricingService/internal/infra/storage/pricingrule"
	venueClient "github.com/m04kA/SMC-CourtPricingService/internal/integrations/venueservice"
	"github.com/m04kA/SMC-CourtPricingService/internal/service/pricingrules/models"
	"github.com/m04kA/SMC-CourtPricingService/pkg/logger"
	"github.com/m04kA/SMC-CourtPricingService/pkg/ptr"
	"github.com/m04kA/SMC-CourtPricingService/pkg/types"
)

type fakeRepo struct {
	created   *domain.PricingRule
	rules     map[int64]*domain.PricingRule
	createErr error
	listErr   error
	listCourt *int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rules: make(map[int64]*domain.PricingRule)}
}

func (f *fakeRepo) Create(_ context.Context, rule *domain.PricingRule) (*domain.PricingRule, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	rule.ID = int64(len(f.rules) + 1)
	rule.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rule.UpdatedAt = rule.CreatedAt
	f.rules[rule.ID] = rule
	f.created = rule
	return rule, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.PricingRule, error) {
	r, ok := f.rules[id]
	if !ok {
		return nil, ruleRepo.ErrRuleNotFound
	}
	return r, nil
}

func (f *fakeRepo) ListByBranch(_ context.Context, companyID, branchID int64, courtID *int64) ([]*domain.PricingRule, error) {
	f.listCourt = courtID
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*domain.PricingRule
	for _, r := range f.rules {
		if r.CompanyID == companyID && r.BranchID == branchID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepo) SoftDelete(_ context.Context, id int64) error {
	if _, ok := f.rules[id]; !ok {
		return ruleRepo.ErrRuleNotFound
	}
	delete(f.rules, id)
	return nil
}

type fakeVenue struct {
	err error
}

func (f *fakeVenue) CheckCourtWithGracefulDegradation(context.Context, int64, int64, *int64) error {
	return f.err
}

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func validRequest(t *testing.T) *models.CreateRuleRequest {
	return &models.CreateRuleRequest{
		CompanyID:    1,
		BranchID:     2,
		CourtID:      ptr.Ptr(int64(3)),
		Name:         "  Evening peak ",
		DayOfWeek:    1,
		StartTime:    mustTime(t, "18:00"),
		EndTime:      mustTime(t, "24:00"),
		PricePerHour: decimal.RequireFromString("150"),
		Currency:     "eur",
	}
}

func TestService_Create(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &fakeVenue{}, logger.NewNop())

	req := validRequest(t)
	req.EffectiveFrom = ptr.Ptr("2024-01-01")
	req.EffectiveTo = ptr.Ptr("2024-12-31")

	resp, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "court", resp.Scope)
	assert.Equal(t, int64(3), *resp.CourtID)
	assert.Equal(t, "Evening peak", resp.Name)
	assert.Equal(t, "EUR", resp.Currency)
	assert.Equal(t, "150.00", resp.PricePerHour)
	assert.Equal(t, "18:00", resp.StartTime)
	assert.Equal(t, "24:00", resp.EndTime)
	assert.Equal(t, domain.DefaultPriority, resp.Priority)
	assert.Equal(t, "2024-01-01", *resp.EffectiveFrom)
	assert.Equal(t, "2024-12-31", *resp.EffectiveTo)

	require.NotNil(t, repo.created)
	assert.Equal(t, time.Monday, repo.created.DayOfWeek)
	assert.True(t, repo.created.IsCourtSpecific())
}

func TestService_Create_Defaults(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil, logger.NewNop())

	req := validRequest(t)
	req.CourtID = nil
	req.Currency = ""
	req.Priority = ptr.Ptr(5)

	resp, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "branch", resp.Scope)
	assert.Nil(t, resp.CourtID)
	assert.Equal(t, domain.DefaultCurrency, resp.Currency)
	assert.Equal(t, 5, resp.Priority)
}

func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *models.CreateRuleRequest)
	}{
		{"no company", func(r *models.CreateRuleRequest) { r.CompanyID = 0 }},
		{"no branch", func(r *models.CreateRuleRequest) { r.BranchID = -1 }},
		{"bad court", func(r *models.CreateRuleRequest) { r.CourtID = ptr.Ptr(int64(0)) }},
		{"empty name", func(r *models.CreateRuleRequest) { r.Name = "   " }},
		{"long name", func(r *models.CreateRuleRequest) { r.Name = strings.Repeat("x", domain.MaxRuleNameLength+1) }},
		{"day below range", func(r *models.CreateRuleRequest) { r.DayOfWeek = -1 }},
		{"day above range", func(r *models.CreateRuleRequest) { r.DayOfWeek = 7 }},
		{"missing start", func(r *models.CreateRuleRequest) { r.StartTime = types.TimeString{} }},
		{"start equals end", func(r *models.CreateRuleRequest) { r.StartTime = r.EndTime }},
		{"start after end", func(r *models.CreateRuleRequest) {
			r.StartTime, r.EndTime = r.EndTime, r.StartTime
		}},
		{"negative price", func(r *models.CreateRuleRequest) { r.PricePerHour = decimal.RequireFromString("-1") }},
		{"bad currency", func(r *models.CreateRuleRequest) { r.Currency = "EURO" }},
		{"non letter currency", func(r *models.CreateRuleRequest) { r.Currency = "U5D" }},
		{"bad date", func(r *models.CreateRuleRequest) { r.EffectiveFrom = ptr.Ptr("01.02.2024") }},
		{"reversed dates", func(r *models.CreateRuleRequest) {
			r.EffectiveFrom = ptr.Ptr("2024-02-01")
			r.EffectiveTo = ptr.Ptr("2024-01-31")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			svc := NewService(repo, nil, logger.NewNop())

			req := validRequest(t)
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, repo.created)
		})
	}
}

func TestService_Create_SameDayEffectiveWindow(t *testing.T) {
	svc := NewService(newFakeRepo(), nil, logger.NewNop())

	req := validRequest(t)
	req.EffectiveFrom = ptr.Ptr("2024-03-01")
	req.EffectiveTo = ptr.Ptr("2024-03-01")

	_, err := svc.Create(context.Background(), req)
	assert.NoError(t, err)
}

func TestService_Create_VenueChecks(t *testing.T) {
	tests := []struct {
		name     string
		venueErr error
		wantErr  error
	}{
		{"branch missing", venueClient.ErrBranchNotFound, ErrBranchNotFound},
		{"court missing", venueClient.ErrCourtNotFound, ErrCourtNotFound},
		{"degraded", fmt.Errorf("%w: timeout", venueClient.ErrServiceDegraded), nil},
		{"unexpected", errors.New("boom"), ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			svc := NewService(repo, &fakeVenue{err: tt.venueErr}, logger.NewNop())

			_, err := svc.Create(context.Background(), validRequest(t))
			if tt.wantErr == nil {
				assert.NoError(t, err)
				assert.NotNil(t, repo.created)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, repo.created)
		})
	}
}

func TestService_Create_RepositoryError(t *testing.T) {
	repo := newFakeRepo()
	repo.createErr = errors.New("db down")
	svc := NewService(repo, nil, logger.NewNop())

	_, err := svc.Create(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_GetByID(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil, logger.NewNop())

	created, err := svc.Create(context.Background(), validRequest(t))
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)

	_, err = svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrRuleNotFound)
}

func TestService_ListByBranch(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil, logger.NewNop())

	_, err := svc.Create(context.Background(), validRequest(t))
	require.NoError(t, err)

	list, err := svc.ListByBranch(context.Background(), 1, 2, ptr.Ptr(int64(3)))
	require.NoError(t, err)
	assert.Len(t, list.Rules, 1)
	require.NotNil(t, repo.listCourt)
	assert.Equal(t, int64(3), *repo.listCourt)

	empty, err := svc.ListByBranch(context.Background(), 1, 9, nil)
	require.NoError(t, err)
	assert.NotNil(t, empty.Rules)
	assert.Empty(t, empty.Rules)

	_, err = svc.ListByBranch(context.Background(), 0, 2, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	repo.listErr = errors.New("db down")
	_, err = svc.ListByBranch(context.Background(), 1, 2, nil)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_Delete(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil, logger.NewNop())

	created, err := svc.Create(context.Background(), validRequest(t))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), ErrRuleNotFound)
}
