package pricingrule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CourtPricingService/internal/domain"
	"github.com/m04kA/SMC-CourtPricingService/pkg/psqlbuilder"
)

const tableName = "court_pricing_rules"

var columns = []string{
	"id",
	"company_id",
	"branch_id",
	"court_id",
	"name",
	"day_of_week",
	"start_time",
	"end_time",
	"price_per_hour",
	"currency",
	"effective_from",
	"effective_to",
	"priority",
	"deleted_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий правил ценообразования кортов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindCandidateRules возвращает неудаленные правила филиала компании на день недели,
// которые относятся к корту courtID или ко всему филиалу (court_id IS NULL)
// и чей период действия (если задан) включает дату date.
// Фильтрация по времени суток и выбор приоритетного правила выполняются в пакете pricing.
func (r *Repository) FindCandidateRules(
	ctx context.Context,
	companyID, branchID, courtID int64,
	dayOfWeek time.Weekday,
	date time.Time,
) ([]*domain.PricingRule, error) {
	day := domain.DateOnly(date)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"company_id": companyID}).
		Where(squirrel.Eq{"branch_id": branchID}).
		Where(squirrel.Eq{"day_of_week": int(dayOfWeek)}).
		Where(squirrel.Eq{"deleted_at": nil}).
		Where(squirrel.Or{
			squirrel.Eq{"court_id": courtID},
			squirrel.Eq{"court_id": nil},
		}).
		Where(squirrel.Or{
			squirrel.Eq{"effective_from": nil},
			squirrel.LtOrEq{"effective_from": day},
		}).
		Where(squirrel.Or{
			squirrel.Eq{"effective_to": nil},
			squirrel.GtOrEq{"effective_to": day},
		}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindCandidateRules - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindCandidateRules - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRules(rows)
}

// Create создает новое правило
func (r *Repository) Create(ctx context.Context, rule *domain.PricingRule) (*domain.PricingRule, error) {
	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"company_id",
			"branch_id",
			"court_id",
			"name",
			"day_of_week",
			"start_time",
			"end_time",
			"price_per_hour",
			"currency",
			"effective_from",
			"effective_to",
			"priority",
		).
		Values(
			rule.CompanyID,
			rule.BranchID,
			rule.Scope.CourtIDPtr(),
			rule.Name,
			int(rule.DayOfWeek),
			rule.StartTime,
			rule.EndTime,
			rule.PricePerHour,
			rule.Currency,
			rule.EffectiveFrom,
			rule.EffectiveTo,
			rule.Priority,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&rule.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return rule, nil
}

// GetByID получает неудаленное правило по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.PricingRule, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"deleted_at": nil}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rule, err := scanRule(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan rule: %v", ErrScanRow, err)
	}

	return rule, nil
}

// ListByBranch получает неудаленные правила филиала
// Если courtID задан - только правила этого корта и правила всего филиала
func (r *Repository) ListByBranch(ctx context.Context, companyID, branchID int64, courtID *int64) ([]*domain.PricingRule, error) {
	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"company_id": companyID}).
		Where(squirrel.Eq{"branch_id": branchID}).
		Where(squirrel.Eq{"deleted_at": nil})

	if courtID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.Eq{"court_id": *courtID},
			squirrel.Eq{"court_id": nil},
		})
	}

	query, args, err := selectBuilder.
		OrderBy("court_id ASC NULLS LAST, day_of_week ASC, start_time ASC, priority ASC, id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBranch - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBranch - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRules(rows)
}

// SoftDelete помечает правило удаленным; удаленные правила не участвуют в расчете цены
func (r *Repository) SoftDelete(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Update(tableName).
		Set("deleted_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"deleted_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRuleNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanRules сканирует результаты запроса в слайс правил
func (r *Repository) scanRules(rows *sql.Rows) ([]*domain.PricingRule, error) {
	rules := make([]*domain.PricingRule, 0)

	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRules - scan row: %v", ErrScanRow, err)
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRules - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}

func scanRule(row rowScanner) (*domain.PricingRule, error) {
	var (
		rule                       domain.PricingRule
		courtID                    sql.NullInt64
		dayOfWeek                  int
		effectiveFrom, effectiveTo sql.NullTime
		deletedAt                  sql.NullTime
		createdAt, updatedAt       sql.NullTime
	)

	err := row.Scan(
		&rule.ID,
		&rule.CompanyID,
		&rule.BranchID,
		&courtID,
		&rule.Name,
		&dayOfWeek,
		&rule.StartTime,
		&rule.EndTime,
		&rule.PricePerHour,
		&rule.Currency,
		&effectiveFrom,
		&effectiveTo,
		&rule.Priority,
		&deletedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if courtID.Valid {
		rule.Scope = domain.CourtScope(courtID.Int64)
	} else {
		rule.Scope = domain.BranchWideScope()
	}
	rule.DayOfWeek = time.Weekday(dayOfWeek)
	rule.EffectiveFrom = nullTimePtr(effectiveFrom)
	rule.EffectiveTo = nullTimePtr(effectiveTo)
	rule.DeletedAt = nullTimePtr(deletedAt)
	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return &rule, nil
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
