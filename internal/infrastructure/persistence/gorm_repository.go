package persistence

import (
	"context"
	"fmt"
	"strings"

	"github.com/buccusa/buccusa-api/internal/domain/entity"
	"github.com/buccusa/buccusa-api/internal/pkg/apperrors"
	"github.com/buccusa/buccusa-api/internal/pkg/logger"

	"gorm.io/gorm"
)

// entityPtr is satisfied by *T when T embeds entity.Record and validates itself
type entityPtr[T any] interface {
	*T
	entity.Entity
}

// modelPtr is satisfied by *M when M converts to and from the domain type T
type modelPtr[T, M any] interface {
	*M
	ToDomain() *T
	FromDomain(*T)
}

// listConfig maps the generic query fields onto the columns of one table.
// Empty column names disable the matching filter.
type listConfig struct {
	kind           string
	searchColumns  []string
	categoryColumn string
	statusColumn   string
	publicColumn   string
	featuredColumn string
	fromColumn     string
	// sortable maps accepted sortBy values to column names
	sortable     map[string]string
	defaultOrder string
	// beforeDelete runs inside the delete transaction
	beforeDelete func(tx *gorm.DB, id string) error
}

type gormRepository[T any, PT entityPtr[T], M any, PM modelPtr[T, M]] struct {
	db     *gorm.DB
	logger logger.Logger
	list   listConfig
}

func newGormRepository[T any, PT entityPtr[T], M any, PM modelPtr[T, M]](db *gorm.DB, logger logger.Logger, list listConfig) *gormRepository[T, PT, M, PM] {
	return &gormRepository[T, PT, M, PM]{db: db, logger: logger, list: list}
}

func (r *gormRepository[T, PT, M, PM]) Create(ctx context.Context, record *T) error {
	if err := PT(record).Validate(); err != nil {
		return err
	}

	var model M
	PM(&model).FromDomain(record)

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return translateError(err, r.list.kind, "create")
	}

	r.logger.Info("Created "+r.list.kind, "id", PT(record).Meta().ID)
	return nil
}

func (r *gormRepository[T, PT, M, PM]) List(ctx context.Context, query *entity.Query) ([]*T, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	dbQuery, err := r.filtered(ctx, query)
	if err != nil {
		return nil, err
	}

	order, err := r.order(query)
	if err != nil {
		return nil, err
	}
	dbQuery = dbQuery.Order(order)

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	var modelList []*M
	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, translateError(err, r.list.kind, "list")
	}

	domainList := make([]*T, len(modelList))
	for i, model := range modelList {
		domainList[i] = PM(model).ToDomain()
	}
	return domainList, nil
}

func (r *gormRepository[T, PT, M, PM]) Count(ctx context.Context, query *entity.Query) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	dbQuery, err := r.filtered(ctx, query)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := dbQuery.Count(&count).Error; err != nil {
		return 0, translateError(err, r.list.kind, "count")
	}
	return count, nil
}

func (r *gormRepository[T, PT, M, PM]) GetByID(ctx context.Context, id string) (*T, error) {
	var model M
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		return nil, translateError(err, r.list.kind, "fetch")
	}
	return PM(&model).ToDomain(), nil
}

func (r *gormRepository[T, PT, M, PM]) UpdateByID(ctx context.Context, record *T) error {
	if err := PT(record).Validate(); err != nil {
		return err
	}

	var model M
	PM(&model).FromDomain(record)

	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		return translateError(err, r.list.kind, "update")
	}

	r.logger.Info("Updated "+r.list.kind, "id", PT(record).Meta().ID)
	return nil
}

func (r *gormRepository[T, PT, M, PM]) DeleteByID(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if r.list.beforeDelete != nil {
			if err := r.list.beforeDelete(tx, id); err != nil {
				return err
			}
		}
		result := tx.Where("id = ?", id).Delete(new(M))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return translateError(err, r.list.kind, "delete")
	}

	r.logger.Info("Deleted "+r.list.kind, "id", id)
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user input match literally inside a LIKE pattern
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// filtered applies the query's filters but neither ordering nor pagination
func (r *gormRepository[T, PT, M, PM]) filtered(ctx context.Context, query *entity.Query) (*gorm.DB, error) {
	cols := r.list
	dbQuery := r.db.WithContext(ctx).Model(new(M))

	if query.Search != "" && len(cols.searchColumns) > 0 {
		pattern := "%" + escapeLike(strings.ToLower(query.Search)) + "%"
		clauses := make([]string, len(cols.searchColumns))
		args := make([]interface{}, len(cols.searchColumns))
		for i, column := range cols.searchColumns {
			clauses[i] = fmt.Sprintf(`LOWER(%s) LIKE ? ESCAPE '\'`, column)
			args[i] = pattern
		}
		dbQuery = dbQuery.Where("("+strings.Join(clauses, " OR ")+")", args...)
	}
	if query.Category != "" {
		if cols.categoryColumn == "" {
			return nil, apperrors.Validation(cols.kind + " cannot be filtered by category")
		}
		dbQuery = dbQuery.Where(cols.categoryColumn+" = ?", query.Category)
	}
	if query.Status != "" {
		if cols.statusColumn == "" {
			return nil, apperrors.Validation(cols.kind + " cannot be filtered by status")
		}
		dbQuery = dbQuery.Where(cols.statusColumn+" = ?", query.Status)
	}
	if query.PublicOnly && cols.publicColumn != "" {
		dbQuery = dbQuery.Where(cols.publicColumn+" = ?", true)
	}
	if query.Featured != nil && cols.featuredColumn != "" {
		dbQuery = dbQuery.Where(cols.featuredColumn+" = ?", *query.Featured)
	}
	if !query.From.IsZero() && cols.fromColumn != "" {
		dbQuery = dbQuery.Where(cols.fromColumn+" >= ?", query.From)
	}
	return dbQuery, nil
}

// order resolves sortBy against the whitelist so no raw input reaches ORDER BY
func (r *gormRepository[T, PT, M, PM]) order(query *entity.Query) (string, error) {
	if query.SortBy == "" {
		return r.list.defaultOrder + ", id", nil
	}
	column, ok := r.list.sortable[query.SortBy]
	if !ok {
		return "", apperrors.Validation(fmt.Sprintf("cannot sort %s by %q", r.list.kind, query.SortBy))
	}
	direction := entity.SortAsc
	if query.SortOrder != "" {
		direction = query.SortOrder
	}
	return fmt.Sprintf("%s %s, id", column, direction), nil
}
