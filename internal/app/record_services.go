package app

import (
	"context"
	"time"

	"github.com/buccusa/buccusa-api/internal/domain/entity"
	"github.com/buccusa/buccusa-api/internal/pkg/logger"
)

// entityPtr is satisfied by *T when T embeds entity.Record and validates itself
type entityPtr[T any] interface {
	*T
	entity.Entity
}

// recordService implements entity.Service on top of a repository
type recordService[T any, PT entityPtr[T]] struct {
	repo   entity.Repository[T]
	logger logger.Logger
	now    func() time.Time
	// prepare normalizes a record before it is stored; existing is nil on create
	prepare func(record, existing *T, now time.Time)
}

// NewRecordService creates a CRUD service for records of type T
func NewRecordService[T any, PT entityPtr[T]](repo entity.Repository[T], logger logger.Logger) (entity.Service[T], error) {
	return newRecordService[T, PT](repo, logger, nil), nil
}

func newRecordService[T any, PT entityPtr[T]](repo entity.Repository[T], logger logger.Logger, prepare func(record, existing *T, now time.Time)) *recordService[T, PT] {
	return &recordService[T, PT]{repo: repo, logger: logger, now: time.Now, prepare: prepare}
}

// Create assigns identity and timestamps and stores record
func (s *recordService[T, PT]) Create(ctx context.Context, record *T) (*T, error) {
	now := s.now()
	PT(record).Meta().Stamp(now)
	if s.prepare != nil {
		s.prepare(record, nil, now)
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// List returns one page of records together with the unpaginated total
func (s *recordService[T, PT]) List(ctx context.Context, query *entity.Query) (*entity.Page[T], error) {
	if query == nil {
		query = entity.NewQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx, query)
	if err != nil {
		return nil, err
	}

	return &entity.Page[T]{Items: items, Total: total, Limit: query.Limit, Offset: query.Offset}, nil
}

// GetByID returns the record or a not_found error
func (s *recordService[T, PT]) GetByID(ctx context.Context, id string) (*T, error) {
	return s.repo.GetByID(ctx, id)
}

// Update overwrites the stored record while keeping its ID and creation time
func (s *recordService[T, PT]) Update(ctx context.Context, id string, record *T) (*T, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	meta := PT(record).Meta()
	meta.ID = id
	meta.CreatedAt = PT(existing).Meta().CreatedAt
	meta.Touch(now)
	if s.prepare != nil {
		s.prepare(record, existing, now)
	}

	if err := s.repo.UpdateByID(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// DeleteByID removes the record or returns a not_found error
func (s *recordService[T, PT]) DeleteByID(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}

// save stores an already loaded record after touching it
func (s *recordService[T, PT]) save(ctx context.Context, record *T) error {
	PT(record).Meta().Touch(s.now())
	return s.repo.UpdateByID(ctx, record)
}
