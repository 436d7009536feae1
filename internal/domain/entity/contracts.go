package entity

import "context"

// Repository persists records of type T.
type Repository[T any] interface {
	// Create adds a new record
	Create(ctx context.Context, record *T) error
	// List returns the records matching query
	List(ctx context.Context, query *Query) ([]*T, error)
	// Count returns how many records match query, ignoring pagination
	Count(ctx context.Context, query *Query) (int64, error)
	// GetByID retrieves a record by ID
	GetByID(ctx context.Context, id string) (*T, error)
	// UpdateByID saves every field of an existing record
	UpdateByID(ctx context.Context, record *T) error
	// DeleteByID removes a record by ID
	DeleteByID(ctx context.Context, id string) error
}

// Page is one page of a list result.
type Page[T any] struct {
	Items  []*T
	Total  int64
	Limit  int
	Offset int
}

// Service exposes CRUD over records of type T.
type Service[T any] interface {
	// Create validates and stores a new record, assigning its ID and timestamps.
	Create(ctx context.Context, record *T) (*T, error)
	// List returns one page of records matching query along with the total count.
	List(ctx context.Context, query *Query) (*Page[T], error)
	// GetByID returns the record or a not_found error.
	GetByID(ctx context.Context, id string) (*T, error)
	// Update replaces the stored record's fields, keeping ID and CreatedAt.
	Update(ctx context.Context, id string, record *T) (*T, error)
	// DeleteByID removes a record or returns a not_found error.
	DeleteByID(ctx context.Context, id string) error
}

// SubmissionService extends Service for records visitors submit publicly and
// admins then move through a status workflow.
type SubmissionService[T any] interface {
	Service[T]
	// Submit stores a public submission with its initial status and notifies admins.
	Submit(ctx context.Context, record *T) (*T, error)
	// UpdateStatus validates and sets the record's status.
	UpdateStatus(ctx context.Context, id, status string) (*T, error)
}
