package entity

import (
	"time"

	"github.com/google/uuid"
)

// Record carries identity and bookkeeping timestamps
type Record struct {
	ID        string    `validate:"required,uuid4"`
	CreatedAt time.Time `validate:"required"`
	UpdatedAt time.Time
}

// Meta exposes the embedded record to generic code.
func (r *Record) Meta() *Record { return r }

// Stamp assigns a fresh ID and sets both timestamps to now.
func (r *Record) Stamp(now time.Time) {
	r.ID = uuid.NewString()
	r.CreatedAt = now.UTC()
	r.UpdatedAt = now.UTC()
}

// Touch moves UpdatedAt to now.
func (r *Record) Touch(now time.Time) {
	r.UpdatedAt = now.UTC()
}

// Entity is implemented by pointers to domain types embedding Record.
type Entity interface {
	Meta() *Record
	Validate() error
}

// Publishable is implemented by entities that can be hidden from public readers.
type Publishable interface {
	IsPublic() bool
}
