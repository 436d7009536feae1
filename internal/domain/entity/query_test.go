//go:build unit
// +build unit

package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/buccusa/buccusa-api/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(q *Query)
		shouldErr bool
	}{
		{"defaults", func(q *Query) {}, false},
		{"descending sort", func(q *Query) { q.SortBy = "created_at"; q.SortOrder = SortDesc }, false},
		{"bad sort order", func(q *Query) { q.SortOrder = "sideways" }, true},
		{"negative offset", func(q *Query) { q.Offset = -1 }, true},
		{"limit too large", func(q *Query) { q.Limit = 1000 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQuery()
			tt.mutate(q)
			err := q.Validate()
			if tt.shouldErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, apperrors.ErrValidation))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestRecord_StampAndTouch(t *testing.T) {
	var r Record
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	r.Stamp(created)

	assert.Len(t, r.ID, 36)
	assert.Equal(t, created, r.CreatedAt)
	assert.Equal(t, created, r.UpdatedAt)

	later := created.Add(time.Hour)
	r.Touch(later)
	assert.Equal(t, created, r.CreatedAt)
	assert.Equal(t, later, r.UpdatedAt)
	assert.Same(t, &r, r.Meta())
}
