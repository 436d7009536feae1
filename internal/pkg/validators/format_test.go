//go:build unit
// +build unit

package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Slug  string `validate:"required,slug"`
	Phone string `validate:"omitempty,phone"`
	Email string `validate:"required,email"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name      string
		value     sample
		shouldErr bool
	}{
		{"valid", sample{Slug: "annual-gala-2026", Phone: "+1 (555) 010-2030", Email: "info@buccusa.org"}, false},
		{"valid without phone", sample{Slug: "news", Email: "info@buccusa.org"}, false},
		{"uppercase slug", sample{Slug: "Annual-Gala", Email: "info@buccusa.org"}, true},
		{"double hyphen slug", sample{Slug: "annual--gala", Email: "info@buccusa.org"}, true},
		{"letters in phone", sample{Slug: "news", Phone: "call-me", Email: "info@buccusa.org"}, true},
		{"bad email", sample{Slug: "news", Email: "nope"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(&tt.value)
			if tt.shouldErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "validation failed")
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestStruct_ListsEveryField(t *testing.T) {
	err := Struct(&sample{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field: Slug, Tag: required")
	assert.Contains(t, err.Error(), "Field: Email, Tag: required")
}
