//go:build unit
// +build unit

package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Annual Gala 2026", "annual-gala-2026"},
		{"  Hello,   World!  ", "hello-world"},
		{"Café Résumé", "cafe-resume"},
		{"Youth & Family -- Night", "youth-family-night"},
		{"!!!", ""},
		{"教会新闻", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestConvertToInt(t *testing.T) {
	assert.Equal(t, 25, ConvertToInt("25"))
	assert.Equal(t, 0, ConvertToInt("abc"))
	assert.Equal(t, 7, ConvertToInt(" 7 "))
}

func TestConvertToBool(t *testing.T) {
	assert.Nil(t, ConvertToBool(""))
	assert.Nil(t, ConvertToBool("maybe"))
	if v := ConvertToBool("true"); assert.NotNil(t, v) {
		assert.True(t, *v)
	}
	if v := ConvertToBool("0"); assert.NotNil(t, v) {
		assert.False(t, *v)
	}
}
