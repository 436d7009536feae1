//go:build unit
// +build unit

package content

import (
	"errors"
	"testing"
	"time"

	"github.com/buccusa/buccusa-api/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

func TestProgram_Validate(t *testing.T) {
	p := &Program{Title: "Youth Fellowship", Description: "Weekly gathering", Active: true}
	p.Stamp(now)
	require.NoError(t, p.Validate())
	assert.True(t, p.IsPublic())

	p.Title = ""
	err := p.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
	assert.Contains(t, err.Error(), "Title")
}

func TestEvent_Validate(t *testing.T) {
	e := &Event{Title: "Annual Conference", Description: "Three days", StartsAt: now}
	e.Stamp(now)
	require.NoError(t, e.Validate())
	assert.False(t, e.IsPublic())

	before := now.Add(-time.Hour)
	e.EndsAt = &before
	err := e.Validate()
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeValidation, apperrors.CodeOf(err))
}

func TestEvent_IsUpcoming(t *testing.T) {
	e := &Event{StartsAt: now.Add(-2 * time.Hour)}
	assert.False(t, e.IsUpcoming(now))

	end := now.Add(time.Hour)
	e.EndsAt = &end
	assert.True(t, e.IsUpcoming(now))

	e.EndsAt = nil
	e.StartsAt = now.Add(24 * time.Hour)
	assert.True(t, e.IsUpcoming(now))
}

func TestPost_Normalize(t *testing.T) {
	p := &Post{Title: "Hello, Élan World!", Body: "body", Published: true}
	p.Stamp(now)
	p.Normalize(now)

	assert.Equal(t, "hello-elan-world", p.Slug)
	require.NotNil(t, p.PublishedAt)
	assert.Equal(t, now, *p.PublishedAt)
	require.NoError(t, p.Validate())

	p.Published = false
	p.Normalize(now.Add(time.Hour))
	assert.Nil(t, p.PublishedAt)
}

func TestPost_NormalizeNonLatinTitle(t *testing.T) {
	first := &Post{Title: "教会新闻", Body: "body"}
	first.Stamp(now)
	first.Normalize(now)

	second := &Post{Title: "Новости", Body: "body"}
	second.Stamp(now)
	second.Normalize(now)

	assert.Regexp(t, `^post-[0-9a-f]{8}$`, first.Slug)
	assert.NotEqual(t, first.Slug, second.Slug)
	require.NoError(t, first.Validate())
	require.NoError(t, second.Validate())
}

func TestPost_ValidateRejectsBadSlug(t *testing.T) {
	p := &Post{Title: "x", Slug: "Not A Slug", Body: "b"}
	p.Stamp(now)
	assert.Error(t, p.Validate())
}

func TestTestimonial_Validate(t *testing.T) {
	tm := &Testimonial{Name: "Ama", Quote: "Life changing", Rating: 5}
	tm.Stamp(now)
	require.NoError(t, tm.Validate())
	assert.False(t, tm.IsPublic())

	tm.Rating = 6
	assert.Error(t, tm.Validate())

	tm.Rating = 0
	assert.NoError(t, tm.Validate())
}

func TestGalleryItem_Validate(t *testing.T) {
	g := &GalleryItem{Title: "Picnic", ImageURL: "https://example.org/a.jpg"}
	g.Stamp(now)
	require.NoError(t, g.Validate())
	assert.True(t, g.IsPublic())

	bad := "not-a-uuid"
	g.EventID = &bad
	assert.Error(t, g.Validate())
}

func TestLeader_Validate(t *testing.T) {
	l := &Leader{Name: "Kofi", Position: "President", Phone: "+1 (555) 010-2000"}
	l.Stamp(now)
	require.NoError(t, l.Validate())

	l.Email = "nope"
	assert.Error(t, l.Validate())
}

func TestImpactStat_Validate(t *testing.T) {
	s := &ImpactStat{Label: "Families served", Value: "500", Suffix: "+"}
	s.Stamp(now)
	require.NoError(t, s.Validate())
	assert.True(t, s.IsPublic())
}
