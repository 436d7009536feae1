// Package fallback serves built-in public content while the database is
// unreachable.
package fallback

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/buccusa/buccusa-api/internal/domain/content"
	"github.com/buccusa/buccusa-api/internal/domain/entity"
)

//go:embed data.json
var data []byte

// Content is the built-in copy of every public content type
type Content struct {
	Programs     []*content.Program
	Events       []*content.Event
	Leaders      []*content.Leader
	Posts        []*content.Post
	Testimonials []*content.Testimonial
	ImpactStats  []*content.ImpactStat
	Gallery      []*content.GalleryItem
}

// Load decodes the embedded content
func Load() (*Content, error) {
	var c Content
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to decode fallback content: %w", err)
	}
	return &c, nil
}

// Page returns the public items of one page of query, the same way a
// repository would for a database that only holds items
func Page[T any, PT interface {
	*T
	entity.Publishable
}](items []*T, query *entity.Query) *entity.Page[T] {
	public := make([]*T, 0, len(items))
	for _, item := range items {
		if PT(item).IsPublic() {
			public = append(public, item)
		}
	}

	page := &entity.Page[T]{Total: int64(len(public)), Limit: query.Limit, Offset: query.Offset}
	start := min(query.Offset, len(public))
	end := len(public)
	if query.Limit > 0 {
		end = min(start+query.Limit, len(public))
	}
	page.Items = public[start:end]
	return page
}
