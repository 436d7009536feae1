package v1

import (
	"github.com/buccusa/buccusa-api/internal/domain/content"
	"github.com/buccusa/buccusa-api/internal/domain/entity"
)

// NewProgramHandler creates a ContentHandler for programs
func NewProgramHandler(service entity.Service[content.Program], fallbackItems []*content.Program) ContentHandler {
	return newContentHandler[content.Program, ProgramRequest]("program", service, newProgramResponse, fallbackItems)
}

// NewEventHandler creates a ContentHandler for events
func NewEventHandler(service entity.Service[content.Event], fallbackItems []*content.Event) ContentHandler {
	return newContentHandler[content.Event, EventRequest]("event", service, newEventResponse, fallbackItems)
}

// NewLeaderHandler creates a ContentHandler for leaders
func NewLeaderHandler(service entity.Service[content.Leader], fallbackItems []*content.Leader) ContentHandler {
	return newContentHandler[content.Leader, LeaderRequest]("leader", service, newLeaderResponse, fallbackItems)
}

// NewTestimonialHandler creates a ContentHandler for testimonials
func NewTestimonialHandler(service entity.Service[content.Testimonial], fallbackItems []*content.Testimonial) ContentHandler {
	return newContentHandler[content.Testimonial, TestimonialRequest]("testimonial", service, newTestimonialResponse, fallbackItems)
}

// NewImpactStatHandler creates a ContentHandler for impact stats
func NewImpactStatHandler(service entity.Service[content.ImpactStat], fallbackItems []*content.ImpactStat) ContentHandler {
	return newContentHandler[content.ImpactStat, ImpactStatRequest]("impact stat", service, newImpactStatResponse, fallbackItems)
}

// NewGalleryHandler creates a ContentHandler for gallery items
func NewGalleryHandler(service entity.Service[content.GalleryItem], fallbackItems []*content.GalleryItem) ContentHandler {
	return newContentHandler[content.GalleryItem, GalleryItemRequest]("gallery item", service, newGalleryItemResponse, fallbackItems)
}
