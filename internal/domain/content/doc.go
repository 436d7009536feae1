// Package content defines the marketing content shown on the public site and
// managed from the admin dashboard: programs, events, leaders, posts,
// testimonials, impact stats and gallery items.
package content
