// Package entity holds the building blocks shared by every persisted record:
// identity and timestamps, list queries, and the generic repository and
// service contracts the content, inquiry and member domains instantiate.
package entity
