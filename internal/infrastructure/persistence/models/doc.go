// Package models contains the GORM database models. They are kept apart
// from the domain entities so that column types, indexes and table names
// stay an infrastructure concern.
package models
