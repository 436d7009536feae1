// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer over PostgreSQL or SQLite, translates
// driver errors into application error codes and logs every write.
package persistence
