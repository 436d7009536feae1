package models

import (
	"time"

	"github.com/buccusa/buccusa-api/internal/domain/admins"
)

// AdminModel is the GORM database model for admin accounts
type AdminModel struct {
	Base
	Username     string `gorm:"not null;uniqueIndex;type:varchar(50)"`
	Email        string `gorm:"not null;uniqueIndex;type:varchar(255)"`
	PasswordHash string `gorm:"not null;type:varchar(100)"`
	Name         string `gorm:"type:varchar(150)"`
	Role         string `gorm:"not null;type:varchar(20)"`
	Active       bool   `gorm:"not null"`
	LastLoginAt  *time.Time
}

// TableName specifies the table name for GORM
func (AdminModel) TableName() string { return "admins" }

// ToDomain converts GORM model to domain entity
func (m *AdminModel) ToDomain() *admins.Admin {
	return &admins.Admin{
		Record:       m.record(),
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
		Role:         m.Role,
		Active:       m.Active,
		LastLoginAt:  m.LastLoginAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *AdminModel) FromDomain(a *admins.Admin) {
	m.fromRecord(&a.Record)
	m.Username = a.Username
	m.Email = a.Email
	m.PasswordHash = a.PasswordHash
	m.Name = a.Name
	m.Role = a.Role
	m.Active = a.Active
	m.LastLoginAt = a.LastLoginAt
}
