package models

import (
	"time"

	"github.com/buccusa/buccusa-api/internal/domain/members"
)

// MemberModel is the GORM database model for members
type MemberModel struct {
	Base
	FirstName      string `gorm:"not null;type:varchar(100)"`
	LastName       string `gorm:"not null;type:varchar(100)"`
	Email          string `gorm:"not null;uniqueIndex;type:varchar(255)"`
	Phone          string `gorm:"type:varchar(30)"`
	City           string `gorm:"type:varchar(100)"`
	MembershipType string `gorm:"index;type:varchar(50)"`
	Status         string `gorm:"not null;index;type:varchar(20)"`
	JoinedAt       *time.Time
}

// TableName specifies the table name for GORM
func (MemberModel) TableName() string { return "members" }

// ToDomain converts GORM model to domain entity
func (m *MemberModel) ToDomain() *members.Member {
	return &members.Member{
		Record:         m.record(),
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		Email:          m.Email,
		Phone:          m.Phone,
		City:           m.City,
		MembershipType: m.MembershipType,
		Status:         m.Status,
		JoinedAt:       m.JoinedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *MemberModel) FromDomain(mem *members.Member) {
	m.fromRecord(&mem.Record)
	m.FirstName = mem.FirstName
	m.LastName = mem.LastName
	m.Email = mem.Email
	m.Phone = mem.Phone
	m.City = mem.City
	m.MembershipType = mem.MembershipType
	m.Status = mem.Status
	m.JoinedAt = mem.JoinedAt
}
