package models

import "github.com/buccusa/buccusa-api/internal/domain/media"

// AssetModel is the GORM database model for uploaded media
type AssetModel struct {
	Base
	Name        string `gorm:"not null;type:varchar(255)"`
	StoredName  string `gorm:"not null;type:varchar(255)"`
	ContentType string `gorm:"not null;index;type:varchar(100)"`
	Size        int64  `gorm:"not null"`
	URL         string `gorm:"not null;type:varchar(1024)"`
	Provider    string `gorm:"not null;type:varchar(20)"`
	UploadedBy  string `gorm:"index;type:varchar(36)"`
}

// TableName specifies the table name for GORM
func (AssetModel) TableName() string { return "media_assets" }

// ToDomain converts GORM model to domain entity
func (m *AssetModel) ToDomain() *media.Asset {
	return &media.Asset{
		Record:      m.record(),
		Name:        m.Name,
		StoredName:  m.StoredName,
		ContentType: m.ContentType,
		Size:        m.Size,
		URL:         m.URL,
		Provider:    m.Provider,
		UploadedBy:  m.UploadedBy,
	}
}

// FromDomain converts domain entity to GORM model
func (m *AssetModel) FromDomain(a *media.Asset) {
	m.fromRecord(&a.Record)
	m.Name = a.Name
	m.StoredName = a.StoredName
	m.ContentType = a.ContentType
	m.Size = a.Size
	m.URL = a.URL
	m.Provider = a.Provider
	m.UploadedBy = a.UploadedBy
}
