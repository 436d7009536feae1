package models

import "github.com/buccusa/buccusa-api/internal/domain/inquiries"

// ContactMessageModel is the GORM database model for contact messages
type ContactMessageModel struct {
	Base
	Name    string `gorm:"not null;type:varchar(150)"`
	Email   string `gorm:"not null;index;type:varchar(255)"`
	Phone   string `gorm:"type:varchar(30)"`
	Subject string `gorm:"type:varchar(200)"`
	Message string `gorm:"not null;type:text"`
	Status  string `gorm:"not null;index;type:varchar(20)"`
}

// TableName specifies the table name for GORM
func (ContactMessageModel) TableName() string { return "contact_messages" }

// ToDomain converts GORM model to domain entity
func (m *ContactMessageModel) ToDomain() *inquiries.ContactMessage {
	return &inquiries.ContactMessage{
		Record:  m.record(),
		Name:    m.Name,
		Email:   m.Email,
		Phone:   m.Phone,
		Subject: m.Subject,
		Message: m.Message,
		Status:  m.Status,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ContactMessageModel) FromDomain(c *inquiries.ContactMessage) {
	m.fromRecord(&c.Record)
	m.Name = c.Name
	m.Email = c.Email
	m.Phone = c.Phone
	m.Subject = c.Subject
	m.Message = c.Message
	m.Status = c.Status
}

// MessageReplyModel is the GORM database model for replies to contact messages
type MessageReplyModel struct {
	Base
	MessageID     string `gorm:"not null;index;type:varchar(36)"`
	AdminID       string `gorm:"not null;type:varchar(36)"`
	Subject       string `gorm:"not null;type:varchar(200)"`
	Body          string `gorm:"not null;type:text"`
	Delivered     bool   `gorm:"not null"`
	DeliveryError string `gorm:"type:text"`
}

// TableName specifies the table name for GORM
func (MessageReplyModel) TableName() string { return "message_replies" }

// ToDomain converts GORM model to domain entity
func (m *MessageReplyModel) ToDomain() *inquiries.MessageReply {
	return &inquiries.MessageReply{
		Record:        m.record(),
		MessageID:     m.MessageID,
		AdminID:       m.AdminID,
		Subject:       m.Subject,
		Body:          m.Body,
		Delivered:     m.Delivered,
		DeliveryError: m.DeliveryError,
	}
}

// FromDomain converts domain entity to GORM model
func (m *MessageReplyModel) FromDomain(r *inquiries.MessageReply) {
	m.fromRecord(&r.Record)
	m.MessageID = r.MessageID
	m.AdminID = r.AdminID
	m.Subject = r.Subject
	m.Body = r.Body
	m.Delivered = r.Delivered
	m.DeliveryError = r.DeliveryError
}

// PartnershipRequestModel is the GORM database model for partnership requests
type PartnershipRequestModel struct {
	Base
	OrganizationName string `gorm:"not null;type:varchar(200)"`
	ContactName      string `gorm:"not null;type:varchar(150)"`
	Email            string `gorm:"not null;type:varchar(255)"`
	Phone            string `gorm:"type:varchar(30)"`
	Website          string `gorm:"type:varchar(1024)"`
	PartnershipType  string `gorm:"index;type:varchar(100)"`
	Message          string `gorm:"type:text"`
	Status           string `gorm:"not null;index;type:varchar(20)"`
}

// TableName specifies the table name for GORM
func (PartnershipRequestModel) TableName() string { return "partnership_requests" }

// ToDomain converts GORM model to domain entity
func (m *PartnershipRequestModel) ToDomain() *inquiries.PartnershipRequest {
	return &inquiries.PartnershipRequest{
		Record:           m.record(),
		OrganizationName: m.OrganizationName,
		ContactName:      m.ContactName,
		Email:            m.Email,
		Phone:            m.Phone,
		Website:          m.Website,
		PartnershipType:  m.PartnershipType,
		Message:          m.Message,
		Status:           m.Status,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PartnershipRequestModel) FromDomain(p *inquiries.PartnershipRequest) {
	m.fromRecord(&p.Record)
	m.OrganizationName = p.OrganizationName
	m.ContactName = p.ContactName
	m.Email = p.Email
	m.Phone = p.Phone
	m.Website = p.Website
	m.PartnershipType = p.PartnershipType
	m.Message = p.Message
	m.Status = p.Status
}

// VolunteerSubmissionModel is the GORM database model for volunteer submissions
type VolunteerSubmissionModel struct {
	Base
	Name         string `gorm:"not null;type:varchar(150)"`
	Email        string `gorm:"not null;type:varchar(255)"`
	Phone        string `gorm:"type:varchar(30)"`
	Interests    string `gorm:"type:varchar(1000)"`
	Availability string `gorm:"type:varchar(200)"`
	Message      string `gorm:"type:text"`
	Status       string `gorm:"not null;index;type:varchar(20)"`
}

// TableName specifies the table name for GORM
func (VolunteerSubmissionModel) TableName() string { return "volunteer_submissions" }

// ToDomain converts GORM model to domain entity
func (m *VolunteerSubmissionModel) ToDomain() *inquiries.VolunteerSubmission {
	return &inquiries.VolunteerSubmission{
		Record:       m.record(),
		Name:         m.Name,
		Email:        m.Email,
		Phone:        m.Phone,
		Interests:    m.Interests,
		Availability: m.Availability,
		Message:      m.Message,
		Status:       m.Status,
	}
}

// FromDomain converts domain entity to GORM model
func (m *VolunteerSubmissionModel) FromDomain(v *inquiries.VolunteerSubmission) {
	m.fromRecord(&v.Record)
	m.Name = v.Name
	m.Email = v.Email
	m.Phone = v.Phone
	m.Interests = v.Interests
	m.Availability = v.Availability
	m.Message = v.Message
	m.Status = v.Status
}
