package v1

import (
	"time"

	"github.com/buccusa/buccusa-api/internal/domain/inquiries"
	"github.com/buccusa/buccusa-api/internal/domain/members"
)

// ContactRequest is a message sent through the public contact form
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

func (r *ContactRequest) toDomain() *inquiries.ContactMessage {
	return &inquiries.ContactMessage{Name: r.Name, Email: r.Email, Phone: r.Phone, Subject: r.Subject, Message: r.Message}
}

// ContactMessageResponse is a contact message as returned by the API
type ContactMessageResponse struct {
	RecordResponse
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

func newContactMessageResponse(m *inquiries.ContactMessage) ContactMessageResponse {
	return ContactMessageResponse{
		RecordResponse: newRecordResponse(&m.Record),
		Name:           m.Name,
		Email:          m.Email,
		Phone:          m.Phone,
		Subject:        m.Subject,
		Message:        m.Message,
		Status:         m.Status,
	}
}

// ReplyRequest is an admin's answer to a contact message. An empty subject
// defaults to "Re: " plus the original subject.
type ReplyRequest struct {
	Subject string `json:"subject"`
	Body    string `json:"body" binding:"required"`
}

// ReplyResponse is a recorded reply
type ReplyResponse struct {
	RecordResponse
	MessageID     string `json:"messageId"`
	AdminID       string `json:"adminId"`
	Subject       string `json:"subject"`
	Body          string `json:"body"`
	Delivered     bool   `json:"delivered"`
	DeliveryError string `json:"deliveryError,omitempty"`
}

func newReplyResponse(r *inquiries.MessageReply) ReplyResponse {
	return ReplyResponse{
		RecordResponse: newRecordResponse(&r.Record),
		MessageID:      r.MessageID,
		AdminID:        r.AdminID,
		Subject:        r.Subject,
		Body:           r.Body,
		Delivered:      r.Delivered,
		DeliveryError:  r.DeliveryError,
	}
}

// StatusRequest moves a record through its workflow
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PartnershipRequestBody is a partnership enquiry from an organisation
type PartnershipRequestBody struct {
	OrganizationName string `json:"organizationName" binding:"required"`
	ContactName      string `json:"contactName" binding:"required"`
	Email            string `json:"email" binding:"required"`
	Phone            string `json:"phone"`
	Website          string `json:"website"`
	PartnershipType  string `json:"partnershipType"`
	Message          string `json:"message"`
}

func (r *PartnershipRequestBody) toDomain() *inquiries.PartnershipRequest {
	return &inquiries.PartnershipRequest{
		OrganizationName: r.OrganizationName,
		ContactName:      r.ContactName,
		Email:            r.Email,
		Phone:            r.Phone,
		Website:          r.Website,
		PartnershipType:  r.PartnershipType,
		Message:          r.Message,
	}
}

// PartnershipResponse is a partnership request as returned by the API
type PartnershipResponse struct {
	RecordResponse
	OrganizationName string `json:"organizationName"`
	ContactName      string `json:"contactName"`
	Email            string `json:"email"`
	Phone            string `json:"phone,omitempty"`
	Website          string `json:"website,omitempty"`
	PartnershipType  string `json:"partnershipType,omitempty"`
	Message          string `json:"message,omitempty"`
	Status           string `json:"status"`
}

func newPartnershipResponse(p *inquiries.PartnershipRequest) PartnershipResponse {
	return PartnershipResponse{
		RecordResponse:   newRecordResponse(&p.Record),
		OrganizationName: p.OrganizationName,
		ContactName:      p.ContactName,
		Email:            p.Email,
		Phone:            p.Phone,
		Website:          p.Website,
		PartnershipType:  p.PartnershipType,
		Message:          p.Message,
		Status:           p.Status,
	}
}

// VolunteerRequest is a volunteer sign-up
type VolunteerRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required"`
	Phone        string `json:"phone"`
	Interests    string `json:"interests"`
	Availability string `json:"availability"`
	Message      string `json:"message"`
}

func (r *VolunteerRequest) toDomain() *inquiries.VolunteerSubmission {
	return &inquiries.VolunteerSubmission{
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		Interests:    r.Interests,
		Availability: r.Availability,
		Message:      r.Message,
	}
}

// VolunteerResponse is a volunteer submission as returned by the API
type VolunteerResponse struct {
	RecordResponse
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Interests    string `json:"interests,omitempty"`
	Availability string `json:"availability,omitempty"`
	Message      string `json:"message,omitempty"`
	Status       string `json:"status"`
}

func newVolunteerResponse(v *inquiries.VolunteerSubmission) VolunteerResponse {
	return VolunteerResponse{
		RecordResponse: newRecordResponse(&v.Record),
		Name:           v.Name,
		Email:          v.Email,
		Phone:          v.Phone,
		Interests:      v.Interests,
		Availability:   v.Availability,
		Message:        v.Message,
		Status:         v.Status,
	}
}

// MemberRequest registers or replaces a member. Status is only honoured on admin routes.
type MemberRequest struct {
	FirstName      string `json:"firstName" binding:"required"`
	LastName       string `json:"lastName" binding:"required"`
	Email          string `json:"email" binding:"required"`
	Phone          string `json:"phone"`
	City           string `json:"city"`
	MembershipType string `json:"membershipType"`
	Status         string `json:"status"`
}

func (r *MemberRequest) toDomain() *members.Member {
	status := r.Status
	if status == "" {
		status = members.StatusPending
	}
	return &members.Member{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Phone:          r.Phone,
		City:           r.City,
		MembershipType: r.MembershipType,
		Status:         status,
	}
}

// MemberResponse is a member as returned by the API
type MemberResponse struct {
	RecordResponse
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone,omitempty"`
	City           string     `json:"city,omitempty"`
	MembershipType string     `json:"membershipType,omitempty"`
	Status         string     `json:"status"`
	JoinedAt       *time.Time `json:"joinedAt,omitempty"`
}

func newMemberResponse(m *members.Member) MemberResponse {
	return MemberResponse{
		RecordResponse: newRecordResponse(&m.Record),
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
