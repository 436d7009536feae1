//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"github.com/buccusa/buccusa-api/internal/domain/admins"
	"github.com/buccusa/buccusa-api/internal/domain/content"
	"github.com/buccusa/buccusa-api/internal/domain/entity"
	"github.com/buccusa/buccusa-api/internal/domain/inquiries"
	"github.com/buccusa/buccusa-api/internal/domain/media"
	"github.com/buccusa/buccusa-api/internal/domain/members"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func testRecord() entity.Record {
	var r entity.Record
	r.Stamp(time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC))
	return r
}

func TestEventModel_RoundTrip(t *testing.T) {
	end := time.Date(2026, 6, 2, 18, 0, 0, 0, time.UTC)
	event := &content.Event{
		Record:      testRecord(),
		Title:       "Conference",
		Description: "Annual gathering",
		Location:    "Columbus, OH",
		StartsAt:    time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC),
		EndsAt:      &end,
		Featured:    true,
		Published:   true,
	}

	model := &EventModel{}
	model.FromDomain(event)

	assert.Equal(t, event.ID, model.ID)
	assert.Equal(t, event.CreatedAt, model.CreatedAt)
	if diff := cmp.Diff(event, model.ToDomain()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestPostModel_RoundTrip(t *testing.T) {
	published := time.Date(2026, 4, 11, 8, 0, 0, 0, time.UTC)
	post := &content.Post{
		Record:      testRecord(),
		Title:       "Hello",
		Slug:        "hello",
		Body:        "World",
		Published:   true,
		PublishedAt: &published,
	}

	model := &PostModel{}
	model.FromDomain(post)

	if diff := cmp.Diff(post, model.ToDomain()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestAdminModel_ToDomain(t *testing.T) {
	model := &AdminModel{
		Base:         Base{ID: "admin-id", CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Username:     "root",
		Email:        "root@buccusa.org",
		PasswordHash: "hash",
		Role:         admins.RoleSuperAdmin,
		Active:       true,
	}

	admin := model.ToDomain()

	assert.Equal(t, model.ID, admin.ID)
	assert.Equal(t, model.Username, admin.Username)
	assert.Equal(t, model.Email, admin.Email)
	assert.Equal(t, model.PasswordHash, admin.PasswordHash)
	assert.Equal(t, model.Role, admin.Role)
	assert.True(t, admin.Active)
	assert.Nil(t, admin.LastLoginAt)
}

func TestInquiryModels_RoundTrip(t *testing.T) {
	msg := &inquiries.ContactMessage{Record: testRecord(), Name: "Ama", Email: "ama@example.org", Message: "Hi", Status: inquiries.MessageStatusNew}
	msgModel := &ContactMessageModel{}
	msgModel.FromDomain(msg)
	assert.Empty(t, cmp.Diff(msg, msgModel.ToDomain()))

	reply := &inquiries.MessageReply{Record: testRecord(), MessageID: msg.ID, AdminID: "a", Subject: "Re", Body: "Thanks", DeliveryError: "timeout"}
	replyModel := &MessageReplyModel{}
	replyModel.FromDomain(reply)
	assert.Empty(t, cmp.Diff(reply, replyModel.ToDomain()))

	partner := &inquiries.PartnershipRequest{Record: testRecord(), OrganizationName: "Org", ContactName: "C", Email: "c@org.org", Status: inquiries.ReviewStatusPending}
	partnerModel := &PartnershipRequestModel{}
	partnerModel.FromDomain(partner)
	assert.Empty(t, cmp.Diff(partner, partnerModel.ToDomain()))

	volunteer := &inquiries.VolunteerSubmission{Record: testRecord(), Name: "V", Email: "v@example.org", Interests: "media", Status: inquiries.ReviewStatusApproved}
	volunteerModel := &VolunteerSubmissionModel{}
	volunteerModel.FromDomain(volunteer)
	assert.Empty(t, cmp.Diff(volunteer, volunteerModel.ToDomain()))
}

func TestMemberAndAssetModels_RoundTrip(t *testing.T) {
	joined := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	member := &members.Member{Record: testRecord(), FirstName: "Yaw", LastName: "M", Email: "yaw@example.org", Status: members.StatusActive, JoinedAt: &joined}
	memberModel := &MemberModel{}
	memberModel.FromDomain(member)
	assert.Empty(t, cmp.Diff(member, memberModel.ToDomain()))

	asset := &media.Asset{Record: testRecord(), Name: "a.png", StoredName: "x.png", ContentType: "image/png", Size: 10, URL: "http://h/x.png", Provider: "local"}
	assetModel := &AssetModel{}
	assetModel.FromDomain(asset)
	assert.Empty(t, cmp.Diff(asset, assetModel.ToDomain()))
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "media_assets", AssetModel{}.TableName())
	assert.Equal(t, "message_replies", MessageReplyModel{}.TableName())
	assert.Equal(t, "gallery_items", GalleryItemModel{}.TableName())
	assert.Len(t, All(), 14)
}
