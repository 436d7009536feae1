package v1

import (
	"net/http"
	"time"

	"github.com/buccusa/buccusa-api/internal/domain/entity"
	"github.com/buccusa/buccusa-api/internal/domain/inquiries"
	"github.com/buccusa/buccusa-api/internal/domain/members"

	"github.com/gin-gonic/gin"
)

// SubmissionHandler serves publicly submitted records that admins review
type SubmissionHandler interface {
	Submit(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	UpdateStatus(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type submissionHandler[T, R any, PR requestPtr[T, R], Res any] struct {
	kind       string
	service    entity.SubmissionService[T]
	toResponse func(*T) Res
	now        func() time.Time
}

func newSubmissionHandler[T, R any, PR requestPtr[T, R], Res any](
	kind string,
	service entity.SubmissionService[T],
	toResponse func(*T) Res,
) *submissionHandler[T, R, PR, Res] {
	return &submissionHandler[T, R, PR, Res]{kind: kind, service: service, toResponse: toResponse, now: time.Now}
}

// Submit stores a public submission with its initial status
func (h *submissionHandler[T, R, PR, Res]) Submit(ctx *gin.Context) {
	var req R
	if !bindJSON(ctx, &req) {
		return
	}

	created, err := h.service.Submit(ctx, PR(&req).toDomain())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    h.toResponse(created),
		Message: "Thank you, your " + h.kind + " has been received",
	})
}

func (h *submissionHandler[T, R, PR, Res]) List(ctx *gin.Context) {
	page, err := h.service.List(ctx, parseQuery(ctx, h.now()))
	if err != nil {
		respondError(ctx, err)
		return
	}

	respondPage(ctx, page, h.toResponse, false)
}

func (h *submissionHandler[T, R, PR, Res]) GetByID(ctx *gin.Context) {
	item, err := h.service.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, h.toResponse(item))
}

func (h *submissionHandler[T, R, PR, Res]) UpdateStatus(ctx *gin.Context) {
	var req StatusRequest
	if !bindJSON(ctx, &req) {
		return
	}

	updated, err := h.service.UpdateStatus(ctx, ctx.Param("id"), req.Status)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, h.toResponse(updated))
}

func (h *submissionHandler[T, R, PR, Res]) DeleteByID(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := h.service.DeleteByID(ctx, id); err != nil {
		respondError(ctx, err)
		return
	}

	respondMessage(ctx, "deleted "+h.kind+" with id "+id)
}

// NewPartnershipHandler creates a SubmissionHandler for partnership requests
func NewPartnershipHandler(service inquiries.PartnershipService) SubmissionHandler {
	return newSubmissionHandler[inquiries.PartnershipRequest, PartnershipRequestBody]("partnership request", service, newPartnershipResponse)
}

// NewVolunteerHandler creates a SubmissionHandler for volunteer submissions
func NewVolunteerHandler(service inquiries.VolunteerService) SubmissionHandler {
	return newSubmissionHandler[inquiries.VolunteerSubmission, VolunteerRequest]("volunteer submission", service, newVolunteerResponse)
}

// MemberHandler adds admin create and update to member submissions
type MemberHandler interface {
	SubmissionHandler
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
}

type memberHandler struct {
	*submissionHandler[members.Member, MemberRequest, *MemberRequest, MemberResponse]
}

// NewMemberHandler creates a MemberHandler
func NewMemberHandler(service members.Service) MemberHandler {
	return &memberHandler{
		submissionHandler: newSubmissionHandler[members.Member, MemberRequest]("membership registration", service, newMemberResponse),
	}
}

// Submit registers a member from the public form; any status in the body is ignored
func (h *memberHandler) Submit(ctx *gin.Context) {
	var req MemberRequest
	if !bindJSON(ctx, &req) {
		return
	}
	req.Status = ""

	created, err := h.service.Submit(ctx, req.toDomain())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    newMemberResponse(created),
		Message: "Thank you, your membership registration has been received",
	})
}

// Create adds a member without notifications
func (h *memberHandler) Create(ctx *gin.Context) {
	var req MemberRequest
	if !bindJSON(ctx, &req) {
		return
	}

	created, err := h.service.Create(ctx, req.toDomain())
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusCreated, newMemberResponse(created))
}

func (h *memberHandler) Update(ctx *gin.Context) {
	var req MemberRequest
	if !bindJSON(ctx, &req) {
		return
	}

	member := req.toDomain()
	if existing, err := h.service.GetByID(ctx, ctx.Param("id")); err == nil {
		member.JoinedAt = existing.JoinedAt
	}
	if err := member.SetStatus(member.Status, h.now()); err != nil {
		respondError(ctx, err)
		return
	}
	updated, err := h.service.Update(ctx, ctx.Param("id"), member)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, newMemberResponse(updated))
}

// MessageHandler serves the contact form and the admin inbox
type MessageHandler interface {
	SubmissionHandler
	ListReplies(ctx *gin.Context)
	Reply(ctx *gin.Context)
}

type messageHandler struct {
	*submissionHandler[inquiries.ContactMessage, ContactRequest, *ContactRequest, ContactMessageResponse]
	messages inquiries.MessageService
}

// NewMessageHandler creates a MessageHandler
func NewMessageHandler(service inquiries.MessageService) MessageHandler {
	return &messageHandler{
		submissionHandler: newSubmissionHandler[inquiries.ContactMessage, ContactRequest]("message", service, newContactMessageResponse),
		messages:          service,
	}
}

// GetByID opens the message, marking it read
func (h *messageHandler) GetByID(ctx *gin.Context) {
	msg, err := h.messages.Open(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, newContactMessageResponse(msg))
}

func (h *messageHandler) ListReplies(ctx *gin.Context) {
	replies, err := h.messages.Replies(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, mapAll(replies, newReplyResponse))
}

// Reply emails the sender and records the reply with its delivery outcome
func (h *messageHandler) Reply(ctx *gin.Context) {
	var req ReplyRequest
	if !bindJSON(ctx, &req) {
		return
	}

	admin := currentAdmin(ctx)
	if admin == nil {
		respondError(ctx, errMissingAdmin)
		return
	}

	reply, err := h.messages.Reply(ctx, ctx.Param("id"), admin.ID, req.Subject, req.Body)
	if err != nil {
		respondError(ctx, err)
		return
	}

	message := "reply sent"
	if !reply.Delivered {
		message = "reply saved but the email could not be delivered"
	}
	ctx.JSON(http.StatusCreated, Response{Success: true, Data: newReplyResponse(reply), Message: message})
}
