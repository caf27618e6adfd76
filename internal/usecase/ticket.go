package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/vantran/anishop/internal/domain/errors"
	"github.com/vantran/anishop/internal/domain/model"
	"github.com/vantran/anishop/internal/domain/repository"
	"github.com/vantran/anishop/internal/notify"
)

// TicketUseCase drives the threaded support ticket flow.
type TicketUseCase struct {
	tickets  repository.TicketRepository
	notifier notify.Notifier

	now   func() time.Time
	newID func() string
}

// NewTicketUseCase constructs TicketUseCase.
func NewTicketUseCase(tickets repository.TicketRepository, notifier notify.Notifier) *TicketUseCase {
	return &TicketUseCase{
		tickets:  tickets,
		notifier: notifier,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Create opens a ticket for the actor. The issue text doubles as the first
// message of the thread.
func (u *TicketUseCase) Create(ctx context.Context, actor *model.User, orderID, issue, contactLink string) (*model.SupportTicket, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if blank(issue) {
		return nil, domainErrors.ErrValidation
	}

	now := u.now()
	ticket := &model.SupportTicket{
		ID:          u.newID(),
		UserID:      actor.ID,
		OrderID:     orderID,
		Issue:       issue,
		ContactLink: contactLink,
		Status:      model.TicketStatusOpen,
		CreatedAt:   now,
		Messages: []model.TicketMessage{
			{
				ID:        u.newID(),
				Author:    model.MessageAuthorUser,
				Content:   issue,
				CreatedAt: now,
			},
		},
	}
	ticket.Messages[0].TicketID = ticket.ID

	if err := u.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

// Get returns one ticket, visible to its owner or any admin.
func (u *TicketUseCase) Get(ctx context.Context, actor *model.User, ticketID string) (*model.SupportTicket, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	ticket, err := u.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.UserID != actor.ID && !actor.IsAdmin() {
		return nil, domainErrors.ErrPermissionDenied
	}
	return ticket, nil
}

// ListMine returns the actor's tickets.
func (u *TicketUseCase) ListMine(ctx context.Context, actor *model.User) ([]model.SupportTicket, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	return u.tickets.ListByUser(ctx, actor.ID)
}

// ListAll returns every ticket, admin-only.
func (u *TicketUseCase) ListAll(ctx context.Context, actor *model.User) ([]model.SupportTicket, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return u.tickets.ListAll(ctx)
}

// Reply appends a message to the thread. An admin reply flips the ticket to
// answered, a customer reply reopens it.
func (u *TicketUseCase) Reply(ctx context.Context, actor *model.User, ticketID, content string) (*model.SupportTicket, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if blank(content) {
		return nil, domainErrors.ErrValidation
	}

	ticket, err := u.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.UserID != actor.ID && !actor.IsAdmin() {
		return nil, domainErrors.ErrPermissionDenied
	}

	author := model.MessageAuthorUser
	nextStatus := model.TicketStatusOpen
	if actor.IsAdmin() {
		author = model.MessageAuthorAdmin
		nextStatus = model.TicketStatusAnswered
	}

	msg := &model.TicketMessage{
		ID:        u.newID(),
		TicketID:  ticket.ID,
		Author:    author,
		Content:   content,
		CreatedAt: u.now(),
	}
	if err := u.tickets.AppendMessage(ctx, msg); err != nil {
		return nil, err
	}
	if ticket.Status != nextStatus {
		if err := u.tickets.SetStatus(ctx, ticket.ID, nextStatus); err != nil {
			return nil, err
		}
		ticket.Status = nextStatus
	}
	ticket.Messages = append(ticket.Messages, *msg)

	if actor.IsAdmin() {
		u.notifier.Notify(ctx, ticket.UserID, ticket.OrderID, "Support replied to your ticket")
	}
	return ticket, nil
}

// SetStatus force-sets ticket status, admin-only. Used to close or reopen a
// thread regardless of who replied last.
func (u *TicketUseCase) SetStatus(ctx context.Context, actor *model.User, ticketID string, status model.TicketStatus) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if !status.Valid() {
		return domainErrors.ErrValidation
	}
	return u.tickets.SetStatus(ctx, ticketID, status)
}
