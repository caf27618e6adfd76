package repository

import (
	"context"

	"github.com/vantran/anishop/internal/domain/model"
)

// TicketRepository describes persistence for support tickets.
type TicketRepository interface {
	Create(ctx context.Context, ticket *model.SupportTicket) error
	GetByID(ctx context.Context, id string) (*model.SupportTicket, error)
	ListByUser(ctx context.Context, userID string) ([]model.SupportTicket, error)
	ListAll(ctx context.Context) ([]model.SupportTicket, error)
	AppendMessage(ctx context.Context, msg *model.TicketMessage) error
	SetStatus(ctx context.Context, id string, status model.TicketStatus) error
	ReplaceAll(ctx context.Context, tickets []model.SupportTicket) error
}
