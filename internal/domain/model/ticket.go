package model

import "time"

// TicketStatus describes support ticket lifecycle.
type TicketStatus string

const (
	TicketStatusOpen     TicketStatus = "OPEN"
	TicketStatusAnswered TicketStatus = "ANSWERED"
	TicketStatusClosed   TicketStatus = "CLOSED"
)

// Valid reports whether the value is one of the known statuses.
func (s TicketStatus) Valid() bool {
	return s == TicketStatusOpen || s == TicketStatusAnswered || s == TicketStatusClosed
}

// MessageAuthor identifies which side of the conversation wrote a message.
type MessageAuthor string

const (
	MessageAuthorUser  MessageAuthor = "user"
	MessageAuthorAdmin MessageAuthor = "admin"
)

// TicketMessage is one entry of a ticket's threaded conversation.
type TicketMessage struct {
	ID        string        `json:"id"`
	TicketID  string        `json:"ticketId"`
	Author    MessageAuthor `json:"author"`
	Content   string        `json:"content"`
	CreatedAt time.Time     `json:"timestamp"`
}

// SupportTicket is a customer issue report optionally bound to an order,
// with a threaded reply history.
type SupportTicket struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	OrderID     string          `json:"orderId,omitempty"`
	Issue       string          `json:"issue"`
	ContactLink string          `json:"contactLink,omitempty"`
	Status      TicketStatus    `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	Messages    []TicketMessage `json:"messages"`
}
