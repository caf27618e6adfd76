package dto

import "time"

// CreateTicketRequest opens a support ticket, optionally bound to an order.
type CreateTicketRequest struct {
	OrderID     string `json:"orderId"`
	Issue       string `json:"issue"`
	ContactLink string `json:"contactLink"`
}

// ReplyRequest appends one message to a ticket thread.
type ReplyRequest struct {
	Content string `json:"content"`
}

// TicketStatusRequest forces a ticket status.
type TicketStatusRequest struct {
	Status string `json:"status"`
}

// TicketMessageResponse is one entry of the ticket thread.
type TicketMessageResponse struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"timestamp"`
}

// TicketResponse is a ticket with its conversation.
type TicketResponse struct {
	ID          string                  `json:"id"`
	UserID      string                  `json:"userId"`
	OrderID     string                  `json:"orderId,omitempty"`
	Issue       string                  `json:"issue"`
	ContactLink string                  `json:"contactLink,omitempty"`
	Status      string                  `json:"status"`
	CreatedAt   time.Time               `json:"createdAt"`
	Messages    []TicketMessageResponse `json:"messages"`
}
