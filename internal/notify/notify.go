// Package notify delivers short in-app notifications to customers.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// keepPerUser caps retained events so the feed stays a short recap.
const keepPerUser = 5

// Event is a single notification shown in the customer's feed.
type Event struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	OrderID   string    `json:"orderId,omitempty"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// Notifier publishes and serves per-user notification feeds.
type Notifier interface {
	Notify(ctx context.Context, userID, orderID, message string)
	ListForUser(userID string) []Event
	MarkAllRead(userID string)
}

// Hub is an in-memory Notifier.
type Hub struct {
	logger *slog.Logger
	now    func() time.Time

	mu     sync.Mutex
	events map[string][]Event
}

// NewHub creates an empty notification hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger: logger,
		now:    time.Now,
		events: make(map[string][]Event),
	}
}

// Notify records an event for the user, evicting the oldest beyond the cap.
func (h *Hub) Notify(_ context.Context, userID, orderID, message string) {
	if userID == "" || message == "" {
		return
	}

	event := Event{
		ID:        uuid.NewString(),
		UserID:    userID,
		OrderID:   orderID,
		Message:   message,
		CreatedAt: h.now(),
	}

	h.mu.Lock()
	queue := append(h.events[userID], event)
	if len(queue) > keepPerUser {
		queue = queue[len(queue)-keepPerUser:]
	}
	h.events[userID] = queue
	h.mu.Unlock()

	h.logger.Info("notification",
		slog.String("user_id", userID),
		slog.String("order_id", orderID),
		slog.String("message", message),
	)
}

// ListForUser returns the user's events, newest first.
func (h *Hub) ListForUser(userID string) []Event {
	h.mu.Lock()
	defer h.mu.Unlock()

	queue := h.events[userID]
	result := make([]Event, 0, len(queue))
	for i := len(queue) - 1; i >= 0; i-- {
		result = append(result, queue[i])
	}
	return result
}

// MarkAllRead flags every event of the user as read.
func (h *Hub) MarkAllRead(userID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	queue := h.events[userID]
	for i := range queue {
		queue[i].Read = true
	}
}
