package dto

import "time"

// NotificationResponse is one retained per-user event.
type NotificationResponse struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"orderId,omitempty"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProductInfoResponse is the marketplace lookup result.
type ProductInfoResponse struct {
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
}

// ErrorResponse carries a client-facing failure message.
type ErrorResponse struct {
	Error     string `json:"error"`
	BanReason string `json:"banReason,omitempty"`
}
