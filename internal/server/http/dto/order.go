package dto

import "time"

// ShippingPayload groups the editable delivery fields.
type ShippingPayload struct {
	CustomerName string `json:"customerName"`
	Address      string `json:"address"`
	Contact      string `json:"contact"`
	Notes        string `json:"notes"`
	Email        string `json:"email"`
}

// CreateOrderRequest is the customer purchase request payload.
type CreateOrderRequest struct {
	ProductLink string `json:"productLink"`
	Quantity    int    `json:"quantity"`
	VoucherCode string `json:"voucherCode"`
	ShippingPayload
}

// UpdateOrderRequest is the admin full-record order edit.
type UpdateOrderRequest struct {
	ProductLink string `json:"productLink"`
	Quantity    int    `json:"quantity"`
	VoucherCode string `json:"voucherCode"`
	ShippingPayload
	Status             string `json:"status"`
	PaymentStatus      string `json:"paymentStatus"`
	TrackingCode       string `json:"mvd"`
	CancellationReason string `json:"cancellationReason"`
}

// OrderResponse mirrors the stored order; PaymentURL is filled on single
// order reads for fee-bearing orders.
type OrderResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	ProductLink string `json:"productLink"`
	Quantity    int    `json:"quantity"`
	VoucherCode string `json:"voucherCode"`
	ShippingPayload
	ServiceFee         float64   `json:"serviceFee"`
	Status             string    `json:"status"`
	PaymentStatus      string    `json:"paymentStatus"`
	TrackingCode       string    `json:"mvd"`
	CancellationReason string    `json:"cancellationReason,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
	PaymentURL         string    `json:"paymentUrl,omitempty"`
}

// RevenueResponse is the admin revenue summary.
type RevenueResponse struct {
	Total float64 `json:"total"`
}
