package model

import "time"

// OrderStatus describes order fulfillment lifecycle.
type OrderStatus string

const (
	OrderStatusPendingApproval OrderStatus = "PENDING_APPROVAL"
	OrderStatusCancelRequested OrderStatus = "CANCEL_REQUESTED"
	OrderStatusPlaced          OrderStatus = "PLACED"
	OrderStatusAwaitingSeller  OrderStatus = "AWAITING_SELLER"
	OrderStatusHandedToCarrier OrderStatus = "HANDED_TO_CARRIER"
	OrderStatusDelivered       OrderStatus = "DELIVERED"
	OrderStatusCancelled       OrderStatus = "CANCELLED"
)

// Terminal reports whether no further transition is allowed out of the status.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// Valid reports whether the value is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPendingApproval, OrderStatusCancelRequested, OrderStatusPlaced,
		OrderStatusAwaitingSeller, OrderStatusHandedToCarrier, OrderStatusDelivered,
		OrderStatusCancelled:
		return true
	}
	return false
}

// PaymentStatus tracks the user-asserted service fee payment flow.
type PaymentStatus string

const (
	PaymentStatusUnpaid               PaymentStatus = "UNPAID"
	PaymentStatusAwaitingConfirmation PaymentStatus = "AWAITING_CONFIRMATION"
	PaymentStatusPaid                 PaymentStatus = "PAID"
)

// Valid reports whether the value is one of the known payment statuses.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusUnpaid, PaymentStatusAwaitingConfirmation, PaymentStatusPaid:
		return true
	}
	return false
}

// ShippingInfo groups the order fields a customer may ask to change
// after the order was created.
type ShippingInfo struct {
	CustomerName string `json:"customerName"`
	Address      string `json:"address"`
	Contact      string `json:"contact"`
	Notes        string `json:"notes"`
	Email        string `json:"email"`
}

// Order is a proxy-purchase request placed by a customer and fulfilled
// manually by the shop operator.
type Order struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	ProductLink string `json:"productLink"`
	Quantity    int    `json:"quantity"`
	VoucherCode string `json:"voucherCode"`
	ShippingInfo
	ServiceFee         float64       `json:"serviceFee"`
	Status             OrderStatus   `json:"status"`
	PaymentStatus      PaymentStatus `json:"paymentStatus"`
	TrackingCode       string        `json:"mvd"` // mã vận đơn, gates the HANDED_TO_CARRIER transition
	CancellationReason string        `json:"cancellationReason,omitempty"`
	CreatedAt          time.Time     `json:"createdAt"`
	UpdatedAt          time.Time     `json:"updatedAt"`
}

// CreateOrderInput carries the order form fields.
type CreateOrderInput struct {
	ProductLink string
	Quantity    int
	VoucherCode string
	Shipping    ShippingInfo
}
