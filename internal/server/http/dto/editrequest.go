package dto

import "time"

// EditRequestResponse is an order edit proposal with its review state.
type EditRequestResponse struct {
	ID              string           `json:"id"`
	OrderID         string           `json:"orderId"`
	Status          string           `json:"status"`
	CreatedAt       time.Time        `json:"createdAt"`
	RejectionReason string           `json:"rejectionReason,omitempty"`
	ExpiresAt       *time.Time       `json:"expiresAt,omitempty"`
	OldData         *ShippingPayload `json:"oldData,omitempty"`
	NewData         *ShippingPayload `json:"newData,omitempty"`
	Changes         []FieldChange    `json:"changes,omitempty"`
}

// FieldChange is one row of the old/new diff shown to the reviewing admin.
type FieldChange struct {
	Field string `json:"field"`
	Old   string `json:"old"`
	New   string `json:"new"`
}

// EditLinkResponse returns the one-time public edit URL.
type EditLinkResponse struct {
	URL string `json:"url"`
}

// EditLinkLookupResponse is the public view behind a valid link.
type EditLinkLookupResponse struct {
	OrderID  string          `json:"orderId"`
	Shipping ShippingPayload `json:"shipping"`
}

// RejectRequest carries the rejection reason.
type RejectRequest struct {
	Reason string `json:"reason"`
}
