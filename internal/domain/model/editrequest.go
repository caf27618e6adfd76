package model

import "time"

// EditRequestStatus describes the approval pipeline state.
type EditRequestStatus string

const (
	EditRequestStatusPending  EditRequestStatus = "pending"
	EditRequestStatusApproved EditRequestStatus = "approved"
	EditRequestStatusRejected EditRequestStatus = "rejected"
)

// EditRequest is a proposed change to an order's shipping fields awaiting
// admin review. Two flows create it: a logged-in customer submits old and new
// data directly, or the admin issues a single-use expiring token link and the
// customer fills the data in later.
type EditRequest struct {
	ID              string            `json:"id"`
	OrderID         string            `json:"orderId"`
	Status          EditRequestStatus `json:"status"`
	CreatedAt       time.Time         `json:"createdAt"`
	RejectionReason string            `json:"rejectionReason,omitempty"`

	// Link flow only. Token is cleared on submission so a link cannot be
	// replayed; ExpiresAt bounds its lifetime.
	Token     string     `json:"token,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`

	// Empty for a freshly issued link, populated on submission.
	OldData *ShippingInfo `json:"oldData,omitempty"`
	NewData *ShippingInfo `json:"newData,omitempty"`
}

// Submitted reports whether the request carries data ready for review.
func (r *EditRequest) Submitted() bool {
	return r.NewData != nil
}

// Expired reports whether a link-flow request can no longer be submitted.
func (r *EditRequest) Expired(now time.Time) bool {
	return r.ExpiresAt != nil && now.After(*r.ExpiresAt)
}

// FieldChange is one entry of the old/new diff shown to the reviewing admin.
type FieldChange struct {
	Field string `json:"field"`
	Old   string `json:"old"`
	New   string `json:"new"`
}
