package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/vantran/anishop/internal/domain/errors"
	"github.com/vantran/anishop/internal/domain/model"
	"github.com/vantran/anishop/internal/domain/repository"
	"github.com/vantran/anishop/internal/notify"
)

// newLinkToken generates the single-use token embedded in an edit link.
func newLinkToken() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("crypto/rand unavailable: %v", err))
	}
	return hex.EncodeToString(buf)
}

// EditRequestUseCase drives both edit-request flows and the shared approval
// pipeline.
type EditRequestUseCase struct {
	requests repository.EditRequestRepository
	orders   repository.OrderRepository
	notifier notify.Notifier

	baseURL string
	linkTTL time.Duration

	now      func() time.Time
	newID    func() string
	newToken func() string
}

// NewEditRequestUseCase constructs EditRequestUseCase.
func NewEditRequestUseCase(
	requests repository.EditRequestRepository,
	orders repository.OrderRepository,
	notifier notify.Notifier,
	baseURL string,
	linkTTL time.Duration,
) *EditRequestUseCase {
	return &EditRequestUseCase{
		requests: requests,
		orders:   orders,
		notifier: notifier,
		baseURL:  strings.TrimRight(baseURL, "/"),
		linkTTL:  linkTTL,
		now:      time.Now,
		newID:    uuid.NewString,
		newToken: newLinkToken,
	}
}

// Request is the direct flow: the logged-in owner proposes a change with both
// old and new data attached. At most one pending request per order.
func (u *EditRequestUseCase) Request(ctx context.Context, actor *model.User, orderID string, oldData, newData model.ShippingInfo) (*model.EditRequest, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != actor.ID && !actor.IsAdmin() {
		return nil, domainErrors.ErrPermissionDenied
	}
	if err := ValidateShippingInfo(newData); err != nil {
		return nil, err
	}

	pending, err := u.requests.HasPendingForOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, domainErrors.ErrEditRequestPending
	}

	req := &model.EditRequest{
		ID:        u.newID(),
		OrderID:   orderID,
		Status:    model.EditRequestStatusPending,
		CreatedAt: u.now(),
		OldData:   &oldData,
		NewData:   &newData,
	}
	if err := u.requests.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// CreateLink is the admin flow: issue a time-boxed single-use URL the customer
// can use without logging in. Unlike the direct flow there is no pending-
// uniqueness check; the admin may issue a fresh link at any time.
func (u *EditRequestUseCase) CreateLink(ctx context.Context, actor *model.User, orderID string) (string, error) {
	if err := requireAdmin(actor); err != nil {
		return "", err
	}
	if _, err := u.orders.GetByID(ctx, orderID); err != nil {
		return "", err
	}

	expires := u.now().Add(u.linkTTL)
	req := &model.EditRequest{
		ID:        u.newID(),
		OrderID:   orderID,
		Status:    model.EditRequestStatusPending,
		CreatedAt: u.now(),
		Token:     u.newToken(),
		ExpiresAt: &expires,
	}
	if err := u.requests.Create(ctx, req); err != nil {
		return "", err
	}
	return u.baseURL + "/edit-order/" + req.Token, nil
}

// resolveLink maps a token to its live request, with distinct failures for
// an unknown or used token, an expired link, and a missing target order.
func (u *EditRequestUseCase) resolveLink(ctx context.Context, token string) (*model.EditRequest, *model.Order, error) {
	req, err := u.requests.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, nil, domainErrors.ErrEditLinkNotFound
		}
		return nil, nil, err
	}
	if req.Status != model.EditRequestStatusPending {
		return nil, nil, domainErrors.ErrEditLinkNotFound
	}
	if req.Expired(u.now()) {
		return nil, nil, domainErrors.ErrEditLinkExpired
	}
	order, err := u.orders.GetByID(ctx, req.OrderID)
	if err != nil {
		return nil, nil, err
	}
	return req, order, nil
}

// GetByToken serves the public edit form behind a link.
func (u *EditRequestUseCase) GetByToken(ctx context.Context, token string) (*model.EditRequest, *model.Order, error) {
	return u.resolveLink(ctx, token)
}

// SubmitFromLink completes the link flow: fills old/new data and burns the
// token.
func (u *EditRequestUseCase) SubmitFromLink(ctx context.Context, token string, newData model.ShippingInfo) error {
	req, order, err := u.resolveLink(ctx, token)
	if err != nil {
		return err
	}
	if err := ValidateShippingInfo(newData); err != nil {
		return err
	}
	return u.requests.SubmitLinkData(ctx, req.ID, order.ShippingInfo, newData)
}

// ListAll returns every edit request, admin-only.
func (u *EditRequestUseCase) ListAll(ctx context.Context, actor *model.User) ([]model.EditRequest, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return u.requests.ListAll(ctx)
}

// Approve copies the request's new data onto the target order and closes the
// request. A link request that was never submitted has nothing to apply.
func (u *EditRequestUseCase) Approve(ctx context.Context, actor *model.User, requestID string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	req, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req.Status != model.EditRequestStatusPending {
		return domainErrors.ErrValidation
	}
	if !req.Submitted() {
		return fmt.Errorf("%w: edit request has no submitted data", domainErrors.ErrValidation)
	}

	order, err := u.orders.GetByID(ctx, req.OrderID)
	if err != nil {
		return err
	}
	if err := u.orders.UpdateShipping(ctx, order.ID, *req.NewData); err != nil {
		return err
	}
	if err := u.requests.SetStatus(ctx, req.ID, model.EditRequestStatusApproved, ""); err != nil {
		return err
	}
	u.notifier.Notify(ctx, order.UserID, order.ID, "Edit request for order "+order.ID+" approved")
	return nil
}

// Reject closes the request with a reason shown to the customer.
func (u *EditRequestUseCase) Reject(ctx context.Context, actor *model.User, requestID, reason string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	req, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req.Status != model.EditRequestStatusPending {
		return domainErrors.ErrValidation
	}
	if err := u.requests.SetStatus(ctx, req.ID, model.EditRequestStatusRejected, reason); err != nil {
		return err
	}
	if order, err := u.orders.GetByID(ctx, req.OrderID); err == nil {
		u.notifier.Notify(ctx, order.UserID, order.ID, "Edit request for order "+order.ID+" rejected")
	}
	return nil
}

// SweepExpiredLinks rejects pending link requests whose token expired without
// a submission, so they stop cluttering the review queue. Returns how many
// were closed.
func (u *EditRequestUseCase) SweepExpiredLinks(ctx context.Context) (int, error) {
	expired, err := u.requests.ListExpiredLinks(ctx, u.now())
	if err != nil {
		return 0, err
	}
	closed := 0
	for _, req := range expired {
		if err := u.requests.SetStatus(ctx, req.ID, model.EditRequestStatusRejected, "edit link expired"); err != nil {
			return closed, err
		}
		closed++
	}
	return closed, nil
}

// Diff lists field-by-field changes for the admin review screen. Purely
// presentational.
func Diff(req *model.EditRequest) []model.FieldChange {
	if req == nil || req.OldData == nil || req.NewData == nil {
		return nil
	}
	fields := []struct {
		name     string
		old, new string
	}{
		{"customerName", req.OldData.CustomerName, req.NewData.CustomerName},
		{"address", req.OldData.Address, req.NewData.Address},
		{"contact", req.OldData.Contact, req.NewData.Contact},
		{"notes", req.OldData.Notes, req.NewData.Notes},
		{"email", req.OldData.Email, req.NewData.Email},
	}
	var changes []model.FieldChange
	for _, f := range fields {
		if f.old != f.new {
			changes = append(changes, model.FieldChange{Field: f.name, Old: f.old, New: f.new})
		}
	}
	return changes
}
