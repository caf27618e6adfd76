package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	domainErrors "github.com/vantran/anishop/internal/domain/errors"
	"github.com/vantran/anishop/internal/domain/model"
	"github.com/vantran/anishop/internal/domain/repository"
	"github.com/vantran/anishop/internal/notify"
)

const (
	orderIDPrefix      = "ANI"
	orderIDSuffixLen   = 6
	orderIDMaxAttempts = 5
)

const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// newOrderID allocates a short human-readable order id. Collisions are
// practically impossible at this entropy but creation still retries on a
// duplicate-key error rather than trusting probability.
func newOrderID() string {
	suffix := make([]byte, orderIDSuffixLen)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(base36Alphabet))))
		if err != nil {
			panic(fmt.Sprintf("crypto/rand unavailable: %v", err))
		}
		suffix[i] = base36Alphabet[n.Int64()]
	}
	return orderIDPrefix + "-" + string(suffix)
}

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders   repository.OrderRepository
	vouchers repository.VoucherRepository
	settings repository.SettingsRepository
	notifier notify.Notifier

	now   func() time.Time
	newID func() string
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(
	orders repository.OrderRepository,
	vouchers repository.VoucherRepository,
	settings repository.SettingsRepository,
	notifier notify.Notifier,
) *OrderUseCase {
	return &OrderUseCase{
		orders:   orders,
		vouchers: vouchers,
		settings: settings,
		notifier: notifier,
		now:      time.Now,
		newID:    newOrderID,
	}
}

func (u *OrderUseCase) currentSettings(ctx context.Context) (model.Settings, error) {
	stored, err := u.settings.Get(ctx)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return model.DefaultSettings(), nil
		}
		return model.Settings{}, err
	}
	return *stored, nil
}

// serviceFeeFor resolves the fee from the voucher code. Unknown codes and the
// explicit "none" sentinel both charge nothing; the fee is fixed here at
// creation time and never recalculated.
func (u *OrderUseCase) serviceFeeFor(ctx context.Context, code string) (float64, error) {
	if code == "" || code == model.NoVoucherCode {
		return 0, nil
	}
	voucher, err := u.vouchers.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return voucher.Price, nil
}

// Create places a new proxy-purchase order for the actor.
func (u *OrderUseCase) Create(ctx context.Context, actor *model.User, input model.CreateOrderInput) (*model.Order, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if actor.Banned() {
		return nil, &domainErrors.BannedError{Reason: actor.BanReason}
	}
	if blank(input.ProductLink) || input.Quantity < 1 {
		return nil, domainErrors.ErrValidation
	}
	if err := ValidateShippingInfo(input.Shipping); err != nil {
		return nil, err
	}

	settings, err := u.currentSettings(ctx)
	if err != nil {
		return nil, err
	}
	if settings.MaintenanceMode && !actor.IsAdmin() {
		return nil, domainErrors.ErrMaintenance
	}

	count, err := u.orders.Count(ctx)
	if err != nil {
		return nil, err
	}
	// A zero limit closes intake entirely, same as the admin setting the
	// shop to capacity.
	if count >= settings.OrderLimit {
		return nil, domainErrors.ErrOrderLimitReached
	}

	fee, err := u.serviceFeeFor(ctx, input.VoucherCode)
	if err != nil {
		return nil, err
	}

	voucherCode := input.VoucherCode
	if voucherCode == "" {
		voucherCode = model.NoVoucherCode
	}

	now := u.now()
	order := &model.Order{
		UserID:        actor.ID,
		ProductLink:   input.ProductLink,
		Quantity:      input.Quantity,
		VoucherCode:   voucherCode,
		ShippingInfo:  input.Shipping,
		ServiceFee:    fee,
		Status:        model.OrderStatusPendingApproval,
		PaymentStatus: model.PaymentStatusUnpaid,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	for attempt := 0; attempt < orderIDMaxAttempts; attempt++ {
		order.ID = u.newID()
		err = u.orders.Create(ctx, order)
		if err == nil {
			u.notifier.Notify(ctx, actor.ID, order.ID, "Order "+order.ID+" received, awaiting approval")
			return order, nil
		}
		if !errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("allocate order id: %w", err)
}

// Get returns one order, visible to its owner or any admin.
func (u *OrderUseCase) Get(ctx context.Context, actor *model.User, orderID string) (*model.Order, error) {
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
	return order, nil
}

// ListMine returns the actor's orders, newest first.
func (u *OrderUseCase) ListMine(ctx context.Context, actor *model.User) ([]model.Order, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	return u.orders.ListByUser(ctx, actor.ID)
}

// ListAll returns every order, admin-only.
func (u *OrderUseCase) ListAll(ctx context.Context, actor *model.User) ([]model.Order, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return u.orders.ListAll(ctx)
}

// UpdateDetails replaces the stored order record, admin-only. The status
// machine is deliberately permissive; the hard guards are the tracking code
// on carrier handoff and the terminal states.
func (u *OrderUseCase) UpdateDetails(ctx context.Context, actor *model.User, updated *model.Order, cancellationReason string) (*model.Order, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if updated == nil || !updated.Status.Valid() || !updated.PaymentStatus.Valid() {
		return nil, domainErrors.ErrValidation
	}

	existing, err := u.orders.GetByID(ctx, updated.ID)
	if err != nil {
		return nil, err
	}

	statusChanged := existing.Status != updated.Status
	if existing.Status.Terminal() && statusChanged {
		return nil, domainErrors.ErrTerminalStatus
	}
	if updated.Status == model.OrderStatusHandedToCarrier && blank(updated.TrackingCode) {
		return nil, domainErrors.ErrTrackingRequired
	}

	// Immutable fields survive a full-record replace.
	updated.UserID = existing.UserID
	updated.ServiceFee = existing.ServiceFee
	updated.CreatedAt = existing.CreatedAt

	if updated.Status == model.OrderStatusCancelled && cancellationReason != "" {
		updated.CancellationReason = cancellationReason
	}

	if err := u.orders.Update(ctx, updated); err != nil {
		return nil, err
	}

	if statusChanged {
		u.notifier.Notify(ctx, updated.UserID, updated.ID,
			"Order "+updated.ID+" moved to "+string(updated.Status))
	} else {
		u.notifier.Notify(ctx, updated.UserID, updated.ID,
			"Order "+updated.ID+" details updated")
	}
	return updated, nil
}

// ConfirmPayment records the customer's claim that the service fee was paid.
// Safe to repeat; an order already marked paid is left untouched.
func (u *OrderUseCase) ConfirmPayment(ctx context.Context, actor *model.User, orderID string) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.UserID != actor.ID {
		return domainErrors.ErrPermissionDenied
	}
	if order.PaymentStatus == model.PaymentStatusPaid ||
		order.PaymentStatus == model.PaymentStatusAwaitingConfirmation {
		return nil
	}
	return u.orders.SetPaymentStatus(ctx, orderID, model.PaymentStatusAwaitingConfirmation)
}

// RequestCancellation flags a not-yet-approved order for admin cancellation.
func (u *OrderUseCase) RequestCancellation(ctx context.Context, actor *model.User, orderID string) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.UserID != actor.ID {
		return domainErrors.ErrPermissionDenied
	}
	if order.Status != model.OrderStatusPendingApproval {
		return domainErrors.ErrValidation
	}

	order.Status = model.OrderStatusCancelRequested
	if err := u.orders.Update(ctx, order); err != nil {
		return err
	}
	u.notifier.Notify(ctx, order.UserID, order.ID, "Cancellation requested for order "+order.ID)
	return nil
}

// ResetAll clears the whole order collection, admin-only.
func (u *OrderUseCase) ResetAll(ctx context.Context, actor *model.User) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	return u.orders.DeleteAll(ctx)
}

// TotalRevenue sums service fees over delivered orders, admin-only.
func (u *OrderUseCase) TotalRevenue(ctx context.Context, actor *model.User) (float64, error) {
	if err := requireAdmin(actor); err != nil {
		return 0, err
	}
	return u.orders.SumServiceFee(ctx, model.OrderStatusDelivered)
}
