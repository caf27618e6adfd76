package usecase

import (
	"context"

	"github.com/google/uuid"

	domainErrors "github.com/vantran/anishop/internal/domain/errors"
	"github.com/vantran/anishop/internal/domain/model"
	"github.com/vantran/anishop/internal/domain/repository"
)

// VoucherUseCase manages the service fee catalog.
type VoucherUseCase struct {
	vouchers repository.VoucherRepository

	newID func() string
}

// NewVoucherUseCase constructs VoucherUseCase.
func NewVoucherUseCase(vouchers repository.VoucherRepository) *VoucherUseCase {
	return &VoucherUseCase{vouchers: vouchers, newID: uuid.NewString}
}

// List returns all vouchers; shown to customers on the order form.
func (u *VoucherUseCase) List(ctx context.Context) ([]model.Voucher, error) {
	return u.vouchers.List(ctx)
}

// Create adds a voucher, admin-only. Fee must be non-negative and the code
// unique.
func (u *VoucherUseCase) Create(ctx context.Context, actor *model.User, code, description string, price float64) (*model.Voucher, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if blank(code) || price < 0 {
		return nil, domainErrors.ErrValidation
	}

	voucher := &model.Voucher{
		ID:          u.newID(),
		Code:        code,
		Description: description,
		Price:       price,
	}
	if err := u.vouchers.Create(ctx, voucher); err != nil {
		return nil, err
	}
	return voucher, nil
}

// Delete removes a voucher, admin-only. Orders keep the code string, so
// historical fees are unaffected.
func (u *VoucherUseCase) Delete(ctx context.Context, actor *model.User, id string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	return u.vouchers.Delete(ctx, id)
}
