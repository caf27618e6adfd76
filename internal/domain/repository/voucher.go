package repository

import (
	"context"

	"github.com/vantran/anishop/internal/domain/model"
)

// VoucherRepository describes persistence for vouchers.
type VoucherRepository interface {
	Create(ctx context.Context, voucher *model.Voucher) error
	GetByCode(ctx context.Context, code string) (*model.Voucher, error)
	List(ctx context.Context) ([]model.Voucher, error)
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, vouchers []model.Voucher) error
}
