package repository

import (
	"context"

	"github.com/vantran/anishop/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id string) (*model.Order, error)
	ListByUser(ctx context.Context, userID string) ([]model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	Count(ctx context.Context) (int, error)
	// Update replaces the stored record matching order.ID.
	Update(ctx context.Context, order *model.Order) error
	UpdateShipping(ctx context.Context, orderID string, info model.ShippingInfo) error
	SetPaymentStatus(ctx context.Context, orderID string, status model.PaymentStatus) error
	SumServiceFee(ctx context.Context, status model.OrderStatus) (float64, error)
	DeleteAll(ctx context.Context) error
	ReplaceAll(ctx context.Context, orders []model.Order) error
}
