package handlers

import (
	"context"

	"github.com/vantran/anishop/internal/domain/model"
	"github.com/vantran/anishop/internal/notify"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, username, email, password string) (*model.User, string, error)
	Authenticate(ctx context.Context, identity, password string) (*model.User, string, error)
	ParseToken(token string) (string, error)
	UserByID(ctx context.Context, id string) (*model.User, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, actor *model.User, input model.CreateOrderInput) (*model.Order, error)
	Order(ctx context.Context, actor *model.User, orderID string) (*model.Order, error)
	MyOrders(ctx context.Context, actor *model.User) ([]model.Order, error)
	AllOrders(ctx context.Context, actor *model.User) ([]model.Order, error)
	UpdateOrder(ctx context.Context, actor *model.User, updated *model.Order, cancellationReason string) (*model.Order, error)
	ConfirmOrderPayment(ctx context.Context, actor *model.User, orderID string) error
	RequestOrderCancellation(ctx context.Context, actor *model.User, orderID string) error
	ResetOrders(ctx context.Context, actor *model.User) error
	TotalRevenue(ctx context.Context, actor *model.User) (float64, error)
	OrderPaymentURL(ctx context.Context, order *model.Order) (string, error)
}

// EditFacade covers both edit-request flows and their admin review.
type EditFacade interface {
	RequestEdit(ctx context.Context, actor *model.User, orderID string, oldData, newData model.ShippingInfo) (*model.EditRequest, error)
	CreateEditLink(ctx context.Context, actor *model.User, orderID string) (string, error)
	EditRequestByToken(ctx context.Context, token string) (*model.EditRequest, *model.Order, error)
	SubmitEditFromLink(ctx context.Context, token string, newData model.ShippingInfo) error
	EditRequests(ctx context.Context, actor *model.User) ([]model.EditRequest, error)
	ApproveEdit(ctx context.Context, actor *model.User, requestID string) error
	RejectEdit(ctx context.Context, actor *model.User, requestID, reason string) error
	Order(ctx context.Context, actor *model.User, orderID string) (*model.Order, error)
}

// TicketFacade provides support ticket operations.
type TicketFacade interface {
	CreateTicket(ctx context.Context, actor *model.User, orderID, issue, contactLink string) (*model.SupportTicket, error)
	Ticket(ctx context.Context, actor *model.User, ticketID string) (*model.SupportTicket, error)
	MyTickets(ctx context.Context, actor *model.User) ([]model.SupportTicket, error)
	AllTickets(ctx context.Context, actor *model.User) ([]model.SupportTicket, error)
	ReplyTicket(ctx context.Context, actor *model.User, ticketID, content string) (*model.SupportTicket, error)
	SetTicketStatus(ctx context.Context, actor *model.User, ticketID string, status model.TicketStatus) error
}

// VoucherFacade manages the service offer catalog.
type VoucherFacade interface {
	Vouchers(ctx context.Context) ([]model.Voucher, error)
	CreateVoucher(ctx context.Context, actor *model.User, code, description string, price float64) (*model.Voucher, error)
	DeleteVoucher(ctx context.Context, actor *model.User, id string) error
}

// SettingsFacade exposes the global settings document.
type SettingsFacade interface {
	Settings(ctx context.Context) (model.Settings, error)
	UpdateSettings(ctx context.Context, actor *model.User, patch model.SettingsPatch) (model.Settings, error)
}

// UserAdminFacade covers the admin account operations.
type UserAdminFacade interface {
	ListUsers(ctx context.Context, actor *model.User) ([]model.User, error)
	BanUser(ctx context.Context, actor *model.User, userID, reason, details string) error
	UnbanUser(ctx context.Context, actor *model.User, userID string) error
	SetUserRole(ctx context.Context, actor *model.User, userID string, role model.Role) error
}

// SnapshotFacade exports and restores the whole store.
type SnapshotFacade interface {
	ExportSnapshot(ctx context.Context, actor *model.User) (*model.Snapshot, error)
	ImportSnapshot(ctx context.Context, actor *model.User, snapshot *model.Snapshot) error
}

// NotificationFacade serves the per-user event feed.
type NotificationFacade interface {
	Notifications(userID string) []notify.Event
	MarkNotificationsRead(userID string)
}

// ProductFacade proxies marketplace product lookups.
type ProductFacade interface {
	LookupProduct(ctx context.Context, link string) (*model.ProductInfo, error)
}

// ShopFacade aggregates the full set of operations used across handlers.
type ShopFacade interface {
	AuthFacade
	OrderFacade
	EditFacade
	TicketFacade
	VoucherFacade
	SettingsFacade
	UserAdminFacade
	SnapshotFacade
	NotificationFacade
	ProductFacade
}
