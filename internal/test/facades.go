package test

import (
	"context"
	"sync"

	"github.com/vantran/anishop/internal/domain/model"
	"github.com/vantran/anishop/internal/notify"
)

// AuthFacadeStub provides controllable behaviour for auth endpoints.
type AuthFacadeStub struct {
	RegisterFn     func(ctx context.Context, username, email, password string) (*model.User, string, error)
	AuthenticateFn func(ctx context.Context, identity, password string) (*model.User, string, error)
	ParseFn        func(token string) (string, error)
	UserByIDFn     func(ctx context.Context, id string) (*model.User, error)
}

func (s AuthFacadeStub) Register(ctx context.Context, username, email, password string) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, username, email, password)
	}
	return &model.User{ID: "user-1", Username: username, Email: email, Role: model.RoleUser}, "token", nil
}

func (s AuthFacadeStub) Authenticate(ctx context.Context, identity, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, identity, password)
	}
	return &model.User{ID: "user-1", Username: identity, Role: model.RoleUser}, "token", nil
}

func (s AuthFacadeStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return "user-1", nil
}

func (s AuthFacadeStub) UserByID(ctx context.Context, id string) (*model.User, error) {
	if s.UserByIDFn != nil {
		return s.UserByIDFn(ctx, id)
	}
	return &model.User{ID: id, Username: "stub", Role: model.RoleUser, Status: model.UserStatusActive}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateFn     func(ctx context.Context, actor *model.User, input model.CreateOrderInput) (*model.Order, error)
	GetFn        func(ctx context.Context, actor *model.User, orderID string) (*model.Order, error)
	MineFn       func(ctx context.Context, actor *model.User) ([]model.Order, error)
	AllFn        func(ctx context.Context, actor *model.User) ([]model.Order, error)
	UpdateFn     func(ctx context.Context, actor *model.User, updated *model.Order, cancellationReason string) (*model.Order, error)
	ConfirmFn    func(ctx context.Context, actor *model.User, orderID string) error
	CancelFn     func(ctx context.Context, actor *model.User, orderID string) error
	ResetFn      func(ctx context.Context, actor *model.User) error
	RevenueFn    func(ctx context.Context, actor *model.User) (float64, error)
	PaymentURLFn func(ctx context.Context, order *model.Order) (string, error)
}

func (s OrderFacadeStub) CreateOrder(ctx context.Context, actor *model.User, input model.CreateOrderInput) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, actor, input)
	}
	return &model.Order{ID: "ANI-1", Status: model.OrderStatusPendingApproval}, nil
}

func (s OrderFacadeStub) Order(ctx context.Context, actor *model.User, orderID string) (*model.Order, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, actor, orderID)
	}
	return &model.Order{ID: orderID}, nil
}

func (s OrderFacadeStub) MyOrders(ctx context.Context, actor *model.User) ([]model.Order, error) {
	if s.MineFn != nil {
		return s.MineFn(ctx, actor)
	}
	return nil, nil
}

func (s OrderFacadeStub) AllOrders(ctx context.Context, actor *model.User) ([]model.Order, error) {
	if s.AllFn != nil {
		return s.AllFn(ctx, actor)
	}
	return nil, nil
}

func (s OrderFacadeStub) UpdateOrder(ctx context.Context, actor *model.User, updated *model.Order, cancellationReason string) (*model.Order, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, actor, updated, cancellationReason)
	}
	return updated, nil
}

func (s OrderFacadeStub) ConfirmOrderPayment(ctx context.Context, actor *model.User, orderID string) error {
	if s.ConfirmFn != nil {
		return s.ConfirmFn(ctx, actor, orderID)
	}
	return nil
}

func (s OrderFacadeStub) RequestOrderCancellation(ctx context.Context, actor *model.User, orderID string) error {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, actor, orderID)
	}
	return nil
}

func (s OrderFacadeStub) ResetOrders(ctx context.Context, actor *model.User) error {
	if s.ResetFn != nil {
		return s.ResetFn(ctx, actor)
	}
	return nil
}

func (s OrderFacadeStub) TotalRevenue(ctx context.Context, actor *model.User) (float64, error) {
	if s.RevenueFn != nil {
		return s.RevenueFn(ctx, actor)
	}
	return 0, nil
}

func (s OrderFacadeStub) OrderPaymentURL(ctx context.Context, order *model.Order) (string, error) {
	if s.PaymentURLFn != nil {
		return s.PaymentURLFn(ctx, order)
	}
	return "", nil
}

// EditFacadeStub provides controllable behaviour for edit request endpoints.
type EditFacadeStub struct {
	OrderFacadeStub

	RequestFn    func(ctx context.Context, actor *model.User, orderID string, oldData, newData model.ShippingInfo) (*model.EditRequest, error)
	CreateLinkFn func(ctx context.Context, actor *model.User, orderID string) (string, error)
	ByTokenFn    func(ctx context.Context, token string) (*model.EditRequest, *model.Order, error)
	SubmitFn     func(ctx context.Context, token string, newData model.ShippingInfo) error
	ListFn       func(ctx context.Context, actor *model.User) ([]model.EditRequest, error)
	ApproveFn    func(ctx context.Context, actor *model.User, requestID string) error
	RejectFn     func(ctx context.Context, actor *model.User, requestID, reason string) error
}

func (s EditFacadeStub) RequestEdit(ctx context.Context, actor *model.User, orderID string, oldData, newData model.ShippingInfo) (*model.EditRequest, error) {
	if s.RequestFn != nil {
		return s.RequestFn(ctx, actor, orderID, oldData, newData)
	}
	return &model.EditRequest{ID: "req-1", OrderID: orderID, Status: model.EditRequestStatusPending, OldData: &oldData, NewData: &newData}, nil
}

func (s EditFacadeStub) CreateEditLink(ctx context.Context, actor *model.User, orderID string) (string, error) {
	if s.CreateLinkFn != nil {
		return s.CreateLinkFn(ctx, actor, orderID)
	}
	return "https://shop.example/edit-order/tok123", nil
}

func (s EditFacadeStub) EditRequestByToken(ctx context.Context, token string) (*model.EditRequest, *model.Order, error) {
	if s.ByTokenFn != nil {
		return s.ByTokenFn(ctx, token)
	}
	return &model.EditRequest{ID: "req-1", OrderID: "ANI-1", Token: token}, &model.Order{ID: "ANI-1"}, nil
}

func (s EditFacadeStub) SubmitEditFromLink(ctx context.Context, token string, newData model.ShippingInfo) error {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, token, newData)
	}
	return nil
}

func (s EditFacadeStub) EditRequests(ctx context.Context, actor *model.User) ([]model.EditRequest, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, actor)
	}
	return nil, nil
}

func (s EditFacadeStub) ApproveEdit(ctx context.Context, actor *model.User, requestID string) error {
	if s.ApproveFn != nil {
		return s.ApproveFn(ctx, actor, requestID)
	}
	return nil
}

func (s EditFacadeStub) RejectEdit(ctx context.Context, actor *model.User, requestID, reason string) error {
	if s.RejectFn != nil {
		return s.RejectFn(ctx, actor, requestID, reason)
	}
	return nil
}

// TicketFacadeStub simulates support ticket operations.
type TicketFacadeStub struct {
	CreateFn    func(ctx context.Context, actor *model.User, orderID, issue, contactLink string) (*model.SupportTicket, error)
	GetFn       func(ctx context.Context, actor *model.User, ticketID string) (*model.SupportTicket, error)
	MineFn      func(ctx context.Context, actor *model.User) ([]model.SupportTicket, error)
	AllFn       func(ctx context.Context, actor *model.User) ([]model.SupportTicket, error)
	ReplyFn     func(ctx context.Context, actor *model.User, ticketID, content string) (*model.SupportTicket, error)
	SetStatusFn func(ctx context.Context, actor *model.User, ticketID string, status model.TicketStatus) error
}

func (s TicketFacadeStub) CreateTicket(ctx context.Context, actor *model.User, orderID, issue, contactLink string) (*model.SupportTicket, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, actor, orderID, issue, contactLink)
	}
	return &model.SupportTicket{ID: "ticket-1", OrderID: orderID, Issue: issue, Status: model.TicketStatusOpen}, nil
}

func (s TicketFacadeStub) Ticket(ctx context.Context, actor *model.User, ticketID string) (*model.SupportTicket, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, actor, ticketID)
	}
	return &model.SupportTicket{ID: ticketID, Status: model.TicketStatusOpen}, nil
}

func (s TicketFacadeStub) MyTickets(ctx context.Context, actor *model.User) ([]model.SupportTicket, error) {
	if s.MineFn != nil {
		return s.MineFn(ctx, actor)
	}
	return nil, nil
}

func (s TicketFacadeStub) AllTickets(ctx context.Context, actor *model.User) ([]model.SupportTicket, error) {
	if s.AllFn != nil {
		return s.AllFn(ctx, actor)
	}
	return nil, nil
}

func (s TicketFacadeStub) ReplyTicket(ctx context.Context, actor *model.User, ticketID, content string) (*model.SupportTicket, error) {
	if s.ReplyFn != nil {
		return s.ReplyFn(ctx, actor, ticketID, content)
	}
	return &model.SupportTicket{ID: ticketID, Status: model.TicketStatusAnswered}, nil
}

func (s TicketFacadeStub) SetTicketStatus(ctx context.Context, actor *model.User, ticketID string, status model.TicketStatus) error {
	if s.SetStatusFn != nil {
		return s.SetStatusFn(ctx, actor, ticketID, status)
	}
	return nil
}

// VoucherFacadeStub simulates the voucher catalog.
type VoucherFacadeStub struct {
	ListFn   func(ctx context.Context) ([]model.Voucher, error)
	CreateFn func(ctx context.Context, actor *model.User, code, description string, price float64) (*model.Voucher, error)
	DeleteFn func(ctx context.Context, actor *model.User, id string) error
}

func (s VoucherFacadeStub) Vouchers(ctx context.Context) ([]model.Voucher, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return nil, nil
}

func (s VoucherFacadeStub) CreateVoucher(ctx context.Context, actor *model.User, code, description string, price float64) (*model.Voucher, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, actor, code, description, price)
	}
	return &model.Voucher{ID: "voucher-1", Code: code, Description: description, Price: price}, nil
}

func (s VoucherFacadeStub) DeleteVoucher(ctx context.Context, actor *model.User, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, actor, id)
	}
	return nil
}

// SettingsFacadeStub serves a fixed settings document.
type SettingsFacadeStub struct {
	GetFn    func(ctx context.Context) (model.Settings, error)
	UpdateFn func(ctx context.Context, actor *model.User, patch model.SettingsPatch) (model.Settings, error)
}

func (s SettingsFacadeStub) Settings(ctx context.Context) (model.Settings, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx)
	}
	return model.DefaultSettings(), nil
}

func (s SettingsFacadeStub) UpdateSettings(ctx context.Context, actor *model.User, patch model.SettingsPatch) (model.Settings, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, actor, patch)
	}
	return model.DefaultSettings(), nil
}

// UserAdminFacadeStub simulates admin account operations.
type UserAdminFacadeStub struct {
	ListFn    func(ctx context.Context, actor *model.User) ([]model.User, error)
	BanFn     func(ctx context.Context, actor *model.User, userID, reason, details string) error
	UnbanFn   func(ctx context.Context, actor *model.User, userID string) error
	SetRoleFn func(ctx context.Context, actor *model.User, userID string, role model.Role) error
}

func (s UserAdminFacadeStub) ListUsers(ctx context.Context, actor *model.User) ([]model.User, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, actor)
	}
	return nil, nil
}

func (s UserAdminFacadeStub) BanUser(ctx context.Context, actor *model.User, userID, reason, details string) error {
	if s.BanFn != nil {
		return s.BanFn(ctx, actor, userID, reason, details)
	}
	return nil
}

func (s UserAdminFacadeStub) UnbanUser(ctx context.Context, actor *model.User, userID string) error {
	if s.UnbanFn != nil {
		return s.UnbanFn(ctx, actor, userID)
	}
	return nil
}

func (s UserAdminFacadeStub) SetUserRole(ctx context.Context, actor *model.User, userID string, role model.Role) error {
	if s.SetRoleFn != nil {
		return s.SetRoleFn(ctx, actor, userID, role)
	}
	return nil
}

// SnapshotFacadeStub simulates whole-store export and import.
type SnapshotFacadeStub struct {
	ExportFn func(ctx context.Context, actor *model.User) (*model.Snapshot, error)
	ImportFn func(ctx context.Context, actor *model.User, snapshot *model.Snapshot) error
}

func (s SnapshotFacadeStub) ExportSnapshot(ctx context.Context, actor *model.User) (*model.Snapshot, error) {
	if s.ExportFn != nil {
		return s.ExportFn(ctx, actor)
	}
	return &model.Snapshot{Settings: model.DefaultSettings()}, nil
}

func (s SnapshotFacadeStub) ImportSnapshot(ctx context.Context, actor *model.User, snapshot *model.Snapshot) error {
	if s.ImportFn != nil {
		return s.ImportFn(ctx, actor, snapshot)
	}
	return nil
}

// NotificationFacadeStub serves a fixed event feed.
type NotificationFacadeStub struct {
	Events     []notify.Event
	MarkedRead []string
}

func (s *NotificationFacadeStub) Notifications(userID string) []notify.Event {
	return s.Events
}

func (s *NotificationFacadeStub) MarkNotificationsRead(userID string) {
	s.MarkedRead = append(s.MarkedRead, userID)
}

// ShopFacadeStub bundles every facade stub behind the full handler surface.
type ShopFacadeStub struct {
	AuthFacadeStub
	EditFacadeStub
	TicketFacadeStub
	VoucherFacadeStub
	SettingsFacadeStub
	UserAdminFacadeStub
	SnapshotFacadeStub
	*NotificationFacadeStub

	Products *ProductLookupStub
}

func (s *ShopFacadeStub) LookupProduct(ctx context.Context, link string) (*model.ProductInfo, error) {
	return s.Products.Lookup(ctx, link)
}

// NewShopFacadeStub constructs the combined stub with default behaviour.
func NewShopFacadeStub() *ShopFacadeStub {
	return &ShopFacadeStub{
		NotificationFacadeStub: &NotificationFacadeStub{},
		Products:               &ProductLookupStub{Info: &model.ProductInfo{ProductName: "stub"}},
	}
}

// ProductLookupStub returns a fixed lookup result or error.
type ProductLookupStub struct {
	Info *model.ProductInfo
	Err  error
}

func (s *ProductLookupStub) Lookup(ctx context.Context, link string) (*model.ProductInfo, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Info, nil
}

// UserLoaderStub resolves tokens and accounts for middleware tests.
type UserLoaderStub struct {
	UserID   string
	User     *model.User
	ParseErr error
	LoadErr  error
}

func (s UserLoaderStub) ParseToken(token string) (string, error) {
	if s.ParseErr != nil {
		return "", s.ParseErr
	}
	return s.UserID, nil
}

func (s UserLoaderStub) UserByID(ctx context.Context, id string) (*model.User, error) {
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	return s.User, nil
}

// SweeperFacadeStub records sweep invocations for worker tests.
type SweeperFacadeStub struct {
	sync.Mutex

	Count   int
	Err     error
	Calls   int
	SweepFn func(ctx context.Context) (int, error)
}

func (s *SweeperFacadeStub) SweepExpiredEditLinks(ctx context.Context) (int, error) {
	s.Lock()
	defer s.Unlock()
	s.Calls++
	if s.SweepFn != nil {
		return s.SweepFn(ctx)
	}
	return s.Count, s.Err
}

// SweepCalls reports how many sweeps ran so far.
func (s *SweeperFacadeStub) SweepCalls() int {
	s.Lock()
	defer s.Unlock()
	return s.Calls
}
