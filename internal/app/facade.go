package app

import (
	"context"

	"github.com/vantran/anishop/internal/domain/model"
	"github.com/vantran/anishop/internal/notify"
	"github.com/vantran/anishop/internal/pkg/vietqr"
	"github.com/vantran/anishop/internal/usecase"
)

// ProductLookup resolves marketplace product pages to display metadata.
type ProductLookup interface {
	Lookup(ctx context.Context, link string) (*model.ProductInfo, error)
}

// ShopFacade aggregates the application services behind one surface the
// HTTP handlers and background workers depend on.
type ShopFacade struct {
	auth     *usecase.AuthUseCase
	users    *usecase.UserUseCase
	orders   *usecase.OrderUseCase
	edits    *usecase.EditRequestUseCase
	tickets  *usecase.TicketUseCase
	vouchers *usecase.VoucherUseCase
	settings *usecase.SettingsUseCase
	backup   *usecase.BackupUseCase
	notifier notify.Notifier
	products ProductLookup
}

func NewShopFacade(
	auth *usecase.AuthUseCase,
	users *usecase.UserUseCase,
	orders *usecase.OrderUseCase,
	edits *usecase.EditRequestUseCase,
	tickets *usecase.TicketUseCase,
	vouchers *usecase.VoucherUseCase,
	settings *usecase.SettingsUseCase,
	backup *usecase.BackupUseCase,
	notifier notify.Notifier,
	products ProductLookup,
) *ShopFacade {
	return &ShopFacade{
		auth:     auth,
		users:    users,
		orders:   orders,
		edits:    edits,
		tickets:  tickets,
		vouchers: vouchers,
		settings: settings,
		backup:   backup,
		notifier: notifier,
		products: products,
	}
}

func (f *ShopFacade) Register(ctx context.Context, username, email, password string) (*model.User, string, error) {
	return f.auth.Register(ctx, username, email, password)
}

func (f *ShopFacade) Authenticate(ctx context.Context, identity, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, identity, password)
}

func (f *ShopFacade) ParseToken(token string) (string, error) {
	return f.auth.ParseToken(token)
}

func (f *ShopFacade) UserByID(ctx context.Context, id string) (*model.User, error) {
	return f.auth.GetByID(ctx, id)
}

func (f *ShopFacade) ListUsers(ctx context.Context, actor *model.User) ([]model.User, error) {
	return f.users.List(ctx, actor)
}

func (f *ShopFacade) BanUser(ctx context.Context, actor *model.User, userID, reason, details string) error {
	return f.users.Ban(ctx, actor, userID, reason, details)
}

func (f *ShopFacade) UnbanUser(ctx context.Context, actor *model.User, userID string) error {
	return f.users.Unban(ctx, actor, userID)
}

func (f *ShopFacade) SetUserRole(ctx context.Context, actor *model.User, userID string, role model.Role) error {
	return f.users.SetRole(ctx, actor, userID, role)
}

func (f *ShopFacade) CreateOrder(ctx context.Context, actor *model.User, input model.CreateOrderInput) (*model.Order, error) {
	return f.orders.Create(ctx, actor, input)
}

func (f *ShopFacade) Order(ctx context.Context, actor *model.User, orderID string) (*model.Order, error) {
	return f.orders.Get(ctx, actor, orderID)
}

func (f *ShopFacade) MyOrders(ctx context.Context, actor *model.User) ([]model.Order, error) {
	return f.orders.ListMine(ctx, actor)
}

func (f *ShopFacade) AllOrders(ctx context.Context, actor *model.User) ([]model.Order, error) {
	return f.orders.ListAll(ctx, actor)
}

func (f *ShopFacade) UpdateOrder(ctx context.Context, actor *model.User, updated *model.Order, cancellationReason string) (*model.Order, error) {
	return f.orders.UpdateDetails(ctx, actor, updated, cancellationReason)
}

func (f *ShopFacade) ConfirmOrderPayment(ctx context.Context, actor *model.User, orderID string) error {
	return f.orders.ConfirmPayment(ctx, actor, orderID)
}

func (f *ShopFacade) RequestOrderCancellation(ctx context.Context, actor *model.User, orderID string) error {
	return f.orders.RequestCancellation(ctx, actor, orderID)
}

func (f *ShopFacade) ResetOrders(ctx context.Context, actor *model.User) error {
	return f.orders.ResetAll(ctx, actor)
}

func (f *ShopFacade) TotalRevenue(ctx context.Context, actor *model.User) (float64, error) {
	return f.orders.TotalRevenue(ctx, actor)
}

// OrderPaymentURL builds the QR image link for paying an order's service
// fee, empty when bank details are not configured.
func (f *ShopFacade) OrderPaymentURL(ctx context.Context, order *model.Order) (string, error) {
	cfg, err := f.settings.Get(ctx)
	if err != nil {
		return "", err
	}
	return vietqr.PaymentURL(cfg.BankInfo, order.ID, order.ServiceFee), nil
}

func (f *ShopFacade) RequestEdit(ctx context.Context, actor *model.User, orderID string, oldData, newData model.ShippingInfo) (*model.EditRequest, error) {
	return f.edits.Request(ctx, actor, orderID, oldData, newData)
}

func (f *ShopFacade) CreateEditLink(ctx context.Context, actor *model.User, orderID string) (string, error) {
	return f.edits.CreateLink(ctx, actor, orderID)
}

func (f *ShopFacade) EditRequestByToken(ctx context.Context, token string) (*model.EditRequest, *model.Order, error) {
	return f.edits.GetByToken(ctx, token)
}

func (f *ShopFacade) SubmitEditFromLink(ctx context.Context, token string, newData model.ShippingInfo) error {
	return f.edits.SubmitFromLink(ctx, token, newData)
}

func (f *ShopFacade) EditRequests(ctx context.Context, actor *model.User) ([]model.EditRequest, error) {
	return f.edits.ListAll(ctx, actor)
}

func (f *ShopFacade) ApproveEdit(ctx context.Context, actor *model.User, requestID string) error {
	return f.edits.Approve(ctx, actor, requestID)
}

func (f *ShopFacade) RejectEdit(ctx context.Context, actor *model.User, requestID, reason string) error {
	return f.edits.Reject(ctx, actor, requestID, reason)
}

func (f *ShopFacade) SweepExpiredEditLinks(ctx context.Context) (int, error) {
	return f.edits.SweepExpiredLinks(ctx)
}

func (f *ShopFacade) CreateTicket(ctx context.Context, actor *model.User, orderID, issue, contactLink string) (*model.SupportTicket, error) {
	return f.tickets.Create(ctx, actor, orderID, issue, contactLink)
}

func (f *ShopFacade) Ticket(ctx context.Context, actor *model.User, ticketID string) (*model.SupportTicket, error) {
	return f.tickets.Get(ctx, actor, ticketID)
}

func (f *ShopFacade) MyTickets(ctx context.Context, actor *model.User) ([]model.SupportTicket, error) {
	return f.tickets.ListMine(ctx, actor)
}

func (f *ShopFacade) AllTickets(ctx context.Context, actor *model.User) ([]model.SupportTicket, error) {
	return f.tickets.ListAll(ctx, actor)
}

func (f *ShopFacade) ReplyTicket(ctx context.Context, actor *model.User, ticketID, content string) (*model.SupportTicket, error) {
	return f.tickets.Reply(ctx, actor, ticketID, content)
}

func (f *ShopFacade) SetTicketStatus(ctx context.Context, actor *model.User, ticketID string, status model.TicketStatus) error {
	return f.tickets.SetStatus(ctx, actor, ticketID, status)
}

func (f *ShopFacade) Vouchers(ctx context.Context) ([]model.Voucher, error) {
	return f.vouchers.List(ctx)
}

func (f *ShopFacade) CreateVoucher(ctx context.Context, actor *model.User, code, description string, price float64) (*model.Voucher, error) {
	return f.vouchers.Create(ctx, actor, code, description, price)
}

func (f *ShopFacade) DeleteVoucher(ctx context.Context, actor *model.User, id string) error {
	return f.vouchers.Delete(ctx, actor, id)
}

func (f *ShopFacade) Settings(ctx context.Context) (model.Settings, error) {
	return f.settings.Get(ctx)
}

func (f *ShopFacade) UpdateSettings(ctx context.Context, actor *model.User, patch model.SettingsPatch) (model.Settings, error) {
	return f.settings.Update(ctx, actor, patch)
}

func (f *ShopFacade) ExportSnapshot(ctx context.Context, actor *model.User) (*model.Snapshot, error) {
	return f.backup.Export(ctx, actor)
}

func (f *ShopFacade) ImportSnapshot(ctx context.Context, actor *model.User, snapshot *model.Snapshot) error {
	return f.backup.Import(ctx, actor, snapshot)
}

func (f *ShopFacade) Notifications(userID string) []notify.Event {
	return f.notifier.ListForUser(userID)
}

func (f *ShopFacade) MarkNotificationsRead(userID string) {
	f.notifier.MarkAllRead(userID)
}

func (f *ShopFacade) LookupProduct(ctx context.Context, link string) (*model.ProductInfo, error) {
	return f.products.Lookup(ctx, link)
}
