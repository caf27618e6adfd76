package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	domainErrors "github.com/vantran/anishop/internal/domain/errors"
	"github.com/vantran/anishop/internal/domain/model"
	"github.com/vantran/anishop/internal/notify"
	testhelpers "github.com/vantran/anishop/internal/test"
	"github.com/vantran/anishop/internal/usecase"
)

type facadeFixture struct {
	facade   *ShopFacade
	repos    *testhelpers.RepositoryFactoryStub
	hub      *notify.Hub
	products *testhelpers.ProductLookupStub
}

func newFacadeFixture() *facadeFixture {
	repos := testhelpers.NewRepositoryFactoryStub()
	hub := notify.NewHub(slog.New(slog.NewJSONHandler(io.Discard, nil)))
	products := &testhelpers.ProductLookupStub{}

	facade := NewShopFacade(
		usecase.NewAuthUseCase(repos.UsersStub, testhelpers.HasherStub{}, testhelpers.StrategyStub{}),
		usecase.NewUserUseCase(repos.UsersStub),
		usecase.NewOrderUseCase(repos.OrdersStub, repos.VouchersStub, repos.SettingsStub, hub),
		usecase.NewEditRequestUseCase(repos.EditRequestsStub, repos.OrdersStub, hub, "https://shop.example", time.Hour),
		usecase.NewTicketUseCase(repos.TicketsStub, hub),
		usecase.NewVoucherUseCase(repos.VouchersStub),
		usecase.NewSettingsUseCase(repos.SettingsStub),
		usecase.NewBackupUseCase(repos),
		hub,
		products,
	)
	return &facadeFixture{facade: facade, repos: repos, hub: hub, products: products}
}

func (f *facadeFixture) admin() *model.User {
	return &model.User{ID: "admin-1", Role: model.RoleAdmin, Status: model.UserStatusActive}
}

func TestShopFacadeAuthFlow(t *testing.T) {
	f := newFacadeFixture()
	ctx := context.Background()

	user, token, err := f.facade.Register(ctx, "linh", "linh@example.com", "secret1")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if token == "" || user.ID == "" {
		t.Fatalf("unexpected register result: user=%+v token=%q", user, token)
	}

	authed, _, err := f.facade.Authenticate(ctx, "linh", "secret1")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if authed.ID != user.ID {
		t.Fatalf("expected user %q, got %q", user.ID, authed.ID)
	}

	id, err := f.facade.ParseToken("token-" + user.ID)
	if err != nil || id != user.ID {
		t.Fatalf("parse token: id=%q err=%v", id, err)
	}

	loaded, err := f.facade.UserByID(ctx, user.ID)
	if err != nil || loaded.Username != "linh" {
		t.Fatalf("load by id: user=%+v err=%v", loaded, err)
	}
}

func TestShopFacadeOrderFlow(t *testing.T) {
	f := newFacadeFixture()
	ctx := context.Background()
	actor := &model.User{ID: "user-1", Role: model.RoleUser, Status: model.UserStatusActive}

	order, err := f.facade.CreateOrder(ctx, actor, model.CreateOrderInput{
		ProductLink: "https://shopee.vn/item/1",
		Quantity:    1,
		Shipping: model.ShippingInfo{
			CustomerName: "Linh",
			Address:      "1 Nguyen Hue",
			Contact:      "0900000000",
		},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if !strings.HasPrefix(order.ID, "ANI-") {
		t.Fatalf("unexpected order id %q", order.ID)
	}

	mine, err := f.facade.MyOrders(ctx, actor)
	if err != nil || len(mine) != 1 {
		t.Fatalf("expected one order, got %v err=%v", mine, err)
	}

	if err := f.facade.ConfirmOrderPayment(ctx, actor, order.ID); err != nil {
		t.Fatalf("confirm payment failed: %v", err)
	}
	stored := f.repos.OrdersStub.Orders[order.ID]
	if stored.PaymentStatus != model.PaymentStatusAwaitingConfirmation {
		t.Fatalf("unexpected payment status %q", stored.PaymentStatus)
	}

	if events := f.facade.Notifications(actor.ID); len(events) == 0 {
		t.Fatal("expected an order notification")
	}
	f.facade.MarkNotificationsRead(actor.ID)
	for _, event := range f.facade.Notifications(actor.ID) {
		if !event.Read {
			t.Fatalf("expected all notifications read, got %+v", event)
		}
	}
}

func TestShopFacadeOrderPaymentURL(t *testing.T) {
	f := newFacadeFixture()
	ctx := context.Background()
	order := &model.Order{ID: "ANI-1", ServiceFee: 15000}

	url, err := f.facade.OrderPaymentURL(ctx, order)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "" {
		t.Fatalf("expected empty url without bank details, got %q", url)
	}

	settings := model.DefaultSettings()
	settings.BankInfo = model.BankInfo{BankName: "VCB", AccountNumber: "123", AccountName: "SHOP"}
	f.repos.SettingsStub.Stored = &settings

	url, err = f.facade.OrderPaymentURL(ctx, order)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(url, "https://img.vietqr.io/image/VCB-123-compact.png") {
		t.Fatalf("unexpected payment url %q", url)
	}
	if !strings.Contains(url, "addInfo=ANI-1") {
		t.Fatalf("expected order id in url, got %q", url)
	}
}

func TestShopFacadeEditLinkFlow(t *testing.T) {
	f := newFacadeFixture()
	ctx := context.Background()
	admin := f.admin()

	f.repos.OrdersStub.Orders["ANI-1"] = &model.Order{
		ID: "ANI-1", UserID: "user-1", Status: model.OrderStatusPendingApproval,
		ShippingInfo: model.ShippingInfo{CustomerName: "Linh", Address: "1 Nguyen Hue", Contact: "0900000000"},
	}

	link, err := f.facade.CreateEditLink(ctx, admin, "ANI-1")
	if err != nil {
		t.Fatalf("create link failed: %v", err)
	}
	token := link[strings.LastIndex(link, "/")+1:]

	if _, _, err := f.facade.EditRequestByToken(ctx, token); err != nil {
		t.Fatalf("resolve link failed: %v", err)
	}

	newData := model.ShippingInfo{CustomerName: "Minh", Address: "2 Le Loi", Contact: "0911111111"}
	if err := f.facade.SubmitEditFromLink(ctx, token, newData); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	requests, err := f.facade.EditRequests(ctx, admin)
	if err != nil || len(requests) != 1 {
		t.Fatalf("expected one request, got %v err=%v", requests, err)
	}

	if err := f.facade.ApproveEdit(ctx, admin, requests[0].ID); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if got := f.repos.OrdersStub.Orders["ANI-1"].CustomerName; got != "Minh" {
		t.Fatalf("expected shipping applied, got %q", got)
	}
}

func TestShopFacadeAdminSurface(t *testing.T) {
	f := newFacadeFixture()
	ctx := context.Background()
	admin := f.admin()

	if _, err := f.facade.CreateVoucher(ctx, admin, "freeship", "free shipping", 0); err != nil {
		t.Fatalf("create voucher failed: %v", err)
	}
	vouchers, err := f.facade.Vouchers(ctx)
	if err != nil || len(vouchers) != 1 {
		t.Fatalf("expected one voucher, got %v err=%v", vouchers, err)
	}

	limit := 5
	updated, err := f.facade.UpdateSettings(ctx, admin, model.SettingsPatch{OrderLimit: &limit})
	if err != nil || updated.OrderLimit != 5 {
		t.Fatalf("update settings: %+v err=%v", updated, err)
	}

	snap, err := f.facade.ExportSnapshot(ctx, admin)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if err := f.facade.ImportSnapshot(ctx, admin, snap); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	if _, err := f.facade.TotalRevenue(ctx, admin); err != nil {
		t.Fatalf("revenue failed: %v", err)
	}
	if err := f.facade.ResetOrders(ctx, admin); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
}

func TestShopFacadeProductLookup(t *testing.T) {
	f := newFacadeFixture()
	f.products.Info = &model.ProductInfo{ProductName: "Figure", Price: 120000}

	info, err := f.facade.LookupProduct(context.Background(), "https://shopee.vn/item/1")
	if err != nil || info.ProductName != "Figure" {
		t.Fatalf("unexpected lookup result: %+v err=%v", info, err)
	}

	f.products.Err = errors.New("upstream down")
	if _, err := f.facade.LookupProduct(context.Background(), "x"); err == nil {
		t.Fatal("expected lookup error")
	}
}

func TestShopFacadeGuards(t *testing.T) {
	f := newFacadeFixture()
	ctx := context.Background()
	stranger := &model.User{ID: "user-2", Role: model.RoleUser, Status: model.UserStatusActive}

	if _, err := f.facade.AllOrders(ctx, stranger); !errors.Is(err, domainErrors.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
	if _, err := f.facade.ListUsers(ctx, stranger); !errors.Is(err, domainErrors.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
	if _, err := f.facade.ExportSnapshot(ctx, stranger); !errors.Is(err, domainErrors.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
}
