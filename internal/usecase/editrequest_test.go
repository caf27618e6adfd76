package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	domainErrors "github.com/vantran/anishop/internal/domain/errors"
	"github.com/vantran/anishop/internal/domain/model"
	testhelpers "github.com/vantran/anishop/internal/test"
)

type editFixture struct {
	uc       *EditRequestUseCase
	requests *testhelpers.EditRequestRepositoryStub
	orders   *testhelpers.OrderRepositoryStub
	notifier *testhelpers.NotifierStub
}

func newEditFixture(t *testing.T) *editFixture {
	t.Helper()
	requests := testhelpers.NewEditRequestRepositoryStub()
	orders := testhelpers.NewOrderRepositoryStub()
	notifier := &testhelpers.NotifierStub{}
	uc := NewEditRequestUseCase(requests, orders, notifier, "https://anishop.example/", time.Hour)
	if err := orders.Create(context.Background(), baseOrder()); err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return &editFixture{uc: uc, requests: requests, orders: orders, notifier: notifier}
}

func shipping(name string) model.ShippingInfo {
	return model.ShippingInfo{
		CustomerName: name,
		Address:      "12 Ly Thuong Kiet",
		Contact:      "0900000000",
	}
}

func TestEditRequestDirectFlow(t *testing.T) {
	f := newEditFixture(t)
	ctx := context.Background()

	req, err := f.uc.Request(ctx, userActor(), "ANI-1", shipping("Old"), shipping("New"))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if req.Status != model.EditRequestStatusPending || req.Token != "" {
		t.Fatalf("unexpected request %+v", req)
	}
	if req.OldData.CustomerName != "Old" || req.NewData.CustomerName != "New" {
		t.Fatalf("data not stored: %+v", req)
	}

	// Second request while one is pending conflicts and adds nothing.
	if _, err := f.uc.Request(ctx, userActor(), "ANI-1", shipping("Old"), shipping("Newer")); !errors.Is(err, domainErrors.ErrEditRequestPending) {
		t.Fatalf("expected pending conflict, got %v", err)
	}
	if len(f.requests.Requests) != 1 {
		t.Fatalf("expected exactly 1 request, got %d", len(f.requests.Requests))
	}
}

func TestEditRequestDirectFlowGuards(t *testing.T) {
	f := newEditFixture(t)
	ctx := context.Background()

	stranger := &model.User{ID: "user-2", Role: model.RoleUser}
	if _, err := f.uc.Request(ctx, stranger, "ANI-1", shipping("Old"), shipping("New")); !errors.Is(err, domainErrors.ErrPermissionDenied) {
		t.Fatalf("expected permission denied, got %v", err)
	}
	if _, err := f.uc.Request(ctx, userActor(), "missing", shipping("Old"), shipping("New")); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for missing order, got %v", err)
	}
	invalid := shipping("New")
	invalid.Address = ""
	if _, err := f.uc.Request(ctx, userActor(), "ANI-1", shipping("Old"), invalid); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestEditRequestLinkFlow(t *testing.T) {
	f := newEditFixture(t)
	f.uc.newToken = func() string { return "tok123" }
	ctx := context.Background()

	if _, err := f.uc.CreateLink(ctx, userActor(), "ANI-1"); !errors.Is(err, domainErrors.ErrPermissionDenied) {
		t.Fatalf("expected permission denied for non-admin, got %v", err)
	}

	url, err := f.uc.CreateLink(ctx, adminActor(), "ANI-1")
	if err != nil {
		t.Fatalf("create link failed: %v", err)
	}
	if url != "https://anishop.example/edit-order/tok123" {
		t.Fatalf("unexpected url %q", url)
	}

	// Unlike the direct flow, a second link for the same order is allowed.
	f.uc.newToken = func() string { return "tok456" }
	if _, err := f.uc.CreateLink(ctx, adminActor(), "ANI-1"); err != nil {
		t.Fatalf("second link failed: %v", err)
	}

	req, order, err := f.uc.GetByToken(ctx, "tok123")
	if err != nil {
		t.Fatalf("get by token failed: %v", err)
	}
	if req.OrderID != "ANI-1" || order.ID != "ANI-1" {
		t.Fatalf("unexpected resolution %+v %+v", req, order)
	}

	if err := f.uc.SubmitFromLink(ctx, "tok123", shipping("Edited")); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	stored := f.requests.Requests[req.ID]
	if stored.Token != "" {
		t.Fatal("token not burned on submission")
	}
	if stored.NewData == nil || stored.NewData.CustomerName != "Edited" {
		t.Fatalf("submitted data missing: %+v", stored)
	}
	if stored.OldData == nil {
		t.Fatal("old data not captured from the order")
	}

	// Burned token no longer resolves.
	if _, _, err := f.uc.GetByToken(ctx, "tok123"); !errors.Is(err, domainErrors.ErrEditLinkNotFound) {
		t.Fatalf("expected link not found after use, got %v", err)
	}
}

func TestEditRequestLinkErrors(t *testing.T) {
	f := newEditFixture(t)
	ctx := context.Background()

	if _, _, err := f.uc.GetByToken(ctx, "unknown"); !errors.Is(err, domainErrors.ErrEditLinkNotFound) {
		t.Fatalf("expected link not found, got %v", err)
	}

	f.uc.newToken = func() string { return "expired-tok" }
	if _, err := f.uc.CreateLink(ctx, adminActor(), "ANI-1"); err != nil {
		t.Fatalf("create link failed: %v", err)
	}
	f.uc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	if err := f.uc.SubmitFromLink(ctx, "expired-tok", shipping("Late")); !errors.Is(err, domainErrors.ErrEditLinkExpired) {
		t.Fatalf("expected expiry error, got %v", err)
	}
	// Expired submission changed nothing.
	for _, req := range f.requests.Requests {
		if req.NewData != nil {
			t.Fatalf("expired submission mutated request: %+v", req)
		}
	}

	// Token pointing at a deleted order surfaces as a missing order.
	f.uc.now = time.Now
	f.uc.newToken = func() string { return "orphan-tok" }
	if _, err := f.uc.CreateLink(ctx, adminActor(), "ANI-1"); err != nil {
		t.Fatalf("create link failed: %v", err)
	}
	if err := f.orders.DeleteAll(ctx); err != nil {
		t.Fatalf("clear orders: %v", err)
	}
	if _, _, err := f.uc.GetByToken(ctx, "orphan-tok"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for missing order, got %v", err)
	}
}

func TestEditRequestLinkDeadAfterReject(t *testing.T) {
	f := newEditFixture(t)
	f.uc.newToken = func() string { return "rejected-tok" }
	ctx := context.Background()

	if _, err := f.uc.CreateLink(ctx, adminActor(), "ANI-1"); err != nil {
		t.Fatalf("create link failed: %v", err)
	}
	var reqID string
	for id := range f.requests.Requests {
		reqID = id
	}
	if err := f.uc.Reject(ctx, adminActor(), reqID, "order already placed"); err != nil {
		t.Fatalf("reject failed: %v", err)
	}

	// The token outlives the rejection, but must no longer resolve.
	if _, _, err := f.uc.GetByToken(ctx, "rejected-tok"); !errors.Is(err, domainErrors.ErrEditLinkNotFound) {
		t.Fatalf("expected link not found for rejected request, got %v", err)
	}
	if err := f.uc.SubmitFromLink(ctx, "rejected-tok", shipping("Late")); !errors.Is(err, domainErrors.ErrEditLinkNotFound) {
		t.Fatalf("expected link not found on submit, got %v", err)
	}
	stored := f.requests.Requests[reqID]
	if stored.Status != model.EditRequestStatusRejected || stored.NewData != nil {
		t.Fatalf("rejected request mutated through its link: %+v", stored)
	}
}

func TestEditRequestApprove(t *testing.T) {
	f := newEditFixture(t)
	ctx := context.Background()

	req, err := f.uc.Request(ctx, userActor(), "ANI-1", shipping("Old"), shipping("X"))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if err := f.uc.Approve(ctx, userActor(), req.ID); !errors.Is(err, domainErrors.ErrPermissionDenied) {
		t.Fatalf("expected permission denied, got %v", err)
	}
	if err := f.uc.Approve(ctx, adminActor(), req.ID); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	order, _ := f.orders.GetByID(ctx, "ANI-1")
	if order.CustomerName != "X" {
		t.Fatalf("new data not copied onto order: %+v", order)
	}
	if f.requests.Requests[req.ID].Status != model.EditRequestStatusApproved {
		t.Fatalf("request not approved: %+v", f.requests.Requests[req.ID])
	}

	// Approving twice fails: the request already left pending.
	if err := f.uc.Approve(ctx, adminActor(), req.ID); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error on re-approve, got %v", err)
	}
}

func TestEditRequestApproveWithoutData(t *testing.T) {
	f := newEditFixture(t)
	f.uc.newToken = func() string { return "tok" }
	ctx := context.Background()

	if _, err := f.uc.CreateLink(ctx, adminActor(), "ANI-1"); err != nil {
		t.Fatalf("create link failed: %v", err)
	}
	var reqID string
	for id := range f.requests.Requests {
		reqID = id
	}
	if err := f.uc.Approve(ctx, adminActor(), reqID); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error for unsubmitted link, got %v", err)
	}
}

func TestEditRequestReject(t *testing.T) {
	f := newEditFixture(t)
	ctx := context.Background()

	req, err := f.uc.Request(ctx, userActor(), "ANI-1", shipping("Old"), shipping("New"))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if err := f.uc.Reject(ctx, adminActor(), req.ID, "cannot change address now"); err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	stored := f.requests.Requests[req.ID]
	if stored.Status != model.EditRequestStatusRejected || stored.RejectionReason != "cannot change address now" {
		t.Fatalf("rejection not recorded: %+v", stored)
	}
	// Order untouched.
	order, _ := f.orders.GetByID(ctx, "ANI-1")
	if order.CustomerName == "New" {
		t.Fatal("rejected request mutated the order")
	}
}

func TestEditRequestSweepExpiredLinks(t *testing.T) {
	f := newEditFixture(t)
	ctx := context.Background()

	f.uc.newToken = func() string { return "stale" }
	if _, err := f.uc.CreateLink(ctx, adminActor(), "ANI-1"); err != nil {
		t.Fatalf("create link failed: %v", err)
	}
	f.uc.newToken = func() string { return "fresh" }
	if _, err := f.uc.CreateLink(ctx, adminActor(), "ANI-1"); err != nil {
		t.Fatalf("create link failed: %v", err)
	}
	// Age only the first link past its expiry.
	for _, req := range f.requests.Requests {
		if req.Token == "stale" {
			expired := time.Now().Add(-time.Minute)
			req.ExpiresAt = &expired
		}
	}

	closed, err := f.uc.SweepExpiredLinks(ctx)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if closed != 1 {
		t.Fatalf("expected 1 closed, got %d", closed)
	}
	for _, req := range f.requests.Requests {
		switch req.Token {
		case "fresh":
			if req.Status != model.EditRequestStatusPending {
				t.Fatalf("fresh link swept: %+v", req)
			}
		default:
			if req.Status != model.EditRequestStatusRejected {
				t.Fatalf("stale link not swept: %+v", req)
			}
		}
	}
}

func TestDiff(t *testing.T) {
	old := shipping("A")
	updated := shipping("B")
	updated.Notes = "leave at door"
	req := &model.EditRequest{OldData: &old, NewData: &updated}

	changes := Diff(req)
	if len(changes) != 2 {
		t.Fatalf("expected 2 changes, got %+v", changes)
	}
	fields := make(map[string]model.FieldChange)
	for _, c := range changes {
		fields[c.Field] = c
	}
	if fields["customerName"].Old != "A" || fields["customerName"].New != "B" {
		t.Fatalf("unexpected change %+v", fields["customerName"])
	}
	if _, ok := fields["notes"]; !ok {
		t.Fatalf("notes change missing: %+v", changes)
	}

	if got := Diff(&model.EditRequest{}); got != nil {
		t.Fatalf("expected nil diff without data, got %+v", got)
	}
	if got := Diff(nil); got != nil {
		t.Fatalf("expected nil diff for nil request, got %+v", got)
	}
}

func TestEditRequestLinkTokenUniqueness(t *testing.T) {
	a := newLinkToken()
	b := newLinkToken()
	if a == b || len(a) != 32 || strings.ToLower(a) != a {
		t.Fatalf("unexpected tokens %q %q", a, b)
	}
}
