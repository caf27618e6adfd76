package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/vantran/anishop/internal/domain/errors"
	"github.com/vantran/anishop/internal/domain/model"
	testhelpers "github.com/vantran/anishop/internal/test"
)

type ticketFixture struct {
	uc       *TicketUseCase
	tickets  *testhelpers.TicketRepositoryStub
	notifier *testhelpers.NotifierStub
}

func newTicketFixture() *ticketFixture {
	tickets := testhelpers.NewTicketRepositoryStub()
	notifier := &testhelpers.NotifierStub{}
	return &ticketFixture{uc: NewTicketUseCase(tickets, notifier), tickets: tickets, notifier: notifier}
}

func TestTicketCreate(t *testing.T) {
	f := newTicketFixture()
	ctx := context.Background()

	ticket, err := f.uc.Create(ctx, userActor(), "ANI-1", "package arrived damaged", "zalo.me/abc")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if ticket.Status != model.TicketStatusOpen {
		t.Fatalf("unexpected status %s", ticket.Status)
	}
	if len(ticket.Messages) != 1 || ticket.Messages[0].Author != model.MessageAuthorUser {
		t.Fatalf("expected issue as first message, got %+v", ticket.Messages)
	}
	if ticket.Messages[0].Content != "package arrived damaged" {
		t.Fatalf("unexpected first message %+v", ticket.Messages[0])
	}

	if _, err := f.uc.Create(ctx, userActor(), "", "   ", ""); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error for blank issue, got %v", err)
	}
	// Order reference is optional.
	if _, err := f.uc.Create(ctx, userActor(), "", "general question", ""); err != nil {
		t.Fatalf("create without order failed: %v", err)
	}
}

func TestTicketReplyFlipsStatus(t *testing.T) {
	f := newTicketFixture()
	ctx := context.Background()

	ticket, err := f.uc.Create(ctx, userActor(), "", "where is my order", "")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	replied, err := f.uc.Reply(ctx, adminActor(), ticket.ID, "it ships tomorrow")
	if err != nil {
		t.Fatalf("admin reply failed: %v", err)
	}
	if replied.Status != model.TicketStatusAnswered {
		t.Fatalf("admin reply should answer the ticket, got %s", replied.Status)
	}
	if replied.Messages[len(replied.Messages)-1].Author != model.MessageAuthorAdmin {
		t.Fatalf("unexpected last message %+v", replied.Messages)
	}
	if len(f.notifier.Events) == 0 {
		t.Fatal("admin reply should notify the customer")
	}

	replied, err = f.uc.Reply(ctx, userActor(), ticket.ID, "thanks, please hurry")
	if err != nil {
		t.Fatalf("user reply failed: %v", err)
	}
	if replied.Status != model.TicketStatusOpen {
		t.Fatalf("user reply should reopen the ticket, got %s", replied.Status)
	}
}

func TestTicketReplyGuards(t *testing.T) {
	f := newTicketFixture()
	ctx := context.Background()

	ticket, err := f.uc.Create(ctx, userActor(), "", "issue", "")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	stranger := &model.User{ID: "user-2", Role: model.RoleUser}
	if _, err := f.uc.Reply(ctx, stranger, ticket.ID, "me too"); !errors.Is(err, domainErrors.ErrPermissionDenied) {
		t.Fatalf("expected permission denied, got %v", err)
	}
	if _, err := f.uc.Reply(ctx, userActor(), ticket.ID, "  "); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error for blank content, got %v", err)
	}
	if _, err := f.uc.Reply(ctx, userActor(), "missing", "hello"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestTicketSetStatus(t *testing.T) {
	f := newTicketFixture()
	ctx := context.Background()

	ticket, err := f.uc.Create(ctx, userActor(), "", "issue", "")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := f.uc.SetStatus(ctx, userActor(), ticket.ID, model.TicketStatusClosed); !errors.Is(err, domainErrors.ErrPermissionDenied) {
		t.Fatalf("expected permission denied, got %v", err)
	}
	if err := f.uc.SetStatus(ctx, adminActor(), ticket.ID, model.TicketStatus("ARCHIVED")); !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := f.uc.SetStatus(ctx, adminActor(), ticket.ID, model.TicketStatusClosed); err != nil {
		t.Fatalf("set status failed: %v", err)
	}
	stored, _ := f.tickets.GetByID(ctx, ticket.ID)
	if stored.Status != model.TicketStatusClosed {
		t.Fatalf("status not applied: %+v", stored)
	}
}

func TestTicketVisibility(t *testing.T) {
	f := newTicketFixture()
	ctx := context.Background()

	ticket, err := f.uc.Create(ctx, userActor(), "", "issue", "")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := f.uc.Get(ctx, userActor(), ticket.ID); err != nil {
		t.Fatalf("owner get failed: %v", err)
	}
	if _, err := f.uc.Get(ctx, adminActor(), ticket.ID); err != nil {
		t.Fatalf("admin get failed: %v", err)
	}
	stranger := &model.User{ID: "user-2", Role: model.RoleUser}
	if _, err := f.uc.Get(ctx, stranger, ticket.ID); !errors.Is(err, domainErrors.ErrPermissionDenied) {
		t.Fatalf("expected permission denied, got %v", err)
	}

	mine, err := f.uc.ListMine(ctx, userActor())
	if err != nil || len(mine) != 1 {
		t.Fatalf("unexpected list %v err=%v", mine, err)
	}
	if _, err := f.uc.ListAll(ctx, stranger); !errors.Is(err, domainErrors.ErrPermissionDenied) {
		t.Fatalf("expected permission denied for list all, got %v", err)
	}
}
