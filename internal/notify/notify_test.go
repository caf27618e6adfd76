package notify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"
)

func newTestHub() *Hub {
	return NewHub(slog.New(slog.NewJSONHandler(io.Discard, nil)))
}

func TestNotifyAndList(t *testing.T) {
	hub := newTestHub()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	step := 0
	hub.now = func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Minute)
	}

	hub.Notify(context.Background(), "u-1", "ANI-1", "order placed")
	hub.Notify(context.Background(), "u-1", "ANI-1", "order delivered")
	hub.Notify(context.Background(), "u-2", "", "welcome")

	events := hub.ListForUser("u-1")
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Message != "order delivered" {
		t.Fatalf("expected newest first, got %q", events[0].Message)
	}
	if events[0].ID == "" || events[0].ID == events[1].ID {
		t.Fatal("events must get distinct ids")
	}

	if got := hub.ListForUser("u-2"); len(got) != 1 || got[0].OrderID != "" {
		t.Fatalf("unexpected feed for u-2: %+v", got)
	}
	if got := hub.ListForUser("unknown"); len(got) != 0 {
		t.Fatalf("expected empty feed, got %+v", got)
	}
}

func TestNotifyRetainsOnlyRecent(t *testing.T) {
	hub := newTestHub()
	for i := 0; i < keepPerUser+3; i++ {
		hub.Notify(context.Background(), "u-1", "", fmt.Sprintf("event %d", i))
	}

	events := hub.ListForUser("u-1")
	if len(events) != keepPerUser {
		t.Fatalf("expected %d events, got %d", keepPerUser, len(events))
	}
	if events[0].Message != fmt.Sprintf("event %d", keepPerUser+2) {
		t.Fatalf("unexpected newest event: %q", events[0].Message)
	}
	if events[len(events)-1].Message != "event 3" {
		t.Fatalf("oldest retained should be event 3, got %q", events[len(events)-1].Message)
	}
}

func TestNotifyIgnoresBlankInput(t *testing.T) {
	hub := newTestHub()
	hub.Notify(context.Background(), "", "ANI-1", "message")
	hub.Notify(context.Background(), "u-1", "ANI-1", "")
	if got := hub.ListForUser("u-1"); len(got) != 0 {
		t.Fatalf("expected no events, got %+v", got)
	}
}

func TestMarkAllRead(t *testing.T) {
	hub := newTestHub()
	hub.Notify(context.Background(), "u-1", "", "a")
	hub.Notify(context.Background(), "u-1", "", "b")

	hub.MarkAllRead("u-1")

	for _, event := range hub.ListForUser("u-1") {
		if !event.Read {
			t.Fatalf("event %q still unread", event.Message)
		}
	}
}
