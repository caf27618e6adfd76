package productinfo

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewHTTPClientValidatesURL(t *testing.T) {
	if _, err := NewHTTPClient("://bad-url", testLogger()); err == nil {
		t.Fatal("expected error for invalid url")
	}
	if _, err := NewHTTPClient("/relative", testLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
}

func TestLookupSuccessAndCache(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if got := r.URL.Query().Get("url"); got != "https://shop.example/item/1" {
			t.Errorf("unexpected url param: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"productName":"Figure","price":350000,"imageUrl":"https://cdn.example/f.jpg"}`))
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	info, err := client.Lookup(context.Background(), "https://shop.example/item/1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.ProductName != "Figure" || info.Price != 350000 || info.ImageURL != "https://cdn.example/f.jpg" {
		t.Fatalf("unexpected info: %+v", info)
	}

	again, err := client.Lookup(context.Background(), "https://shop.example/item/1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.ProductName != "Figure" {
		t.Fatalf("unexpected cached info: %+v", again)
	}
	if hits.Load() != 1 {
		t.Fatalf("expected single upstream hit, got %d", hits.Load())
	}
}

func TestLookupFailures(t *testing.T) {
	t.Run("empty link", func(t *testing.T) {
		client, err := NewHTTPClient("http://localhost:1", testLogger())
		if err != nil {
			t.Fatalf("failed to create client: %v", err)
		}
		if _, err := client.Lookup(context.Background(), ""); !errors.Is(err, ErrLookupFailed) {
			t.Fatalf("expected lookup failure, got %v", err)
		}
	})

	t.Run("upstream error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "no scraper for this marketplace", http.StatusBadGateway)
		}))
		defer server.Close()

		client, err := NewHTTPClient(server.URL, testLogger())
		if err != nil {
			t.Fatalf("failed to create client: %v", err)
		}
		if _, err := client.Lookup(context.Background(), "https://shop.example/item/2"); !errors.Is(err, ErrLookupFailed) {
			t.Fatalf("expected lookup failure, got %v", err)
		}
	})

	t.Run("malformed payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{not json`))
		}))
		defer server.Close()

		client, err := NewHTTPClient(server.URL, testLogger())
		if err != nil {
			t.Fatalf("failed to create client: %v", err)
		}
		if _, err := client.Lookup(context.Background(), "https://shop.example/item/3"); !errors.Is(err, ErrLookupFailed) {
			t.Fatalf("expected lookup failure, got %v", err)
		}
	})

	t.Run("connection refused", func(t *testing.T) {
		client, err := NewHTTPClient("http://127.0.0.1:1", testLogger())
		if err != nil {
			t.Fatalf("failed to create client: %v", err)
		}
		if _, err := client.Lookup(context.Background(), "https://shop.example/item/4"); !errors.Is(err, ErrLookupFailed) {
			t.Fatalf("expected lookup failure, got %v", err)
		}
	})
}

func TestDisabledClient(t *testing.T) {
	client := Disabled()
	if _, err := client.Lookup(context.Background(), "https://shop.example/item/5"); !errors.Is(err, ErrLookupFailed) {
		t.Fatalf("expected lookup failure, got %v", err)
	}
}
