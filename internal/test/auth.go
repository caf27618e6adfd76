package test

import (
	"context"
	"errors"

	"github.com/vantran/anishop/internal/notify"
	pkgAuth "github.com/vantran/anishop/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues and parses tokens via function overrides.
type StrategyStub struct {
	IssueFn func(string) (string, error)
	ParseFn func(string) (string, error)
	NameVal string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(userID string) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(userID)
	}
	return "token-" + userID, nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if len(token) > 6 && token[:6] == "token-" {
		return token[6:], nil
	}
	return "", pkgAuth.ErrInvalidToken
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// NotifiedEvent records one Notify invocation on the stub.
type NotifiedEvent struct {
	UserID  string
	OrderID string
	Message string
}

// NotifierStub records notification calls for assertions.
type NotifierStub struct {
	Events []NotifiedEvent
}

func (s *NotifierStub) Notify(_ context.Context, userID, orderID, message string) {
	s.Events = append(s.Events, NotifiedEvent{UserID: userID, OrderID: orderID, Message: message})
}

func (s *NotifierStub) ListForUser(userID string) []notify.Event { return nil }

func (s *NotifierStub) MarkAllRead(userID string) {}

var _ pkgAuth.PasswordHasher = HasherStub{}
var _ pkgAuth.Strategy = StrategyStub{}
var _ notify.Notifier = (*NotifierStub)(nil)
