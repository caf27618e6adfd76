package repository

import (
	"context"
	"time"

	"github.com/vantran/anishop/internal/domain/model"
)

// EditRequestRepository describes persistence for order edit requests.
type EditRequestRepository interface {
	Create(ctx context.Context, req *model.EditRequest) error
	GetByID(ctx context.Context, id string) (*model.EditRequest, error)
	// GetByToken resolves an unused link token; used tokens are cleared on
	// submission and no longer resolve.
	GetByToken(ctx context.Context, token string) (*model.EditRequest, error)
	HasPendingForOrder(ctx context.Context, orderID string) (bool, error)
	ListAll(ctx context.Context) ([]model.EditRequest, error)
	// ListExpiredLinks returns pending link requests whose expiry passed
	// without a submission.
	ListExpiredLinks(ctx context.Context, now time.Time) ([]model.EditRequest, error)
	// SubmitLinkData fills old/new data and clears the token in one write.
	SubmitLinkData(ctx context.Context, id string, oldData, newData model.ShippingInfo) error
	SetStatus(ctx context.Context, id string, status model.EditRequestStatus, rejectionReason string) error
	ReplaceAll(ctx context.Context, requests []model.EditRequest) error
}
