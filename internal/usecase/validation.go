package usecase

import (
	"strings"

	domainErrors "github.com/vantran/anishop/internal/domain/errors"
	"github.com/vantran/anishop/internal/domain/model"
)

// requireAdmin guards admin-only operations at the service layer, independent
// of any routing-level check.
func requireAdmin(actor *model.User) error {
	if actor == nil || !actor.IsAdmin() {
		return domainErrors.ErrPermissionDenied
	}
	return nil
}

// requireActor guards operations needing any authenticated caller.
func requireActor(actor *model.User) error {
	if actor == nil {
		return domainErrors.ErrPermissionDenied
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ValidateShippingInfo checks the fields a customer must always supply.
func ValidateShippingInfo(info model.ShippingInfo) error {
	if blank(info.CustomerName) || blank(info.Address) || blank(info.Contact) {
		return domainErrors.ErrValidation
	}
	return nil
}
