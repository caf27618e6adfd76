package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/vantran/anishop/internal/domain/errors"
	"github.com/vantran/anishop/internal/domain/model"
	"github.com/vantran/anishop/internal/notify"
	"github.com/vantran/anishop/internal/server/http/dto"
	"github.com/vantran/anishop/internal/server/http/middleware"
)

// CurrentUser extracts the authenticated account from the request context.
func CurrentUser(c *gin.Context) *model.User {
	val, ok := c.Get(middleware.UserContextKey)
	if !ok {
		return nil
	}
	user, _ := val.(*model.User)
	return user
}

// respondError maps domain failures onto HTTP statuses with a JSON body.
func respondError(c *gin.Context, err error) {
	var banned *domainErrors.BannedError
	if errors.As(err, &banned) {
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "account is banned", BanReason: banned.Reason})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domainErrors.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, domainErrors.ErrPermissionDenied),
		errors.Is(err, domainErrors.ErrUserBanned):
		status = http.StatusForbidden
	case errors.Is(err, domainErrors.ErrNotFound),
		errors.Is(err, domainErrors.ErrEditLinkNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domainErrors.ErrAlreadyExists),
		errors.Is(err, domainErrors.ErrEditRequestPending),
		errors.Is(err, domainErrors.ErrTerminalStatus),
		errors.Is(err, domainErrors.ErrSelfRoleChange):
		status = http.StatusConflict
	case errors.Is(err, domainErrors.ErrEditLinkExpired):
		status = http.StatusGone
	case errors.Is(err, domainErrors.ErrTrackingRequired):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, domainErrors.ErrOrderLimitReached):
		status = http.StatusTooManyRequests
	case errors.Is(err, domainErrors.ErrMaintenance):
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError {
		c.JSON(status, dto.ErrorResponse{Error: "internal error"})
		return
	}
	c.JSON(status, dto.ErrorResponse{Error: err.Error()})
}

func toShippingPayload(info model.ShippingInfo) dto.ShippingPayload {
	return dto.ShippingPayload{
		CustomerName: info.CustomerName,
		Address:      info.Address,
		Contact:      info.Contact,
		Notes:        info.Notes,
		Email:        info.Email,
	}
}

func fromShippingPayload(p dto.ShippingPayload) model.ShippingInfo {
	return model.ShippingInfo{
		CustomerName: p.CustomerName,
		Address:      p.Address,
		Contact:      p.Contact,
		Notes:        p.Notes,
		Email:        p.Email,
	}
}

func toUserResponse(user model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:               user.ID,
		Username:         user.Username,
		Email:            user.Email,
		Role:             string(user.Role),
		Status:           string(user.Status),
		BanReason:        user.BanReason,
		BanReasonDetails: user.BanReasonDetails,
		CreatedAt:        user.CreatedAt,
	}
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:                 order.ID,
		UserID:             order.UserID,
		ProductLink:        order.ProductLink,
		Quantity:           order.Quantity,
		VoucherCode:        order.VoucherCode,
		ShippingPayload:    toShippingPayload(order.ShippingInfo),
		ServiceFee:         order.ServiceFee,
		Status:             string(order.Status),
		PaymentStatus:      string(order.PaymentStatus),
		TrackingCode:       order.TrackingCode,
		CancellationReason: order.CancellationReason,
		CreatedAt:          order.CreatedAt,
		UpdatedAt:          order.UpdatedAt,
	}
}

func toTicketResponse(ticket model.SupportTicket) dto.TicketResponse {
	messages := make([]dto.TicketMessageResponse, 0, len(ticket.Messages))
	for _, msg := range ticket.Messages {
		messages = append(messages, dto.TicketMessageResponse{
			ID:        msg.ID,
			Author:    string(msg.Author),
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt,
		})
	}
	return dto.TicketResponse{
		ID:          ticket.ID,
		UserID:      ticket.UserID,
		OrderID:     ticket.OrderID,
		Issue:       ticket.Issue,
		ContactLink: ticket.ContactLink,
		Status:      string(ticket.Status),
		CreatedAt:   ticket.CreatedAt,
		Messages:    messages,
	}
}

func toVoucherResponse(voucher model.Voucher) dto.VoucherResponse {
	return dto.VoucherResponse{
		ID:          voucher.ID,
		Code:        voucher.Code,
		Description: voucher.Description,
		Price:       voucher.Price,
	}
}

func toNotificationResponse(event notify.Event) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:        event.ID,
		OrderID:   event.OrderID,
		Message:   event.Message,
		Read:      event.Read,
		CreatedAt: event.CreatedAt,
	}
}
