package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vantran/anishop/internal/domain/model"
	"github.com/vantran/anishop/internal/server/http/dto"
)

// OrderHandler manages order endpoints for customers and admins.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payload"})
		return
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), CurrentUser(c), model.CreateOrderInput{
		ProductLink: req.ProductLink,
		Quantity:    req.Quantity,
		VoucherCode: req.VoucherCode,
		Shipping:    fromShippingPayload(req.ShippingPayload),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// ListMine handles GET /api/orders.
func (h *OrderHandler) ListMine(c *gin.Context) {
	orders, err := h.facade.MyOrders(c.Request.Context(), CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordersToResponse(orders))
}

// Get handles GET /api/orders/:id, attaching the payment QR URL for
// fee-bearing orders.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), CurrentUser(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := toOrderResponse(*order)
	if order.ServiceFee > 0 {
		if url, err := h.facade.OrderPaymentURL(c.Request.Context(), order); err == nil {
			resp.PaymentURL = url
		}
	}
	c.JSON(http.StatusOK, resp)
}

// ConfirmPayment handles POST /api/orders/:id/confirm-payment.
func (h *OrderHandler) ConfirmPayment(c *gin.Context) {
	if err := h.facade.ConfirmOrderPayment(c.Request.Context(), CurrentUser(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// RequestCancellation handles POST /api/orders/:id/cancel.
func (h *OrderHandler) RequestCancellation(c *gin.Context) {
	if err := h.facade.RequestOrderCancellation(c.Request.Context(), CurrentUser(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// ListAll handles GET /api/admin/orders.
func (h *OrderHandler) ListAll(c *gin.Context) {
	orders, err := h.facade.AllOrders(c.Request.Context(), CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordersToResponse(orders))
}

// Update handles PUT /api/admin/orders/:id.
func (h *OrderHandler) Update(c *gin.Context) {
	var req dto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payload"})
		return
	}

	updated := &model.Order{
		ID:            c.Param("id"),
		ProductLink:   req.ProductLink,
		Quantity:      req.Quantity,
		VoucherCode:   req.VoucherCode,
		ShippingInfo:  fromShippingPayload(req.ShippingPayload),
		Status:        model.OrderStatus(req.Status),
		PaymentStatus: model.PaymentStatus(req.PaymentStatus),
		TrackingCode:  req.TrackingCode,
	}

	order, err := h.facade.UpdateOrder(c.Request.Context(), CurrentUser(c), updated, req.CancellationReason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Reset handles POST /api/admin/orders/reset.
func (h *OrderHandler) Reset(c *gin.Context) {
	if err := h.facade.ResetOrders(c.Request.Context(), CurrentUser(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Revenue handles GET /api/admin/revenue.
func (h *OrderHandler) Revenue(c *gin.Context) {
	total, err := h.facade.TotalRevenue(c.Request.Context(), CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.RevenueResponse{Total: total})
}

func ordersToResponse(orders []model.Order) []dto.OrderResponse {
	resp := make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		resp = append(resp, toOrderResponse(order))
	}
	return resp
}
