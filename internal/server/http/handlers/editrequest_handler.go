package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vantran/anishop/internal/domain/model"
	"github.com/vantran/anishop/internal/server/http/dto"
	"github.com/vantran/anishop/internal/usecase"
)

// EditRequestHandler serves both edit flows: direct customer requests and
// the admin-issued one-time links.
type EditRequestHandler struct {
	facade EditFacade
}

// NewEditRequestHandler constructs EditRequestHandler.
func NewEditRequestHandler(facade EditFacade) *EditRequestHandler {
	return &EditRequestHandler{facade: facade}
}

// Request handles POST /api/orders/:id/edit-requests. The previous shipping
// data is captured from the stored order, not trusted from the client.
func (h *EditRequestHandler) Request(c *gin.Context) {
	var req dto.ShippingPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payload"})
		return
	}

	actor := CurrentUser(c)
	order, err := h.facade.Order(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	request, err := h.facade.RequestEdit(c.Request.Context(), actor, order.ID, order.ShippingInfo, fromShippingPayload(req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toEditRequestResponse(*request))
}

// LookupLink handles GET /api/edit-orders/:token (public).
func (h *EditRequestHandler) LookupLink(c *gin.Context) {
	_, order, err := h.facade.EditRequestByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.EditLinkLookupResponse{
		OrderID:  order.ID,
		Shipping: toShippingPayload(order.ShippingInfo),
	})
}

// SubmitLink handles POST /api/edit-orders/:token (public, single-use).
func (h *EditRequestHandler) SubmitLink(c *gin.Context) {
	var req dto.ShippingPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payload"})
		return
	}

	if err := h.facade.SubmitEditFromLink(c.Request.Context(), c.Param("token"), fromShippingPayload(req)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// List handles GET /api/admin/edit-requests, including the field diff for
// submitted requests.
func (h *EditRequestHandler) List(c *gin.Context) {
	requests, err := h.facade.EditRequests(c.Request.Context(), CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.EditRequestResponse, 0, len(requests))
	for _, request := range requests {
		resp = append(resp, toEditRequestResponse(request))
	}
	c.JSON(http.StatusOK, resp)
}

// CreateLink handles POST /api/admin/orders/:id/edit-link.
func (h *EditRequestHandler) CreateLink(c *gin.Context) {
	url, err := h.facade.CreateEditLink(c.Request.Context(), CurrentUser(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.EditLinkResponse{URL: url})
}

// Approve handles POST /api/admin/edit-requests/:id/approve.
func (h *EditRequestHandler) Approve(c *gin.Context) {
	if err := h.facade.ApproveEdit(c.Request.Context(), CurrentUser(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Reject handles POST /api/admin/edit-requests/:id/reject.
func (h *EditRequestHandler) Reject(c *gin.Context) {
	var req dto.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payload"})
		return
	}

	if err := h.facade.RejectEdit(c.Request.Context(), CurrentUser(c), c.Param("id"), req.Reason); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func toEditRequestResponse(request model.EditRequest) dto.EditRequestResponse {
	resp := dto.EditRequestResponse{
		ID:              request.ID,
		OrderID:         request.OrderID,
		Status:          string(request.Status),
		CreatedAt:       request.CreatedAt,
		RejectionReason: request.RejectionReason,
		ExpiresAt:       request.ExpiresAt,
	}
	if request.OldData != nil {
		old := toShippingPayload(*request.OldData)
		resp.OldData = &old
	}
	if request.NewData != nil {
		fresh := toShippingPayload(*request.NewData)
		resp.NewData = &fresh
	}
	for _, change := range usecase.Diff(&request) {
		resp.Changes = append(resp.Changes, dto.FieldChange{Field: change.Field, Old: change.Old, New: change.New})
	}
	return resp
}
