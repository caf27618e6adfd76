package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vantran/anishop/internal/server/http/dto"
)

// VoucherHandler manages the service offer catalog endpoints.
type VoucherHandler struct {
	facade VoucherFacade
}

// NewVoucherHandler constructs VoucherHandler.
func NewVoucherHandler(facade VoucherFacade) *VoucherHandler {
	return &VoucherHandler{facade: facade}
}

// List handles GET /api/public/vouchers.
func (h *VoucherHandler) List(c *gin.Context) {
	vouchers, err := h.facade.Vouchers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.VoucherResponse, 0, len(vouchers))
	for _, voucher := range vouchers {
		resp = append(resp, toVoucherResponse(voucher))
	}
	c.JSON(http.StatusOK, resp)
}

// Create handles POST /api/admin/vouchers.
func (h *VoucherHandler) Create(c *gin.Context) {
	var req dto.VoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payload"})
		return
	}

	voucher, err := h.facade.CreateVoucher(c.Request.Context(), CurrentUser(c), req.Code, req.Description, req.Price)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toVoucherResponse(*voucher))
}

// Delete handles DELETE /api/admin/vouchers/:id.
func (h *VoucherHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteVoucher(c.Request.Context(), CurrentUser(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
