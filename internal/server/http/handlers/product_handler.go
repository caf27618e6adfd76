package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vantran/anishop/internal/adapter/productinfo"
	"github.com/vantran/anishop/internal/server/http/dto"
)

// ProductHandler proxies marketplace product lookups for the storefront.
type ProductHandler struct {
	facade ProductFacade
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(facade ProductFacade) *ProductHandler {
	return &ProductHandler{facade: facade}
}

// Lookup handles GET /api/product-info?url=...
func (h *ProductHandler) Lookup(c *gin.Context) {
	link := c.Query("url")
	if link == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "url query parameter required"})
		return
	}

	info, err := h.facade.LookupProduct(c.Request.Context(), link)
	if err != nil {
		if errors.Is(err, productinfo.ErrLookupFailed) {
			c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "product lookup failed"})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProductInfoResponse{
		ProductName: info.ProductName,
		Price:       info.Price,
		ImageURL:    info.ImageURL,
	})
}
