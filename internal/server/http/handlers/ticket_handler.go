package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vantran/anishop/internal/domain/model"
	"github.com/vantran/anishop/internal/server/http/dto"
)

// TicketHandler manages the support ticket endpoints.
type TicketHandler struct {
	facade TicketFacade
}

// NewTicketHandler constructs TicketHandler.
func NewTicketHandler(facade TicketFacade) *TicketHandler {
	return &TicketHandler{facade: facade}
}

// Create handles POST /api/tickets.
func (h *TicketHandler) Create(c *gin.Context) {
	var req dto.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payload"})
		return
	}

	ticket, err := h.facade.CreateTicket(c.Request.Context(), CurrentUser(c), req.OrderID, req.Issue, req.ContactLink)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toTicketResponse(*ticket))
}

// ListMine handles GET /api/tickets.
func (h *TicketHandler) ListMine(c *gin.Context) {
	tickets, err := h.facade.MyTickets(c.Request.Context(), CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticketsToResponse(tickets))
}

// Get handles GET /api/tickets/:id.
func (h *TicketHandler) Get(c *gin.Context) {
	ticket, err := h.facade.Ticket(c.Request.Context(), CurrentUser(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTicketResponse(*ticket))
}

// Reply handles POST /api/tickets/:id/reply for both sides of the thread.
func (h *TicketHandler) Reply(c *gin.Context) {
	var req dto.ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payload"})
		return
	}

	ticket, err := h.facade.ReplyTicket(c.Request.Context(), CurrentUser(c), c.Param("id"), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTicketResponse(*ticket))
}

// ListAll handles GET /api/admin/tickets.
func (h *TicketHandler) ListAll(c *gin.Context) {
	tickets, err := h.facade.AllTickets(c.Request.Context(), CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticketsToResponse(tickets))
}

// SetStatus handles POST /api/admin/tickets/:id/status.
func (h *TicketHandler) SetStatus(c *gin.Context) {
	var req dto.TicketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payload"})
		return
	}

	err := h.facade.SetTicketStatus(c.Request.Context(), CurrentUser(c), c.Param("id"), model.TicketStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func ticketsToResponse(tickets []model.SupportTicket) []dto.TicketResponse {
	resp := make([]dto.TicketResponse, 0, len(tickets))
	for _, ticket := range tickets {
		resp = append(resp, toTicketResponse(ticket))
	}
	return resp
}
