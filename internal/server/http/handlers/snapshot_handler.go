package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vantran/anishop/internal/domain/model"
	"github.com/vantran/anishop/internal/server/http/dto"
)

// SnapshotHandler exports and restores the whole store as one JSON document.
type SnapshotHandler struct {
	facade SnapshotFacade
}

// NewSnapshotHandler constructs SnapshotHandler.
func NewSnapshotHandler(facade SnapshotFacade) *SnapshotHandler {
	return &SnapshotHandler{facade: facade}
}

// Export handles GET /api/admin/snapshot.
func (h *SnapshotHandler) Export(c *gin.Context) {
	snapshot, err := h.facade.ExportSnapshot(c.Request.Context(), CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="anishop-backup.json"`)
	c.JSON(http.StatusOK, snapshot)
}

// Import handles POST /api/admin/snapshot.
func (h *SnapshotHandler) Import(c *gin.Context) {
	var snapshot model.Snapshot
	if err := c.ShouldBindJSON(&snapshot); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payload"})
		return
	}

	if err := h.facade.ImportSnapshot(c.Request.Context(), CurrentUser(c), &snapshot); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
