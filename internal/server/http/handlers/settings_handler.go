package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vantran/anishop/internal/domain/model"
	"github.com/vantran/anishop/internal/server/http/dto"
)

// SettingsHandler serves the global settings document.
type SettingsHandler struct {
	facade SettingsFacade
}

// NewSettingsHandler constructs SettingsHandler.
func NewSettingsHandler(facade SettingsFacade) *SettingsHandler {
	return &SettingsHandler{facade: facade}
}

// Public handles GET /api/public/settings. The order limit and SMTP block
// stay admin-only.
func (h *SettingsHandler) Public(c *gin.Context) {
	settings, err := h.facade.Settings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PublicSettingsResponse{
		MaintenanceMode: settings.MaintenanceMode,
		ShopInfo:        toShopInfoPayload(settings.ShopInfo),
		BankInfo:        toBankInfoPayload(settings.BankInfo),
		Announcement:    toAnnouncementPayload(settings.Announcement),
	})
}

// Get handles GET /api/admin/settings.
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.facade.Settings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSettingsResponse(settings))
}

// Update handles PUT /api/admin/settings.
func (h *SettingsHandler) Update(c *gin.Context) {
	var req dto.SettingsPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payload"})
		return
	}

	patch := model.SettingsPatch{
		MaintenanceMode: req.MaintenanceMode,
		OrderLimit:      req.OrderLimit,
	}
	if req.ShopInfo != nil {
		patch.ShopInfo = &model.ShopInfo{Zalo: req.ShopInfo.Zalo, Email: req.ShopInfo.Email}
	}
	if req.SMTP != nil {
		patch.SMTP = &model.SMTPConfig{Host: req.SMTP.Host, Port: req.SMTP.Port, User: req.SMTP.User, Pass: req.SMTP.Pass}
	}
	if req.BankInfo != nil {
		patch.BankInfo = &model.BankInfo{
			BankName:      req.BankInfo.BankName,
			AccountNumber: req.BankInfo.AccountNumber,
			AccountName:   req.BankInfo.AccountName,
		}
	}
	if req.Announcement != nil {
		patch.Announcement = &model.Announcement{
			Enabled: req.Announcement.Enabled,
			Message: req.Announcement.Message,
			Type:    model.AnnouncementType(req.Announcement.Type),
		}
	}

	settings, err := h.facade.UpdateSettings(c.Request.Context(), CurrentUser(c), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSettingsResponse(settings))
}

func toSettingsResponse(settings model.Settings) dto.SettingsResponse {
	return dto.SettingsResponse{
		MaintenanceMode: settings.MaintenanceMode,
		OrderLimit:      settings.OrderLimit,
		ShopInfo:        toShopInfoPayload(settings.ShopInfo),
		SMTP:            dto.SMTPPayload{Host: settings.SMTP.Host, Port: settings.SMTP.Port, User: settings.SMTP.User, Pass: settings.SMTP.Pass},
		BankInfo:        toBankInfoPayload(settings.BankInfo),
		Announcement:    toAnnouncementPayload(settings.Announcement),
	}
}

func toShopInfoPayload(info model.ShopInfo) dto.ShopInfoPayload {
	return dto.ShopInfoPayload{Zalo: info.Zalo, Email: info.Email}
}

func toBankInfoPayload(info model.BankInfo) dto.BankInfoPayload {
	return dto.BankInfoPayload{
		BankName:      info.BankName,
		AccountNumber: info.AccountNumber,
		AccountName:   info.AccountName,
	}
}

func toAnnouncementPayload(a model.Announcement) dto.AnnouncementPayload {
	return dto.AnnouncementPayload{Enabled: a.Enabled, Message: a.Message, Type: string(a.Type)}
}
