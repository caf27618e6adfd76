package dto

// AnnouncementPayload is the storefront banner.
type AnnouncementPayload struct {
	Enabled bool   `json:"enabled"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// ShopInfoPayload holds public shop contact channels.
type ShopInfoPayload struct {
	Zalo  string `json:"zalo"`
	Email string `json:"email"`
}

// BankInfoPayload feeds the payment QR display.
type BankInfoPayload struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
}

// SMTPPayload is stored for the operator, never acted upon.
type SMTPPayload struct {
	Host string `json:"host"`
	Port string `json:"port"`
	User string `json:"user"`
	Pass string `json:"pass"`
}

// PublicSettingsResponse is the unauthenticated storefront projection.
type PublicSettingsResponse struct {
	MaintenanceMode bool                `json:"isMaintenanceMode"`
	ShopInfo        ShopInfoPayload     `json:"shopInfo"`
	BankInfo        BankInfoPayload     `json:"bankInfo"`
	Announcement    AnnouncementPayload `json:"announcement"`
}

// SettingsResponse is the full admin view.
type SettingsResponse struct {
	MaintenanceMode bool                `json:"isMaintenanceMode"`
	OrderLimit      int                 `json:"orderLimit"`
	ShopInfo        ShopInfoPayload     `json:"shopInfo"`
	SMTP            SMTPPayload         `json:"smtp"`
	BankInfo        BankInfoPayload     `json:"bankInfo"`
	Announcement    AnnouncementPayload `json:"announcement"`
}

// SettingsPatchRequest applies a partial update; absent sections are left
// untouched.
type SettingsPatchRequest struct {
	MaintenanceMode *bool                `json:"isMaintenanceMode"`
	OrderLimit      *int                 `json:"orderLimit"`
	ShopInfo        *ShopInfoPayload     `json:"shopInfo"`
	SMTP            *SMTPPayload         `json:"smtp"`
	BankInfo        *BankInfoPayload     `json:"bankInfo"`
	Announcement    *AnnouncementPayload `json:"announcement"`
}
