package model

// AnnouncementType selects the banner styling for the storefront.
type AnnouncementType string

const (
	AnnouncementInfo    AnnouncementType = "info"
	AnnouncementWarning AnnouncementType = "warning"
)

// ShopInfo holds publicly displayed shop contact channels.
type ShopInfo struct {
	Zalo  string `json:"zalo"`
	Email string `json:"email"`
}

// SMTPConfig is stored for the operator but not acted upon by the service.
type SMTPConfig struct {
	Host string `json:"host"`
	Port string `json:"port"`
	User string `json:"user"`
	Pass string `json:"pass"`
}

// BankInfo feeds the payment QR link shown to customers.
type BankInfo struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
}

// Announcement is the storefront banner.
type Announcement struct {
	Enabled bool             `json:"enabled"`
	Message string           `json:"message"`
	Type    AnnouncementType `json:"type"`
}

// Settings is the single global configuration document.
type Settings struct {
	MaintenanceMode bool         `json:"isMaintenanceMode"`
	OrderLimit      int          `json:"orderLimit"`
	ShopInfo        ShopInfo     `json:"shopInfo"`
	SMTP            SMTPConfig   `json:"smtp"`
	BankInfo        BankInfo     `json:"bankInfo"`
	Announcement    Announcement `json:"announcement"`
}

// SettingsPatch carries a partial settings update; nil sections are left
// untouched.
type SettingsPatch struct {
	MaintenanceMode *bool
	OrderLimit      *int
	ShopInfo        *ShopInfo
	SMTP            *SMTPConfig
	BankInfo        *BankInfo
	Announcement    *Announcement
}

// DefaultSettings seeds the settings document on first run.
func DefaultSettings() Settings {
	return Settings{
		MaintenanceMode: false,
		OrderLimit:      50,
		Announcement: Announcement{
			Enabled: false,
			Type:    AnnouncementInfo,
		},
	}
}
