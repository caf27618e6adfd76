package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Orders() OrderRepository
	EditRequests() EditRequestRepository
	Tickets() TicketRepository
	Vouchers() VoucherRepository
	Settings() SettingsRepository
}
