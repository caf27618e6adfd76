package model

import "time"

// Snapshot is the whole-store export used for admin backup and restore.
// The JSON encoding keeps all date fields in RFC 3339 so an import restores
// them to the same instant.
type Snapshot struct {
	Users             []User          `json:"users"`
	Orders            []Order         `json:"orders"`
	SupportTickets    []SupportTicket `json:"supportTickets"`
	OrderEditRequests []EditRequest   `json:"orderEditRequests"`
	Vouchers          []Voucher       `json:"vouchers"`
	Settings          Settings        `json:"settings"`
	ExportedAt        time.Time       `json:"exportedAt"`
}
