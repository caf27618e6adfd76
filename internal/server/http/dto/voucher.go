package dto

// VoucherRequest creates a service offer.
type VoucherRequest struct {
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// VoucherResponse is a service offer with its processing fee.
type VoucherResponse struct {
	ID          string  `json:"id"`
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}
