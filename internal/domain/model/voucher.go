package model

// Voucher defines a service offer with its processing fee. Orders keep the
// voucher code string, not a live reference, so deleting a voucher does not
// touch historical orders.
type Voucher struct {
	ID          string  `json:"id"`
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// NoVoucherCode is the sentinel a customer submits to order without a voucher.
const NoVoucherCode = "none"
