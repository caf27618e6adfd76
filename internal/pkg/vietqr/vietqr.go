// Package vietqr builds VietQR payment image URLs for bank transfers.
package vietqr

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/vantran/anishop/internal/domain/model"
)

const imageHost = "https://img.vietqr.io/image/"

// PaymentURL returns the QR image URL for paying the service fee of an order.
// Returns empty string when bank details are incomplete, the frontend then
// falls back to showing manual transfer instructions.
func PaymentURL(bank model.BankInfo, orderID string, amount float64) string {
	bankID := strings.ReplaceAll(bank.BankName, " ", "")
	if bankID == "" || bank.AccountNumber == "" {
		return ""
	}

	query := url.Values{}
	if amount > 0 {
		query.Set("amount", strconv.FormatFloat(amount, 'f', -1, 64))
	}
	query.Set("addInfo", orderID)
	if bank.AccountName != "" {
		query.Set("accountName", bank.AccountName)
	}

	return imageHost + url.PathEscape(bankID) + "-" + url.PathEscape(bank.AccountNumber) + "-compact.png?" + query.Encode()
}
