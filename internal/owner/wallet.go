package owner

import (
	"context"
	"net/http"
	"strconv"
)

// Wallet transaction types and states.
const (
	WalletDeposit  = "deposit"
	WalletWithdraw = "withdraw"

	WalletPending = "pending"
	MethodGcash   = "gcash"
)

// WalletSubmission is a deposit or withdrawal request. Deposits carry the
// GCash receipt image as proof; withdrawals are settled against the QR the
// owner has on file.
type WalletSubmission struct {
	UserID    string
	Type      string
	Amount    float64
	Reference string
	Receipt   *FilePart
}

// SubmitWalletTransaction files a pending wallet transaction for admin
// review. Balance changes only after the backend settles it.
func (c *Client) SubmitWalletTransaction(ctx context.Context, token string, sub WalletSubmission) error {
	fields := map[string]string{
		"user_id":   sub.UserID,
		"type":      sub.Type,
		"amount":    strconv.FormatFloat(sub.Amount, 'f', 2, 64),
		"status":    WalletPending,
		"method":    MethodGcash,
		"reference": sub.Reference,
	}
	var files []FilePart
	if sub.Receipt != nil {
		files = append(files, *sub.Receipt)
	}
	return c.doMultipart(ctx, c.ownerURL+"/submit-wallet-transaction", token, fields, files, nil)
}

// AdminGcashQR returns the platform's deposit QR code path.
func (c *Client) AdminGcashQR(ctx context.Context, token string) (string, error) {
	var resp struct {
		GcashQR string `json:"gcash_qr"`
	}
	if err := c.doJSON(ctx, http.MethodGet, c.ownerURL+"/get-admin-gcash", token, nil, &resp); err != nil {
		return "", err
	}
	return resp.GcashQR, nil
}

// UploadGcashQR stores the owner's own payout QR image.
func (c *Client) UploadGcashQR(ctx context.Context, token string, qr FilePart) error {
	return c.doMultipart(ctx, c.ownerURL+"/upload-gcash-qr", token, nil, []FilePart{qr}, nil)
}
