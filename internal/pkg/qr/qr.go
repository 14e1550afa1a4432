package qr

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// EncodeTopUpPayload renders the SBP-style payment payload as a PNG.
// The payload format mirrors what banking apps expect to scan:
// "SBP|<code>|<amount>".
func EncodeTopUpPayload(code string, amount int64) ([]byte, error) {
	payload := fmt.Sprintf("SBP|%s|%d", code, amount)

	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	return png, nil
}
