package share

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// DefaultQRSize is the rendered QR image edge length in pixels.
const DefaultQRSize = 512

// QRPNG renders the share link as a PNG image. Medium error correction
// keeps the code scannable on screens and cheap printouts.
func QRPNG(link string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultQRSize
	}
	png, err := qrcode.Encode(link, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to render QR code: %w", err)
	}
	return png, nil
}

// WriteQR renders the share link as a PNG file at the given path.
func WriteQR(link, path string, size int) error {
	if size <= 0 {
		size = DefaultQRSize
	}
	if err := qrcode.WriteFile(link, qrcode.Medium, size, path); err != nil {
		return fmt.Errorf("failed to write QR code: %w", err)
	}
	return nil
}
