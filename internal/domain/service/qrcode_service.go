package service

// QRCodeService defines the interface for QR code generation.
type QRCodeService interface {
	// GenerateOrderPickupQR renders a PNG QR code carrying the order's
	// display number, scanned at counter pickup.
	GenerateOrderPickupQR(displayNumber int64) ([]byte, error)
}
