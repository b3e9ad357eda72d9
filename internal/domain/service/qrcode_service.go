package service

// QRCodeService renders shareable content as QR code images.
type QRCodeService interface {
	// GeneratePNG encodes content into a PNG QR code.
	GeneratePNG(content string) ([]byte, error)
}
