package service

// QRCodeService defines the interface for meal request ticket generation and parsing
type QRCodeService interface {
	// GenerateMealRequestQR generates a PNG ticket for a meal request
	GenerateMealRequestQR(requestID string) ([]byte, error)

	// ParseMealRequestQR parses scanned ticket data and returns the request ID
	ParseMealRequestQR(qrData string) (string, error)
}
