// Package qrcode renders and parses signed meal request pickup tickets.
package qrcode

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"hostelbites/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	ticketType  = "meal_request"
	defaultSize = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	secret               []byte
}

// TicketData is the JSON payload encoded in a pickup ticket.
type TicketData struct {
	RequestID string `json:"request_id"`
	Type      string `json:"type"`
	Signature string `json:"sig"`
}

// NewQRCodeService creates a ticket service. Tickets are signed with secret so a request id alone cannot be redeemed.
func NewQRCodeService(size int, errorCorrectionLevel, secret string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(errorCorrectionLevel),
		secret:               []byte(secret),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

func (s *qrcodeService) sign(requestID string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(ticketType + ":" + requestID))

	return hex.EncodeToString(mac.Sum(nil))
}

// ticketPayload returns the JSON text encoded in the ticket of requestID.
func (s *qrcodeService) ticketPayload(requestID string) (string, error) {
	data, err := json.Marshal(TicketData{
		RequestID: requestID,
		Type:      ticketType,
		Signature: s.sign(requestID),
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal ticket data")
	}

	return string(data), nil
}

// GenerateMealRequestQR renders the signed ticket of a meal request as PNG
func (s *qrcodeService) GenerateMealRequestQR(requestID string) ([]byte, error) {
	if requestID == "" {
		return nil, errors.New("request id is required")
	}

	payload, err := s.ticketPayload(requestID)
	if err != nil {
		return nil, err
	}

	code, err := qrcode.New(payload, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	png, err := code.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render QR code")
	}

	return png, nil
}

// ParseMealRequestQR verifies scanned ticket data and returns the request id
func (s *qrcodeService) ParseMealRequestQR(qrData string) (string, error) {
	var data TicketData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal ticket data")
	}

	if data.Type != ticketType {
		return "", errors.Errorf("invalid ticket type: %s", data.Type)
	}
	if data.RequestID == "" {
		return "", errors.New("ticket has no request id")
	}
	if !hmac.Equal([]byte(data.Signature), []byte(s.sign(data.RequestID))) {
		return "", errors.New("ticket signature mismatch")
	}

	return data.RequestID, nil
}
