package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_ticket_secret"

func newTestService() *qrcodeService {
	return NewQRCodeService(256, "M", testSecret).(*qrcodeService)
}

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		level string
		name  string
	}{
		{"L", "low"},
		{"m", "medium"},
		{"Q", "high"},
		{"H", "highest"},
		{"invalid", "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, NewQRCodeService(256, tt.level, testSecret))
		})
	}

	assert.Equal(t, recoveryLevel("bogus"), recoveryLevel("M"))
}

func TestGenerateMealRequestQR_PNG(t *testing.T) {
	svc := newTestService()

	png, err := svc.GenerateMealRequestQR("65f0a1b2c3d4e5f601234567")

	require.NoError(t, err)
	require.Greater(t, len(png), 4)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, png[:4])
}

func TestGenerateMealRequestQR_DefaultSize(t *testing.T) {
	svc := NewQRCodeService(0, "M", testSecret).(*qrcodeService)

	assert.Equal(t, defaultSize, svc.size)
}

func TestGenerateMealRequestQR_EmptyID(t *testing.T) {
	_, err := newTestService().GenerateMealRequestQR("")

	assert.Error(t, err)
}

func TestParseMealRequestQR_RoundTrip(t *testing.T) {
	svc := newTestService()

	payload, err := svc.ticketPayload("req-123")
	require.NoError(t, err)

	id, err := svc.ParseMealRequestQR(payload)

	require.NoError(t, err)
	assert.Equal(t, "req-123", id)
}

func TestParseMealRequestQR_Rejects(t *testing.T) {
	svc := newTestService()
	valid, err := svc.ticketPayload("req-123")
	require.NoError(t, err)

	var tampered TicketData
	require.NoError(t, json.Unmarshal([]byte(valid), &tampered))
	tampered.RequestID = "req-999"
	tamperedJSON, err := json.Marshal(tampered)
	require.NoError(t, err)

	otherKey, err := NewQRCodeService(256, "M", "other_secret").(*qrcodeService).ticketPayload("req-123")
	require.NoError(t, err)

	tests := []struct {
		name string
		data string
	}{
		{"not json", "not-a-ticket"},
		{"wrong type", `{"request_id":"req-123","type":"subscription","sig":"x"}`},
		{"missing id", `{"type":"meal_request","sig":"x"}`},
		{"tampered id", string(tamperedJSON)},
		{"different secret", otherKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseMealRequestQR(tt.data)
			assert.Error(t, err)
		})
	}
}
