package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hostelbites/config"
	"hostelbites/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.Event {
	return &service.Event{
		ID:         "evt-1",
		Type:       service.EventPurchaseCompleted,
		RequestID:  "req-42",
		OccurredAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Data:       &service.PurchaseCompletedData{Email: "a@x.io", PackageName: "Gold", Amount: 50},
	}
}

func TestLocalHTTPPublisher_Publish(t *testing.T) {
	var (
		push      PushMessage
		requestID string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&push))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	require.NoError(t, publisher.Publish(context.Background(), testEvent()))

	assert.Equal(t, "req-42", requestID)
	assert.Equal(t, "evt-1", push.Message.MessageID)
	assert.Equal(t, service.EventPurchaseCompleted, push.Message.Attributes["event_type"])
	assert.Equal(t, "req-42", push.Message.Attributes["request_id"])

	data, err := base64.StdEncoding.DecodeString(push.Message.Data)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, service.EventPurchaseCompleted, decoded["type"])
	assert.Equal(t, "Gold", decoded["data"].(map[string]any)["package"])
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	err := publisher.Publish(context.Background(), testEvent())

	assert.ErrorContains(t, err, "status 500")
}

func TestEventAttributes_OmitsEmptyRequestID(t *testing.T) {
	event := testEvent()
	event.RequestID = ""

	attributes := eventAttributes(event)

	assert.NotContains(t, attributes, "request_id")
	assert.Equal(t, "evt-1", attributes["event_id"])
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		pubsub  *config.PubSubConfig
		wantErr bool
	}{
		{name: "not configured", pubsub: nil},
		{name: "empty provider", pubsub: &config.PubSubConfig{}},
		{name: "local", pubsub: &config.PubSubConfig{Provider: ProviderLocal, LocalEndpoint: "http://localhost:8081/push"}},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: ProviderLocal}, wantErr: true},
		{name: "google without topic", pubsub: &config.PubSubConfig{Provider: ProviderGoogle, ProjectID: "p"}, wantErr: true},
		{name: "unknown", pubsub: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: discardLogger(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			if _, ok := publisher.(*noopPublisher); ok {
				assert.NoError(t, publisher.Publish(context.Background(), &service.Event{ID: "e", Type: "t"}))
			}
		})
	}
}
