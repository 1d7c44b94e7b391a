package notifyservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CWS-BookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func sampleEvent() *Event {
	return &Event{
		Type:          EventBookingCreated,
		BookingID:     42,
		UserID:        7,
		WorkspaceType: "hot-desk",
		BookingDate:   "2026-09-01",
		TimeSlot:      "10:00 AM",
		Duration:      "2 hours",
		DeskNumber:    ptr.Ptr(3),
	}
}

func TestSendEvent(t *testing.T) {
	var gotPath string
	var gotEvent Event

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotEvent))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nopLogger{})

	err := client.SendEvent(context.Background(), sampleEvent())

	require.NoError(t, err)
	assert.Equal(t, "/internal/events", gotPath)
	assert.Equal(t, EventBookingCreated, gotEvent.Type)
	assert.Equal(t, int64(42), gotEvent.BookingID)
	require.NotNil(t, gotEvent.DeskNumber)
	assert.Equal(t, 3, *gotEvent.DeskNumber)
}

func TestSendEvent_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nopLogger{})

	err := client.SendEvent(context.Background(), sampleEvent())
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestSendEventWithGracefulDegradation_ServiceDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // сервис недоступен

	client := NewClient(srv.URL, time.Second, nopLogger{})

	err := client.SendEventWithGracefulDegradation(context.Background(), sampleEvent())
	assert.ErrorIs(t, err, ErrServiceDegraded)
}

func TestSendEventWithGracefulDegradation_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nopLogger{})

	err := client.SendEventWithGracefulDegradation(context.Background(), sampleEvent())
	assert.NoError(t, err)
}
