package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CWS-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/CWS-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/CWS-BookingService/internal/integrations/notifyservice"
	"github.com/m04kA/CWS-BookingService/internal/service/bookings/models"
	"github.com/m04kA/CWS-BookingService/pkg/ptr"
)

type MockBookingRepo struct{ mock.Mock }

func (m *MockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	args := m.Called(ctx, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) GetWithFilter(ctx context.Context, filter domain.WorkspaceBookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockBookingRepo) Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error {
	return m.Called(ctx, id, status, reason).Error(0)
}

type MockNotifyClient struct{ mock.Mock }

func (m *MockNotifyClient) SendEventWithGracefulDegradation(ctx context.Context, event *notifyservice.Event) error {
	return m.Called(ctx, event).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func sampleBooking() *domain.Booking {
	return &domain.Booking{
		ID:            10,
		UserID:        7,
		WorkspaceType: "hot-desk",
		BookingDate:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		TimeSlot:      "10:00 AM",
		Duration:      "2 hours",
		DeskNumber:    ptr.Ptr(3),
		Status:        domain.StatusConfirmed,
	}
}

func TestGetByID_Owner(t *testing.T) {
	repo := new(MockBookingRepo)
	repo.On("GetByID", mock.Anything, int64(10)).Return(sampleBooking(), nil)

	svc := NewService(repo, new(MockNotifyClient), nopLogger{})

	resp, err := svc.GetByID(context.Background(), 10, 7, false)

	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, "2026-09-01", resp.BookingDate)
	require.NotNil(t, resp.DeskNumber)
	assert.Equal(t, 3, *resp.DeskNumber)
}

func TestGetByID_ForeignBookingDenied(t *testing.T) {
	repo := new(MockBookingRepo)
	repo.On("GetByID", mock.Anything, int64(10)).Return(sampleBooking(), nil)

	svc := NewService(repo, new(MockNotifyClient), nopLogger{})

	_, err := svc.GetByID(context.Background(), 10, 999, false)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_AdminSeesAny(t *testing.T) {
	repo := new(MockBookingRepo)
	repo.On("GetByID", mock.Anything, int64(10)).Return(sampleBooking(), nil)

	svc := NewService(repo, new(MockNotifyClient), nopLogger{})

	resp, err := svc.GetByID(context.Background(), 10, 999, true)
	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := new(MockBookingRepo)
	repo.On("GetByID", mock.Anything, int64(404)).Return(nil, bookingRepo.ErrBookingNotFound)

	svc := NewService(repo, new(MockNotifyClient), nopLogger{})

	_, err := svc.GetByID(context.Background(), 404, 7, false)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings_InvalidStatus(t *testing.T) {
	svc := NewService(new(MockBookingRepo), new(MockNotifyClient), nopLogger{})

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 7,
		Status: ptr.Ptr("unknown_status"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetWorkspaceBookings_AdminOnly(t *testing.T) {
	svc := NewService(new(MockBookingRepo), new(MockNotifyClient), nopLogger{})

	_, err := svc.GetWorkspaceBookings(context.Background(), &models.GetWorkspaceBookingsRequest{
		UserID:        7,
		IsAdmin:       false,
		WorkspaceType: "hot-desk",
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetWorkspaceBookings_FiltersPassedThrough(t *testing.T) {
	repo := new(MockBookingRepo)

	status := domain.StatusConfirmed
	repo.On("GetWithFilter", mock.Anything, mock.MatchedBy(func(f domain.WorkspaceBookingsFilter) bool {
		return f.WorkspaceType == "hot-desk" && f.Status != nil && *f.Status == status && f.IncludeInactive
	})).Return([]*domain.Booking{sampleBooking()}, nil)

	svc := NewService(repo, new(MockNotifyClient), nopLogger{})

	resp, err := svc.GetWorkspaceBookings(context.Background(), &models.GetWorkspaceBookingsRequest{
		UserID:          1,
		IsAdmin:         true,
		WorkspaceType:   "hot-desk",
		Status:          ptr.Ptr("confirmed"),
		IncludeInactive: true,
	})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	repo.AssertExpectations(t)
}

func TestCancel_OwnerSetsCancelledByUser(t *testing.T) {
	repo := new(MockBookingRepo)
	notify := new(MockNotifyClient)

	repo.On("GetByID", mock.Anything, int64(10)).Return(sampleBooking(), nil)
	repo.On("Cancel", mock.Anything, int64(10), domain.StatusCancelledByUser, "plans changed").Return(nil)
	notify.On("SendEventWithGracefulDegradation", mock.Anything, mock.MatchedBy(func(e *notifyservice.Event) bool {
		return e.Type == notifyservice.EventBookingCancelled && e.CancelStatus == string(domain.StatusCancelledByUser)
	})).Return(nil)

	svc := NewService(repo, notify, nopLogger{})

	err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{
		UserID:             7,
		CancellationReason: "plans changed",
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
	notify.AssertExpectations(t)
}

func TestCancel_AdminSetsCancelledByAdmin(t *testing.T) {
	repo := new(MockBookingRepo)
	notify := new(MockNotifyClient)

	repo.On("GetByID", mock.Anything, int64(10)).Return(sampleBooking(), nil)
	repo.On("Cancel", mock.Anything, int64(10), domain.StatusCancelledByAdmin, "maintenance").Return(nil)
	notify.On("SendEventWithGracefulDegradation", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo, notify, nopLogger{})

	err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{
		UserID:             999,
		IsAdmin:            true,
		CancellationReason: "maintenance",
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCancel_ForeignUserDenied(t *testing.T) {
	repo := new(MockBookingRepo)
	repo.On("GetByID", mock.Anything, int64(10)).Return(sampleBooking(), nil)

	svc := NewService(repo, new(MockNotifyClient), nopLogger{})

	err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{UserID: 999})

	assert.ErrorIs(t, err, ErrAccessDenied)
	repo.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	repo := new(MockBookingRepo)

	cancelled := sampleBooking()
	cancelled.Status = domain.StatusCancelledByUser
	repo.On("GetByID", mock.Anything, int64(10)).Return(cancelled, nil)

	svc := NewService(repo, new(MockNotifyClient), nopLogger{})

	err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{UserID: 7})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestUpdateStatus_AdminOnly(t *testing.T) {
	svc := NewService(new(MockBookingRepo), new(MockNotifyClient), nopLogger{})

	err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{
		UserID: 7,
		Status: "confirmed",
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateStatus_Success(t *testing.T) {
	repo := new(MockBookingRepo)
	repo.On("GetByID", mock.Anything, int64(10)).Return(sampleBooking(), nil)
	repo.On("UpdateStatus", mock.Anything, int64(10), domain.StatusCodeSent).Return(nil)

	svc := NewService(repo, new(MockNotifyClient), nopLogger{})

	err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{
		UserID:  1,
		IsAdmin: true,
		Status:  "code_sent",
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	repo := new(MockBookingRepo)
	repo.On("GetByID", mock.Anything, int64(10)).Return(sampleBooking(), nil)

	svc := NewService(repo, new(MockNotifyClient), nopLogger{})

	err := svc.UpdateStatus(context.Background(), 10, &models.UpdateStatusRequest{
		UserID:  1,
		IsAdmin: true,
		Status:  "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}
