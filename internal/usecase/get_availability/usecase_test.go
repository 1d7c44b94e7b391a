package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CWS-BookingService/internal/domain"
	"github.com/m04kA/CWS-BookingService/pkg/ptr"
)

type MockBookingRepo struct{ mock.Mock }

func (m *MockBookingRepo) GetForAllocation(ctx context.Context, workspaceType string, date time.Time) ([]*domain.Booking, error) {
	args := m.Called(ctx, workspaceType, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

type MockSettingsRepo struct{ mock.Mock }

func (m *MockSettingsRepo) GetAll(ctx context.Context) (map[string]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var testSettings = map[string]string{
	domain.SettingTotalDesks:  "2",
	domain.SettingHourlySlots: "9:00, 10:00, 11:00, 12:00",
}

func testDate() time.Time {
	return time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
}

func TestExecute_EmptyDayTruncatesOnlyTail(t *testing.T) {
	bookingRepo := new(MockBookingRepo)
	settingsRepo := new(MockSettingsRepo)

	settingsRepo.On("GetAll", mock.Anything).Return(testSettings, nil)
	bookingRepo.On("GetForAllocation", mock.Anything, "hot-desk", testDate()).
		Return([]*domain.Booking{}, nil)

	uc := NewUseCase(bookingRepo, settingsRepo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		WorkspaceType: "hot-desk",
		Date:          testDate(),
		Duration:      "2 hours",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.DurationHours)
	assert.Equal(t, 2, resp.TotalDesks)
	require.Len(t, resp.Slots, 4)

	// Для 2 часов на пустой день недоступен только последний стартовый слот
	assert.Equal(t, []string{"12:00"}, resp.UnavailableLabels())
}

func TestExecute_LegacyBookingBlocksSlot(t *testing.T) {
	bookingRepo := new(MockBookingRepo)
	settingsRepo := new(MockSettingsRepo)

	existing := []*domain.Booking{
		{TimeSlot: "10:00", Duration: "1 hour", DeskNumber: nil, Status: domain.StatusConfirmed},
	}

	settingsRepo.On("GetAll", mock.Anything).Return(testSettings, nil)
	bookingRepo.On("GetForAllocation", mock.Anything, "hot-desk", testDate()).Return(existing, nil)

	uc := NewUseCase(bookingRepo, settingsRepo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		WorkspaceType: "hot-desk",
		Date:          testDate(),
		Duration:      "2 hours",
	})

	require.NoError(t, err)
	// 10:00 блокирует оба стола: старты 9:00 и 10:00 пересекают его
	assert.Equal(t, []string{"9:00", "10:00", "12:00"}, resp.UnavailableLabels())
}

func TestExecute_PartialOccupancyStaysAvailable(t *testing.T) {
	bookingRepo := new(MockBookingRepo)
	settingsRepo := new(MockSettingsRepo)

	// Занят только один стол из двух - слот остается доступным
	existing := []*domain.Booking{
		{TimeSlot: "10:00", Duration: "2 hours", DeskNumber: ptr.Ptr(1), Status: domain.StatusPending},
	}

	settingsRepo.On("GetAll", mock.Anything).Return(testSettings, nil)
	bookingRepo.On("GetForAllocation", mock.Anything, "hot-desk", testDate()).Return(existing, nil)

	uc := NewUseCase(bookingRepo, settingsRepo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		WorkspaceType: "hot-desk",
		Date:          testDate(),
		Duration:      "1 hour",
	})

	require.NoError(t, err)
	assert.Empty(t, resp.UnavailableLabels())
}

func TestExecute_DefaultsWhenSettingsEmpty(t *testing.T) {
	bookingRepo := new(MockBookingRepo)
	settingsRepo := new(MockSettingsRepo)

	settingsRepo.On("GetAll", mock.Anything).Return(map[string]string{}, nil)
	bookingRepo.On("GetForAllocation", mock.Anything, "hot-desk", testDate()).
		Return([]*domain.Booking{}, nil)

	uc := NewUseCase(bookingRepo, settingsRepo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		WorkspaceType: "hot-desk",
		Date:          testDate(),
		Duration:      "1 hour",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTotalDesks, resp.TotalDesks)
	assert.Len(t, resp.Slots, len(domain.DefaultHourlySlots))
	assert.Empty(t, resp.UnavailableLabels())
}

func TestExecute_ValidationFailures(t *testing.T) {
	uc := NewUseCase(new(MockBookingRepo), new(MockSettingsRepo), nopLogger{})

	testCases := []struct {
		name string
		req  Request
	}{
		{name: "missing workspace", req: Request{Date: testDate(), Duration: "1 hour"}},
		{name: "zero date", req: Request{WorkspaceType: "hot-desk", Duration: "1 hour"}},
		{name: "missing duration", req: Request{WorkspaceType: "hot-desk", Date: testDate()}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := tc.req
			_, err := uc.Execute(context.Background(), &req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
