package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CWS-BookingService/internal/domain"
	"github.com/m04kA/CWS-BookingService/internal/service/settings/models"
	"github.com/m04kA/CWS-BookingService/pkg/ptr"
)

type MockSettingsRepo struct{ mock.Mock }

func (m *MockSettingsRepo) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockSettingsRepo) GetAll(ctx context.Context) (map[string]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockSettingsRepo) Upsert(ctx context.Context, key, value string) error {
	return m.Called(ctx, key, value).Error(0)
}

func (m *MockSettingsRepo) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestGetSitePlan_DefaultsForMissingKeys(t *testing.T) {
	repo := new(MockSettingsRepo)
	repo.On("GetAll", mock.Anything).Return(map[string]string{}, nil)

	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetSitePlan(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTotalDesks, resp.TotalDesks)
	assert.Equal(t, domain.DefaultHourlySlots, resp.HourlySlots)
	assert.Equal(t, domain.DefaultBookingDurations, resp.BookingDurations)
}

func TestGetSitePlan_RepositoryError(t *testing.T) {
	repo := new(MockSettingsRepo)
	repo.On("GetAll", mock.Anything).Return(nil, errors.New("db down"))

	svc := NewService(repo, nopLogger{})

	_, err := svc.GetSitePlan(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestUpdate_AdminOnly(t *testing.T) {
	svc := NewService(new(MockSettingsRepo), nopLogger{})

	_, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
		UserID:     7,
		TotalDesks: ptr.Ptr(10),
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdate_PartialUpdate(t *testing.T) {
	repo := new(MockSettingsRepo)
	repo.On("Upsert", mock.Anything, domain.SettingTotalDesks, "10").Return(nil)
	repo.On("GetAll", mock.Anything).Return(map[string]string{
		domain.SettingTotalDesks: "10",
	}, nil)

	svc := NewService(repo, nopLogger{})

	resp, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
		UserID:     1,
		IsAdmin:    true,
		TotalDesks: ptr.Ptr(10),
	})

	require.NoError(t, err)
	assert.Equal(t, 10, resp.TotalDesks)
	repo.AssertNotCalled(t, "Upsert", mock.Anything, domain.SettingHourlySlots, mock.Anything)
}

func TestUpdate_SlotsSerializedAsCSV(t *testing.T) {
	repo := new(MockSettingsRepo)
	repo.On("Upsert", mock.Anything, domain.SettingHourlySlots, "9:00 AM, 10:00 AM").Return(nil)
	repo.On("GetAll", mock.Anything).Return(map[string]string{
		domain.SettingHourlySlots: "9:00 AM, 10:00 AM",
	}, nil)

	svc := NewService(repo, nopLogger{})

	resp, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
		UserID:      1,
		IsAdmin:     true,
		HourlySlots: ptr.Ptr([]string{" 9:00 AM", "10:00 AM "}),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"9:00 AM", "10:00 AM"}, resp.HourlySlots)
	repo.AssertExpectations(t)
}

func TestUpdate_ValidationFailures(t *testing.T) {
	svc := NewService(new(MockSettingsRepo), nopLogger{})

	testCases := []struct {
		name string
		req  models.UpdateSettingsRequest
	}{
		{name: "empty update", req: models.UpdateSettingsRequest{UserID: 1, IsAdmin: true}},
		{name: "zero desks", req: models.UpdateSettingsRequest{UserID: 1, IsAdmin: true, TotalDesks: ptr.Ptr(0)}},
		{name: "negative desks", req: models.UpdateSettingsRequest{UserID: 1, IsAdmin: true, TotalDesks: ptr.Ptr(-3)}},
		{name: "too many desks", req: models.UpdateSettingsRequest{UserID: 1, IsAdmin: true, TotalDesks: ptr.Ptr(domain.MaxTotalDesks + 1)}},
		{name: "empty slots", req: models.UpdateSettingsRequest{UserID: 1, IsAdmin: true, HourlySlots: ptr.Ptr([]string{"  "})}},
		{name: "empty durations", req: models.UpdateSettingsRequest{UserID: 1, IsAdmin: true, BookingDurations: ptr.Ptr([]string{})}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := tc.req
			_, err := svc.Update(context.Background(), &req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
