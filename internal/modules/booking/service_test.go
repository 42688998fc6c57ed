package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"sharksports/internal/domain"
	"sharksports/internal/events"
	"sharksports/internal/repository"
	"sharksports/internal/scope"
)

// Mock repositories

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) List(ctx context.Context, pred scope.Predicate, f repository.BookingFilter) ([]domain.BookingWithVenue, error) {
	args := m.Called(ctx, pred, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookingWithVenue), args.Error(1)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, pred scope.Predicate, id int64) (*domain.BookingWithVenue, error) {
	args := m.Called(ctx, pred, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingWithVenue), args.Error(1)
}

func (m *MockBookingRepository) CreateWithConflictCheck(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil && args.Error(0) == nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockVenueRepository struct {
	mock.Mock
}

func (m *MockVenueRepository) GetByID(ctx context.Context, pred scope.Predicate, id int64) (*repository.VenueWithVendor, error) {
	args := m.Called(ctx, pred, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.VenueWithVendor), args.Error(1)
}

type MockActivityLogger struct {
	mock.Mock
}

func (m *MockActivityLogger) Log(ctx context.Context, userID *int64, action, description, entityType string, entityID int64) error {
	args := m.Called(ctx, userID, action, description, entityType, entityID)
	return args.Error(0)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) Notify(ctx context.Context, userID int64, title, message string, ntype domain.NotificationType, entityType string, entityID int64) {
	m.Called(ctx, userID, title, message, ntype, entityType, entityID)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event events.BookingEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func testVenue() *repository.VenueWithVendor {
	return &repository.VenueWithVendor{
		Venue: domain.Venue{
			ID:       5,
			Name:     "Shark Cricket Ground",
			Location: "MG Road, Bengaluru",
			Status:   domain.VenueActive,
		},
	}
}

func vendorActor() scope.Actor {
	return scope.Actor{UserID: 42, Role: domain.RoleVendor}
}

func newTestService(bookings *MockBookingRepository, venues *MockVenueRepository) (*Service, *MockActivityLogger, *MockNotificationSender, *MockEventPublisher) {
	activity := new(MockActivityLogger)
	notifs := new(MockNotificationSender)
	pub := new(MockEventPublisher)
	return NewService(bookings, venues, activity, notifs, pub), activity, notifs, pub
}

func TestService_Create_Success(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVenues := new(MockVenueRepository)
	svc, activity, notifs, pub := newTestService(mockBookings, mockVenues)

	mockVenues.On("GetByID", mock.Anything, mock.Anything, int64(5)).Return(testVenue(), nil)
	mockBookings.On("CreateWithConflictCheck", mock.Anything, mock.Anything).Return(nil)
	activity.On("Log", mock.Anything, mock.Anything, "CREATE_BOOKING", mock.Anything, "booking", int64(999)).Return(nil)
	notifs.On("Notify", mock.Anything, int64(42), "New Booking Created", mock.Anything, domain.NotifySuccess, "booking", int64(999)).Return()
	pub.On("Publish", mock.Anything, mock.Anything).Return(nil)

	b, err := svc.Create(context.Background(), vendorActor(), CreateBookingRequest{
		VenueID:       5,
		CustomerName:  "Rahul Sharma",
		CustomerEmail: "rahul@example.com",
		BookingDate:   "2026-09-15",
		StartTime:     "10:00",
		EndTime:       "12:00",
		TotalAmount:   2000,
	})

	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.Equal(t, "10:00:00", b.StartTime)
	assert.Equal(t, "12:00:00", b.EndTime)
	assert.Equal(t, domain.BookingConfirmed, b.BookingStatus)
	assert.Equal(t, domain.PaymentPending, b.PaymentStatus)
	mockBookings.AssertExpectations(t)
	notifs.AssertExpectations(t)
}

func TestService_Create_Conflict(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVenues := new(MockVenueRepository)
	svc, _, _, _ := newTestService(mockBookings, mockVenues)

	mockVenues.On("GetByID", mock.Anything, mock.Anything, int64(5)).Return(testVenue(), nil)
	mockBookings.On("CreateWithConflictCheck", mock.Anything, mock.Anything).Return(repository.ErrConflict)

	_, err := svc.Create(context.Background(), vendorActor(), CreateBookingRequest{
		VenueID:       5,
		CustomerName:  "Rahul Sharma",
		CustomerEmail: "rahul@example.com",
		BookingDate:   "2026-09-15",
		StartTime:     "10:00",
		EndTime:       "12:00",
		TotalAmount:   2000,
	})

	assert.ErrorIs(t, err, ErrConflict)
}

func TestService_Create_ForeignVenueIsNotFound(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVenues := new(MockVenueRepository)
	svc, _, _, _ := newTestService(mockBookings, mockVenues)

	mockVenues.On("GetByID", mock.Anything, mock.Anything, int64(7)).Return(nil, repository.ErrNotFound)

	_, err := svc.Create(context.Background(), vendorActor(), CreateBookingRequest{
		VenueID:       7,
		CustomerName:  "Rahul Sharma",
		CustomerEmail: "rahul@example.com",
		BookingDate:   "2026-09-15",
		StartTime:     "10:00",
		EndTime:       "12:00",
		TotalAmount:   2000,
	})

	assert.ErrorIs(t, err, ErrNotFound)
	mockBookings.AssertNotCalled(t, "CreateWithConflictCheck", mock.Anything, mock.Anything)
}

func TestService_Create_InvalidSlot(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVenues := new(MockVenueRepository)
	svc, _, _, _ := newTestService(mockBookings, mockVenues)

	cases := []struct {
		name  string
		date  string
		start string
		end   string
	}{
		{"bad date", "15-09-2026", "10:00", "12:00"},
		{"bad time", "2026-09-15", "ten", "12:00"},
		{"inverted range", "2026-09-15", "12:00", "10:00"},
		{"zero length", "2026-09-15", "10:00", "10:00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), vendorActor(), CreateBookingRequest{
				VenueID:       5,
				CustomerName:  "Rahul Sharma",
				CustomerEmail: "rahul@example.com",
				BookingDate:   tc.date,
				StartTime:     tc.start,
				EndTime:       tc.end,
				TotalAmount:   2000,
			})
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
	mockVenues.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Create_StorageErrorAborts(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVenues := new(MockVenueRepository)
	svc, _, _, _ := newTestService(mockBookings, mockVenues)

	dbDown := errors.New("connection reset")
	mockVenues.On("GetByID", mock.Anything, mock.Anything, int64(5)).Return(testVenue(), nil)
	mockBookings.On("CreateWithConflictCheck", mock.Anything, mock.Anything).Return(dbDown)

	_, err := svc.Create(context.Background(), vendorActor(), CreateBookingRequest{
		VenueID:       5,
		CustomerName:  "Rahul Sharma",
		CustomerEmail: "rahul@example.com",
		BookingDate:   "2026-09-15",
		StartTime:     "10:00",
		EndTime:       "12:00",
		TotalAmount:   2000,
	})

	assert.ErrorIs(t, err, dbDown)
	assert.NotErrorIs(t, err, ErrConflict)
}

func TestService_Update_StatusAndNotify(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVenues := new(MockVenueRepository)
	svc, activity, notifs, pub := newTestService(mockBookings, mockVenues)

	existing := &domain.BookingWithVenue{
		Booking:   domain.Booking{ID: 3, VenueID: 5, BookingStatus: domain.BookingConfirmed},
		VenueName: "Shark Cricket Ground",
	}
	mockBookings.On("GetByID", mock.Anything, mock.Anything, int64(3)).Return(existing, nil)
	mockBookings.On("UpdateFields", mock.Anything, int64(3), mock.Anything).Return(nil)
	activity.On("Log", mock.Anything, mock.Anything, "UPDATE_BOOKING", mock.Anything, "booking", int64(3)).Return(nil)
	notifs.On("Notify", mock.Anything, int64(42), "Booking Cancelled", mock.Anything, domain.NotifyWarning, "booking", int64(3)).Return()
	pub.On("Publish", mock.Anything, mock.Anything).Return(nil)

	cancelled := string(domain.BookingCancelled)
	err := svc.Update(context.Background(), vendorActor(), 3, UpdateBookingRequest{BookingStatus: &cancelled})

	assert.NoError(t, err)
	notifs.AssertExpectations(t)
}

func TestService_Update_InvalidStatus(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVenues := new(MockVenueRepository)
	svc, _, _, _ := newTestService(mockBookings, mockVenues)

	existing := &domain.BookingWithVenue{Booking: domain.Booking{ID: 3}}
	mockBookings.On("GetByID", mock.Anything, mock.Anything, int64(3)).Return(existing, nil)

	bogus := "archived"
	err := svc.Update(context.Background(), vendorActor(), 3, UpdateBookingRequest{BookingStatus: &bogus})

	assert.ErrorIs(t, err, ErrValidation)
	mockBookings.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Get_UnknownRoleDenied(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockVenues := new(MockVenueRepository)
	svc, _, _, _ := newTestService(mockBookings, mockVenues)

	_, err := svc.Get(context.Background(), scope.Actor{UserID: 1, Role: "auditor"}, 3)

	assert.ErrorIs(t, err, ErrNotFound)
	mockBookings.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
}
