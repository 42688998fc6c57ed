package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sharksports/internal/domain"
	"sharksports/internal/events"
	"sharksports/internal/repository"
	"sharksports/internal/scope"
)

type Service struct {
	bookings BookingRepository
	venues   VenueRepository
	activity ActivityLogger
	notifs   NotificationSender
	events   EventPublisher
}

func NewService(
	bookings BookingRepository,
	venues VenueRepository,
	activity ActivityLogger,
	notifs NotificationSender,
	events EventPublisher,
) *Service {
	return &Service{
		bookings: bookings,
		venues:   venues,
		activity: activity,
		notifs:   notifs,
		events:   events,
	}
}

// List returns the bookings visible to the actor, optionally filtered by
// venue, status and date.
func (s *Service) List(ctx context.Context, actor scope.Actor, f repository.BookingFilter) ([]domain.BookingWithVenue, error) {
	pred, err := scope.Bookings(actor)
	if err != nil {
		return nil, ErrNotFound
	}
	return s.bookings.List(ctx, pred, f)
}

func (s *Service) Get(ctx context.Context, actor scope.Actor, id int64) (*domain.BookingWithVenue, error) {
	pred, err := scope.Bookings(actor)
	if err != nil {
		return nil, ErrNotFound
	}
	b, err := s.bookings.GetByID(ctx, pred, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// Create gates a new booking through the actor's venue scope and the
// location conflict check, then persists it with default statuses
// (confirmed / payment pending). The conflict check and the insert run in
// one transaction; any storage failure aborts the create.
func (s *Service) Create(ctx context.Context, actor scope.Actor, req CreateBookingRequest) (*domain.Booking, error) {
	date, start, end, err := normalizeSlot(req.BookingDate, req.StartTime, req.EndTime)
	if err != nil {
		return nil, ErrValidation
	}

	venuePred, err := scope.Venues(actor)
	if err != nil {
		return nil, ErrNotFound
	}
	venue, err := s.venues.GetByID(ctx, venuePred, req.VenueID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	b := &domain.Booking{
		VenueID:       venue.ID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		BookingDate:   date,
		StartTime:     start,
		EndTime:       end,
		TotalAmount:   req.TotalAmount,
		PaymentStatus: domain.PaymentPending,
		BookingStatus: domain.BookingConfirmed,
		Notes:         req.Notes,
	}

	if err := s.bookings.CreateWithConflictCheck(ctx, b); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrConflict
		}
		return nil, err
	}

	actorID := actor.UserID
	_ = s.activity.Log(ctx, &actorID, "CREATE_BOOKING",
		fmt.Sprintf("Created booking for %s at %s", b.CustomerName, venue.Name),
		"booking", b.ID)

	if s.notifs != nil {
		s.notifs.Notify(ctx, actor.UserID, "New Booking Created",
			fmt.Sprintf("Booking created for %s at %s on %s", b.CustomerName, venue.Name, b.BookingDate),
			domain.NotifySuccess, "booking", b.ID)
	}

	if s.events != nil {
		_ = s.events.Publish(ctx, events.BookingEvent{
			Type:        "booking.created",
			BookingID:   b.ID,
			VenueID:     b.VenueID,
			BookingDate: b.BookingDate,
			StartTime:   b.StartTime,
			EndTime:     b.EndTime,
			Amount:      b.TotalAmount,
			Status:      string(b.BookingStatus),
		})
	}

	return b, nil
}

// Update changes status fields and notes on a scoped booking. The conflict
// check is deliberately not re-run here: the time window is immutable after
// creation, only statuses and notes move.
func (s *Service) Update(ctx context.Context, actor scope.Actor, id int64, req UpdateBookingRequest) error {
	pred, err := scope.Bookings(actor)
	if err != nil {
		return ErrNotFound
	}
	existing, err := s.bookings.GetByID(ctx, pred, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	fields := map[string]any{}
	if req.BookingStatus != nil {
		if !validBookingStatus(*req.BookingStatus) {
			return ErrValidation
		}
		fields["booking_status"] = *req.BookingStatus
	}
	if req.PaymentStatus != nil {
		if !validPaymentStatus(*req.PaymentStatus) {
			return ErrValidation
		}
		fields["payment_status"] = *req.PaymentStatus
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}
	if len(fields) == 0 {
		return nil
	}

	if err := s.bookings.UpdateFields(ctx, id, fields); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	actorID := actor.UserID
	_ = s.activity.Log(ctx, &actorID, "UPDATE_BOOKING",
		fmt.Sprintf("Updated booking #%d at %s", id, existing.VenueName),
		"booking", id)

	s.notifyStatusChange(ctx, actor, existing, req)

	if s.events != nil {
		status := string(existing.BookingStatus)
		if req.BookingStatus != nil {
			status = *req.BookingStatus
		}
		_ = s.events.Publish(ctx, events.BookingEvent{
			Type:        "booking.updated",
			BookingID:   id,
			VenueID:     existing.VenueID,
			BookingDate: existing.BookingDate,
			StartTime:   existing.StartTime,
			EndTime:     existing.EndTime,
			Status:      status,
		})
	}

	return nil
}

func (s *Service) notifyStatusChange(ctx context.Context, actor scope.Actor, b *domain.BookingWithVenue, req UpdateBookingRequest) {
	if s.notifs == nil {
		return
	}

	var title, message string
	ntype := domain.NotifyInfo

	if req.BookingStatus != nil {
		switch domain.BookingStatus(*req.BookingStatus) {
		case domain.BookingCompleted:
			title = "Booking Completed"
			message = fmt.Sprintf("Your booking for %s has been completed.", b.VenueName)
			ntype = domain.NotifySuccess
		case domain.BookingCancelled:
			title = "Booking Cancelled"
			message = fmt.Sprintf("Your booking for %s has been cancelled.", b.VenueName)
			ntype = domain.NotifyWarning
		}
	}
	if req.PaymentStatus != nil && domain.PaymentStatus(*req.PaymentStatus) == domain.PaymentPaid {
		title = "Payment Confirmed"
		message = fmt.Sprintf("Payment for your booking at %s has been confirmed.", b.VenueName)
		ntype = domain.NotifySuccess
	}

	if title != "" {
		s.notifs.Notify(ctx, actor.UserID, title, message, ntype, "booking", b.ID)
	}
}

func (s *Service) Delete(ctx context.Context, actor scope.Actor, id int64) error {
	pred, err := scope.Bookings(actor)
	if err != nil {
		return ErrNotFound
	}
	existing, err := s.bookings.GetByID(ctx, pred, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.bookings.Delete(ctx, id); err != nil {
		return err
	}

	actorID := actor.UserID
	_ = s.activity.Log(ctx, &actorID, "DELETE_BOOKING",
		fmt.Sprintf("Deleted booking #%d at %s", id, existing.VenueName),
		"booking", id)
	return nil
}

// normalizeSlot validates the calendar date and the half-open time range
// and zero-pads times to HH:MM:SS so string comparison stays correct.
func normalizeSlot(date, start, end string) (string, string, string, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return "", "", "", err
	}
	start, err := normalizeTime(start)
	if err != nil {
		return "", "", "", err
	}
	end, err = normalizeTime(end)
	if err != nil {
		return "", "", "", err
	}
	if start >= end {
		return "", "", "", fmt.Errorf("start %s not before end %s", start, end)
	}
	return date, start, end, nil
}

func normalizeTime(v string) (string, error) {
	if t, err := time.Parse("15:04:05", v); err == nil {
		return t.Format("15:04:05"), nil
	}
	t, err := time.Parse("15:04", v)
	if err != nil {
		return "", err
	}
	return t.Format("15:04:05"), nil
}

func validBookingStatus(v string) bool {
	switch domain.BookingStatus(v) {
	case domain.BookingConfirmed, domain.BookingCancelled, domain.BookingCompleted:
		return true
	}
	return false
}

func validPaymentStatus(v string) bool {
	switch domain.PaymentStatus(v) {
	case domain.PaymentPending, domain.PaymentPaid, domain.PaymentFailed, domain.PaymentRefunded:
		return true
	}
	return false
}
