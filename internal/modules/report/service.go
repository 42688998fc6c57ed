package report

import (
	"context"
	"sort"

	"sharksports/internal/domain"
	"sharksports/internal/repository"
	"sharksports/internal/scope"
)

const activityLimit = 200

type Service struct {
	bookings BookingRepository
	stats    StatsRepository
	activity ActivityRepository
}

func NewService(bookings BookingRepository, stats StatsRepository, activity ActivityRepository) *Service {
	return &Service{bookings: bookings, stats: stats, activity: activity}
}

// Bookings lists bookings in the actor's scope within the optional date
// range and totals them up.
func (s *Service) Bookings(ctx context.Context, actor scope.Actor, from, to string) (*BookingsReport, error) {
	pred, err := scope.Bookings(actor)
	if err != nil {
		return nil, err
	}

	rows, err := s.bookings.List(ctx, pred, repository.BookingFilter{})
	if err != nil {
		return nil, err
	}
	rows = filterRange(rows, from, to)

	rep := &BookingsReport{Bookings: rows}
	for _, b := range rows {
		rep.Summary.Total++
		switch b.BookingStatus {
		case domain.BookingConfirmed:
			rep.Summary.Confirmed++
		case domain.BookingCancelled:
			rep.Summary.Cancelled++
		case domain.BookingCompleted:
			rep.Summary.Completed++
		}
		if b.PaymentStatus == domain.PaymentPaid {
			rep.Summary.Revenue += b.TotalAmount
		}
	}
	return rep, nil
}

// Revenue buckets paid bookings by booking month.
func (s *Service) Revenue(ctx context.Context, actor scope.Actor, from, to string) (*RevenueReport, error) {
	pred, err := scope.Bookings(actor)
	if err != nil {
		return nil, err
	}

	rows, err := s.bookings.List(ctx, pred, repository.BookingFilter{})
	if err != nil {
		return nil, err
	}
	rows = filterRange(rows, from, to)

	rep := &RevenueReport{}
	byMonth := map[string]*RevenueMonth{}
	for _, b := range rows {
		if b.PaymentStatus != domain.PaymentPaid {
			continue
		}
		key := monthKey(b.BookingDate)
		m, ok := byMonth[key]
		if !ok {
			m = &RevenueMonth{Month: key}
			byMonth[key] = m
		}
		m.Bookings++
		m.Revenue += b.TotalAmount
		rep.PaidBookings++
		rep.TotalRevenue += b.TotalAmount
	}

	keys := make([]string, 0, len(byMonth))
	for k := range byMonth {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		rep.Months = append(rep.Months, *byMonth[k])
	}
	return rep, nil
}

func (s *Service) Venues(ctx context.Context, actor scope.Actor) (*VenuesReport, error) {
	var vendorID int64
	switch actor.Role {
	case domain.RoleAdmin:
	case domain.RoleVendor:
		vendorID = actor.UserID
	default:
		return nil, scope.ErrDenied
	}

	rows, err := s.stats.VenuePerformanceReport(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	return &VenuesReport{Venues: rows}, nil
}

func (s *Service) Activities(ctx context.Context, actor scope.Actor) (*ActivitiesReport, error) {
	var (
		rows []repository.ActivityWithUser
		err  error
	)
	switch actor.Role {
	case domain.RoleAdmin:
		rows, err = s.activity.ListForAdmin(ctx, activityLimit)
	case domain.RoleVendor:
		rows, err = s.activity.ListForVendor(ctx, actor.UserID, activityLimit)
	default:
		return nil, scope.ErrDenied
	}
	if err != nil {
		return nil, err
	}
	return &ActivitiesReport{Activities: rows}, nil
}

// filterRange keeps bookings whose date falls inside [from, to]. Dates are
// zero-padded "YYYY-MM-DD" strings so plain comparison orders them.
func filterRange(rows []domain.BookingWithVenue, from, to string) []domain.BookingWithVenue {
	if from == "" && to == "" {
		return rows
	}
	out := rows[:0]
	for _, b := range rows {
		if from != "" && b.BookingDate < from {
			continue
		}
		if to != "" && b.BookingDate > to {
			continue
		}
		out = append(out, b)
	}
	return out
}

func monthKey(date string) string {
	if len(date) >= 7 {
		return date[:7]
	}
	return date
}
