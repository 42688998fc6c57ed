package venue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"sharksports/internal/domain"
	"sharksports/internal/repository"
	"sharksports/internal/scope"
)

type Service struct {
	venues   VenueRepository
	activity ActivityLogger
}

func NewService(venues VenueRepository, activity ActivityLogger) *Service {
	return &Service{venues: venues, activity: activity}
}

// List returns the venues visible to the actor. Admins may filter by
// vendor; for vendors the filter is ignored since their scope already pins
// the vendor id.
func (s *Service) List(ctx context.Context, actor scope.Actor, vendorID int64) ([]repository.VenueWithVendor, error) {
	pred, err := scope.Venues(actor)
	if err != nil {
		return nil, ErrNotFound
	}
	if actor.Role != domain.RoleAdmin {
		vendorID = 0
	}
	return s.venues.List(ctx, pred, vendorID)
}

func (s *Service) Get(ctx context.Context, actor scope.Actor, id int64) (*repository.VenueWithVendor, error) {
	pred, err := scope.Venues(actor)
	if err != nil {
		return nil, ErrNotFound
	}
	v, err := s.venues.GetByID(ctx, pred, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

// Create persists a venue. Vendors can only create venues for themselves;
// admins may assign any vendor.
func (s *Service) Create(ctx context.Context, actor scope.Actor, req CreateVenueRequest) (*domain.Venue, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Location) == "" || len(req.Sports) == 0 {
		return nil, ErrValidation
	}

	vendorID := req.VendorID
	switch actor.Role {
	case domain.RoleVendor:
		vendorID = actor.UserID
	case domain.RoleAdmin:
		// keep requested vendor id
	default:
		return nil, ErrNotFound
	}

	peak := req.PeakPrice
	if peak == 0 {
		peak = req.BasePrice
	}
	facilities := req.Facilities
	if facilities == nil {
		facilities = []string{}
	}

	v := &domain.Venue{
		Name:        strings.TrimSpace(req.Name),
		Location:    strings.TrimSpace(req.Location),
		Description: req.Description,
		Sports:      req.Sports,
		BasePrice:   req.BasePrice,
		PeakPrice:   peak,
		Capacity:    req.Capacity,
		Facilities:  facilities,
		Status:      domain.VenueActive,
	}
	if vendorID != 0 {
		v.VendorID = &vendorID
	}

	if err := s.venues.Create(ctx, v); err != nil {
		return nil, err
	}

	actorID := actor.UserID
	_ = s.activity.Log(ctx, &actorID, "CREATE_VENUE",
		fmt.Sprintf("Created venue: %s", v.Name), "venue", v.ID)
	return v, nil
}

// Update applies a partial update to a scoped venue. Only admins may change
// venue status.
func (s *Service) Update(ctx context.Context, actor scope.Actor, id int64, req UpdateVenueRequest) error {
	pred, err := scope.Venues(actor)
	if err != nil {
		return ErrNotFound
	}
	existing, err := s.venues.GetByID(ctx, pred, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	fields := map[string]any{}
	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		fields["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Location != nil && strings.TrimSpace(*req.Location) != "" {
		fields["location"] = strings.TrimSpace(*req.Location)
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Sports != nil {
		if len(*req.Sports) == 0 {
			return ErrValidation
		}
		fields["sports"] = toJSONColumn(*req.Sports)
	}
	if req.BasePrice != nil {
		if *req.BasePrice <= 0 {
			return ErrValidation
		}
		fields["base_price"] = *req.BasePrice
	}
	if req.PeakPrice != nil {
		fields["peak_price"] = *req.PeakPrice
	}
	if req.Capacity != nil {
		if *req.Capacity <= 0 {
			return ErrValidation
		}
		fields["capacity"] = *req.Capacity
	}
	if req.Facilities != nil {
		fields["facilities"] = toJSONColumn(*req.Facilities)
	}
	if req.Status != nil && actor.Role == domain.RoleAdmin {
		st := domain.VenueStatus(*req.Status)
		if st != domain.VenueActive && st != domain.VenueInactive {
			return ErrValidation
		}
		fields["status"] = st
	}
	if len(fields) == 0 {
		return nil
	}

	if err := s.venues.UpdateFields(ctx, id, fields); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	actorID := actor.UserID
	name := existing.Name
	if n, ok := fields["name"].(string); ok {
		name = n
	}
	_ = s.activity.Log(ctx, &actorID, "UPDATE_VENUE",
		fmt.Sprintf("Updated venue: %s", name), "venue", id)
	return nil
}

func (s *Service) Delete(ctx context.Context, actor scope.Actor, id int64) error {
	pred, err := scope.Venues(actor)
	if err != nil {
		return ErrNotFound
	}
	existing, err := s.venues.GetByID(ctx, pred, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.venues.Delete(ctx, id); err != nil {
		return err
	}

	actorID := actor.UserID
	_ = s.activity.Log(ctx, &actorID, "DELETE_VENUE",
		fmt.Sprintf("Deleted venue: %s", existing.Name), "venue", id)
	return nil
}

// toJSONColumn marshals a string set for a map-style column update, where
// gorm's field serializer does not apply.
func toJSONColumn(v []string) string {
	b, _ := json.Marshal(v)
	return string(b)
}
