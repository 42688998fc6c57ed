package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"sharksports/internal/domain"
	"sharksports/internal/repository"
	"sharksports/internal/scope"
)

const (
	recentActivityLimit = 10
	statsCacheTTL       = 60 * time.Second
)

type Service struct {
	stats    StatsRepository
	activity ActivityRepository
	cache    *redis.Client // nil disables caching
}

func NewService(stats StatsRepository, activity ActivityRepository, cache *redis.Client) *Service {
	return &Service{stats: stats, activity: activity, cache: cache}
}

// Stats assembles the dashboard for the actor. Results are cached per
// actor scope for a minute; aggregates over the whole bookings table are
// the most expensive queries the platform runs.
func (s *Service) Stats(ctx context.Context, actor scope.Actor) (*Stats, error) {
	vendorID, err := scopeVendorID(actor)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("dashboard:stats:%d", vendorID)
	if cached, ok := s.fromCache(ctx, key); ok {
		return cached, nil
	}

	out := &Stats{}

	if vendorID == 0 {
		out.Totals, err = s.stats.AdminTotals(ctx)
	} else {
		out.Totals, err = s.stats.VendorTotals(ctx, vendorID)
	}
	if err != nil {
		return nil, err
	}

	if out.Trends, err = s.stats.BookingTrends(ctx, vendorID, time.Now()); err != nil {
		return nil, err
	}
	if out.VenueTypes, err = s.stats.VenueTypes(ctx, vendorID); err != nil {
		return nil, err
	}

	if vendorID == 0 {
		out.Recent, err = s.activity.ListForAdmin(ctx, recentActivityLimit)
	} else {
		out.Recent, err = s.activity.ListForVendor(ctx, vendorID, recentActivityLimit)
	}
	if err != nil {
		return nil, err
	}

	s.toCache(ctx, key, out)
	return out, nil
}

// QuickStats returns today's booking counters, uncached since "today"
// changes under the cache.
func (s *Service) QuickStats(ctx context.Context, actor scope.Actor) (*repository.QuickStats, error) {
	vendorID, err := scopeVendorID(actor)
	if err != nil {
		return nil, err
	}
	return s.stats.TodayQuickStats(ctx, vendorID, time.Now())
}

// scopeVendorID maps the actor onto the stats queries' vendor filter:
// 0 means platform-wide, anything else narrows to that vendor.
func scopeVendorID(actor scope.Actor) (int64, error) {
	switch actor.Role {
	case domain.RoleAdmin:
		return 0, nil
	case domain.RoleVendor:
		return actor.UserID, nil
	default:
		return 0, scope.ErrDenied
	}
}

func (s *Service) fromCache(ctx context.Context, key string) (*Stats, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var out Stats
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, false
	}
	return &out, true
}

func (s *Service) toCache(ctx context.Context, key string, v *Stats) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	s.cache.Set(ctx, key, raw, statsCacheTTL)
}
