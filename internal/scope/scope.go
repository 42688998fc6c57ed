// Package scope computes the row visibility of an authenticated actor.
// Every read or write touching venues, bookings or vendor accounts goes
// through one of these builders: admins get the identity scope, vendors get
// a predicate pinned to their own id, and anything else is denied outright.
// Handlers surface a denial as 404 so an unauthorized caller cannot tell a
// foreign resource from a missing one.
package scope

import (
	"errors"

	"gorm.io/gorm"

	"sharksports/internal/domain"
)

// ErrDenied means the actor's role grants no scope at all. Fail closed:
// roles outside admin/vendor are never issued, but if one shows up it gets
// nothing rather than everything.
var ErrDenied = errors.New("access denied")

// Actor identifies the authenticated caller.
type Actor struct {
	UserID int64
	Role   domain.UserRole
}

// Predicate narrows a gorm query to the rows the actor may see.
type Predicate func(*gorm.DB) *gorm.DB

func unrestricted(db *gorm.DB) *gorm.DB { return db }

// Venues scopes queries over the venues table.
func Venues(a Actor) (Predicate, error) {
	switch a.Role {
	case domain.RoleAdmin:
		return unrestricted, nil
	case domain.RoleVendor:
		id := a.UserID
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("venues.vendor_id = ?", id)
		}, nil
	default:
		return nil, ErrDenied
	}
}

// Bookings scopes queries over the bookings table. Vendors see bookings of
// venues they own, nothing else.
func Bookings(a Actor) (Predicate, error) {
	switch a.Role {
	case domain.RoleAdmin:
		return unrestricted, nil
	case domain.RoleVendor:
		id := a.UserID
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("bookings.venue_id IN (SELECT id FROM venues WHERE vendor_id = ?)", id)
		}, nil
	default:
		return nil, ErrDenied
	}
}

// Self checks whether the actor may act on the given user id. Admins may
// act on anyone, vendors only on themselves.
func Self(a Actor, targetUserID int64) error {
	switch a.Role {
	case domain.RoleAdmin:
		return nil
	case domain.RoleVendor:
		if targetUserID == a.UserID {
			return nil
		}
		return ErrDenied
	default:
		return ErrDenied
	}
}
