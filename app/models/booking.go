package models

import "gorm.io/gorm"

// BookingType distinguishes the three commercial arrangements.
type BookingType string

const (
	BookingPurchase BookingType = "purchase"
	BookingLease    BookingType = "lease"
	BookingRental   BookingType = "rental"
)

// Valid reports whether t is a known booking type.
func (t BookingType) Valid() bool {
	switch t {
	case BookingPurchase, BookingLease, BookingRental:
		return true
	}
	return false
}

// BookingStatus is the lifecycle state of a booking. pending is the initial
// state; completed and cancelled are terminal.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingActive    BookingStatus = "active"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is a known booking status.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingActive, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Terminal reports whether s is an end state that no longer holds the vehicle.
func (s BookingStatus) Terminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}

// NonTerminalStatuses are the booking statuses that still hold a vehicle.
// Used by the admin delete guard and the dashboard's active-booking count.
var NonTerminalStatuses = []BookingStatus{BookingPending, BookingConfirmed, BookingActive}

// VehicleStatusFor is the single derivation rule for vehicle status: every
// booking-status write recomputes the vehicle's status from this table, keyed
// by the booking's type. The booking is the source of truth; nothing else
// writes Vehicle.Status.
//
//	pending               → reserved
//	confirmed or active   → sold / leased / rented (by type)
//	completed / cancelled → available
func VehicleStatusFor(status BookingStatus, typ BookingType) VehicleStatus {
	switch status {
	case BookingConfirmed, BookingActive:
		switch typ {
		case BookingPurchase:
			return VehicleSold
		case BookingLease:
			return VehicleLeased
		case BookingRental:
			return VehicleRented
		}
	case BookingPending:
		return VehicleReserved
	}
	return VehicleAvailable
}

// rentalMultipliers maps a rental duration label to a multiplier and the rate
// it applies to. Unrecognised labels fall back to one day at the daily rate.
type rentalRate int

const (
	rateDaily rentalRate = iota
	rateWeekly
	rateMonthly
)

var rentalMultipliers = map[string]struct {
	n    float64
	rate rentalRate
}{
	"1-day":    {1, rateDaily},
	"3-days":   {3, rateDaily},
	"1-week":   {1, rateWeekly},
	"2-weeks":  {2, rateWeekly},
	"1-month":  {1, rateMonthly},
	"3-months": {3, rateMonthly},
	"6-months": {6, rateMonthly},
}

// RentalTotal derives the rental total price for a duration label from the
// vehicle's rate card. It is a fixed lookup, not a continuous formula.
func RentalTotal(v *Vehicle, duration string) float64 {
	m, ok := rentalMultipliers[duration]
	if !ok {
		return v.RentalDaily
	}
	switch m.rate {
	case rateWeekly:
		return m.n * v.RentalWeekly
	case rateMonthly:
		return m.n * v.RentalMonthly
	default:
		return m.n * v.RentalDaily
	}
}

// Booking is a customer's request to purchase, lease, or rent one vehicle.
// TotalPrice is computed once at creation from the vehicle's price fields and
// is not recomputed when vehicle prices later change.
type Booking struct {
	gorm.Model
	BookingRef    string        `gorm:"uniqueIndex;size:16;not null" json:"booking_ref"`
	UserID        uint          `gorm:"not null;index" json:"user_id"`
	VehicleID     uint          `gorm:"not null;index" json:"vehicle_id"`
	BookingType   BookingType   `gorm:"size:20;not null" json:"booking_type"`
	StartDate     string        `gorm:"size:20" json:"start_date"`
	EndDate       string        `gorm:"size:20" json:"end_date"`
	Duration      string        `gorm:"size:20" json:"duration"`
	Status        BookingStatus `gorm:"size:20;not null;default:pending;index" json:"status"`
	TotalPrice    float64       `json:"total_price"`
	Notes         string        `gorm:"type:text" json:"notes"`
	FinancingType string        `gorm:"size:40" json:"financing_type"`

	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Vehicle *Vehicle `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
}
