package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/app/models"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/event"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/metrics"
)

// BookingService owns the booking lifecycle and, through it, vehicle status.
// Every status write goes through models.VehicleStatusFor so a vehicle's
// state always reflects its most recent booking event.
type BookingService struct {
	db *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

// CreateBookingInput is the payload for POST /api/bookings.
type CreateBookingInput struct {
	VehicleID     uint   `json:"vehicle_id"     validate:"required"`
	BookingType   string `json:"booking_type"   validate:"required,in=purchase,lease,rental"`
	StartDate     string `json:"start_date"     validate:"nullable,date"`
	EndDate       string `json:"end_date"       validate:"nullable,date"`
	Duration      string `json:"duration"       validate:"nullable,max=20"`
	Notes         string `json:"notes"          validate:"nullable,max=2000"`
	FinancingType string `json:"financing_type" validate:"nullable,in=cash,finance,loan"`
}

// Create books a vehicle for a customer. The vehicle row is locked for the
// duration of the transaction so two concurrent requests cannot both reserve
// it: the second sees the updated status and gets ErrVehicleUnavailable.
func (s *BookingService) Create(userID uint, in CreateBookingInput) (*models.Booking, error) {
	typ := models.BookingType(in.BookingType)
	if !typ.Valid() {
		return nil, fmt.Errorf("%w: booking type %q", ErrInvalidStatus, in.BookingType)
	}
	if typ == models.BookingRental && in.Duration == "" {
		return nil, ErrDurationRequired
	}

	var booking models.Booking
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var vehicle models.Vehicle
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&vehicle, in.VehicleID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		if vehicle.Status != models.VehicleAvailable {
			return ErrVehicleUnavailable
		}

		ref, err := s.newBookingRef(tx)
		if err != nil {
			return err
		}

		booking = models.Booking{
			BookingRef:    ref,
			UserID:        userID,
			VehicleID:     vehicle.ID,
			BookingType:   typ,
			StartDate:     in.StartDate,
			EndDate:       in.EndDate,
			Duration:      in.Duration,
			Status:        models.BookingPending,
			TotalPrice:    totalPriceFor(&vehicle, typ, in.Duration),
			Notes:         in.Notes,
			FinancingType: in.FinancingType,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		next := models.VehicleStatusFor(booking.Status, booking.BookingType)
		return tx.Model(&vehicle).Update("status", next).Error
	})
	if err != nil {
		metrics.BookingsTotal.WithLabelValues(in.BookingType, outcomeFor(err)).Inc()
		return nil, err
	}

	metrics.BookingsTotal.WithLabelValues(in.BookingType, "created").Inc()
	s.statusChanged(&booking)
	booking.Vehicle = nil
	return &booking, nil
}

// statusChanged announces a committed transition to the event listeners.
func (s *BookingService) statusChanged(booking *models.Booking) {
	event.Dispatch(EventVehicleStatusChanged, VehicleStatusChanged{
		VehicleID:  booking.VehicleID,
		Status:     models.VehicleStatusFor(booking.Status, booking.BookingType),
		BookingRef: booking.BookingRef,
	})
}

func outcomeFor(err error) string {
	if errors.Is(err, ErrVehicleUnavailable) || errors.Is(err, ErrNotFound) {
		return "conflict"
	}
	return "error"
}

// totalPriceFor snapshots the booking total from the vehicle's rate card.
// Purchases pay the sticker price, leases the first monthly payment, and
// rentals the duration lookup.
func totalPriceFor(v *models.Vehicle, typ models.BookingType, duration string) float64 {
	switch typ {
	case models.BookingPurchase:
		return v.Price
	case models.BookingLease:
		return v.LeaseMonthly
	case models.BookingRental:
		return models.RentalTotal(v, duration)
	}
	return 0
}

const refAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// newBookingRef generates a PRN-XXXXXX reference, retrying on the unlikely
// collision with an existing row.
func (s *BookingService) newBookingRef(tx *gorm.DB) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		buf := make([]byte, 6)
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for i, b := range buf {
			buf[i] = refAlphabet[int(b)%len(refAlphabet)]
		}
		ref := "PRN-" + string(buf)

		var count int64
		if err := tx.Model(&models.Booking{}).Where("booking_ref = ?", ref).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return ref, nil
		}
	}
	return "", errors.New("booking: could not generate a unique reference")
}

// ListForUser returns the user's bookings, newest first, with vehicles
// preloaded.
func (s *BookingService) ListForUser(userID uint) ([]models.Booking, error) {
	defer metrics.ObserveDBQuery("bookings_list", time.Now())

	var bookings []models.Booking
	err := s.db.Preload("Vehicle").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&bookings).Error
	return bookings, err
}

// GetForUser returns one booking, scoped to its owner. A booking belonging
// to someone else is indistinguishable from a missing one.
func (s *BookingService) GetForUser(userID, bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.Preload("Vehicle").
		Where("id = ? AND user_id = ?", bookingID, userID).
		First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// Cancel moves an owner's booking to cancelled and releases the vehicle.
// Terminal bookings cannot be cancelled again.
func (s *BookingService) Cancel(userID, bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND user_id = ?", bookingID, userID).
			First(&booking).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		if booking.Status.Terminal() {
			return ErrBookingTerminal
		}

		return s.applyStatus(tx, &booking, models.BookingCancelled)
	})
	if err != nil {
		return nil, err
	}
	s.statusChanged(&booking)
	return &booking, nil
}

// UpdateStatus is the admin transition: it moves a booking to any valid
// non-initial status and rederives the vehicle's status. Terminal bookings
// are frozen.
func (s *BookingService) UpdateStatus(bookingID uint, status models.BookingStatus) (*models.Booking, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: booking status %q", ErrInvalidStatus, status)
	}

	var booking models.Booking
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&booking, bookingID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		if booking.Status.Terminal() {
			return ErrBookingTerminal
		}

		return s.applyStatus(tx, &booking, status)
	})
	if err != nil {
		return nil, err
	}
	s.statusChanged(&booking)
	return &booking, nil
}

// applyStatus writes the booking status and rederives the vehicle status in
// the same transaction. This is the only place both rows change together.
func (s *BookingService) applyStatus(tx *gorm.DB, booking *models.Booking, status models.BookingStatus) error {
	if err := tx.Model(booking).Update("status", status).Error; err != nil {
		return err
	}
	booking.Status = status

	next := models.VehicleStatusFor(status, booking.BookingType)
	return tx.Model(&models.Vehicle{}).
		Where("id = ?", booking.VehicleID).
		Update("status", next).Error
}
