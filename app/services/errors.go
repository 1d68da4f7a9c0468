package services

import "errors"

// Sentinel errors returned by services. Controllers map these onto HTTP
// status codes; anything else is a 500.
var (
	ErrNotFound           = errors.New("record not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrVINTaken           = errors.New("a vehicle with this VIN already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrVehicleUnavailable = errors.New("vehicle is not available for booking")
	ErrBookingTerminal    = errors.New("booking is already completed or cancelled")
	ErrVehicleHasBookings = errors.New("vehicle has active bookings")
	ErrInvalidStatus      = errors.New("invalid status value")
	ErrDurationRequired   = errors.New("duration is required for rental bookings")
)
