package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVehicleStatusFor(t *testing.T) {
	tests := []struct {
		status BookingStatus
		typ    BookingType
		want   VehicleStatus
	}{
		{BookingPending, BookingPurchase, VehicleReserved},
		{BookingPending, BookingLease, VehicleReserved},
		{BookingPending, BookingRental, VehicleReserved},
		{BookingConfirmed, BookingPurchase, VehicleSold},
		{BookingConfirmed, BookingLease, VehicleLeased},
		{BookingConfirmed, BookingRental, VehicleRented},
		{BookingActive, BookingPurchase, VehicleSold},
		{BookingActive, BookingLease, VehicleLeased},
		{BookingActive, BookingRental, VehicleRented},
		{BookingCompleted, BookingPurchase, VehicleAvailable},
		{BookingCompleted, BookingLease, VehicleAvailable},
		{BookingCompleted, BookingRental, VehicleAvailable},
		{BookingCancelled, BookingPurchase, VehicleAvailable},
		{BookingCancelled, BookingLease, VehicleAvailable},
		{BookingCancelled, BookingRental, VehicleAvailable},
	}

	for _, tc := range tests {
		got := VehicleStatusFor(tc.status, tc.typ)
		assert.Equal(t, tc.want, got, "%s %s", tc.status, tc.typ)
	}
}

func TestBookingStatusTerminal(t *testing.T) {
	assert.False(t, BookingPending.Terminal())
	assert.False(t, BookingConfirmed.Terminal())
	assert.False(t, BookingActive.Terminal())
	assert.True(t, BookingCompleted.Terminal())
	assert.True(t, BookingCancelled.Terminal())
}

func TestBookingStatusValid(t *testing.T) {
	assert.True(t, BookingPending.Valid())
	assert.True(t, BookingCancelled.Valid())
	assert.False(t, BookingStatus("refunded").Valid())
	assert.False(t, BookingStatus("").Valid())
}

func TestBookingTypeValid(t *testing.T) {
	assert.True(t, BookingPurchase.Valid())
	assert.True(t, BookingLease.Valid())
	assert.True(t, BookingRental.Valid())
	assert.False(t, BookingType("borrow").Valid())
}

func TestRentalTotal(t *testing.T) {
	v := &Vehicle{RentalDaily: 100, RentalWeekly: 500, RentalMonthly: 1500}

	tests := []struct {
		duration string
		want     float64
	}{
		{"1-day", 100},
		{"3-days", 300},
		{"1-week", 500},
		{"2-weeks", 1000},
		{"1-month", 1500},
		{"3-months", 4500},
		{"6-months", 9000},
		{"forever", 100}, // unknown labels fall back to one day
		{"", 100},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, RentalTotal(v, tc.duration), "duration %q", tc.duration)
	}
}
