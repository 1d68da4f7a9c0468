package models

import "gorm.io/gorm"

// VehicleStatus is the commercial availability state of a vehicle. It is
// derived from the vehicle's bookings (see VehicleStatusFor) and is never
// written directly by any other code path.
type VehicleStatus string

const (
	VehicleAvailable VehicleStatus = "available"
	VehicleReserved  VehicleStatus = "reserved"
	VehicleSold      VehicleStatus = "sold"
	VehicleLeased    VehicleStatus = "leased"
	VehicleRented    VehicleStatus = "rented"
)

// Valid reports whether s is one of the closed set of vehicle statuses.
func (s VehicleStatus) Valid() bool {
	switch s {
	case VehicleAvailable, VehicleReserved, VehicleSold, VehicleLeased, VehicleRented:
		return true
	}
	return false
}

// Vehicle is a sellable, leasable, and rentable unit of inventory.
type Vehicle struct {
	gorm.Model
	Year          int           `gorm:"not null;index" json:"year"`
	Make          string        `gorm:"size:100;not null;index" json:"make"`
	ModelName     string        `gorm:"column:model;size:100;not null" json:"model"`
	Trim          string        `gorm:"size:100" json:"trim"`
	VIN           *string       `gorm:"column:vin;uniqueIndex;size:32" json:"vin"`
	ExteriorColor string        `gorm:"size:60" json:"exterior_color"`
	InteriorColor string        `gorm:"size:60" json:"interior_color"`
	Mileage       int           `json:"mileage"`
	Price         float64       `json:"price"`
	LeaseMonthly  float64       `json:"lease_monthly"`
	RentalDaily   float64       `json:"rental_daily"`
	RentalWeekly  float64       `json:"rental_weekly"`
	RentalMonthly float64       `json:"rental_monthly"`
	BodyType      string        `gorm:"size:60;index" json:"body_type"`
	FuelType      string        `gorm:"size:60" json:"fuel_type"`
	Transmission  string        `gorm:"size:60" json:"transmission"`
	Engine        string        `gorm:"size:100" json:"engine"`
	Drivetrain    string        `gorm:"size:60" json:"drivetrain"`
	Description   string        `gorm:"type:text" json:"description"`
	Features      StringList    `gorm:"type:text" json:"features"`
	Images        StringList    `gorm:"type:text" json:"images"`
	Status        VehicleStatus `gorm:"size:20;not null;default:available;index" json:"status"`
	Featured      bool          `gorm:"default:false" json:"featured"`
}
