package migrations

import (
	"gorm.io/gorm"

	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/app/models"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/migration"
)

func registerInitial() {
	migration.Register("20250601000000_create_users_table", &createUsersTable{})
	migration.Register("20250601000001_create_vehicles_table", &createVehiclesTable{})
	migration.Register("20250601000002_create_bookings_table", &createBookingsTable{})
	migration.Register("20250601000003_create_inquiries_table", &createInquiriesTable{})
}

// -------- 0001: users --------

type createUsersTable struct{}

func (m *createUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (m *createUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("users")
}

// -------- 0002: vehicles --------

type createVehiclesTable struct{}

func (m *createVehiclesTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Vehicle{})
}

func (m *createVehiclesTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("vehicles")
}

// -------- 0003: bookings --------

type createBookingsTable struct{}

func (m *createBookingsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Booking{})
}

func (m *createBookingsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("bookings")
}

// -------- 0004: inquiries --------

type createInquiriesTable struct{}

func (m *createInquiriesTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Inquiry{})
}

func (m *createInquiriesTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("inquiries")
}
