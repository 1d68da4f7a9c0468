package services_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/app/models"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/app/services"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/database"
)

// newTestDB opens a throwaway SQLite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.OpenDSN("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Vehicle{},
		&models.Booking{},
		&models.Inquiry{},
	))
	return db
}

// newTestUser registers a customer account and returns it.
func newTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user, _, err := services.NewAuthService(db).Register(services.RegisterInput{
		Email:     email,
		Password:  "secret-pass-1",
		FirstName: "Test",
		LastName:  "Customer",
	})
	require.NoError(t, err)
	return user
}

// newTestVehicle inserts an available vehicle with a full rate card.
func newTestVehicle(t *testing.T, db *gorm.DB) *models.Vehicle {
	t.Helper()

	v := &models.Vehicle{
		Year:          2024,
		Make:          "Mercedes-Benz",
		ModelName:     "S-Class",
		Price:         94900,
		LeaseMonthly:  1389,
		RentalDaily:   299,
		RentalWeekly:  1799,
		RentalMonthly: 5999,
		BodyType:      "sedan",
		Status:        models.VehicleAvailable,
	}
	require.NoError(t, db.Create(v).Error)
	return v
}

func vehicleStatus(t *testing.T, db *gorm.DB, id uint) models.VehicleStatus {
	t.Helper()

	var v models.Vehicle
	require.NoError(t, db.First(&v, id).Error)
	return v.Status
}
