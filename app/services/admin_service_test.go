package services_test

import (
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/app/models"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/app/services"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/storage"
)

func minimalVehicleInput() services.VehicleInput {
	return services.VehicleInput{
		Year:  2024,
		Make:  "Cadillac",
		Model: "Escalade-V",
		Price: 152000,
	}
}

func TestCreateVehicleStartsAvailable(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAdminService(db)

	in := minimalVehicleInput()
	v, err := svc.CreateVehicle(in)
	require.NoError(t, err)
	assert.Equal(t, models.VehicleAvailable, v.Status)
	assert.Equal(t, "Escalade-V", v.ModelName)
	assert.Nil(t, v.VIN)
}

func TestCreateVehicleVINConflict(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAdminService(db)

	vin := "1GYS4RKL5PR100001"
	in := minimalVehicleInput()
	in.VIN = &vin
	_, err := svc.CreateVehicle(in)
	require.NoError(t, err)

	dup := minimalVehicleInput()
	dup.VIN = &vin
	_, err = svc.CreateVehicle(dup)
	assert.ErrorIs(t, err, services.ErrVINTaken)
}

func TestUpdateVehicleKeepsOwnVIN(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAdminService(db)

	vin := "1GYS4RKL5PR100002"
	in := minimalVehicleInput()
	in.VIN = &vin
	v, err := svc.CreateVehicle(in)
	require.NoError(t, err)

	// resubmitting the vehicle's own VIN is not a conflict
	in.Mileage = 120
	updated, err := svc.UpdateVehicle(v.ID, in)
	require.NoError(t, err)
	assert.Equal(t, 120, updated.Mileage)
	require.NotNil(t, updated.VIN)
	assert.Equal(t, vin, *updated.VIN)

	// but another vehicle claiming it is
	other, err := svc.CreateVehicle(minimalVehicleInput())
	require.NoError(t, err)
	claim := minimalVehicleInput()
	claim.VIN = &vin
	_, err = svc.UpdateVehicle(other.ID, claim)
	assert.ErrorIs(t, err, services.ErrVINTaken)
}

func TestUpdateVehicleLeavesStatusAlone(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "buyer@example.com")
	vehicle := newTestVehicle(t, db)
	svc := services.NewAdminService(db)

	_, err := services.NewBookingService(db).Create(user.ID, services.CreateBookingInput{
		VehicleID:   vehicle.ID,
		BookingType: string(models.BookingPurchase),
	})
	require.NoError(t, err)
	require.Equal(t, models.VehicleReserved, vehicleStatus(t, db, vehicle.ID))

	in := minimalVehicleInput()
	in.Make = vehicle.Make
	in.Model = vehicle.ModelName
	updated, err := svc.UpdateVehicle(vehicle.ID, in)
	require.NoError(t, err)
	assert.Equal(t, models.VehicleReserved, updated.Status)
}

func TestUpdateVehicleMissing(t *testing.T) {
	db := newTestDB(t)

	_, err := services.NewAdminService(db).UpdateVehicle(404, minimalVehicleInput())
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestDeleteVehicleBlockedByActiveBooking(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "buyer@example.com")
	vehicle := newTestVehicle(t, db)
	admin := services.NewAdminService(db)
	bookings := services.NewBookingService(db)

	booking, err := bookings.Create(user.ID, services.CreateBookingInput{
		VehicleID:   vehicle.ID,
		BookingType: string(models.BookingPurchase),
	})
	require.NoError(t, err)

	err = admin.DeleteVehicle(vehicle.ID)
	assert.ErrorIs(t, err, services.ErrVehicleHasBookings)

	// once the booking reaches a terminal state the hold is gone
	_, err = bookings.UpdateStatus(booking.ID, models.BookingCancelled)
	require.NoError(t, err)
	require.NoError(t, admin.DeleteVehicle(vehicle.ID))

	err = admin.DeleteVehicle(vehicle.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestDashboardStats(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "buyer@example.com")
	admin := services.NewAdminService(db)
	bookings := services.NewBookingService(db)

	first := newTestVehicle(t, db)
	second := newTestVehicle(t, db)
	third := newTestVehicle(t, db)

	b1, err := bookings.Create(user.ID, services.CreateBookingInput{
		VehicleID:   first.ID,
		BookingType: string(models.BookingPurchase),
	})
	require.NoError(t, err)
	_, err = bookings.UpdateStatus(b1.ID, models.BookingConfirmed)
	require.NoError(t, err)
	_, err = bookings.UpdateStatus(b1.ID, models.BookingCompleted)
	require.NoError(t, err)

	_, err = bookings.Create(user.ID, services.CreateBookingInput{
		VehicleID:   second.ID,
		BookingType: string(models.BookingRental),
		Duration:    "1-week",
	})
	require.NoError(t, err)

	// Completing b1 released the first vehicle, so it can sell again. This
	// one stays at confirmed and must already count as revenue.
	b3, err := bookings.Create(user.ID, services.CreateBookingInput{
		VehicleID:   first.ID,
		BookingType: string(models.BookingPurchase),
	})
	require.NoError(t, err)
	_, err = bookings.UpdateStatus(b3.ID, models.BookingConfirmed)
	require.NoError(t, err)

	_, err = services.NewInquiryService(db).Create(nil, services.CreateInquiryInput{
		Name:    "Walk In",
		Email:   "walkin@example.com",
		Message: "Do you take trade-ins?",
	})
	require.NoError(t, err)

	stats, err := admin.Stats()
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalVehicles)
	assert.EqualValues(t, 3, stats.TotalBookings)
	assert.EqualValues(t, 2, stats.ActiveBookings)
	assert.EqualValues(t, 1, stats.BookingsByStatus[models.BookingCompleted])
	assert.EqualValues(t, 1, stats.BookingsByStatus[models.BookingPending])
	assert.EqualValues(t, 1, stats.VehiclesByStatus[models.VehicleReserved])
	assert.EqualValues(t, 1, stats.VehiclesByStatus[models.VehicleSold])
	assert.EqualValues(t, 1, stats.VehiclesByStatus[models.VehicleAvailable])

	// Completed and confirmed both count; the pending rental does not.
	assert.InDelta(t, b1.TotalPrice+b3.TotalPrice, stats.TotalRevenue, 0.001)
	assert.InDelta(t, third.Price, stats.RevenuePotential, 0.001)

	assert.EqualValues(t, 1, stats.TotalCustomers)
	assert.EqualValues(t, 1, stats.NewInquiries)

	require.Len(t, stats.RecentBookings, 3)
	assert.Equal(t, b3.ID, stats.RecentBookings[0].ID)
	require.NotNil(t, stats.RecentBookings[0].User)
	require.NotNil(t, stats.RecentBookings[0].Vehicle)
	assert.Equal(t, "buyer@example.com", stats.RecentBookings[0].User.Email)
}

func TestListBookingsStatusFilter(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "buyer@example.com")
	bookings := services.NewBookingService(db)
	admin := services.NewAdminService(db)

	first := newTestVehicle(t, db)
	second := newTestVehicle(t, db)
	b1, err := bookings.Create(user.ID, services.CreateBookingInput{
		VehicleID:   first.ID,
		BookingType: string(models.BookingPurchase),
	})
	require.NoError(t, err)
	_, err = bookings.Create(user.ID, services.CreateBookingInput{
		VehicleID:   second.ID,
		BookingType: string(models.BookingLease),
	})
	require.NoError(t, err)
	_, err = bookings.UpdateStatus(b1.ID, models.BookingConfirmed)
	require.NoError(t, err)

	all, total, err := admin.ListBookings("", 0, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, all, 2)
	assert.Equal(t, user.Email, all[0].User.Email)
	assert.NotZero(t, all[0].Vehicle.ID)

	confirmed, total, err := admin.ListBookings(string(models.BookingConfirmed), 0, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, confirmed, 1)
	assert.Equal(t, b1.ID, confirmed[0].ID)

	_, _, err = admin.ListBookings("misplaced", 0, 0)
	assert.ErrorIs(t, err, services.ErrInvalidStatus)
}

func TestListCustomersHidesLicense(t *testing.T) {
	db := newTestDB(t)
	admin := services.NewAdminService(db)
	auth := services.NewAuthService(db)

	_, _, err := auth.Register(services.RegisterInput{
		Email:          "licensed@example.com",
		Password:       "secret-pass-1",
		FirstName:      "Lana",
		LastName:       "Driver",
		DriversLicense: "D1234567",
	})
	require.NoError(t, err)

	vehicle := newTestVehicle(t, db)
	var holder models.User
	require.NoError(t, db.Where("email = ?", "licensed@example.com").First(&holder).Error)
	_, err = services.NewBookingService(db).Create(holder.ID, services.CreateBookingInput{
		VehicleID:   vehicle.ID,
		BookingType: string(models.BookingPurchase),
	})
	require.NoError(t, err)

	customers, total, err := admin.ListCustomers(0, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, customers, 1)
	assert.Empty(t, customers[0].DriversLicense)
	assert.EqualValues(t, 1, customers[0].BookingCount)
}

// memDisk is an in-memory Disk for tests.
type memDisk struct {
	files map[string][]byte
}

func newMemDisk() *memDisk { return &memDisk{files: map[string][]byte{}} }

func (d *memDisk) Put(path string, content []byte) error {
	d.files[path] = content
	return nil
}

func (d *memDisk) PutStream(path string, r io.Reader) error {
	content, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	d.files[path] = content
	return nil
}

func (d *memDisk) GetStream(path string) (io.ReadCloser, error) {
	content, ok := d.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}

func (d *memDisk) Exists(path string) bool {
	_, ok := d.files[path]
	return ok
}

func (d *memDisk) Delete(path string) error {
	delete(d.files, path)
	return nil
}

func (d *memDisk) Files(directory string) ([]string, error) {
	var out []string
	for path := range d.files {
		if strings.HasPrefix(path, directory+"/") {
			out = append(out, path)
		}
	}
	return out, nil
}

func (d *memDisk) URL(path string) string { return "http://test.local/" + path }

func TestAttachVehicleImage(t *testing.T) {
	disk := newMemDisk()
	storage.RegisterDisk("test", disk)
	storage.SetDefault("test")

	db := newTestDB(t)
	vehicle := newTestVehicle(t, db)

	updated, err := services.NewAdminService(db).AttachVehicleImage(
		vehicle.ID, "front.jpg", strings.NewReader("not-really-a-jpeg"))
	require.NoError(t, err)
	require.Len(t, updated.Images, 1)
	assert.True(t, strings.HasPrefix(updated.Images[0], "http://test.local/"))
	assert.True(t, strings.HasSuffix(updated.Images[0], ".jpg"))

	files, err := disk.Files("vehicles/" + strconv.Itoa(int(vehicle.ID)))
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestListVehiclesSpansEveryStatus(t *testing.T) {
	db := newTestDB(t)
	admin := services.NewAdminService(db)

	available := newTestVehicle(t, db)
	sold := newTestVehicle(t, db)
	require.NoError(t, db.Model(&models.Vehicle{}).
		Where("id = ?", sold.ID).
		Update("status", models.VehicleSold).Error)

	vehicles, total, err := admin.ListVehicles(services.VehicleFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, vehicles, 2)

	vehicles, total, err = admin.ListVehicles(services.VehicleFilter{Status: "sold"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, vehicles, 1)
	assert.Equal(t, sold.ID, vehicles[0].ID)

	_, _, err = admin.ListVehicles(services.VehicleFilter{Status: "wrecked"})
	assert.ErrorIs(t, err, services.ErrInvalidStatus)

	vehicles, _, err = admin.ListVehicles(services.VehicleFilter{Sort: "status"})
	require.NoError(t, err)
	require.Len(t, vehicles, 2)
	assert.Equal(t, available.ID, vehicles[0].ID)
}

func TestGetVehicleIgnoresStatus(t *testing.T) {
	db := newTestDB(t)
	admin := services.NewAdminService(db)

	vehicle := newTestVehicle(t, db)
	require.NoError(t, db.Model(&models.Vehicle{}).
		Where("id = ?", vehicle.ID).
		Update("status", models.VehicleLeased).Error)

	got, err := admin.GetVehicle(vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VehicleLeased, got.Status)

	_, err = admin.GetVehicle(9999)
	assert.ErrorIs(t, err, services.ErrNotFound)
}
