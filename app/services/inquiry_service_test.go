package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/app/models"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/app/services"
)

func TestCreateInquiry(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewInquiryService(db)

	inquiry, err := svc.Create(nil, services.CreateInquiryInput{
		Name:    "Walk In",
		Email:   "walkin@example.com",
		Message: "Do you have anything in a manual?",
	})
	require.NoError(t, err)
	assert.Equal(t, models.InquiryNew, inquiry.Status)
	assert.Equal(t, models.InquiryGeneral, inquiry.InquiryType)
	assert.Nil(t, inquiry.UserID)
	assert.Nil(t, inquiry.VehicleID)
}

func TestCreateInquiryNormalizesUnknownType(t *testing.T) {
	db := newTestDB(t)

	inquiry, err := services.NewInquiryService(db).Create(nil, services.CreateInquiryInput{
		Name:        "Walk In",
		Email:       "walkin@example.com",
		InquiryType: "desperate-plea",
		Message:     "Call me back",
	})
	require.NoError(t, err)
	assert.Equal(t, models.InquiryGeneral, inquiry.InquiryType)
}

func TestCreateInquiryChecksVehicle(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewInquiryService(db)

	missing := uint(404)
	_, err := svc.Create(nil, services.CreateInquiryInput{
		Name:      "Walk In",
		Email:     "walkin@example.com",
		Message:   "Is this still for sale?",
		VehicleID: &missing,
	})
	assert.ErrorIs(t, err, services.ErrNotFound)

	vehicle := newTestVehicle(t, db)
	inquiry, err := svc.Create(nil, services.CreateInquiryInput{
		Name:        "Walk In",
		Email:       "walkin@example.com",
		InquiryType: string(models.InquiryTestDrive),
		Message:     "Is this still for sale?",
		VehicleID:   &vehicle.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, inquiry.VehicleID)
	assert.Equal(t, vehicle.ID, *inquiry.VehicleID)
	assert.Equal(t, models.InquiryTestDrive, inquiry.InquiryType)
}

func TestCreateInquiryKeepsUser(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "asker@example.com")

	inquiry, err := services.NewInquiryService(db).Create(&user.ID, services.CreateInquiryInput{
		Name:    "Logged In",
		Email:   user.Email,
		Message: "What are your financing rates?",
	})
	require.NoError(t, err)
	require.NotNil(t, inquiry.UserID)
	assert.Equal(t, user.ID, *inquiry.UserID)
}

func TestListInquiriesStatusFilter(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewInquiryService(db)

	first, err := svc.Create(nil, services.CreateInquiryInput{
		Name:    "One",
		Email:   "one@example.com",
		Message: "First",
	})
	require.NoError(t, err)
	_, err = svc.Create(nil, services.CreateInquiryInput{
		Name:    "Two",
		Email:   "two@example.com",
		Message: "Second",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(first.ID, models.InquiryResolved)
	require.NoError(t, err)

	all, total, err := svc.List("", 0, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, all, 2)

	open, total, err := svc.List(string(models.InquiryNew), 0, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, open, 1)
	assert.Equal(t, "Two", open[0].Name)

	_, _, err = svc.List("shredded", 0, 0)
	assert.ErrorIs(t, err, services.ErrInvalidStatus)
}

func TestUpdateInquiryStatus(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewInquiryService(db)

	inquiry, err := svc.Create(nil, services.CreateInquiryInput{
		Name:    "Walk In",
		Email:   "walkin@example.com",
		Message: "Ping",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(inquiry.ID, models.InquiryClosed)
	require.NoError(t, err)
	assert.Equal(t, models.InquiryClosed, updated.Status)

	// statuses move freely within the closed set
	updated, err = svc.UpdateStatus(inquiry.ID, models.InquiryResolved)
	require.NoError(t, err)
	assert.Equal(t, models.InquiryResolved, updated.Status)

	_, err = svc.UpdateStatus(inquiry.ID, "escalated")
	assert.ErrorIs(t, err, services.ErrInvalidStatus)

	_, err = svc.UpdateStatus(9999, models.InquiryClosed)
	assert.ErrorIs(t, err, services.ErrNotFound)
}
