package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/app/models"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/app/services"
)

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAuthService(db)

	user, token, err := svc.Register(services.RegisterInput{
		Email:     "Jane@Example.com",
		Password:  "super-secret",
		FirstName: "Jane",
		LastName:  "Doe",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "jane@example.com", user.Email, "email lowercased")
	assert.Equal(t, models.RoleCustomer, user.Role)
	assert.NotEqual(t, "super-secret", user.Password, "password stored hashed")

	logged, token, err := svc.Login(services.LoginInput{
		Email:    "jane@example.com",
		Password: "super-secret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, logged.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAuthService(db)

	in := services.RegisterInput{
		Email:     "jane@example.com",
		Password:  "super-secret",
		FirstName: "Jane",
		LastName:  "Doe",
	}
	_, _, err := svc.Register(in)
	require.NoError(t, err)

	_, _, err = svc.Register(in)
	assert.ErrorIs(t, err, services.ErrEmailTaken)
}

func TestLoginBadCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAuthService(db)

	_, _, err := svc.Register(services.RegisterInput{
		Email:     "jane@example.com",
		Password:  "super-secret",
		FirstName: "Jane",
		LastName:  "Doe",
	})
	require.NoError(t, err)

	// wrong password and unknown account are indistinguishable
	_, _, err = svc.Login(services.LoginInput{Email: "jane@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	_, _, err = svc.Login(services.LoginInput{Email: "nobody@example.com", Password: "super-secret"})
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestDriversLicenseEncryptedAtRest(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAuthService(db)

	user, _, err := svc.Register(services.RegisterInput{
		Email:          "jane@example.com",
		Password:       "super-secret",
		FirstName:      "Jane",
		LastName:       "Doe",
		DriversLicense: "D1234567",
	})
	require.NoError(t, err)

	// raw column must not contain the plaintext
	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.NotEqual(t, "D1234567", stored.DriversLicense)
	assert.NotEmpty(t, stored.DriversLicense)

	// the profile read decrypts it
	profile, err := svc.Profile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "D1234567", profile.DriversLicense)
}

func TestUpdateProfilePartial(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAuthService(db)
	user := newTestUser(t, db, "jane@example.com")

	updated, err := svc.UpdateProfile(user.ID, services.UpdateProfileInput{
		Phone: "555-0100",
		City:  "Charlotte",
	})
	require.NoError(t, err)
	assert.Equal(t, "555-0100", updated.Phone)
	assert.Equal(t, "Charlotte", updated.City)
	assert.Equal(t, user.FirstName, updated.FirstName, "untouched fields survive")
}

func TestChangeEmail(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAuthService(db)
	user := newTestUser(t, db, "old@example.com")
	newTestUser(t, db, "taken@example.com")

	_, err := svc.ChangeEmail(user.ID, services.ChangeEmailInput{
		Email:    "new@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, err = svc.ChangeEmail(user.ID, services.ChangeEmailInput{
		Email:    "taken@example.com",
		Password: "secret-pass-1",
	})
	assert.ErrorIs(t, err, services.ErrEmailTaken)

	updated, err := svc.ChangeEmail(user.ID, services.ChangeEmailInput{
		Email:    "new@example.com",
		Password: "secret-pass-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Email)
}

func TestChangePassword(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewAuthService(db)
	user := newTestUser(t, db, "jane@example.com")

	err := svc.ChangePassword(user.ID, services.ChangePasswordInput{
		CurrentPassword: "wrong",
		NewPassword:     "brand-new-pass",
	})
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	require.NoError(t, svc.ChangePassword(user.ID, services.ChangePasswordInput{
		CurrentPassword: "secret-pass-1",
		NewPassword:     "brand-new-pass",
	}))

	_, _, err = svc.Login(services.LoginInput{Email: "jane@example.com", Password: "brand-new-pass"})
	assert.NoError(t, err)
	_, _, err = svc.Login(services.LoginInput{Email: "jane@example.com", Password: "secret-pass-1"})
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}
