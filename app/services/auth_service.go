package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/app/models"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/auth"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/crypt"
)

// AuthService handles registration, login, and account self-service.
type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// RegisterInput is the payload for account creation.
type RegisterInput struct {
	Email          string `json:"email"      validate:"required,email"`
	Password       string `json:"password"   validate:"required,min=8"`
	FirstName      string `json:"first_name" validate:"required,max=100"`
	LastName       string `json:"last_name"  validate:"required,max=100"`
	Phone          string `json:"phone"      validate:"nullable,max=40"`
	Address        string `json:"address"    validate:"nullable,max=255"`
	City           string `json:"city"       validate:"nullable,max=100"`
	State          string `json:"state"      validate:"nullable,max=100"`
	Zip            string `json:"zip"        validate:"nullable,max=20"`
	DriversLicense string `json:"drivers_license" validate:"nullable,max=64"`
}

// Register creates a customer account and returns it with a session token.
// The role is always customer: admin accounts are only created by seeding.
func (s *AuthService) Register(in RegisterInput) (*models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, "", err
	}
	if count > 0 {
		return nil, "", ErrEmailTaken
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, "", err
	}

	user := models.User{
		Email:     email,
		Password:  hash,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Phone:     in.Phone,
		Address:   in.Address,
		City:      in.City,
		State:     in.State,
		Zip:       in.Zip,
		Role:      models.RoleCustomer,
	}
	if in.DriversLicense != "" {
		enc, err := crypt.Encrypt(in.DriversLicense)
		if err != nil {
			return nil, "", err
		}
		user.DriversLicense = enc
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, "", err
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}
	user.DriversLicense = in.DriversLicense
	return &user, token, nil
}

// LoginInput is the payload for session creation.
type LoginInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login verifies credentials and returns the user with a fresh token.
// A missing account and a wrong password return the same error.
func (s *AuthService) Login(in LoginInput) (*models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if !auth.CheckPassword(user.Password, in.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Profile returns a user by ID with the driver's license decrypted.
func (s *AuthService) Profile(userID uint) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if user.DriversLicense != "" {
		if plain, err := crypt.Decrypt(user.DriversLicense); err == nil {
			user.DriversLicense = plain
		} else {
			user.DriversLicense = ""
		}
	}
	return &user, nil
}

// UpdateProfileInput carries the editable contact fields. Email, password,
// and role are changed through their own operations.
type UpdateProfileInput struct {
	FirstName      string `json:"first_name" validate:"nullable,max=100"`
	LastName       string `json:"last_name"  validate:"nullable,max=100"`
	Phone          string `json:"phone"      validate:"nullable,max=40"`
	Address        string `json:"address"    validate:"nullable,max=255"`
	City           string `json:"city"       validate:"nullable,max=100"`
	State          string `json:"state"      validate:"nullable,max=100"`
	Zip            string `json:"zip"        validate:"nullable,max=20"`
	DriversLicense string `json:"drivers_license" validate:"nullable,max=64"`
}

// UpdateProfile applies the non-empty fields of in to the user's record.
func (s *AuthService) UpdateProfile(userID uint, in UpdateProfileInput) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.FirstName != "" {
		updates["first_name"] = in.FirstName
	}
	if in.LastName != "" {
		updates["last_name"] = in.LastName
	}
	if in.Phone != "" {
		updates["phone"] = in.Phone
	}
	if in.Address != "" {
		updates["address"] = in.Address
	}
	if in.City != "" {
		updates["city"] = in.City
	}
	if in.State != "" {
		updates["state"] = in.State
	}
	if in.Zip != "" {
		updates["zip"] = in.Zip
	}
	if in.DriversLicense != "" {
		enc, err := crypt.Encrypt(in.DriversLicense)
		if err != nil {
			return nil, err
		}
		updates["drivers_license"] = enc
	}

	if len(updates) > 0 {
		if err := s.db.Model(&user).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.Profile(userID)
}

// ChangeEmailInput requires the current password as confirmation.
type ChangeEmailInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ChangeEmail updates the account email after re-verifying the password.
func (s *AuthService) ChangeEmail(userID uint, in ChangeEmailInput) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, in.Password) {
		return nil, ErrInvalidCredentials
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	var count int64
	if err := s.db.Model(&models.User{}).
		Where("email = ? AND id <> ?", email, userID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	if err := s.db.Model(&user).Update("email", email).Error; err != nil {
		return nil, err
	}
	return s.Profile(userID)
}

// ChangePasswordInput requires the current password and a confirmed new one.
type ChangePasswordInput struct {
	CurrentPassword         string `json:"current_password"          validate:"required"`
	NewPassword             string `json:"new_password"              validate:"required,min=8"`
	NewPasswordConfirmation string `json:"new_password_confirmation" validate:"confirmed"`
}

// ChangePassword rotates the password after re-verifying the current one.
func (s *AuthService) ChangePassword(userID uint, in ChangePasswordInput) error {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if !auth.CheckPassword(user.Password, in.CurrentPassword) {
		return ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(in.NewPassword)
	if err != nil {
		return err
	}
	return s.db.Model(&user).Update("password", hash).Error
}
