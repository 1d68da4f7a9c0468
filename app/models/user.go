package models

import "gorm.io/gorm"

// Role values for User.Role.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User is an account holder: a registered customer or a back-office admin.
// DriversLicense is stored AES-GCM encrypted; services decrypt on read.
type User struct {
	gorm.Model
	Email          string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password       string `gorm:"size:255;not null" json:"-"` // bcrypt hash, never serialised
	FirstName      string `gorm:"size:100;not null" json:"first_name"`
	LastName       string `gorm:"size:100;not null" json:"last_name"`
	Phone          string `gorm:"size:40" json:"phone"`
	Address        string `gorm:"size:255" json:"address"`
	City           string `gorm:"size:100" json:"city"`
	State          string `gorm:"size:100" json:"state"`
	Zip            string `gorm:"size:20" json:"zip"`
	DriversLicense string `gorm:"size:512" json:"drivers_license,omitempty"`
	Role           string `gorm:"size:50;default:customer" json:"role"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
