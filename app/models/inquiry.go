package models

import "gorm.io/gorm"

// InquiryStatus tracks triage of a contact-form submission.
type InquiryStatus string

const (
	InquiryNew        InquiryStatus = "new"
	InquiryInProgress InquiryStatus = "in-progress"
	InquiryResolved   InquiryStatus = "resolved"
	InquiryClosed     InquiryStatus = "closed"
)

// Valid reports whether s is a known inquiry status.
func (s InquiryStatus) Valid() bool {
	switch s {
	case InquiryNew, InquiryInProgress, InquiryResolved, InquiryClosed:
		return true
	}
	return false
}

// InquiryType categorises the submission. Unknown values coerce to general.
type InquiryType string

const (
	InquiryGeneral   InquiryType = "general"
	InquiryTestDrive InquiryType = "test-drive"
	InquiryFinancing InquiryType = "financing"
	InquiryTradeIn   InquiryType = "trade-in"
)

// Normalize maps any unrecognised inquiry type to general.
func (t InquiryType) Normalize() InquiryType {
	switch t {
	case InquiryGeneral, InquiryTestDrive, InquiryFinancing, InquiryTradeIn:
		return t
	}
	return InquiryGeneral
}

// Inquiry is a contact-form submission, optionally tied to a user and/or
// vehicle. There is no state machine here: admins move the status freely
// within the closed set.
type Inquiry struct {
	gorm.Model
	UserID      *uint         `gorm:"index" json:"user_id"`
	VehicleID   *uint         `gorm:"index" json:"vehicle_id"`
	Name        string        `gorm:"size:150;not null" json:"name"`
	Email       string        `gorm:"size:255;not null" json:"email"`
	Phone       string        `gorm:"size:40" json:"phone"`
	InquiryType InquiryType   `gorm:"size:30;default:general" json:"inquiry_type"`
	Message     string        `gorm:"type:text;not null" json:"message"`
	Status      InquiryStatus `gorm:"size:20;not null;default:new;index" json:"status"`

	Vehicle *Vehicle `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
}
