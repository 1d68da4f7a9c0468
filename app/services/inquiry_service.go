package services

import (
	"errors"
	"fmt"
	"html"

	"gorm.io/gorm"

	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/app/models"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/config"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/logger"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/mail"
)

// InquiryService handles contact-form intake and admin triage.
type InquiryService struct {
	db *gorm.DB
}

func NewInquiryService(db *gorm.DB) *InquiryService {
	return &InquiryService{db: db}
}

// CreateInquiryInput is the public contact-form payload.
type CreateInquiryInput struct {
	Name        string `json:"name"         validate:"required,max=150"`
	Email       string `json:"email"        validate:"required,email"`
	Phone       string `json:"phone"        validate:"nullable,max=40"`
	InquiryType string `json:"inquiry_type" validate:"nullable"`
	Message     string `json:"message"      validate:"required,max=5000"`
	VehicleID   *uint  `json:"vehicle_id"`
}

// Create records an inquiry and notifies the sales inbox. userID is nil for
// anonymous submissions. Mail failure never fails the request.
func (s *InquiryService) Create(userID *uint, in CreateInquiryInput) (*models.Inquiry, error) {
	inquiry := models.Inquiry{
		UserID:      userID,
		VehicleID:   in.VehicleID,
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		InquiryType: models.InquiryType(in.InquiryType).Normalize(),
		Message:     in.Message,
		Status:      models.InquiryNew,
	}

	if in.VehicleID != nil {
		var count int64
		if err := s.db.Model(&models.Vehicle{}).Where("id = ?", *in.VehicleID).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, ErrNotFound
		}
	}

	if err := s.db.Create(&inquiry).Error; err != nil {
		return nil, err
	}

	notifyAsync("inquiry.sales", func() { s.notifySales(&inquiry) })
	return &inquiry, nil
}

// notifySales emails the sales inbox about a new inquiry. Best effort.
func (s *InquiryService) notifySales(inquiry *models.Inquiry) {
	body := fmt.Sprintf(
		"<p>New %s inquiry from %s (%s)</p><p>%s</p>",
		inquiry.InquiryType,
		html.EscapeString(inquiry.Name),
		html.EscapeString(inquiry.Email),
		html.EscapeString(inquiry.Message),
	)

	err := mail.To(config.SalesEmail()).
		Subject(fmt.Sprintf("New inquiry #%d", inquiry.ID)).
		Body(body).
		Send()
	if err != nil && !errors.Is(err, mail.ErrNotConfigured) {
		logger.Warn("inquiry: notification mail failed", "inquiry_id", inquiry.ID, "error", err)
	}
}

// List returns inquiries for the back office, optionally filtered by status.
func (s *InquiryService) List(status string, limit, offset int) ([]models.Inquiry, int64, error) {
	q := s.db.Model(&models.Inquiry{})
	if status != "" {
		st := models.InquiryStatus(status)
		if !st.Valid() {
			return nil, 0, fmt.Errorf("%w: status %q", ErrInvalidStatus, status)
		}
		q = q.Where("status = ?", st)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	var inquiries []models.Inquiry
	err := q.Preload("Vehicle").
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&inquiries).Error
	return inquiries, total, err
}

// UpdateStatus moves an inquiry within the closed status set. There is no
// ordering constraint between inquiry statuses.
func (s *InquiryService) UpdateStatus(id uint, status models.InquiryStatus) (*models.Inquiry, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: inquiry status %q", ErrInvalidStatus, status)
	}

	var inquiry models.Inquiry
	err := s.db.First(&inquiry, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(&inquiry).Update("status", status).Error; err != nil {
		return nil, err
	}
	inquiry.Status = status
	return &inquiry, nil
}
