package services

import (
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/app/models"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/metrics"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/storage"
)

// AdminService backs the back-office: dashboard aggregates, inventory CRUD,
// and cross-customer listings.
type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

// DashboardStats is the admin landing-page aggregate. TotalRevenue sums
// booking totals once confirmed or later; RevenuePotential prices unsold
// stock.
type DashboardStats struct {
	TotalVehicles    int64                          `json:"total_vehicles"`
	VehiclesByStatus map[models.VehicleStatus]int64 `json:"vehicles_by_status"`
	TotalBookings    int64                          `json:"total_bookings"`
	BookingsByStatus map[models.BookingStatus]int64 `json:"bookings_by_status"`
	ActiveBookings   int64                          `json:"active_bookings"`
	TotalRevenue     float64                        `json:"total_revenue"`
	RevenuePotential float64                        `json:"revenue_potential"`
	TotalCustomers   int64                          `json:"total_customers"`
	NewInquiries     int64                          `json:"new_inquiries"`
	RecentBookings   []models.Booking               `json:"recent_bookings"`
}

// revenueStatuses are the booking states counted as realized revenue.
var revenueStatuses = []models.BookingStatus{
	models.BookingConfirmed, models.BookingActive, models.BookingCompleted,
}

// Stats computes the dashboard aggregates.
func (s *AdminService) Stats() (*DashboardStats, error) {
	defer metrics.ObserveDBQuery("admin_stats", time.Now())

	stats := &DashboardStats{
		VehiclesByStatus: map[models.VehicleStatus]int64{},
		BookingsByStatus: map[models.BookingStatus]int64{},
	}

	if err := s.db.Model(&models.Vehicle{}).Count(&stats.TotalVehicles).Error; err != nil {
		return nil, err
	}

	type statusCount struct {
		Status string
		N      int64
	}
	var vcounts []statusCount
	if err := s.db.Model(&models.Vehicle{}).
		Select("status, COUNT(*) as n").
		Group("status").
		Scan(&vcounts).Error; err != nil {
		return nil, err
	}
	for _, c := range vcounts {
		stats.VehiclesByStatus[models.VehicleStatus(c.Status)] = c.N
	}

	if err := s.db.Model(&models.Booking{}).Count(&stats.TotalBookings).Error; err != nil {
		return nil, err
	}
	var bcounts []statusCount
	if err := s.db.Model(&models.Booking{}).
		Select("status, COUNT(*) as n").
		Group("status").
		Scan(&bcounts).Error; err != nil {
		return nil, err
	}
	for _, c := range bcounts {
		stats.BookingsByStatus[models.BookingStatus(c.Status)] = c.N
	}

	if err := s.db.Model(&models.Booking{}).
		Where("status IN ?", models.NonTerminalStatuses).
		Count(&stats.ActiveBookings).Error; err != nil {
		return nil, err
	}

	var revenue struct{ Total float64 }
	if err := s.db.Model(&models.Booking{}).
		Select("COALESCE(SUM(total_price), 0) as total").
		Where("status IN ?", revenueStatuses).
		Scan(&revenue).Error; err != nil {
		return nil, err
	}
	stats.TotalRevenue = revenue.Total

	var potential struct{ Total float64 }
	if err := s.db.Model(&models.Vehicle{}).
		Select("COALESCE(SUM(price), 0) as total").
		Where("status = ?", models.VehicleAvailable).
		Scan(&potential).Error; err != nil {
		return nil, err
	}
	stats.RevenuePotential = potential.Total

	if err := s.db.Model(&models.User{}).
		Where("role = ?", models.RoleCustomer).
		Count(&stats.TotalCustomers).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Inquiry{}).
		Where("status = ?", models.InquiryNew).
		Count(&stats.NewInquiries).Error; err != nil {
		return nil, err
	}

	if err := s.db.Preload("User").Preload("Vehicle").
		Order("created_at desc").
		Limit(5).
		Find(&stats.RecentBookings).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

// VehicleFilter scopes the admin inventory listing. Unlike the public
// catalog there is no default status: admins see everything.
type VehicleFilter struct {
	Status string
	Sort   string // column name, prefix "-" for descending
	Limit  int
	Offset int
}

// ListVehicles returns inventory across every status for the back office.
func (s *AdminService) ListVehicles(f VehicleFilter) ([]models.Vehicle, int64, error) {
	q := s.db.Model(&models.Vehicle{})
	if f.Status != "" {
		st := models.VehicleStatus(f.Status)
		if !st.Valid() {
			return nil, 0, fmt.Errorf("%w: status %q", ErrInvalidStatus, f.Status)
		}
		q = q.Where("status = ?", st)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	var vehicles []models.Vehicle
	err := q.Order(adminOrderClause(f.Sort)).
		Limit(PageLimit(f.Limit)).
		Offset(offset).
		Find(&vehicles).Error
	return vehicles, total, err
}

// adminOrderClause extends the public sort whitelist with status, which only
// makes sense when listing across every status.
func adminOrderClause(sort string) string {
	if strings.TrimPrefix(sort, "-") == "status" {
		if strings.HasPrefix(sort, "-") {
			return "status desc"
		}
		return "status asc"
	}
	return orderClause(sort)
}

// GetVehicle returns a vehicle regardless of status.
func (s *AdminService) GetVehicle(id uint) (*models.Vehicle, error) {
	var v models.Vehicle
	err := s.db.First(&v, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// VehicleInput carries admin create/update payloads. Pointer fields
// distinguish omitted from zero on update.
type VehicleInput struct {
	Year          int      `json:"year"  validate:"required,gte=1900,lte=2100"`
	Make          string   `json:"make"  validate:"required,max=100"`
	Model         string   `json:"model" validate:"required,max=100"`
	Trim          string   `json:"trim"           validate:"nullable,max=100"`
	VIN           *string  `json:"vin"            validate:"nullable"`
	ExteriorColor string   `json:"exterior_color" validate:"nullable,max=60"`
	InteriorColor string   `json:"interior_color" validate:"nullable,max=60"`
	Mileage       int      `json:"mileage"        validate:"nullable,gte=0"`
	Price         float64  `json:"price"          validate:"nullable,gte=0"`
	LeaseMonthly  float64  `json:"lease_monthly"  validate:"nullable,gte=0"`
	RentalDaily   float64  `json:"rental_daily"   validate:"nullable,gte=0"`
	RentalWeekly  float64  `json:"rental_weekly"  validate:"nullable,gte=0"`
	RentalMonthly float64  `json:"rental_monthly" validate:"nullable,gte=0"`
	BodyType      string   `json:"body_type"      validate:"nullable,max=60"`
	FuelType      string   `json:"fuel_type"      validate:"nullable,max=60"`
	Transmission  string   `json:"transmission"   validate:"nullable,max=60"`
	Engine        string   `json:"engine"         validate:"nullable,max=100"`
	Drivetrain    string   `json:"drivetrain"     validate:"nullable,max=60"`
	Description   string   `json:"description"    validate:"nullable"`
	Features      []string `json:"features"`
	Images        []string `json:"images"`
	Featured      bool     `json:"featured"`
}

// CreateVehicle adds a vehicle to inventory. New vehicles always start
// available; status is owned by the booking lifecycle.
func (s *AdminService) CreateVehicle(in VehicleInput) (*models.Vehicle, error) {
	if err := s.checkVIN(in.VIN, 0); err != nil {
		return nil, err
	}

	v := models.Vehicle{
		Year:          in.Year,
		Make:          in.Make,
		ModelName:     in.Model,
		Trim:          in.Trim,
		VIN:           normalizeVIN(in.VIN),
		ExteriorColor: in.ExteriorColor,
		InteriorColor: in.InteriorColor,
		Mileage:       in.Mileage,
		Price:         in.Price,
		LeaseMonthly:  in.LeaseMonthly,
		RentalDaily:   in.RentalDaily,
		RentalWeekly:  in.RentalWeekly,
		RentalMonthly: in.RentalMonthly,
		BodyType:      in.BodyType,
		FuelType:      in.FuelType,
		Transmission:  in.Transmission,
		Engine:        in.Engine,
		Drivetrain:    in.Drivetrain,
		Description:   in.Description,
		Features:      in.Features,
		Images:        in.Images,
		Status:        models.VehicleAvailable,
		Featured:      in.Featured,
	}
	if err := s.db.Create(&v).Error; err != nil {
		return nil, err
	}
	invalidateCatalogCache()
	return &v, nil
}

// UpdateVehicle replaces a vehicle's descriptive fields. Status is not
// updatable here: it belongs to the booking lifecycle.
func (s *AdminService) UpdateVehicle(id uint, in VehicleInput) (*models.Vehicle, error) {
	var v models.Vehicle
	err := s.db.First(&v, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := s.checkVIN(in.VIN, id); err != nil {
		return nil, err
	}

	v.Year = in.Year
	v.Make = in.Make
	v.ModelName = in.Model
	v.Trim = in.Trim
	v.VIN = normalizeVIN(in.VIN)
	v.ExteriorColor = in.ExteriorColor
	v.InteriorColor = in.InteriorColor
	v.Mileage = in.Mileage
	v.Price = in.Price
	v.LeaseMonthly = in.LeaseMonthly
	v.RentalDaily = in.RentalDaily
	v.RentalWeekly = in.RentalWeekly
	v.RentalMonthly = in.RentalMonthly
	v.BodyType = in.BodyType
	v.FuelType = in.FuelType
	v.Transmission = in.Transmission
	v.Engine = in.Engine
	v.Drivetrain = in.Drivetrain
	v.Description = in.Description
	v.Features = in.Features
	v.Images = in.Images
	v.Featured = in.Featured

	if err := s.db.Save(&v).Error; err != nil {
		return nil, err
	}
	invalidateCatalogCache()
	return &v, nil
}

// checkVIN rejects a VIN already held by a different vehicle.
func (s *AdminService) checkVIN(vin *string, excludeID uint) error {
	if vin == nil || *vin == "" {
		return nil
	}
	var count int64
	q := s.db.Model(&models.Vehicle{}).Where("vin = ?", *vin)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrVINTaken
	}
	return nil
}

func normalizeVIN(vin *string) *string {
	if vin == nil || *vin == "" {
		return nil
	}
	return vin
}

// DeleteVehicle removes a vehicle unless a booking still holds it.
func (s *AdminService) DeleteVehicle(id uint) error {
	var v models.Vehicle
	err := s.db.First(&v, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	var holds int64
	if err := s.db.Model(&models.Booking{}).
		Where("vehicle_id = ? AND status IN ?", id, models.NonTerminalStatuses).
		Count(&holds).Error; err != nil {
		return err
	}
	if holds > 0 {
		return ErrVehicleHasBookings
	}

	if err := s.db.Delete(&v).Error; err != nil {
		return err
	}
	invalidateCatalogCache()
	return nil
}

// AttachVehicleImage stores an uploaded image and appends its URL to the
// vehicle's image list.
func (s *AdminService) AttachVehicleImage(id uint, filename string, r io.Reader) (*models.Vehicle, error) {
	var v models.Vehicle
	err := s.db.First(&v, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("vehicles/%d/%d%s", v.ID, time.Now().UnixNano(), path.Ext(filename))
	if err := storage.PutStream(key, r); err != nil {
		return nil, err
	}

	v.Images = append(v.Images, storage.URL(key))
	if err := s.db.Model(&v).Update("images", v.Images).Error; err != nil {
		return nil, err
	}
	invalidateCatalogCache()
	return &v, nil
}

// ListBookings returns all bookings with user and vehicle preloaded,
// optionally filtered by status.
func (s *AdminService) ListBookings(status string, limit, offset int) ([]models.Booking, int64, error) {
	q := s.db.Model(&models.Booking{})
	if status != "" {
		st := models.BookingStatus(status)
		if !st.Valid() {
			return nil, 0, fmt.Errorf("%w: status %q", ErrInvalidStatus, status)
		}
		q = q.Where("status = ?", st)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit = PageLimit(limit)
	if offset < 0 {
		offset = 0
	}

	var bookings []models.Booking
	err := q.Preload("User").Preload("Vehicle").
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&bookings).Error
	return bookings, total, err
}

// CustomerSummary is a customer row plus their booking count.
type CustomerSummary struct {
	models.User
	BookingCount int64 `json:"booking_count"`
}

// ListCustomers returns customer accounts with per-customer booking counts.
func (s *AdminService) ListCustomers(limit, offset int) ([]CustomerSummary, int64, error) {
	var total int64
	if err := s.db.Model(&models.User{}).
		Where("role = ?", models.RoleCustomer).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit = PageLimit(limit)
	if offset < 0 {
		offset = 0
	}

	var users []models.User
	if err := s.db.Where("role = ?", models.RoleCustomer).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&users).Error; err != nil {
		return nil, 0, err
	}

	out := make([]CustomerSummary, len(users))
	for i, u := range users {
		u.DriversLicense = "" // never expose, even encrypted
		out[i] = CustomerSummary{User: u}
		if err := s.db.Model(&models.Booking{}).
			Where("user_id = ?", u.ID).
			Count(&out[i].BookingCount).Error; err != nil {
			return nil, 0, err
		}
	}
	return out, total, nil
}
