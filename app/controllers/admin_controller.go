package controllers

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/app/models"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/app/services"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/bind"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/response"
)

// maxImageUpload caps a single vehicle image upload.
const maxImageUpload = 10 << 20 // 10 MB

// AdminController serves the back office. Every route behind it is guarded
// by rbac.HasRole("admin") at the router level.
type AdminController struct {
	admin     *services.AdminService
	bookings  *services.BookingService
	inquiries *services.InquiryService
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{
		admin:     services.NewAdminService(db),
		bookings:  services.NewBookingService(db),
		inquiries: services.NewInquiryService(db),
	}
}

// Stats returns the dashboard aggregates.
func (c *AdminController) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.admin.Stats()
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.Success(w, stats)
}

// Vehicles lists inventory for the back office, across every status.
func (c *AdminController) Vehicles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := services.VehicleFilter{
		Status: q.Get("status"),
		Sort:   q.Get("sort"),
		Limit:  queryInt(r, "limit"),
		Offset: queryInt(r, "offset"),
	}

	vehicles, total, err := c.admin.ListVehicles(filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.Paginated(w, vehicles, response.Pagination{
		Total:  total,
		Limit:  services.PageLimit(filter.Limit),
		Offset: filter.Offset,
	})
}

// Vehicle returns a single vehicle regardless of status.
func (c *AdminController) Vehicle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	vehicle, err := c.admin.GetVehicle(id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.Success(w, vehicle)
}

// CreateVehicle adds a vehicle to inventory.
func (c *AdminController) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var in services.VehicleInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	vehicle, err := c.admin.CreateVehicle(in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.CreatedMessage(w, "Vehicle created.", vehicle)
}

// UpdateVehicle replaces a vehicle's descriptive fields.
func (c *AdminController) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	var in services.VehicleInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	vehicle, err := c.admin.UpdateVehicle(id, in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.SuccessMessage(w, "Vehicle updated.", vehicle)
}

// DeleteVehicle removes a vehicle without active bookings.
func (c *AdminController) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	if err := c.admin.DeleteVehicle(id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.SuccessMessage(w, "Vehicle deleted.", nil)
}

// UploadVehicleImage accepts a multipart "image" file and appends its URL
// to the vehicle.
func (c *AdminController) UploadVehicleImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	if err := r.ParseMultipartForm(maxImageUpload); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid multipart upload.")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "The image file is required.")
		return
	}
	defer file.Close()

	vehicle, err := c.admin.AttachVehicleImage(id, header.Filename, file)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.SuccessMessage(w, "Image uploaded.", vehicle)
}

// Bookings lists all bookings across customers.
func (c *AdminController) Bookings(w http.ResponseWriter, r *http.Request) {
	limit, offset := queryInt(r, "limit"), queryInt(r, "offset")
	bookings, total, err := c.admin.ListBookings(r.URL.Query().Get("status"), limit, offset)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.Paginated(w, bookings, response.Pagination{Total: total, Limit: services.PageLimit(limit), Offset: offset})
}

// UpdateBookingStatus drives the booking lifecycle from the back office.
func (c *AdminController) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	var in struct {
		Status string `json:"status" validate:"required,in=pending,confirmed,active,completed,cancelled"`
	}
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	booking, err := c.bookings.UpdateStatus(id, models.BookingStatus(in.Status))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.SuccessMessage(w, "Booking status updated.", booking)
}

// Customers lists customer accounts with booking counts.
func (c *AdminController) Customers(w http.ResponseWriter, r *http.Request) {
	limit, offset := queryInt(r, "limit"), queryInt(r, "offset")
	customers, total, err := c.admin.ListCustomers(limit, offset)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.Paginated(w, customers, response.Pagination{Total: total, Limit: services.PageLimit(limit), Offset: offset})
}

// Inquiries lists contact-form submissions for triage.
func (c *AdminController) Inquiries(w http.ResponseWriter, r *http.Request) {
	limit, offset := queryInt(r, "limit"), queryInt(r, "offset")
	inquiries, total, err := c.inquiries.List(r.URL.Query().Get("status"), limit, offset)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.Paginated(w, inquiries, response.Pagination{Total: total, Limit: services.PageLimit(limit), Offset: offset})
}

// UpdateInquiryStatus moves an inquiry within the triage set.
func (c *AdminController) UpdateInquiryStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	var in struct {
		Status string `json:"status" validate:"required,in=new,in-progress,resolved,closed"`
	}
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	inquiry, err := c.inquiries.UpdateStatus(id, models.InquiryStatus(in.Status))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.SuccessMessage(w, "Inquiry status updated.", inquiry)
}
