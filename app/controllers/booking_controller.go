package controllers

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/app/services"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/bind"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/middleware"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/response"
)

// BookingController serves the customer-facing booking endpoints. All of
// them require authentication and are scoped to the caller's own bookings.
type BookingController struct {
	service *services.BookingService
}

func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{service: services.NewBookingService(db)}
}

// Create books a vehicle for the caller.
func (c *BookingController) Create(w http.ResponseWriter, r *http.Request) {
	var in services.CreateBookingInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	userID, _ := middleware.UserIDFromCtx(r)
	booking, err := c.service.Create(userID, in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.CreatedMessage(w, "Booking created.", booking)
}

// Index lists the caller's bookings.
func (c *BookingController) Index(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromCtx(r)
	bookings, err := c.service.ListForUser(userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.Success(w, bookings)
}

// Show returns one of the caller's bookings.
func (c *BookingController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	userID, _ := middleware.UserIDFromCtx(r)
	booking, err := c.service.GetForUser(userID, id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.Success(w, booking)
}

// Cancel cancels one of the caller's bookings and releases the vehicle.
func (c *BookingController) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	userID, _ := middleware.UserIDFromCtx(r)
	booking, err := c.service.Cancel(userID, id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.SuccessMessage(w, "Booking cancelled.", booking)
}
