package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/app/services"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/logger"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/response"
)

// writeServiceError maps service sentinels onto HTTP responses. Unknown
// errors become an opaque 500 and are logged with request context.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		response.NotFound(w)
	case errors.Is(err, services.ErrInvalidCredentials):
		response.Error(w, http.StatusUnauthorized, "Invalid email or password.")
	case errors.Is(err, services.ErrEmailTaken):
		response.Conflict(w, "This email is already registered.")
	case errors.Is(err, services.ErrVINTaken):
		response.Conflict(w, "A vehicle with this VIN already exists.")
	case errors.Is(err, services.ErrVehicleUnavailable):
		response.Conflict(w, "This vehicle is no longer available.")
	case errors.Is(err, services.ErrBookingTerminal):
		response.Conflict(w, "This booking is already completed or cancelled.")
	case errors.Is(err, services.ErrVehicleHasBookings):
		response.Conflict(w, "This vehicle has active bookings and cannot be deleted.")
	case errors.Is(err, services.ErrInvalidStatus):
		response.Error(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, services.ErrDurationRequired):
		response.Error(w, http.StatusUnprocessableEntity, "Duration is required for rental bookings.")
	default:
		logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		response.Error(w, http.StatusInternalServerError, "Something went wrong.")
	}
}

// pathID parses the {id} route parameter.
func pathID(r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "id")
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

func queryInt(r *http.Request, key string) int {
	n, _ := strconv.Atoi(r.URL.Query().Get(key))
	return n
}

func queryFloat(r *http.Request, key string) float64 {
	f, _ := strconv.ParseFloat(r.URL.Query().Get(key), 64)
	return f
}
