package services

import (
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/app/models"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/event"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/logger"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/workerpool"
)

// EventVehicleStatusChanged fires after a booking transition commits and the
// vehicle's status has been rederived.
const EventVehicleStatusChanged = "vehicle.status_changed"

// VehicleStatusChanged is the payload for EventVehicleStatusChanged.
type VehicleStatusChanged struct {
	VehicleID  uint
	Status     models.VehicleStatus
	BookingRef string
}

// RegisterEventListeners wires the in-process listeners. Call once at boot.
func RegisterEventListeners() {
	event.Listen(EventVehicleStatusChanged, func(payload interface{}) {
		change, ok := payload.(VehicleStatusChanged)
		if !ok {
			return
		}
		// The featured list only shows available vehicles, so any status
		// flip can change it.
		invalidateCatalogCache()
		logger.Info("vehicle status changed",
			"vehicle_id", change.VehicleID,
			"status", change.Status,
			"booking_ref", change.BookingRef,
		)
	})
}

// mailPool bounds concurrent outbound notification mail.
var mailPool = workerpool.New(4)

// notifyAsync runs a best-effort notification on the mail pool. Under burst
// the notification is dropped rather than blocking the request.
func notifyAsync(name string, task func()) {
	if err := mailPool.Submit(task); err != nil {
		logger.Warn("notification dropped", "notification", name, "error", err)
	}
}
