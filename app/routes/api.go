// Package routes wires the HTTP surface: public catalog, auth, customer
// bookings, the public contact form, and the admin back office.
package routes

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/app/controllers"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/app/models"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/config"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/metrics"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/middleware"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/rbac"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/response"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/router"
)

// RegisterAPI mounts every route on r.
func RegisterAPI(r *router.Router, db *gorm.DB) {
	authController := controllers.NewAuthController(db)
	vehicleController := controllers.NewVehicleController(db)
	bookingController := controllers.NewBookingController(db)
	inquiryController := controllers.NewInquiryController(db)
	adminController := controllers.NewAdminController(db)

	r.Get("/healthz", "healthz", func(w http.ResponseWriter, _ *http.Request) {
		response.Success(w, map[string]string{"status": "ok"})
	})
	r.Get("/metrics", "metrics", metrics.Handler())
	r.Static("/uploads", config.StorageLocalRoot())

	api := r.Group("", middleware.Authenticate(db))

	// Public catalog. Fixed paths must be registered before /vehicles/{id}.
	vehicles := api.Group("/api/vehicles")
	vehicles.Get("", "vehicles.index", vehicleController.Index)
	vehicles.Get("/search", "vehicles.search", vehicleController.Search)
	vehicles.Get("/featured", "vehicles.featured", vehicleController.Featured)
	vehicles.Get("/makes", "vehicles.makes", vehicleController.Makes)
	vehicles.Get("/{id}", "vehicles.show", vehicleController.Show)

	// Auth and account self-service.
	auth := api.Group("/api/auth")
	auth.Post("/register", "auth.register", authController.Register, rbac.Guest)
	auth.Post("/login", "auth.login", authController.Login, rbac.Guest)
	auth.Post("/logout", "auth.logout", authController.Logout)

	account := auth.Group("", middleware.RequireAuth)
	account.Get("/me", "auth.me", authController.Me)
	account.Put("/profile", "auth.profile", authController.UpdateProfile)
	account.Put("/email", "auth.email", authController.ChangeEmail)
	account.Put("/password", "auth.password", authController.ChangePassword)

	// Customer bookings.
	bookings := api.Group("/api/bookings", middleware.RequireAuth)
	bookings.Post("", "bookings.create", bookingController.Create)
	bookings.Get("/my", "bookings.my", bookingController.Index)
	bookings.Get("/{id}", "bookings.show", bookingController.Show)
	bookings.Put("/{id}/cancel", "bookings.cancel", bookingController.Cancel)

	// Public contact form. Linked to the account when a session is present.
	api.Post("/api/inquiries", "inquiries.create", inquiryController.Create)

	// Back office.
	admin := api.Group("/api/admin", middleware.RequireAuth, rbac.HasRole(models.RoleAdmin))
	admin.Get("/stats", "admin.stats", adminController.Stats)
	admin.Get("/vehicles", "admin.vehicles.index", adminController.Vehicles)
	admin.Get("/vehicles/{id}", "admin.vehicles.show", adminController.Vehicle)
	admin.Post("/vehicles", "admin.vehicles.create", adminController.CreateVehicle)
	admin.Put("/vehicles/{id}", "admin.vehicles.update", adminController.UpdateVehicle)
	admin.Delete("/vehicles/{id}", "admin.vehicles.delete", adminController.DeleteVehicle)
	admin.Post("/vehicles/{id}/images", "admin.vehicles.images", adminController.UploadVehicleImage)
	admin.Get("/bookings", "admin.bookings.index", adminController.Bookings)
	admin.Put("/bookings/{id}/status", "admin.bookings.status", adminController.UpdateBookingStatus)
	admin.Get("/customers", "admin.customers.index", adminController.Customers)
	admin.Get("/inquiries", "admin.inquiries.index", adminController.Inquiries)
	admin.Put("/inquiries/{id}/status", "admin.inquiries.status", adminController.UpdateInquiryStatus)
}
