package controllers

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/app/services"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/response"
)

// VehicleController serves the public inventory endpoints.
type VehicleController struct {
	service *services.CatalogService
}

func NewVehicleController(db *gorm.DB) *VehicleController {
	return &VehicleController{service: services.NewCatalogService(db)}
}

// Index lists inventory with query-string filters and pagination.
func (c *VehicleController) Index(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := services.ListFilter{
		Make:     q.Get("make"),
		BodyType: q.Get("body_type"),
		FuelType: q.Get("fuel_type"),
		Status:   q.Get("status"),
		YearMin:  queryInt(r, "min_year"),
		YearMax:  queryInt(r, "max_year"),
		PriceMin: queryFloat(r, "min_price"),
		PriceMax: queryFloat(r, "max_price"),
		Sort:     q.Get("sort"),
		Limit:    queryInt(r, "limit"),
		Offset:   queryInt(r, "offset"),
	}

	vehicles, total, err := c.service.List(filter)
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

// Search matches a free-text term against the descriptive vehicle fields.
func (c *VehicleController) Search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	if term == "" {
		response.Error(w, http.StatusBadRequest, "The q query parameter is required.")
		return
	}

	vehicles, err := c.service.Search(term, queryInt(r, "limit"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.Success(w, vehicles)
}

// Featured returns home-page vehicles.
func (c *VehicleController) Featured(w http.ResponseWriter, r *http.Request) {
	vehicles, err := c.service.Featured()
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.Success(w, vehicles)
}

// Makes returns the distinct manufacturers with available inventory.
func (c *VehicleController) Makes(w http.ResponseWriter, r *http.Request) {
	makes, err := c.service.Makes()
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.Success(w, makes)
}

// Show returns a single vehicle.
func (c *VehicleController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.NotFound(w)
		return
	}

	vehicle, err := c.service.Get(id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	response.Success(w, vehicle)
}
