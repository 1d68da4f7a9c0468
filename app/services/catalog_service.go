package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/app/models"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/cache"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/metrics"
)

// CatalogService serves the public vehicle inventory: listing, filtering,
// search, and the cached featured/makes shortcuts.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

const (
	defaultPageSize = 50
	maxPageSize     = 100

	featuredCacheKey = "catalog:featured"
	makesCacheKey    = "catalog:makes"
	catalogCacheTTL  = 5 * time.Minute
)

// sortColumns whitelists the sortable fields. Anything else falls back to
// newest-first.
var sortColumns = map[string]string{
	"price":      "price",
	"year":       "year",
	"mileage":    "mileage",
	"make":       "make",
	"created_at": "created_at",
}

// PageLimit clamps a requested page size into [1, maxPageSize], applying the
// default when the caller left it unset.
func PageLimit(limit int) int {
	if limit <= 0 {
		return defaultPageSize
	}
	if limit > maxPageSize {
		return maxPageSize
	}
	return limit
}

// ListFilter captures the query-string filters for the inventory listing.
// Zero values mean "no constraint".
type ListFilter struct {
	Make     string
	BodyType string
	FuelType string
	Status   string
	YearMin  int
	YearMax  int
	PriceMin float64
	PriceMax float64
	Sort     string // column name, prefix "-" for descending
	Limit    int
	Offset   int
}

// List returns a filtered page of inventory plus the total row count for the
// filter. Status defaults to available; pass Status "all" to disable the
// status constraint.
func (s *CatalogService) List(f ListFilter) ([]models.Vehicle, int64, error) {
	defer metrics.ObserveDBQuery("vehicles_list", time.Now())

	q := s.db.Model(&models.Vehicle{})

	switch f.Status {
	case "all":
	case "":
		q = q.Where("status = ?", models.VehicleAvailable)
	default:
		st := models.VehicleStatus(f.Status)
		if !st.Valid() {
			return nil, 0, fmt.Errorf("%w: status %q", ErrInvalidStatus, f.Status)
		}
		q = q.Where("status = ?", st)
	}

	if f.Make != "" {
		q = q.Where("make = ?", f.Make)
	}
	if f.BodyType != "" {
		q = q.Where("body_type = ?", f.BodyType)
	}
	if f.FuelType != "" {
		q = q.Where("fuel_type = ?", f.FuelType)
	}
	if f.YearMin > 0 {
		q = q.Where("year >= ?", f.YearMin)
	}
	if f.YearMax > 0 {
		q = q.Where("year <= ?", f.YearMax)
	}
	if f.PriceMin > 0 {
		q = q.Where("price >= ?", f.PriceMin)
	}
	if f.PriceMax > 0 {
		q = q.Where("price <= ?", f.PriceMax)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := PageLimit(f.Limit)
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	var vehicles []models.Vehicle
	err := q.Order(orderClause(f.Sort)).
		Limit(limit).
		Offset(offset).
		Find(&vehicles).Error
	return vehicles, total, err
}

func orderClause(sort string) string {
	dir := "asc"
	col := sort
	if strings.HasPrefix(sort, "-") {
		dir = "desc"
		col = sort[1:]
	}
	if mapped, ok := sortColumns[col]; ok {
		return mapped + " " + dir
	}
	return "created_at desc"
}

// searchColumns are the textual fields matched by Search. Year is cast so a
// "2024" query hits it too.
var searchColumns = []string{
	"make", "model", "trim", "body_type",
	"exterior_color", "interior_color",
	"description", "engine", "fuel_type",
	"CAST(year AS TEXT)",
}

// Search matches the term case-insensitively as a substring across the
// descriptive vehicle fields. Only available inventory is searchable.
func (s *CatalogService) Search(term string, limit int) ([]models.Vehicle, error) {
	limit = PageLimit(limit)

	preds := make([]string, len(searchColumns))
	args := make([]interface{}, len(searchColumns))
	like := "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
	for i, col := range searchColumns {
		preds[i] = "LOWER(" + col + ") LIKE ?"
		args[i] = like
	}

	var vehicles []models.Vehicle
	err := s.db.
		Where("status = ?", models.VehicleAvailable).
		Where(strings.Join(preds, " OR "), args...).
		Order("created_at desc").
		Limit(limit).
		Find(&vehicles).Error
	return vehicles, err
}

// Featured returns the available vehicles flagged for the home page.
// The result is cached for a few minutes; admin writes invalidate it.
func (s *CatalogService) Featured() ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if cache.Get(featuredCacheKey, &vehicles) {
		metrics.CacheHits.WithLabelValues("featured").Inc()
		return vehicles, nil
	}
	metrics.CacheMisses.WithLabelValues("featured").Inc()

	err := s.db.
		Where("featured = ? AND status = ?", true, models.VehicleAvailable).
		Order("created_at desc").
		Find(&vehicles).Error
	if err != nil {
		return nil, err
	}

	_ = cache.Set(featuredCacheKey, vehicles, catalogCacheTTL)
	return vehicles, nil
}

// Makes returns the distinct manufacturer names with available inventory,
// sorted. Feeds the public filter dropdown, so sold-out makes are omitted.
func (s *CatalogService) Makes() ([]string, error) {
	var makes []string
	if cache.Get(makesCacheKey, &makes) {
		metrics.CacheHits.WithLabelValues("makes").Inc()
		return makes, nil
	}
	metrics.CacheMisses.WithLabelValues("makes").Inc()

	err := s.db.Model(&models.Vehicle{}).
		Where("status = ?", models.VehicleAvailable).
		Distinct("make").
		Order("make asc").
		Pluck("make", &makes).Error
	if err != nil {
		return nil, err
	}

	_ = cache.Set(makesCacheKey, makes, catalogCacheTTL)
	return makes, nil
}

// Get returns a single vehicle by ID.
func (s *CatalogService) Get(id uint) (*models.Vehicle, error) {
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

// invalidateCatalogCache drops the cached catalog shortcuts after any
// inventory write.
func invalidateCatalogCache() {
	_ = cache.Del(featuredCacheKey, makesCacheKey)
}
