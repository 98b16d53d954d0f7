package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"freight_marketplace/internal/config"
	"freight_marketplace/internal/geometry"
	"freight_marketplace/internal/models"
)

// Error bodies carry a "detail" field so the front end can surface a single
// human-readable message.
func detail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"detail": msg})
}

// StopPayload is the wire shape for stop creation and replacement. The id is
// accepted on replacement for client convenience; stops are rewritten
// wholesale so it is not used for matching.
type StopPayload struct {
	ID                    uint       `json:"id"`
	StopType              string     `json:"stop_type" binding:"required"`
	LocationName          string     `json:"location_name"`
	Address               string     `json:"address"`
	City                  string     `json:"city"`
	State                 string     `json:"state"`
	Zip                   string     `json:"zip"`
	Lat                   *float64   `json:"lat"`
	Lng                   *float64   `json:"lng"`
	ScheduledArrivalEarly *time.Time `json:"scheduled_arrival_early"`
	ScheduledArrivalLate  *time.Time `json:"scheduled_arrival_late"`
	Sequence              int        `json:"sequence" binding:"required"`
}

// ValidateStopPayloads enforces the invariants shared between order creation
// and stop replacement: at least one stop, unique sequence numbers.
func ValidateStopPayloads(stops []StopPayload) error {
	if len(stops) == 0 {
		return errors.New("At least one stop is required")
	}
	seen := make(map[int]bool, len(stops))
	for _, s := range stops {
		if seen[s.Sequence] {
			return errors.New("Stop sequences must be unique per order")
		}
		seen[s.Sequence] = true
	}
	return nil
}

func toStopModel(orderID uint, p StopPayload) models.Stop {
	return models.Stop{
		OrderID:               orderID,
		Sequence:              p.Sequence,
		StopType:              p.StopType,
		LocationName:          p.LocationName,
		Address:               p.Address,
		City:                  p.City,
		State:                 p.State,
		Zip:                   p.Zip,
		Lat:                   p.Lat,
		Lng:                   p.Lng,
		ScheduledArrivalEarly: p.ScheduledArrivalEarly,
		ScheduledArrivalLate:  p.ScheduledArrivalLate,
	}
}

// StopResponse mirrors models.Stop with the wire field names.
type StopResponse struct {
	ID                    uint       `json:"id"`
	OrderID               uint       `json:"order_id"`
	StopType              string     `json:"stop_type"`
	LocationName          string     `json:"location_name,omitempty"`
	Address               string     `json:"address,omitempty"`
	City                  string     `json:"city,omitempty"`
	State                 string     `json:"state,omitempty"`
	Zip                   string     `json:"zip,omitempty"`
	Lat                   *float64   `json:"lat,omitempty"`
	Lng                   *float64   `json:"lng,omitempty"`
	ScheduledArrivalEarly *time.Time `json:"scheduled_arrival_early,omitempty"`
	ScheduledArrivalLate  *time.Time `json:"scheduled_arrival_late,omitempty"`
	Sequence              int        `json:"sequence"`
}

// CustomerCard is the customer block embedded in an order detail.
type CustomerCard struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	MCNumber string `json:"mc_number,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
}

// OrderResponse is the full order detail: sorted stops, customer card and
// route geometry as GeoJSON.
type OrderResponse struct {
	ID            uint            `json:"id"`
	CustomerID    uint            `json:"customer_id"`
	TrailerType   string          `json:"trailer_type,omitempty"`
	LoadType      string          `json:"load_type,omitempty"`
	WeightLbs     *int            `json:"weight_lbs,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	Status        string          `json:"status"`
	RouteGeometry json.RawMessage `json:"route_geometry,omitempty"`
	TotalMiles    *float64        `json:"total_miles"`
	Stops         []StopResponse  `json:"stops"`
	CreatedAt     time.Time       `json:"created_at"`
	Customer      *CustomerCard   `json:"customer,omitempty"`
}

func toStopResponse(s models.Stop) StopResponse {
	return StopResponse{
		ID:                    s.ID,
		OrderID:               s.OrderID,
		StopType:              s.StopType,
		LocationName:          s.LocationName,
		Address:               s.Address,
		City:                  s.City,
		State:                 s.State,
		Zip:                   s.Zip,
		Lat:                   s.Lat,
		Lng:                   s.Lng,
		ScheduledArrivalEarly: s.ScheduledArrivalEarly,
		ScheduledArrivalLate:  s.ScheduledArrivalLate,
		Sequence:              s.Sequence,
	}
}

func toOrderResponse(order models.Order) OrderResponse {
	geoJSON, err := geometry.WKBToGeoJSON(order.RouteGeometry)
	if err != nil {
		logrus.WithError(err).WithField("order_id", order.ID).Warn("failed to decode route geometry")
		geoJSON = nil
	}

	stops := make([]StopResponse, 0, len(order.Stops))
	for _, s := range geometry.SortStops(order.Stops) {
		stops = append(stops, toStopResponse(s))
	}

	var card *CustomerCard
	if order.Customer != nil {
		card = &CustomerCard{
			ID:       order.Customer.ID,
			Name:     order.Customer.Name,
			MCNumber: order.Customer.MCNumber,
			City:     order.Customer.City,
			State:    order.Customer.State,
			Phone:    order.Customer.Phone,
			Email:    order.Customer.Email,
		}
	}

	return OrderResponse{
		ID:            order.ID,
		CustomerID:    order.CustomerID,
		TrailerType:   order.TrailerType,
		LoadType:      order.LoadType,
		WeightLbs:     order.WeightLbs,
		Notes:         order.Notes,
		Status:        order.Status,
		RouteGeometry: geoJSON,
		TotalMiles:    order.TotalMiles,
		Stops:         stops,
		CreatedAt:     order.CreatedAt,
		Customer:      card,
	}
}

// CreateOrder creates an order with its stops in one transaction and computes
// route geometry and total miles from the stop coordinates.
func CreateOrder(c *gin.Context) {
	var input struct {
		CustomerID  uint          `json:"customer_id" binding:"required"`
		TrailerType string        `json:"trailer_type"`
		LoadType    string        `json:"load_type"`
		WeightLbs   *int          `json:"weight_lbs"`
		Notes       string        `json:"notes"`
		Stops       []StopPayload `json:"stops"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("CreateOrder: invalid input payload")
		detail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := ValidateStopPayloads(input.Stops); err != nil {
		detail(c, http.StatusBadRequest, err.Error())
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, input.CustomerID).Error; err != nil {
		detail(c, http.StatusBadRequest, fmt.Sprintf("Customer id %d not found", input.CustomerID))
		return
	}

	order := models.Order{
		CustomerID:  input.CustomerID,
		TrailerType: input.TrailerType,
		LoadType:    input.LoadType,
		WeightLbs:   input.WeightLbs,
		Notes:       input.Notes,
		Status:      models.OrderStatusDraft,
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		detail(c, http.StatusInternalServerError, "Failed to start transaction")
		return
	}

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		logrus.WithError(err).Error("CreateOrder: create order failed")
		detail(c, http.StatusInternalServerError, "Create order failed: "+err.Error())
		return
	}

	stops := make([]models.Stop, 0, len(input.Stops))
	for _, p := range input.Stops {
		stops = append(stops, toStopModel(order.ID, p))
	}
	if err := tx.Create(&stops).Error; err != nil {
		tx.Rollback()
		logrus.WithError(err).Error("CreateOrder: create stops failed")
		detail(c, http.StatusInternalServerError, "Create stops failed: "+err.Error())
		return
	}

	wkbGeom, err := geometry.StopsToWKB(stops)
	if err != nil {
		tx.Rollback()
		detail(c, http.StatusBadRequest, "Invalid geometry: "+err.Error())
		return
	}
	order.RouteGeometry = wkbGeom
	order.TotalMiles = geometry.TotalMiles(stops)
	if err := tx.Save(&order).Error; err != nil {
		tx.Rollback()
		detail(c, http.StatusInternalServerError, "Update order failed: "+err.Error())
		return
	}

	if err := tx.Commit().Error; err != nil {
		detail(c, http.StatusInternalServerError, "Transaction commit failed: "+err.Error())
		return
	}

	config.DB.Preload("Stops").Preload("Customer").First(&order, order.ID)
	c.JSON(http.StatusCreated, toOrderResponse(order))
}

// OrderListItem is one row of the marketplace list: summary fields plus
// origin/destination and scheduled times taken from the first and last stop.
type OrderListItem struct {
	ID               uint       `json:"id"`
	CustomerID       uint       `json:"customer_id"`
	CustomerName     string     `json:"customer_name"`
	TrailerType      string     `json:"trailer_type,omitempty"`
	LoadType         string     `json:"load_type,omitempty"`
	WeightLbs        *int       `json:"weight_lbs,omitempty"`
	OriginCity       string     `json:"origin_city,omitempty"`
	OriginState      string     `json:"origin_state,omitempty"`
	DestinationCity  string     `json:"destination_city,omitempty"`
	DestinationState string     `json:"destination_state,omitempty"`
	PickupEarly      *time.Time `json:"pickup_early,omitempty"`
	DeliveryLate     *time.Time `json:"delivery_late,omitempty"`
	TotalMiles       *float64   `json:"total_miles"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
}

func toOrderListItem(order models.Order) OrderListItem {
	item := OrderListItem{
		ID:          order.ID,
		CustomerID:  order.CustomerID,
		TrailerType: order.TrailerType,
		LoadType:    order.LoadType,
		WeightLbs:   order.WeightLbs,
		TotalMiles:  order.TotalMiles,
		Status:      order.Status,
		CreatedAt:   order.CreatedAt,
	}
	if order.Customer != nil {
		item.CustomerName = order.Customer.Name
	}

	sorted := geometry.SortStops(order.Stops)
	if len(sorted) > 0 {
		first := sorted[0]
		last := sorted[len(sorted)-1]
		item.OriginCity = first.City
		item.OriginState = first.State
		item.DestinationCity = last.City
		item.DestinationState = last.State
		item.PickupEarly = first.ScheduledArrivalEarly
		item.DeliveryLate = last.ScheduledArrivalLate
	}
	return item
}

// Day-part filter bounds, matched against the pickup's early arrival hour.
var timeWindows = map[string][2]int{
	"morning":   {6, 12},
	"afternoon": {12, 18},
	"evening":   {18, 24},
}

// ListOrders returns one page of summarized orders plus a total count.
// Search matches customer name and stop city/state; a numeric q also matches
// the order id. Filters narrow by pickup/delivery locale, equipment type,
// shipper name, pickup date and day-part window.
func ListOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize < 1 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}

	query := config.DB.Model(&models.Order{}).
		Joins("JOIN customers ON customers.id = orders.customer_id")

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		term := "%" + q + "%"
		query = query.Joins("LEFT JOIN stops ON stops.order_id = orders.id")
		if id, err := strconv.Atoi(q); err == nil {
			query = query.Where(
				"customers.name ILIKE ? OR stops.city ILIKE ? OR stops.state ILIKE ? OR orders.id = ?",
				term, term, term, id,
			)
		} else {
			query = query.Where(
				"customers.name ILIKE ? OR stops.city ILIKE ? OR stops.state ILIKE ?",
				term, term, term,
			)
		}
	}

	if equipment := strings.TrimSpace(c.Query("equipment")); equipment != "" {
		query = query.Where("orders.trailer_type ILIKE ?", equipment)
	}
	if shipper := strings.TrimSpace(c.Query("shipper")); shipper != "" {
		query = query.Where("customers.name ILIKE ?", "%"+shipper+"%")
	}
	if pickup := strings.TrimSpace(c.Query("pickup")); pickup != "" {
		term := "%" + pickup + "%"
		query = query.Where("orders.id IN (?)", config.DB.Model(&models.Stop{}).
			Select("order_id").
			Where("stop_type = ? AND (city ILIKE ? OR state ILIKE ?)", models.StopTypePickup, term, term))
	}
	if delivery := strings.TrimSpace(c.Query("delivery")); delivery != "" {
		term := "%" + delivery + "%"
		query = query.Where("orders.id IN (?)", config.DB.Model(&models.Stop{}).
			Select("order_id").
			Where("stop_type = ? AND (city ILIKE ? OR state ILIKE ?)", models.StopTypeDropoff, term, term))
	}
	if date := strings.TrimSpace(c.Query("available_date")); date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			detail(c, http.StatusBadRequest, "available_date must be YYYY-MM-DD")
			return
		}
		query = query.Where("orders.id IN (?)", config.DB.Model(&models.Stop{}).
			Select("order_id").
			Where("stop_type = ? AND DATE(scheduled_arrival_early) = ?", models.StopTypePickup, date))
	}
	if window := strings.TrimSpace(c.Query("time_window")); window != "" {
		bounds, ok := timeWindows[strings.ToLower(window)]
		if !ok {
			detail(c, http.StatusBadRequest, "time_window must be morning, afternoon or evening")
			return
		}
		query = query.Where("orders.id IN (?)", config.DB.Model(&models.Stop{}).
			Select("order_id").
			Where("stop_type = ? AND EXTRACT(HOUR FROM scheduled_arrival_early) >= ? AND EXTRACT(HOUR FROM scheduled_arrival_early) < ?",
				models.StopTypePickup, bounds[0], bounds[1]))
	}

	query = query.Distinct("orders.id")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logrus.WithError(err).Error("ListOrders: count failed")
		detail(c, http.StatusInternalServerError, "List orders failed: "+err.Error())
		return
	}

	var ids []uint
	if err := query.Order("orders.id DESC").
		Offset((page-1)*pageSize).
		Limit(pageSize).
		Pluck("orders.id", &ids).Error; err != nil {
		logrus.WithError(err).Error("ListOrders: page fetch failed")
		detail(c, http.StatusInternalServerError, "List orders failed: "+err.Error())
		return
	}

	var orders []models.Order
	if len(ids) > 0 {
		if err := config.DB.Preload("Stops").Preload("Customer").
			Where("id IN ?", ids).
			Order("id DESC").
			Find(&orders).Error; err != nil {
			logrus.WithError(err).Error("ListOrders: load failed")
			detail(c, http.StatusInternalServerError, "List orders failed: "+err.Error())
			return
		}
	}

	items := make([]OrderListItem, 0, len(orders))
	for _, order := range orders {
		items = append(items, toOrderListItem(order))
	}

	c.JSON(http.StatusOK, gin.H{
		"items":     items,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetOrder returns a single order with stops, customer and route geometry.
// A malformed id is treated as not found.
func GetOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		detail(c, http.StatusNotFound, "Order not found")
		return
	}

	var order models.Order
	if err := config.DB.Preload("Stops").Preload("Customer").First(&order, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			detail(c, http.StatusNotFound, "Order not found")
		} else {
			logrus.WithError(err).Error("GetOrder: database error")
			detail(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}

// UpdateOrderStops replaces an order's stops wholesale and recomputes route
// geometry and total miles.
func UpdateOrderStops(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		detail(c, http.StatusNotFound, "Order not found")
		return
	}

	var order models.Order
	if err := config.DB.First(&order, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			detail(c, http.StatusNotFound, "Order not found")
		} else {
			logrus.WithError(err).Error("UpdateOrderStops: database error")
			detail(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	var input struct {
		Stops []StopPayload `json:"stops"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("UpdateOrderStops: invalid input payload")
		detail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if err := ValidateStopPayloads(input.Stops); err != nil {
		detail(c, http.StatusBadRequest, err.Error())
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		detail(c, http.StatusInternalServerError, "Failed to start transaction")
		return
	}

	if err := tx.Unscoped().Where("order_id = ?", order.ID).Delete(&models.Stop{}).Error; err != nil {
		tx.Rollback()
		detail(c, http.StatusInternalServerError, "Failed to delete stops: "+err.Error())
		return
	}

	stops := make([]models.Stop, 0, len(input.Stops))
	for _, p := range input.Stops {
		stops = append(stops, toStopModel(order.ID, p))
	}
	if err := tx.Create(&stops).Error; err != nil {
		tx.Rollback()
		detail(c, http.StatusInternalServerError, "Create stops failed: "+err.Error())
		return
	}

	wkbGeom, err := geometry.StopsToWKB(stops)
	if err != nil {
		tx.Rollback()
		detail(c, http.StatusBadRequest, "Invalid geometry: "+err.Error())
		return
	}
	order.RouteGeometry = wkbGeom
	order.TotalMiles = geometry.TotalMiles(stops)
	if err := tx.Save(&order).Error; err != nil {
		tx.Rollback()
		detail(c, http.StatusInternalServerError, "Update order failed: "+err.Error())
		return
	}

	if err := tx.Commit().Error; err != nil {
		detail(c, http.StatusInternalServerError, "Transaction commit failed: "+err.Error())
		return
	}

	config.DB.Preload("Stops").Preload("Customer").First(&order, order.ID)
	c.JSON(http.StatusOK, toOrderResponse(order))
}

// EstimateMiles computes total route miles for a prospective stop list
// without persisting anything. Stops without coordinates are skipped; fewer
// than two located stops yields a null estimate.
func EstimateMiles(c *gin.Context) {
	var input struct {
		Stops []StopPayload `json:"stops"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("EstimateMiles: invalid input payload")
		detail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	stops := make([]models.Stop, 0, len(input.Stops))
	for _, p := range input.Stops {
		stops = append(stops, toStopModel(0, p))
	}

	c.JSON(http.StatusOK, gin.H{"total_miles": geometry.TotalMiles(stops)})
}
