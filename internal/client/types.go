package client

import "time"

// Wire types for the marketplace API.

// StopCreate is a stop within an order-creation or stop-replacement request.
// ID is set only when replacing stops on an existing order.
type StopCreate struct {
	ID                    uint       `json:"id,omitempty"`
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

// OrderCreate is the composite creation request: customer, equipment
// attributes and the full stop list.
type OrderCreate struct {
	CustomerID  uint         `json:"customer_id"`
	TrailerType string       `json:"trailer_type,omitempty"`
	LoadType    string       `json:"load_type,omitempty"`
	WeightLbs   *int         `json:"weight_lbs,omitempty"`
	Notes       string       `json:"notes,omitempty"`
	Stops       []StopCreate `json:"stops"`
}

// Stop is a stop as returned by the API.
type Stop struct {
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

// Customer is a candidate in the customer picker.
type Customer struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	MCNumber string `json:"mc_number,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
}

// CustomerCard is the fuller customer block embedded in an order detail.
type CustomerCard struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	MCNumber string `json:"mc_number,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
}

// RouteGeometry is the GeoJSON-like LineString attached to an order.
type RouteGeometry struct {
	Type        string       `json:"type"`
	Coordinates [][2]float64 `json:"coordinates"`
}

// Order is the full order detail.
type Order struct {
	ID            uint           `json:"id"`
	CustomerID    uint           `json:"customer_id"`
	TrailerType   string         `json:"trailer_type,omitempty"`
	LoadType      string         `json:"load_type,omitempty"`
	WeightLbs     *int           `json:"weight_lbs,omitempty"`
	Notes         string         `json:"notes,omitempty"`
	Status        string         `json:"status"`
	RouteGeometry *RouteGeometry `json:"route_geometry,omitempty"`
	TotalMiles    *float64       `json:"total_miles"`
	Stops         []Stop         `json:"stops"`
	CreatedAt     time.Time      `json:"created_at"`
	Customer      *CustomerCard  `json:"customer,omitempty"`
}

// OrderListItem is one summarized row of the marketplace list.
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

// OrderPage is one page of the order list.
type OrderPage struct {
	Items    []OrderListItem `json:"items"`
	Total    int             `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// MilesEstimate is the estimate-miles response. TotalMiles is nil when fewer
// than two stops carry coordinates.
type MilesEstimate struct {
	TotalMiles *float64 `json:"total_miles"`
}
