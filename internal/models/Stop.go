package models

import (
	"time"

	"gorm.io/gorm"
)

// Stop types. The first stop of an order is conventionally a pickup and the
// last a dropoff; "stop" marks intermediate calls.
const (
	StopTypePickup  = "pickup"
	StopTypeStop    = "stop"
	StopTypeDropoff = "dropoff"
)

// Stop is a location and scheduling window within an order's route.
// Sequence indicates route order, 1-based and unique per order.
type Stop struct {
	gorm.Model

	OrderID  uint   `json:"order_id" gorm:"index;not null;uniqueIndex:uq_stops_order_sequence"`
	Sequence int    `json:"sequence" gorm:"not null;uniqueIndex:uq_stops_order_sequence"`
	StopType string `json:"stop_type" gorm:"size:32;not null"`

	LocationName string   `json:"location_name" gorm:"size:255"`
	Address      string   `json:"address" gorm:"size:512"`
	City         string   `json:"city" gorm:"size:128"`
	State        string   `json:"state" gorm:"size:32"`
	Zip          string   `json:"zip" gorm:"size:32"`
	Lat          *float64 `json:"lat"`
	Lng          *float64 `json:"lng"`

	ScheduledArrivalEarly *time.Time `json:"scheduled_arrival_early"`
	ScheduledArrivalLate  *time.Time `json:"scheduled_arrival_late"`
}
