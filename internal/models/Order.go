package models

import (
	"gorm.io/gorm"
)

// Order statuses. Orders start as draft; later states are set by dispatch
// tooling outside this service.
const (
	OrderStatusDraft = "draft"
)

// Order represents a freight load: one customer, equipment attributes and an
// ordered list of stops. Each order has many stops; sequence numbers are
// unique and contiguous per order.
type Order struct {
	gorm.Model

	CustomerID  uint   `json:"customer_id" gorm:"index;not null"`
	TrailerType string `json:"trailer_type" gorm:"size:64"`
	LoadType    string `json:"load_type" gorm:"size:128"`
	WeightLbs   *int   `json:"weight_lbs"`
	Notes       string `json:"notes" gorm:"size:1024"`
	Status      string `json:"status" gorm:"size:32;not null;default:draft"`

	// Geometry stored as a LINESTRING in WKB (SRID 4326). Built from the
	// stop coordinates on create/replace; GeoJSON on the wire.
	RouteGeometry []byte   `gorm:"type:bytea" json:"-"`
	TotalMiles    *float64 `json:"total_miles"`

	// Associations
	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Stops    []Stop    `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"stops,omitempty"`
}
