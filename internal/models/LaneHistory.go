package models

import (
	"time"

	"gorm.io/gorm"
)

// LaneHistory holds aggregate stats for an origin/destination lane
// (avg rate, last load, frequency). Populated by the seeder for now.
type LaneHistory struct {
	gorm.Model

	OriginCity       string `json:"origin_city" gorm:"size:128"`
	OriginState      string `json:"origin_state" gorm:"size:32"`
	DestinationCity  string `json:"destination_city" gorm:"size:128"`
	DestinationState string `json:"destination_state" gorm:"size:32"`

	AvgRatePerMile *float64   `json:"avg_rate_per_mile"`
	TotalLoads     *int       `json:"total_loads"`
	LastLoadAt     *time.Time `json:"last_load_at"`
	FrequencyLabel string     `json:"frequency_label" gorm:"size:64"` // e.g. "Weekly"
}
