package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"freight_marketplace/internal/config"
	"freight_marketplace/internal/models"
)

// LaneResponse is the aggregate card shown next to an order's lane.
type LaneResponse struct {
	OriginCity       string     `json:"origin_city"`
	OriginState      string     `json:"origin_state"`
	DestinationCity  string     `json:"destination_city"`
	DestinationState string     `json:"destination_state"`
	AvgRatePerMile   *float64   `json:"avg_rate_per_mile"`
	TotalLoads       *int       `json:"total_loads"`
	LastLoadAt       *time.Time `json:"last_load_at"`
	FrequencyLabel   string     `json:"frequency_label,omitempty"`
}

// GetLane looks up historical stats for an origin/destination lane.
func GetLane(c *gin.Context) {
	originCity := strings.TrimSpace(c.Query("origin_city"))
	originState := strings.TrimSpace(c.Query("origin_state"))
	destCity := strings.TrimSpace(c.Query("destination_city"))
	destState := strings.TrimSpace(c.Query("destination_state"))
	if originCity == "" || destCity == "" {
		detail(c, http.StatusBadRequest, "origin_city and destination_city are required")
		return
	}

	db := config.DB.Where("origin_city ILIKE ? AND destination_city ILIKE ?", originCity, destCity)
	if originState != "" {
		db = db.Where("origin_state ILIKE ?", originState)
	}
	if destState != "" {
		db = db.Where("destination_state ILIKE ?", destState)
	}

	var lane models.LaneHistory
	if err := db.First(&lane).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			detail(c, http.StatusNotFound, "Lane not found")
		} else {
			logrus.WithError(err).Error("GetLane: database error")
			detail(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, LaneResponse{
		OriginCity:       lane.OriginCity,
		OriginState:      lane.OriginState,
		DestinationCity:  lane.DestinationCity,
		DestinationState: lane.DestinationState,
		AvgRatePerMile:   lane.AvgRatePerMile,
		TotalLoads:       lane.TotalLoads,
		LastLoadAt:       lane.LastLoadAt,
		FrequencyLabel:   lane.FrequencyLabel,
	})
}
