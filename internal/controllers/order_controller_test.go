package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freight_marketplace/internal/geometry"
	"freight_marketplace/internal/models"
)

func fptr(v float64) *float64 { return &v }

func TestValidateStopPayloads(t *testing.T) {
	err := ValidateStopPayloads(nil)
	require.Error(t, err)
	assert.Equal(t, "At least one stop is required", err.Error())

	err = ValidateStopPayloads([]StopPayload{
		{StopType: models.StopTypePickup, Sequence: 1},
		{StopType: models.StopTypeDropoff, Sequence: 1},
	})
	require.Error(t, err)
	assert.Equal(t, "Stop sequences must be unique per order", err.Error())

	err = ValidateStopPayloads([]StopPayload{
		{StopType: models.StopTypePickup, Sequence: 1},
		{StopType: models.StopTypeDropoff, Sequence: 2},
	})
	assert.NoError(t, err)
}

func TestToOrderListItemUsesFirstAndLastStop(t *testing.T) {
	early := time.Date(2025, 10, 1, 8, 0, 0, 0, time.UTC)
	late := time.Date(2025, 10, 1, 20, 0, 0, 0, time.UTC)

	order := models.Order{
		CustomerID: 7,
		Status:     models.OrderStatusDraft,
		Customer:   &models.Customer{Name: "XYZ Products"},
		Stops: []models.Stop{
			{Sequence: 2, StopType: models.StopTypeStop, City: "Springfield", State: "OH"},
			{Sequence: 1, StopType: models.StopTypePickup, City: "Cleveland", State: "OH", ScheduledArrivalEarly: &early},
			{Sequence: 3, StopType: models.StopTypeDropoff, City: "Rockford", State: "IL", ScheduledArrivalLate: &late},
		},
	}

	item := toOrderListItem(order)
	assert.Equal(t, "XYZ Products", item.CustomerName)
	assert.Equal(t, "Cleveland", item.OriginCity)
	assert.Equal(t, "OH", item.OriginState)
	assert.Equal(t, "Rockford", item.DestinationCity)
	assert.Equal(t, "IL", item.DestinationState)
	require.NotNil(t, item.PickupEarly)
	assert.True(t, item.PickupEarly.Equal(early))
	require.NotNil(t, item.DeliveryLate)
	assert.True(t, item.DeliveryLate.Equal(late))
}

func TestToOrderResponseSortsStopsAndDecodesGeometry(t *testing.T) {
	stops := []models.Stop{
		{Sequence: 2, StopType: models.StopTypeDropoff, Lat: fptr(41), Lng: fptr(-81)},
		{Sequence: 1, StopType: models.StopTypePickup, Lat: fptr(40), Lng: fptr(-80)},
	}
	wkbGeom, err := geometry.StopsToWKB(stops)
	require.NoError(t, err)

	order := models.Order{
		CustomerID:    7,
		Status:        models.OrderStatusDraft,
		Stops:         stops,
		RouteGeometry: wkbGeom,
	}

	resp := toOrderResponse(order)
	require.Len(t, resp.Stops, 2)
	assert.Equal(t, 1, resp.Stops[0].Sequence)
	assert.Equal(t, models.StopTypePickup, resp.Stops[0].StopType)
	assert.Contains(t, string(resp.RouteGeometry), `"LineString"`)
}

func TestTimeWindowBounds(t *testing.T) {
	assert.Equal(t, [2]int{6, 12}, timeWindows["morning"])
	assert.Equal(t, [2]int{12, 18}, timeWindows["afternoon"])
	assert.Equal(t, [2]int{18, 24}, timeWindows["evening"])
	_, ok := timeWindows["midnight"]
	assert.False(t, ok)
}
