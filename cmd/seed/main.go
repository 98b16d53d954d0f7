// Seeds demo customers, orders and lane history.
// Idempotent: skips when customers already exist.
// Run: go run ./cmd/seed
package main

import (
	"log"
	"time"

	"freight_marketplace/internal/config"
	"freight_marketplace/internal/geometry"
	"freight_marketplace/internal/models"
)

func ptrF(v float64) *float64 { return &v }
func ptrI(v int) *int         { return &v }

func ptrT(v time.Time) *time.Time { return &v }

type seedStop struct {
	stopType  string
	name      string
	address   string
	city      string
	state     string
	zip       string
	lat       float64
	lng       float64
	earlyHour int
	lateHour  int
}

type seedOrder struct {
	customerIdx int
	trailerType string
	loadType    string
	weightLbs   int
	notes       string
	stops       []seedStop
}

func main() {
	config.InitDB()
	db := config.DB

	var count int64
	if err := db.Model(&models.Customer{}).Count(&count).Error; err != nil {
		log.Fatalf("seed: count customers failed: %v", err)
	}
	if count > 0 {
		log.Println("Customers already exist. Skipping seed (idempotent).")
		return
	}

	customers := []models.Customer{
		{Name: "XYZ Products", MCNumber: "MC-1001", Address: "1250 Industrial Pkwy", City: "Cleveland", State: "OH", Zip: "44135", Phone: "216-555-0101", Email: "ops@xyzproducts.com"},
		{Name: "LMN Services", MCNumber: "MC-1002", Address: "800 Commerce Dr", City: "Chicago", State: "IL", Zip: "60601", Phone: "312-555-0102", Email: "logistics@lmnservices.com"},
		{Name: "PQR Solutions", MCNumber: "MC-1003", Address: "450 Warehouse Blvd", City: "Detroit", State: "MI", Zip: "48201", Phone: "313-555-0103", Email: "dispatch@pqrsolutions.com"},
		{Name: "EFG Innovations", MCNumber: "MC-1004", Address: "200 Mill Rd", City: "Rockford", State: "IL", Zip: "61101", Phone: "815-555-0104", Email: "shipping@efginnovations.com"},
		{Name: "ABC Distribution", MCNumber: "MC-1005", Address: "1600 Freight Way", City: "Indianapolis", State: "IN", Zip: "46201", Phone: "317-555-0105", Email: "orders@abcdistribution.com"},
		{Name: "Champion Brands LLC", MCNumber: "MC-1006", Address: "3200 Industrial Pkwy", City: "Columbus", State: "OH", Zip: "43215", Phone: "614-555-0106", Email: "freight@championbrands.com"},
	}
	if err := db.Create(&customers).Error; err != nil {
		log.Fatalf("seed: create customers failed: %v", err)
	}
	log.Printf("Inserted %d customers.", len(customers))

	baseTime := time.Date(2025, 10, 1, 8, 0, 0, 0, time.UTC)

	orders := []seedOrder{
		{
			customerIdx: 0, trailerType: "Flatbed", loadType: "Steel Coils", weightLbs: 22000, notes: "Handle with care",
			stops: []seedStop{
				{models.StopTypePickup, "XYZ Warehouse", "1250 Industrial Pkwy", "Cleveland", "OH", "44135", 41.42, -81.70, 0, 4},
				{models.StopTypeDropoff, "Rockford Steel", "100 Mill Rd", "Rockford", "IL", "61101", 42.27, -89.06, 10, 12},
			},
		},
		{
			customerIdx: 1, trailerType: "Dry Van", loadType: "Electronics", weightLbs: 14500, notes: "Liftgate at delivery",
			stops: []seedStop{
				{models.StopTypePickup, "LMN Dock 4", "800 Commerce Dr", "Chicago", "IL", "60601", 41.88, -87.63, 1, 3},
				{models.StopTypeStop, "Cross-dock", "2200 Hub Ln", "Indianapolis", "IN", "46201", 39.77, -86.16, 6, 8},
				{models.StopTypeDropoff, "ABC North DC", "1600 Freight Way", "Columbus", "OH", "43215", 39.96, -83.00, 12, 14},
			},
		},
		{
			customerIdx: 2, trailerType: "Reefer", loadType: "Food & Beverage", weightLbs: 31000, notes: "Keep at 34F",
			stops: []seedStop{
				{models.StopTypePickup, "PQR Cold Store", "450 Warehouse Blvd", "Detroit", "MI", "48201", 42.33, -83.05, 2, 5},
				{models.StopTypeDropoff, "Champion Foods", "3200 Industrial Pkwy", "Columbus", "OH", "43215", 39.96, -83.00, 9, 11},
			},
		},
		{
			customerIdx: 4, trailerType: "Flatbed", loadType: "Machinery", weightLbs: 40500, notes: "",
			stops: []seedStop{
				{models.StopTypePickup, "ABC Yard", "1600 Freight Way", "Indianapolis", "IN", "46201", 39.77, -86.16, 0, 2},
				{models.StopTypeStop, "Weigh Station", "I-70 East MM 85", "Springfield", "OH", "45501", 39.92, -83.81, 4, 5},
				{models.StopTypeStop, "Fuel Stop", "5500 Pike Dr", "Zanesville", "OH", "43701", 39.94, -82.01, 7, 8},
				{models.StopTypeDropoff, "EFG Plant 2", "200 Mill Rd", "Pittsburgh", "PA", "15201", 40.44, -79.99, 11, 13},
			},
		},
	}

	for _, o := range orders {
		order := models.Order{
			CustomerID:  customers[o.customerIdx].ID,
			TrailerType: o.trailerType,
			LoadType:    o.loadType,
			WeightLbs:   ptrI(o.weightLbs),
			Notes:       o.notes,
			Status:      models.OrderStatusDraft,
		}
		if err := db.Create(&order).Error; err != nil {
			log.Fatalf("seed: create order failed: %v", err)
		}

		stops := make([]models.Stop, 0, len(o.stops))
		for i, s := range o.stops {
			stops = append(stops, models.Stop{
				OrderID:               order.ID,
				Sequence:              i + 1,
				StopType:              s.stopType,
				LocationName:          s.name,
				Address:               s.address,
				City:                  s.city,
				State:                 s.state,
				Zip:                   s.zip,
				Lat:                   ptrF(s.lat),
				Lng:                   ptrF(s.lng),
				ScheduledArrivalEarly: ptrT(baseTime.Add(time.Duration(s.earlyHour) * time.Hour)),
				ScheduledArrivalLate:  ptrT(baseTime.Add(time.Duration(s.lateHour) * time.Hour)),
			})
		}
		if err := db.Create(&stops).Error; err != nil {
			log.Fatalf("seed: create stops failed: %v", err)
		}

		wkbGeom, err := geometry.StopsToWKB(stops)
		if err != nil {
			log.Fatalf("seed: geometry failed: %v", err)
		}
		order.RouteGeometry = wkbGeom
		order.TotalMiles = geometry.TotalMiles(stops)
		if err := db.Save(&order).Error; err != nil {
			log.Fatalf("seed: save order failed: %v", err)
		}
	}
	log.Printf("Inserted %d orders with stops.", len(orders))

	lanes := []models.LaneHistory{
		{OriginCity: "Cleveland", OriginState: "OH", DestinationCity: "Rockford", DestinationState: "IL", AvgRatePerMile: ptrF(2.45), TotalLoads: ptrI(18), LastLoadAt: ptrT(baseTime.AddDate(0, 0, -6)), FrequencyLabel: "Weekly"},
		{OriginCity: "Chicago", OriginState: "IL", DestinationCity: "Columbus", DestinationState: "OH", AvgRatePerMile: ptrF(2.80), TotalLoads: ptrI(31), LastLoadAt: ptrT(baseTime.AddDate(0, 0, -2)), FrequencyLabel: "Daily"},
		{OriginCity: "Detroit", OriginState: "MI", DestinationCity: "Columbus", DestinationState: "OH", AvgRatePerMile: ptrF(3.10), TotalLoads: ptrI(9), LastLoadAt: ptrT(baseTime.AddDate(0, 0, -14)), FrequencyLabel: "Monthly"},
	}
	if err := db.Create(&lanes).Error; err != nil {
		log.Fatalf("seed: create lanes failed: %v", err)
	}
	log.Printf("Inserted %d lane history rows.", len(lanes))
}
