package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"freight_marketplace/internal/config"
	"freight_marketplace/internal/models"
)

// CustomerListItem is one search candidate in the customer picker.
type CustomerListItem struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	MCNumber string `json:"mc_number,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
}

// SearchCustomers lists customers, optionally filtered by name. An empty
// query returns all customers, name ascending, capped at 100.
func SearchCustomers(c *gin.Context) {
	db := config.DB.Model(&models.Customer{})
	if query := strings.TrimSpace(c.Query("query")); query != "" {
		db = db.Where("name ILIKE ?", "%"+query+"%")
	}

	var customers []models.Customer
	if err := db.Order("name ASC").Limit(100).Find(&customers).Error; err != nil {
		logrus.WithError(err).Error("SearchCustomers: database error")
		detail(c, http.StatusInternalServerError, "Search customers failed: "+err.Error())
		return
	}

	items := make([]CustomerListItem, 0, len(customers))
	for _, cust := range customers {
		items = append(items, CustomerListItem{
			ID:       cust.ID,
			Name:     cust.Name,
			MCNumber: cust.MCNumber,
			City:     cust.City,
			State:    cust.State,
		})
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
