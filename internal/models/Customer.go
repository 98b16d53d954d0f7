package models

import (
	"gorm.io/gorm"
)

// Customer is read-only reference data selected when composing an order.
type Customer struct {
	gorm.Model

	Name      string `json:"name" binding:"required" gorm:"size:255;index"`
	MCNumber  string `json:"mc_number" gorm:"column:mc_number;size:64"`
	DOTNumber string `json:"dot_number" gorm:"column:dot_number;size:64"`
	Address   string `json:"address" gorm:"size:512"`
	City      string `json:"city" gorm:"size:128"`
	State     string `json:"state" gorm:"size:32"`
	Zip       string `json:"zip" gorm:"size:32"`
	Phone     string `json:"phone" gorm:"size:64"`
	Email     string `json:"email" gorm:"size:255"`

	// Associations
	Orders []Order `gorm:"foreignKey:CustomerID" json:"orders,omitempty"`
}
