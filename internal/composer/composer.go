// Package composer drives the multi-step order-creation wizard: per-step
// validation, stop-list editing and assembly of the single creation request.
package composer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"freight_marketplace/internal/client"
)

// Step identifies one wizard step. Navigation is linear; advancing requires
// the current step's validator to pass, going back is always allowed.
type Step int

const (
	StepOrderDetails Step = iota
	StepStops
	StepShipment
	StepReferences
	StepNotes
)

var stepNames = [...]string{"order-details", "stops", "shipment", "references", "notes"}

func (s Step) String() string {
	if s < StepOrderDetails || s > StepNotes {
		return fmt.Sprintf("step(%d)", int(s))
	}
	return stepNames[s]
}

// StopForm is one editable stop row. Sequence numbers are not stored while
// editing; they are assigned from list order at build time.
type StopForm struct {
	StopType              string
	LocationName          string
	Address               string
	City                  string
	State                 string
	Zip                   string
	ScheduledArrivalEarly *time.Time
	ScheduledArrivalLate  *time.Time
}

func emptyStop(stopType string) StopForm {
	return StopForm{StopType: stopType, State: "OH"}
}

// OrderCreator issues the single creation call. *client.Client satisfies it.
type OrderCreator interface {
	CreateOrder(ctx context.Context, req client.OrderCreate) (*client.Order, error)
}

// Composer accumulates wizard state. Not safe for concurrent use; it models
// a single interactive session.
type Composer struct {
	creator OrderCreator

	step Step
	err  string

	customer *client.Customer

	equipmentType string
	contactName   string
	contactNumber string
	email         string

	stops []StopForm

	weightLbs *int
	miles     float64
	rate      float64
	commodity string

	orderReference    string
	billOfLading      string
	shipmentReference string

	notes string
}

// New starts a composer at the order-details step with a pickup and a
// dropoff row.
func New(creator OrderCreator) *Composer {
	return &Composer{
		creator:       creator,
		equipmentType: "Flatbed",
		commodity:     "General Freight",
		stops: []StopForm{
			emptyStop("pickup"),
			emptyStop("dropoff"),
		},
	}
}

// Step returns the current wizard step.
func (c *Composer) Step() Step { return c.step }

// Err returns the pending validation or submission message, empty when none.
func (c *Composer) Err() string { return c.err }

// Stops returns a copy of the current stop rows in list order.
func (c *Composer) Stops() []StopForm {
	out := make([]StopForm, len(c.stops))
	copy(out, c.stops)
	return out
}

// SelectCustomer sets the composer's customer reference; nil clears it.
func (c *Composer) SelectCustomer(customer *client.Customer) {
	c.customer = customer
}

// Customer returns the selected customer, nil when none.
func (c *Composer) Customer() *client.Customer { return c.customer }

// SetEquipmentType sets the trailer/equipment category.
func (c *Composer) SetEquipmentType(v string) { c.equipmentType = v }

// SetContact records the order-level contact fields.
func (c *Composer) SetContact(name, number, email string) {
	c.contactName = name
	c.contactNumber = number
	c.email = email
}

// SetShipment records the freight attributes from the shipment step.
func (c *Composer) SetShipment(weightLbs *int, miles, rate float64, commodity string) {
	c.weightLbs = weightLbs
	c.miles = miles
	c.rate = rate
	if commodity != "" {
		c.commodity = commodity
	}
}

// SetReferences records the optional order identifiers.
func (c *Composer) SetReferences(orderRef, billOfLading, shipmentRef string) {
	c.orderReference = orderRef
	c.billOfLading = billOfLading
	c.shipmentReference = shipmentRef
}

// SetNotes records the free-text internal notes.
func (c *Composer) SetNotes(notes string) { c.notes = notes }

// AddStop appends a new intermediate stop immediately before the final
// position, preserving the convention that the last row stays the dropoff.
func (c *Composer) AddStop() {
	at := len(c.stops) - 1
	if at < 1 {
		at = 1
	}
	c.stops = append(c.stops, StopForm{})
	copy(c.stops[at+1:], c.stops[at:])
	c.stops[at] = emptyStop("stop")
}

// RemoveStop deletes the stop at index. No-op when only two stops remain or
// the index is out of range.
func (c *Composer) RemoveStop(index int) {
	if len(c.stops) <= 2 || index < 0 || index >= len(c.stops) {
		return
	}
	c.stops = append(c.stops[:index], c.stops[index+1:]...)
}

// MoveStopUp swaps the stop with its predecessor. No-op at the top.
func (c *Composer) MoveStopUp(index int) {
	if index <= 0 || index >= len(c.stops) {
		return
	}
	c.stops[index-1], c.stops[index] = c.stops[index], c.stops[index-1]
}

// MoveStopDown swaps the stop with its successor. No-op at the bottom.
func (c *Composer) MoveStopDown(index int) {
	if index < 0 || index >= len(c.stops)-1 {
		return
	}
	c.stops[index], c.stops[index+1] = c.stops[index+1], c.stops[index]
}

// UpdateStop applies a field-level edit to the stop at index.
func (c *Composer) UpdateStop(index int, mutate func(*StopForm)) {
	if index < 0 || index >= len(c.stops) {
		return
	}
	mutate(&c.stops[index])
}

func (c *Composer) validateStep(step Step) string {
	switch step {
	case StepOrderDetails:
		if c.customer == nil {
			return "Customer name is required."
		}
	case StepStops:
		if len(c.stops) < 2 {
			return "At least two stops are required."
		}
		hasPickup, hasDropoff := false, false
		for _, s := range c.stops {
			switch s.StopType {
			case "pickup":
				hasPickup = true
			case "dropoff":
				hasDropoff = true
			}
		}
		if !hasPickup {
			return "At least one pickup stop is required."
		}
		if !hasDropoff {
			return "At least one dropoff stop is required."
		}
	}
	// shipment, references, notes: free-form
	return ""
}

// Next validates the current step and advances on success. Returns false
// with Err set when validation fails; false without advancing when already
// at the final step (which is submitted, not advanced past).
func (c *Composer) Next() bool {
	if msg := c.validateStep(c.step); msg != "" {
		c.err = msg
		return false
	}
	c.err = ""
	if c.step >= StepNotes {
		return false
	}
	c.step++
	return true
}

// Back moves one step backward and clears any pending validation error.
func (c *Composer) Back() {
	c.err = ""
	if c.step > StepOrderDetails {
		c.step--
	}
}

// BuildCreateRequest assembles the creation payload from current state:
// 1-based sequences from list order, and a notes field concatenating free
// text with labeled reference and contact lines.
func (c *Composer) BuildCreateRequest() (client.OrderCreate, error) {
	if c.customer == nil {
		return client.OrderCreate{}, errors.New("Customer name is required.")
	}

	stops := make([]client.StopCreate, 0, len(c.stops))
	for i, s := range c.stops {
		stops = append(stops, client.StopCreate{
			StopType:              s.StopType,
			LocationName:          s.LocationName,
			Address:               s.Address,
			City:                  s.City,
			State:                 s.State,
			Zip:                   s.Zip,
			ScheduledArrivalEarly: s.ScheduledArrivalEarly,
			ScheduledArrivalLate:  s.ScheduledArrivalLate,
			Sequence:              i + 1,
		})
	}

	lines := []string{c.notes}
	if c.orderReference != "" {
		lines = append(lines, "OrderRef: "+c.orderReference)
	}
	if c.billOfLading != "" {
		lines = append(lines, "BOL: "+c.billOfLading)
	}
	if c.shipmentReference != "" {
		lines = append(lines, "ShipmentRef: "+c.shipmentReference)
	}
	if c.contactName != "" {
		lines = append(lines, "Contact: "+c.contactName)
	}
	if c.contactNumber != "" {
		lines = append(lines, "Phone: "+c.contactNumber)
	}
	if c.email != "" {
		lines = append(lines, "Email: "+c.email)
	}
	if c.miles > 0 {
		lines = append(lines, fmt.Sprintf("Miles: %g", c.miles))
	}
	if c.rate > 0 {
		lines = append(lines, fmt.Sprintf("Rate: %g", c.rate))
	}
	nonEmpty := lines[:0]
	for _, line := range lines {
		if line != "" {
			nonEmpty = append(nonEmpty, line)
		}
	}

	return client.OrderCreate{
		CustomerID:  c.customer.ID,
		TrailerType: c.equipmentType,
		LoadType:    c.commodity,
		WeightLbs:   c.weightLbs,
		Notes:       strings.Join(nonEmpty, "\n"),
		Stops:       stops,
	}, nil
}

// Submit builds the creation request and issues exactly one create call.
// On failure the wizard stays at the current step with the message in Err,
// so the user can correct and retry. There is no idempotency key: a retry
// after an ambiguous network failure can create a duplicate order.
func (c *Composer) Submit(ctx context.Context) (*client.Order, error) {
	req, err := c.BuildCreateRequest()
	if err != nil {
		c.err = err.Error()
		return nil, err
	}

	order, err := c.creator.CreateOrder(ctx, req)
	if err != nil {
		c.err = err.Error()
		return nil, err
	}
	c.err = ""
	return order, nil
}
