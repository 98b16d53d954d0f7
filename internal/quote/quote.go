// Package quote derives a customer-facing freight quote from mileage cost,
// accessorial charges and a margin setting. The computation is pure and
// re-derived on every input change.
package quote

// MarginMode selects how the margin value is applied.
type MarginMode string

const (
	// MarginPercentage applies the value as a percentage of the subtotal
	// (base cost plus accessorials).
	MarginPercentage MarginMode = "percentage"
	// MarginFlat adds the value as-is.
	MarginFlat MarginMode = "flat"
)

// Accessory is an extra charge (detention, lumper fee, ...) added atop the
// base mileage cost. Negative amounts are accepted.
type Accessory struct {
	Name   string
	Amount float64
}

// Margin is the markup setting: a mode plus a numeric value.
type Margin struct {
	Mode  MarginMode
	Value float64
}

// Input holds the calculator inputs. Miles defaults to the order's known
// total distance when the caller has one.
type Input struct {
	RatePerMile float64
	Miles       float64
	Accessories []Accessory
	Margin      Margin
}

// Breakdown is the derived quote.
type Breakdown struct {
	BaseCost       float64
	AccessoryTotal float64
	MarginAmount   float64
	Total          float64
}

// Calculate derives the quote breakdown. Unrecognized margin modes are
// treated as flat.
func Calculate(in Input) Breakdown {
	base := in.RatePerMile * in.Miles

	accessoryTotal := 0.0
	for _, a := range in.Accessories {
		accessoryTotal += a.Amount
	}

	marginAmount := in.Margin.Value
	if in.Margin.Mode == MarginPercentage {
		marginAmount = (base + accessoryTotal) * in.Margin.Value / 100
	}

	return Breakdown{
		BaseCost:       base,
		AccessoryTotal: accessoryTotal,
		MarginAmount:   marginAmount,
		Total:          base + accessoryTotal + marginAmount,
	}
}
