package models

import "time"

// LineItem is one row of an estimate or invoice. Descriptions are free
// text; the phase package classifies them into construction phases.
type LineItem struct {
	ID          string  `json:"id,omitempty"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit,omitempty"`
	Rate        float64 `json:"rate"`
}

// Total is the extended amount for the line.
func (li LineItem) Total() float64 {
	return li.Quantity * li.Rate
}

// Estimate is a priced collection of line items for a job.
type Estimate struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Client    string     `json:"client,omitempty"`
	Items     []LineItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
}

// Subtotal sums the line totals.
func (e Estimate) Subtotal() float64 {
	var sum float64
	for _, li := range e.Items {
		sum += li.Total()
	}
	return sum
}
