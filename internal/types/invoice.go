package types

import "encoding/json"

// Invoice is the structured model behind the invoice template. Monetary
// totals are trusted verbatim; the renderer never recomputes them.
type Invoice struct {
	InvoiceNumber string     `json:"invoice_number"`
	Date          string     `json:"date"`
	DueDate       string     `json:"due_date"`
	From          Party      `json:"from"`
	To            Party      `json:"to"`
	Items         []LineItem `json:"items"`
	SubTotal      float64    `json:"sub_total"`
	Tax           float64    `json:"tax"`
	Discount      float64    `json:"discount"`
	Total         float64    `json:"total"`
	Notes         string     `json:"notes"`
}

// Party identifies either side of an invoice. A party may carry a company
// name, a person name, or both.
type Party struct {
	Company string `json:"company,omitempty"`
	Name    string `json:"name,omitempty"`
	Address string `json:"address,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// LineItem is one billed row. Quantity is kept as a json.Number so an absent
// quantity displays as empty rather than zero.
type LineItem struct {
	Description string      `json:"description"`
	Quantity    json.Number `json:"quantity,omitempty"`
	UnitPrice   float64     `json:"unit_price"`
	Total       float64     `json:"total"`
}
