package model

import "github.com/shopspring/decimal"

// LineItem is a single charged item on a bill or receipt.
// Total is taken as given; it is not checked against Quantity * UnitPrice.
type LineItem struct {
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// InvoiceItem is the invoice flavour of LineItem, whose total travels as total_price.
type InvoiceItem struct {
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}
