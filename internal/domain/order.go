package domain

import "time"

// OrderLine is a cart line frozen at checkout time. Later product edits must
// not retroactively alter historical orders, so everything needed to render
// the line is copied here.
type OrderLine struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size,omitempty"`
	Color     string  `json:"color,omitempty"`
	ColorName string  `json:"colorName,omitempty"`
	Image     string  `json:"image,omitempty"`
}

// ShippingInfo is the shipping snapshot captured from the checkout form.
type ShippingInfo struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	City          string `json:"city"`
	Region        string `json:"region,omitempty"`
	PostalCode    string `json:"postalCode,omitempty"`
	Country       string `json:"country"`
	Phone         string `json:"phone"`
	PaymentMethod string `json:"paymentMethod"`
}

// Order is immutable once created. Corrections are modeled as compensating
// entries, never as updates in place.
type Order struct {
	ID       string       `json:"id"`
	Date     time.Time    `json:"date"`
	Items    []OrderLine  `json:"items"`
	Total    float64      `json:"total"`
	Shipping ShippingInfo `json:"shipping"`
}
