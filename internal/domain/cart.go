package domain

// LineKey identifies a cart line. Size and Color use the empty string as the
// explicit "no variant" value, so two lines for the same product in different
// sizes or colors are distinct entries.
type LineKey struct {
	ProductID string
	Size      string
	Color     string
}

// CartLine is one cart entry. Name, Image and Price are denormalized copies
// captured at add time so the cart renders without a catalog lookup.
type CartLine struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Image     string  `json:"image,omitempty"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size,omitempty"`
	Color     string  `json:"color,omitempty"`
	ColorName string  `json:"colorName,omitempty"`
}

// Key returns the normalized identity of the line.
func (l CartLine) Key() LineKey {
	return LineKey{ProductID: l.ProductID, Size: l.Size, Color: l.Color}
}

// Subtotal is unit price times quantity.
func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}
