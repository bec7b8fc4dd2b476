package domain

// Review is a customer review attached to a product.
type Review struct {
	Comment string `json:"comment"`
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Date    string `json:"date"`
}

// Color is a purchasable color variant. Images, when present, override the
// product-level image list for that color.
type Color struct {
	Name   string   `json:"name"`
	Value  string   `json:"value"`
	Images []string `json:"images,omitempty"`
}

type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description,omitempty"`
	Images      []string `json:"images"`
	Stock       int      `json:"stock"`
	Rating      float64  `json:"rating"`
	Reviews     []Review `json:"reviews,omitempty"`
	Category    string   `json:"category"`
	Sizes       []string `json:"sizes,omitempty"`
	Colors      []Color  `json:"colors,omitempty"`
}
