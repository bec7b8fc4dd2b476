package domain

// UserProfile is the single local profile record used to prefill checkout.
// The password is stored as-is: the login flow is UX gating only, not access
// control.
type UserProfile struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Password   string `json:"password,omitempty"`
	Address    string `json:"address"`
	City       string `json:"city"`
	Region     string `json:"region"`
	PostalCode string `json:"postalcode"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
	Birthday   string `json:"birthday"`
	Gender     string `json:"gender"`
}

// Account is a locally registered credential pair.
type Account struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
