package dto

// PlaceOrderRequest is the raw order form as posted by the storefront.
type PlaceOrderRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	AltPhone   string `json:"altPhone,omitempty"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`

	ProductCode string `json:"productCode"`
	Quantity    int    `json:"quantity"`

	Notes string `json:"notes,omitempty"`
}
