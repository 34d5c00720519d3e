package domain

import "strings"

// DefaultCountry is pre-filled into the shipping section of the order form.
const DefaultCountry = "Bangladesh"

// Quantity bounds enforced by the order form's quantity control. The price
// calculator assumes its input already respects them.
const (
	MinQuantity = 1
	MaxQuantity = 5
)

// OrderForm is one customer's in-progress checkout input, exactly as the
// storefront form collects it.
type OrderForm struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	AltPhone   string
	Address    string
	City       string
	PostalCode string
	Country    string

	ProductCode string
	Quantity    int

	PaymentMethod string
	Notes         string
}

// FormFieldOrder lists the validated fields in the order they appear on
// the form. Validation details are reported in this order so the client
// can scroll to and focus the first invalid field.
var FormFieldOrder = []string{
	"firstName",
	"lastName",
	"email",
	"phone",
	"address",
	"city",
	"postalCode",
	"country",
}

// Normalize trims identity and shipping fields and applies defaults for
// country and payment method. Quantity and product selection are left
// untouched; the binding layer owns their bounds.
func (f OrderForm) Normalize() OrderForm {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.AltPhone = strings.TrimSpace(f.AltPhone)
	f.Address = strings.TrimSpace(f.Address)
	f.City = strings.TrimSpace(f.City)
	f.PostalCode = strings.TrimSpace(f.PostalCode)
	f.Country = strings.TrimSpace(f.Country)
	f.Notes = strings.TrimSpace(f.Notes)

	if f.Country == "" {
		f.Country = DefaultCountry
	}
	f.PaymentMethod = PaymentMethodCOD

	return f
}

// CustomerName is the concatenated name used in the order payload.
func (f OrderForm) CustomerName() string {
	return f.FirstName + " " + f.LastName
}

// ShippingAddress is the single concatenated address string the inventory
// service expects.
func (f OrderForm) ShippingAddress() string {
	return strings.Join([]string{f.Address, f.City, f.PostalCode, f.Country}, ", ")
}
