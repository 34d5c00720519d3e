package dto

// Wire types shared with the external inventory service. Field names and
// shapes follow its order schema and must not drift.

type OrderCustomer struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	AltPhone string `json:"alt_phone,omitempty"`
	Address  string `json:"address"`
}

type OrderItem struct {
	ProductCode string `json:"productCode"`
	Quantity    int    `json:"quantity"`
	Price       int    `json:"price"`
}

type OrderTotals struct {
	Subtotal int `json:"subtotal"`
	Discount int `json:"discount"`
	Final    int `json:"final"`
}

// OrderPayload is the body POSTed to the inventory service. It is built
// fresh for every submission and never mutated afterwards.
type OrderPayload struct {
	Customer OrderCustomer `json:"customer"`
	Items    []OrderItem   `json:"items"`
	Totals   OrderTotals   `json:"totals"`
	Status   string        `json:"status"`
	Notes    string        `json:"notes,omitempty"`
}

// OrderResponse is the order record the inventory service returns under
// its "data" envelope. Only the fields the confirmation view renders are
// interpreted; everything else is carried opaquely.
type OrderResponse struct {
	Code      string        `json:"code"`
	Customer  OrderCustomer `json:"customer"`
	Items     []OrderItem   `json:"items"`
	Totals    OrderTotals   `json:"totals"`
	Status    string        `json:"status"`
	Notes     string        `json:"notes,omitempty"`
	CreatedAt string        `json:"createdAt,omitempty"`
	UpdatedAt string        `json:"updatedAt,omitempty"`
}
