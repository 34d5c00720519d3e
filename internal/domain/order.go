package domain

import "time"

// Order statuses as assigned by the external inventory service. This
// service only ever submits orders as pending; the rest of the lifecycle
// belongs to the inventory side and is mirrored read-only.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// PaymentMethodCOD is the only supported payment method. It is fixed in
// every payload for schema compatibility with the inventory service.
const PaymentMethodCOD = "cod"

// ConfirmedOrder is the local mirror of an order the inventory service
// accepted, kept so the confirmation view can be re-rendered later.
type ConfirmedOrder struct {
	Code         string
	CustomerName string
	Phone        string
	AltPhone     *string
	Address      string
	ProductCode  string
	ProductName  string
	Quantity     int
	UnitPrice    int
	Subtotal     int
	Discount     int
	FinalTotal   int
	Status       string
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
