package order

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of an order.
type Status string

const (
	StatusNew        Status = "NEW"
	StatusCooking    Status = "COOKING"
	StatusInDelivery Status = "IN_DELIVERY"
	StatusFinished   Status = "FINISHED"
	StatusCanceled   Status = "CANCELED"
)

// PaymentMethod indicates how the customer pays.
type PaymentMethod string

const (
	PaymentSpecify      PaymentMethod = "SPECIFY"
	PaymentCash         PaymentMethod = "CASH"
	PaymentCardOnline   PaymentMethod = "CARD_ONLINE"
	PaymentCardDelivery PaymentMethod = "CARD_DELIVERY"
	PaymentCrypto       PaymentMethod = "CRYPTO"
)

// Order is a customer's delivery order.
type Order struct {
	ID            uuid.UUID     `json:"id"`
	Firstname     string        `json:"firstname"`
	Lastname      string        `json:"lastname"`
	Phonenumber   string        `json:"phonenumber"`
	Address       string        `json:"address"`
	Status        Status        `json:"status"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Comment       string        `json:"comment,omitempty"`
	RestaurantID  *uuid.UUID    `json:"restaurant_id,omitempty"` // nil until a cook is assigned
	RegisteredAt  time.Time     `json:"registered_at"`
	CalledAt      *time.Time    `json:"called_at,omitempty"`
	DeliveredAt   *time.Time    `json:"delivered_at,omitempty"`
	Lines         []*Line       `json:"lines,omitempty"`
}

// Line is a single position within an order. FixedPrice is the product
// price captured at order time.
type Line struct {
	ID         uuid.UUID `json:"id"`
	OrderID    uuid.UUID `json:"order_id"`
	ProductID  uuid.UUID `json:"product_id"`
	Quantity   int       `json:"quantity"`
	FixedPrice float64   `json:"fixed_price"`
}

// UpdateStatusRequest is the payload for advancing an order's status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
