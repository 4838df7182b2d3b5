package model

import (
	"kanpai/shared/model"
)

const (
	TableName  = "orders"
	EntityName = "order"

	FieldID              = "id"
	FieldCustomerName    = "customer_name"
	FieldCustomerEmail   = "customer_email"
	FieldCustomerPhone   = "customer_phone"
	FieldOrderType       = "order_type"
	FieldReferenceID     = "reference_id"
	FieldReferenceName   = "reference_name"
	FieldBookingDate     = "booking_date"
	FieldBookingTime     = "booking_time"
	FieldNumberOfGuests  = "number_of_guests"
	FieldTotalAmount     = "total_amount"
	FieldIsPaid          = "is_paid"
	FieldStatus          = "status"
	FieldSpecialRequests = "special_requests"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

const (
	OrderTypeBarReservation = "bar_reservation"
	OrderTypeDistilleryTour = "distillery_tour"
	OrderTypeEventBooking   = "event_booking"
)

// allowedTransitions maps each status to the statuses it may move to.
// Completed and cancelled are terminal.
var allowedTransitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusCompleted, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

type Order struct {
	ID              string  `db:"id"`
	CustomerName    string  `db:"customer_name"`
	CustomerEmail   string  `db:"customer_email"`
	CustomerPhone   string  `db:"customer_phone"`
	OrderType       string  `db:"order_type"`
	ReferenceID     string  `db:"reference_id"`
	ReferenceName   string  `db:"reference_name"`
	BookingDate     string  `db:"booking_date"`
	BookingTime     string  `db:"booking_time"`
	NumberOfGuests  int     `db:"number_of_guests"`
	TotalAmount     float64 `db:"total_amount"`
	IsPaid          bool    `db:"is_paid"`
	Status          string  `db:"status"`
	SpecialRequests string  `db:"special_requests"`
	model.Metadata
}

// CanTransitionTo reports whether the order status may move to the target status.
func (o *Order) CanTransitionTo(target string) bool {
	for _, allowed := range allowedTransitions[o.Status] {
		if allowed == target {
			return true
		}
	}

	return false
}
