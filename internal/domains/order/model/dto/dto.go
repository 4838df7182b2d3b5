package dto

import (
	"github.com/google/uuid"

	"kanpai/internal/domains/order/model"
	"kanpai/shared"
	gDto "kanpai/shared/dto"
	gModel "kanpai/shared/model"
	"kanpai/shared/timezone"
)

type CreateOrderRequest struct {
	CustomerName    string  `json:"customer_name" validate:"required,max=255"`
	CustomerEmail   string  `json:"customer_email" validate:"required,email,max=255"`
	CustomerPhone   string  `json:"customer_phone" validate:"omitempty,max=50"`
	OrderType       string  `json:"order_type" validate:"required,oneof=bar_reservation distillery_tour event_booking"`
	ReferenceID     string  `json:"reference_id" validate:"required,uuid"`
	ReferenceName   string  `json:"reference_name" validate:"omitempty,max=255"`
	BookingDate     string  `json:"booking_date" validate:"required,datetime=2006-01-02"`
	BookingTime     string  `json:"booking_time" validate:"omitempty,datetime=15:04"`
	NumberOfGuests  int     `json:"number_of_guests" validate:"required,gt=0"`
	TotalAmount     float64 `json:"total_amount" validate:"required,gte=0"`
	SpecialRequests string  `json:"special_requests" validate:"omitempty,max=1000"`
}

func (c *CreateOrderRequest) ToModel(user string) model.Order {
	return model.Order{
		ID:              uuid.NewString(),
		CustomerName:    c.CustomerName,
		CustomerEmail:   c.CustomerEmail,
		CustomerPhone:   c.CustomerPhone,
		OrderType:       c.OrderType,
		ReferenceID:     c.ReferenceID,
		ReferenceName:   c.ReferenceName,
		BookingDate:     c.BookingDate,
		BookingTime:     c.BookingTime,
		NumberOfGuests:  c.NumberOfGuests,
		TotalAmount:     c.TotalAmount,
		IsPaid:          false,
		Status:          model.StatusPending,
		SpecialRequests: c.SpecialRequests,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// UpdateOrderRequest patches guest and booking details. Status changes go
// through the dedicated status endpoint.
type UpdateOrderRequest struct {
	CustomerName    string   `db:"customer_name" json:"customer_name" validate:"omitempty,max=255"`
	CustomerEmail   string   `db:"customer_email" json:"customer_email" validate:"omitempty,email,max=255"`
	CustomerPhone   string   `db:"customer_phone" json:"customer_phone" validate:"omitempty,max=50"`
	BookingDate     string   `db:"booking_date" json:"booking_date" validate:"omitempty,datetime=2006-01-02"`
	BookingTime     string   `db:"booking_time" json:"booking_time" validate:"omitempty,datetime=15:04"`
	NumberOfGuests  *int     `db:"number_of_guests" json:"number_of_guests" validate:"omitempty,gt=0"`
	TotalAmount     *float64 `db:"total_amount" json:"total_amount" validate:"omitempty,gte=0"`
	IsPaid          *bool    `db:"is_paid" json:"is_paid" validate:"omitempty"`
	SpecialRequests string   `db:"special_requests" json:"special_requests" validate:"omitempty,max=1000"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

type OrderResponse struct {
	ID              string  `json:"id"`
	CustomerName    string  `json:"customer_name"`
	CustomerEmail   string  `json:"customer_email"`
	CustomerPhone   string  `json:"customer_phone"`
	OrderType       string  `json:"order_type"`
	ReferenceID     string  `json:"reference_id"`
	ReferenceName   string  `json:"reference_name"`
	BookingDate     string  `json:"booking_date"`
	BookingTime     string  `json:"booking_time"`
	NumberOfGuests  int     `json:"number_of_guests"`
	TotalAmount     float64 `json:"total_amount"`
	IsPaid          bool    `json:"is_paid"`
	Status          string  `json:"status"`
	SpecialRequests string  `json:"special_requests"`
	gDto.Metadata
}

func (r *OrderResponse) FromModel(model model.Order) {
	r.ID = model.ID
	r.CustomerName = model.CustomerName
	r.CustomerEmail = model.CustomerEmail
	r.CustomerPhone = model.CustomerPhone
	r.OrderType = model.OrderType
	r.ReferenceID = model.ReferenceID
	r.ReferenceName = model.ReferenceName
	r.BookingDate = model.BookingDate
	r.BookingTime = model.BookingTime
	r.NumberOfGuests = model.NumberOfGuests
	r.TotalAmount = model.TotalAmount
	r.IsPaid = model.IsPaid
	r.Status = model.Status
	r.SpecialRequests = model.SpecialRequests
	r.Metadata.FromModel(model.Metadata)
}

type GetOrdersResponse struct {
	Orders    []OrderResponse `json:"orders"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetOrdersResponse) FromModels(models []model.Order, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Orders = make([]OrderResponse, len(models))
	for i, mod := range models {
		r.Orders[i].FromModel(mod)
	}
}

// OrderStatusEvent is the payload published when an order changes status.
type OrderStatusEvent struct {
	OrderID        string `json:"order_id"`
	OrderType      string `json:"order_type"`
	PreviousStatus string `json:"previous_status"`
	Status         string `json:"status"`
	ChangedBy      string `json:"changed_by"`
	ChangedAt      string `json:"changed_at"`
}
