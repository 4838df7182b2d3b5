package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kanpai/internal/domains/order/model"
	"kanpai/internal/domains/order/model/dto"
)

func TestCreateOrderRequestToModel(t *testing.T) {
	req := dto.CreateOrderRequest{
		CustomerName:   "Kenji Sato",
		CustomerEmail:  "kenji@example.com",
		OrderType:      model.OrderTypeBarReservation,
		ReferenceID:    "bar-id",
		ReferenceName:  "Bar Trench",
		BookingDate:    "2026-10-01",
		BookingTime:    "19:00",
		NumberOfGuests: 2,
		TotalAmount:    80,
	}

	order := req.ToModel("guest")

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, model.StatusPending, order.Status)
	assert.False(t, order.IsPaid)
	assert.Equal(t, req.CustomerName, order.CustomerName)
	assert.Equal(t, req.OrderType, order.OrderType)
	assert.Equal(t, "guest", order.CreatedBy)
	assert.Equal(t, "guest", order.ModifiedBy)
	assert.False(t, order.CreatedAt.IsZero())
}
