package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"kanpai/config"
	"kanpai/infras/kafka"
	kafkaMocks "kanpai/infras/kafka/mocks"
	"kanpai/infras/otel/mocks"
	orderMocks "kanpai/internal/domains/order/mocks"
	"kanpai/internal/domains/order/model"
	"kanpai/internal/domains/order/model/dto"
	"kanpai/internal/domains/order/service"
	cacheMocks "kanpai/shared/cache/mocks"
	"kanpai/shared/constant"
	"kanpai/shared/failure"
	gModel "kanpai/shared/model"
	"kanpai/shared/timezone"
)

func newOrder(id, status string) model.Order {
	return model.Order{
		ID:             id,
		CustomerName:   "Kenji Sato",
		CustomerEmail:  "kenji@example.com",
		OrderType:      model.OrderTypeBarReservation,
		ReferenceID:    "bar-id",
		ReferenceName:  "Bar Trench",
		BookingDate:    "2026-10-01",
		BookingTime:    "19:00",
		NumberOfGuests: 2,
		Status:         status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "guest",
			ModifiedBy: "guest",
		},
	}
}

func TestOrderService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := orderMocks.NewMockOrder(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockKafka, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateOrderRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateOrderRequest{
				CustomerName:   "Kenji Sato",
				CustomerEmail:  "kenji@example.com",
				OrderType:      model.OrderTypeBarReservation,
				ReferenceID:    "bar-id",
				BookingDate:    "2026-10-01",
				BookingTime:    "19:00",
				NumberOfGuests: 2,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "repository error",
			req: dto.CreateOrderRequest{
				CustomerName:   "Kenji Sato",
				CustomerEmail:  "kenji@example.com",
				OrderType:      model.OrderTypeBarReservation,
				ReferenceID:    "bar-id",
				BookingDate:    "2026-10-01",
				NumberOfGuests: 2,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := orderMocks.NewMockOrder(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockKafka, mockOtel)

	tests := []struct {
		name         string
		id           string
		target       string
		setupMock    func()
		wantErr      bool
		wantConflict bool
	}{
		{
			name:   "pending to confirmed",
			id:     "test-id",
			target: model.StatusConfirmed,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newOrder("test-id", model.StatusPending), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name:   "pending to cancelled",
			id:     "test-id",
			target: model.StatusCancelled,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newOrder("test-id", model.StatusPending), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name:   "confirmed to pending is rejected",
			id:     "test-id",
			target: model.StatusPending,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newOrder("test-id", model.StatusConfirmed), nil)
			},
			wantErr:      true,
			wantConflict: true,
		},
		{
			name:   "completed is terminal",
			id:     "test-id",
			target: model.StatusConfirmed,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newOrder("test-id", model.StatusCompleted), nil)
			},
			wantErr:      true,
			wantConflict: true,
		},
		{
			name:   "cancelled is terminal",
			id:     "test-id",
			target: model.StatusConfirmed,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newOrder("test-id", model.StatusCancelled), nil)
			},
			wantErr:      true,
			wantConflict: true,
		},
		{
			name:   "order not found",
			id:     "nonexistent-id",
			target: model.StatusConfirmed,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Order{}, nil)
			},
			wantErr: true,
		},
		{
			name:   "update error",
			id:     "test-id",
			target: model.StatusConfirmed,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newOrder("test-id", model.StatusPending), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")
			err := svc.UpdateStatus(ctx, dto.UpdateOrderStatusRequest{Status: tt.target}, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantConflict {
					assert.Equal(t, 409, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOrderService_UpdateStatus_PublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := orderMocks.NewMockOrder(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.Kafka.Enable = true
	cfg.External.Kafka.Topic = "order-status"

	svc := service.New(mockRepo, cfg, mockCache, mockKafka, mockOtel)

	published := make(chan struct{})

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(newOrder("test-id", model.StatusPending), nil)

	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	mockKafka.EXPECT().
		SendMessages(gomock.Any(), "order-status", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ ...kafka.Message) error {
			close(published)
			return nil
		})

	mockCache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")
	err := svc.UpdateStatus(ctx, dto.UpdateOrderStatusRequest{Status: model.StatusConfirmed}, "test-id")
	assert.NoError(t, err)

	<-published
}

func TestOrderService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := orderMocks.NewMockOrder(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockKafka, mockOtel)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful deletion",
			id:   "test-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "order not found",
			id:   "nonexistent-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
