package service_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"kanpai/config"
	kafkaMocks "kanpai/infras/kafka/mocks"
	"kanpai/infras/otel/mocks"
	"kanpai/infras/postgres"
	s3Mocks "kanpai/infras/s3/mocks"
	registrationMocks "kanpai/internal/domains/registration/mocks"
	"kanpai/internal/domains/registration/model/dto"
	"kanpai/internal/domains/registration/service"
	userMocks "kanpai/internal/domains/user/mocks"
	"kanpai/shared/constant"
	"kanpai/shared/failure"
)

func newService(t *testing.T) (service.Registration, *userMocks.MockUser) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockBusinesses := registrationMocks.NewMockBusiness(ctrl)
	mockExperiences := registrationMocks.NewMockExperience(ctrl)
	mockUsers := userMocks.NewMockUser(ctrl)
	mockStorage := s3Mocks.NewMockS3(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Registration.TemporaryPassword = "temp123"

	svc := service.New(
		mockBusinesses,
		mockExperiences,
		mockUsers,
		&postgres.Connection{},
		cfg,
		mockStorage,
		mockKafka,
		mockOtel,
	)

	return svc, mockUsers
}

func TestRegistrationService_ValidateStep(t *testing.T) {
	svc, _ := newService(t)

	// Small but syntactically valid PNG data URL.
	pngDataURL := "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg=="

	tests := []struct {
		name    string
		step    int
		payload map[string]any
		wantErr bool
	}{
		{
			name: "step 1 valid business details",
			step: 1,
			payload: map[string]any{
				"step":          1,
				"business_name": "Tokyo Whisky Bar",
				"business_type": "Whisky Bar",
				"city":          "Tokyo",
				"country":       "Japan",
				"contact_name":  "Jane Doe",
				"contact_email": "jane@example.com",
			},
			wantErr: false,
		},
		{
			name: "step 1 missing contact email",
			step: 1,
			payload: map[string]any{
				"step":          1,
				"business_name": "Tokyo Whisky Bar",
				"business_type": "Whisky Bar",
				"city":          "Tokyo",
				"country":       "Japan",
				"contact_name":  "Jane Doe",
			},
			wantErr: true,
		},
		{
			name: "step 2 valid profile",
			step: 2,
			payload: map[string]any{
				"step":        2,
				"description": "An intimate bar with over 300 Japanese whiskies.",
				"logo":        pngDataURL,
			},
			wantErr: false,
		},
		{
			name: "step 2 description too long",
			step: 2,
			payload: map[string]any{
				"step":        2,
				"description": strings.Repeat("a", 301),
			},
			wantErr: true,
		},
		{
			name: "step 2 unsupported logo type",
			step: 2,
			payload: map[string]any{
				"step":        2,
				"description": "An intimate bar.",
				"logo":        "data:image/gif;base64,R0lGODlhAQABAAAAACw=",
			},
			wantErr: true,
		},
		{
			name: "step 2 too many venue images",
			step: 2,
			payload: map[string]any{
				"step":         2,
				"description":  "An intimate bar.",
				"venue_images": []string{pngDataURL, pngDataURL, pngDataURL, pngDataURL},
			},
			wantErr: true,
		},
		{
			name: "step 3 valid experience",
			step: 3,
			payload: map[string]any{
				"step":              3,
				"title":             "Whisky Tasting Flight",
				"type":              "Tasting",
				"description":       "A guided flight of five rare whiskies.",
				"duration":          "90 minutes",
				"max_guests":        8,
				"price":             120.0,
				"currency":          "JPY",
				"start_time":        "19:00",
				"availability_days": []string{"Friday", "Saturday"},
			},
			wantErr: false,
		},
		{
			name: "step 3 empty availability days",
			step: 3,
			payload: map[string]any{
				"step":              3,
				"title":             "Whisky Tasting Flight",
				"type":              "Tasting",
				"description":       "A guided flight of five rare whiskies.",
				"duration":          "90 minutes",
				"max_guests":        8,
				"price":             120.0,
				"currency":          "JPY",
				"start_time":        "19:00",
				"availability_days": []string{},
			},
			wantErr: true,
		},
		{
			name: "step 3 invalid start time",
			step: 3,
			payload: map[string]any{
				"step":              3,
				"title":             "Whisky Tasting Flight",
				"type":              "Tasting",
				"description":       "A guided flight of five rare whiskies.",
				"duration":          "90 minutes",
				"max_guests":        8,
				"price":             120.0,
				"currency":          "JPY",
				"start_time":        "7pm",
				"availability_days": []string{"Friday"},
			},
			wantErr: true,
		},
		{
			name: "step 4 terms accepted",
			step: 4,
			payload: map[string]any{
				"step":           4,
				"terms_accepted": true,
			},
			wantErr: false,
		},
		{
			name: "step 4 terms not accepted",
			step: 4,
			payload: map[string]any{
				"step":           4,
				"terms_accepted": false,
			},
			wantErr: true,
		},
		{
			name: "step out of range",
			step: 5,
			payload: map[string]any{
				"step": 5,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := json.Marshal(tt.payload)
			assert.NoError(t, err)

			err = svc.ValidateStep(context.Background(), tt.step, payload)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, 400, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func validRegisterRequest() dto.RegisterBusinessRequest {
	return dto.RegisterBusinessRequest{
		BusinessName:          "Tokyo Whisky Bar",
		BusinessType:          "Whisky Bar",
		City:                  "Tokyo",
		Country:               "Japan",
		ContactName:           "Jane Doe",
		ContactEmail:          "jane@example.com",
		Description:           "An intimate bar with over 300 Japanese whiskies.",
		TermsAccepted:         true,
		ExperienceTitle:       "Whisky Tasting Flight",
		ExperienceType:        "Tasting",
		ExperienceDescription: "A guided flight of five rare whiskies.",
		Duration:              "90 minutes",
		MaxGuests:             8,
		Price:                 120,
		Currency:              "JPY",
		StartTime:             "19:00",
		AvailabilityDays:      []string{"Friday", "Saturday"},
	}
}

func TestRegistrationService_Register_Validation(t *testing.T) {
	svc, _ := newService(t)

	tests := []struct {
		name   string
		mutate func(req *dto.RegisterBusinessRequest)
	}{
		{
			name: "missing business name",
			mutate: func(req *dto.RegisterBusinessRequest) {
				req.BusinessName = constant.Empty
			},
		},
		{
			name: "description too long",
			mutate: func(req *dto.RegisterBusinessRequest) {
				req.Description = strings.Repeat("a", 301)
			},
		},
		{
			name: "terms not accepted",
			mutate: func(req *dto.RegisterBusinessRequest) {
				req.TermsAccepted = false
			},
		},
		{
			name: "empty availability days",
			mutate: func(req *dto.RegisterBusinessRequest) {
				req.AvailabilityDays = nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest()
			tt.mutate(&req)

			_, err := svc.Register(context.Background(), req)

			assert.Error(t, err)
			assert.Equal(t, 400, failure.GetCode(err))
		})
	}
}

func TestRegistrationService_Register_DuplicateEmail(t *testing.T) {
	svc, mockUsers := newService(t)

	mockUsers.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)

	_, err := svc.Register(context.Background(), validRegisterRequest())

	assert.Error(t, err)
	assert.Equal(t, 409, failure.GetCode(err))
}

func TestRegisterBusinessRequest_DeriveRole(t *testing.T) {
	tests := []struct {
		businessType string
		want         string
	}{
		{"Craft Distillery", constant.RoleDistillery},
		{"Whisky Bar", constant.RoleBar},
		{"Tour Operator", constant.RoleEventHost},
		{"Event Space", constant.RoleEventHost},
	}

	for _, tt := range tests {
		t.Run(tt.businessType, func(t *testing.T) {
			req := dto.RegisterBusinessRequest{BusinessType: tt.businessType}

			assert.Equal(t, tt.want, req.DeriveRole())
		})
	}
}
