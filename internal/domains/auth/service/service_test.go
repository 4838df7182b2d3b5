package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"kanpai/config"
	"kanpai/infras/jwt"
	jwtMocks "kanpai/infras/jwt/mocks"
	"kanpai/infras/otel/mocks"
	"kanpai/internal/domains/auth/model/dto"
	"kanpai/internal/domains/auth/service"
	userMocks "kanpai/internal/domains/user/mocks"
	"kanpai/internal/domains/user/model"
	"kanpai/shared/constant"
	"kanpai/shared/failure"
	gModel "kanpai/shared/model"
	"kanpai/shared/password"
	"kanpai/shared/timezone"
)

func newUser(id, email, plainPassword string, active bool) model.User {
	hashed, _ := password.Hash(plainPassword)

	return model.User{
		ID:        id,
		Email:     email,
		Password:  hashed,
		FirstName: "Test",
		LastName:  "User",
		Role:      constant.RoleAdmin,
		Active:    active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  id,
			ModifiedBy: id,
		},
	}
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockUsers, cfg, mockJWT, mockOtel)

	tokens := &jwt.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		TokenType:    "Bearer",
	}

	tests := []struct {
		name      string
		req       dto.RegisterRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful registration",
			req: dto.RegisterRequest{
				Email:     "new@example.com",
				Password:  "supersecret",
				FirstName: "New",
				Role:      constant.RoleAdmin,
			},
			setupMock: func() {
				mockUsers.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockUsers.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockJWT.EXPECT().
					GenerateTokenPair(gomock.Any(), "new@example.com", constant.RoleAdmin).
					Return(tokens, nil)
			},
			wantErr: false,
		},
		{
			name: "email already registered",
			req: dto.RegisterRequest{
				Email:     "taken@example.com",
				Password:  "supersecret",
				FirstName: "New",
				Role:      constant.RoleAdmin,
			},
			setupMock: func() {
				mockUsers.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "exist check error",
			req: dto.RegisterRequest{
				Email:     "new@example.com",
				Password:  "supersecret",
				FirstName: "New",
				Role:      constant.RoleAdmin,
			},
			setupMock: func() {
				mockUsers.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Register(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "access-token", res.Tokens.AccessToken)
				assert.Equal(t, tt.req.Email, res.User.Email)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockUsers, cfg, mockJWT, mockOtel)

	tokens := &jwt.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		TokenType:    "Bearer",
	}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful login",
			req: dto.LoginRequest{
				Email:    "admin@example.com",
				Password: "supersecret",
			},
			setupMock: func() {
				mockUsers.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newUser("user-id", "admin@example.com", "supersecret", true), nil)

				mockJWT.EXPECT().
					GenerateTokenPair("user-id", "admin@example.com", constant.RoleAdmin).
					Return(tokens, nil)

				mockUsers.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "unknown email",
			req: dto.LoginRequest{
				Email:    "nobody@example.com",
				Password: "supersecret",
			},
			setupMock: func() {
				mockUsers.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.User{}, nil)
			},
			wantErr:  true,
			wantCode: 401,
		},
		{
			name: "wrong password",
			req: dto.LoginRequest{
				Email:    "admin@example.com",
				Password: "wrong-password",
			},
			setupMock: func() {
				mockUsers.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newUser("user-id", "admin@example.com", "supersecret", true), nil)
			},
			wantErr:  true,
			wantCode: 401,
		},
		{
			name: "deactivated account",
			req: dto.LoginRequest{
				Email:    "admin@example.com",
				Password: "supersecret",
			},
			setupMock: func() {
				mockUsers.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newUser("user-id", "admin@example.com", "supersecret", false), nil)
			},
			wantErr:  true,
			wantCode: 403,
		},
		{
			name: "repository error",
			req: dto.LoginRequest{
				Email:    "admin@example.com",
				Password: "supersecret",
			},
			setupMock: func() {
				mockUsers.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.User{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "access-token", res.Tokens.AccessToken)
				assert.NotEmpty(t, res.User.LastLogin)
			}
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockUsers, cfg, mockJWT, mockOtel)

	tests := []struct {
		name      string
		req       dto.RefreshTokenRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful refresh",
			req:  dto.RefreshTokenRequest{RefreshToken: "valid-refresh-token"},
			setupMock: func() {
				mockJWT.EXPECT().
					RefreshTokens("valid-refresh-token").
					Return(&jwt.TokenPair{AccessToken: "new-access-token"}, nil)
			},
			wantErr: false,
		},
		{
			name: "invalid refresh token",
			req:  dto.RefreshTokenRequest{RefreshToken: "expired-token"},
			setupMock: func() {
				mockJWT.EXPECT().
					RefreshTokens("expired-token").
					Return(nil, errors.New("token is expired"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.RefreshToken(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, 401, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "new-access-token", res.Tokens.AccessToken)
			}
		})
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockUsers, cfg, mockJWT, mockOtel)

	tests := []struct {
		name      string
		ctx       context.Context
		req       dto.ChangePasswordRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful change",
			ctx:  context.WithValue(context.Background(), constant.ContextKeyUserID, "user-id"),
			req: dto.ChangePasswordRequest{
				CurrentPassword: "supersecret",
				NewPassword:     "evenmoresecret",
			},
			setupMock: func() {
				mockUsers.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newUser("user-id", "admin@example.com", "supersecret", true), nil)

				mockUsers.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "wrong current password",
			ctx:  context.WithValue(context.Background(), constant.ContextKeyUserID, "user-id"),
			req: dto.ChangePasswordRequest{
				CurrentPassword: "wrong-password",
				NewPassword:     "evenmoresecret",
			},
			setupMock: func() {
				mockUsers.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newUser("user-id", "admin@example.com", "supersecret", true), nil)
			},
			wantErr:  true,
			wantCode: 401,
		},
		{
			name: "missing authenticated user",
			ctx:  context.Background(),
			req: dto.ChangePasswordRequest{
				CurrentPassword: "supersecret",
				NewPassword:     "evenmoresecret",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  401,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.ChangePassword(tt.ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
