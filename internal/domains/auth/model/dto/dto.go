package dto

import (
	"github.com/google/uuid"

	"kanpai/infras/jwt"
	userModel "kanpai/internal/domains/user/model"
	userDto "kanpai/internal/domains/user/model/dto"
	gModel "kanpai/shared/model"
	"kanpai/shared/timezone"
)

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	FirstName string `json:"first_name" validate:"required,max=255"`
	LastName  string `json:"last_name" validate:"omitempty,max=255"`
	Role      string `json:"role" validate:"required,oneof=admin bar distillery tour_operator event_host"`
}

func (r *RegisterRequest) ToModel(hashedPassword string) userModel.User {
	id := uuid.NewString()

	return userModel.User{
		ID:        id,
		Email:     r.Email,
		Password:  hashedPassword,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Role:      r.Role,
		Active:    true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  id,
			ModifiedBy: id,
		},
	}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72,nefield=CurrentPassword"`
}

type AuthResponse struct {
	User   userDto.UserResponse `json:"user"`
	Tokens jwt.TokenPair        `json:"tokens"`
}

func (r *AuthResponse) FromModel(model userModel.User, tokens *jwt.TokenPair) {
	r.User.FromModel(model)

	if tokens != nil {
		r.Tokens = *tokens
	}
}

type TokensResponse struct {
	Tokens jwt.TokenPair `json:"tokens"`
}
