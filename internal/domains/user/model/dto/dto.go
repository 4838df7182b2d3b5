package dto

import (
	"kanpai/internal/domains/user/model"
	"kanpai/shared"
	"kanpai/shared/constant"
	gDto "kanpai/shared/dto"
)

type UpdateUserRequest struct {
	FirstName string `db:"first_name" json:"first_name" validate:"omitempty,max=255"`
	LastName  string `db:"last_name" json:"last_name" validate:"omitempty,max=255"`
	Role      string `db:"role" json:"role" validate:"omitempty,oneof=admin bar distillery tour_operator event_host"`
	Active    *bool  `db:"active" json:"active" validate:"omitempty"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	Active    bool   `json:"active"`
	LastLogin string `json:"last_login,omitempty"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Role = model.Role
	r.Active = model.Active

	if model.LastLogin.Valid {
		r.LastLogin = model.LastLogin.Time.Format(constant.DateFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
