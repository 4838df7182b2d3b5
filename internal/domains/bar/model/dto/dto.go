package dto

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"kanpai/internal/domains/bar/model"
	"kanpai/shared"
	gDto "kanpai/shared/dto"
	gModel "kanpai/shared/model"
	"kanpai/shared/timezone"
)

type CreateBarRequest struct {
	Name        string   `json:"name" validate:"required,max=255"`
	Type        string   `json:"type" validate:"required,max=100"`
	Location    string   `json:"location" validate:"required,max=255"`
	Image       string   `json:"image" validate:"omitempty,max=2048"`
	PriceRange  string   `json:"price_range" validate:"omitempty,max=50"`
	Specialties []string `json:"specialties" validate:"omitempty,dive,max=100"`
	Description string   `json:"description" validate:"omitempty"`
	Address     string   `json:"address" validate:"omitempty,max=500"`
	Phone       string   `json:"phone" validate:"omitempty,max=50"`
	Website     string   `json:"website" validate:"omitempty,max=2048"`
	IsOpen      *bool    `json:"is_open" validate:"omitempty"`
}

func (c *CreateBarRequest) ToModel(user string) model.Bar {
	isOpen := true
	if c.IsOpen != nil {
		isOpen = *c.IsOpen
	}

	return model.Bar{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Type:        c.Type,
		Location:    c.Location,
		Image:       c.Image,
		PriceRange:  c.PriceRange,
		Specialties: pq.StringArray(c.Specialties),
		Description: c.Description,
		Address:     c.Address,
		Phone:       c.Phone,
		Website:     c.Website,
		IsOpen:      isOpen,
		IsActive:    true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateBarRequest struct {
	Name        string         `db:"name" json:"name" validate:"omitempty,max=255"`
	Type        string         `db:"type" json:"type" validate:"omitempty,max=100"`
	Location    string         `db:"location" json:"location" validate:"omitempty,max=255"`
	Image       string         `db:"image" json:"image" validate:"omitempty,max=2048"`
	PriceRange  string         `db:"price_range" json:"price_range" validate:"omitempty,max=50"`
	Specialties pq.StringArray `db:"specialties" json:"specialties" validate:"omitempty,dive,max=100"`
	Description string         `db:"description" json:"description" validate:"omitempty"`
	Address     string         `db:"address" json:"address" validate:"omitempty,max=500"`
	Phone       string         `db:"phone" json:"phone" validate:"omitempty,max=50"`
	Website     string         `db:"website" json:"website" validate:"omitempty,max=2048"`
	Rating      *float64       `db:"rating" json:"rating" validate:"omitempty,gte=0,lte=5"`
	Reviews     *int           `db:"reviews" json:"reviews" validate:"omitempty,gte=0"`
	IsOpen      *bool          `db:"is_open" json:"is_open" validate:"omitempty"`
	IsActive    *bool          `db:"is_active" json:"is_active" validate:"omitempty"`
}

type BarResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Location    string   `json:"location"`
	Image       string   `json:"image"`
	PriceRange  string   `json:"price_range"`
	Specialties []string `json:"specialties"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	Phone       string   `json:"phone"`
	Website     string   `json:"website"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	IsOpen      bool     `json:"is_open"`
	IsActive    bool     `json:"is_active"`
	gDto.Metadata
}

func (r *BarResponse) FromModel(model model.Bar) {
	r.ID = model.ID
	r.Name = model.Name
	r.Type = model.Type
	r.Location = model.Location
	r.Image = model.Image
	r.PriceRange = model.PriceRange
	r.Specialties = model.Specialties
	r.Description = model.Description
	r.Address = model.Address
	r.Phone = model.Phone
	r.Website = model.Website
	r.Rating = model.Rating
	r.Reviews = model.Reviews
	r.IsOpen = model.IsOpen
	r.IsActive = model.IsActive
	r.Metadata.FromModel(model.Metadata)
}

type GetBarsResponse struct {
	Bars      []BarResponse `json:"bars"`
	TotalPage int           `json:"total_page"`
	TotalData int           `json:"total_data"`
}

func (r *GetBarsResponse) FromModels(models []model.Bar, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bars = make([]BarResponse, len(models))
	for i, mod := range models {
		r.Bars[i].FromModel(mod)
	}
}
