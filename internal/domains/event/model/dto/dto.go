package dto

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"kanpai/internal/domains/event/model"
	"kanpai/shared"
	gDto "kanpai/shared/dto"
	gModel "kanpai/shared/model"
	"kanpai/shared/timezone"
)

type CreateEventRequest struct {
	Name            string   `json:"name" validate:"required,max=255"`
	Type            string   `json:"type" validate:"required,max=100"`
	Category        string   `json:"category" validate:"omitempty,max=100"`
	Date            string   `json:"date" validate:"required,datetime=2006-01-02"`
	Time            string   `json:"time" validate:"required,datetime=15:04"`
	Location        string   `json:"location" validate:"required,max=255"`
	Image           string   `json:"image" validate:"omitempty,max=2048"`
	Price           float64  `json:"price" validate:"omitempty,gte=0"`
	Capacity        int      `json:"capacity" validate:"omitempty,gte=0"`
	Description     string   `json:"description" validate:"omitempty"`
	FullDescription string   `json:"full_description" validate:"omitempty"`
	Organizer       string   `json:"organizer" validate:"omitempty,max=255"`
	ContactEmail    string   `json:"contact_email" validate:"omitempty,email"`
	ContactPhone    string   `json:"contact_phone" validate:"omitempty,max=50"`
	Requirements    []string `json:"requirements" validate:"omitempty,dive,max=255"`
	IsFeatured      *bool    `json:"is_featured" validate:"omitempty"`
}

func (c *CreateEventRequest) ToModel(user string) model.Event {
	isFeatured := false
	if c.IsFeatured != nil {
		isFeatured = *c.IsFeatured
	}

	return model.Event{
		ID:              uuid.NewString(),
		Name:            c.Name,
		Type:            c.Type,
		Category:        c.Category,
		Date:            c.Date,
		Time:            c.Time,
		Location:        c.Location,
		Image:           c.Image,
		Price:           c.Price,
		Capacity:        c.Capacity,
		Description:     c.Description,
		FullDescription: c.FullDescription,
		Organizer:       c.Organizer,
		ContactEmail:    c.ContactEmail,
		ContactPhone:    c.ContactPhone,
		Requirements:    pq.StringArray(c.Requirements),
		IsActive:        true,
		IsFeatured:      isFeatured,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateEventRequest struct {
	Name            string         `db:"name" json:"name" validate:"omitempty,max=255"`
	Type            string         `db:"type" json:"type" validate:"omitempty,max=100"`
	Category        string         `db:"category" json:"category" validate:"omitempty,max=100"`
	Date            string         `db:"date" json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time            string         `db:"time" json:"time" validate:"omitempty,datetime=15:04"`
	Location        string         `db:"location" json:"location" validate:"omitempty,max=255"`
	Image           string         `db:"image" json:"image" validate:"omitempty,max=2048"`
	Price           *float64       `db:"price" json:"price" validate:"omitempty,gte=0"`
	Capacity        *int           `db:"capacity" json:"capacity" validate:"omitempty,gte=0"`
	Description     string         `db:"description" json:"description" validate:"omitempty"`
	FullDescription string         `db:"full_description" json:"full_description" validate:"omitempty"`
	Organizer       string         `db:"organizer" json:"organizer" validate:"omitempty,max=255"`
	ContactEmail    string         `db:"contact_email" json:"contact_email" validate:"omitempty,email"`
	ContactPhone    string         `db:"contact_phone" json:"contact_phone" validate:"omitempty,max=50"`
	Requirements    pq.StringArray `db:"requirements" json:"requirements" validate:"omitempty,dive,max=255"`
	IsActive        *bool          `db:"is_active" json:"is_active" validate:"omitempty"`
	IsFeatured      *bool          `db:"is_featured" json:"is_featured" validate:"omitempty"`
}

type EventResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Type            string   `json:"type"`
	Category        string   `json:"category"`
	Date            string   `json:"date"`
	Time            string   `json:"time"`
	Location        string   `json:"location"`
	Image           string   `json:"image"`
	Price           float64  `json:"price"`
	Capacity        int      `json:"capacity"`
	Description     string   `json:"description"`
	FullDescription string   `json:"full_description"`
	Organizer       string   `json:"organizer"`
	ContactEmail    string   `json:"contact_email"`
	ContactPhone    string   `json:"contact_phone"`
	Requirements    []string `json:"requirements"`
	IsActive        bool     `json:"is_active"`
	IsFeatured      bool     `json:"is_featured"`
	gDto.Metadata
}

func (r *EventResponse) FromModel(model model.Event) {
	r.ID = model.ID
	r.Name = model.Name
	r.Type = model.Type
	r.Category = model.Category
	r.Date = model.Date
	r.Time = model.Time
	r.Location = model.Location
	r.Image = model.Image
	r.Price = model.Price
	r.Capacity = model.Capacity
	r.Description = model.Description
	r.FullDescription = model.FullDescription
	r.Organizer = model.Organizer
	r.ContactEmail = model.ContactEmail
	r.ContactPhone = model.ContactPhone
	r.Requirements = model.Requirements
	r.IsActive = model.IsActive
	r.IsFeatured = model.IsFeatured
	r.Metadata.FromModel(model.Metadata)
}

type GetEventsResponse struct {
	Events    []EventResponse `json:"events"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetEventsResponse) FromModels(models []model.Event, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Events = make([]EventResponse, len(models))
	for i, mod := range models {
		r.Events[i].FromModel(mod)
	}
}
