package model

import (
	"github.com/lib/pq"

	"kanpai/shared/model"
)

const (
	TableName  = "bars"
	EntityName = "bar"

	FieldID          = "id"
	FieldName        = "name"
	FieldType        = "type"
	FieldLocation    = "location"
	FieldImage       = "image"
	FieldPriceRange  = "price_range"
	FieldSpecialties = "specialties"
	FieldDescription = "description"
	FieldAddress     = "address"
	FieldPhone       = "phone"
	FieldWebsite     = "website"
	FieldRating      = "rating"
	FieldReviews     = "reviews"
	FieldIsOpen      = "is_open"
	FieldIsActive    = "is_active"
	FieldOwnerID     = "owner_id"
)

type Bar struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Type        string         `db:"type"`
	Location    string         `db:"location"`
	Image       string         `db:"image"`
	PriceRange  string         `db:"price_range"`
	Specialties pq.StringArray `db:"specialties"`
	Description string         `db:"description"`
	Address     string         `db:"address"`
	Phone       string         `db:"phone"`
	Website     string         `db:"website"`
	Rating      float64        `db:"rating"`
	Reviews     int            `db:"reviews"`
	IsOpen      bool           `db:"is_open"`
	IsActive    bool           `db:"is_active"`
	OwnerID     string         `db:"owner_id"`
	model.Metadata
}
