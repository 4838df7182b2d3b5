package model

import (
	"github.com/lib/pq"

	"kanpai/shared/model"
)

const (
	TableName  = "distilleries"
	EntityName = "distillery"

	FieldID             = "id"
	FieldName           = "name"
	FieldType           = "type"
	FieldLocation       = "location"
	FieldImage          = "image"
	FieldEstablished    = "established"
	FieldProducts       = "products"
	FieldDescription    = "description"
	FieldAddress        = "address"
	FieldPhone          = "phone"
	FieldWebsite        = "website"
	FieldOperatingHours = "operating_hours"
	FieldRating         = "rating"
	FieldReviews        = "reviews"
	FieldIsOpen         = "is_open"
	FieldIsActive       = "is_active"
	FieldOwnerID        = "owner_id"
)

type Distillery struct {
	ID             string         `db:"id"`
	Name           string         `db:"name"`
	Type           string         `db:"type"`
	Location       string         `db:"location"`
	Image          string         `db:"image"`
	Established    string         `db:"established"`
	Products       pq.StringArray `db:"products"`
	Description    string         `db:"description"`
	Address        string         `db:"address"`
	Phone          string         `db:"phone"`
	Website        string         `db:"website"`
	OperatingHours model.JSONMap  `db:"operating_hours"`
	Rating         float64        `db:"rating"`
	Reviews        int            `db:"reviews"`
	IsOpen         bool           `db:"is_open"`
	IsActive       bool           `db:"is_active"`
	OwnerID        string         `db:"owner_id"`
	model.Metadata
}
