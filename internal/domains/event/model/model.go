package model

import (
	"github.com/lib/pq"

	"kanpai/shared/model"
)

const (
	TableName  = "events"
	EntityName = "event"

	FieldID              = "id"
	FieldName            = "name"
	FieldType            = "type"
	FieldCategory        = "category"
	FieldDate            = "date"
	FieldTime            = "time"
	FieldLocation        = "location"
	FieldImage           = "image"
	FieldPrice           = "price"
	FieldCapacity        = "capacity"
	FieldDescription     = "description"
	FieldFullDescription = "full_description"
	FieldOrganizer       = "organizer"
	FieldContactEmail    = "contact_email"
	FieldContactPhone    = "contact_phone"
	FieldRequirements    = "requirements"
	FieldIsActive        = "is_active"
	FieldIsFeatured      = "is_featured"
	FieldOwnerID         = "owner_id"
)

type Event struct {
	ID              string         `db:"id"`
	Name            string         `db:"name"`
	Type            string         `db:"type"`
	Category        string         `db:"category"`
	Date            string         `db:"date"`
	Time            string         `db:"time"`
	Location        string         `db:"location"`
	Image           string         `db:"image"`
	Price           float64        `db:"price"`
	Capacity        int            `db:"capacity"`
	Description     string         `db:"description"`
	FullDescription string         `db:"full_description"`
	Organizer       string         `db:"organizer"`
	ContactEmail    string         `db:"contact_email"`
	ContactPhone    string         `db:"contact_phone"`
	Requirements    pq.StringArray `db:"requirements"`
	IsActive        bool           `db:"is_active"`
	IsFeatured      bool           `db:"is_featured"`
	OwnerID         string         `db:"owner_id"`
	model.Metadata
}
