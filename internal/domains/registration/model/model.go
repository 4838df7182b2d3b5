package model

import (
	"github.com/lib/pq"

	"kanpai/shared/model"
)

const (
	BusinessTableName  = "businesses"
	BusinessEntityName = "business"

	ExperienceTableName  = "experiences"
	ExperienceEntityName = "experience"

	FieldID           = "id"
	FieldUserID       = "user_id"
	FieldBusinessID   = "business_id"
	FieldBusinessName = "business_name"
	FieldBusinessType = "business_type"
	FieldContactEmail = "contact_email"
)

// LogoDirectory and VenueImageDirectory are the object store prefixes for
// registration uploads.
const (
	LogoDirectory       = "registrations/logos"
	VenueImageDirectory = "registrations/venues"
)

type Business struct {
	ID             string         `db:"id"`
	UserID         string         `db:"user_id"`
	BusinessName   string         `db:"business_name"`
	BusinessType   string         `db:"business_type"`
	Description    string         `db:"description"`
	City           string         `db:"city"`
	Country        string         `db:"country"`
	ContactName    string         `db:"contact_name"`
	ContactEmail   string         `db:"contact_email"`
	ContactPhone   string         `db:"contact_phone"`
	Website        string         `db:"website"`
	LogoURL        string         `db:"logo_url"`
	VenueImageURLs pq.StringArray `db:"venue_image_urls"`
	TermsAccepted  bool           `db:"terms_accepted"`
	model.Metadata
}

type Experience struct {
	ID               string         `db:"id"`
	BusinessID       string         `db:"business_id"`
	Title            string         `db:"title"`
	Type             string         `db:"type"`
	Description      string         `db:"description"`
	Duration         string         `db:"duration"`
	MaxGuests        int            `db:"max_guests"`
	Price            float64        `db:"price"`
	Currency         string         `db:"currency"`
	StartTime        string         `db:"start_time"`
	AvailabilityDays pq.StringArray `db:"availability_days"`
	model.Metadata
}
