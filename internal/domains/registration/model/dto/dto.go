package dto

import (
	"mime/multipart"
	"strings"

	"kanpai/shared/constant"
)

// StepEnvelope carries the step number of a wizard validation call. The rest
// of the body is the step's own fields.
type StepEnvelope struct {
	Step int `json:"step"`
}

type BusinessDetailsStep struct {
	BusinessName string `json:"business_name" validate:"required,max=255"`
	BusinessType string `json:"business_type" validate:"required,max=100"`
	City         string `json:"city" validate:"required,max=255"`
	Country      string `json:"country" validate:"required,max=255"`
	ContactName  string `json:"contact_name" validate:"required,max=255"`
	ContactEmail string `json:"contact_email" validate:"required,email,max=255"`
}

// ProfileStep validates the description and any images sent as base64 data
// URLs, which is how the console previews them before the final multipart
// submission.
type ProfileStep struct {
	Description string   `json:"description" validate:"required,max=300"`
	Logo        string   `json:"logo" validate:"omitempty,mimetypes=image/png image/jpeg,maxfilesize=2"`
	VenueImages []string `json:"venue_images" validate:"omitempty,max=3,dive,mimetypes=image/png image/jpeg,maxfilesize=2"`
}

type ExperienceStep struct {
	Title            string   `json:"title" validate:"required,max=255"`
	Type             string   `json:"type" validate:"required,max=100"`
	Description      string   `json:"description" validate:"required"`
	Duration         string   `json:"duration" validate:"required,max=100"`
	MaxGuests        int      `json:"max_guests" validate:"required,gt=0"`
	Price            float64  `json:"price" validate:"required,gte=0"`
	Currency         string   `json:"currency" validate:"required,max=10"`
	StartTime        string   `json:"start_time" validate:"required,datetime=15:04"`
	AvailabilityDays []string `json:"availability_days" validate:"required,min=1,dive,max=20"`
}

type TermsStep struct {
	TermsAccepted bool `json:"terms_accepted" validate:"required"`
}

// RegisterBusinessRequest is the final multipart assembly of all wizard
// steps. Files arrive as form files, everything else as form values.
type RegisterBusinessRequest struct {
	BusinessName  string `validate:"required,max=255"`
	BusinessType  string `validate:"required,max=100"`
	City          string `validate:"required,max=255"`
	Country       string `validate:"required,max=255"`
	ContactName   string `validate:"required,max=255"`
	ContactEmail  string `validate:"required,email,max=255"`
	ContactPhone  string `validate:"omitempty,max=50"`
	Website       string `validate:"omitempty,max=2048"`
	Description   string `validate:"required,max=300"`
	TermsAccepted bool   `validate:"required"`

	ExperienceTitle       string   `validate:"required,max=255"`
	ExperienceType        string   `validate:"required,max=100"`
	ExperienceDescription string   `validate:"required"`
	Duration              string   `validate:"required,max=100"`
	MaxGuests             int      `validate:"required,gt=0"`
	Price                 float64  `validate:"required,gte=0"`
	Currency              string   `validate:"required,max=10"`
	StartTime             string   `validate:"required,datetime=15:04"`
	AvailabilityDays      []string `validate:"required,min=1,dive,max=20"`

	Logo        *multipart.FileHeader   `validate:"-"`
	VenueImages []*multipart.FileHeader `validate:"omitempty,max=3"`
}

// DeriveRole maps the declared business type to the account role.
func (r *RegisterBusinessRequest) DeriveRole() string {
	businessType := strings.ToLower(r.BusinessType)

	switch {
	case strings.Contains(businessType, "distillery"):
		return constant.RoleDistillery
	case strings.Contains(businessType, "bar"):
		return constant.RoleBar
	default:
		return constant.RoleEventHost
	}
}

type RegisterBusinessResponse struct {
	UserID       string `json:"user_id"`
	BusinessID   string `json:"business_id"`
	ExperienceID string `json:"experience_id"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	// The fixed onboarding credential, echoed on purpose so the applicant
	// can log in before resetting it.
	TemporaryPassword string `json:"temporary_password"`
}

// RegistrationEvent is the payload published when a business registration
// completes.
type RegistrationEvent struct {
	BusinessID   string `json:"business_id"`
	BusinessName string `json:"business_name"`
	BusinessType string `json:"business_type"`
	ContactEmail string `json:"contact_email"`
	UserID       string `json:"user_id"`
	Role         string `json:"role"`
	RegisteredAt string `json:"registered_at"`
}
