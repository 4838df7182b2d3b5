package model

import (
	"kanpai/shared/model"
)

const (
	TableName  = "homepage_sections"
	EntityName = "homepage_section"

	FieldID      = "id"
	FieldSection = "section"
	FieldContent = "content"
)

// HomepageSection stores one editable block of the public homepage, keyed by
// its section name. Content is free-form JSON owned by the admin console.
type HomepageSection struct {
	ID      string        `db:"id"`
	Section string        `db:"section"`
	Content model.JSONMap `db:"content"`
	model.Metadata
}
