package model

import (
	"github.com/lib/pq"

	"kanpai/shared/model"
)

const (
	TableName  = "blogs"
	EntityName = "blog"

	FieldID              = "id"
	FieldTitle           = "title"
	FieldExcerpt         = "excerpt"
	FieldContent         = "content"
	FieldAuthor          = "author"
	FieldDate            = "date"
	FieldReadTime        = "read_time"
	FieldCategory        = "category"
	FieldImage           = "image"
	FieldTags            = "tags"
	FieldFeatured        = "featured"
	FieldIsActive        = "is_active"
	FieldMetaTitle       = "meta_title"
	FieldMetaDescription = "meta_description"
)

type Blog struct {
	ID              string         `db:"id"`
	Title           string         `db:"title"`
	Excerpt         string         `db:"excerpt"`
	Content         string         `db:"content"`
	Author          string         `db:"author"`
	Date            string         `db:"date"`
	ReadTime        string         `db:"read_time"`
	Category        string         `db:"category"`
	Image           string         `db:"image"`
	Tags            pq.StringArray `db:"tags"`
	Featured        bool           `db:"featured"`
	IsActive        bool           `db:"is_active"`
	MetaTitle       string         `db:"meta_title"`
	MetaDescription string         `db:"meta_description"`
	model.Metadata
}
