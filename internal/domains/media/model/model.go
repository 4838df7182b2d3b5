package model

import (
	"kanpai/shared/model"
)

const (
	TableName  = "media_files"
	EntityName = "media_file"

	FieldID          = "id"
	FieldFileName    = "file_name"
	FieldObjectName  = "object_name"
	FieldURL         = "url"
	FieldContentType = "content_type"
	FieldSizeBytes   = "size_bytes"
	FieldUploadedBy  = "uploaded_by"
)

// UploadDirectory is the object store prefix for console image uploads.
const UploadDirectory = "images"

type MediaFile struct {
	ID          string `db:"id"`
	FileName    string `db:"file_name"`
	ObjectName  string `db:"object_name"`
	URL         string `db:"url"`
	ContentType string `db:"content_type"`
	SizeBytes   int64  `db:"size_bytes"`
	UploadedBy  string `db:"uploaded_by"`
	model.Metadata
}
