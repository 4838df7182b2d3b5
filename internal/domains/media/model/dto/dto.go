package dto

import (
	"mime/multipart"

	"kanpai/internal/domains/media/model"
	"kanpai/shared"
	gDto "kanpai/shared/dto"
)

type UploadImageRequest struct {
	File multipart.FileHeader `validate:"mimetypes=image/png image/jpeg,maxfilesize=2"`
}

type UploadImageResponse struct {
	ID          string `json:"id"`
	FileName    string `json:"file_name"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
}

func (r *UploadImageResponse) FromModel(model model.MediaFile) {
	r.ID = model.ID
	r.FileName = model.FileName
	r.URL = model.URL
	r.ContentType = model.ContentType
	r.SizeBytes = model.SizeBytes
}

type MediaFileResponse struct {
	ID          string `json:"id"`
	FileName    string `json:"file_name"`
	ObjectName  string `json:"object_name"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
	UploadedBy  string `json:"uploaded_by"`
	gDto.Metadata
}

func (r *MediaFileResponse) FromModel(model model.MediaFile) {
	r.ID = model.ID
	r.FileName = model.FileName
	r.ObjectName = model.ObjectName
	r.URL = model.URL
	r.ContentType = model.ContentType
	r.SizeBytes = model.SizeBytes
	r.UploadedBy = model.UploadedBy
	r.Metadata.FromModel(model.Metadata)
}

type GetMediaFilesResponse struct {
	Files     []MediaFileResponse `json:"files"`
	TotalPage int                 `json:"total_page"`
	TotalData int                 `json:"total_data"`
}

func (r *GetMediaFilesResponse) FromModels(models []model.MediaFile, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Files = make([]MediaFileResponse, len(models))
	for i, mod := range models {
		r.Files[i].FromModel(mod)
	}
}
