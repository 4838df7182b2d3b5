package dto

import (
	"kanpai/internal/domains/homepage/model"
	gModel "kanpai/shared/model"
)

type UpdateHomepageRequest struct {
	Sections map[string]gModel.JSONMap `json:"sections" validate:"required,min=1"`
}

type HomepageResponse struct {
	Sections map[string]gModel.JSONMap `json:"sections"`
}

func (r *HomepageResponse) FromModels(models []model.HomepageSection) {
	r.Sections = make(map[string]gModel.JSONMap, len(models))
	for _, mod := range models {
		r.Sections[mod.Section] = mod.Content
	}
}
