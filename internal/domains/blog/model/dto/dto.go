package dto

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"kanpai/internal/domains/blog/model"
	"kanpai/shared"
	gDto "kanpai/shared/dto"
	gModel "kanpai/shared/model"
	"kanpai/shared/timezone"
)

type CreateBlogRequest struct {
	Title           string   `json:"title" validate:"required,max=255"`
	Excerpt         string   `json:"excerpt" validate:"omitempty,max=500"`
	Content         string   `json:"content" validate:"required"`
	Author          string   `json:"author" validate:"required,max=255"`
	Date            string   `json:"date" validate:"omitempty,datetime=2006-01-02"`
	ReadTime        string   `json:"read_time" validate:"omitempty,max=50"`
	Category        string   `json:"category" validate:"omitempty,max=100"`
	Image           string   `json:"image" validate:"omitempty,max=2048"`
	Tags            []string `json:"tags" validate:"omitempty,dive,max=100"`
	Featured        *bool    `json:"featured" validate:"omitempty"`
	MetaTitle       string   `json:"meta_title" validate:"omitempty,max=255"`
	MetaDescription string   `json:"meta_description" validate:"omitempty,max=500"`
}

func (c *CreateBlogRequest) ToModel(user string) model.Blog {
	featured := false
	if c.Featured != nil {
		featured = *c.Featured
	}

	return model.Blog{
		ID:              uuid.NewString(),
		Title:           c.Title,
		Excerpt:         c.Excerpt,
		Content:         c.Content,
		Author:          c.Author,
		Date:            c.Date,
		ReadTime:        c.ReadTime,
		Category:        c.Category,
		Image:           c.Image,
		Tags:            pq.StringArray(c.Tags),
		Featured:        featured,
		IsActive:        true,
		MetaTitle:       c.MetaTitle,
		MetaDescription: c.MetaDescription,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateBlogRequest struct {
	Title           string         `db:"title" json:"title" validate:"omitempty,max=255"`
	Excerpt         string         `db:"excerpt" json:"excerpt" validate:"omitempty,max=500"`
	Content         string         `db:"content" json:"content" validate:"omitempty"`
	Author          string         `db:"author" json:"author" validate:"omitempty,max=255"`
	Date            string         `db:"date" json:"date" validate:"omitempty,datetime=2006-01-02"`
	ReadTime        string         `db:"read_time" json:"read_time" validate:"omitempty,max=50"`
	Category        string         `db:"category" json:"category" validate:"omitempty,max=100"`
	Image           string         `db:"image" json:"image" validate:"omitempty,max=2048"`
	Tags            pq.StringArray `db:"tags" json:"tags" validate:"omitempty,dive,max=100"`
	Featured        *bool          `db:"featured" json:"featured" validate:"omitempty"`
	IsActive        *bool          `db:"is_active" json:"is_active" validate:"omitempty"`
	MetaTitle       string         `db:"meta_title" json:"meta_title" validate:"omitempty,max=255"`
	MetaDescription string         `db:"meta_description" json:"meta_description" validate:"omitempty,max=500"`
}

type BlogResponse struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Excerpt         string   `json:"excerpt"`
	Content         string   `json:"content"`
	Author          string   `json:"author"`
	Date            string   `json:"date"`
	ReadTime        string   `json:"read_time"`
	Category        string   `json:"category"`
	Image           string   `json:"image"`
	Tags            []string `json:"tags"`
	Featured        bool     `json:"featured"`
	IsActive        bool     `json:"is_active"`
	MetaTitle       string   `json:"meta_title"`
	MetaDescription string   `json:"meta_description"`
	gDto.Metadata
}

func (r *BlogResponse) FromModel(model model.Blog) {
	r.ID = model.ID
	r.Title = model.Title
	r.Excerpt = model.Excerpt
	r.Content = model.Content
	r.Author = model.Author
	r.Date = model.Date
	r.ReadTime = model.ReadTime
	r.Category = model.Category
	r.Image = model.Image
	r.Tags = model.Tags
	r.Featured = model.Featured
	r.IsActive = model.IsActive
	r.MetaTitle = model.MetaTitle
	r.MetaDescription = model.MetaDescription
	r.Metadata.FromModel(model.Metadata)
}

type GetBlogsResponse struct {
	Blogs     []BlogResponse `json:"blogs"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetBlogsResponse) FromModels(models []model.Blog, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Blogs = make([]BlogResponse, len(models))
	for i, mod := range models {
		r.Blogs[i].FromModel(mod)
	}
}
