package repository

import (
	"context"

	"kanpai/infras/otel"
	"kanpai/infras/postgres"
	"kanpai/internal/domains/blog/model"
	gDto "kanpai/shared/dto"
	gRepo "kanpai/shared/repository"
)

type Blog interface {
	Insert(ctx context.Context, model model.Blog) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Blog, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Blog, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Blog]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Blog {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Blog](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
