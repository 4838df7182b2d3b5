package repository

import (
	"context"

	"kanpai/infras/otel"
	"kanpai/infras/postgres"
	"kanpai/internal/domains/media/model"
	gDto "kanpai/shared/dto"
	gRepo "kanpai/shared/repository"
)

type Media interface {
	Insert(ctx context.Context, model model.MediaFile) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.MediaFile, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.MediaFile, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.MediaFile]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Media {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.MediaFile](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
