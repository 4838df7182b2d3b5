package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"kanpai/infras/otel"
	"kanpai/infras/postgres"
	"kanpai/internal/domains/bar/model"
	gDto "kanpai/shared/dto"
	gRepo "kanpai/shared/repository"
)

type Bar interface {
	Insert(ctx context.Context, model model.Bar) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Bar, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Bar, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Bar]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Bar {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Bar](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
