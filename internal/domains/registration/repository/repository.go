package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"kanpai/infras/otel"
	"kanpai/infras/postgres"
	"kanpai/internal/domains/registration/model"
	gDto "kanpai/shared/dto"
	gRepo "kanpai/shared/repository"
)

type Business interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Business) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Business, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type Experience interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Experience) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Experience, error)
}

type businessRepositoryImpl struct {
	gRepo.Repository[model.Business]
	db   *postgres.Connection
	otel otel.Otel
}

func NewBusiness(db *postgres.Connection, otel otel.Otel) Business {
	return &businessRepositoryImpl{
		Repository: gRepo.NewRepository[model.Business](model.BusinessEntityName, model.BusinessTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type experienceRepositoryImpl struct {
	gRepo.Repository[model.Experience]
	db   *postgres.Connection
	otel otel.Otel
}

func NewExperience(db *postgres.Connection, otel otel.Otel) Experience {
	return &experienceRepositoryImpl{
		Repository: gRepo.NewRepository[model.Experience](model.ExperienceEntityName, model.ExperienceTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
