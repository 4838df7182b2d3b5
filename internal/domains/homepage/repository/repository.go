package repository

import (
	"context"
	"fmt"

	"kanpai/infras/otel"
	"kanpai/infras/postgres"
	"kanpai/internal/domains/homepage/model"
	"kanpai/shared/constant"
	gDto "kanpai/shared/dto"
	"kanpai/shared/logger"
	gRepo "kanpai/shared/repository"
)

type Homepage interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.HomepageSection, error)
	Upsert(ctx context.Context, section model.HomepageSection) error
}

type repositoryImpl struct {
	gRepo.Repository[model.HomepageSection]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Homepage {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.HomepageSection](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Upsert inserts a section row or replaces its content when the section name
// already exists. Creation metadata is kept on conflict.
func (repo *repositoryImpl) Upsert(ctx context.Context, section model.HomepageSection) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Upsert", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	query := fmt.Sprintf(`INSERT INTO %s (id, section, content, created_at, created_by, modified_at, modified_by)
		VALUES (:id, :section, :content, :created_at, :created_by, :modified_at, :modified_by)
		ON CONFLICT (section) DO UPDATE
		SET content = EXCLUDED.content, modified_at = EXCLUDED.modified_at, modified_by = EXCLUDED.modified_by`, model.TableName)

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := repo.db.Write.NamedExecContext(ctx, query, section)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to upsert data (%s): %w", model.EntityName, err)
	}

	return nil
}
