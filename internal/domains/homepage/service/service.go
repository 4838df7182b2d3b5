package service

import (
	"context"
	"fmt"

	"kanpai/config"
	"kanpai/infras/otel"
	"kanpai/internal/domains/homepage/model"
	"kanpai/internal/domains/homepage/model/dto"
	"kanpai/internal/domains/homepage/repository"
	"kanpai/shared"
	"kanpai/shared/cache"
	"kanpai/shared/constant"
	gDto "kanpai/shared/dto"
	gModel "kanpai/shared/model"
	"kanpai/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetHomepage = "homepage:get"
)

type Homepage interface {
	Get(ctx context.Context) (dto.HomepageResponse, error)
	Update(ctx context.Context, req dto.UpdateHomepageRequest) error
}

type serviceImpl struct {
	repo  repository.Homepage
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Homepage, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Homepage {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context) (res dto.HomepageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetHomepage, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetHomepage).Msg("cache hit for homepage")

		return res, nil
	}

	sections, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get homepage sections")

		return res, fmt.Errorf("failed to get homepage sections: %w", err)
	}

	res.FromModels(sections)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetHomepage, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save homepage to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateHomepageRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	for section, content := range req.Sections {
		row := model.HomepageSection{
			ID:      uuid.NewString(),
			Section: section,
			Content: content,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}

		if err = s.repo.Upsert(ctx, row); err != nil {
			log.Error().Err(err).Str("section", section).Msg("failed to upsert homepage section")

			return fmt.Errorf("failed to upsert homepage section: %w", err)
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetHomepage)
	}()

	return nil
}
