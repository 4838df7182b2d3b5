package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"

	"kanpai/config"
	"kanpai/infras/otel"
	"kanpai/infras/s3"
	"kanpai/internal/domains/media/model"
	"kanpai/internal/domains/media/model/dto"
	"kanpai/internal/domains/media/repository"
	"kanpai/shared"
	"kanpai/shared/cache"
	"kanpai/shared/constant"
	gDto "kanpai/shared/dto"
	"kanpai/shared/failure"
	gModel "kanpai/shared/model"
	"kanpai/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllMedia = "media:get_all"
	cacheCountMedia  = "media:count"
)

type Media interface {
	UploadImage(ctx context.Context, file multipart.File, fileHeader *multipart.FileHeader) (dto.UploadImageResponse, error)
	DeleteImage(ctx context.Context, fileName string) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetMediaFilesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
}

type serviceImpl struct {
	repo    repository.Media
	cfg     *config.Config
	cache   cache.RedisCache
	storage s3.S3
	otel    otel.Otel
}

func New(repo repository.Media, cfg *config.Config, cache cache.RedisCache, storage s3.S3, otel otel.Otel) Media {
	return &serviceImpl{
		repo:    repo,
		cfg:     cfg,
		cache:   cache,
		storage: storage,
		otel:    otel,
	}
}

func (s *serviceImpl) UploadImage(ctx context.Context, file multipart.File, fileHeader *multipart.FileHeader) (res dto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	objectName := uuid.NewString() + filepath.Ext(fileHeader.Filename)

	url, err := s.storage.UploadFile(ctx, s.cfg.External.S3.BucketName, model.UploadDirectory, file, fileHeader, objectName)
	if err != nil {
		log.Error().Err(err).Str("fileName", fileHeader.Filename).Msg("failed to upload image")

		return res, fmt.Errorf("failed to upload image: %w", err)
	}

	mediaFile := model.MediaFile{
		ID:          uuid.NewString(),
		FileName:    fileHeader.Filename,
		ObjectName:  objectName,
		URL:         url,
		ContentType: fileHeader.Header.Get(constant.RequestHeaderContentType),
		SizeBytes:   fileHeader.Size,
		UploadedBy:  user,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err = s.repo.Insert(ctx, mediaFile); err != nil {
		log.Error().Err(err).Msg("failed to insert media file")

		return res, fmt.Errorf("failed to insert media file: %w", err)
	}

	res.FromModel(mediaFile)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllMedia)
		shared.InvalidateCaches(c, s.cache, cacheCountMedia)
	}()

	return res, nil
}

func (s *serviceImpl) DeleteImage(ctx context.Context, fileName string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldObjectName,
				Operator: gDto.FilterOperatorEq,
				Value:    fileName,
				Table:    model.TableName,
			},
		},
	}

	mediaFile, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get media file")

		return fmt.Errorf("failed to get media file: %w", err)
	}

	if mediaFile.ID == constant.Empty {
		return failure.NotFound("media file not found")
	}

	if err = s.storage.DeleteFile(ctx, s.cfg.External.S3.BucketName, model.UploadDirectory, mediaFile.ObjectName); err != nil {
		log.Error().Err(err).Str("objectName", mediaFile.ObjectName).Msg("failed to delete image from storage")

		return fmt.Errorf("failed to delete image from storage: %w", err)
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete media file")

		return fmt.Errorf("failed to delete media file: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllMedia)
		shared.InvalidateCaches(c, s.cache, cacheCountMedia)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetMediaFilesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllMedia, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for media files")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count media files")

		return res, err
	}

	files, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get media files")

		return res, err
	}

	res.FromModels(files, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save media files to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountMedia, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for media file count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count media files")

		return total, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save media file count to cache")
		}
	}()

	return total, nil
}
