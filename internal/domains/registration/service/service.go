package service

import (
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"path/filepath"

	"kanpai/config"
	"kanpai/infras/kafka"
	"kanpai/infras/otel"
	"kanpai/infras/postgres"
	"kanpai/infras/s3"
	"kanpai/internal/domains/registration/model"
	"kanpai/internal/domains/registration/model/dto"
	"kanpai/internal/domains/registration/repository"
	userModel "kanpai/internal/domains/user/model"
	userRepo "kanpai/internal/domains/user/repository"
	"kanpai/shared/constant"
	gDto "kanpai/shared/dto"
	"kanpai/shared/failure"
	gModel "kanpai/shared/model"
	"kanpai/shared/password"
	"kanpai/shared/timezone"
	"kanpai/shared/validator"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

type Registration interface {
	ValidateStep(ctx context.Context, step int, payload []byte) error
	Register(ctx context.Context, req dto.RegisterBusinessRequest) (dto.RegisterBusinessResponse, error)
}

type serviceImpl struct {
	businesses  repository.Business
	experiences repository.Experience
	users       userRepo.User
	db          *postgres.Connection
	cfg         *config.Config
	storage     s3.S3
	kafka       kafka.Client
	otel        otel.Otel
}

func New(
	businesses repository.Business,
	experiences repository.Experience,
	users userRepo.User,
	db *postgres.Connection,
	cfg *config.Config,
	storage s3.S3,
	kafkaClient kafka.Client,
	otel otel.Otel,
) Registration {
	return &serviceImpl{
		businesses:  businesses,
		experiences: experiences,
		users:       users,
		db:          db,
		cfg:         cfg,
		storage:     storage,
		kafka:       kafkaClient,
		otel:        otel,
	}
}

// ValidateStep runs exactly one wizard step's gate over the step payload.
func (s *serviceImpl) ValidateStep(ctx context.Context, step int, payload []byte) (err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ValidateStep")
	defer scope.End()
	defer scope.TraceIfError(err)

	switch step {
	case 1:
		st := dto.BusinessDetailsStep{}
		if err = json.Unmarshal(payload, &st); err != nil {
			return failure.BadRequest(fmt.Errorf("failed to decode step payload: %w", err))
		}

		return validator.ValidateStruct(&st)
	case 2:
		st := dto.ProfileStep{}
		if err = json.Unmarshal(payload, &st); err != nil {
			return failure.BadRequest(fmt.Errorf("failed to decode step payload: %w", err))
		}

		return validator.ValidateStruct(&st)
	case 3:
		st := dto.ExperienceStep{}
		if err = json.Unmarshal(payload, &st); err != nil {
			return failure.BadRequest(fmt.Errorf("failed to decode step payload: %w", err))
		}

		return validator.ValidateStruct(&st)
	case 4:
		st := dto.TermsStep{}
		if err = json.Unmarshal(payload, &st); err != nil {
			return failure.BadRequest(fmt.Errorf("failed to decode step payload: %w", err))
		}

		return validator.ValidateStruct(&st)
	default:
		return failure.BadRequestFromString("step must be between 1 and 4")
	}
}

type registrationImage struct {
	File multipart.FileHeader `validate:"mimetypes=image/png image/jpeg,maxfilesize=2"`
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterBusinessRequest) (res dto.RegisterBusinessResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	if err = validateImages(&req); err != nil {
		return res, err
	}

	emailFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    req.ContactEmail,
				Table:    userModel.TableName,
			},
		},
	}

	exist, err := s.users.Exist(ctx, emailFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check email availability")

		return res, err
	}

	if exist {
		return res, failure.Conflict("email is already registered")
	}

	logoURL, venueURLs, err := s.uploadImages(ctx, &req)
	if err != nil {
		return res, err
	}

	hashed, err := password.Hash(s.cfg.Registration.TemporaryPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash temporary password")

		return res, fmt.Errorf("failed to hash temporary password: %w", err)
	}

	role := req.DeriveRole()
	now := timezone.Now()
	userID := uuid.NewString()
	businessID := uuid.NewString()
	experienceID := uuid.NewString()

	metadata := gModel.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  userID,
		ModifiedBy: userID,
	}

	firstName, lastName := splitContactName(req.ContactName)

	user := userModel.User{
		ID:        userID,
		Email:     req.ContactEmail,
		Password:  hashed,
		FirstName: firstName,
		LastName:  lastName,
		Role:      role,
		Active:    true,
		Metadata:  metadata,
	}

	business := model.Business{
		ID:             businessID,
		UserID:         userID,
		BusinessName:   req.BusinessName,
		BusinessType:   req.BusinessType,
		Description:    req.Description,
		City:           req.City,
		Country:        req.Country,
		ContactName:    req.ContactName,
		ContactEmail:   req.ContactEmail,
		ContactPhone:   req.ContactPhone,
		Website:        req.Website,
		LogoURL:        logoURL,
		VenueImageURLs: pq.StringArray(venueURLs),
		TermsAccepted:  req.TermsAccepted,
		Metadata:       metadata,
	}

	experience := model.Experience{
		ID:               experienceID,
		BusinessID:       businessID,
		Title:            req.ExperienceTitle,
		Type:             req.ExperienceType,
		Description:      req.ExperienceDescription,
		Duration:         req.Duration,
		MaxGuests:        req.MaxGuests,
		Price:            req.Price,
		Currency:         req.Currency,
		StartTime:        req.StartTime,
		AvailabilityDays: pq.StringArray(req.AvailabilityDays),
		Metadata:         metadata,
	}

	tx, err := s.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin registration transaction")

		return res, fmt.Errorf("failed to begin registration transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				log.Error().Err(rollbackErr).Msg("failed to rollback registration transaction")
			}
		}
	}()

	if err = s.users.InsertTx(ctx, tx, user); err != nil {
		log.Error().Err(err).Msg("failed to insert user")

		return res, err
	}

	if err = s.businesses.InsertTx(ctx, tx, business); err != nil {
		log.Error().Err(err).Msg("failed to insert business")

		return res, err
	}

	if err = s.experiences.InsertTx(ctx, tx, experience); err != nil {
		log.Error().Err(err).Msg("failed to insert experience")

		return res, err
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit registration transaction")

		return res, fmt.Errorf("failed to commit registration transaction: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.publishRegistrationEvent(c, business, userID, role)
	}()

	res = dto.RegisterBusinessResponse{
		UserID:            userID,
		BusinessID:        businessID,
		ExperienceID:      experienceID,
		Email:             req.ContactEmail,
		Role:              role,
		TemporaryPassword: s.cfg.Registration.TemporaryPassword,
	}

	return res, nil
}

func validateImages(req *dto.RegisterBusinessRequest) error {
	if req.Logo != nil {
		img := registrationImage{File: *req.Logo}
		if err := validator.ValidateStruct(&img); err != nil {
			return err
		}
	}

	if len(req.VenueImages) > 3 {
		return failure.BadRequestFromString("at most 3 venue images are allowed")
	}

	for _, venueImage := range req.VenueImages {
		img := registrationImage{File: *venueImage}
		if err := validator.ValidateStruct(&img); err != nil {
			return err
		}
	}

	return nil
}

func (s *serviceImpl) uploadImages(ctx context.Context, req *dto.RegisterBusinessRequest) (logoURL string, venueURLs []string, err error) {
	bucket := s.cfg.External.S3.BucketName

	if req.Logo != nil {
		logoURL, err = s.uploadHeader(ctx, bucket, model.LogoDirectory, req.Logo)
		if err != nil {
			return constant.Empty, nil, err
		}
	}

	for _, venueImage := range req.VenueImages {
		url, uploadErr := s.uploadHeader(ctx, bucket, model.VenueImageDirectory, venueImage)
		if uploadErr != nil {
			return constant.Empty, nil, uploadErr
		}

		venueURLs = append(venueURLs, url)
	}

	return logoURL, venueURLs, nil
}

func (s *serviceImpl) uploadHeader(ctx context.Context, bucket, directory string, fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		log.Error().Err(err).Str("fileName", fileHeader.Filename).Msg("failed to open uploaded file")

		return constant.Empty, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	objectName := uuid.NewString() + filepath.Ext(fileHeader.Filename)

	url, err := s.storage.UploadFile(ctx, bucket, directory, file, fileHeader, objectName)
	if err != nil {
		log.Error().Err(err).Str("fileName", fileHeader.Filename).Msg("failed to upload registration image")

		return constant.Empty, fmt.Errorf("failed to upload registration image: %w", err)
	}

	return url, nil
}

func (s *serviceImpl) publishRegistrationEvent(ctx context.Context, business model.Business, userID, role string) {
	if !s.cfg.External.Kafka.Enable {
		return
	}

	event := dto.RegistrationEvent{
		BusinessID:   business.ID,
		BusinessName: business.BusinessName,
		BusinessType: business.BusinessType,
		ContactEmail: business.ContactEmail,
		UserID:       userID,
		Role:         role,
		RegisteredAt: timezone.Now().Format(constant.DateFormat),
	}

	message := kafka.Message{
		Key:   business.ID,
		Value: event,
	}

	if err := s.kafka.SendMessages(ctx, s.cfg.External.Kafka.Topic, message); err != nil {
		log.Error().Err(err).Str("businessID", business.ID).Msg("failed to publish registration event")
	}
}

func splitContactName(contactName string) (firstName, lastName string) {
	firstName = contactName

	for i, r := range contactName {
		if r == ' ' {
			firstName = contactName[:i]
			lastName = contactName[i+1:]

			break
		}
	}

	return firstName, lastName
}
