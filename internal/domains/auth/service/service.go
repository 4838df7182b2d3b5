package service

import (
	"context"
	"errors"
	"fmt"

	"kanpai/config"
	"kanpai/infras/jwt"
	"kanpai/infras/otel"
	"kanpai/internal/domains/auth/model/dto"
	userModel "kanpai/internal/domains/user/model"
	userRepo "kanpai/internal/domains/user/repository"
	"kanpai/shared"
	"kanpai/shared/constant"
	gDto "kanpai/shared/dto"
	"kanpai/shared/failure"
	"kanpai/shared/password"
	"kanpai/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.TokensResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
}

type serviceImpl struct {
	users userRepo.User
	cfg   *config.Config
	jwt   jwt.JWT
	otel  otel.Otel
}

func New(users userRepo.User, cfg *config.Config, jwtService jwt.JWT, otel otel.Otel) Auth {
	return &serviceImpl{
		users: users,
		cfg:   cfg,
		jwt:   jwtService,
		otel:  otel,
	}
}

func filterByEmail(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    email,
				Table:    userModel.TableName,
			},
		},
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.AuthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.users.Exist(ctx, filterByEmail(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check email availability")

		return res, err
	}

	if exist {
		return res, failure.Conflict("email is already registered")
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	user := req.ToModel(hashed)

	if err = s.users.Insert(ctx, user); err != nil {
		log.Error().Err(err).Msg("failed to insert user")

		return res, err
	}

	tokens, err := s.jwt.GenerateTokenPair(user.ID, user.Email, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token pair")

		return res, fmt.Errorf("failed to generate token pair: %w", err)
	}

	res.FromModel(user, tokens)

	return res, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.AuthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.users.Get(ctx, filterByEmail(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user by email")

		return res, fmt.Errorf("failed to get user by email: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.Unauthorized("invalid email or password")
	}

	if !user.Active {
		return res, failure.Forbidden("account is deactivated")
	}

	if err = password.Verify(req.Password, user.Password); err != nil {
		if errors.Is(err, password.ErrInvalidPassword) {
			return res, failure.Unauthorized("invalid email or password")
		}

		log.Error().Err(err).Msg("failed to verify password")

		return res, fmt.Errorf("failed to verify password: %w", err)
	}

	tokens, err := s.jwt.GenerateTokenPair(user.ID, user.Email, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token pair")

		return res, fmt.Errorf("failed to generate token pair: %w", err)
	}

	now := timezone.Now()

	go func() {
		c := context.WithoutCancel(ctx)

		lastLogin := map[string]any{
			userModel.FieldLastLogin: now,
		}

		if err := s.users.Update(c, lastLogin, shared.FilterByID(user.ID, userModel.FieldID, userModel.TableName)); err != nil {
			log.Error().Err(err).Str("userID", user.ID).Msg("failed to record last login")
		}
	}()

	user.LastLogin.Time = now
	user.LastLogin.Valid = true

	res.FromModel(user, tokens)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.TokensResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokens, err := s.jwt.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Error().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token")
	}

	res.Tokens = *tokens

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == constant.Empty {
		return failure.Unauthorized("missing authenticated user")
	}

	filter := shared.FilterByID(userID, userModel.FieldID, userModel.TableName)

	user, err := s.users.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return failure.NotFound("user not found")
	}

	if err = password.Verify(req.CurrentPassword, user.Password); err != nil {
		if errors.Is(err, password.ErrInvalidPassword) {
			return failure.Unauthorized("current password is incorrect")
		}

		log.Error().Err(err).Msg("failed to verify password")

		return fmt.Errorf("failed to verify password: %w", err)
	}

	hashed, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	updatedFields := map[string]any{
		userModel.FieldPassword:  hashed,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: userID,
	}

	if err = s.users.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
