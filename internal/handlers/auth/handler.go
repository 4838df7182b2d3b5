package auth

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"kanpai/infras/otel"
	authDto "kanpai/internal/domains/auth/model/dto"
	authService "kanpai/internal/domains/auth/service"
	regDto "kanpai/internal/domains/registration/model/dto"
	regService "kanpai/internal/domains/registration/service"
	"kanpai/shared/constant"
	"kanpai/shared/failure"
	"kanpai/shared/validator"
	"kanpai/transport/http/middleware"
	"kanpai/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	formFieldLogo        = "logo"
	formFieldVenueImages = "venue_images"
)

type Handler struct {
	auth         authService.Auth
	registration regService.Registration
	middleware   middleware.AuthRole
	otel         otel.Otel
}

func New(auth authService.Auth, registration regService.Registration, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		auth:         auth,
		registration: registration,
		middleware:   middleware,
		otel:         otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/auth", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Auth)
		routerGroup.Use(handler.middleware.RBAC)

		routerGroup.Post("/register", handler.Register)
		routerGroup.Post("/login", handler.Login)
		routerGroup.Post("/refresh-token", handler.RefreshToken)
		routerGroup.Post("/change-password", handler.ChangePassword)
		routerGroup.Post("/register-business", handler.RegisterBusiness)
		routerGroup.Post("/register-business/validate", handler.ValidateRegistrationStep)
	})
}

// Register creates a new user account.
// @Summary Register a new user
// @Description Create a new user account with the provided credentials and role.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} dto.AuthResponse "Registered user and tokens"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /auth/register [post]
func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Register")
	defer scope.End()

	req := authDto.RegisterRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	registered, err := handler.auth.Register(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register user")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User registered successfully")

	response.WithJSON(w, http.StatusCreated, registered)
}

// Login authenticates a user with email and password.
// @Summary Log in
// @Description Authenticate with email and password and receive a token pair.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} dto.AuthResponse "Authenticated user and tokens"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /auth/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := authDto.LoginRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	authenticated, err := handler.auth.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to log in")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User logged in successfully")

	response.WithJSON(w, http.StatusOK, authenticated)
}

// RefreshToken exchanges a refresh token for a new token pair.
// @Summary Refresh tokens
// @Description Exchange a valid refresh token for a new access and refresh token pair.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh Token Request"
// @Success 200 {object} dto.TokensResponse "New token pair"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /auth/refresh-token [post]
func (handler *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefreshToken")
	defer scope.End()

	req := authDto.RefreshTokenRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	tokens, err := handler.auth.RefreshToken(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to refresh tokens")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tokens refreshed successfully")

	response.WithJSON(w, http.StatusOK, tokens)
}

// ChangePassword changes the authenticated user's password.
// @Summary Change password
// @Description Change the current user's password after verifying the current one.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "Change Password Request"
// @Success 200 {object} response.Message "Password changed successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /auth/change-password [post]
// @Security BearerAuth
func (handler *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChangePassword")
	defer scope.End()

	req := authDto.ChangePasswordRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.auth.ChangePassword(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to change password")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Password changed successfully")

	response.WithMessage(w, http.StatusOK, "Password changed successfully")
}

// ValidateRegistrationStep runs a single wizard step's validation gate.
// @Summary Validate a registration wizard step
// @Description Validate the fields of one business registration wizard step before advancing.
// @Tags Registration
// @Accept json
// @Produce json
// @Param request body dto.StepEnvelope true "Step number plus the step's fields"
// @Success 200 {object} response.Message "Step is valid"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /auth/register-business/validate [post]
func (handler *Handler) ValidateRegistrationStep(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ValidateRegistrationStep")
	defer scope.End()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read request body")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	envelope := regDto.StepEnvelope{}
	if err := json.Unmarshal(body, &envelope); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode step envelope")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	if err := handler.registration.ValidateStep(ctx, envelope.Step, body); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("step", envelope.Step).Msg("registration step validation failed")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Registration step validated successfully")

	response.WithMessage(w, http.StatusOK, "Step is valid")
}

// RegisterBusiness submits the assembled registration wizard.
// @Summary Register a business
// @Description Submit the full business registration wizard as a multipart form. Creates the account, business and first experience atomically.
// @Tags Registration
// @Accept multipart/form-data
// @Produce json
// @Param business_name formData string true "Business name"
// @Param business_type formData string true "Business type"
// @Param city formData string true "City"
// @Param country formData string true "Country"
// @Param contact_name formData string true "Contact name"
// @Param contact_email formData string true "Contact email"
// @Param description formData string true "Business description (max 300 chars)"
// @Param experience_title formData string true "First experience title"
// @Param terms_accepted formData boolean true "Terms acceptance"
// @Param logo formData file false "Logo image (PNG/JPEG, max 2 MB)"
// @Param venue_images formData file false "Up to 3 venue images (PNG/JPEG, max 2 MB each)"
// @Success 201 {object} dto.RegisterBusinessResponse "Created account details with temporary credential"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /auth/register-business [post]
func (handler *Handler) RegisterBusiness(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RegisterBusiness")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	req, err := registerBusinessRequestFromForm(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read registration form")

		response.WithError(w, err)

		return
	}

	registered, err := handler.registration.Register(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register business")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Business registered successfully")

	response.WithJSON(w, http.StatusCreated, registered)
}

func registerBusinessRequestFromForm(r *http.Request) (regDto.RegisterBusinessRequest, error) {
	maxGuests, err := parseFormInt(r.FormValue("max_guests"))
	if err != nil {
		return regDto.RegisterBusinessRequest{}, failure.BadRequestFromString("max_guests must be a number")
	}

	price, err := parseFormFloat(r.FormValue("price"))
	if err != nil {
		return regDto.RegisterBusinessRequest{}, failure.BadRequestFromString("price must be a number")
	}

	termsAccepted, _ := strconv.ParseBool(r.FormValue("terms_accepted"))

	req := regDto.RegisterBusinessRequest{
		BusinessName:  r.FormValue("business_name"),
		BusinessType:  r.FormValue("business_type"),
		City:          r.FormValue("city"),
		Country:       r.FormValue("country"),
		ContactName:   r.FormValue("contact_name"),
		ContactEmail:  r.FormValue("contact_email"),
		ContactPhone:  r.FormValue("contact_phone"),
		Website:       r.FormValue("website"),
		Description:   r.FormValue("description"),
		TermsAccepted: termsAccepted,

		ExperienceTitle:       r.FormValue("experience_title"),
		ExperienceType:        r.FormValue("experience_type"),
		ExperienceDescription: r.FormValue("experience_description"),
		Duration:              r.FormValue("duration"),
		MaxGuests:             maxGuests,
		Price:                 price,
		Currency:              r.FormValue("currency"),
		StartTime:             r.FormValue("start_time"),
		AvailabilityDays:      r.Form["availability_days"],
	}

	if r.MultipartForm != nil {
		if logos := r.MultipartForm.File[formFieldLogo]; len(logos) > 0 {
			req.Logo = logos[0]
		}

		req.VenueImages = r.MultipartForm.File[formFieldVenueImages]
	}

	return req, nil
}

func parseFormInt(value string) (int, error) {
	if value == constant.Empty {
		return 0, nil
	}

	return strconv.Atoi(value)
}

func parseFormFloat(value string) (float64, error) {
	if value == constant.Empty {
		return 0, nil
	}

	return strconv.ParseFloat(value, 64)
}
