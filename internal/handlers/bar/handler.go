package bar

import (
	"net/http"

	"kanpai/infras/otel"
	"kanpai/internal/domains/bar/model"
	"kanpai/internal/domains/bar/model/dto"
	"kanpai/internal/domains/bar/service"
	"kanpai/shared"
	"kanpai/shared/constant"
	gDto "kanpai/shared/dto"
	"kanpai/shared/validator"
	"kanpai/transport/http/middleware"
	"kanpai/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Bar
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Bar, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bars", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Auth)
		routerGroup.Use(handler.middleware.RBAC)

		routerGroup.Post("/", handler.CreateBar)
		routerGroup.Get("/", handler.GetBars)
		routerGroup.Get("/search", handler.SearchBars)
		routerGroup.Get("/{id}", handler.GetBarByID)
		routerGroup.Patch("/{id}", handler.UpdateBar)
		routerGroup.Delete("/{id}", handler.DeleteBar)
	})
}

// CreateBar handles the creation of a new bar listing.
// @Summary Create a new bar
// @Description Create a new bar listing with the provided details.
// @Tags Bar
// @Accept json
// @Produce json
// @Param request body dto.CreateBarRequest true "Create Bar Request"
// @Success 201 {object} response.Message "Bar created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bars [post]
// @Security BearerAuth
func (handler *Handler) CreateBar(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBar")
	defer scope.End()

	req := dto.CreateBarRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create bar")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Bar created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Bar created successfully")
}

// GetBars retrieves all bar listings based on query parameters.
// @Summary Get all bars
// @Description Retrieve all bar listings with optional filtering and pagination.
// @Tags Bar
// @Accept json
// @Produce json
// @Param type query string false "Filter by bar type"
// @Param location query string false "Filter by location"
// @Param is_active query boolean false "Filter by active status"
// @Param is_open query boolean false "Filter by open status"
// @Success 200 {object} dto.GetBarsResponse "List of bars"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bars [get]
func (handler *Handler) GetBars(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBars")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if barType := r.URL.Query().Get(model.FieldType); barType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    barType,
			Table:    model.TableName,
		})
	}

	if location := r.URL.Query().Get(model.FieldLocation); location != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldLocation,
			Operator: gDto.FilterOperatorLike,
			Value:    location,
			Table:    model.TableName,
		})
	}

	if isActive := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldIsActive)); isActive != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *isActive,
			Table:    model.TableName,
		})
	}

	if isOpen := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldIsOpen)); isOpen != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsOpen,
			Operator: gDto.FilterOperatorEq,
			Value:    *isOpen,
			Table:    model.TableName,
		})
	}

	bars, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bars")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bars retrieved successfully")

	response.WithJSON(w, http.StatusOK, bars)
}

// SearchBars searches bar listings by free text.
// @Summary Search bars
// @Description Search bar listings by name, location or type, with pagination.
// @Tags Bar
// @Accept json
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {object} dto.GetBarsResponse "Matching bars"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bars/search [get]
func (handler *Handler) SearchBars(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchBars")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	term := r.URL.Query().Get(constant.RequestParamSearch)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.Filter{
				ArgName:  "q_name",
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    term,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "q_location",
				Field:    model.FieldLocation,
				Operator: gDto.FilterOperatorLike,
				Value:    term,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "q_type",
				Field:    model.FieldType,
				Operator: gDto.FilterOperatorLike,
				Value:    term,
				Table:    model.TableName,
			},
		},
	}

	bars, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search bars")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bars searched successfully")

	response.WithJSON(w, http.StatusOK, bars)
}

// GetBarByID retrieves a bar listing by its ID.
// @Summary Get a bar by ID
// @Description Retrieve a bar listing by its unique identifier.
// @Tags Bar
// @Accept json
// @Produce json
// @Param id path string true "Bar ID"
// @Success 200 {object} dto.BarResponse "Bar details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bars/{id} [get]
func (handler *Handler) GetBarByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBarByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	bar, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bar by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bar retrieved successfully")

	response.WithJSON(w, http.StatusOK, bar)
}

// UpdateBar updates an existing bar listing by its ID.
// @Summary Update a bar by ID
// @Description Update the details of an existing bar listing.
// @Tags Bar
// @Accept json
// @Produce json
// @Param id path string true "Bar ID"
// @Param request body dto.UpdateBarRequest true "Update Bar Request"
// @Success 200 {object} response.Message "Bar updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bars/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBar(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBar")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateBarRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update bar")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Bar updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Bar updated successfully")
}

// DeleteBar deletes a bar listing by its ID.
// @Summary Delete a bar by ID
// @Description Delete a bar listing using its unique identifier.
// @Tags Bar
// @Accept json
// @Produce json
// @Param id path string true "Bar ID"
// @Success 200 {object} response.Message "Bar deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bars/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBar(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBar")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete bar")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Bar deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Bar deleted successfully")
}
