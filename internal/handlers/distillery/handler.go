package distillery

import (
	"net/http"

	"kanpai/infras/otel"
	"kanpai/internal/domains/distillery/model"
	"kanpai/internal/domains/distillery/model/dto"
	"kanpai/internal/domains/distillery/service"
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
	service    service.Distillery
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Distillery, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/distilleries", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Auth)
		routerGroup.Use(handler.middleware.RBAC)

		routerGroup.Post("/", handler.CreateDistillery)
		routerGroup.Get("/", handler.GetDistilleries)
		routerGroup.Get("/search", handler.SearchDistilleries)
		routerGroup.Get("/{id}", handler.GetDistilleryByID)
		routerGroup.Patch("/{id}", handler.UpdateDistillery)
		routerGroup.Delete("/{id}", handler.DeleteDistillery)
	})
}

// CreateDistillery handles the creation of a new distillery listing.
// @Summary Create a new distillery
// @Description Create a new distillery listing with the provided details.
// @Tags Distillery
// @Accept json
// @Produce json
// @Param request body dto.CreateDistilleryRequest true "Create Distillery Request"
// @Success 201 {object} response.Message "Distillery created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /distilleries [post]
// @Security BearerAuth
func (handler *Handler) CreateDistillery(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateDistillery")
	defer scope.End()

	req := dto.CreateDistilleryRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create distillery")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Distillery created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Distillery created successfully")
}

// GetDistilleries retrieves all distillery listings based on query parameters.
// @Summary Get all distilleries
// @Description Retrieve all distillery listings with optional filtering and pagination.
// @Tags Distillery
// @Accept json
// @Produce json
// @Param type query string false "Filter by distillery type"
// @Param location query string false "Filter by location"
// @Param is_active query boolean false "Filter by active status"
// @Success 200 {object} dto.GetDistilleriesResponse "List of distilleries"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /distilleries [get]
func (handler *Handler) GetDistilleries(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDistilleries")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if distilleryType := r.URL.Query().Get(model.FieldType); distilleryType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    distilleryType,
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

	distilleries, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get distilleries")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Distilleries retrieved successfully")

	response.WithJSON(w, http.StatusOK, distilleries)
}

// SearchDistilleries searches distillery listings by free text.
// @Summary Search distilleries
// @Description Search distillery listings by name, location or type, with pagination.
// @Tags Distillery
// @Accept json
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {object} dto.GetDistilleriesResponse "Matching distilleries"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /distilleries/search [get]
func (handler *Handler) SearchDistilleries(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchDistilleries")
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

	distilleries, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search distilleries")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Distilleries searched successfully")

	response.WithJSON(w, http.StatusOK, distilleries)
}

// GetDistilleryByID retrieves a distillery listing by its ID.
// @Summary Get a distillery by ID
// @Description Retrieve a distillery listing by its unique identifier.
// @Tags Distillery
// @Accept json
// @Produce json
// @Param id path string true "Distillery ID"
// @Success 200 {object} dto.DistilleryResponse "Distillery details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /distilleries/{id} [get]
func (handler *Handler) GetDistilleryByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDistilleryByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	distillery, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get distillery by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Distillery retrieved successfully")

	response.WithJSON(w, http.StatusOK, distillery)
}

// UpdateDistillery updates an existing distillery listing by its ID.
// @Summary Update a distillery by ID
// @Description Update the details of an existing distillery listing.
// @Tags Distillery
// @Accept json
// @Produce json
// @Param id path string true "Distillery ID"
// @Param request body dto.UpdateDistilleryRequest true "Update Distillery Request"
// @Success 200 {object} response.Message "Distillery updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /distilleries/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateDistillery(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateDistillery")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateDistilleryRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update distillery")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Distillery updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Distillery updated successfully")
}

// DeleteDistillery deletes a distillery listing by its ID.
// @Summary Delete a distillery by ID
// @Description Delete a distillery listing using its unique identifier.
// @Tags Distillery
// @Accept json
// @Produce json
// @Param id path string true "Distillery ID"
// @Success 200 {object} response.Message "Distillery deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /distilleries/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteDistillery(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteDistillery")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete distillery")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Distillery deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Distillery deleted successfully")
}
