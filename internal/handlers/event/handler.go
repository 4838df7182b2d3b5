package event

import (
	"net/http"

	"kanpai/infras/otel"
	"kanpai/internal/domains/event/model"
	"kanpai/internal/domains/event/model/dto"
	"kanpai/internal/domains/event/service"
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
	service    service.Event
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Event, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/events", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Auth)
		routerGroup.Use(handler.middleware.RBAC)

		routerGroup.Post("/", handler.CreateEvent)
		routerGroup.Get("/", handler.GetEvents)
		routerGroup.Get("/search", handler.SearchEvents)
		routerGroup.Get("/{id}", handler.GetEventByID)
		routerGroup.Patch("/{id}", handler.UpdateEvent)
		routerGroup.Delete("/{id}", handler.DeleteEvent)
	})
}

// CreateEvent handles the creation of a new event listing.
// @Summary Create a new event
// @Description Create a new event listing with the provided details.
// @Tags Event
// @Accept json
// @Produce json
// @Param request body dto.CreateEventRequest true "Create Event Request"
// @Success 201 {object} response.Message "Event created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /events [post]
// @Security BearerAuth
func (handler *Handler) CreateEvent(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEvent")
	defer scope.End()

	req := dto.CreateEventRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create event")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Event created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Event created successfully")
}

// GetEvents retrieves all event listings based on query parameters.
// @Summary Get all events
// @Description Retrieve all event listings with optional filtering and pagination.
// @Tags Event
// @Accept json
// @Produce json
// @Param type query string false "Filter by event type"
// @Param category query string false "Filter by category"
// @Param is_active query boolean false "Filter by active status"
// @Param is_featured query boolean false "Filter by featured flag"
// @Success 200 {object} dto.GetEventsResponse "List of events"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /events [get]
func (handler *Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEvents")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if eventType := r.URL.Query().Get(model.FieldType); eventType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    eventType,
			Table:    model.TableName,
		})
	}

	if category := r.URL.Query().Get(model.FieldCategory); category != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
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

	if isFeatured := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldIsFeatured)); isFeatured != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsFeatured,
			Operator: gDto.FilterOperatorEq,
			Value:    *isFeatured,
			Table:    model.TableName,
		})
	}

	events, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get events")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Events retrieved successfully")

	response.WithJSON(w, http.StatusOK, events)
}

// SearchEvents searches event listings by free text.
// @Summary Search events
// @Description Search event listings by name, location or organizer, with pagination.
// @Tags Event
// @Accept json
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {object} dto.GetEventsResponse "Matching events"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /events/search [get]
func (handler *Handler) SearchEvents(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchEvents")
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
				ArgName:  "q_organizer",
				Field:    model.FieldOrganizer,
				Operator: gDto.FilterOperatorLike,
				Value:    term,
				Table:    model.TableName,
			},
		},
	}

	events, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search events")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Events searched successfully")

	response.WithJSON(w, http.StatusOK, events)
}

// GetEventByID retrieves an event listing by its ID.
// @Summary Get an event by ID
// @Description Retrieve an event listing by its unique identifier.
// @Tags Event
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.EventResponse "Event details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /events/{id} [get]
func (handler *Handler) GetEventByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEventByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	event, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get event by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Event retrieved successfully")

	response.WithJSON(w, http.StatusOK, event)
}

// UpdateEvent updates an existing event listing by its ID.
// @Summary Update an event by ID
// @Description Update the details of an existing event listing.
// @Tags Event
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.UpdateEventRequest true "Update Event Request"
// @Success 200 {object} response.Message "Event updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /events/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEvent")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateEventRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update event")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Event updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Event updated successfully")
}

// DeleteEvent deletes an event listing by its ID.
// @Summary Delete an event by ID
// @Description Delete an event listing using its unique identifier.
// @Tags Event
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} response.Message "Event deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /events/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEvent")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete event")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Event deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Event deleted successfully")
}
