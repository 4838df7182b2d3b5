package homepage

import (
	"net/http"

	"kanpai/infras/otel"
	"kanpai/internal/domains/homepage/model/dto"
	"kanpai/internal/domains/homepage/service"
	"kanpai/shared/constant"
	"kanpai/shared/validator"
	"kanpai/transport/http/middleware"
	"kanpai/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Homepage
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Homepage, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/homepage", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Auth)
		routerGroup.Use(handler.middleware.RBAC)

		routerGroup.Get("/", handler.GetHomepage)
		routerGroup.Post("/update", handler.UpdateHomepage)
	})
}

// GetHomepage retrieves all homepage content sections.
// @Summary Get homepage content
// @Description Retrieve every homepage content section keyed by section name.
// @Tags Homepage
// @Accept json
// @Produce json
// @Success 200 {object} dto.HomepageResponse "Homepage sections"
// @Failure 500 {object} response.Error
// @Router /homepage [get]
func (handler *Handler) GetHomepage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHomepage")
	defer scope.End()

	homepage, err := handler.service.Get(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get homepage")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Homepage retrieved successfully")

	response.WithJSON(w, http.StatusOK, homepage)
}

// UpdateHomepage replaces the content of the submitted homepage sections.
// @Summary Update homepage content
// @Description Create or replace homepage content sections by section name.
// @Tags Homepage
// @Accept json
// @Produce json
// @Param request body dto.UpdateHomepageRequest true "Update Homepage Request"
// @Success 200 {object} response.Message "Homepage updated successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /homepage/update [post]
// @Security BearerAuth
func (handler *Handler) UpdateHomepage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateHomepage")
	defer scope.End()

	req := dto.UpdateHomepageRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update homepage")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Homepage updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Homepage updated successfully")
}
