package blog

import (
	"net/http"

	"kanpai/infras/otel"
	"kanpai/internal/domains/blog/model"
	"kanpai/internal/domains/blog/model/dto"
	"kanpai/internal/domains/blog/service"
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
	service    service.Blog
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Blog, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/blogs", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Auth)
		routerGroup.Use(handler.middleware.RBAC)

		routerGroup.Post("/", handler.CreateBlog)
		routerGroup.Get("/", handler.GetBlogs)
		routerGroup.Get("/search", handler.SearchBlogs)
		routerGroup.Get("/{id}", handler.GetBlogByID)
		routerGroup.Patch("/{id}", handler.UpdateBlog)
		routerGroup.Delete("/{id}", handler.DeleteBlog)
	})
}

// CreateBlog handles the creation of a new blog post.
// @Summary Create a new blog post
// @Description Create a new blog post with the provided details.
// @Tags Blog
// @Accept json
// @Produce json
// @Param request body dto.CreateBlogRequest true "Create Blog Request"
// @Success 201 {object} response.Message "Blog created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /blogs [post]
// @Security BearerAuth
func (handler *Handler) CreateBlog(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBlog")
	defer scope.End()

	req := dto.CreateBlogRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create blog")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Blog created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Blog created successfully")
}

// GetBlogs retrieves all blog posts based on query parameters.
// @Summary Get all blog posts
// @Description Retrieve all blog posts with optional filtering and pagination.
// @Tags Blog
// @Accept json
// @Produce json
// @Param category query string false "Filter by category"
// @Param author query string false "Filter by author"
// @Param featured query boolean false "Filter by featured flag"
// @Param is_active query boolean false "Filter by active status"
// @Success 200 {object} dto.GetBlogsResponse "List of blog posts"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /blogs [get]
func (handler *Handler) GetBlogs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBlogs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if category := r.URL.Query().Get(model.FieldCategory); category != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
			Table:    model.TableName,
		})
	}

	if author := r.URL.Query().Get(model.FieldAuthor); author != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldAuthor,
			Operator: gDto.FilterOperatorEq,
			Value:    author,
			Table:    model.TableName,
		})
	}

	if featured := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldFeatured)); featured != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldFeatured,
			Operator: gDto.FilterOperatorEq,
			Value:    *featured,
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

	blogs, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get blogs")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Blogs retrieved successfully")

	response.WithJSON(w, http.StatusOK, blogs)
}

// SearchBlogs searches blog posts by free text.
// @Summary Search blog posts
// @Description Search blog posts by title, author or category, with pagination.
// @Tags Blog
// @Accept json
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {object} dto.GetBlogsResponse "Matching blog posts"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /blogs/search [get]
func (handler *Handler) SearchBlogs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchBlogs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	term := r.URL.Query().Get(constant.RequestParamSearch)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.Filter{
				ArgName:  "q_title",
				Field:    model.FieldTitle,
				Operator: gDto.FilterOperatorLike,
				Value:    term,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "q_author",
				Field:    model.FieldAuthor,
				Operator: gDto.FilterOperatorLike,
				Value:    term,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "q_category",
				Field:    model.FieldCategory,
				Operator: gDto.FilterOperatorLike,
				Value:    term,
				Table:    model.TableName,
			},
		},
	}

	blogs, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search blogs")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Blogs searched successfully")

	response.WithJSON(w, http.StatusOK, blogs)
}

// GetBlogByID retrieves a blog post by its ID.
// @Summary Get a blog post by ID
// @Description Retrieve a blog post by its unique identifier.
// @Tags Blog
// @Accept json
// @Produce json
// @Param id path string true "Blog ID"
// @Success 200 {object} dto.BlogResponse "Blog details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /blogs/{id} [get]
func (handler *Handler) GetBlogByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBlogByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	blog, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get blog by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Blog retrieved successfully")

	response.WithJSON(w, http.StatusOK, blog)
}

// UpdateBlog updates an existing blog post by its ID.
// @Summary Update a blog post by ID
// @Description Update the details of an existing blog post, including the featured flag.
// @Tags Blog
// @Accept json
// @Produce json
// @Param id path string true "Blog ID"
// @Param request body dto.UpdateBlogRequest true "Update Blog Request"
// @Success 200 {object} response.Message "Blog updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /blogs/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBlog(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBlog")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateBlogRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update blog")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Blog updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Blog updated successfully")
}

// DeleteBlog deletes a blog post by its ID.
// @Summary Delete a blog post by ID
// @Description Delete a blog post using its unique identifier.
// @Tags Blog
// @Accept json
// @Produce json
// @Param id path string true "Blog ID"
// @Success 200 {object} response.Message "Blog deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /blogs/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBlog")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete blog")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Blog deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Blog deleted successfully")
}
