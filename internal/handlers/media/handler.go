package media

import (
	"net/http"

	"kanpai/infras/otel"
	"kanpai/internal/domains/media/model/dto"
	"kanpai/internal/domains/media/service"
	"kanpai/shared/constant"
	gDto "kanpai/shared/dto"
	"kanpai/shared/failure"
	"kanpai/shared/validator"
	"kanpai/transport/http/middleware"
	"kanpai/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Media
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Media, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/upload", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Auth)
		routerGroup.Use(handler.middleware.RBAC)

		routerGroup.Post("/image", handler.UploadImage)
		routerGroup.Get("/images", handler.GetMediaFiles)
		routerGroup.Delete("/image/{filename}", handler.DeleteImage)
	})
}

// UploadImage uploads an image to object storage and records it.
// @Summary Upload an image
// @Description Upload a PNG or JPEG image of at most 2 MB and get back its public URL.
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 201 {object} dto.UploadImageResponse "Uploaded image details"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /upload/image [post]
// @Security BearerAuth
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read uploaded file")

		response.WithError(w, failure.BadRequestFromString("file is required"))

		return
	}
	defer file.Close()

	req := dto.UploadImageRequest{File: *fileHeader}
	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate uploaded file")

		response.WithError(w, err)

		return
	}

	uploaded, err := handler.service.UploadImage(ctx, file, fileHeader)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload image")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Image uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, uploaded)
}

// DeleteImage removes an uploaded image by its stored file name.
// @Summary Delete an uploaded image
// @Description Delete an uploaded image from object storage by its stored file name.
// @Tags Media
// @Accept json
// @Produce json
// @Param filename path string true "Stored file name"
// @Success 200 {object} response.Message "Image deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /upload/image/{filename} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteImage")
	defer scope.End()

	fileName := chi.URLParam(r, constant.RequestParamFilename)
	if fileName == constant.Empty {
		response.WithError(w, failure.BadRequestFromString("filename is required"))

		return
	}

	if err := handler.service.DeleteImage(ctx, fileName); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete image")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Image deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Image deleted successfully")
}

// GetMediaFiles lists uploaded media files.
// @Summary Get media files
// @Description Retrieve uploaded media files with pagination.
// @Tags Media
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetMediaFilesResponse "List of media files"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /upload/images [get]
// @Security BearerAuth
func (handler *Handler) GetMediaFiles(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMediaFiles")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	files, err := handler.service.GetAll(ctx, queryParams, gDto.FilterGroup{})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get media files")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Media files retrieved successfully")

	response.WithJSON(w, http.StatusOK, files)
}
