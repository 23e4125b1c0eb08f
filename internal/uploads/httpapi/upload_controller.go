package httpapi

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"greenhouse-server/internal/infra/httpserver"
	"greenhouse-server/internal/uploads/domain"
	"greenhouse-server/internal/uploads/httpapi/internal"
	"greenhouse-server/internal/uploads/usecases"
)

const (
	uploadErrMessage         = "failed to upload file"
	missingFileErrMessage    = "file part is required"
	objectNotFoundErrMessage = "upload not found"
)

func NewUploadController(service usecases.UploadService) *UploadController {
	return &UploadController{
		service: service,
	}
}

var _ httpserver.Controller = &UploadController{}

type UploadController struct {
	service usecases.UploadService
}

func (c *UploadController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /v1/uploads", c.upload())
	router.Handle("GET /v1/uploads/{key}", c.fetch())
}

func (c *UploadController) upload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// One extra byte over the cap is enough to detect oversize bodies
		// without buffering unbounded input.
		r.Body = http.MaxBytesReader(w, r.Body, domain.MaxUploadSize+1)

		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, missingFileErrMessage, http.StatusBadRequest)
			return
		}
		defer file.Close()

		if header.Size > domain.MaxUploadSize {
			http.Error(w, domain.ErrFileTooLarge.Error(), http.StatusBadRequest)
			return
		}

		data, err := io.ReadAll(file)
		if err != nil {
			http.Error(w, uploadErrMessage, http.StatusBadRequest)
			return
		}

		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			contentType = http.DetectContentType(data)
		}

		result, err := c.service.Upload(r.Context(), usecases.UploadRequest{
			FieldID:     r.FormValue("field_id"),
			ContentType: contentType,
			Data:        data,
		})
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrUnsupportedMediaType), errors.Is(err, domain.ErrFileTooLarge):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				slog.Error("uploading file", slog.String("error", err.Error()))
				http.Error(w, uploadErrMessage, http.StatusInternalServerError)
			}
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.UploadResponse{
			Key: result.Key,
			URL: result.URL,
		})
	}
}

func (c *UploadController) fetch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := r.PathValue("key")

		data, contentType, err := c.service.Fetch(r.Context(), key)
		if err != nil {
			if errors.Is(err, usecases.ErrObjectNotFound) {
				http.Error(w, objectNotFoundErrMessage, http.StatusNotFound)
				return
			}
			slog.Error("fetching upload", slog.String("key", key), slog.String("error", err.Error()))
			http.Error(w, uploadErrMessage, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}
