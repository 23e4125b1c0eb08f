package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"greenhouse-server/internal/infra/httpserver"
	producerDomain "greenhouse-server/internal/producer/domain"
	"greenhouse-server/internal/producer/httpapi/internal"
	"greenhouse-server/internal/producer/usecases"
	shareddomain "greenhouse-server/internal/shared_kernel/domain"
)

const (
	createGreenhouseErrMessage      = "failed to create greenhouse"
	getGreenhouseErrMessage         = "failed to get greenhouse"
	listGreenhousesErrMessage       = "failed to list greenhouses"
	updateGreenhouseErrMessage      = "failed to update greenhouse"
	deleteGreenhouseErrMessage      = "failed to delete greenhouse"
	greenhouseNotFoundErrMessage    = "greenhouse not found"
	greenhouseSoftDeletedErrMessage = "greenhouse is already deleted"
)

func NewGreenhouseController(service usecases.GreenhouseService) *GreenhouseController {
	return &GreenhouseController{
		service: service,
	}
}

var _ httpserver.Controller = &GreenhouseController{}

type GreenhouseController struct {
	service usecases.GreenhouseService
}

func (c *GreenhouseController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/greenhouses", c.listGreenhouses())
	router.Handle("GET /v1/greenhouses/{id}", c.getGreenhouse())
	router.Handle("POST /v1/greenhouses", c.createGreenhouse())
	router.Handle("PUT /v1/greenhouses/{id}", c.updateGreenhouse())
	router.Handle("DELETE /v1/greenhouses/{id}", c.deleteGreenhouse())
}

func (c *GreenhouseController) listGreenhouses() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		producerID := httpserver.GetQueryParam(r, "producer_id")

		paginationParams := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{
			Limit:  paginationParams.Limit,
			Offset: (paginationParams.Page - 1) * paginationParams.Limit,
		}

		greenhouses, total, err := c.service.ListGreenhouses(r.Context(), shareddomain.ID(producerID), pagination)
		if err != nil {
			slog.Error("listing greenhouses", slog.String("error", err.Error()))
			http.Error(w, listGreenhousesErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.GreenhouseResponse, len(greenhouses))
		for i, greenhouse := range greenhouses {
			responses[i] = internal.ToGreenhouseResponse(greenhouse)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, paginationParams)
	}
}

func (c *GreenhouseController) getGreenhouse() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		greenhouse, err := c.service.GetGreenhouse(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrGreenhouseNotFound) {
				http.Error(w, greenhouseNotFoundErrMessage, http.StatusNotFound)
				return
			}
			slog.Error("getting greenhouse", slog.String("error", err.Error()))
			http.Error(w, getGreenhouseErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToGreenhouseResponse(greenhouse))
	}
}

func (c *GreenhouseController) createGreenhouse() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.GreenhouseCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			http.Error(w, createGreenhouseErrMessage, http.StatusBadRequest)
			return
		}

		if body.ProducerID == "" || body.Name == "" {
			http.Error(w, "producer_id and name are required", http.StatusBadRequest)
			return
		}

		greenhouse, err := producerDomain.NewGreenhouseBuilder().
			WithProducerID(shareddomain.ID(body.ProducerID)).
			WithName(body.Name).
			WithLocation(body.Location).
			WithAreaM2(body.AreaM2).
			WithCrop(body.Crop).
			Build()
		if err != nil {
			http.Error(w, createGreenhouseErrMessage, http.StatusBadRequest)
			return
		}

		err = c.service.CreateGreenhouse(r.Context(), greenhouse)
		if err != nil {
			switch {
			case errors.Is(err, usecases.ErrProducerNotFound):
				http.Error(w, producerNotFoundErrMessage, http.StatusNotFound)
			case errors.Is(err, usecases.ErrProducerSoftDeleted):
				http.Error(w, producerSoftDeletedErrMessage, http.StatusConflict)
			default:
				slog.Error("creating greenhouse", slog.String("error", err.Error()))
				http.Error(w, createGreenhouseErrMessage, http.StatusInternalServerError)
			}
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToGreenhouseResponse(greenhouse))
	}
}

func (c *GreenhouseController) updateGreenhouse() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		var body internal.GreenhouseUpdateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			http.Error(w, updateGreenhouseErrMessage, http.StatusBadRequest)
			return
		}

		greenhouse := producerDomain.Greenhouse{ID: shareddomain.ID(id)}
		if body.Name != nil {
			greenhouse.Name = *body.Name
		}
		if body.Location != nil {
			greenhouse.Location = *body.Location
		}
		if body.AreaM2 != nil {
			greenhouse.AreaM2 = *body.AreaM2
		}
		if body.Crop != nil {
			greenhouse.Crop = *body.Crop
		}

		err = c.service.UpdateGreenhouse(r.Context(), greenhouse)
		if err != nil {
			switch {
			case errors.Is(err, usecases.ErrGreenhouseNotFound):
				http.Error(w, greenhouseNotFoundErrMessage, http.StatusNotFound)
			case errors.Is(err, usecases.ErrGreenhouseSoftDeleted):
				http.Error(w, greenhouseSoftDeletedErrMessage, http.StatusConflict)
			default:
				slog.Error("updating greenhouse", slog.String("error", err.Error()))
				http.Error(w, updateGreenhouseErrMessage, http.StatusInternalServerError)
			}
			return
		}

		updated, err := c.service.GetGreenhouse(r.Context(), shareddomain.ID(id))
		if err != nil {
			slog.Error("reloading greenhouse", slog.String("error", err.Error()))
			http.Error(w, updateGreenhouseErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToGreenhouseResponse(updated))
	}
}

func (c *GreenhouseController) deleteGreenhouse() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		err := c.service.SoftDeleteGreenhouse(r.Context(), shareddomain.ID(id))
		if err != nil {
			switch {
			case errors.Is(err, usecases.ErrGreenhouseNotFound):
				http.Error(w, greenhouseNotFoundErrMessage, http.StatusNotFound)
			case errors.Is(err, usecases.ErrGreenhouseSoftDeleted):
				http.Error(w, greenhouseSoftDeletedErrMessage, http.StatusConflict)
			default:
				slog.Error("deleting greenhouse", slog.String("error", err.Error()))
				http.Error(w, deleteGreenhouseErrMessage, http.StatusInternalServerError)
			}
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusNoContent, nil)
	}
}
