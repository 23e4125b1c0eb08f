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
	createProducerErrMessage      = "failed to create producer"
	getProducerErrMessage         = "failed to get producer"
	listProducersErrMessage       = "failed to list producers"
	updateProducerErrMessage      = "failed to update producer"
	deleteProducerErrMessage      = "failed to delete producer"
	activateProducerErrMessage    = "failed to activate producer"
	deactivateProducerErrMessage  = "failed to deactivate producer"
	producerNotFoundErrMessage    = "producer not found"
	producerDuplicatedErrMessage  = "producer already exists"
	producerSoftDeletedErrMessage = "producer is already deleted"
)

func NewProducerController(service usecases.ProducerService) *ProducerController {
	return &ProducerController{
		service: service,
	}
}

var _ httpserver.Controller = &ProducerController{}

type ProducerController struct {
	service usecases.ProducerService
}

func (c *ProducerController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/producers", c.listProducers())
	router.Handle("GET /v1/producers/{id}", c.getProducer())
	router.Handle("POST /v1/producers", c.createProducer())
	router.Handle("PUT /v1/producers/{id}", c.updateProducer())
	router.Handle("DELETE /v1/producers/{id}", c.deleteProducer())
	router.Handle("POST /v1/producers/{id}/activate", c.activateProducer())
	router.Handle("POST /v1/producers/{id}/deactivate", c.deactivateProducer())
}

func (c *ProducerController) listProducers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		includeDeleted := r.URL.Query().Get("include_deleted") == "true"

		paginationParams := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{
			Limit:  paginationParams.Limit,
			Offset: (paginationParams.Page - 1) * paginationParams.Limit,
		}

		producers, total, err := c.service.ListProducers(r.Context(), includeDeleted, pagination)
		if err != nil {
			slog.Error("listing producers", slog.String("error", err.Error()))
			http.Error(w, listProducersErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.ProducerResponse, len(producers))
		for i, producer := range producers {
			responses[i] = internal.ToProducerResponse(producer)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, paginationParams)
	}
}

func (c *ProducerController) getProducer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		producer, err := c.service.GetProducer(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrProducerNotFound) {
				http.Error(w, producerNotFoundErrMessage, http.StatusNotFound)
				return
			}
			slog.Error("getting producer", slog.String("error", err.Error()))
			http.Error(w, getProducerErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToProducerResponse(producer))
	}
}

func (c *ProducerController) createProducer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.ProducerCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			http.Error(w, createProducerErrMessage, http.StatusBadRequest)
			return
		}

		if body.Name == "" || body.Email == "" {
			http.Error(w, "name and email are required", http.StatusBadRequest)
			return
		}

		producer, err := producerDomain.NewProducerBuilder().
			WithName(body.Name).
			WithEmail(body.Email).
			WithPhone(body.Phone).
			WithFarmName(body.FarmName).
			Build()
		if err != nil {
			http.Error(w, createProducerErrMessage, http.StatusBadRequest)
			return
		}

		err = c.service.CreateProducer(r.Context(), producer)
		if err != nil {
			if errors.Is(err, usecases.ErrProducerDuplicated) {
				http.Error(w, producerDuplicatedErrMessage, http.StatusConflict)
				return
			}
			slog.Error("creating producer", slog.String("error", err.Error()))
			http.Error(w, createProducerErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToProducerResponse(producer))
	}
}

func (c *ProducerController) updateProducer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		var body internal.ProducerUpdateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			http.Error(w, updateProducerErrMessage, http.StatusBadRequest)
			return
		}

		producer := producerDomain.Producer{ID: shareddomain.ID(id)}
		if body.Name != nil {
			producer.Name = *body.Name
		}
		if body.Email != nil {
			producer.Email = *body.Email
		}
		if body.Phone != nil {
			producer.Phone = *body.Phone
		}
		if body.FarmName != nil {
			producer.FarmName = *body.FarmName
		}

		err = c.service.UpdateProducer(r.Context(), producer)
		if err != nil {
			switch {
			case errors.Is(err, usecases.ErrProducerNotFound):
				http.Error(w, producerNotFoundErrMessage, http.StatusNotFound)
			case errors.Is(err, usecases.ErrProducerSoftDeleted):
				http.Error(w, producerSoftDeletedErrMessage, http.StatusConflict)
			case errors.Is(err, usecases.ErrProducerDuplicated):
				http.Error(w, producerDuplicatedErrMessage, http.StatusConflict)
			default:
				slog.Error("updating producer", slog.String("error", err.Error()))
				http.Error(w, updateProducerErrMessage, http.StatusInternalServerError)
			}
			return
		}

		updated, err := c.service.GetProducer(r.Context(), shareddomain.ID(id))
		if err != nil {
			slog.Error("reloading producer", slog.String("error", err.Error()))
			http.Error(w, updateProducerErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToProducerResponse(updated))
	}
}

func (c *ProducerController) deleteProducer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		err := c.service.SoftDeleteProducer(r.Context(), shareddomain.ID(id))
		if err != nil {
			switch {
			case errors.Is(err, usecases.ErrProducerNotFound):
				http.Error(w, producerNotFoundErrMessage, http.StatusNotFound)
			case errors.Is(err, usecases.ErrProducerSoftDeleted):
				http.Error(w, producerSoftDeletedErrMessage, http.StatusConflict)
			default:
				slog.Error("deleting producer", slog.String("error", err.Error()))
				http.Error(w, deleteProducerErrMessage, http.StatusInternalServerError)
			}
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusNoContent, nil)
	}
}

func (c *ProducerController) activateProducer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		err := c.service.ActivateProducer(r.Context(), shareddomain.ID(id))
		if err != nil {
			switch {
			case errors.Is(err, usecases.ErrProducerNotFound):
				http.Error(w, producerNotFoundErrMessage, http.StatusNotFound)
			case errors.Is(err, usecases.ErrProducerSoftDeleted):
				http.Error(w, producerSoftDeletedErrMessage, http.StatusConflict)
			default:
				slog.Error("activating producer", slog.String("error", err.Error()))
				http.Error(w, activateProducerErrMessage, http.StatusInternalServerError)
			}
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, nil)
	}
}

func (c *ProducerController) deactivateProducer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		err := c.service.DeactivateProducer(r.Context(), shareddomain.ID(id))
		if err != nil {
			switch {
			case errors.Is(err, usecases.ErrProducerNotFound):
				http.Error(w, producerNotFoundErrMessage, http.StatusNotFound)
			case errors.Is(err, usecases.ErrProducerSoftDeleted):
				http.Error(w, producerSoftDeletedErrMessage, http.StatusConflict)
			default:
				slog.Error("deactivating producer", slog.String("error", err.Error()))
				http.Error(w, deactivateProducerErrMessage, http.StatusInternalServerError)
			}
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, nil)
	}
}
