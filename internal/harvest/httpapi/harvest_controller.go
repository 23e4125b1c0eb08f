package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	harvestDomain "greenhouse-server/internal/harvest/domain"
	"greenhouse-server/internal/harvest/httpapi/internal"
	"greenhouse-server/internal/harvest/usecases"
	"greenhouse-server/internal/infra/httpserver"
	producerusecases "greenhouse-server/internal/producer/usecases"
	shareddomain "greenhouse-server/internal/shared_kernel/domain"
)

const (
	logHarvestErrMessage            = "failed to log harvest"
	getHarvestErrMessage            = "failed to get harvest"
	listHarvestsErrMessage          = "failed to list harvests"
	updateHarvestErrMessage         = "failed to update harvest"
	deleteHarvestErrMessage         = "failed to delete harvest"
	harvestNotFoundErrMessage       = "harvest not found"
	greenhouseNotFoundErrMessage    = "greenhouse not found"
	greenhouseSoftDeletedErrMessage = "greenhouse is deleted"
	invalidTimeRangeErrMessage      = "invalid time range"
)

func NewHarvestController(service usecases.HarvestService) *HarvestController {
	return &HarvestController{
		service: service,
	}
}

var _ httpserver.Controller = &HarvestController{}

type HarvestController struct {
	service usecases.HarvestService
}

func (c *HarvestController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/harvests", c.listHarvests())
	router.Handle("GET /v1/harvests/{id}", c.getHarvest())
	router.Handle("POST /v1/harvests", c.logHarvest())
	router.Handle("PUT /v1/harvests/{id}", c.updateHarvest())
	router.Handle("DELETE /v1/harvests/{id}", c.deleteHarvest())
}

func (c *HarvestController) listHarvests() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := usecases.Filters{
			ProducerID:   shareddomain.ID(httpserver.GetQueryParam(r, "producer_id")),
			GreenhouseID: shareddomain.ID(httpserver.GetQueryParam(r, "greenhouse_id")),
		}

		var err error
		filters.From, err = parseTimeParam(r, "from")
		if err != nil {
			http.Error(w, invalidTimeRangeErrMessage, http.StatusBadRequest)
			return
		}
		filters.To, err = parseTimeParam(r, "to")
		if err != nil {
			http.Error(w, invalidTimeRangeErrMessage, http.StatusBadRequest)
			return
		}

		paginationParams := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{
			Limit:  paginationParams.Limit,
			Offset: (paginationParams.Page - 1) * paginationParams.Limit,
		}

		harvests, total, err := c.service.ListHarvests(r.Context(), filters, pagination)
		if err != nil {
			slog.Error("listing harvests", slog.String("error", err.Error()))
			http.Error(w, listHarvestsErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.HarvestResponse, len(harvests))
		for i, harvest := range harvests {
			responses[i] = internal.ToHarvestResponse(harvest)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, paginationParams)
	}
}

func (c *HarvestController) getHarvest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		harvest, err := c.service.GetHarvest(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrHarvestNotFound) {
				http.Error(w, harvestNotFoundErrMessage, http.StatusNotFound)
				return
			}
			slog.Error("getting harvest", slog.String("error", err.Error()))
			http.Error(w, getHarvestErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToHarvestResponse(harvest))
	}
}

func (c *HarvestController) logHarvest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.HarvestCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			http.Error(w, logHarvestErrMessage, http.StatusBadRequest)
			return
		}

		if body.GreenhouseID == "" {
			http.Error(w, "greenhouse_id is required", http.StatusBadRequest)
			return
		}
		if body.QuantityKg <= 0 {
			http.Error(w, "quantity_kg must be positive", http.StatusBadRequest)
			return
		}
		if body.UnitPrice < 0 {
			http.Error(w, "unit_price must not be negative", http.StatusBadRequest)
			return
		}

		builder := harvestDomain.NewHarvestBuilder().
			WithGreenhouseID(shareddomain.ID(body.GreenhouseID)).
			WithCrop(body.Crop).
			WithQuantityKg(body.QuantityKg).
			WithUnitPrice(body.UnitPrice)
		if body.HarvestedAt != nil {
			builder = builder.WithHarvestedAt(*body.HarvestedAt)
		}

		harvest, err := builder.Build()
		if err != nil {
			http.Error(w, logHarvestErrMessage, http.StatusBadRequest)
			return
		}

		logged, err := c.service.LogHarvest(r.Context(), harvest)
		if err != nil {
			switch {
			case errors.Is(err, producerusecases.ErrGreenhouseNotFound):
				http.Error(w, greenhouseNotFoundErrMessage, http.StatusNotFound)
			case errors.Is(err, producerusecases.ErrGreenhouseSoftDeleted):
				http.Error(w, greenhouseSoftDeletedErrMessage, http.StatusConflict)
			default:
				slog.Error("logging harvest", slog.String("error", err.Error()))
				http.Error(w, logHarvestErrMessage, http.StatusInternalServerError)
			}
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToHarvestResponse(logged))
	}
}

func (c *HarvestController) updateHarvest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		var body internal.HarvestUpdateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			http.Error(w, updateHarvestErrMessage, http.StatusBadRequest)
			return
		}

		harvest := harvestDomain.Harvest{ID: shareddomain.ID(id)}
		if body.Crop != nil {
			harvest.Crop = *body.Crop
		}
		if body.QuantityKg != nil {
			harvest.QuantityKg = *body.QuantityKg
		}
		if body.UnitPrice != nil {
			harvest.UnitPrice = *body.UnitPrice
		}
		if body.HarvestedAt != nil {
			harvest.HarvestedAt = *body.HarvestedAt
		}

		err = c.service.UpdateHarvest(r.Context(), harvest)
		if err != nil {
			if errors.Is(err, usecases.ErrHarvestNotFound) {
				http.Error(w, harvestNotFoundErrMessage, http.StatusNotFound)
				return
			}
			slog.Error("updating harvest", slog.String("error", err.Error()))
			http.Error(w, updateHarvestErrMessage, http.StatusInternalServerError)
			return
		}

		updated, err := c.service.GetHarvest(r.Context(), shareddomain.ID(id))
		if err != nil {
			slog.Error("reloading harvest", slog.String("error", err.Error()))
			http.Error(w, updateHarvestErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToHarvestResponse(updated))
	}
}

func (c *HarvestController) deleteHarvest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		err := c.service.DeleteHarvest(r.Context(), shareddomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrHarvestNotFound) {
				http.Error(w, harvestNotFoundErrMessage, http.StatusNotFound)
				return
			}
			slog.Error("deleting harvest", slog.String("error", err.Error()))
			http.Error(w, deleteHarvestErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusNoContent, nil)
	}
}

func parseTimeParam(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		// Date-only values are accepted as a convenience.
		parsed, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, err
		}
	}

	return &parsed, nil
}
