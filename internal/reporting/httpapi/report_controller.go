package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"greenhouse-server/internal/infra/httpserver"
	"greenhouse-server/internal/reporting/domain"
	"greenhouse-server/internal/reporting/httpapi/internal"
	"greenhouse-server/internal/reporting/usecases"
	shareddomain "greenhouse-server/internal/shared_kernel/domain"
)

const (
	getSummaryErrMessage       = "failed to build report summary"
	invalidDateRangeErrMessage = "invalid date range"

	_defaultSummaryWindowDays = 30
)

func NewReportController(service usecases.ReportService) *ReportController {
	return &ReportController{
		service: service,
	}
}

var _ httpserver.Controller = &ReportController{}

type ReportController struct {
	service usecases.ReportService
}

func (c *ReportController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/reports/summary", c.getSummary())
}

func (c *ReportController) getSummary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseFilters(r)
		if err != nil {
			http.Error(w, invalidDateRangeErrMessage, http.StatusBadRequest)
			return
		}

		summary, err := c.service.GetSummary(r.Context(), filters)
		if err != nil {
			if errors.Is(err, domain.ErrNoData) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			slog.Error("building report summary", slog.String("error", err.Error()))
			http.Error(w, getSummaryErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToSummaryResponse(summary))
	}
}

func parseFilters(r *http.Request) (domain.Filters, error) {
	end := time.Now()
	if raw := r.URL.Query().Get("end"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			return domain.Filters{}, err
		}
		end = parsed
	}

	start := end.AddDate(0, 0, -_defaultSummaryWindowDays)
	if raw := r.URL.Query().Get("start"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			return domain.Filters{}, err
		}
		start = parsed
	}

	if !start.Before(end) {
		return domain.Filters{}, errors.New("start must precede end")
	}

	filters := domain.Filters{Start: start, End: end}
	if raw := r.URL.Query().Get("producer_ids"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			id = strings.TrimSpace(id)
			if id != "" {
				filters.ProducerIDs = append(filters.ProducerIDs, shareddomain.ID(id))
			}
		}
	}

	return filters, nil
}

func parseDate(raw string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		parsed, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, err
		}
	}
	return parsed, nil
}
