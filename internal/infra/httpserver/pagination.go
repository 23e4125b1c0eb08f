package httpserver

import (
	"net/http"
	"strconv"
)

const (
	_defaultPage  = 1
	_defaultLimit = 10
	_maxLimit     = 100
)

type PaginationParams struct {
	Page  int
	Limit int
}

type PaginatedResponse struct {
	Data       any            `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}

type PaginationMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// ExtractPaginationParams reads page/limit query parameters, falling back to
// sane defaults and capping the limit.
func ExtractPaginationParams(r *http.Request) PaginationParams {
	params := PaginationParams{Page: _defaultPage, Limit: _defaultLimit}

	if raw := r.URL.Query().Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page > 0 {
			params.Page = page
		}
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			params.Limit = min(limit, _maxLimit)
		}
	}

	return params
}

func ReplyWithPaginatedData(w http.ResponseWriter, statusCode int, data any, total int, params PaginationParams) {
	totalPages := total / params.Limit
	if total%params.Limit > 0 {
		totalPages++
	}

	response := PaginatedResponse{
		Data: data,
		Pagination: PaginationMeta{
			Page:       params.Page,
			Limit:      params.Limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}

	ReplyJSONResponse(w, statusCode, response)
}
