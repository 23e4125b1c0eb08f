package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	checklistDomain "greenhouse-server/internal/checklist/domain"
	"greenhouse-server/internal/checklist/httpapi/internal"
	"greenhouse-server/internal/checklist/usecases"
	"greenhouse-server/internal/infra/httpserver"
	shareddomain "greenhouse-server/internal/shared_kernel/domain"
)

const (
	getChecklistErrMessage     = "failed to get checklist"
	submitItemErrMessage       = "failed to submit checklist item"
	updateItemFieldErrMessage  = "failed to update checklist item field"
	templateNotFoundErrMessage = "checklist template not found"
	itemNotFoundErrMessage     = "checklist item not found"
	fieldNotFoundErrMessage    = "checklist field not found"
	fieldNotPartialErrMessage  = "field does not support partial updates"
)

func NewChecklistController(service usecases.ChecklistService) *ChecklistController {
	return &ChecklistController{
		service: service,
	}
}

var _ httpserver.Controller = &ChecklistController{}

type ChecklistController struct {
	service usecases.ChecklistService
}

func (c *ChecklistController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/checklists/templates", c.listTemplates())
	router.Handle("GET /v1/greenhouses/{greenhouseID}/checklists/{templateID}", c.getChecklist())
	router.Handle("PUT /v1/greenhouses/{greenhouseID}/checklists/{templateID}/items/{itemID}", c.submitItem())
	router.Handle("PATCH /v1/greenhouses/{greenhouseID}/checklists/{templateID}/items/{itemID}/fields/{fieldID}", c.updateItemField())
}

func (c *ChecklistController) listTemplates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		templates := c.service.ListTemplates(r.Context())
		response := internal.ToTemplateListResponse(templates)
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *ChecklistController) getChecklist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		greenhouseID := r.PathValue("greenhouseID")
		templateID := r.PathValue("templateID")

		merged, err := c.service.GetChecklist(r.Context(),
			shareddomain.ID(greenhouseID), shareddomain.Name(templateID))
		if err != nil {
			if errors.Is(err, checklistDomain.ErrTemplateNotFound) {
				http.Error(w, templateNotFoundErrMessage, http.StatusNotFound)
				return
			}
			slog.Error("getting checklist", slog.String("error", err.Error()))
			http.Error(w, getChecklistErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToMergedChecklistResponse(merged)
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *ChecklistController) submitItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		greenhouseID := r.PathValue("greenhouseID")
		templateID := r.PathValue("templateID")
		itemID := r.PathValue("itemID")

		var body internal.SubmitItemRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			http.Error(w, submitItemErrMessage, http.StatusBadRequest)
			return
		}
		if body.Values == nil {
			body.Values = checklistDomain.ValueStore{}
		}

		warnings, err := c.service.SubmitItem(r.Context(),
			shareddomain.ID(greenhouseID), shareddomain.Name(templateID), shareddomain.Name(itemID), body.Values)
		if err != nil {
			switch {
			case errors.Is(err, checklistDomain.ErrTemplateNotFound):
				http.Error(w, templateNotFoundErrMessage, http.StatusNotFound)
			case errors.Is(err, checklistDomain.ErrItemNotFound):
				http.Error(w, itemNotFoundErrMessage, http.StatusNotFound)
			default:
				slog.Error("submitting checklist item", slog.String("error", err.Error()))
				http.Error(w, submitItemErrMessage, http.StatusInternalServerError)
			}
			return
		}

		response := internal.ToSubmitItemResponse(warnings)
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *ChecklistController) updateItemField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		greenhouseID := r.PathValue("greenhouseID")
		templateID := r.PathValue("templateID")
		itemID := r.PathValue("itemID")
		fieldID := r.PathValue("fieldID")

		var body internal.PartialFieldUpdateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			http.Error(w, updateItemFieldErrMessage, http.StatusBadRequest)
			return
		}

		update := checklistDomain.PartialFieldUpdate{
			Selected: body.Selected,
			Photo:    body.Photo,
			Note:     body.Note,
		}

		err = c.service.UpdateItemField(r.Context(),
			shareddomain.ID(greenhouseID), shareddomain.Name(templateID),
			shareddomain.Name(itemID), shareddomain.Name(fieldID), update)
		if err != nil {
			switch {
			case errors.Is(err, checklistDomain.ErrTemplateNotFound):
				http.Error(w, templateNotFoundErrMessage, http.StatusNotFound)
			case errors.Is(err, checklistDomain.ErrItemNotFound):
				http.Error(w, itemNotFoundErrMessage, http.StatusNotFound)
			case errors.Is(err, checklistDomain.ErrFieldNotFound):
				http.Error(w, fieldNotFoundErrMessage, http.StatusNotFound)
			case errors.Is(err, usecases.ErrFieldNotPartial):
				http.Error(w, fieldNotPartialErrMessage, http.StatusBadRequest)
			default:
				slog.Error("updating checklist item field", slog.String("error", err.Error()))
				http.Error(w, updateItemFieldErrMessage, http.StatusInternalServerError)
			}
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusNoContent, nil)
	}
}
