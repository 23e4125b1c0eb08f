package internal

import (
	checklistDomain "greenhouse-server/internal/checklist/domain"
)

type TemplateListResponse struct {
	Data []TemplateResponse `json:"data"`
}

type TemplateResponse struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Sections []SectionResponse `json:"sections"`
}

type SectionResponse struct {
	ID    string         `json:"id"`
	Title string         `json:"title"`
	Items []ItemResponse `json:"items"`
}

type ItemResponse struct {
	ID           string                     `json:"id"`
	Label        string                     `json:"label"`
	Completed    bool                       `json:"completed"`
	HasDetails   bool                       `json:"has_details"`
	DetailFields []FieldSchemaResponse      `json:"detail_fields,omitempty"`
	Data         checklistDomain.ValueStore `json:"data,omitempty"`
}

type FieldSchemaResponse struct {
	ID         string                      `json:"id"`
	Label      string                      `json:"label"`
	Type       string                      `json:"type"`
	Required   bool                        `json:"required,omitempty"`
	Options    []string                    `json:"options,omitempty"`
	DependsOn  string                      `json:"depends_on,omitempty"`
	ShowWhen   *checklistDomain.FieldValue `json:"show_when,omitempty"`
	Validation *ValidationResponse         `json:"validation,omitempty"`
}

type ValidationResponse struct {
	Min     *float64 `json:"min,omitempty"`
	Max     *float64 `json:"max,omitempty"`
	Pattern string   `json:"pattern,omitempty"`
}

type MergedChecklistResponse struct {
	TemplateID    string                 `json:"template_id"`
	TemplateName  string                 `json:"template_name"`
	Sections      []SectionResponse      `json:"sections"`
	ArchivedItems []ArchivedItemResponse `json:"archived_items,omitempty"`
}

type ArchivedItemResponse struct {
	ID        string                     `json:"id"`
	Completed bool                       `json:"completed"`
	Data      checklistDomain.ValueStore `json:"data,omitempty"`
}

type SubmitItemRequest struct {
	Values checklistDomain.ValueStore `json:"values"`
}

type SubmitItemResponse struct {
	Warnings []ValidationWarningResponse `json:"warnings"`
}

type ValidationWarningResponse struct {
	FieldID string `json:"field_id"`
	Message string `json:"message"`
}

type PartialFieldUpdateRequest struct {
	Selected *bool   `json:"selected,omitempty"`
	Photo    *string `json:"photo,omitempty"`
	Note     *string `json:"note,omitempty"`
}

func ToTemplateResponse(template checklistDomain.Template) TemplateResponse {
	sections := make([]SectionResponse, len(template.Sections))
	for i, section := range template.Sections {
		sections[i] = toSectionResponse(section)
	}

	return TemplateResponse{
		ID:       string(template.ID),
		Name:     string(template.Name),
		Sections: sections,
	}
}

func ToTemplateListResponse(templates []checklistDomain.Template) TemplateListResponse {
	responses := make([]TemplateResponse, len(templates))
	for i, template := range templates {
		responses[i] = ToTemplateResponse(template)
	}

	return TemplateListResponse{
		Data: responses,
	}
}

func ToMergedChecklistResponse(merged checklistDomain.MergedChecklist) MergedChecklistResponse {
	sections := make([]SectionResponse, len(merged.Sections))
	for i, section := range merged.Sections {
		sections[i] = toSectionResponse(section)
	}

	archived := make([]ArchivedItemResponse, len(merged.ArchivedItems))
	for i, item := range merged.ArchivedItems {
		archived[i] = ArchivedItemResponse{
			ID:        string(item.ID),
			Completed: item.Completed,
			Data:      item.Data,
		}
	}

	return MergedChecklistResponse{
		TemplateID:    merged.TemplateID,
		TemplateName:  merged.TemplateName,
		Sections:      sections,
		ArchivedItems: archived,
	}
}

func ToSubmitItemResponse(warnings []checklistDomain.ValidationWarning) SubmitItemResponse {
	responses := make([]ValidationWarningResponse, len(warnings))
	for i, warning := range warnings {
		responses[i] = ValidationWarningResponse{
			FieldID: string(warning.FieldID),
			Message: warning.Message,
		}
	}

	return SubmitItemResponse{
		Warnings: responses,
	}
}

func toSectionResponse(section checklistDomain.ChecklistSection) SectionResponse {
	items := make([]ItemResponse, len(section.Items))
	for i, item := range section.Items {
		items[i] = ItemResponse{
			ID:           string(item.ID),
			Label:        string(item.Label),
			Completed:    item.Completed,
			HasDetails:   item.HasDetails,
			DetailFields: toFieldSchemaResponses(item.DetailFields),
			Data:         item.Data,
		}
	}

	return SectionResponse{
		ID:    string(section.ID),
		Title: string(section.Title),
		Items: items,
	}
}

func toFieldSchemaResponses(fields []checklistDomain.FieldSchema) []FieldSchemaResponse {
	if len(fields) == 0 {
		return nil
	}

	responses := make([]FieldSchemaResponse, len(fields))
	for i, field := range fields {
		response := FieldSchemaResponse{
			ID:        string(field.ID),
			Label:     string(field.Label),
			Type:      string(field.Type),
			Required:  field.Required,
			Options:   field.Options,
			DependsOn: string(field.DependsOn),
			ShowWhen:  field.ShowWhen,
		}
		if field.Validation != nil {
			response.Validation = &ValidationResponse{
				Min:     field.Validation.Min,
				Max:     field.Validation.Max,
				Pattern: field.Validation.Pattern,
			}
		}
		responses[i] = response
	}

	return responses
}
