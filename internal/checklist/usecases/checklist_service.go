package usecases

//go:generate mockgen -source=checklist_service.go -destination=../../../test/unit/doubles/checklist/usecases/checklist_service_mock.go -package=usecases -mock_names=ChecklistService=MockChecklistService

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	checklistDomain "greenhouse-server/internal/checklist/domain"
	shareddomain "greenhouse-server/internal/shared_kernel/domain"
)

var (
	ErrFieldNotPartial = errors.New("field does not support partial updates")
)

type ChecklistService interface {
	ListTemplates(ctx context.Context) []checklistDomain.Template
	GetChecklist(ctx context.Context, greenhouseID shareddomain.ID, templateID shareddomain.Name) (checklistDomain.MergedChecklist, error)
	SubmitItem(ctx context.Context, greenhouseID shareddomain.ID, templateID shareddomain.Name, itemID shareddomain.Name, values checklistDomain.ValueStore) ([]checklistDomain.ValidationWarning, error)
	UpdateItemField(ctx context.Context, greenhouseID shareddomain.ID, templateID shareddomain.Name, itemID shareddomain.Name, fieldID shareddomain.Name, update checklistDomain.PartialFieldUpdate) error
}

func NewChecklistService(repository ChecklistRecordRepository, mergePolicy checklistDomain.MergePolicy) *SimpleChecklistService {
	return &SimpleChecklistService{
		repository:  repository,
		mergePolicy: mergePolicy,
	}
}

var _ ChecklistService = (*SimpleChecklistService)(nil)

type SimpleChecklistService struct {
	repository  ChecklistRecordRepository
	mergePolicy checklistDomain.MergePolicy
}

func (s *SimpleChecklistService) ListTemplates(_ context.Context) []checklistDomain.Template {
	return checklistDomain.Templates()
}

func (s *SimpleChecklistService) GetChecklist(
	ctx context.Context,
	greenhouseID shareddomain.ID,
	templateID shareddomain.Name,
) (checklistDomain.MergedChecklist, error) {
	template, ok := checklistDomain.TemplateByID(templateID)
	if !ok {
		return checklistDomain.MergedChecklist{}, checklistDomain.ErrTemplateNotFound
	}

	record, err := s.repository.GetByGreenhouseAndTemplate(ctx, greenhouseID, templateID)
	if err != nil {
		if errors.Is(err, ErrChecklistRecordNotFound) {
			return checklistDomain.Merge(template, nil, s.mergePolicy), nil
		}
		slog.Error("getting checklist record", slog.String("error", err.Error()))
		return checklistDomain.MergedChecklist{}, fmt.Errorf("getting checklist record: %w", err)
	}

	return checklistDomain.Merge(template, &record, s.mergePolicy), nil
}

func (s *SimpleChecklistService) SubmitItem(
	ctx context.Context,
	greenhouseID shareddomain.ID,
	templateID shareddomain.Name,
	itemID shareddomain.Name,
	values checklistDomain.ValueStore,
) ([]checklistDomain.ValidationWarning, error) {
	item, err := templateItem(templateID, itemID)
	if err != nil {
		return nil, err
	}

	sanitized := checklistDomain.Sanitize(item.DetailFields, values)

	var warnings []checklistDomain.ValidationWarning
	for _, field := range item.DetailFields {
		if value, ok := sanitized[string(field.ID)]; ok {
			warnings = append(warnings, field.Validate(value)...)
		}
	}

	record, created, err := s.loadOrCreateRecord(ctx, greenhouseID, templateID)
	if err != nil {
		return nil, err
	}

	// Wholesale replacement of the item state: the latest submit wins,
	// there is no version check.
	record.SetItem(checklistDomain.ItemState{
		ID:        itemID,
		Completed: true,
		Data:      sanitized,
	})

	if err := s.persist(ctx, record, created); err != nil {
		return nil, err
	}

	slog.Info("checklist item submitted",
		slog.String("greenhouse_id", greenhouseID.String()),
		slog.String("template_id", string(templateID)),
		slog.String("item_id", string(itemID)),
		slog.Int("warnings", len(warnings)))

	return warnings, nil
}

func (s *SimpleChecklistService) UpdateItemField(
	ctx context.Context,
	greenhouseID shareddomain.ID,
	templateID shareddomain.Name,
	itemID shareddomain.Name,
	fieldID shareddomain.Name,
	update checklistDomain.PartialFieldUpdate,
) error {
	item, err := templateItem(templateID, itemID)
	if err != nil {
		return err
	}

	var field checklistDomain.FieldSchema
	var found bool
	for _, candidate := range item.DetailFields {
		if candidate.ID == fieldID {
			field = candidate
			found = true
			break
		}
	}
	if !found {
		return checklistDomain.ErrFieldNotFound
	}

	if field.Type != checklistDomain.FieldTypePestControl && field.Type != checklistDomain.FieldTypeDevelopmentStage {
		return ErrFieldNotPartial
	}

	record, created, err := s.loadOrCreateRecord(ctx, greenhouseID, templateID)
	if err != nil {
		return err
	}

	state, _ := record.ItemByID(itemID)
	state.ID = itemID
	if state.Data == nil {
		state.Data = make(checklistDomain.ValueStore)
	}

	// The update lands on the same store key full submissions use and does
	// not flip the completion flag.
	state.Data = checklistDomain.ApplyPartialUpdate(field, state.Data, update)
	record.SetItem(state)

	if err := s.persist(ctx, record, created); err != nil {
		return err
	}

	slog.Info("checklist field updated",
		slog.String("greenhouse_id", greenhouseID.String()),
		slog.String("item_id", string(itemID)),
		slog.String("field_id", string(fieldID)))

	return nil
}

func templateItem(templateID, itemID shareddomain.Name) (checklistDomain.ChecklistItem, error) {
	template, ok := checklistDomain.TemplateByID(templateID)
	if !ok {
		return checklistDomain.ChecklistItem{}, checklistDomain.ErrTemplateNotFound
	}

	for _, section := range template.Sections {
		for _, item := range section.Items {
			if item.ID == itemID {
				return item, nil
			}
		}
	}

	return checklistDomain.ChecklistItem{}, checklistDomain.ErrItemNotFound
}

func (s *SimpleChecklistService) loadOrCreateRecord(
	ctx context.Context,
	greenhouseID shareddomain.ID,
	templateID shareddomain.Name,
) (checklistDomain.ChecklistRecord, bool, error) {
	record, err := s.repository.GetByGreenhouseAndTemplate(ctx, greenhouseID, templateID)
	if err == nil {
		return record, false, nil
	}

	if !errors.Is(err, ErrChecklistRecordNotFound) {
		slog.Error("getting checklist record", slog.String("error", err.Error()))
		return checklistDomain.ChecklistRecord{}, false, fmt.Errorf("getting checklist record: %w", err)
	}

	record, err = checklistDomain.NewChecklistRecordBuilder().
		WithGreenhouseID(greenhouseID).
		WithTemplateID(templateID).
		Build()
	if err != nil {
		return checklistDomain.ChecklistRecord{}, false, fmt.Errorf("building checklist record: %w", err)
	}

	return record, true, nil
}

func (s *SimpleChecklistService) persist(ctx context.Context, record checklistDomain.ChecklistRecord, created bool) error {
	if created {
		if err := s.repository.Create(ctx, record); err != nil {
			slog.Error("creating checklist record", slog.String("error", err.Error()))
			return fmt.Errorf("creating checklist record: %w", err)
		}
		return nil
	}

	if err := s.repository.Update(ctx, record); err != nil {
		slog.Error("updating checklist record", slog.String("error", err.Error()))
		return fmt.Errorf("updating checklist record: %w", err)
	}
	return nil
}
