package domain

// MergePolicy decides what happens to persisted items the current template
// no longer declares.
type MergePolicy string

const (
	// MergePolicyDrop silently discards orphaned items (template is the
	// sole source of truth).
	MergePolicyDrop MergePolicy = "drop"
	// MergePolicyArchive keeps orphaned items aside so renamed items are
	// not lost.
	MergePolicyArchive MergePolicy = "archive"
)

// MergedChecklist is the load-time reconciliation result: the template shape
// with persisted completion flags and coerced values filled in.
type MergedChecklist struct {
	TemplateID    string
	TemplateName  string
	Sections      []ChecklistSection
	ArchivedItems []ItemState
}

// Merge reconciles a static template with a persisted record. For every
// template item, a persisted item with the same id contributes its completed
// flag and data; detail fields always come from the template so schema
// additions show up on old records. Values are coerced per field type.
// The output lists every template item exactly once, in template order.
// Merge(tpl, recordOf(Merge(tpl, rec))) equals Merge(tpl, rec).
func Merge(template Template, record *ChecklistRecord, policy MergePolicy) MergedChecklist {
	result := MergedChecklist{
		TemplateID:    string(template.ID),
		TemplateName:  string(template.Name),
		Sections:      make([]ChecklistSection, 0, len(template.Sections)),
		ArchivedItems: make([]ItemState, 0),
	}

	declared := make(map[string]struct{})

	for _, section := range template.Sections {
		mergedSection := ChecklistSection{
			ID:    section.ID,
			Title: section.Title,
			Items: make([]ChecklistItem, 0, len(section.Items)),
		}

		for _, item := range section.Items {
			declared[string(item.ID)] = struct{}{}
			mergedSection.Items = append(mergedSection.Items, mergeItem(item, record))
		}

		result.Sections = append(result.Sections, mergedSection)
	}

	if record != nil && policy == MergePolicyArchive {
		for _, persisted := range record.Items {
			if _, ok := declared[string(persisted.ID)]; !ok {
				result.ArchivedItems = append(result.ArchivedItems, persisted)
			}
		}
		result.ArchivedItems = append(result.ArchivedItems, record.ArchivedItems...)
	}

	return result
}

func mergeItem(item ChecklistItem, record *ChecklistRecord) ChecklistItem {
	merged := ChecklistItem{
		ID:           item.ID,
		Label:        item.Label,
		HasDetails:   item.HasDetails,
		DetailFields: item.DetailFields,
		Data:         make(ValueStore),
	}

	var persisted ItemState
	var found bool
	if record != nil {
		persisted, found = record.ItemByID(item.ID)
	}

	if found {
		merged.Completed = persisted.Completed
	}

	for _, field := range item.DetailFields {
		fieldID := string(field.ID)
		if found {
			if value, ok := persisted.Data[fieldID]; ok {
				merged.Data[fieldID] = field.Type.Coerce(value)
				continue
			}
		}
		merged.Data[fieldID] = field.Type.DefaultValue()
	}

	// Keys the template does not declare pass through untouched; they have
	// no type to coerce against and the next sanitized submit drops them.
	if found {
		for key, value := range persisted.Data {
			if _, ok := merged.Data[key]; !ok {
				merged.Data[key] = value
			}
		}
	}

	return merged
}

// RecordItems converts a merged checklist back into persisted item states,
// used when a merge result needs to be saved verbatim.
func (m MergedChecklist) RecordItems() []ItemState {
	var result []ItemState
	for _, section := range m.Sections {
		for _, item := range section.Items {
			result = append(result, ItemState{
				ID:        item.ID,
				Completed: item.Completed,
				Data:      item.Data,
			})
		}
	}
	return result
}

// ItemByID finds a merged item by id across all sections
func (m MergedChecklist) ItemByID(id string) (ChecklistItem, bool) {
	for _, section := range m.Sections {
		for _, item := range section.Items {
			if string(item.ID) == id {
				return item, true
			}
		}
	}
	return ChecklistItem{}, false
}
