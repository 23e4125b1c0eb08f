package domain

import (
	shareddomain "greenhouse-server/internal/shared_kernel/domain"
)

// ChecklistItem is one row of a checklist. Items with HasDetails expand into
// a detail form described by DetailFields; Data holds the answers.
type ChecklistItem struct {
	ID           shareddomain.Name
	Label        shareddomain.DisplayName
	Completed    bool
	HasDetails   bool
	DetailFields []FieldSchema
	Data         ValueStore
}

// ChecklistSection groups ordered items under a title
type ChecklistSection struct {
	ID    shareddomain.Name
	Title shareddomain.DisplayName
	Items []ChecklistItem
}

// Template is a statically defined checklist. The schema side is never
// persisted; only per-greenhouse answers are.
type Template struct {
	ID       shareddomain.Name
	Name     shareddomain.DisplayName
	Sections []ChecklistSection
}

const (
	TemplatePrePlantingID shareddomain.Name = "pre-planting"
	TemplateGreenhouseID  shareddomain.Name = "greenhouse"
)

// Templates returns all statically defined checklists in presentation order
func Templates() []Template {
	return []Template{
		PrePlantingTemplate(),
		GreenhouseTemplate(),
	}
}

// TemplateByID resolves a template by its id
func TemplateByID(id shareddomain.Name) (Template, bool) {
	for _, tpl := range Templates() {
		if tpl.ID == id {
			return tpl, true
		}
	}
	return Template{}, false
}

// PrePlantingTemplate is the checklist run before a crop cycle starts
func PrePlantingTemplate() Template {
	return Template{
		ID:   TemplatePrePlantingID,
		Name: "Pre-Planting Checklist",
		Sections: []ChecklistSection{
			{
				ID:    "soil-preparation",
				Title: "Soil Preparation",
				Items: []ChecklistItem{
					{
						ID:         "soil-analysis",
						Label:      "Soil analysis performed",
						HasDetails: true,
						DetailFields: []FieldSchema{
							{ID: "analysis-date", Label: "Analysis date", Type: FieldTypeDate},
							{ID: "ph-level", Label: "pH level", Type: FieldTypeNumber,
								Validation: &FieldValidation{Min: float64Ptr(0), Max: float64Ptr(14)}},
							{ID: "report-file", Label: "Analysis report", Type: FieldTypeFile},
						},
					},
					{
						ID:         "soil-correction",
						Label:      "Soil correction applied",
						HasDetails: true,
						DetailFields: []FieldSchema{
							{ID: "correction-needed", Label: "Correction needed", Type: FieldTypeSelect,
								Options: []string{"yes", "no"}},
							{ID: "correction-product", Label: "Product applied", Type: FieldTypeText,
								DependsOn: "correction-needed", ShowWhen: showWhenString("yes")},
							{ID: "correction-amount", Label: "Amount (kg)", Type: FieldTypeNumber,
								DependsOn: "correction-needed", ShowWhen: showWhenString("yes")},
						},
					},
					{ID: "bed-preparation", Label: "Beds prepared and leveled"},
				},
			},
			{
				ID:    "inputs",
				Title: "Inputs and Seedlings",
				Items: []ChecklistItem{
					{
						ID:         "seedling-inspection",
						Label:      "Seedlings inspected on arrival",
						HasDetails: true,
						DetailFields: []FieldSchema{
							{ID: "supplier", Label: "Supplier", Type: FieldTypeText},
							{ID: "lot-number", Label: "Lot number", Type: FieldTypeText},
							{ID: "healthy", Label: "Lot healthy", Type: FieldTypeBoolean},
							{ID: "rejection-reason", Label: "Rejection reason", Type: FieldTypeTextarea,
								DependsOn: "healthy", ShowWhen: showWhenBool(false)},
							{ID: "lot-photos", Label: "Lot photos", Type: FieldTypeMultipleFiles},
						},
					},
					{
						ID:         "fertilizer-stock",
						Label:      "Fertilizer stock checked",
						HasDetails: true,
						DetailFields: []FieldSchema{
							{ID: "stock-notes", Label: "Stock notes", Type: FieldTypeTextarea},
							{ID: "restock-needed", Label: "Restock needed", Type: FieldTypeCheckbox},
						},
					},
				},
			},
			{
				ID:    "infrastructure",
				Title: "Infrastructure",
				Items: []ChecklistItem{
					{
						ID:         "irrigation-test",
						Label:      "Irrigation system tested",
						HasDetails: true,
						DetailFields: []FieldSchema{
							{ID: "system-type", Label: "System type", Type: FieldTypeRadio,
								Options: []string{"drip", "sprinkler", "manual"}},
							{ID: "flow-rate", Label: "Flow rate (L/h)", Type: FieldTypeNumber,
								DependsOn: "system-type", ShowWhen: showWhenString("drip")},
						},
					},
					{ID: "plastic-cover", Label: "Plastic cover inspected"},
				},
			},
		},
	}
}

// GreenhouseTemplate is the recurring in-cycle operations checklist
func GreenhouseTemplate() Template {
	return Template{
		ID:   TemplateGreenhouseID,
		Name: "Greenhouse Checklist",
		Sections: []ChecklistSection{
			{
				ID:    "daily-care",
				Title: "Daily Care",
				Items: []ChecklistItem{
					{
						ID:         "climate-check",
						Label:      "Temperature and humidity checked",
						HasDetails: true,
						DetailFields: []FieldSchema{
							{ID: "climate-header", Label: "Morning reading", Type: FieldTypeSubheader},
							{ID: "temperature", Label: "Temperature (°C)", Type: FieldTypeNumber,
								Validation: &FieldValidation{Min: float64Ptr(-10), Max: float64Ptr(60)}},
							{ID: "humidity", Label: "Humidity (%)", Type: FieldTypeNumber,
								Validation: &FieldValidation{Min: float64Ptr(0), Max: float64Ptr(100)}},
						},
					},
					{
						ID:         "irrigation-check",
						Label:      "Irrigation executed",
						HasDetails: true,
						DetailFields: []FieldSchema{
							{ID: "irrigation-time", Label: "Duration (minutes)", Type: FieldTypeNumber},
							{ID: "water-issue", Label: "Water supply issue", Type: FieldTypeBoolean},
							{ID: "issue-description", Label: "Issue description", Type: FieldTypeTextarea,
								DependsOn: "water-issue", ShowWhen: showWhenBool(true)},
						},
					},
				},
			},
			{
				ID:    "crop-health",
				Title: "Crop Health",
				Items: []ChecklistItem{
					{
						ID:         "pest-monitoring",
						Label:      "Pest and disease monitoring",
						HasDetails: true,
						DetailFields: []FieldSchema{
							{ID: "aphids", Label: "Aphids", Type: FieldTypePestControl},
							{ID: "whitefly", Label: "Whitefly", Type: FieldTypePestControl},
							{ID: "mites", Label: "Mites", Type: FieldTypePestControl},
							{ID: "fungal-spots", Label: "Fungal spots", Type: FieldTypePestControl},
						},
					},
					{
						ID:         "development-tracking",
						Label:      "Crop development stage",
						HasDetails: true,
						DetailFields: []FieldSchema{
							{ID: "germination", Label: "Germination", Type: FieldTypeDevelopmentStage},
							{ID: "vegetative", Label: "Vegetative growth", Type: FieldTypeDevelopmentStage},
							{ID: "flowering", Label: "Flowering", Type: FieldTypeDevelopmentStage},
							{ID: "fruiting", Label: "Fruiting", Type: FieldTypeDevelopmentStage},
						},
					},
				},
			},
			{
				ID:    "harvest-prep",
				Title: "Harvest Preparation",
				Items: []ChecklistItem{
					{
						ID:         "harvest-forecast",
						Label:      "Harvest forecast updated",
						HasDetails: true,
						DetailFields: []FieldSchema{
							{ID: "expected-date", Label: "Expected date", Type: FieldTypeDate},
							{ID: "expected-quantity", Label: "Expected quantity (kg)", Type: FieldTypeNumber},
						},
					},
					{ID: "crate-cleaning", Label: "Crates cleaned and ready"},
				},
			},
		},
	}
}

func showWhenString(v string) *FieldValue {
	value := StringValue(v)
	return &value
}

func showWhenBool(v bool) *FieldValue {
	value := BoolValue(v)
	return &value
}

func float64Ptr(v float64) *float64 {
	return &v
}
