package domain

import (
	"fmt"
	"regexp"

	shareddomain "greenhouse-server/internal/shared_kernel/domain"
)

// FieldType is the closed set of input variants a detail field can declare
type FieldType string

const (
	FieldTypeText             FieldType = "text"
	FieldTypeTextarea         FieldType = "textarea"
	FieldTypeDate             FieldType = "date"
	FieldTypeNumber           FieldType = "number"
	FieldTypeBoolean          FieldType = "boolean"
	FieldTypeSelect           FieldType = "select"
	FieldTypeRadio            FieldType = "radio"
	FieldTypeCheckbox         FieldType = "checkbox"
	FieldTypeFile             FieldType = "file"
	FieldTypeMultipleFiles    FieldType = "multiple-files"
	FieldTypeSubheader        FieldType = "subheader"
	FieldTypePestControl      FieldType = "pest-control"
	FieldTypeDevelopmentStage FieldType = "development-stage"
)

// FieldSchema declares one input element of a checklist item's detail form.
// DependsOn, when set, must reference a field declared earlier in the same
// field list; the engine does not sort dependencies.
type FieldSchema struct {
	ID         shareddomain.Name
	Label      shareddomain.DisplayName
	Type       FieldType
	Required   bool
	Options    []string
	DependsOn  shareddomain.Name
	ShowWhen   *FieldValue
	Validation *FieldValidation
}

// FieldValidation carries advisory constraints. They are evaluated but never
// block a submission.
type FieldValidation struct {
	Min     *float64
	Max     *float64
	Pattern string
}

// DefaultValue returns the canonical empty value for a field type. Number
// fields default to the empty string, not zero, so reports can tell "not
// entered" apart from "entered as zero".
func (t FieldType) DefaultValue() FieldValue {
	switch t {
	case FieldTypeText, FieldTypeTextarea, FieldTypeDate, FieldTypeFile,
		FieldTypeSelect, FieldTypeRadio, FieldTypeSubheader:
		return StringValue("")
	case FieldTypeNumber:
		return StringValue("")
	case FieldTypeBoolean, FieldTypeCheckbox:
		return BoolValue(false)
	case FieldTypeMultipleFiles:
		return StringListValue(nil)
	case FieldTypePestControl:
		return PestControlValue(false, "")
	case FieldTypeDevelopmentStage:
		return StageNoteValue(false, "")
	default:
		return StringValue("")
	}
}

// Coerce reconciles a persisted value with the field type: the value is kept
// when its shape matches, otherwise it is replaced with the type's default.
// A shape mismatch is never an error so old records stay usable after schema
// changes.
func (t FieldType) Coerce(value FieldValue) FieldValue {
	switch t {
	case FieldTypeText, FieldTypeTextarea, FieldTypeDate, FieldTypeFile,
		FieldTypeSelect, FieldTypeRadio, FieldTypeSubheader:
		if value.Kind == ValueKindString {
			return value
		}
	case FieldTypeNumber:
		if value.Kind == ValueKindNumber {
			return value
		}
	case FieldTypeBoolean, FieldTypeCheckbox:
		if value.Kind == ValueKindBool {
			return value
		}
	case FieldTypeMultipleFiles:
		if value.Kind == ValueKindStringList {
			return value
		}
	case FieldTypePestControl:
		if value.Kind == ValueKindPestControl {
			return value
		}
	case FieldTypeDevelopmentStage:
		if value.Kind == ValueKindStageNote {
			return value
		}
	}

	return t.DefaultValue()
}

// ValidationWarning describes an advisory constraint violation
type ValidationWarning struct {
	FieldID shareddomain.Name
	Message string
}

// Validate evaluates the field's advisory constraints against a value.
// Warnings are informational; the engine accepts every value.
func (f FieldSchema) Validate(value FieldValue) []ValidationWarning {
	if f.Validation == nil {
		return nil
	}

	var warnings []ValidationWarning

	if value.Kind == ValueKindNumber {
		if f.Validation.Min != nil && value.Num < *f.Validation.Min {
			warnings = append(warnings, ValidationWarning{
				FieldID: f.ID,
				Message: fmt.Sprintf("value %v is below minimum %v", value.Num, *f.Validation.Min),
			})
		}
		if f.Validation.Max != nil && value.Num > *f.Validation.Max {
			warnings = append(warnings, ValidationWarning{
				FieldID: f.ID,
				Message: fmt.Sprintf("value %v is above maximum %v", value.Num, *f.Validation.Max),
			})
		}
	}

	if value.Kind == ValueKindString && f.Validation.Pattern != "" && value.Str != "" {
		re, err := regexp.Compile(f.Validation.Pattern)
		if err == nil && !re.MatchString(value.Str) {
			warnings = append(warnings, ValidationWarning{
				FieldID: f.ID,
				Message: fmt.Sprintf("value does not match pattern %s", f.Validation.Pattern),
			})
		}
	}

	return warnings
}
