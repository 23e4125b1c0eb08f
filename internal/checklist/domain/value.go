package domain

import (
	"encoding/json"
	"fmt"
	"slices"
)

// ValueKind tags the shape carried by a FieldValue
type ValueKind string

const (
	ValueKindString      ValueKind = "string"
	ValueKindNumber      ValueKind = "number"
	ValueKindBool        ValueKind = "bool"
	ValueKindStringList  ValueKind = "string_list"
	ValueKindPestControl ValueKind = "pest_control"
	ValueKindStageNote   ValueKind = "stage_note"
)

// FieldValue is a tagged union over the value shapes a detail field can hold.
// Only the payload matching Kind is meaningful.
type FieldValue struct {
	Kind     ValueKind
	Str      string
	Num      float64
	Bool     bool
	List     []string
	Selected bool
	Photo    string
	Note     string
}

func StringValue(v string) FieldValue {
	return FieldValue{Kind: ValueKindString, Str: v}
}

func NumberValue(v float64) FieldValue {
	return FieldValue{Kind: ValueKindNumber, Num: v}
}

func BoolValue(v bool) FieldValue {
	return FieldValue{Kind: ValueKindBool, Bool: v}
}

func StringListValue(v []string) FieldValue {
	if v == nil {
		v = make([]string, 0)
	}
	return FieldValue{Kind: ValueKindStringList, List: v}
}

func PestControlValue(selected bool, photo string) FieldValue {
	return FieldValue{Kind: ValueKindPestControl, Selected: selected, Photo: photo}
}

func StageNoteValue(selected bool, note string) FieldValue {
	return FieldValue{Kind: ValueKindStageNote, Selected: selected, Note: note}
}

// Equal is strict: kinds must match and the matching payload must be identical.
// There is no cross-kind coercion, so "1" never equals 1.
func (v FieldValue) Equal(other FieldValue) bool {
	if v.Kind != other.Kind {
		return false
	}

	switch v.Kind {
	case ValueKindString:
		return v.Str == other.Str
	case ValueKindNumber:
		return v.Num == other.Num
	case ValueKindBool:
		return v.Bool == other.Bool
	case ValueKindStringList:
		return slices.Equal(v.List, other.List)
	case ValueKindPestControl:
		return v.Selected == other.Selected && v.Photo == other.Photo
	case ValueKindStageNote:
		return v.Selected == other.Selected && v.Note == other.Note
	default:
		return false
	}
}

// WithPhoto returns a copy with the photo URL replaced, keeping the selection
func (v FieldValue) WithPhoto(url string) FieldValue {
	v.Photo = url
	return v
}

// WithNote returns a copy with the note replaced, keeping the selection
func (v FieldValue) WithNote(note string) FieldValue {
	v.Note = note
	return v
}

// WithSelected returns a copy with the selection flag replaced
func (v FieldValue) WithSelected(selected bool) FieldValue {
	v.Selected = selected
	return v
}

type pestControlPayload struct {
	Selected bool   `json:"selected"`
	Photo    string `json:"photo"`
}

type stageNotePayload struct {
	Selected bool   `json:"selected"`
	Note     string `json:"note"`
}

// MarshalJSON serializes the value in its original heterogeneous shape:
// strings as JSON strings, numbers as JSON numbers, composites as objects.
func (v FieldValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case ValueKindString:
		return json.Marshal(v.Str)
	case ValueKindNumber:
		return json.Marshal(v.Num)
	case ValueKindBool:
		return json.Marshal(v.Bool)
	case ValueKindStringList:
		list := v.List
		if list == nil {
			list = make([]string, 0)
		}
		return json.Marshal(list)
	case ValueKindPestControl:
		return json.Marshal(pestControlPayload{Selected: v.Selected, Photo: v.Photo})
	case ValueKindStageNote:
		return json.Marshal(stageNotePayload{Selected: v.Selected, Note: v.Note})
	default:
		return nil, fmt.Errorf("unknown value kind: %s", v.Kind)
	}
}

// UnmarshalJSON sniffs the JSON shape to pick the kind. The result is still
// subject to schema coercion at load time, so ambiguous shapes only need a
// reasonable guess here.
func (v *FieldValue) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("unmarshaling field value: %w", err)
	}

	*v = fieldValueFromAny(raw)
	return nil
}

// fieldValueFromAny maps a decoded JSON value onto the union. Unknown shapes
// degrade to an empty string value rather than failing, matching the
// tolerate-stale-data policy of the load path.
func fieldValueFromAny(raw any) FieldValue {
	switch val := raw.(type) {
	case string:
		return StringValue(val)
	case float64:
		return NumberValue(val)
	case bool:
		return BoolValue(val)
	case []any:
		list := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				list = append(list, s)
			}
		}
		return StringListValue(list)
	case map[string]any:
		selected, _ := val["selected"].(bool)
		if note, ok := val["note"]; ok {
			noteStr, _ := note.(string)
			return StageNoteValue(selected, noteStr)
		}
		photo, _ := val["photo"].(string)
		return PestControlValue(selected, photo)
	default:
		return StringValue("")
	}
}

// ValueStore maps a field id to its typed value
type ValueStore map[string]FieldValue

// Clone returns a deep copy so callers can mutate without aliasing
func (s ValueStore) Clone() ValueStore {
	result := make(ValueStore, len(s))
	for k, v := range s {
		if v.Kind == ValueKindStringList {
			v.List = slices.Clone(v.List)
		}
		result[k] = v
	}
	return result
}
