package domain

// IsVisible reports whether a field should be shown given the current values.
// A field with no dependency is always visible. Otherwise the dependency
// target's current value must strictly equal ShowWhen; a missing target hides
// the field (fail closed) rather than erroring.
func IsVisible(field FieldSchema, values ValueStore) bool {
	if field.DependsOn == "" {
		return true
	}

	current, ok := values[string(field.DependsOn)]
	if !ok {
		return false
	}

	if field.ShowWhen == nil {
		return false
	}

	return current.Equal(*field.ShowWhen)
}

// VisibleFields filters a field list down to the fields visible under the
// given values, preserving declaration order.
func VisibleFields(fields []FieldSchema, values ValueStore) []FieldSchema {
	result := make([]FieldSchema, 0, len(fields))
	for _, field := range fields {
		if IsVisible(field, values) {
			result = append(result, field)
		}
	}
	return result
}
