package domain

// Sanitize builds the value store to persist from a submission. Visibility is
// re-evaluated against the submitted values at this point, not taken from
// render time, so a field hidden by the latest edits never reaches storage
// even if it still holds a stale in-memory value. Values of unknown fields
// are dropped; kept values are coerced to the field's shape.
func Sanitize(fields []FieldSchema, submitted ValueStore) ValueStore {
	result := make(ValueStore, len(fields))

	for _, field := range fields {
		if !IsVisible(field, submitted) {
			continue
		}

		value, ok := submitted[string(field.ID)]
		if !ok {
			continue
		}

		result[string(field.ID)] = field.Type.Coerce(value)
	}

	return result
}

// PartialFieldUpdate mutates one composite value in place. Nil members are
// left untouched so a photo upload does not clear the note or selection.
type PartialFieldUpdate struct {
	Selected *bool
	Photo    *string
	Note     *string
}

// ApplyPartialUpdate merges a partial update into the store entry for the
// given field, creating the entry from the field default when absent. The
// update targets the same store key as full submissions, never a side key.
func ApplyPartialUpdate(field FieldSchema, store ValueStore, update PartialFieldUpdate) ValueStore {
	result := store.Clone()

	current, ok := result[string(field.ID)]
	if !ok {
		current = field.Type.DefaultValue()
	}
	current = field.Type.Coerce(current)

	if update.Selected != nil {
		current = current.WithSelected(*update.Selected)
	}
	if update.Photo != nil {
		current = current.WithPhoto(*update.Photo)
	}
	if update.Note != nil {
		current = current.WithNote(*update.Note)
	}

	result[string(field.ID)] = current
	return result
}
