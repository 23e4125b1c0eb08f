package domain_test

import (
	"greenhouse-server/internal/checklist/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("FieldType", func() {
	Describe("DefaultValue", func() {
		It("uses the empty string for text-like fields", func() {
			for _, t := range []domain.FieldType{
				domain.FieldTypeText, domain.FieldTypeTextarea, domain.FieldTypeDate,
				domain.FieldTypeFile, domain.FieldTypeSelect, domain.FieldTypeRadio,
				domain.FieldTypeSubheader,
			} {
				Expect(t.DefaultValue()).To(Equal(domain.StringValue("")), string(t))
			}
		})

		It("uses the empty string for numbers, never zero", func() {
			Expect(domain.FieldTypeNumber.DefaultValue()).To(Equal(domain.StringValue("")))
			Expect(domain.FieldTypeNumber.DefaultValue()).ToNot(Equal(domain.NumberValue(0)))
		})

		It("uses false for booleans and checkboxes", func() {
			Expect(domain.FieldTypeBoolean.DefaultValue()).To(Equal(domain.BoolValue(false)))
			Expect(domain.FieldTypeCheckbox.DefaultValue()).To(Equal(domain.BoolValue(false)))
		})

		It("uses an empty list for multiple files", func() {
			Expect(domain.FieldTypeMultipleFiles.DefaultValue()).To(Equal(domain.StringListValue(nil)))
		})

		It("uses unselected composites for pest control and development stage", func() {
			Expect(domain.FieldTypePestControl.DefaultValue()).To(Equal(domain.PestControlValue(false, "")))
			Expect(domain.FieldTypeDevelopmentStage.DefaultValue()).To(Equal(domain.StageNoteValue(false, "")))
		})
	})

	Describe("Coerce", func() {
		It("keeps values whose shape matches the field type", func() {
			Expect(domain.FieldTypeText.Coerce(domain.StringValue("abc"))).To(Equal(domain.StringValue("abc")))
			Expect(domain.FieldTypeNumber.Coerce(domain.NumberValue(3.5))).To(Equal(domain.NumberValue(3.5)))
			Expect(domain.FieldTypeCheckbox.Coerce(domain.BoolValue(true))).To(Equal(domain.BoolValue(true)))
			Expect(domain.FieldTypePestControl.Coerce(domain.PestControlValue(true, "u"))).To(Equal(domain.PestControlValue(true, "u")))
		})

		It("replaces mismatched shapes with the type default", func() {
			Expect(domain.FieldTypeNumber.Coerce(domain.StringValue("12"))).To(Equal(domain.StringValue("")))
			Expect(domain.FieldTypeBoolean.Coerce(domain.StringValue("true"))).To(Equal(domain.BoolValue(false)))
			Expect(domain.FieldTypeMultipleFiles.Coerce(domain.StringValue("a.jpg"))).To(Equal(domain.StringListValue(nil)))
			Expect(domain.FieldTypePestControl.Coerce(domain.StageNoteValue(true, "n"))).To(Equal(domain.PestControlValue(false, "")))
			Expect(domain.FieldTypeDevelopmentStage.Coerce(domain.PestControlValue(true, "p"))).To(Equal(domain.StageNoteValue(false, "")))
			Expect(domain.FieldTypeText.Coerce(domain.NumberValue(1))).To(Equal(domain.StringValue("")))
		})
	})

	Describe("Validate", func() {
		var field domain.FieldSchema

		BeforeEach(func() {
			min := 0.0
			max := 14.0
			field = domain.FieldSchema{
				ID:         "ph-level",
				Type:       domain.FieldTypeNumber,
				Validation: &domain.FieldValidation{Min: &min, Max: &max},
			}
		})

		It("returns no warnings for values within range", func() {
			Expect(field.Validate(domain.NumberValue(6.5))).To(BeEmpty())
		})

		It("warns on out-of-range values without rejecting them", func() {
			warnings := field.Validate(domain.NumberValue(15))
			Expect(warnings).To(HaveLen(1))
			Expect(warnings[0].FieldID).To(Equal(field.ID))
		})

		It("warns on pattern mismatches for non-empty strings", func() {
			patternField := domain.FieldSchema{
				ID:         "lot-number",
				Type:       domain.FieldTypeText,
				Validation: &domain.FieldValidation{Pattern: `^[A-Z]{2}-\d+$`},
			}
			Expect(patternField.Validate(domain.StringValue("AB-123"))).To(BeEmpty())
			Expect(patternField.Validate(domain.StringValue("nope"))).To(HaveLen(1))
			Expect(patternField.Validate(domain.StringValue(""))).To(BeEmpty())
		})
	})
})
