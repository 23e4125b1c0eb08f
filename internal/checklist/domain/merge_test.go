package domain_test

import (
	"greenhouse-server/internal/checklist/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Merge", func() {
	var (
		template domain.Template
		record   *domain.ChecklistRecord
	)

	newRecord := func(items []domain.ItemState) *domain.ChecklistRecord {
		result, err := domain.NewChecklistRecordBuilder().
			WithGreenhouseID("greenhouse-1").
			WithTemplateID(template.ID).
			WithItems(items).
			Build()
		Expect(err).ToNot(HaveOccurred())
		return &result
	}

	BeforeEach(func() {
		template = domain.Template{
			ID:   "test-template",
			Name: "Test Template",
			Sections: []domain.ChecklistSection{
				{
					ID:    "section-1",
					Title: "Section 1",
					Items: []domain.ChecklistItem{
						{
							ID:         "item-a",
							Label:      "Item A",
							HasDetails: true,
							DetailFields: []domain.FieldSchema{
								{ID: "notes", Label: "Notes", Type: domain.FieldTypeTextarea},
								{ID: "quantity", Label: "Quantity", Type: domain.FieldTypeNumber},
							},
						},
						{ID: "item-b", Label: "Item B"},
					},
				},
			},
		}
	})

	Context("with no persisted record", func() {
		It("returns the template shape with defaults", func() {
			merged := domain.Merge(template, nil, domain.MergePolicyDrop)

			Expect(merged.Sections).To(HaveLen(1))
			Expect(merged.Sections[0].Items).To(HaveLen(2))

			itemA := merged.Sections[0].Items[0]
			Expect(itemA.Completed).To(BeFalse())
			Expect(itemA.Data["notes"]).To(Equal(domain.StringValue("")))
			Expect(itemA.Data["quantity"]).To(Equal(domain.StringValue("")))
		})
	})

	Context("with a persisted record", func() {
		BeforeEach(func() {
			record = newRecord([]domain.ItemState{
				{
					ID:        "item-a",
					Completed: true,
					Data: domain.ValueStore{
						"notes": domain.StringValue("checked twice"),
					},
				},
			})
		})

		It("lets the persisted item win for completed and data", func() {
			merged := domain.Merge(template, record, domain.MergePolicyDrop)

			itemA, found := merged.ItemByID("item-a")
			Expect(found).To(BeTrue())
			Expect(itemA.Completed).To(BeTrue())
			Expect(itemA.Data["notes"]).To(Equal(domain.StringValue("checked twice")))
		})

		It("fills newly added fields with defaults", func() {
			merged := domain.Merge(template, record, domain.MergePolicyDrop)

			itemA, _ := merged.ItemByID("item-a")
			Expect(itemA.Data["quantity"]).To(Equal(domain.StringValue("")))
		})

		It("always takes detail fields from the template", func() {
			merged := domain.Merge(template, record, domain.MergePolicyDrop)

			itemA, _ := merged.ItemByID("item-a")
			Expect(itemA.DetailFields).To(Equal(template.Sections[0].Items[0].DetailFields))
		})
	})

	Describe("totality", func() {
		It("outputs every template item exactly once in template order", func() {
			record = newRecord([]domain.ItemState{
				{ID: "item-b", Completed: true},
				{ID: "item-a", Completed: true},
				{ID: "orphan", Completed: true},
			})

			merged := domain.Merge(template, record, domain.MergePolicyDrop)

			var ids []string
			for _, section := range merged.Sections {
				for _, item := range section.Items {
					ids = append(ids, string(item.ID))
				}
			}
			Expect(ids).To(Equal([]string{"item-a", "item-b"}))
		})
	})

	Describe("idempotence", func() {
		It("merging the merged output again produces the same result", func() {
			record = newRecord([]domain.ItemState{
				{
					ID:        "item-a",
					Completed: true,
					Data: domain.ValueStore{
						"notes":    domain.StringValue("first pass"),
						"quantity": domain.NumberValue(12),
					},
				},
			})

			once := domain.Merge(template, record, domain.MergePolicyDrop)

			remergedRecord := newRecord(once.RecordItems())
			twice := domain.Merge(template, remergedRecord, domain.MergePolicyDrop)

			Expect(twice.Sections).To(Equal(once.Sections))
		})
	})

	Describe("orphaned items", func() {
		BeforeEach(func() {
			record = newRecord([]domain.ItemState{
				{ID: "renamed-item", Completed: true, Data: domain.ValueStore{
					"old-field": domain.StringValue("kept answer"),
				}},
			})
		})

		It("drops them under the drop policy", func() {
			merged := domain.Merge(template, record, domain.MergePolicyDrop)

			Expect(merged.ArchivedItems).To(BeEmpty())
			_, found := merged.ItemByID("renamed-item")
			Expect(found).To(BeFalse())
		})

		It("keeps them aside under the archive policy", func() {
			merged := domain.Merge(template, record, domain.MergePolicyArchive)

			Expect(merged.ArchivedItems).To(HaveLen(1))
			Expect(merged.ArchivedItems[0].ID).To(Equal(record.Items[0].ID))
			_, found := merged.ItemByID("renamed-item")
			Expect(found).To(BeFalse())
		})
	})

	Describe("stale value coercion", func() {
		It("replaces mismatched shapes with the field default", func() {
			record = newRecord([]domain.ItemState{
				{
					ID: "item-a",
					Data: domain.ValueStore{
						"notes":    domain.BoolValue(true),
						"quantity": domain.StringValue("not a number"),
					},
				},
			})

			merged := domain.Merge(template, record, domain.MergePolicyDrop)

			itemA, _ := merged.ItemByID("item-a")
			Expect(itemA.Data["notes"]).To(Equal(domain.StringValue("")))
			Expect(itemA.Data["quantity"]).To(Equal(domain.StringValue("")))
		})
	})
})
