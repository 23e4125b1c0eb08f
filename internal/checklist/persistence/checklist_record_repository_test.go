package persistence_test

import (
	"context"

	checklistDomain "greenhouse-server/internal/checklist/domain"
	"greenhouse-server/internal/checklist/persistence"
	"greenhouse-server/internal/checklist/usecases"
	"greenhouse-server/internal/infra/pubsub"
	"greenhouse-server/internal/infra/sql"
	"greenhouse-server/internal/infra/utils"
	shareddomain "greenhouse-server/internal/shared_kernel/domain"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("SimpleChecklistRecordRepository", func() {
	var (
		ctx        context.Context
		repository *persistence.SimpleChecklistRecordRepository
	)

	ginkgo.BeforeEach(func() {
		ctx = context.Background()

		orm, err := sql.NewMemoryORM()
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		repository, err = persistence.NewChecklistRecordRepository(pubsub.NewMemoryPublisherFactory(), orm)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
	})

	newRecord := func(greenhouseID string, items []checklistDomain.ItemState) checklistDomain.ChecklistRecord {
		record, err := checklistDomain.NewChecklistRecordBuilder().
			WithGreenhouseID(shareddomain.ID(greenhouseID)).
			WithTemplateID(checklistDomain.TemplatePrePlantingID).
			WithItems(items).
			Build()
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		return record
	}

	ginkgo.Describe("Create", func() {
		ginkgo.It("persists a record that can be read back", func() {
			greenhouseID := utils.GenerateUUID()
			record := newRecord(greenhouseID, []checklistDomain.ItemState{
				{ID: "soil-analysis", Completed: true, Data: checklistDomain.ValueStore{
					"ph-level": checklistDomain.NumberValue(6.5),
				}},
			})

			err := repository.Create(ctx, record)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			found, err := repository.GetByGreenhouseAndTemplate(ctx, record.GreenhouseID, record.TemplateID)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(found.ID).To(gomega.Equal(record.ID))
			gomega.Expect(found.Items).To(gomega.HaveLen(1))
			gomega.Expect(found.Items[0].Data["ph-level"]).To(gomega.Equal(checklistDomain.NumberValue(6.5)))
		})

		ginkgo.It("round-trips composite field values through the items column", func() {
			greenhouseID := utils.GenerateUUID()
			record := newRecord(greenhouseID, []checklistDomain.ItemState{
				{ID: "pest-monitoring", Completed: false, Data: checklistDomain.ValueStore{
					"aphids": checklistDomain.PestControlValue(true, "https://cdn.example.com/aphids.jpg"),
				}},
			})

			err := repository.Create(ctx, record)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			found, err := repository.GetByGreenhouseAndTemplate(ctx, record.GreenhouseID, record.TemplateID)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(found.Items[0].Data["aphids"]).To(
				gomega.Equal(checklistDomain.PestControlValue(true, "https://cdn.example.com/aphids.jpg")))
		})
	})

	ginkgo.Describe("GetByGreenhouseAndTemplate", func() {
		ginkgo.When("no record exists for the pair", func() {
			ginkgo.It("returns a not found error", func() {
				_, err := repository.GetByGreenhouseAndTemplate(ctx,
					shareddomain.ID(utils.GenerateUUID()), checklistDomain.TemplateGreenhouseID)
				gomega.Expect(err).To(gomega.MatchError(usecases.ErrChecklistRecordNotFound))
			})
		})
	})

	ginkgo.Describe("FindAllByGreenhouse", func() {
		ginkgo.It("returns only the greenhouse's records", func() {
			greenhouseID := utils.GenerateUUID()
			otherGreenhouseID := utils.GenerateUUID()

			err := repository.Create(ctx, newRecord(greenhouseID, nil))
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			err = repository.Create(ctx, newRecord(otherGreenhouseID, nil))
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			records, err := repository.FindAllByGreenhouse(ctx, shareddomain.ID(greenhouseID))
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(records).To(gomega.HaveLen(1))
			gomega.Expect(records[0].GreenhouseID).To(gomega.Equal(shareddomain.ID(greenhouseID)))
		})
	})

	ginkgo.Describe("Update", func() {
		ginkgo.It("replaces the stored item state", func() {
			greenhouseID := utils.GenerateUUID()
			record := newRecord(greenhouseID, []checklistDomain.ItemState{
				{ID: "soil-analysis", Completed: false, Data: checklistDomain.ValueStore{}},
			})

			err := repository.Create(ctx, record)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			record.SetItem(checklistDomain.ItemState{
				ID:        "soil-analysis",
				Completed: true,
				Data: checklistDomain.ValueStore{
					"analysis-date": checklistDomain.StringValue("2025-03-10"),
				},
			})

			err = repository.Update(ctx, record)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			found, err := repository.GetByGreenhouseAndTemplate(ctx, record.GreenhouseID, record.TemplateID)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			state, ok := found.ItemByID("soil-analysis")
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(state.Completed).To(gomega.BeTrue())
			gomega.Expect(state.Data["analysis-date"]).To(gomega.Equal(checklistDomain.StringValue("2025-03-10")))
		})
	})
})
