package persistence_test

import (
	"context"
	"time"

	harvestDomain "greenhouse-server/internal/harvest/domain"
	"greenhouse-server/internal/harvest/persistence"
	"greenhouse-server/internal/harvest/usecases"
	"greenhouse-server/internal/infra/pubsub"
	"greenhouse-server/internal/infra/sql"
	"greenhouse-server/internal/infra/utils"
	shareddomain "greenhouse-server/internal/shared_kernel/domain"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("SimpleHarvestRepository", func() {
	var (
		ctx        context.Context
		repository *persistence.SimpleHarvestRepository
	)

	ginkgo.BeforeEach(func() {
		ctx = context.Background()

		orm, err := sql.NewMemoryORM()
		gomega.Expect(err).ToNot(gomega.HaveOccurred())

		repository, err = persistence.NewHarvestRepository(pubsub.NewMemoryPublisherFactory(), orm)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
	})

	newHarvest := func(producerID string, harvestedAt time.Time) harvestDomain.Harvest {
		harvest, err := harvestDomain.NewHarvestBuilder().
			WithGreenhouseID(shareddomain.ID(utils.GenerateUUID())).
			WithProducerID(shareddomain.ID(producerID)).
			WithCrop("tomato").
			WithQuantityKg(150).
			WithUnitPrice(4.2).
			WithHarvestedAt(harvestedAt).
			Build()
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		return harvest
	}

	ginkgo.Describe("Create", func() {
		ginkgo.It("persists a harvest that can be read back", func() {
			harvest := newHarvest(utils.GenerateUUID(), time.Now())

			err := repository.Create(ctx, harvest)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			found, err := repository.GetByID(ctx, harvest.ID)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(found.Crop).To(gomega.Equal("tomato"))
			gomega.Expect(found.QuantityKg).To(gomega.Equal(150.0))
			gomega.Expect(found.TotalValue).To(gomega.BeNumerically("~", 630, 0.001))
		})
	})

	ginkgo.Describe("GetByID", func() {
		ginkgo.When("the harvest does not exist", func() {
			ginkgo.It("returns a not found error", func() {
				_, err := repository.GetByID(ctx, shareddomain.ID(utils.GenerateUUID()))
				gomega.Expect(err).To(gomega.MatchError(usecases.ErrHarvestNotFound))
			})
		})
	})

	ginkgo.Describe("FindAll", func() {
		ginkgo.It("filters by producer", func() {
			producerID := utils.GenerateUUID()
			otherProducerID := utils.GenerateUUID()

			gomega.Expect(repository.Create(ctx, newHarvest(producerID, time.Now()))).To(gomega.Succeed())
			gomega.Expect(repository.Create(ctx, newHarvest(otherProducerID, time.Now()))).To(gomega.Succeed())

			filters := usecases.Filters{ProducerID: shareddomain.ID(producerID)}
			harvests, total, err := repository.FindAll(ctx, filters, usecases.Pagination{Limit: 100})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(total).To(gomega.Equal(1))
			gomega.Expect(harvests).To(gomega.HaveLen(1))
			gomega.Expect(harvests[0].ProducerID).To(gomega.Equal(shareddomain.ID(producerID)))
		})

		ginkgo.It("filters by harvested time range", func() {
			producerID := utils.GenerateUUID()
			base := time.Now()

			old := newHarvest(producerID, base.Add(-72*time.Hour))
			recent := newHarvest(producerID, base.Add(-1*time.Hour))
			gomega.Expect(repository.Create(ctx, old)).To(gomega.Succeed())
			gomega.Expect(repository.Create(ctx, recent)).To(gomega.Succeed())

			from := base.Add(-24 * time.Hour)
			filters := usecases.Filters{ProducerID: shareddomain.ID(producerID), From: &from}
			harvests, total, err := repository.FindAll(ctx, filters, usecases.Pagination{Limit: 100})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(total).To(gomega.Equal(1))
			gomega.Expect(harvests).To(gomega.HaveLen(1))
			gomega.Expect(harvests[0].ID).To(gomega.Equal(recent.ID))
		})
	})

	ginkgo.Describe("Update", func() {
		ginkgo.It("replaces the stored harvest", func() {
			harvest := newHarvest(utils.GenerateUUID(), time.Now())

			gomega.Expect(repository.Create(ctx, harvest)).To(gomega.Succeed())

			quantity := 200.0
			harvest.UpdateInfo("", &quantity, nil, nil)
			gomega.Expect(repository.Update(ctx, harvest)).To(gomega.Succeed())

			found, err := repository.GetByID(ctx, harvest.ID)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(found.QuantityKg).To(gomega.Equal(200.0))
			gomega.Expect(found.TotalValue).To(gomega.BeNumerically("~", 840, 0.001))
		})
	})

	ginkgo.Describe("Delete", func() {
		ginkgo.It("removes the harvest", func() {
			harvest := newHarvest(utils.GenerateUUID(), time.Now())

			gomega.Expect(repository.Create(ctx, harvest)).To(gomega.Succeed())
			gomega.Expect(repository.Delete(ctx, harvest.ID)).To(gomega.Succeed())

			_, err := repository.GetByID(ctx, harvest.ID)
			gomega.Expect(err).To(gomega.MatchError(usecases.ErrHarvestNotFound))
		})
	})
})
