package domain_test

import (
	"time"

	harvestDomain "greenhouse-server/internal/harvest/domain"
	"greenhouse-server/internal/reporting/domain"
	shareddomain "greenhouse-server/internal/shared_kernel/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Aggregate", func() {
	var filters domain.Filters

	BeforeEach(func() {
		filters = domain.Filters{
			Start: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		}
	})

	newHarvest := func(producerID, greenhouseID shareddomain.ID, crop string, quantityKg, unitPrice float64) harvestDomain.Harvest {
		harvest, err := harvestDomain.NewHarvestBuilder().
			WithProducerID(producerID).
			WithGreenhouseID(greenhouseID).
			WithCrop(crop).
			WithQuantityKg(quantityKg).
			WithUnitPrice(unitPrice).
			Build()
		Expect(err).ToNot(HaveOccurred())
		return harvest
	}

	It("should total quantity and revenue and apply the cost heuristic", func() {
		current := []harvestDomain.Harvest{
			newHarvest("producer-1", "greenhouse-1", "tomato", 100, 5),
			newHarvest("producer-1", "greenhouse-2", "lettuce", 50, 2),
		}

		summary, err := domain.Aggregate(current, nil, filters, domain.Options{})
		Expect(err).ToNot(HaveOccurred())
		Expect(summary.HarvestCount).To(Equal(2))
		Expect(summary.TotalQuantityKg).To(Equal(150.0))
		Expect(summary.TotalRevenue).To(Equal(600.0))
		Expect(summary.EstimatedCost).To(BeNumerically("~", 420, 0.001))
		Expect(summary.Profit).To(BeNumerically("~", 180, 0.001))
		Expect(summary.ProfitMarginPct).To(BeNumerically("~", 30, 0.001))
	})

	It("should honor a custom cost ratio", func() {
		current := []harvestDomain.Harvest{
			newHarvest("producer-1", "greenhouse-1", "tomato", 100, 10),
		}

		summary, err := domain.Aggregate(current, nil, filters, domain.Options{CostRatio: 0.5})
		Expect(err).ToNot(HaveOccurred())
		Expect(summary.EstimatedCost).To(Equal(500.0))
		Expect(summary.ProfitMarginPct).To(BeNumerically("~", 50, 0.001))
	})

	It("should roll up per producer and per greenhouse ordered by revenue", func() {
		current := []harvestDomain.Harvest{
			newHarvest("producer-small", "greenhouse-a", "tomato", 10, 1),
			newHarvest("producer-big", "greenhouse-b", "lettuce", 100, 10),
			newHarvest("producer-big", "greenhouse-c", "tomato", 20, 5),
		}

		summary, err := domain.Aggregate(current, nil, filters, domain.Options{})
		Expect(err).ToNot(HaveOccurred())

		Expect(summary.Producers).To(HaveLen(2))
		Expect(summary.Producers[0].ProducerID).To(Equal(shareddomain.ID("producer-big")))
		Expect(summary.Producers[0].Revenue).To(Equal(1100.0))
		Expect(summary.Producers[0].HarvestCount).To(Equal(2))
		Expect(summary.Producers[1].ProducerID).To(Equal(shareddomain.ID("producer-small")))

		Expect(summary.Greenhouses).To(HaveLen(3))
		Expect(summary.Greenhouses[0].GreenhouseID).To(Equal(shareddomain.ID("greenhouse-b")))
		Expect(summary.Greenhouses[0].Crop).To(Equal("lettuce"))
	})

	It("should compute growth against the previous window", func() {
		current := []harvestDomain.Harvest{
			newHarvest("producer-1", "greenhouse-1", "tomato", 150, 4),
		}
		previous := []harvestDomain.Harvest{
			newHarvest("producer-1", "greenhouse-1", "tomato", 100, 4),
		}

		summary, err := domain.Aggregate(current, previous, filters, domain.Options{})
		Expect(err).ToNot(HaveOccurred())
		Expect(summary.QuantityGrowthPct).ToNot(BeNil())
		Expect(*summary.QuantityGrowthPct).To(BeNumerically("~", 50, 0.001))
		Expect(summary.RevenueGrowthPct).ToNot(BeNil())
		Expect(*summary.RevenueGrowthPct).To(BeNumerically("~", 50, 0.001))
	})

	It("should leave growth unset without previous records", func() {
		current := []harvestDomain.Harvest{
			newHarvest("producer-1", "greenhouse-1", "tomato", 150, 4),
		}

		summary, err := domain.Aggregate(current, nil, filters, domain.Options{})
		Expect(err).ToNot(HaveOccurred())
		Expect(summary.QuantityGrowthPct).To(BeNil())
		Expect(summary.RevenueGrowthPct).To(BeNil())
	})

	It("should name the date range when the window is empty", func() {
		_, err := domain.Aggregate(nil, nil, filters, domain.Options{})
		Expect(err).To(MatchError(domain.ErrNoData))
		Expect(err).To(MatchError(domain.ErrNoDataInRange))
	})

	It("should name the producer selection when the allowlist empties the set", func() {
		current := []harvestDomain.Harvest{
			newHarvest("producer-1", "greenhouse-1", "tomato", 100, 5),
		}
		filters.ProducerIDs = []shareddomain.ID{"producer-2"}

		_, err := domain.Aggregate(current, nil, filters, domain.Options{})
		Expect(err).To(MatchError(domain.ErrNoData))
		Expect(err).To(MatchError(domain.ErrNoDataForProducers))
	})

	It("should treat all-zero sums as data, not absence", func() {
		current := []harvestDomain.Harvest{
			newHarvest("producer-1", "greenhouse-1", "tomato", 0, 0),
		}

		summary, err := domain.Aggregate(current, nil, filters, domain.Options{})
		Expect(err).ToNot(HaveOccurred())
		Expect(summary.HarvestCount).To(Equal(1))
		Expect(summary.TotalRevenue).To(BeZero())
		Expect(summary.ProfitMarginPct).To(BeZero())
	})

	It("should restrict totals to allowlisted producers", func() {
		current := []harvestDomain.Harvest{
			newHarvest("producer-1", "greenhouse-1", "tomato", 100, 5),
			newHarvest("producer-2", "greenhouse-2", "lettuce", 50, 2),
		}
		filters.ProducerIDs = []shareddomain.ID{"producer-1"}

		summary, err := domain.Aggregate(current, nil, filters, domain.Options{})
		Expect(err).ToNot(HaveOccurred())
		Expect(summary.HarvestCount).To(Equal(1))
		Expect(summary.TotalRevenue).To(Equal(500.0))
		Expect(summary.Producers).To(HaveLen(1))
	})
})
