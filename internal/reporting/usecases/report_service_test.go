package usecases_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	harvestDomain "greenhouse-server/internal/harvest/domain"
	harvestusecases "greenhouse-server/internal/harvest/usecases"
	"greenhouse-server/internal/infra/cache"
	"greenhouse-server/internal/reporting/domain"
	"greenhouse-server/internal/reporting/usecases"
	mockharvest "greenhouse-server/test/unit/doubles/harvest/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("SimpleReportService", func() {
	var (
		ctx            context.Context
		service        *usecases.SimpleReportService
		mockRepository *mockharvest.MockHarvestRepository
		ctrl           *gomock.Controller
		filters        domain.Filters
	)

	BeforeEach(func() {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		ctx = context.Background()
		ctrl = gomock.NewController(GinkgoT())
		mockRepository = mockharvest.NewMockHarvestRepository(ctrl)

		summaryCache, err := cache.New(nil)
		Expect(err).ToNot(HaveOccurred())

		service = usecases.NewReportService(mockRepository, summaryCache, domain.Options{})

		filters = domain.Filters{
			Start: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		}
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	newHarvest := func(quantityKg, unitPrice float64) harvestDomain.Harvest {
		harvest, err := harvestDomain.NewHarvestBuilder().
			WithProducerID("producer-1").
			WithGreenhouseID("greenhouse-1").
			WithCrop("tomato").
			WithQuantityKg(quantityKg).
			WithUnitPrice(unitPrice).
			Build()
		Expect(err).ToNot(HaveOccurred())
		return harvest
	}

	It("should aggregate the current window against the preceding one", func() {
		mockRepository.EXPECT().
			FindAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, f harvestusecases.Filters, _ harvestusecases.Pagination) ([]harvestDomain.Harvest, int, error) {
				Expect(f.From).ToNot(BeNil())
				Expect(f.From.Equal(filters.Start)).To(BeTrue())
				return []harvestDomain.Harvest{newHarvest(150, 4)}, 1, nil
			})
		mockRepository.EXPECT().
			FindAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, f harvestusecases.Filters, _ harvestusecases.Pagination) ([]harvestDomain.Harvest, int, error) {
				Expect(f.From).ToNot(BeNil())
				Expect(f.From.Before(filters.Start)).To(BeTrue())
				return []harvestDomain.Harvest{newHarvest(100, 4)}, 1, nil
			})

		summary, err := service.GetSummary(ctx, filters)
		Expect(err).ToNot(HaveOccurred())
		Expect(summary.TotalQuantityKg).To(Equal(150.0))
		Expect(summary.QuantityGrowthPct).ToNot(BeNil())
		Expect(*summary.QuantityGrowthPct).To(BeNumerically("~", 50, 0.001))
	})

	It("should serve repeated queries from the snapshot cache", func() {
		mockRepository.EXPECT().
			FindAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]harvestDomain.Harvest{newHarvest(150, 4)}, 1, nil)
		mockRepository.EXPECT().
			FindAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, 0, nil)
		mockRepository.EXPECT().
			FindAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, 0, errors.New("database unavailable")).
			AnyTimes()

		summary, err := service.GetSummary(ctx, filters)
		Expect(err).ToNot(HaveOccurred())
		Expect(summary.TotalRevenue).To(Equal(630.0))

		// The snapshot commit is asynchronous; once it lands the repository
		// failures injected above are never observed.
		Eventually(func() error {
			cached, err := service.GetSummary(ctx, filters)
			if err != nil {
				return err
			}
			if cached.TotalRevenue != summary.TotalRevenue {
				return errors.New("snapshot mismatch")
			}
			return nil
		}).Should(Succeed())
	})

	It("should propagate the no data condition uncached", func() {
		mockRepository.EXPECT().
			FindAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, 0, nil).
			Times(2)

		_, err := service.GetSummary(ctx, filters)
		Expect(err).To(MatchError(domain.ErrNoDataInRange))
	})
})
