//go:build wireinject
// +build wireinject

package wire

import (
	checklistHTTPAPI "greenhouse-server/internal/checklist/httpapi"
	checklistPersistence "greenhouse-server/internal/checklist/persistence"
	checklistUsecases "greenhouse-server/internal/checklist/usecases"
	harvestHTTPAPI "greenhouse-server/internal/harvest/httpapi"
	harvestPersistence "greenhouse-server/internal/harvest/persistence"
	harvestUsecases "greenhouse-server/internal/harvest/usecases"
	"greenhouse-server/internal/infra/async"
	producerHTTPAPI "greenhouse-server/internal/producer/httpapi"
	producerPersistence "greenhouse-server/internal/producer/persistence"
	producerUsecases "greenhouse-server/internal/producer/usecases"
	reportingHTTPAPI "greenhouse-server/internal/reporting/httpapi"
	reportingUsecases "greenhouse-server/internal/reporting/usecases"
	uploadsHTTPAPI "greenhouse-server/internal/uploads/httpapi"
	uploadsPersistence "greenhouse-server/internal/uploads/persistence"
	uploadsUsecases "greenhouse-server/internal/uploads/usecases"

	"github.com/google/wire"
)

var PublisherFactorySet = wire.NewSet(
	provideAppConfig,
	providePubSubFactory,
	providePublisherFactory,
	provideDatabase,
)

var GreenhouseRepositorySet = wire.NewSet(
	producerPersistence.NewGreenhouseRepository,
	wire.Bind(new(producerUsecases.GreenhouseRepository), new(*producerPersistence.SimpleGreenhouseRepository)),
)

var HarvestRepositorySet = wire.NewSet(
	harvestPersistence.NewHarvestRepository,
	wire.Bind(new(harvestUsecases.HarvestRepository), new(*harvestPersistence.SimpleHarvestRepository)),
)

var ReportServiceSet = wire.NewSet(
	HarvestRepositorySet,
	provideSummaryCache,
	provideReportOptions,
	reportingUsecases.NewReportService,
	wire.Bind(new(reportingUsecases.ReportService), new(*reportingUsecases.SimpleReportService)),
)

func InitializeProducerController() (*producerHTTPAPI.ProducerController, error) {
	wire.Build(
		PublisherFactorySet,
		producerPersistence.NewProducerRepository,
		wire.Bind(new(producerUsecases.ProducerRepository), new(*producerPersistence.SimpleProducerRepository)),
		producerUsecases.NewProducerService,
		wire.Bind(new(producerUsecases.ProducerService), new(*producerUsecases.SimpleProducerService)),
		producerHTTPAPI.NewProducerController,
	)
	return nil, nil
}

func InitializeGreenhouseController() (*producerHTTPAPI.GreenhouseController, error) {
	wire.Build(
		PublisherFactorySet,
		GreenhouseRepositorySet,
		producerPersistence.NewProducerRepository,
		wire.Bind(new(producerUsecases.ProducerRepository), new(*producerPersistence.SimpleProducerRepository)),
		producerUsecases.NewGreenhouseService,
		wire.Bind(new(producerUsecases.GreenhouseService), new(*producerUsecases.SimpleGreenhouseService)),
		producerHTTPAPI.NewGreenhouseController,
	)
	return nil, nil
}

func InitializeChecklistController() (*checklistHTTPAPI.ChecklistController, error) {
	wire.Build(
		PublisherFactorySet,
		provideMergePolicy,
		checklistPersistence.NewChecklistRecordRepository,
		wire.Bind(new(checklistUsecases.ChecklistRecordRepository), new(*checklistPersistence.SimpleChecklistRecordRepository)),
		checklistUsecases.NewChecklistService,
		wire.Bind(new(checklistUsecases.ChecklistService), new(*checklistUsecases.SimpleChecklistService)),
		checklistHTTPAPI.NewChecklistController,
	)
	return nil, nil
}

func InitializeHarvestController(broker async.InternalBroker) (*harvestHTTPAPI.HarvestController, error) {
	wire.Build(
		PublisherFactorySet,
		HarvestRepositorySet,
		GreenhouseRepositorySet,
		harvestUsecases.NewHarvestService,
		wire.Bind(new(harvestUsecases.HarvestService), new(*harvestUsecases.SimpleHarvestService)),
		harvestHTTPAPI.NewHarvestController,
	)
	return nil, nil
}

func InitializeHarvestFeedWebSocketController(broker async.InternalBroker) (*harvestHTTPAPI.HarvestFeedWebSocketController, error) {
	wire.Build(
		harvestHTTPAPI.NewHarvestFeedWebSocketController,
	)
	return nil, nil
}

func InitializeReportController() (*reportingHTTPAPI.ReportController, error) {
	wire.Build(
		PublisherFactorySet,
		ReportServiceSet,
		reportingHTTPAPI.NewReportController,
	)
	return nil, nil
}

func InitializeSnapshotWorker() (*reportingUsecases.SnapshotWorker, error) {
	wire.Build(
		PublisherFactorySet,
		ReportServiceSet,
		provideSnapshotTicker,
		provideSnapshotSchedule,
		reportingUsecases.NewSnapshotWorker,
	)
	return nil, nil
}

func InitializeUploadController() (*uploadsHTTPAPI.UploadController, error) {
	wire.Build(
		uploadsPersistence.NewMemoryObjectStore,
		wire.Bind(new(uploadsUsecases.ObjectStore), new(*uploadsPersistence.MemoryObjectStore)),
		uploadsUsecases.NewUploadService,
		wire.Bind(new(uploadsUsecases.UploadService), new(*uploadsUsecases.SimpleUploadService)),
		uploadsHTTPAPI.NewUploadController,
	)
	return nil, nil
}
