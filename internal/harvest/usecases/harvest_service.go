package usecases

//go:generate mockgen -source=harvest_service.go -destination=../../../test/unit/doubles/harvest/usecases/harvest_service_mock.go -package=usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"greenhouse-server/internal/harvest/domain"
	"greenhouse-server/internal/infra/async"
	producerusecases "greenhouse-server/internal/producer/usecases"
	shareddomain "greenhouse-server/internal/shared_kernel/domain"
)

const (
	HarvestEventsTopic async.BrokerTopicName = "harvest_events"

	HarvestLoggedEvent  = "harvest_logged"
	HarvestUpdatedEvent = "harvest_updated"
	HarvestDeletedEvent = "harvest_deleted"
)

type HarvestService interface {
	LogHarvest(ctx context.Context, harvest domain.Harvest) (domain.Harvest, error)
	GetHarvest(ctx context.Context, id shareddomain.ID) (domain.Harvest, error)
	ListHarvests(ctx context.Context, filters Filters, pagination Pagination) ([]domain.Harvest, int, error)
	UpdateHarvest(ctx context.Context, harvest domain.Harvest) error
	DeleteHarvest(ctx context.Context, id shareddomain.ID) error
}

func NewHarvestService(
	repository HarvestRepository,
	greenhouseRepository producerusecases.GreenhouseRepository,
	broker async.InternalBroker,
) *SimpleHarvestService {
	return &SimpleHarvestService{
		repository:           repository,
		greenhouseRepository: greenhouseRepository,
		broker:               broker,
	}
}

type SimpleHarvestService struct {
	repository           HarvestRepository
	greenhouseRepository producerusecases.GreenhouseRepository
	broker               async.InternalBroker
}

func (s *SimpleHarvestService) LogHarvest(ctx context.Context, harvest domain.Harvest) (domain.Harvest, error) {
	greenhouse, err := s.greenhouseRepository.GetByID(ctx, harvest.GreenhouseID)
	if err != nil {
		if errors.Is(err, producerusecases.ErrGreenhouseNotFound) {
			return domain.Harvest{}, producerusecases.ErrGreenhouseNotFound
		}
		slog.Error("getting greenhouse", slog.String("error", err.Error()))
		return domain.Harvest{}, fmt.Errorf("getting greenhouse: %w", err)
	}
	if greenhouse.IsDeleted() {
		slog.Warn("harvest rejected for soft deleted greenhouse", slog.String("greenhouse_id", greenhouse.ID.String()))
		return domain.Harvest{}, producerusecases.ErrGreenhouseSoftDeleted
	}

	// The stored greenhouse is the source of truth for ownership.
	harvest.ProducerID = greenhouse.ProducerID
	if harvest.Crop == "" {
		harvest.Crop = greenhouse.Crop
	}

	if err := s.repository.Create(ctx, harvest); err != nil {
		slog.Error("creating harvest", slog.String("error", err.Error()))
		return domain.Harvest{}, fmt.Errorf("creating harvest: %w", err)
	}

	s.notify(ctx, HarvestLoggedEvent, harvest)

	return harvest, nil
}

func (s *SimpleHarvestService) GetHarvest(ctx context.Context, id shareddomain.ID) (domain.Harvest, error) {
	harvest, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrHarvestNotFound) {
			return domain.Harvest{}, ErrHarvestNotFound
		}
		return domain.Harvest{}, fmt.Errorf("getting harvest: %w", err)
	}
	return harvest, nil
}

func (s *SimpleHarvestService) ListHarvests(ctx context.Context, filters Filters, pagination Pagination) ([]domain.Harvest, int, error) {
	harvests, total, err := s.repository.FindAll(ctx, filters, pagination)
	if err != nil {
		return nil, 0, fmt.Errorf("listing harvests: %w", err)
	}
	return harvests, total, nil
}

func (s *SimpleHarvestService) UpdateHarvest(ctx context.Context, harvest domain.Harvest) error {
	current, err := s.repository.GetByID(ctx, harvest.ID)
	if err != nil {
		if errors.Is(err, ErrHarvestNotFound) {
			return ErrHarvestNotFound
		}
		return fmt.Errorf("getting harvest: %w", err)
	}

	var quantityKg, unitPrice *float64
	if harvest.QuantityKg > 0 {
		quantityKg = &harvest.QuantityKg
	}
	if harvest.UnitPrice > 0 {
		unitPrice = &harvest.UnitPrice
	}
	var harvestedAt *time.Time
	if !harvest.HarvestedAt.IsZero() {
		harvestedAt = &harvest.HarvestedAt
	}
	current.UpdateInfo(harvest.Crop, quantityKg, unitPrice, harvestedAt)

	if err := s.repository.Update(ctx, current); err != nil {
		slog.Error("updating harvest", slog.String("error", err.Error()))
		return fmt.Errorf("updating harvest: %w", err)
	}

	s.notify(ctx, HarvestUpdatedEvent, current)

	return nil
}

func (s *SimpleHarvestService) DeleteHarvest(ctx context.Context, id shareddomain.ID) error {
	harvest, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrHarvestNotFound) {
			return ErrHarvestNotFound
		}
		return fmt.Errorf("getting harvest: %w", err)
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		slog.Error("deleting harvest", slog.String("error", err.Error()))
		return fmt.Errorf("deleting harvest: %w", err)
	}

	s.notify(ctx, HarvestDeletedEvent, harvest)

	return nil
}

func (s *SimpleHarvestService) notify(ctx context.Context, event string, harvest domain.Harvest) {
	err := s.broker.Publish(ctx, HarvestEventsTopic, async.BrokerMessage{Event: event, Value: harvest})
	if err != nil && !errors.Is(err, async.ErrTopicNotFound) {
		slog.Warn("publishing harvest event",
			slog.String("event", event),
			slog.String("error", err.Error()))
	}
}
