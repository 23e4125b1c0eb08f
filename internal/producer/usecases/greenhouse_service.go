package usecases

//go:generate mockgen -source=greenhouse_service.go -destination=../../../test/unit/doubles/producer/usecases/greenhouse_service_mock.go -package=usecases -mock_names=GreenhouseService=MockGreenhouseService

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	producerDomain "greenhouse-server/internal/producer/domain"
	shareddomain "greenhouse-server/internal/shared_kernel/domain"
)

var (
	ErrGreenhouseSoftDeleted = errors.New("greenhouse is soft deleted")
)

type GreenhouseService interface {
	CreateGreenhouse(ctx context.Context, greenhouse producerDomain.Greenhouse) error
	GetGreenhouse(ctx context.Context, id shareddomain.ID) (producerDomain.Greenhouse, error)
	ListGreenhouses(ctx context.Context, producerID shareddomain.ID, pagination Pagination) ([]producerDomain.Greenhouse, int, error)
	UpdateGreenhouse(ctx context.Context, greenhouse producerDomain.Greenhouse) error
	SoftDeleteGreenhouse(ctx context.Context, id shareddomain.ID) error
}

func NewGreenhouseService(repository GreenhouseRepository, producerRepository ProducerRepository) *SimpleGreenhouseService {
	return &SimpleGreenhouseService{
		repository:         repository,
		producerRepository: producerRepository,
	}
}

var _ GreenhouseService = &SimpleGreenhouseService{}

type SimpleGreenhouseService struct {
	repository         GreenhouseRepository
	producerRepository ProducerRepository
}

func (s *SimpleGreenhouseService) CreateGreenhouse(ctx context.Context, greenhouse producerDomain.Greenhouse) error {
	producer, err := s.producerRepository.GetByID(ctx, greenhouse.ProducerID)
	if err != nil {
		if errors.Is(err, ErrProducerNotFound) {
			return ErrProducerNotFound
		}
		return fmt.Errorf("getting producer: %w", err)
	}

	if producer.IsDeleted() {
		return ErrProducerSoftDeleted
	}

	err = s.repository.Create(ctx, greenhouse)
	if err != nil {
		slog.Error("creating greenhouse", slog.String("error", err.Error()))
		return fmt.Errorf("creating greenhouse: %w", err)
	}

	slog.Info("greenhouse created successfully",
		slog.String("id", greenhouse.ID.String()),
		slog.String("producer_id", greenhouse.ProducerID.String()))

	return nil
}

func (s *SimpleGreenhouseService) GetGreenhouse(ctx context.Context, id shareddomain.ID) (producerDomain.Greenhouse, error) {
	greenhouse, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrGreenhouseNotFound) {
			return producerDomain.Greenhouse{}, ErrGreenhouseNotFound
		}
		slog.Error("getting greenhouse", slog.String("error", err.Error()))
		return producerDomain.Greenhouse{}, fmt.Errorf("getting greenhouse: %w", err)
	}

	return greenhouse, nil
}

func (s *SimpleGreenhouseService) ListGreenhouses(ctx context.Context, producerID shareddomain.ID, pagination Pagination) ([]producerDomain.Greenhouse, int, error) {
	greenhouses, total, err := s.repository.FindAll(ctx, producerID, pagination)
	if err != nil {
		slog.Error("listing greenhouses", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing greenhouses: %w", err)
	}

	return greenhouses, total, nil
}

func (s *SimpleGreenhouseService) UpdateGreenhouse(ctx context.Context, greenhouse producerDomain.Greenhouse) error {
	existing, err := s.repository.GetByID(ctx, greenhouse.ID)
	if err != nil {
		if errors.Is(err, ErrGreenhouseNotFound) {
			return ErrGreenhouseNotFound
		}
		return fmt.Errorf("getting greenhouse: %w", err)
	}

	if existing.IsDeleted() {
		return ErrGreenhouseSoftDeleted
	}

	var areaM2 *float64
	if greenhouse.AreaM2 > 0 {
		areaM2 = &greenhouse.AreaM2
	}
	existing.UpdateInfo(greenhouse.Name, greenhouse.Location, greenhouse.Crop, areaM2)

	err = s.repository.Update(ctx, existing)
	if err != nil {
		slog.Error("updating greenhouse", slog.String("error", err.Error()))
		return fmt.Errorf("updating greenhouse: %w", err)
	}

	slog.Info("greenhouse updated successfully", slog.String("id", greenhouse.ID.String()))
	return nil
}

func (s *SimpleGreenhouseService) SoftDeleteGreenhouse(ctx context.Context, id shareddomain.ID) error {
	greenhouse, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrGreenhouseNotFound) {
			return ErrGreenhouseNotFound
		}
		return fmt.Errorf("getting greenhouse: %w", err)
	}

	if greenhouse.IsDeleted() {
		return ErrGreenhouseSoftDeleted
	}

	greenhouse.SoftDelete()

	err = s.repository.Update(ctx, greenhouse)
	if err != nil {
		slog.Error("soft deleting greenhouse", slog.String("error", err.Error()))
		return fmt.Errorf("soft deleting greenhouse: %w", err)
	}

	slog.Info("greenhouse soft deleted successfully", slog.String("id", id.String()))
	return nil
}
