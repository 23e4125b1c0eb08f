package usecases

//go:generate mockgen -source=producer_service.go -destination=../../../test/unit/doubles/producer/usecases/producer_service_mock.go -package=usecases -mock_names=ProducerService=MockProducerService

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	producerDomain "greenhouse-server/internal/producer/domain"
	shareddomain "greenhouse-server/internal/shared_kernel/domain"
)

var (
	ErrProducerDuplicated  = errors.New("producer already exists")
	ErrProducerSoftDeleted = errors.New("producer is soft deleted")
)

type ProducerService interface {
	CreateProducer(ctx context.Context, producer producerDomain.Producer) error
	GetProducer(ctx context.Context, id shareddomain.ID) (producerDomain.Producer, error)
	ListProducers(ctx context.Context, includeDeleted bool, pagination Pagination) ([]producerDomain.Producer, int, error)
	UpdateProducer(ctx context.Context, producer producerDomain.Producer) error
	SoftDeleteProducer(ctx context.Context, id shareddomain.ID) error
	ActivateProducer(ctx context.Context, id shareddomain.ID) error
	DeactivateProducer(ctx context.Context, id shareddomain.ID) error
}

func NewProducerService(repository ProducerRepository) *SimpleProducerService {
	return &SimpleProducerService{
		repository: repository,
	}
}

var _ ProducerService = &SimpleProducerService{}

type SimpleProducerService struct {
	repository ProducerRepository
}

func (s *SimpleProducerService) CreateProducer(ctx context.Context, producer producerDomain.Producer) error {
	existing, err := s.repository.GetByEmail(ctx, producer.Email)
	if err != nil && !errors.Is(err, ErrProducerNotFound) {
		slog.Error("checking existing producer", slog.String("error", err.Error()))
		return fmt.Errorf("checking existing producer: %w", err)
	}

	if existing.ID != "" {
		slog.Warn("producer already exists", slog.String("email", producer.Email))
		return ErrProducerDuplicated
	}

	err = s.repository.Create(ctx, producer)
	if err != nil {
		slog.Error("creating producer", slog.String("error", err.Error()))
		return fmt.Errorf("creating producer: %w", err)
	}

	slog.Info("producer created successfully",
		slog.String("id", producer.ID.String()),
		slog.String("name", producer.Name))

	return nil
}

func (s *SimpleProducerService) GetProducer(ctx context.Context, id shareddomain.ID) (producerDomain.Producer, error) {
	producer, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrProducerNotFound) {
			return producerDomain.Producer{}, ErrProducerNotFound
		}
		slog.Error("getting producer", slog.String("error", err.Error()))
		return producerDomain.Producer{}, fmt.Errorf("getting producer: %w", err)
	}

	return producer, nil
}

func (s *SimpleProducerService) ListProducers(ctx context.Context, includeDeleted bool, pagination Pagination) ([]producerDomain.Producer, int, error) {
	producers, total, err := s.repository.FindAll(ctx, includeDeleted, pagination)
	if err != nil {
		slog.Error("listing producers", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing producers: %w", err)
	}

	return producers, total, nil
}

func (s *SimpleProducerService) UpdateProducer(ctx context.Context, producer producerDomain.Producer) error {
	existing, err := s.repository.GetByID(ctx, producer.ID)
	if err != nil {
		if errors.Is(err, ErrProducerNotFound) {
			return ErrProducerNotFound
		}
		return fmt.Errorf("getting producer: %w", err)
	}

	if existing.IsDeleted() {
		return ErrProducerSoftDeleted
	}

	if producer.Email != "" && producer.Email != existing.Email {
		conflicting, err := s.repository.GetByEmail(ctx, producer.Email)
		if err != nil && !errors.Is(err, ErrProducerNotFound) {
			return fmt.Errorf("checking email conflict: %w", err)
		}
		if err == nil && conflicting.ID != producer.ID {
			return ErrProducerDuplicated
		}
	}

	existing.UpdateInfo(producer.Name, producer.Email, producer.Phone, producer.FarmName)

	err = s.repository.Update(ctx, existing)
	if err != nil {
		slog.Error("updating producer", slog.String("error", err.Error()))
		return fmt.Errorf("updating producer: %w", err)
	}

	slog.Info("producer updated successfully", slog.String("id", producer.ID.String()))
	return nil
}

func (s *SimpleProducerService) SoftDeleteProducer(ctx context.Context, id shareddomain.ID) error {
	producer, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrProducerNotFound) {
			return ErrProducerNotFound
		}
		return fmt.Errorf("getting producer: %w", err)
	}

	if producer.IsDeleted() {
		return ErrProducerSoftDeleted
	}

	producer.SoftDelete()

	err = s.repository.Update(ctx, producer)
	if err != nil {
		slog.Error("soft deleting producer", slog.String("error", err.Error()))
		return fmt.Errorf("soft deleting producer: %w", err)
	}

	slog.Info("producer soft deleted successfully", slog.String("id", id.String()))
	return nil
}

func (s *SimpleProducerService) ActivateProducer(ctx context.Context, id shareddomain.ID) error {
	producer, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrProducerNotFound) {
			return ErrProducerNotFound
		}
		return fmt.Errorf("getting producer: %w", err)
	}

	if producer.IsDeleted() {
		return ErrProducerSoftDeleted
	}

	producer.Activate()

	err = s.repository.Update(ctx, producer)
	if err != nil {
		slog.Error("activating producer", slog.String("error", err.Error()))
		return fmt.Errorf("activating producer: %w", err)
	}

	slog.Info("producer activated successfully", slog.String("id", id.String()))
	return nil
}

func (s *SimpleProducerService) DeactivateProducer(ctx context.Context, id shareddomain.ID) error {
	producer, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrProducerNotFound) {
			return ErrProducerNotFound
		}
		return fmt.Errorf("getting producer: %w", err)
	}

	if producer.IsDeleted() {
		return ErrProducerSoftDeleted
	}

	producer.Deactivate()

	err = s.repository.Update(ctx, producer)
	if err != nil {
		slog.Error("deactivating producer", slog.String("error", err.Error()))
		return fmt.Errorf("deactivating producer: %w", err)
	}

	slog.Info("producer deactivated successfully", slog.String("id", id.String()))
	return nil
}
