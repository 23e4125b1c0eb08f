package usecases

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/producer/usecases/repository_port_mock.go -package=usecases -mock_names=ProducerRepository=MockProducerRepository,GreenhouseRepository=MockGreenhouseRepository

import (
	"context"
	"errors"

	producerDomain "greenhouse-server/internal/producer/domain"
	shareddomain "greenhouse-server/internal/shared_kernel/domain"
)

var (
	ErrProducerNotFound   = errors.New("producer not found")
	ErrGreenhouseNotFound = errors.New("greenhouse not found")
)

type Pagination struct {
	Limit  int
	Offset int
}

type ProducerRepository interface {
	Create(ctx context.Context, producer producerDomain.Producer) error
	GetByID(ctx context.Context, id shareddomain.ID) (producerDomain.Producer, error)
	GetByEmail(ctx context.Context, email string) (producerDomain.Producer, error)
	FindAll(ctx context.Context, includeDeleted bool, pagination Pagination) ([]producerDomain.Producer, int, error)
	Update(ctx context.Context, producer producerDomain.Producer) error
}

type GreenhouseRepository interface {
	Create(ctx context.Context, greenhouse producerDomain.Greenhouse) error
	GetByID(ctx context.Context, id shareddomain.ID) (producerDomain.Greenhouse, error)
	FindAll(ctx context.Context, producerID shareddomain.ID, pagination Pagination) ([]producerDomain.Greenhouse, int, error)
	Update(ctx context.Context, greenhouse producerDomain.Greenhouse) error
}
