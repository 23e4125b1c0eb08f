package usecases

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/harvest/usecases/repository_port_mock.go -package=usecases

import (
	"context"
	"errors"
	"time"

	"greenhouse-server/internal/harvest/domain"
	shareddomain "greenhouse-server/internal/shared_kernel/domain"
)

var ErrHarvestNotFound = errors.New("harvest not found")

type Pagination struct {
	Limit  int
	Offset int
}

// Filters narrows harvest listings. Zero values mean no constraint.
type Filters struct {
	ProducerID   shareddomain.ID
	GreenhouseID shareddomain.ID
	From         *time.Time
	To           *time.Time
}

type HarvestRepository interface {
	Create(ctx context.Context, harvest domain.Harvest) error
	GetByID(ctx context.Context, id shareddomain.ID) (domain.Harvest, error)
	FindAll(ctx context.Context, filters Filters, pagination Pagination) ([]domain.Harvest, int, error)
	Update(ctx context.Context, harvest domain.Harvest) error
	Delete(ctx context.Context, id shareddomain.ID) error
}
