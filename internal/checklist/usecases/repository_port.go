package usecases

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/checklist/usecases/repository_port_mock.go -package=usecases -mock_names=ChecklistRecordRepository=MockChecklistRecordRepository

import (
	"context"
	"errors"

	checklistDomain "greenhouse-server/internal/checklist/domain"
	shareddomain "greenhouse-server/internal/shared_kernel/domain"
)

var (
	ErrChecklistRecordNotFound = errors.New("checklist record not found")
)

type ChecklistRecordRepository interface {
	Create(ctx context.Context, record checklistDomain.ChecklistRecord) error
	GetByGreenhouseAndTemplate(ctx context.Context, greenhouseID shareddomain.ID, templateID shareddomain.Name) (checklistDomain.ChecklistRecord, error)
	FindAllByGreenhouse(ctx context.Context, greenhouseID shareddomain.ID) ([]checklistDomain.ChecklistRecord, error)
	Update(ctx context.Context, record checklistDomain.ChecklistRecord) error
}
