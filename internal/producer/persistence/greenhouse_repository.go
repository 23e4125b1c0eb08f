package persistence

import (
	"context"
	"errors"
	"fmt"

	"greenhouse-server/internal/infra/pubsub"
	"greenhouse-server/internal/infra/sql"
	producerDomain "greenhouse-server/internal/producer/domain"
	"greenhouse-server/internal/producer/persistence/internal"
	"greenhouse-server/internal/producer/usecases"
	"greenhouse-server/internal/shared_kernel/avro"
	shareddomain "greenhouse-server/internal/shared_kernel/domain"
)

const (
	_greenhousesTopic pubsub.Topic = "greenhouses"
)

func NewGreenhouseRepository(publisherFactory pubsub.PublisherFactory, orm sql.ORM) (*SimpleGreenhouseRepository, error) {
	publisher, err := publisherFactory.New(_greenhousesTopic, &avro.AvroGreenhouse{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	if err := orm.AutoMigrate(&internal.Greenhouse{}); err != nil {
		return nil, fmt.Errorf("auto migrating database: %w", err)
	}

	return &SimpleGreenhouseRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var _ usecases.GreenhouseRepository = (*SimpleGreenhouseRepository)(nil)

type SimpleGreenhouseRepository struct {
	publisher pubsub.Publisher
	orm       sql.ORM
}

func (r *SimpleGreenhouseRepository) Create(ctx context.Context, greenhouse producerDomain.Greenhouse) error {
	entity := internal.FromGreenhouse(greenhouse)
	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating greenhouse: %w", err)
	}

	if err := r.publisher.Publish(ctx, pubsub.Key(greenhouse.ID), convertToAvroGreenhouse(greenhouse)); err != nil {
		return fmt.Errorf("publishing to topic: %w", err)
	}

	return nil
}

func (r *SimpleGreenhouseRepository) GetByID(ctx context.Context, id shareddomain.ID) (producerDomain.Greenhouse, error) {
	var entity internal.Greenhouse
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return producerDomain.Greenhouse{}, usecases.ErrGreenhouseNotFound
	}
	if err != nil {
		return producerDomain.Greenhouse{}, fmt.Errorf("getting greenhouse: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleGreenhouseRepository) FindAll(ctx context.Context, producerID shareddomain.ID, pagination usecases.Pagination) ([]producerDomain.Greenhouse, int, error) {
	query := r.orm.WithContext(ctx).Model(&internal.Greenhouse{}).Where("deleted_at IS NULL")
	if producerID != "" {
		query = query.Where("producer_id = ?", producerID.String())
	}

	var total int64
	if err := query.Count(&total).Error(); err != nil {
		return nil, 0, fmt.Errorf("counting greenhouses: %w", err)
	}

	var entities []internal.Greenhouse
	err := query.
		Order("created_at").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("finding greenhouses: %w", err)
	}

	greenhouses := make([]producerDomain.Greenhouse, len(entities))
	for i, entity := range entities {
		greenhouses[i] = entity.ToDomain()
	}

	return greenhouses, int(total), nil
}

func (r *SimpleGreenhouseRepository) Update(ctx context.Context, greenhouse producerDomain.Greenhouse) error {
	entity := internal.FromGreenhouse(greenhouse)
	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("updating greenhouse: %w", err)
	}

	if err := r.publisher.Publish(ctx, pubsub.Key(greenhouse.ID), convertToAvroGreenhouse(greenhouse)); err != nil {
		return fmt.Errorf("publishing to topic: %w", err)
	}

	return nil
}

func convertToAvroGreenhouse(greenhouse producerDomain.Greenhouse) *avro.AvroGreenhouse {
	return &avro.AvroGreenhouse{
		ID:         greenhouse.ID.String(),
		Version:    int(greenhouse.Version),
		ProducerID: greenhouse.ProducerID.String(),
		Name:       greenhouse.Name,
		Location:   greenhouse.Location,
		AreaM2:     greenhouse.AreaM2,
		Crop:       greenhouse.Crop,
		CreatedAt:  greenhouse.CreatedAt,
		UpdatedAt:  greenhouse.UpdatedAt,
		DeletedAt:  greenhouse.DeletedAt,
	}
}
