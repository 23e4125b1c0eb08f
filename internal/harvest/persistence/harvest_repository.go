package persistence

import (
	"context"
	"errors"
	"fmt"

	harvestDomain "greenhouse-server/internal/harvest/domain"
	"greenhouse-server/internal/harvest/persistence/internal"
	"greenhouse-server/internal/harvest/usecases"
	"greenhouse-server/internal/infra/pubsub"
	"greenhouse-server/internal/infra/sql"
	"greenhouse-server/internal/shared_kernel/avro"
	shareddomain "greenhouse-server/internal/shared_kernel/domain"
)

const (
	_harvestsTopic pubsub.Topic = "harvests"
)

func NewHarvestRepository(publisherFactory pubsub.PublisherFactory, orm sql.ORM) (*SimpleHarvestRepository, error) {
	publisher, err := publisherFactory.New(_harvestsTopic, &avro.AvroHarvest{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	if err := orm.AutoMigrate(&internal.Harvest{}); err != nil {
		return nil, fmt.Errorf("auto migrating database: %w", err)
	}

	return &SimpleHarvestRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var _ usecases.HarvestRepository = (*SimpleHarvestRepository)(nil)

type SimpleHarvestRepository struct {
	publisher pubsub.Publisher
	orm       sql.ORM
}

func (r *SimpleHarvestRepository) Create(ctx context.Context, harvest harvestDomain.Harvest) error {
	entity := internal.FromHarvest(harvest)
	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating harvest: %w", err)
	}

	if err := r.publisher.Publish(ctx, pubsub.Key(harvest.ID), convertToAvroHarvest(harvest)); err != nil {
		return fmt.Errorf("publishing to topic: %w", err)
	}

	return nil
}

func (r *SimpleHarvestRepository) GetByID(ctx context.Context, id shareddomain.ID) (harvestDomain.Harvest, error) {
	var entity internal.Harvest
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return harvestDomain.Harvest{}, usecases.ErrHarvestNotFound
	}
	if err != nil {
		return harvestDomain.Harvest{}, fmt.Errorf("getting harvest: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleHarvestRepository) FindAll(ctx context.Context, filters usecases.Filters, pagination usecases.Pagination) ([]harvestDomain.Harvest, int, error) {
	query := r.orm.WithContext(ctx).Model(&internal.Harvest{})
	if filters.ProducerID != "" {
		query = query.Where("producer_id = ?", filters.ProducerID.String())
	}
	if filters.GreenhouseID != "" {
		query = query.Where("greenhouse_id = ?", filters.GreenhouseID.String())
	}
	if filters.From != nil {
		query = query.Where("harvested_at >= ?", *filters.From)
	}
	if filters.To != nil {
		query = query.Where("harvested_at <= ?", *filters.To)
	}

	var total int64
	if err := query.Count(&total).Error(); err != nil {
		return nil, 0, fmt.Errorf("counting harvests: %w", err)
	}

	var entities []internal.Harvest
	err := query.
		Order("harvested_at").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("finding harvests: %w", err)
	}

	harvests := make([]harvestDomain.Harvest, len(entities))
	for i, entity := range entities {
		harvests[i] = entity.ToDomain()
	}

	return harvests, int(total), nil
}

func (r *SimpleHarvestRepository) Update(ctx context.Context, harvest harvestDomain.Harvest) error {
	entity := internal.FromHarvest(harvest)
	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("updating harvest: %w", err)
	}

	if err := r.publisher.Publish(ctx, pubsub.Key(harvest.ID), convertToAvroHarvest(harvest)); err != nil {
		return fmt.Errorf("publishing to topic: %w", err)
	}

	return nil
}

func (r *SimpleHarvestRepository) Delete(ctx context.Context, id shareddomain.ID) error {
	err := r.orm.
		WithContext(ctx).
		Delete(&internal.Harvest{}, "id = ?", id.String()).
		Error()
	if err != nil {
		return fmt.Errorf("deleting harvest: %w", err)
	}

	return nil
}

func convertToAvroHarvest(harvest harvestDomain.Harvest) *avro.AvroHarvest {
	return &avro.AvroHarvest{
		ID:           harvest.ID.String(),
		Version:      int(harvest.Version),
		GreenhouseID: harvest.GreenhouseID.String(),
		ProducerID:   harvest.ProducerID.String(),
		Crop:         harvest.Crop,
		QuantityKg:   harvest.QuantityKg,
		UnitPrice:    harvest.UnitPrice,
		TotalValue:   harvest.TotalValue,
		HarvestedAt:  harvest.HarvestedAt,
		CreatedAt:    harvest.CreatedAt,
		UpdatedAt:    harvest.UpdatedAt,
	}
}
