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
	_producersTopic pubsub.Topic = "producers"
)

func NewProducerRepository(publisherFactory pubsub.PublisherFactory, orm sql.ORM) (*SimpleProducerRepository, error) {
	publisher, err := publisherFactory.New(_producersTopic, &avro.AvroProducer{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	if err := orm.AutoMigrate(&internal.Producer{}); err != nil {
		return nil, fmt.Errorf("auto migrating database: %w", err)
	}

	return &SimpleProducerRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var _ usecases.ProducerRepository = (*SimpleProducerRepository)(nil)

type SimpleProducerRepository struct {
	publisher pubsub.Publisher
	orm       sql.ORM
}

func (r *SimpleProducerRepository) Create(ctx context.Context, producer producerDomain.Producer) error {
	entity := internal.FromProducer(producer)
	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating producer: %w", err)
	}

	if err := r.publisher.Publish(ctx, pubsub.Key(producer.ID), convertToAvroProducer(producer)); err != nil {
		return fmt.Errorf("publishing to topic: %w", err)
	}

	return nil
}

func (r *SimpleProducerRepository) GetByID(ctx context.Context, id shareddomain.ID) (producerDomain.Producer, error) {
	var entity internal.Producer
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return producerDomain.Producer{}, usecases.ErrProducerNotFound
	}
	if err != nil {
		return producerDomain.Producer{}, fmt.Errorf("getting producer: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleProducerRepository) GetByEmail(ctx context.Context, email string) (producerDomain.Producer, error) {
	var entity internal.Producer
	err := r.orm.
		WithContext(ctx).
		Where("email = ?", email).
		First(&entity).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return producerDomain.Producer{}, usecases.ErrProducerNotFound
	}
	if err != nil {
		return producerDomain.Producer{}, fmt.Errorf("getting producer by email: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleProducerRepository) FindAll(ctx context.Context, includeDeleted bool, pagination usecases.Pagination) ([]producerDomain.Producer, int, error) {
	query := r.orm.WithContext(ctx).Model(&internal.Producer{})
	if !includeDeleted {
		query = query.Where("deleted_at IS NULL")
	}

	var total int64
	if err := query.Count(&total).Error(); err != nil {
		return nil, 0, fmt.Errorf("counting producers: %w", err)
	}

	var entities []internal.Producer
	err := query.
		Order("created_at").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("finding producers: %w", err)
	}

	producers := make([]producerDomain.Producer, len(entities))
	for i, entity := range entities {
		producers[i] = entity.ToDomain()
	}

	return producers, int(total), nil
}

func (r *SimpleProducerRepository) Update(ctx context.Context, producer producerDomain.Producer) error {
	entity := internal.FromProducer(producer)
	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("updating producer: %w", err)
	}

	if err := r.publisher.Publish(ctx, pubsub.Key(producer.ID), convertToAvroProducer(producer)); err != nil {
		return fmt.Errorf("publishing to topic: %w", err)
	}

	return nil
}

func convertToAvroProducer(producer producerDomain.Producer) *avro.AvroProducer {
	return &avro.AvroProducer{
		ID:        producer.ID.String(),
		Version:   int(producer.Version),
		Name:      producer.Name,
		Email:     producer.Email,
		Phone:     producer.Phone,
		FarmName:  producer.FarmName,
		IsActive:  producer.IsActive,
		CreatedAt: producer.CreatedAt,
		UpdatedAt: producer.UpdatedAt,
		DeletedAt: producer.DeletedAt,
	}
}
