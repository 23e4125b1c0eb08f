package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	checklistDomain "greenhouse-server/internal/checklist/domain"
	"greenhouse-server/internal/checklist/persistence/internal"
	"greenhouse-server/internal/checklist/usecases"
	"greenhouse-server/internal/infra/pubsub"
	"greenhouse-server/internal/infra/sql"
	"greenhouse-server/internal/shared_kernel/avro"
	shareddomain "greenhouse-server/internal/shared_kernel/domain"
)

const (
	_checklistRecordsTopic pubsub.Topic = "checklist_records"
)

func NewChecklistRecordRepository(
	publisherFactory pubsub.PublisherFactory,
	orm sql.ORM,
) (*SimpleChecklistRecordRepository, error) {
	publisher, err := publisherFactory.New(_checklistRecordsTopic, &avro.AvroChecklistRecord{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	if err := orm.AutoMigrate(&internal.ChecklistRecord{}); err != nil {
		return nil, fmt.Errorf("auto migrating database: %w", err)
	}

	return &SimpleChecklistRecordRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

type SimpleChecklistRecordRepository struct {
	publisher pubsub.Publisher
	orm       sql.ORM
}

func (r *SimpleChecklistRecordRepository) Create(ctx context.Context, record checklistDomain.ChecklistRecord) error {
	entity := internal.FromChecklistRecord(record)
	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating checklist record: %w", err)
	}

	avroRecord, err := convertToAvroChecklistRecord(record)
	if err != nil {
		return fmt.Errorf("converting to avro checklist record: %w", err)
	}
	if err := r.publisher.Publish(ctx, pubsub.Key(record.ID), avroRecord); err != nil {
		return fmt.Errorf("publishing to topic: %w", err)
	}

	return nil
}

func (r *SimpleChecklistRecordRepository) GetByGreenhouseAndTemplate(
	ctx context.Context,
	greenhouseID shareddomain.ID,
	templateID shareddomain.Name,
) (checklistDomain.ChecklistRecord, error) {
	var entity internal.ChecklistRecord
	err := r.orm.
		WithContext(ctx).
		Where("greenhouse_id = ? AND template_id = ?", greenhouseID.String(), string(templateID)).
		First(&entity).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return checklistDomain.ChecklistRecord{}, usecases.ErrChecklistRecordNotFound
	}
	if err != nil {
		return checklistDomain.ChecklistRecord{}, fmt.Errorf("getting checklist record: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleChecklistRecordRepository) FindAllByGreenhouse(
	ctx context.Context,
	greenhouseID shareddomain.ID,
) ([]checklistDomain.ChecklistRecord, error) {
	var entities []internal.ChecklistRecord
	err := r.orm.
		WithContext(ctx).
		Where("greenhouse_id = ?", greenhouseID.String()).
		Order("template_id").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("finding checklist records: %w", err)
	}

	records := make([]checklistDomain.ChecklistRecord, 0, len(entities))
	for _, entity := range entities {
		records = append(records, entity.ToDomain())
	}

	return records, nil
}

func (r *SimpleChecklistRecordRepository) Update(ctx context.Context, record checklistDomain.ChecklistRecord) error {
	entity := internal.FromChecklistRecord(record)
	err := r.orm.WithContext(ctx).Save(&entity).Error()
	if err != nil {
		return fmt.Errorf("updating checklist record: %w", err)
	}

	avroRecord, err := convertToAvroChecklistRecord(record)
	if err != nil {
		return fmt.Errorf("converting to avro checklist record: %w", err)
	}
	if err := r.publisher.Publish(ctx, pubsub.Key(record.ID), avroRecord); err != nil {
		return fmt.Errorf("publishing to topic: %w", err)
	}

	return nil
}

func convertToAvroChecklistRecord(record checklistDomain.ChecklistRecord) (*avro.AvroChecklistRecord, error) {
	data, err := json.Marshal(record.Items)
	if err != nil {
		return nil, fmt.Errorf("marshaling item data: %w", err)
	}

	completed := 0
	for _, item := range record.Items {
		if item.Completed {
			completed++
		}
	}

	return &avro.AvroChecklistRecord{
		ID:             record.ID.String(),
		Version:        int(record.Version),
		GreenhouseID:   record.GreenhouseID.String(),
		TemplateID:     string(record.TemplateID),
		Data:           string(data),
		ItemCount:      len(record.Items),
		CompletedCount: completed,
		CreatedAt:      record.CreatedAt.Time,
		UpdatedAt:      record.UpdatedAt.Time,
	}, nil
}
