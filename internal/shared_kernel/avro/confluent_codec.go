package avro

import (
	"context"
	"encoding/binary"
	"fmt"
	"reflect"
	"time"

	"greenhouse-server/internal/infra/cache"

	"github.com/linkedin/goavro/v2"
	"github.com/riferrei/srclient"
)

const (
	_defaultSchemaCacheTTL = 5 * time.Minute
	_defaultCodecCacheTTL  = 5 * time.Minute
)

// SchemaRegistry defines the interface for schema registry operations
type SchemaRegistry interface {
	GetLatestSchema(subject string) (*srclient.Schema, error)
	CreateSchema(subject string, schema string, schemaType srclient.SchemaType, references ...srclient.Reference) (*srclient.Schema, error)
	GetSchema(schemaID int) (*srclient.Schema, error)
}

// ConfluentAvroCodec implements Codec interface using Confluent Avro wire format and Schema Registry
type ConfluentAvroCodec struct {
	prototype      any
	schemaRegistry SchemaRegistry
	subjectSuffix  string
	schemaCache    cache.Cache
	codecCache     cache.Cache
}

// NewConfluentAvroCodec creates a new Confluent Avro codec backed by the given schema registry
func NewConfluentAvroCodec(prototype any, schemaRegistryURL string) (*ConfluentAvroCodec, error) {
	if schemaRegistryURL == "" {
		return nil, fmt.Errorf("schema registry URL is required")
	}

	schemaCache, err := cache.New(&cache.CacheConfig{
		MaxCost:     1 << 20, // 1MB
		NumCounters: 1e6,     // 1M
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("creating schema cache: %w", err)
	}

	codecCache, err := cache.New(&cache.CacheConfig{
		MaxCost:     1 << 20, // 1MB
		NumCounters: 1e6,     // 1M
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("creating codec cache: %w", err)
	}

	return &ConfluentAvroCodec{
		prototype:      prototype,
		schemaRegistry: srclient.CreateSchemaRegistryClient(schemaRegistryURL),
		subjectSuffix:  "-value",
		schemaCache:    schemaCache,
		codecCache:     codecCache,
	}, nil
}

// subjectNameFor maps a message type name to its schema registry subject
func subjectNameFor(typeName string) (string, error) {
	switch typeName {
	case "Producer", "AvroProducer":
		return "producers", nil
	case "Greenhouse", "AvroGreenhouse":
		return "greenhouses", nil
	case "Harvest", "AvroHarvest":
		return "harvests", nil
	case "ChecklistRecord", "AvroChecklistRecord":
		return "checklist_records", nil
	default:
		return "", fmt.Errorf("no Avro subject found for message type: %s", typeName)
	}
}

// schemaDefinitions maps subjects to their embedded Avro schema definitions
var schemaDefinitions = map[string]string{
	"producers":         producerSchema,
	"greenhouses":       greenhouseSchema,
	"harvests":          harvestSchema,
	"checklist_records": checklistRecordSchema,
}

func (c *ConfluentAvroCodec) getSubjectForMessage(message any) (string, error) {
	messageType := reflect.TypeOf(message)
	if messageType.Kind() == reflect.Ptr {
		messageType = messageType.Elem()
	}

	return subjectNameFor(messageType.Name())
}

// getOrRegisterSchemaID gets or registers the schema in the registry and returns its ID
func (c *ConfluentAvroCodec) getOrRegisterSchemaID(subjectName string) (int, error) {
	subject := subjectName + c.subjectSuffix

	ctx := context.Background()
	if cached, found := c.schemaCache.Get(ctx, subject); found {
		if id, ok := cached.(int); ok {
			return id, nil
		}
	}

	registered, err := c.schemaRegistry.GetLatestSchema(subject)
	if err == nil && registered != nil {
		c.schemaCache.Set(ctx, subject, registered.ID(), _defaultSchemaCacheTTL)
		return registered.ID(), nil
	}

	schema, exists := schemaDefinitions[subjectName]
	if !exists {
		return 0, fmt.Errorf("no schema definition for subject %s", subjectName)
	}

	newSchema, err := c.schemaRegistry.CreateSchema(subject, schema, srclient.Avro)
	if err != nil {
		return 0, fmt.Errorf("registering schema: %w", err)
	}

	c.schemaCache.Set(ctx, subject, newSchema.ID(), _defaultSchemaCacheTTL)
	return newSchema.ID(), nil
}

// getCodecByID fetches the codec for a schema ID from the registry if not cached
func (c *ConfluentAvroCodec) getCodecByID(schemaID int) (*goavro.Codec, error) {
	ctx := context.Background()
	schemaIDKey := fmt.Sprintf("schema_%d", schemaID)

	if cached, found := c.codecCache.Get(ctx, schemaIDKey); found {
		if codec, ok := cached.(*goavro.Codec); ok {
			return codec, nil
		}
	}

	schema, err := c.schemaRegistry.GetSchema(schemaID)
	if err != nil {
		return nil, fmt.Errorf("fetching schema from registry: %w", err)
	}
	codec, err := goavro.NewCodec(schema.Schema())
	if err != nil {
		return nil, fmt.Errorf("creating codec from schema: %w", err)
	}
	c.codecCache.Set(ctx, schemaIDKey, codec, _defaultCodecCacheTTL)
	return codec, nil
}

// Encode encodes a value into Confluent Avro wire format
func (c *ConfluentAvroCodec) Encode(value any) ([]byte, error) {
	native, err := c.convertToNative(value)
	if err != nil {
		return nil, fmt.Errorf("converting to Avro native: %w", err)
	}

	subject, err := c.getSubjectForMessage(value)
	if err != nil {
		return nil, fmt.Errorf("getting subject for message: %w", err)
	}

	schemaID, err := c.getOrRegisterSchemaID(subject)
	if err != nil {
		return nil, fmt.Errorf("getting schema ID: %w", err)
	}

	codec, err := c.getCodecByID(schemaID)
	if err != nil {
		return nil, fmt.Errorf("getting codec by schema ID: %w", err)
	}

	avroData, err := codec.BinaryFromNative(nil, native)
	if err != nil {
		return nil, fmt.Errorf("encoding to Avro: %w", err)
	}

	result := make([]byte, 5+len(avroData))
	result[0] = 0 // Magic byte
	binary.BigEndian.PutUint32(result[1:5], uint32(schemaID))
	copy(result[5:], avroData)

	return result, nil
}

// Decode decodes a value from Confluent Avro wire format
func (c *ConfluentAvroCodec) Decode(data []byte) (any, error) {
	if len(data) < 5 {
		return nil, fmt.Errorf("invalid Avro data: too short")
	}
	if data[0] != 0 {
		return nil, fmt.Errorf("invalid magic byte: expected 0, got %d", data[0])
	}
	schemaID := int(binary.BigEndian.Uint32(data[1:5]))
	avroData := data[5:]

	codec, err := c.getCodecByID(schemaID)
	if err != nil {
		return nil, fmt.Errorf("getting codec by schema ID: %w", err)
	}

	native, _, err := codec.NativeFromBinary(avroData)
	if err != nil {
		return nil, fmt.Errorf("decoding Avro data: %w", err)
	}

	mapValue, ok := native.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected Avro native type: %T", native)
	}

	return c.convertFromNative(mapValue)
}

// convertToNative converts an Avro message struct to the goavro native representation
func (c *ConfluentAvroCodec) convertToNative(value any) (map[string]any, error) {
	switch v := value.(type) {
	case *AvroProducer:
		return producerToNative(*v), nil
	case AvroProducer:
		return producerToNative(v), nil
	case *AvroGreenhouse:
		return greenhouseToNative(*v), nil
	case AvroGreenhouse:
		return greenhouseToNative(v), nil
	case *AvroHarvest:
		return harvestToNative(*v), nil
	case AvroHarvest:
		return harvestToNative(v), nil
	case *AvroChecklistRecord:
		return checklistRecordToNative(*v), nil
	case AvroChecklistRecord:
		return checklistRecordToNative(v), nil
	default:
		return nil, fmt.Errorf("unsupported message type for Avro conversion: %T", value)
	}
}

func producerToNative(v AvroProducer) map[string]any {
	result := map[string]any{
		"id":         v.ID,
		"version":    v.Version,
		"name":       v.Name,
		"email":      v.Email,
		"phone":      v.Phone,
		"farm_name":  v.FarmName,
		"is_active":  v.IsActive,
		"created_at": v.CreatedAt,
		"updated_at": v.UpdatedAt,
	}
	result["deleted_at"] = timePtrToUnion(v.DeletedAt)
	return result
}

func greenhouseToNative(v AvroGreenhouse) map[string]any {
	result := map[string]any{
		"id":          v.ID,
		"version":     v.Version,
		"producer_id": v.ProducerID,
		"name":        v.Name,
		"location":    v.Location,
		"area_m2":     v.AreaM2,
		"crop":        v.Crop,
		"created_at":  v.CreatedAt,
		"updated_at":  v.UpdatedAt,
	}
	result["deleted_at"] = timePtrToUnion(v.DeletedAt)
	return result
}

func harvestToNative(v AvroHarvest) map[string]any {
	return map[string]any{
		"id":            v.ID,
		"version":       v.Version,
		"greenhouse_id": v.GreenhouseID,
		"producer_id":   v.ProducerID,
		"crop":          v.Crop,
		"quantity_kg":   v.QuantityKg,
		"unit_price":    v.UnitPrice,
		"total_value":   v.TotalValue,
		"harvested_at":  v.HarvestedAt,
		"created_at":    v.CreatedAt,
		"updated_at":    v.UpdatedAt,
	}
}

func checklistRecordToNative(v AvroChecklistRecord) map[string]any {
	return map[string]any{
		"id":              v.ID,
		"version":         v.Version,
		"greenhouse_id":   v.GreenhouseID,
		"template_id":     v.TemplateID,
		"data":            v.Data,
		"item_count":      v.ItemCount,
		"completed_count": v.CompletedCount,
		"created_at":      v.CreatedAt,
		"updated_at":      v.UpdatedAt,
	}
}

// convertFromNative converts the goavro native representation back to the
// prototype's Avro message struct
func (c *ConfluentAvroCodec) convertFromNative(m map[string]any) (any, error) {
	prototypeType := reflect.TypeOf(c.prototype)
	if prototypeType.Kind() == reflect.Ptr {
		prototypeType = prototypeType.Elem()
	}

	switch prototypeType.Name() {
	case "Producer", "AvroProducer":
		return &AvroProducer{
			ID:        getString(m, "id"),
			Version:   getInt(m, "version"),
			Name:      getString(m, "name"),
			Email:     getString(m, "email"),
			Phone:     getString(m, "phone"),
			FarmName:  getString(m, "farm_name"),
			IsActive:  getBool(m, "is_active"),
			CreatedAt: getTime(m, "created_at"),
			UpdatedAt: getTime(m, "updated_at"),
			DeletedAt: getTimePtr(m, "deleted_at"),
		}, nil
	case "Greenhouse", "AvroGreenhouse":
		return &AvroGreenhouse{
			ID:         getString(m, "id"),
			Version:    getInt(m, "version"),
			ProducerID: getString(m, "producer_id"),
			Name:       getString(m, "name"),
			Location:   getString(m, "location"),
			AreaM2:     getFloat64(m, "area_m2"),
			Crop:       getString(m, "crop"),
			CreatedAt:  getTime(m, "created_at"),
			UpdatedAt:  getTime(m, "updated_at"),
			DeletedAt:  getTimePtr(m, "deleted_at"),
		}, nil
	case "Harvest", "AvroHarvest":
		return &AvroHarvest{
			ID:           getString(m, "id"),
			Version:      getInt(m, "version"),
			GreenhouseID: getString(m, "greenhouse_id"),
			ProducerID:   getString(m, "producer_id"),
			Crop:         getString(m, "crop"),
			QuantityKg:   getFloat64(m, "quantity_kg"),
			UnitPrice:    getFloat64(m, "unit_price"),
			TotalValue:   getFloat64(m, "total_value"),
			HarvestedAt:  getTime(m, "harvested_at"),
			CreatedAt:    getTime(m, "created_at"),
			UpdatedAt:    getTime(m, "updated_at"),
		}, nil
	case "ChecklistRecord", "AvroChecklistRecord":
		return &AvroChecklistRecord{
			ID:             getString(m, "id"),
			Version:        getInt(m, "version"),
			GreenhouseID:   getString(m, "greenhouse_id"),
			TemplateID:     getString(m, "template_id"),
			Data:           getString(m, "data"),
			ItemCount:      getInt(m, "item_count"),
			CompletedCount: getInt(m, "completed_count"),
			CreatedAt:      getTime(m, "created_at"),
			UpdatedAt:      getTime(m, "updated_at"),
		}, nil
	default:
		return nil, fmt.Errorf("no Avro mapping found for prototype type: %s", prototypeType.Name())
	}
}

// timePtrToUnion wraps an optional timestamp into the Avro union representation
func timePtrToUnion(t *time.Time) any {
	if t == nil {
		return nil
	}
	return map[string]any{"long.timestamp-millis": t.UnixMilli()}
}

// Helper functions for map conversion

func getString(m map[string]any, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func getBool(m map[string]any, key string) bool {
	if v, ok := m[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

func getInt(m map[string]any, key string) int {
	if v, ok := m[key]; ok {
		switch val := v.(type) {
		case int:
			return val
		case int32:
			return int(val)
		case int64:
			return int(val)
		case float64:
			return int(val)
		}
	}
	return 0
}

func getFloat64(m map[string]any, key string) float64 {
	if v, ok := m[key]; ok {
		switch val := v.(type) {
		case float64:
			return val
		case float32:
			return float64(val)
		case int64:
			return float64(val)
		}
	}
	return 0
}

func getTime(m map[string]any, key string) time.Time {
	if v, ok := m[key]; ok {
		switch val := v.(type) {
		case time.Time:
			return val
		case int64:
			return time.UnixMilli(val)
		}
	}
	return time.Time{}
}

func getTimePtr(m map[string]any, key string) *time.Time {
	v, ok := m[key]
	if !ok || v == nil {
		return nil
	}

	// Union values decode as a single-entry map keyed by the Avro type name
	if unionMap, ok := v.(map[string]any); ok {
		for _, inner := range unionMap {
			switch val := inner.(type) {
			case time.Time:
				return &val
			case int64:
				t := time.UnixMilli(val)
				return &t
			}
		}
		return nil
	}

	if t, ok := v.(time.Time); ok {
		return &t
	}
	return nil
}
