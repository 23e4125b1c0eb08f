package avro

import (
	"fmt"
	"reflect"

	"github.com/hamba/avro/v2"
)

// AvroCodec implements Codec interface using static Avro schemas
type AvroCodec struct {
	prototype any
	schemas   map[string]avro.Schema
}

// Static Avro schemas for all message types
const (
	// Producer schema
	producerSchema = `{
		"type": "record",
		"name": "Producer",
		"fields": [
			{"name": "id", "type": "string"},
			{"name": "version", "type": "int"},
			{"name": "name", "type": "string"},
			{"name": "email", "type": "string"},
			{"name": "phone", "type": "string"},
			{"name": "farm_name", "type": "string"},
			{"name": "is_active", "type": "boolean"},
			{"name": "created_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
			{"name": "updated_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
			{"name": "deleted_at", "type": ["null", {"type": "long", "logicalType": "timestamp-millis"}]}
		]
	}`

	// Greenhouse schema
	greenhouseSchema = `{
		"type": "record",
		"name": "Greenhouse",
		"fields": [
			{"name": "id", "type": "string"},
			{"name": "version", "type": "int"},
			{"name": "producer_id", "type": "string"},
			{"name": "name", "type": "string"},
			{"name": "location", "type": "string"},
			{"name": "area_m2", "type": "double"},
			{"name": "crop", "type": "string"},
			{"name": "created_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
			{"name": "updated_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
			{"name": "deleted_at", "type": ["null", {"type": "long", "logicalType": "timestamp-millis"}]}
		]
	}`

	// Harvest schema
	harvestSchema = `{
		"type": "record",
		"name": "Harvest",
		"fields": [
			{"name": "id", "type": "string"},
			{"name": "version", "type": "int"},
			{"name": "greenhouse_id", "type": "string"},
			{"name": "producer_id", "type": "string"},
			{"name": "crop", "type": "string"},
			{"name": "quantity_kg", "type": "double"},
			{"name": "unit_price", "type": "double"},
			{"name": "total_value", "type": "double"},
			{"name": "harvested_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
			{"name": "created_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
			{"name": "updated_at", "type": {"type": "long", "logicalType": "timestamp-millis"}}
		]
	}`

	// ChecklistRecord schema
	checklistRecordSchema = `{
		"type": "record",
		"name": "ChecklistRecord",
		"fields": [
			{"name": "id", "type": "string"},
			{"name": "version", "type": "int"},
			{"name": "greenhouse_id", "type": "string"},
			{"name": "template_id", "type": "string"},
			{"name": "data", "type": "string"},
			{"name": "item_count", "type": "int"},
			{"name": "completed_count", "type": "int"},
			{"name": "created_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
			{"name": "updated_at", "type": {"type": "long", "logicalType": "timestamp-millis"}}
		]
	}`
)

// NewAvroCodec creates a new Avro codec with static schemas
func NewAvroCodec(prototype any) *AvroCodec {
	schemas := make(map[string]avro.Schema)

	producerAvroSchema, _ := avro.Parse(producerSchema)
	greenhouseAvroSchema, _ := avro.Parse(greenhouseSchema)
	harvestAvroSchema, _ := avro.Parse(harvestSchema)
	checklistRecordAvroSchema, _ := avro.Parse(checklistRecordSchema)

	schemas["Producer"] = producerAvroSchema
	schemas["Greenhouse"] = greenhouseAvroSchema
	schemas["Harvest"] = harvestAvroSchema
	schemas["ChecklistRecord"] = checklistRecordAvroSchema

	return &AvroCodec{
		prototype: prototype,
		schemas:   schemas,
	}
}

// schemaNameFor maps a message type name to its registered schema name
func schemaNameFor(typeName string) (string, error) {
	switch typeName {
	case "Producer", "AvroProducer":
		return "Producer", nil
	case "Greenhouse", "AvroGreenhouse":
		return "Greenhouse", nil
	case "Harvest", "AvroHarvest":
		return "Harvest", nil
	case "ChecklistRecord", "AvroChecklistRecord":
		return "ChecklistRecord", nil
	default:
		return "", fmt.Errorf("no Avro schema found for message type: %s", typeName)
	}
}

// getSchemaForMessage returns the appropriate Avro schema for the given message
func (c *AvroCodec) getSchemaForMessage(message any) (avro.Schema, error) {
	messageType := reflect.TypeOf(message)
	if messageType.Kind() == reflect.Ptr {
		messageType = messageType.Elem()
	}

	schemaName, err := schemaNameFor(messageType.Name())
	if err != nil {
		return nil, err
	}

	schema, exists := c.schemas[schemaName]
	if !exists {
		return nil, fmt.Errorf("no Avro schema found for message type: %s", schemaName)
	}

	return schema, nil
}

// Encode encodes a value into Avro format
func (c *AvroCodec) Encode(value any) ([]byte, error) {
	schema, err := c.getSchemaForMessage(value)
	if err != nil {
		return nil, fmt.Errorf("getting schema: %w", err)
	}

	data, err := avro.Marshal(schema, value)
	if err != nil {
		return nil, fmt.Errorf("marshaling to Avro: %w", err)
	}

	return data, nil
}

// Decode decodes an Avro message back to the prototype's type
func (c *AvroCodec) Decode(data []byte) (any, error) {
	prototypeType := reflect.TypeOf(c.prototype)
	if prototypeType.Kind() == reflect.Ptr {
		prototypeType = prototypeType.Elem()
	}

	schemaName, err := schemaNameFor(prototypeType.Name())
	if err != nil {
		return nil, err
	}

	schema, exists := c.schemas[schemaName]
	if !exists {
		return nil, fmt.Errorf("no Avro schema found for prototype type: %s", schemaName)
	}

	instance := reflect.New(prototypeType).Interface()

	err = avro.Unmarshal(schema, data, instance)
	if err != nil {
		return nil, fmt.Errorf("unmarshaling from Avro: %w", err)
	}

	return instance, nil
}
