package avro

import (
	"time"
)

// Avro-compatible message structs that match the Avro schemas

// AvroProducer represents the Avro-compatible Producer message
type AvroProducer struct {
	ID        string     `avro:"id"`
	Version   int        `avro:"version"`
	Name      string     `avro:"name"`
	Email     string     `avro:"email"`
	Phone     string     `avro:"phone"`
	FarmName  string     `avro:"farm_name"`
	IsActive  bool       `avro:"is_active"`
	CreatedAt time.Time  `avro:"created_at"`
	UpdatedAt time.Time  `avro:"updated_at"`
	DeletedAt *time.Time `avro:"deleted_at"`
}

// AvroGreenhouse represents the Avro-compatible Greenhouse message
type AvroGreenhouse struct {
	ID         string     `avro:"id"`
	Version    int        `avro:"version"`
	ProducerID string     `avro:"producer_id"`
	Name       string     `avro:"name"`
	Location   string     `avro:"location"`
	AreaM2     float64    `avro:"area_m2"`
	Crop       string     `avro:"crop"`
	CreatedAt  time.Time  `avro:"created_at"`
	UpdatedAt  time.Time  `avro:"updated_at"`
	DeletedAt  *time.Time `avro:"deleted_at"`
}

// AvroHarvest represents the Avro-compatible Harvest message
type AvroHarvest struct {
	ID           string    `avro:"id"`
	Version      int       `avro:"version"`
	GreenhouseID string    `avro:"greenhouse_id"`
	ProducerID   string    `avro:"producer_id"`
	Crop         string    `avro:"crop"`
	QuantityKg   float64   `avro:"quantity_kg"`
	UnitPrice    float64   `avro:"unit_price"`
	TotalValue   float64   `avro:"total_value"`
	HarvestedAt  time.Time `avro:"harvested_at"`
	CreatedAt    time.Time `avro:"created_at"`
	UpdatedAt    time.Time `avro:"updated_at"`
}

// AvroChecklistRecord represents the Avro-compatible ChecklistRecord message.
// Item data is carried as a serialized JSON document because the field set
// is schema-driven and heterogeneous.
type AvroChecklistRecord struct {
	ID             string    `avro:"id"`
	Version        int       `avro:"version"`
	GreenhouseID   string    `avro:"greenhouse_id"`
	TemplateID     string    `avro:"template_id"`
	Data           string    `avro:"data"`
	ItemCount      int       `avro:"item_count"`
	CompletedCount int       `avro:"completed_count"`
	CreatedAt      time.Time `avro:"created_at"`
	UpdatedAt      time.Time `avro:"updated_at"`
}
