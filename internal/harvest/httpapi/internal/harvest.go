package internal

import (
	"time"

	harvestDomain "greenhouse-server/internal/harvest/domain"
)

type HarvestResponse struct {
	ID           string    `json:"id"`
	Version      int       `json:"version"`
	GreenhouseID string    `json:"greenhouse_id"`
	ProducerID   string    `json:"producer_id"`
	Crop         string    `json:"crop"`
	QuantityKg   float64   `json:"quantity_kg"`
	UnitPrice    float64   `json:"unit_price"`
	TotalValue   float64   `json:"total_value"`
	HarvestedAt  time.Time `json:"harvested_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type HarvestCreateRequest struct {
	GreenhouseID string     `json:"greenhouse_id"`
	Crop         string     `json:"crop"`
	QuantityKg   float64    `json:"quantity_kg"`
	UnitPrice    float64    `json:"unit_price"`
	HarvestedAt  *time.Time `json:"harvested_at"`
}

type HarvestUpdateRequest struct {
	Crop        *string    `json:"crop"`
	QuantityKg  *float64   `json:"quantity_kg"`
	UnitPrice   *float64   `json:"unit_price"`
	HarvestedAt *time.Time `json:"harvested_at"`
}

func ToHarvestResponse(harvest harvestDomain.Harvest) HarvestResponse {
	return HarvestResponse{
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
