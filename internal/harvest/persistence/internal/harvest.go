package internal

import (
	harvestDomain "greenhouse-server/internal/harvest/domain"
	"greenhouse-server/internal/infra/utils"
	shareddomain "greenhouse-server/internal/shared_kernel/domain"
)

type Harvest struct {
	ID           string `gorm:"primaryKey"`
	Version      int
	GreenhouseID string `gorm:"index;not null"`
	ProducerID   string `gorm:"index;not null"`
	Crop         string
	QuantityKg   float64
	UnitPrice    float64
	TotalValue   float64
	HarvestedAt  utils.Time `gorm:"index"`
	CreatedAt    utils.Time
	UpdatedAt    utils.Time
}

func (Harvest) TableName() string {
	return "harvests"
}

func (h Harvest) ToDomain() harvestDomain.Harvest {
	return harvestDomain.Harvest{
		ID:           shareddomain.ID(h.ID),
		Version:      shareddomain.Version(h.Version),
		GreenhouseID: shareddomain.ID(h.GreenhouseID),
		ProducerID:   shareddomain.ID(h.ProducerID),
		Crop:         h.Crop,
		QuantityKg:   h.QuantityKg,
		UnitPrice:    h.UnitPrice,
		TotalValue:   h.TotalValue,
		HarvestedAt:  h.HarvestedAt.Time,
		CreatedAt:    h.CreatedAt.Time,
		UpdatedAt:    h.UpdatedAt.Time,
	}
}

func FromHarvest(h harvestDomain.Harvest) Harvest {
	return Harvest{
		ID:           h.ID.String(),
		Version:      int(h.Version),
		GreenhouseID: h.GreenhouseID.String(),
		ProducerID:   h.ProducerID.String(),
		Crop:         h.Crop,
		QuantityKg:   h.QuantityKg,
		UnitPrice:    h.UnitPrice,
		TotalValue:   h.TotalValue,
		HarvestedAt:  utils.Time{Time: h.HarvestedAt},
		CreatedAt:    utils.Time{Time: h.CreatedAt},
		UpdatedAt:    utils.Time{Time: h.UpdatedAt},
	}
}
