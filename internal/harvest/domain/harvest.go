package domain

import (
	"time"

	"greenhouse-server/internal/infra/utils"
	shareddomain "greenhouse-server/internal/shared_kernel/domain"
)

// Harvest is one logged picking event for a greenhouse. TotalValue is always
// derived from quantity and unit price, never accepted from callers.
type Harvest struct {
	ID           shareddomain.ID
	Version      shareddomain.Version
	GreenhouseID shareddomain.ID
	ProducerID   shareddomain.ID
	Crop         string
	QuantityKg   float64
	UnitPrice    float64
	TotalValue   float64
	HarvestedAt  time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (h *Harvest) UpdateInfo(crop string, quantityKg, unitPrice *float64, harvestedAt *time.Time) {
	if crop != "" {
		h.Crop = crop
	}
	if quantityKg != nil {
		h.QuantityKg = *quantityKg
	}
	if unitPrice != nil {
		h.UnitPrice = *unitPrice
	}
	if harvestedAt != nil {
		h.HarvestedAt = *harvestedAt
	}
	h.TotalValue = h.QuantityKg * h.UnitPrice
	h.UpdatedAt = time.Now()
}

func NewHarvestBuilder() *harvestBuilder {
	return &harvestBuilder{}
}

type harvestBuilder struct {
	actions []harvestHandler
}

type harvestHandler func(h *Harvest) error

func (b *harvestBuilder) WithGreenhouseID(greenhouseID shareddomain.ID) *harvestBuilder {
	b.actions = append(b.actions, func(h *Harvest) error {
		h.GreenhouseID = greenhouseID
		return nil
	})
	return b
}

func (b *harvestBuilder) WithProducerID(producerID shareddomain.ID) *harvestBuilder {
	b.actions = append(b.actions, func(h *Harvest) error {
		h.ProducerID = producerID
		return nil
	})
	return b
}

func (b *harvestBuilder) WithCrop(crop string) *harvestBuilder {
	b.actions = append(b.actions, func(h *Harvest) error {
		h.Crop = crop
		return nil
	})
	return b
}

func (b *harvestBuilder) WithQuantityKg(quantityKg float64) *harvestBuilder {
	b.actions = append(b.actions, func(h *Harvest) error {
		h.QuantityKg = quantityKg
		return nil
	})
	return b
}

func (b *harvestBuilder) WithUnitPrice(unitPrice float64) *harvestBuilder {
	b.actions = append(b.actions, func(h *Harvest) error {
		h.UnitPrice = unitPrice
		return nil
	})
	return b
}

func (b *harvestBuilder) WithHarvestedAt(harvestedAt time.Time) *harvestBuilder {
	b.actions = append(b.actions, func(h *Harvest) error {
		h.HarvestedAt = harvestedAt
		return nil
	})
	return b
}

func (b *harvestBuilder) Build() (Harvest, error) {
	now := time.Now()
	result := Harvest{
		ID:          shareddomain.ID(utils.GenerateUUID()),
		Version:     1,
		HarvestedAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	for _, action := range b.actions {
		if err := action(&result); err != nil {
			return Harvest{}, err
		}
	}

	result.TotalValue = result.QuantityKg * result.UnitPrice

	return result, nil
}
