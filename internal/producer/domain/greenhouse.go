package domain

import (
	"time"

	"greenhouse-server/internal/infra/utils"
	shareddomain "greenhouse-server/internal/shared_kernel/domain"
)

// Greenhouse is one production area belonging to a producer
type Greenhouse struct {
	ID         shareddomain.ID
	Version    shareddomain.Version
	ProducerID shareddomain.ID
	Name       string
	Location   string
	AreaM2     float64
	Crop       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

func (g *Greenhouse) IsDeleted() bool {
	return g.DeletedAt != nil
}

func (g *Greenhouse) SoftDelete() {
	now := time.Now()
	g.DeletedAt = &now
	g.UpdatedAt = now
}

func (g *Greenhouse) UpdateInfo(name, location, crop string, areaM2 *float64) {
	if name != "" {
		g.Name = name
	}
	if location != "" {
		g.Location = location
	}
	if crop != "" {
		g.Crop = crop
	}
	if areaM2 != nil {
		g.AreaM2 = *areaM2
	}
	g.UpdatedAt = time.Now()
}

func NewGreenhouseBuilder() *greenhouseBuilder {
	return &greenhouseBuilder{}
}

type greenhouseBuilder struct {
	actions []greenhouseHandler
}

type greenhouseHandler func(g *Greenhouse) error

func (b *greenhouseBuilder) WithProducerID(producerID shareddomain.ID) *greenhouseBuilder {
	b.actions = append(b.actions, func(g *Greenhouse) error {
		g.ProducerID = producerID
		return nil
	})
	return b
}

func (b *greenhouseBuilder) WithName(name string) *greenhouseBuilder {
	b.actions = append(b.actions, func(g *Greenhouse) error {
		g.Name = name
		return nil
	})
	return b
}

func (b *greenhouseBuilder) WithLocation(location string) *greenhouseBuilder {
	b.actions = append(b.actions, func(g *Greenhouse) error {
		g.Location = location
		return nil
	})
	return b
}

func (b *greenhouseBuilder) WithAreaM2(areaM2 float64) *greenhouseBuilder {
	b.actions = append(b.actions, func(g *Greenhouse) error {
		g.AreaM2 = areaM2
		return nil
	})
	return b
}

func (b *greenhouseBuilder) WithCrop(crop string) *greenhouseBuilder {
	b.actions = append(b.actions, func(g *Greenhouse) error {
		g.Crop = crop
		return nil
	})
	return b
}

func (b *greenhouseBuilder) Build() (Greenhouse, error) {
	now := time.Now()
	result := Greenhouse{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, action := range b.actions {
		if err := action(&result); err != nil {
			return Greenhouse{}, err
		}
	}

	return result, nil
}
