package domain

import (
	"time"

	"greenhouse-server/internal/infra/utils"
	shareddomain "greenhouse-server/internal/shared_kernel/domain"
)

// Producer is a farmer operating one or more greenhouses
type Producer struct {
	ID        shareddomain.ID
	Version   shareddomain.Version
	Name      string
	Email     string
	Phone     string
	FarmName  string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

func (p *Producer) IsDeleted() bool {
	return p.DeletedAt != nil
}

func (p *Producer) SoftDelete() {
	now := time.Now()
	p.DeletedAt = &now
	p.IsActive = false
	p.UpdatedAt = now
}

func (p *Producer) Activate() {
	p.IsActive = true
	p.UpdatedAt = time.Now()
}

func (p *Producer) Deactivate() {
	p.IsActive = false
	p.UpdatedAt = time.Now()
}

func (p *Producer) UpdateInfo(name, email, phone, farmName string) {
	if name != "" {
		p.Name = name
	}
	if email != "" {
		p.Email = email
	}
	if phone != "" {
		p.Phone = phone
	}
	if farmName != "" {
		p.FarmName = farmName
	}
	p.UpdatedAt = time.Now()
}

func NewProducerBuilder() *producerBuilder {
	return &producerBuilder{}
}

type producerBuilder struct {
	actions []producerHandler
}

type producerHandler func(p *Producer) error

func (b *producerBuilder) WithName(name string) *producerBuilder {
	b.actions = append(b.actions, func(p *Producer) error {
		p.Name = name
		return nil
	})
	return b
}

func (b *producerBuilder) WithEmail(email string) *producerBuilder {
	b.actions = append(b.actions, func(p *Producer) error {
		p.Email = email
		return nil
	})
	return b
}

func (b *producerBuilder) WithPhone(phone string) *producerBuilder {
	b.actions = append(b.actions, func(p *Producer) error {
		p.Phone = phone
		return nil
	})
	return b
}

func (b *producerBuilder) WithFarmName(farmName string) *producerBuilder {
	b.actions = append(b.actions, func(p *Producer) error {
		p.FarmName = farmName
		return nil
	})
	return b
}

func (b *producerBuilder) Build() (Producer, error) {
	now := time.Now()
	result := Producer{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		Version:   1,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, action := range b.actions {
		if err := action(&result); err != nil {
			return Producer{}, err
		}
	}

	return result, nil
}
