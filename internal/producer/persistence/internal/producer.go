package internal

import (
	"greenhouse-server/internal/infra/utils"
	producerDomain "greenhouse-server/internal/producer/domain"
	shareddomain "greenhouse-server/internal/shared_kernel/domain"
)

type Producer struct {
	ID        string      `json:"id" gorm:"primaryKey"`
	Version   int         `json:"version"`
	Name      string      `json:"name"`
	Email     string      `json:"email" gorm:"index"`
	Phone     string      `json:"phone"`
	FarmName  string      `json:"farm_name"`
	IsActive  bool        `json:"is_active"`
	CreatedAt utils.Time  `json:"created_at"`
	UpdatedAt utils.Time  `json:"updated_at"`
	DeletedAt *utils.Time `json:"deleted_at,omitempty" gorm:"index"`
}

func (Producer) TableName() string {
	return "producers"
}

func (p Producer) ToDomain() producerDomain.Producer {
	result := producerDomain.Producer{
		ID:        shareddomain.ID(p.ID),
		Version:   shareddomain.Version(p.Version),
		Name:      p.Name,
		Email:     p.Email,
		Phone:     p.Phone,
		FarmName:  p.FarmName,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt.Time,
		UpdatedAt: p.UpdatedAt.Time,
	}

	if p.DeletedAt != nil {
		deletedAt := p.DeletedAt.Time
		result.DeletedAt = &deletedAt
	}

	return result
}

func FromProducer(value producerDomain.Producer) Producer {
	result := Producer{
		ID:        value.ID.String(),
		Version:   int(value.Version),
		Name:      value.Name,
		Email:     value.Email,
		Phone:     value.Phone,
		FarmName:  value.FarmName,
		IsActive:  value.IsActive,
		CreatedAt: utils.Time{Time: value.CreatedAt},
		UpdatedAt: utils.Time{Time: value.UpdatedAt},
	}

	if value.DeletedAt != nil {
		result.DeletedAt = &utils.Time{Time: *value.DeletedAt}
	}

	return result
}
