package internal

import (
	"greenhouse-server/internal/infra/utils"
	producerDomain "greenhouse-server/internal/producer/domain"
	shareddomain "greenhouse-server/internal/shared_kernel/domain"
)

type Greenhouse struct {
	ID         string      `json:"id" gorm:"primaryKey"`
	Version    int         `json:"version"`
	ProducerID string      `json:"producer_id" gorm:"index;not null"`
	Name       string      `json:"name"`
	Location   string      `json:"location"`
	AreaM2     float64     `json:"area_m2"`
	Crop       string      `json:"crop"`
	CreatedAt  utils.Time  `json:"created_at"`
	UpdatedAt  utils.Time  `json:"updated_at"`
	DeletedAt  *utils.Time `json:"deleted_at,omitempty" gorm:"index"`
}

func (Greenhouse) TableName() string {
	return "greenhouses"
}

func (g Greenhouse) ToDomain() producerDomain.Greenhouse {
	result := producerDomain.Greenhouse{
		ID:         shareddomain.ID(g.ID),
		Version:    shareddomain.Version(g.Version),
		ProducerID: shareddomain.ID(g.ProducerID),
		Name:       g.Name,
		Location:   g.Location,
		AreaM2:     g.AreaM2,
		Crop:       g.Crop,
		CreatedAt:  g.CreatedAt.Time,
		UpdatedAt:  g.UpdatedAt.Time,
	}

	if g.DeletedAt != nil {
		deletedAt := g.DeletedAt.Time
		result.DeletedAt = &deletedAt
	}

	return result
}

func FromGreenhouse(value producerDomain.Greenhouse) Greenhouse {
	result := Greenhouse{
		ID:         value.ID.String(),
		Version:    int(value.Version),
		ProducerID: value.ProducerID.String(),
		Name:       value.Name,
		Location:   value.Location,
		AreaM2:     value.AreaM2,
		Crop:       value.Crop,
		CreatedAt:  utils.Time{Time: value.CreatedAt},
		UpdatedAt:  utils.Time{Time: value.UpdatedAt},
	}

	if value.DeletedAt != nil {
		result.DeletedAt = &utils.Time{Time: *value.DeletedAt}
	}

	return result
}
