package internal

import (
	"time"

	producerDomain "greenhouse-server/internal/producer/domain"
)

type GreenhouseResponse struct {
	ID         string     `json:"id"`
	Version    int        `json:"version"`
	ProducerID string     `json:"producer_id"`
	Name       string     `json:"name"`
	Location   string     `json:"location"`
	AreaM2     float64    `json:"area_m2"`
	Crop       string     `json:"crop"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
}

type GreenhouseCreateRequest struct {
	ProducerID string  `json:"producer_id"`
	Name       string  `json:"name"`
	Location   string  `json:"location"`
	AreaM2     float64 `json:"area_m2"`
	Crop       string  `json:"crop"`
}

type GreenhouseUpdateRequest struct {
	Name     *string  `json:"name,omitempty"`
	Location *string  `json:"location,omitempty"`
	AreaM2   *float64 `json:"area_m2,omitempty"`
	Crop     *string  `json:"crop,omitempty"`
}

func ToGreenhouseResponse(greenhouse producerDomain.Greenhouse) GreenhouseResponse {
	return GreenhouseResponse{
		ID:         greenhouse.ID.String(),
		Version:    int(greenhouse.Version),
		ProducerID: greenhouse.ProducerID.String(),
		Name:       greenhouse.Name,
		Location:   greenhouse.Location,
		AreaM2:     greenhouse.AreaM2,
		Crop:       greenhouse.Crop,
		CreatedAt:  greenhouse.CreatedAt,
		UpdatedAt:  greenhouse.UpdatedAt,
		DeletedAt:  greenhouse.DeletedAt,
	}
}
