package internal

import (
	"time"

	producerDomain "greenhouse-server/internal/producer/domain"
)

type ProducerResponse struct {
	ID        string     `json:"id"`
	Version   int        `json:"version"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	FarmName  string     `json:"farm_name"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

type ProducerCreateRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	FarmName string `json:"farm_name"`
}

type ProducerUpdateRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	FarmName *string `json:"farm_name,omitempty"`
}

func ToProducerResponse(producer producerDomain.Producer) ProducerResponse {
	return ProducerResponse{
		ID:        producer.ID.String(),
		Version:   int(producer.Version),
		Name:      producer.Name,
		Email:     producer.Email,
		Phone:     producer.Phone,
		FarmName:  producer.FarmName,
		IsActive:  producer.IsActive,
		CreatedAt: producer.CreatedAt,
		UpdatedAt: producer.UpdatedAt,
		DeletedAt: producer.DeletedAt,
	}
}
