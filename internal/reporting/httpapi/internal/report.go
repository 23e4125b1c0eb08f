package internal

import (
	"time"

	"greenhouse-server/internal/reporting/domain"
)

type SummaryResponse struct {
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	HarvestCount    int       `json:"harvest_count"`
	TotalQuantityKg float64   `json:"total_quantity_kg"`
	TotalRevenue    float64   `json:"total_revenue"`
	EstimatedCost   float64   `json:"estimated_cost"`
	Profit          float64   `json:"profit"`
	ProfitMarginPct float64   `json:"profit_margin_pct"`

	QuantityGrowthPct *float64 `json:"quantity_growth_pct,omitempty"`
	RevenueGrowthPct  *float64 `json:"revenue_growth_pct,omitempty"`

	Producers   []ProducerSummaryResponse   `json:"producers"`
	Greenhouses []GreenhouseSummaryResponse `json:"greenhouses"`
}

type ProducerSummaryResponse struct {
	ProducerID   string  `json:"producer_id"`
	HarvestCount int     `json:"harvest_count"`
	QuantityKg   float64 `json:"quantity_kg"`
	Revenue      float64 `json:"revenue"`
}

type GreenhouseSummaryResponse struct {
	GreenhouseID string  `json:"greenhouse_id"`
	Crop         string  `json:"crop"`
	HarvestCount int     `json:"harvest_count"`
	QuantityKg   float64 `json:"quantity_kg"`
	Revenue      float64 `json:"revenue"`
}

func ToSummaryResponse(summary domain.Summary) SummaryResponse {
	producers := make([]ProducerSummaryResponse, len(summary.Producers))
	for i, producer := range summary.Producers {
		producers[i] = ProducerSummaryResponse{
			ProducerID:   producer.ProducerID.String(),
			HarvestCount: producer.HarvestCount,
			QuantityKg:   producer.QuantityKg,
			Revenue:      producer.Revenue,
		}
	}

	greenhouses := make([]GreenhouseSummaryResponse, len(summary.Greenhouses))
	for i, greenhouse := range summary.Greenhouses {
		greenhouses[i] = GreenhouseSummaryResponse{
			GreenhouseID: greenhouse.GreenhouseID.String(),
			Crop:         greenhouse.Crop,
			HarvestCount: greenhouse.HarvestCount,
			QuantityKg:   greenhouse.QuantityKg,
			Revenue:      greenhouse.Revenue,
		}
	}

	return SummaryResponse{
		Start:             summary.Start,
		End:               summary.End,
		HarvestCount:      summary.HarvestCount,
		TotalQuantityKg:   summary.TotalQuantityKg,
		TotalRevenue:      summary.TotalRevenue,
		EstimatedCost:     summary.EstimatedCost,
		Profit:            summary.Profit,
		ProfitMarginPct:   summary.ProfitMarginPct,
		QuantityGrowthPct: summary.QuantityGrowthPct,
		RevenueGrowthPct:  summary.RevenueGrowthPct,
		Producers:         producers,
		Greenhouses:       greenhouses,
	}
}
