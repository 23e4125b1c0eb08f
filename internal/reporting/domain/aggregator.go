package domain

import (
	"errors"
	"fmt"
	"sort"
	"time"

	harvestDomain "greenhouse-server/internal/harvest/domain"
	shareddomain "greenhouse-server/internal/shared_kernel/domain"
)

// DefaultCostRatio is the estimated-cost heuristic: 70% of gross revenue.
// There is no real cost input behind it, so it stays overridable.
const DefaultCostRatio = 0.70

var (
	ErrNoData             = errors.New("no data")
	ErrNoDataInRange      = fmt.Errorf("%w in the selected date range", ErrNoData)
	ErrNoDataForProducers = fmt.Errorf("%w for the selected producers", ErrNoData)
)

type Options struct {
	CostRatio float64
}

type Filters struct {
	Start       time.Time
	End         time.Time
	ProducerIDs []shareddomain.ID
}

type Summary struct {
	Start           time.Time
	End             time.Time
	HarvestCount    int
	TotalQuantityKg float64
	TotalRevenue    float64
	EstimatedCost   float64
	Profit          float64
	ProfitMarginPct float64

	// Growth against the equal-length window immediately preceding the
	// range. Nil when the previous window has no matching records.
	QuantityGrowthPct *float64
	RevenueGrowthPct  *float64

	Producers   []ProducerSummary
	Greenhouses []GreenhouseSummary
}

type ProducerSummary struct {
	ProducerID   shareddomain.ID
	HarvestCount int
	QuantityKg   float64
	Revenue      float64
}

type GreenhouseSummary struct {
	GreenhouseID shareddomain.ID
	Crop         string
	HarvestCount int
	QuantityKg   float64
	Revenue      float64
}

// Aggregate reduces harvests into dashboard metrics. Both record sets must
// already be restricted to their date windows; the producer allowlist is
// applied here so an empty result can name the filter that emptied it.
func Aggregate(current, previous []harvestDomain.Harvest, filters Filters, opts Options) (Summary, error) {
	if len(current) == 0 {
		return Summary{}, ErrNoDataInRange
	}

	current = filterByProducer(current, filters.ProducerIDs)
	if len(current) == 0 {
		return Summary{}, ErrNoDataForProducers
	}
	previous = filterByProducer(previous, filters.ProducerIDs)

	ratio := opts.CostRatio
	if ratio <= 0 {
		ratio = DefaultCostRatio
	}

	summary := Summary{
		Start:        filters.Start,
		End:          filters.End,
		HarvestCount: len(current),
	}

	producers := make(map[shareddomain.ID]*ProducerSummary)
	greenhouses := make(map[shareddomain.ID]*GreenhouseSummary)
	for _, harvest := range current {
		summary.TotalQuantityKg += harvest.QuantityKg
		summary.TotalRevenue += harvest.TotalValue

		producer, ok := producers[harvest.ProducerID]
		if !ok {
			producer = &ProducerSummary{ProducerID: harvest.ProducerID}
			producers[harvest.ProducerID] = producer
		}
		producer.HarvestCount++
		producer.QuantityKg += harvest.QuantityKg
		producer.Revenue += harvest.TotalValue

		greenhouse, ok := greenhouses[harvest.GreenhouseID]
		if !ok {
			greenhouse = &GreenhouseSummary{GreenhouseID: harvest.GreenhouseID, Crop: harvest.Crop}
			greenhouses[harvest.GreenhouseID] = greenhouse
		}
		greenhouse.HarvestCount++
		greenhouse.QuantityKg += harvest.QuantityKg
		greenhouse.Revenue += harvest.TotalValue
	}

	summary.EstimatedCost = summary.TotalRevenue * ratio
	summary.Profit = summary.TotalRevenue - summary.EstimatedCost
	if summary.TotalRevenue > 0 {
		summary.ProfitMarginPct = summary.Profit / summary.TotalRevenue * 100
	}

	summary.Producers = sortedProducers(producers)
	summary.Greenhouses = sortedGreenhouses(greenhouses)

	var previousQuantity, previousRevenue float64
	for _, harvest := range previous {
		previousQuantity += harvest.QuantityKg
		previousRevenue += harvest.TotalValue
	}
	if len(previous) > 0 {
		summary.QuantityGrowthPct = growthPct(summary.TotalQuantityKg, previousQuantity)
		summary.RevenueGrowthPct = growthPct(summary.TotalRevenue, previousRevenue)
	}

	return summary, nil
}

func filterByProducer(harvests []harvestDomain.Harvest, allowlist []shareddomain.ID) []harvestDomain.Harvest {
	if len(allowlist) == 0 {
		return harvests
	}

	allowed := make(map[shareddomain.ID]bool, len(allowlist))
	for _, id := range allowlist {
		allowed[id] = true
	}

	result := make([]harvestDomain.Harvest, 0, len(harvests))
	for _, harvest := range harvests {
		if allowed[harvest.ProducerID] {
			result = append(result, harvest)
		}
	}
	return result
}

func growthPct(current, previous float64) *float64 {
	if previous == 0 {
		return nil
	}
	pct := (current - previous) / previous * 100
	return &pct
}

func sortedProducers(producers map[shareddomain.ID]*ProducerSummary) []ProducerSummary {
	result := make([]ProducerSummary, 0, len(producers))
	for _, producer := range producers {
		result = append(result, *producer)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Revenue != result[j].Revenue {
			return result[i].Revenue > result[j].Revenue
		}
		return result[i].ProducerID < result[j].ProducerID
	})
	return result
}

func sortedGreenhouses(greenhouses map[shareddomain.ID]*GreenhouseSummary) []GreenhouseSummary {
	result := make([]GreenhouseSummary, 0, len(greenhouses))
	for _, greenhouse := range greenhouses {
		result = append(result, *greenhouse)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Revenue != result[j].Revenue {
			return result[i].Revenue > result[j].Revenue
		}
		return result[i].GreenhouseID < result[j].GreenhouseID
	})
	return result
}
