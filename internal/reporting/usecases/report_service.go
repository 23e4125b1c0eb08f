package usecases

//go:generate mockgen -source=report_service.go -destination=../../../test/unit/doubles/reporting/usecases/report_service_mock.go -package=usecases -mock_names=ReportService=MockReportService

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	harvestDomain "greenhouse-server/internal/harvest/domain"
	harvestusecases "greenhouse-server/internal/harvest/usecases"
	"greenhouse-server/internal/infra/cache"
	"greenhouse-server/internal/reporting/domain"

	"github.com/vmihailenco/msgpack/v5"
)

const (
	_snapshotKeyPrefix = "reports:summary"
	_snapshotTTL       = 15 * time.Minute

	// Reports read whole windows, not pages.
	_maxReportRecords = 10000
)

type ReportService interface {
	GetSummary(ctx context.Context, filters domain.Filters) (domain.Summary, error)
}

func NewReportService(
	harvestRepository harvestusecases.HarvestRepository,
	summaryCache cache.Cache,
	options domain.Options,
) *SimpleReportService {
	return &SimpleReportService{
		harvestRepository: harvestRepository,
		cache:             summaryCache,
		options:           options,
	}
}

var _ ReportService = (*SimpleReportService)(nil)

type SimpleReportService struct {
	harvestRepository harvestusecases.HarvestRepository
	cache             cache.Cache
	options           domain.Options
}

func (s *SimpleReportService) GetSummary(ctx context.Context, filters domain.Filters) (domain.Summary, error) {
	key := snapshotKey(filters)
	if cached, found := s.cache.Get(ctx, key); found {
		if summary, err := decodeSnapshot(cached); err == nil {
			return summary, nil
		}
		s.cache.Delete(ctx, key)
	}

	summary, err := s.computeSummary(ctx, filters)
	if err != nil {
		return domain.Summary{}, err
	}

	if encoded, err := msgpack.Marshal(summary); err == nil {
		s.cache.Set(ctx, key, encoded, _snapshotTTL)
	} else {
		slog.Warn("encoding report snapshot", slog.String("error", err.Error()))
	}

	return summary, nil
}

func (s *SimpleReportService) computeSummary(ctx context.Context, filters domain.Filters) (domain.Summary, error) {
	current, err := s.windowRecords(ctx, filters.Start, filters.End)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("loading current window: %w", err)
	}

	// Equal-length window immediately preceding the range.
	length := filters.End.Sub(filters.Start)
	previous, err := s.windowRecords(ctx, filters.Start.Add(-length), filters.Start.Add(-time.Nanosecond))
	if err != nil {
		return domain.Summary{}, fmt.Errorf("loading previous window: %w", err)
	}

	return domain.Aggregate(current, previous, filters, s.options)
}

func (s *SimpleReportService) windowRecords(ctx context.Context, start, end time.Time) ([]harvestDomain.Harvest, error) {
	harvests, _, err := s.harvestRepository.FindAll(ctx,
		harvestusecases.Filters{From: &start, To: &end},
		harvestusecases.Pagination{Limit: _maxReportRecords},
	)
	if err != nil {
		return nil, err
	}
	return harvests, nil
}

func decodeSnapshot(cached any) (domain.Summary, error) {
	encoded, ok := cached.([]byte)
	if !ok {
		return domain.Summary{}, errors.New("unexpected snapshot encoding")
	}

	var summary domain.Summary
	if err := msgpack.Unmarshal(encoded, &summary); err != nil {
		return domain.Summary{}, fmt.Errorf("decoding snapshot: %w", err)
	}
	return summary, nil
}

func snapshotKey(filters domain.Filters) string {
	ids := make([]string, len(filters.ProducerIDs))
	for i, id := range filters.ProducerIDs {
		ids[i] = id.String()
	}
	return fmt.Sprintf("%s:%d:%d:%s",
		_snapshotKeyPrefix,
		filters.Start.Unix(),
		filters.End.Unix(),
		strings.Join(ids, ","))
}
