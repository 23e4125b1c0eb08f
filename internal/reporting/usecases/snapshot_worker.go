package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"greenhouse-server/internal/infra/async"
	"greenhouse-server/internal/reporting/domain"

	"github.com/robfig/cron/v3"
)

const _snapshotWindowDays = 30

// SnapshotWorker warms the dashboard summary on a cron schedule so the
// first request after a boundary does not pay the aggregation cost.
type SnapshotWorker struct {
	ticker   *time.Ticker
	service  ReportService
	schedule cron.Schedule
	next     time.Time
}

func NewSnapshotWorker(ticker *time.Ticker, service ReportService, scheduleSpec string) (*SnapshotWorker, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	schedule, err := parser.Parse(scheduleSpec)
	if err != nil {
		return nil, fmt.Errorf("parsing snapshot schedule: %w", err)
	}

	return &SnapshotWorker{
		ticker:   ticker,
		service:  service,
		schedule: schedule,
		next:     schedule.Next(time.Now()),
	}, nil
}

var _ async.Worker = &SnapshotWorker{}

func (w *SnapshotWorker) Run(ctx context.Context, done func()) {
	slog.Info("report snapshot worker started", slog.Time("next_run", w.next))
	defer done()
	var wg sync.WaitGroup

	for {
		select {
		case <-ctx.Done():
			slog.Info("report snapshot worker cancelled")
			wg.Wait()
			return
		case now := <-w.ticker.C:
			if now.Before(w.next) {
				continue
			}
			w.next = w.schedule.Next(now)

			wg.Add(1)
			w.takeSnapshot(context.Background(), wg.Done)
		}
	}
}

func (w *SnapshotWorker) takeSnapshot(ctx context.Context, done func()) {
	defer done()

	end := time.Now().Truncate(24 * time.Hour)
	filters := domain.Filters{
		Start: end.AddDate(0, 0, -_snapshotWindowDays),
		End:   end,
	}

	summary, err := w.service.GetSummary(ctx, filters)
	if err != nil {
		if errors.Is(err, domain.ErrNoData) {
			slog.Info("no harvests in snapshot window", slog.Time("start", filters.Start), slog.Time("end", filters.End))
			return
		}
		slog.Error("taking report snapshot", slog.String("error", err.Error()))
		return
	}

	slog.Info("report snapshot taken",
		slog.Time("start", filters.Start),
		slog.Time("end", filters.End),
		slog.Int("harvests", summary.HarvestCount),
		slog.Float64("revenue", summary.TotalRevenue))
}

func (w *SnapshotWorker) Shutdown() {
	w.ticker.Stop()
}
