// Package report runs the nightly activity summary job.
package report

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/quicksell-labs/martbot/internal/bus"
	"github.com/quicksell-labs/martbot/internal/gate"
	"github.com/quicksell-labs/martbot/internal/store"
	"go.uber.org/zap"
)

// Summary is the payload published on the bus after each nightly run.
type Summary struct {
	Date      string // YYYY-MM-DD of the summarized day
	Inbound   int64
	Outbound  int64
	Throttled int64
}

// Reporter summarizes the previous day's message traffic shortly after
// midnight in the configured zone.
type Reporter struct {
	db     *store.DB
	bus    *bus.Bus
	loc    *time.Location
	logger *zap.Logger

	scheduler gocron.Scheduler
}

func New(db *store.DB, b *bus.Bus, loc *time.Location, logger *zap.Logger) *Reporter {
	return &Reporter{db: db, bus: b, loc: loc, logger: logger}
}

// Start schedules the job at 00:05 local time. The five-minute offset
// keeps the run clear of date-rollover writes happening at midnight.
func (r *Reporter) Start() error {
	s, err := gocron.NewScheduler(gocron.WithLocation(r.loc))
	if err != nil {
		return fmt.Errorf("report scheduler: %w", err)
	}
	_, err = s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(0, 5, 0))),
		gocron.NewTask(func() {
			if err := r.Run(time.Now().In(r.loc)); err != nil {
				r.logger.Error("daily report failed", zap.Error(err))
			}
		}),
	)
	if err != nil {
		return fmt.Errorf("report job: %w", err)
	}
	r.scheduler = s
	s.Start()
	return nil
}

// Stop shuts the scheduler down.
func (r *Reporter) Stop() {
	if r.scheduler != nil {
		_ = r.scheduler.Shutdown()
	}
}

// Run summarizes the day before the given instant, logs it, and
// publishes it as a report.daily event.
func (r *Reporter) Run(now time.Time) error {
	end := gate.Midnight(now, r.loc)
	start := end.AddDate(0, 0, -1)

	totals, err := r.db.TotalsBetween(start, end)
	if err != nil {
		return fmt.Errorf("report totals: %w", err)
	}

	sum := Summary{
		Date:      gate.DateKey(start, r.loc),
		Inbound:   totals.Inbound,
		Outbound:  totals.Outbound,
		Throttled: totals.Throttled,
	}
	r.logger.Info("daily report",
		zap.String("date", sum.Date),
		zap.Int64("inbound", sum.Inbound),
		zap.Int64("outbound", sum.Outbound),
		zap.Int64("throttled", sum.Throttled))

	r.bus.Publish(bus.Event{
		Kind:      "report.daily",
		Timestamp: now,
		Payload:   sum,
	})
	return nil
}
