package jobs

import (
	"context"
	"log/slog"
	"time"
)

// OverdueMarker flags pending invoices past their due date.
type OverdueMarker interface {
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)
}

// OverdueCounter receives the number of invoices each run changed.
type OverdueCounter interface {
	MarkedOverdue(n int64)
}

// OverdueJob is a cron.Job moving PENDING invoices past due to OVERDUE.
type OverdueJob struct {
	marker  OverdueMarker
	counter OverdueCounter
	timeout time.Duration
	now     func() time.Time
}

func NewOverdueJob(marker OverdueMarker, counter OverdueCounter, timeout time.Duration) *OverdueJob {
	return &OverdueJob{marker: marker, counter: counter, timeout: timeout, now: time.Now}
}

// WithClock replaces the job's time source.
func (j *OverdueJob) WithClock(now func() time.Time) *OverdueJob {
	j.now = now
	return j
}

func (j *OverdueJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	n, err := j.marker.MarkOverdue(ctx, j.now())
	if err != nil {
		slog.Error("failed to mark overdue invoices", "error", err)
		return
	}

	j.counter.MarkedOverdue(n)

	if n > 0 {
		slog.Info("marked invoices overdue", "count", n)
	}
}
