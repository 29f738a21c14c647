package jobs_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/estate/internal/jobs"
)

type stubMarker struct {
	mu    sync.Mutex
	calls []time.Time
	n     int64
	err   error
}

func (s *stubMarker) MarkOverdue(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, now)

	return s.n, s.err
}

type stubCounter struct {
	total int64
}

func (s *stubCounter) MarkedOverdue(n int64) { s.total += n }

func TestOverdueJob_Run(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		marker    *stubMarker
		wantTotal int64
	}{
		{name: "CountsMarked", marker: &stubMarker{n: 4}, wantTotal: 4},
		{name: "NothingDue", marker: &stubMarker{}, wantTotal: 0},
		{name: "ErrorNotCounted", marker: &stubMarker{n: 9, err: errors.New("db down")}, wantTotal: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := &stubCounter{}

			jobs.NewOverdueJob(tt.marker, counter, time.Second).
				WithClock(func() time.Time { return now }).
				Run()

			require.Len(t, tt.marker.calls, 1)
			assert.Equal(t, now, tt.marker.calls[0])
			assert.Equal(t, tt.wantTotal, counter.total)
		})
	}
}

func TestScheduler_RejectsBadSpec(t *testing.T) {
	s := jobs.NewScheduler()

	assert.Error(t, s.Add("every tuesday", jobs.NewOverdueJob(&stubMarker{}, &stubCounter{}, time.Second)))
	assert.NoError(t, s.Add("@hourly", jobs.NewOverdueJob(&stubMarker{}, &stubCounter{}, time.Second)))

	s.Start()
	s.Stop(context.Background())
}
