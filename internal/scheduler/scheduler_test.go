package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePurger struct {
	days int
}

func (f *fakePurger) PurgeOlderThan(_ context.Context, days int) (int64, error) {
	f.days = days
	return 0, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStartRejectsBadSpec(t *testing.T) {
	s := New(&fakePurger{}, 30, testLogger())

	err := s.Start(context.Background(), "not a cron expression")
	require.Error(t, err)
}

func TestStartStop(t *testing.T) {
	s := New(&fakePurger{}, 30, testLogger())

	require.NoError(t, s.Start(context.Background(), "0 3 * * *"))
	s.Stop()
}

func TestPurgeJobUsesConfiguredWindow(t *testing.T) {
	purger := &fakePurger{}
	s := New(purger, 45, testLogger())

	require.NoError(t, s.Start(context.Background(), "0 3 * * *"))
	defer s.Stop()

	// Run the registered job directly rather than waiting for the schedule.
	entries := s.cron.Entries()
	require.Len(t, entries, 1)
	entries[0].Job.Run()

	assert.Equal(t, 45, purger.days)
}
