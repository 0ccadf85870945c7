package crophealth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	name  string
	grid  Grid
	raws  []RawObservation
	err   error
	calls int
}

func (f *fakeSource) Name() string {
	return f.name
}

func (f *fakeSource) Query(ctx context.Context, area Area, window TimeRange) (Grid, []RawObservation, error) {
	f.calls++
	if f.err != nil {
		return Grid{}, nil, f.err
	}
	return f.grid, f.raws, nil
}

func testArea() Area {
	return Area{
		Farm:    "riverbend",
		Paddock: "north",
		Polygon: orb.Polygon{{{150.0, -30.0}, {150.001, -30.0}, {150.001, -30.001}, {150.0, -30.001}, {150.0, -30.0}}},
	}
}

func testWindow(t *testing.T) TimeRange {
	t.Helper()
	window, err := NewTimeRange(
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return window
}

// maskedRaw clouds over the first maskedPixels pixels of a healthy
// acquisition.
func maskedRaw(date time.Time, source string, grid Grid, maskedPixels int) RawObservation {
	raw := healthyRaw(date, source, grid)
	for i := 0; i < maskedPixels; i++ {
		raw.SCL[i] = 9
	}
	return raw
}

func day(month time.Month, day int) time.Time {
	return time.Date(2024, month, day, 0, 0, 0, 0, time.UTC)
}

func TestLoadKeepsOnlyCoveredObservations(t *testing.T) {
	grid := testGrid(4, 4)
	source := &fakeSource{name: "s2a", grid: grid, raws: []RawObservation{
		maskedRaw(day(time.March, 1), "s2a", grid, 0),  // coverage 1.0
		maskedRaw(day(time.March, 6), "s2a", grid, 8),  // coverage 0.5, not above the threshold
		maskedRaw(day(time.March, 11), "s2a", grid, 12), // coverage 0.25
	}}

	dataset, err := Load(context.Background(), testArea(), testWindow(t), source)
	require.NoError(t, err)

	require.Equal(t, 1, dataset.Len())
	assert.Equal(t, day(time.March, 1), dataset.Observations[0].Time)
	assert.Equal(t, 1.0, dataset.Observations[0].Coverage)
}

func TestLoadMergesSourcesByTime(t *testing.T) {
	grid := testGrid(4, 4)
	s2a := &fakeSource{name: "s2a", grid: grid, raws: []RawObservation{
		maskedRaw(day(time.March, 11), "s2a", grid, 0),
		maskedRaw(day(time.March, 1), "s2a", grid, 0),
	}}
	s2b := &fakeSource{name: "s2b", grid: grid, raws: []RawObservation{
		maskedRaw(day(time.March, 6), "s2b", grid, 0),
		maskedRaw(day(time.March, 11), "s2b", grid, 0),
	}}

	dataset, err := Load(context.Background(), testArea(), testWindow(t), s2a, s2b)
	require.NoError(t, err)
	require.Equal(t, 4, dataset.Len())

	var got [][2]string
	for _, obs := range dataset.Observations {
		got = append(got, [2]string{obs.Time.Format("2006-01-02"), obs.Source})
	}
	assert.Equal(t, [][2]string{
		{"2024-03-01", "s2a"},
		{"2024-03-06", "s2b"},
		{"2024-03-11", "s2a"}, // same instant from both platforms, ordered by source
		{"2024-03-11", "s2b"},
	}, got)
}

func TestLoadDropsSameSourceDuplicateTimestamps(t *testing.T) {
	grid := testGrid(4, 4)
	source := &fakeSource{name: "s2a", grid: grid, raws: []RawObservation{
		maskedRaw(day(time.March, 1), "s2a", grid, 0),
		maskedRaw(day(time.March, 1), "s2a", grid, 0),
	}}

	dataset, err := Load(context.Background(), testArea(), testWindow(t), source)
	require.NoError(t, err)
	assert.Equal(t, 1, dataset.Len())
}

func TestLoadQueriesEachSourceOnce(t *testing.T) {
	grid := testGrid(4, 4)
	s2a := &fakeSource{name: "s2a", grid: grid, raws: []RawObservation{maskedRaw(day(time.March, 1), "s2a", grid, 0)}}
	s2b := &fakeSource{name: "s2b", grid: grid, raws: []RawObservation{maskedRaw(day(time.March, 6), "s2b", grid, 0)}}

	_, err := Load(context.Background(), testArea(), testWindow(t), s2a, s2b)
	require.NoError(t, err)
	assert.Equal(t, 1, s2a.calls)
	assert.Equal(t, 1, s2b.calls)
}

func TestLoadBackendErrorAbortsLoad(t *testing.T) {
	grid := testGrid(4, 4)
	cause := errors.New("connection refused")
	s2a := &fakeSource{name: "s2a", grid: grid, raws: []RawObservation{maskedRaw(day(time.March, 1), "s2a", grid, 0)}}
	s2b := &fakeSource{name: "s2b", err: cause}

	dataset, err := Load(context.Background(), testArea(), testWindow(t), s2a, s2b)
	require.Error(t, err)
	assert.Nil(t, dataset)

	var backendErr *BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, "s2b", backendErr.Source)
	assert.ErrorIs(t, err, cause)

	// One attempt per source, the failure is not retried.
	assert.Equal(t, 1, s2b.calls)
}

func TestLoadGridMismatchBetweenSources(t *testing.T) {
	s2a := &fakeSource{name: "s2a", grid: testGrid(4, 4), raws: []RawObservation{maskedRaw(day(time.March, 1), "s2a", testGrid(4, 4), 0)}}
	s2b := &fakeSource{name: "s2b", grid: testGrid(5, 4), raws: []RawObservation{maskedRaw(day(time.March, 6), "s2b", testGrid(5, 4), 0)}}

	_, err := Load(context.Background(), testArea(), testWindow(t), s2a, s2b)
	require.Error(t, err)

	var backendErr *BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, "s2b", backendErr.Source)
	assert.Contains(t, err.Error(), "does not match")
}

func TestLoadNoUsableObservations(t *testing.T) {
	grid := testGrid(4, 4)
	tests := []struct {
		name string
		raws []RawObservation
	}{
		{"archive returned nothing", nil},
		{"everything clouded over", []RawObservation{
			maskedRaw(day(time.March, 1), "s2a", grid, 16),
			maskedRaw(day(time.March, 6), "s2a", grid, 16),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := &fakeSource{name: "s2a", grid: grid, raws: tt.raws}

			dataset, err := Load(context.Background(), testArea(), testWindow(t), source)
			assert.Nil(t, dataset)

			var unavailable *DataUnavailableError
			require.ErrorAs(t, err, &unavailable)
			assert.Equal(t, "riverbend", unavailable.Farm)
			assert.Equal(t, "north", unavailable.Paddock)
			assert.Equal(t, testWindow(t).Start, unavailable.Start)
			assert.Equal(t, testWindow(t).End, unavailable.End)
		})
	}
}

func TestLoadWithoutSources(t *testing.T) {
	_, err := Load(context.Background(), testArea(), testWindow(t))

	var backendErr *BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Contains(t, err.Error(), "no sources configured")
}

func TestLoadCancelledContext(t *testing.T) {
	grid := testGrid(4, 4)
	source := &fakeSource{name: "s2a", grid: grid, raws: []RawObservation{maskedRaw(day(time.March, 1), "s2a", grid, 0)}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, testArea(), testWindow(t), source)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	var backendErr *BackendError
	assert.ErrorAs(t, err, &backendErr)
}

func TestNewTimeRange(t *testing.T) {
	start := day(time.March, 1)
	end := day(time.March, 31)

	window, err := NewTimeRange(start, end)
	require.NoError(t, err)
	assert.Equal(t, 31, window.Days())

	_, err = NewTimeRange(end, start)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "precedes")

	sameDay, err := NewTimeRange(start, start)
	require.NoError(t, err)
	assert.Equal(t, 1, sameDay.Days())
}
