package accrual

import (
	"testing"
	"time"

	"pulse/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2026, 3, d, 12, 0, 0, 0, time.UTC)
}

func snap(item string, capturedAt time.Time, views int64) *entity.MetricSnapshot {
	return &entity.MetricSnapshot{
		ItemKey:    item,
		Handle:     "creator",
		Platform:   entity.PlatformTikTok,
		Counters:   entity.MetricTotals{Views: views},
		CapturedAt: capturedAt,
	}
}

func TestDeltaForItem_BaselineAndEndpoint(t *testing.T) {
	t.Parallel()

	// The day-1 reading precedes the measured window and serves as baseline;
	// the delta is 50, not the raw 150 endpoint.
	snaps := []*entity.MetricSnapshot{
		snap("post-1", day(1), 100),
		snap("post-1", day(2), 150),
	}

	result, ok := DeltaForItem(snaps, day(2).Add(-13*time.Hour), day(2))
	require.True(t, ok)
	assert.Equal(t, int64(50), result.Delta.Views)
	require.NotNil(t, result.BaselineAt)
	assert.Equal(t, day(1), *result.BaselineAt)
	assert.Equal(t, day(2), result.EndpointAt)
	assert.False(t, result.Clamped)
}

func TestDeltaForItem_NoBaselineAccruesFullEndpoint(t *testing.T) {
	t.Parallel()

	// New content appearing mid-window counts in full.
	snaps := []*entity.MetricSnapshot{
		snap("post-1", day(3), 40),
	}

	result, ok := DeltaForItem(snaps, day(1), day(5))
	require.True(t, ok)
	assert.Equal(t, int64(40), result.Delta.Views)
	assert.Nil(t, result.BaselineAt)
	assert.False(t, result.Clamped)
}

func TestDeltaForItem_NegativeDeltaClampedToZero(t *testing.T) {
	t.Parallel()

	snaps := []*entity.MetricSnapshot{
		snap("post-1", day(1), 200),
		snap("post-1", day(3), 180),
	}

	result, ok := DeltaForItem(snaps, day(2), day(4))
	require.True(t, ok)
	assert.Equal(t, int64(0), result.Delta.Views)
	assert.True(t, result.Clamped)
}

func TestDeltaForItem_NoEndpointExcludesItem(t *testing.T) {
	t.Parallel()

	// Only pre-range captures exist: nothing inside the window, item excluded.
	snaps := []*entity.MetricSnapshot{
		snap("post-1", day(1), 100),
	}

	_, ok := DeltaForItem(snaps, day(2), day(4))
	assert.False(t, ok)
}

func TestDeltaForItem_EmptyInput(t *testing.T) {
	t.Parallel()

	_, ok := DeltaForItem(nil, day(1), day(2))
	assert.False(t, ok)
}

func TestDeltaForItem_LatestCaptureOfDayWins(t *testing.T) {
	t.Parallel()

	// Two captures on the baseline day: the later one (views=120) is the
	// authoritative baseline, so intra-day jitter is not misread as growth.
	snaps := []*entity.MetricSnapshot{
		snap("post-1", day(1).Add(-4*time.Hour), 110),
		snap("post-1", day(1), 120),
		snap("post-1", day(2), 150),
	}

	result, ok := DeltaForItem(snaps, day(2).Add(-12*time.Hour), day(2))
	require.True(t, ok)
	assert.Equal(t, int64(30), result.Delta.Views)
	require.NotNil(t, result.BaselineAt)
	assert.Equal(t, day(1), *result.BaselineAt)
}

func TestDeltaForItem_UnorderedInput(t *testing.T) {
	t.Parallel()

	snaps := []*entity.MetricSnapshot{
		snap("post-1", day(4), 300),
		snap("post-1", day(1), 100),
		snap("post-1", day(2), 180),
	}

	result, ok := DeltaForItem(snaps, day(2).Add(-12*time.Hour), day(5))
	require.True(t, ok)
	assert.Equal(t, int64(200), result.Delta.Views)
	assert.Equal(t, day(4), result.EndpointAt)
}

func TestDeltaForItem_PerMetricClamping(t *testing.T) {
	t.Parallel()

	baseline := snap("post-1", day(1), 100)
	baseline.Counters.Likes = 50
	endpoint := snap("post-1", day(2), 150)
	endpoint.Counters.Likes = 40 // corrective decrease on likes only

	result, ok := DeltaForItem([]*entity.MetricSnapshot{baseline, endpoint}, day(2).Add(-12*time.Hour), day(2))
	require.True(t, ok)
	assert.Equal(t, int64(50), result.Delta.Views)
	assert.Equal(t, int64(0), result.Delta.Likes)
	assert.True(t, result.Clamped)
}

func TestConvert_SumsAcrossItemsAndReportsDiagnostics(t *testing.T) {
	t.Parallel()

	snaps := []*entity.MetricSnapshot{
		snap("post-a", day(1), 100),
		snap("post-a", day(3), 150),
		snap("post-b", day(1), 200),
		snap("post-b", day(3), 180), // corrective decrease
		snap("post-c", day(3), 40),  // new mid-window
		snap("post-d", day(1), 999), // no endpoint in range
	}

	result := Convert(entity.PlatformTikTok, snaps, day(2), day(4))

	assert.Equal(t, int64(90), result.Totals.Views) // 50 + 0 + 40
	require.Len(t, result.Breakdown, 3)
	assert.Equal(t, "post-a", result.Breakdown[0].ItemKey)
	assert.Equal(t, "post-b", result.Breakdown[1].ItemKey)
	assert.Equal(t, "post-c", result.Breakdown[2].ItemKey)

	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, entity.DiagnosticNegativeDelta, result.Diagnostics[0].Kind)
	assert.Equal(t, "post-b", result.Diagnostics[0].ItemKey)
}

func TestConvert_EmptySnapshotsYieldZeroResult(t *testing.T) {
	t.Parallel()

	result := Convert(entity.PlatformInstagram, nil, day(1), day(2))
	assert.True(t, result.Totals.IsZero())
	assert.Empty(t, result.Breakdown)
	assert.Empty(t, result.Diagnostics)
}

func TestWindowBounds(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 1, 15, 30, 0, 0, time.UTC)
	end := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	from, to := WindowBounds(start, end)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond), to)
}

func TestWindowBoundsDayRangeProperty(t *testing.T) {
	t.Parallel()

	// Readings 100 on day 1 and 150 on day 2 over the range [day 1, day 2]
	// accrue 50.
	from, to := WindowBounds(day(1), day(2))
	snaps := []*entity.MetricSnapshot{
		snap("post-1", day(1), 100),
		snap("post-1", day(2), 150),
	}

	result, ok := DeltaForItem(snaps, from, to)
	require.True(t, ok)
	assert.Equal(t, int64(50), result.Delta.Views)
}

func TestPartitionByItem(t *testing.T) {
	t.Parallel()

	snaps := []*entity.MetricSnapshot{
		snap("a", day(1), 1),
		snap("b", day(1), 2),
		snap("a", day(2), 3),
	}

	items := PartitionByItem(snaps)
	require.Len(t, items, 2)
	assert.Len(t, items["a"], 2)
	assert.Len(t, items["b"], 1)
}
