// Package accrual converts cumulative counter captures into incremental
// deltas for a date range. It is pure computation over ordered snapshot
// lists, independent of any store, so the numeric edge cases (baseline
// absence, negative clamping, same-day tie-break) live in one tested place.
package accrual

import (
	"sort"
	"time"

	"pulse/internal/domain/entity"
)

// WindowBounds maps a calendar date range onto boundary instants. The start
// date is the baseline day: captures up to its end are baseline candidates,
// growth is measured from there through the end of the end date. For the
// range [day-1, day-2] with readings 100 and 150 this yields a delta of 50,
// not the raw 150 endpoint.
func WindowBounds(start, end time.Time) (from, to time.Time) {
	from = startOfDay(start.UTC()).AddDate(0, 0, 1)
	to = startOfDay(end.UTC()).AddDate(0, 0, 1).Add(-time.Nanosecond)

	return from, to
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ItemResult is the outcome of converting one item's captures into a delta.
type ItemResult struct {
	Delta      entity.MetricTotals
	BaselineAt *time.Time // nil when no capture predates the range start.
	EndpointAt time.Time
	Clamped    bool // at least one counter decreased between baseline and endpoint.
}

// DeltaForItem computes the incremental totals for a single tracked item.
// snapshots may arrive in any order; they are sorted by capture time
// ascending before selection. Selection rules:
//
//   - baseline: the latest capture strictly before from. When absent, all
//     pre-existing counters are treated as zero, so a new item appearing
//     mid-window accrues its endpoint value in full.
//   - endpoint: the latest capture at-or-before to that is not before from.
//     When absent the item contributes nothing and ok is false.
//   - delta: max(0, endpoint-baseline) per metric. Cumulative counters can
//     appear to decrease after platform-side corrections; a negative
//     contribution must never reduce an aggregate.
//
// Picking the latest capture at each boundary also makes the latest capture
// of a calendar day authoritative when several exist on the same day.
func DeltaForItem(snapshots []*entity.MetricSnapshot, from, to time.Time) (ItemResult, bool) {
	if len(snapshots) == 0 {
		return ItemResult{}, false
	}

	ordered := make([]*entity.MetricSnapshot, len(snapshots))
	copy(ordered, snapshots)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CapturedAt.Before(ordered[j].CapturedAt)
	})

	var baseline, endpoint *entity.MetricSnapshot
	for _, snap := range ordered {
		switch {
		case snap.CapturedAt.Before(from):
			baseline = snap
		case !snap.CapturedAt.After(to):
			endpoint = snap
		}
	}

	if endpoint == nil {
		return ItemResult{}, false
	}

	result := ItemResult{EndpointAt: endpoint.CapturedAt}

	var base entity.MetricTotals
	if baseline != nil {
		base = baseline.Counters
		at := baseline.CapturedAt
		result.BaselineAt = &at
	}

	result.Delta.Views, result.Clamped = clamp(endpoint.Counters.Views, base.Views, result.Clamped)
	result.Delta.Likes, result.Clamped = clamp(endpoint.Counters.Likes, base.Likes, result.Clamped)
	result.Delta.Comments, result.Clamped = clamp(endpoint.Counters.Comments, base.Comments, result.Clamped)
	result.Delta.Shares, result.Clamped = clamp(endpoint.Counters.Shares, base.Shares, result.Clamped)
	result.Delta.Saves, result.Clamped = clamp(endpoint.Counters.Saves, base.Saves, result.Clamped)

	return result, true
}

func clamp(endpoint, baseline int64, alreadyClamped bool) (int64, bool) {
	delta := endpoint - baseline
	if delta < 0 {
		return 0, true
	}

	return delta, alreadyClamped
}

// PartitionByItem groups snapshots by their item key, preserving input order
// inside each group.
func PartitionByItem(snapshots []*entity.MetricSnapshot) map[string][]*entity.MetricSnapshot {
	items := make(map[string][]*entity.MetricSnapshot)
	for _, snap := range snapshots {
		items[snap.ItemKey] = append(items[snap.ItemKey], snap)
	}

	return items
}

// Convert runs DeltaForItem over every item in the snapshot list and sums the
// contributions. Items without an endpoint inside the range are excluded from
// the breakdown. Clamped items are reported as negative-delta diagnostics.
// The breakdown is ordered by item key for deterministic output.
func Convert(platform entity.Platform, snapshots []*entity.MetricSnapshot, from, to time.Time) entity.AccrualResult {
	result := entity.AccrualResult{
		Platform: platform,
		From:     from,
		To:       to,
	}

	items := PartitionByItem(snapshots)
	keys := make([]string, 0, len(items))
	for key := range items {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		itemSnaps := items[key]
		item, ok := DeltaForItem(itemSnaps, from, to)
		if !ok {
			continue
		}

		delta := entity.ItemDelta{
			ItemKey:    key,
			Handle:     itemSnaps[0].Handle,
			Delta:      item.Delta,
			BaselineAt: item.BaselineAt,
			EndpointAt: item.EndpointAt,
			Clamped:    item.Clamped,
		}
		result.Breakdown = append(result.Breakdown, delta)
		result.Totals.Add(item.Delta)

		if item.Clamped {
			result.Diagnostics = append(result.Diagnostics, entity.Diagnostic{
				Kind:     entity.DiagnosticNegativeDelta,
				Platform: platform,
				Handle:   delta.Handle,
				ItemKey:  key,
				Detail:   "cumulative counters decreased inside the range; contribution clamped to zero",
			})
		}
	}

	return result
}
