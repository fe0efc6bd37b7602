// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MetricSnapshot is one immutable capture of cumulative engagement counters
// for a tracked item at an instant. A new capture is always a new row, never
// an update. Counters are non-decreasing under normal conditions, but
// platform corrections and re-scrape jitter can violate that; consumers must
// clamp rather than trust raw differences.
type MetricSnapshot struct {
	ID         uuid.UUID    `json:"id"`          // The Global Unique Identifier (GUID) for the capture row.
	ItemKey    string       `json:"item_key"`    // Post/content ID where available, otherwise the handle itself for account-level totals.
	Handle     string       `json:"handle"`      // Canonical (normalized) handle the item belongs to.
	Platform   Platform     `json:"platform"`    // The platform the counters were read from.
	Counters   MetricTotals `json:"counters"`    // The cumulative counter values at capture time.
	CapturedAt time.Time    `json:"captured_at"` // Instant of the capture (UTC).
}

// MetricTotals holds one value per engagement metric. Used both for
// cumulative counter readings and for computed deltas.
type MetricTotals struct {
	Views    int64 `json:"views"`
	Likes    int64 `json:"likes"`
	Comments int64 `json:"comments"`
	Shares   int64 `json:"shares"`
	Saves    int64 `json:"saves"`
}

// Add accumulates another totals value into the receiver.
func (t *MetricTotals) Add(other MetricTotals) {
	t.Views += other.Views
	t.Likes += other.Likes
	t.Comments += other.Comments
	t.Shares += other.Shares
	t.Saves += other.Saves
}

// IsZero reports whether every counter is zero.
func (t MetricTotals) IsZero() bool {
	return t == MetricTotals{}
}

// MetricWeights configures the composite score used for ranking.
type MetricWeights struct {
	Views    float64 `json:"views" yaml:"views"`
	Likes    float64 `json:"likes" yaml:"likes"`
	Comments float64 `json:"comments" yaml:"comments"`
	Shares   float64 `json:"shares" yaml:"shares"`
	Saves    float64 `json:"saves" yaml:"saves"`
}

// EqualMetricWeights returns the default weighting where every metric counts
// the same.
func EqualMetricWeights() MetricWeights {
	return MetricWeights{Views: 1, Likes: 1, Comments: 1, Shares: 1, Saves: 1}
}

// Score computes the weighted composite total.
func (t MetricTotals) Score(w MetricWeights) float64 {
	return float64(t.Views)*w.Views +
		float64(t.Likes)*w.Likes +
		float64(t.Comments)*w.Comments +
		float64(t.Shares)*w.Shares +
		float64(t.Saves)*w.Saves
}
