// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DiagnosticKind classifies a data-quality condition surfaced alongside an
// otherwise successful result. Diagnostics are reported, never thrown.
type DiagnosticKind string

// Known diagnostic kinds.
const (
	// DiagnosticHandleCollision marks a normalized handle claimed by more than
	// one creator. The engine does not arbitrate ownership; operators resolve.
	DiagnosticHandleCollision DiagnosticKind = "handle_collision"
	// DiagnosticNegativeDelta marks an item whose cumulative counters moved
	// backwards inside the range; its contribution was clamped to zero.
	DiagnosticNegativeDelta DiagnosticKind = "negative_delta"
)

// Diagnostic records one data-quality condition observed while computing a
// result.
type Diagnostic struct {
	Kind     DiagnosticKind `json:"kind"`                  // What was observed.
	Platform Platform       `json:"platform"`              // The platform involved.
	Handle   string         `json:"handle,omitempty"`      // The handle involved, when applicable.
	ItemKey  string         `json:"item_key,omitempty"`    // The tracked item involved, when applicable.
	Creators []uuid.UUID    `json:"creators,omitempty"`    // Creators implicated (e.g. both collision claimants).
	Detail   string         `json:"detail,omitempty"`      // Free-form description for operators.
}

// ItemDelta is the incremental contribution of one tracked item within a
// range, together with the baseline/endpoint captures that produced it.
type ItemDelta struct {
	ItemKey    string       `json:"item_key"`              // The tracked item.
	Handle     string       `json:"handle"`                // Canonical handle the item belongs to.
	Delta      MetricTotals `json:"delta"`                 // Clamped per-metric increments.
	BaselineAt *time.Time   `json:"baseline_at,omitempty"` // Capture time of the baseline; nil when no capture predates the range.
	EndpointAt time.Time    `json:"endpoint_at"`           // Capture time of the endpoint.
	Clamped    bool         `json:"clamped"`               // True when at least one counter decreased and was clamped.
}

// AccrualResult is the engine's output for one scope, platform and date
// range. It is a computed view, recomputed per query and never persisted.
type AccrualResult struct {
	Platform    Platform     `json:"platform"`
	From        time.Time    `json:"from"`
	To          time.Time    `json:"to"`
	Totals      MetricTotals `json:"totals"`
	Breakdown   []ItemDelta  `json:"breakdown,omitempty"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// CreatorAccrual is one creator's share of a campaign accrual, used for
// per-participant reporting and ranking.
type CreatorAccrual struct {
	CreatorID uuid.UUID    `json:"creator_id"`
	Name      string       `json:"name,omitempty"`
	Handles   []string     `json:"handles"` // Canonical handles attributed to this creator.
	Totals    MetricTotals `json:"totals"`
}

// CampaignAccrualResult bundles campaign-level totals with the per-creator
// breakdown.
type CampaignAccrualResult struct {
	CampaignID uuid.UUID        `json:"campaign_id"`
	Result     AccrualResult    `json:"result"`
	Creators   []CreatorAccrual `json:"creators,omitempty"`
}

// LeaderboardEntry is one ranked row of a leaderboard view.
type LeaderboardEntry struct {
	Position  int          `json:"position"` // 1-based rank.
	CreatorID uuid.UUID    `json:"creator_id"`
	Name      string       `json:"name,omitempty"`
	Totals    MetricTotals `json:"totals"`
	Score     float64      `json:"score"` // Weighted composite total the ordering is based on.
}
