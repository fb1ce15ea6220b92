package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Interaction Metrics
var (
	// InteractionsTotal tracks handled interactions by action and result
	InteractionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interactions_total",
			Help: "Total interactions handled by action and result (handled/validation_error/unauthorized/config_error/error)",
		},
		[]string{"action", "result"},
	)

	// SuggestionsPostedTotal tracks posted suggestions by anonymity
	SuggestionsPostedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "suggestions_posted_total",
			Help: "Total suggestions posted by anonymity (named/anonymous)",
		},
		[]string{"anonymity"},
	)

	// VotesCastTotal tracks vote button clicks by direction
	VotesCastTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "votes_cast_total",
			Help: "Total vote button clicks by direction (up/down)",
		},
		[]string{"direction"},
	)
)

// Best-Effort Rendering Metrics
var (
	// ControlRefreshFailures tracks vote control edits that could not be applied
	ControlRefreshFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "control_refresh_failures_total",
			Help: "Vote control edits that could not be applied (vote state already recorded)",
		},
	)

	// PanelMessagesDeleted tracks stale panels removed during reconciliation
	PanelMessagesDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "panel_messages_deleted_total",
			Help: "Stale submission panels deleted during startup reconciliation",
		},
	)

	// NameResolutionFailures tracks voter IDs that could not be resolved to names
	NameResolutionFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "name_resolution_failures_total",
			Help: "Voter identifiers that could not be resolved to a display name",
		},
	)
)

// Build Information Metrics
var (
	// BuildInfo is a gauge that always returns 1, with build metadata as labels
	BuildInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "build_info",
			Help: "Build information with version, commit, build_time, and go_version labels (value is always 1)",
		},
		[]string{"version", "commit", "build_time", "go_version"},
	)
)

// HTTP Request Metrics
// Note: the ops server exposes the default registry via promhttp; no custom
// HTTP metrics are registered here.
