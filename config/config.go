package config

import (
	"time"

	"go.opentelemetry.io/otel/attribute"
)

// TrackerdConfig is the root configuration for the trackerd service: a
// standalone host for the transaction-announcement request scheduler.
type TrackerdConfig struct {
	LogLevel           string          `json:"logLevel" mapstructure:"logLevel"`
	LogFormat          string          `json:"logFormat" mapstructure:"logFormat"`
	ProfilerAddr       string          `json:"profilerAddr" mapstructure:"profilerAddr"`
	PrometheusEndpoint string          `json:"prometheusEndpoint" mapstructure:"prometheusEndpoint"`
	PrometheusAddr     string          `json:"prometheusAddr" mapstructure:"prometheusAddr"`
	Network            string          `json:"network" mapstructure:"network"`
	Tracing            *TracingConfig  `json:"tracing" mapstructure:"tracing"`
	Peers              []*PeerConfig   `json:"peers" mapstructure:"peers"`
	Scheduler          *SchedulerConfig `json:"scheduler" mapstructure:"scheduler"`
}

type TracingConfig struct {
	DialAddr           string            `json:"dialAddr" mapstructure:"dialAddr"`
	Attributes         map[string]string `json:"attributes" mapstructure:"attributes"`
	KeyValueAttributes []attribute.KeyValue `json:"-" mapstructure:"-"`
}

type PeerConfig struct {
	Host string          `json:"host" mapstructure:"host"`
	Port *PeerPortConfig `json:"port" mapstructure:"port"`
}

type PeerPortConfig struct {
	P2P int `json:"p2p" mapstructure:"p2p"`
}

// SchedulerConfig tunes the txtracker.Tracker entry points that the service
// wires peer announcements through.
type SchedulerConfig struct {
	// TxAnnounceLimit bounds the number of announcements a single peer may
	// have tracked at once, guarding memory per the §5 resource policy.
	TxAnnounceLimit int `json:"txAnnounceLimit" mapstructure:"txAnnounceLimit"`

	// DefaultRequestTimeout is the expiry duration passed to RequestedTx
	// when the service itself issues the request.
	DefaultRequestTimeout time.Duration `json:"defaultRequestTimeout" mapstructure:"defaultRequestTimeout"`

	// SweepInterval is how often the service calls GetRequestable for every
	// peer the scheduler has seen traffic from, turning ready announcements
	// into GETDATA and advancing delayed and expired ones.
	SweepInterval time.Duration `json:"sweepInterval" mapstructure:"sweepInterval"`

	// PreferredPeerBonus is loaded from config but not read by the service:
	// every announcement is handed to the tracker with its arrival time as
	// reqtime, whether or not the announcing peer is preferred.
	PreferredPeerBonus time.Duration `json:"preferredPeerBonus" mapstructure:"preferredPeerBonus"`
}
