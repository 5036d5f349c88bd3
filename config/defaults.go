package config

import "time"

func getDefaultTrackerdConfig() *TrackerdConfig {
	return &TrackerdConfig{
		LogLevel:           "INFO",
		LogFormat:           "tint",
		PrometheusEndpoint:  "/metrics",
		PrometheusAddr:      ":9092",
		Network:             "mainnet",
		Scheduler:           getDefaultSchedulerConfig(),
	}
}

func getDefaultSchedulerConfig() *SchedulerConfig {
	return &SchedulerConfig{
		TxAnnounceLimit:       4096,
		DefaultRequestTimeout: 60 * time.Second,
		SweepInterval:         1 * time.Second,
		PreferredPeerBonus:    2 * time.Second,
	}
}
