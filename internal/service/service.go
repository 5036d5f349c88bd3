// Package service wires internal/txtracker's scheduler into the p2p
// transport layer and a running process: it builds the peer pool from
// config, drives periodic sweeps, and exposes a single Start/Shutdown pair
// the way cmd/arc's StartXxx functions wrap a component for main.go.
package service

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/bsv-blockchain/trackerd/config"
	"github.com/bsv-blockchain/trackerd/internal/p2p"
	"github.com/bsv-blockchain/trackerd/internal/txtracker"
)

// Service hosts the tracker, the peer pool, and the ticker that keeps
// requestable candidates flowing into GETDATA even without fresh INV
// traffic.
type Service struct {
	l   *slog.Logger
	cfg *config.SchedulerConfig

	tracker   *txtracker.Tracker
	peerMgr   *p2p.PeerManager
	scheduler *p2p.Scheduler

	stopCh chan struct{}
	wg     sync.WaitGroup
}

// New builds a Service from cfg, but does not dial any peer or start the
// sweep loop; call Start for that.
func New(logger *slog.Logger, cfg *config.TrackerdConfig) (*Service, error) {
	network, err := config.GetNetwork(cfg.Network)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve network: %w", err)
	}

	schedulerCfg := cfg.Scheduler
	if schedulerCfg == nil {
		return nil, fmt.Errorf("scheduler config is required")
	}

	tracker := txtracker.NewTracker(
		txtracker.WithPeerAnnounceLimit(schedulerCfg.TxAnnounceLimit),
		txtracker.WithMetrics(),
		txtracker.WithTracer(otel.Tracer("trackerd.txtracker")),
	)

	clock := txtracker.SystemClock{}
	sched := p2p.NewScheduler(logger, tracker, clock, schedulerCfg.DefaultRequestTimeout)
	peerMgr := p2p.NewPeerManager(logger, network, p2p.WithRestartUnhealthyPeers(), p2p.WithPeerRemovedHook(sched.PeerDisconnected))

	for _, peerCfg := range cfg.Peers {
		addr, err := peerCfg.GetP2PUrl()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve peer address: %w", err)
		}

		peer := p2p.NewPeer(logger, sched, addr, network)
		if err := peerMgr.AddPeer(peer); err != nil {
			return nil, fmt.Errorf("failed to register peer %s: %w", addr, err)
		}
	}

	return &Service{
		l:         logger,
		cfg:       schedulerCfg,
		tracker:   tracker,
		peerMgr:   peerMgr,
		scheduler: sched,
		stopCh:    make(chan struct{}),
	}, nil
}

// Start connects every configured peer and begins the periodic sweep that
// drains requestable candidates into GETDATA.
func (s *Service) Start() error {
	for _, peer := range s.peerMgr.GetPeers() {
		if !peer.Connect() {
			s.l.Warn("peer failed to connect on startup, will retry via health monitor", slog.String("peer", peer.String()))
		}
	}

	interval := s.cfg.SweepInterval
	if interval <= 0 {
		interval = time.Second
	}

	s.wg.Add(1)
	go s.sweepLoop(interval)

	return nil
}

func (s *Service) sweepLoop(interval time.Duration) {
	defer s.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.scheduler.RequestAll()
		}
	}
}

// Shutdown stops the sweep loop and tears down the peer pool.
func (s *Service) Shutdown() {
	close(s.stopCh)
	s.wg.Wait()
	s.peerMgr.Shutdown()
}

// Tracker exposes the underlying txtracker.Tracker for diagnostics.
func (s *Service) Tracker() *txtracker.Tracker { return s.tracker }
