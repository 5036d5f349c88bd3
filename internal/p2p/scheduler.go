package p2p

import (
	"log/slog"
	"sync"
	"time"

	"github.com/libsv/go-p2p/wire"

	"github.com/bsv-blockchain/trackerd/internal/txtracker"
)

// Scheduler adapts internal/txtracker.Tracker to this package's peers: it
// assigns every peer it sees a txtracker.PeerId, translates inbound
// INV/TX/NOTFOUND/REJECT into Tracker calls, and turns GetRequestable
// results into outbound GETDATA, one peer at a time because the tracker
// has already chosen which peer each hash should be requested from. The
// wire-event dispatch mirrors internal/metamorph's PeerMsgHandler.
//
// Every Peer runs its own read loop and calls OnReceive from its own
// goroutine, but txtracker.Tracker is not safe for concurrent use, so mu
// serializes every Tracker call the same way PeerManager's mutex
// serializes access to its peer slice.
type Scheduler struct {
	l       *slog.Logger
	tracker *txtracker.Tracker
	clock   txtracker.Clock

	expiryAfter time.Duration

	mu     sync.Mutex
	ids    map[PeerI]txtracker.PeerId
	peers  map[txtracker.PeerId]PeerI
	nextID uint64
}

var _ MessageHandlerI = (*Scheduler)(nil)

// NewScheduler builds a Scheduler driving tracker from clock. expiryAfter
// bounds how long a GETDATA is given to be answered before it is eligible
// to be requested from another peer again.
func NewScheduler(logger *slog.Logger, tracker *txtracker.Tracker, clock txtracker.Clock, expiryAfter time.Duration) *Scheduler {
	return &Scheduler{
		l:           logger,
		tracker:     tracker,
		clock:       clock,
		expiryAfter: expiryAfter,
		ids:         make(map[PeerI]txtracker.PeerId),
		peers:       make(map[txtracker.PeerId]PeerI),
	}
}

// peerID returns peer's assigned PeerId, assigning a fresh one on first
// sight. Callers must already hold s.mu.
func (s *Scheduler) peerID(peer PeerI) txtracker.PeerId {
	if id, ok := s.ids[peer]; ok {
		return id
	}

	s.nextID++
	id := txtracker.PeerId(s.nextID)
	s.ids[peer] = id
	s.peers[id] = peer
	return id
}

// PeerDisconnected forgets peer's tracked announcements and releases its
// assigned PeerId. Register it with PeerManager via WithPeerRemovedHook so
// it runs automatically whenever RemovePeer drops a peer.
func (s *Scheduler) PeerDisconnected(peer PeerI) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.ids[peer]
	if !ok {
		return
	}
	delete(s.ids, peer)
	delete(s.peers, id)
	s.tracker.DisconnectedPeer(id)
}

// OnReceive handles incoming messages depending on command type.
func (s *Scheduler) OnReceive(msg wire.Message, peer PeerI) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch m := msg.(type) {
	case *wire.MsgInv:
		s.handleInv(m, peer)
	case *wire.MsgTx:
		s.tracker.ReceivedResponse(s.peerID(peer), m.TxHash())
	case *wire.MsgNotFound:
		s.handleNotFound(m, peer)
	case *wire.MsgReject:
		s.tracker.ReceivedResponse(s.peerID(peer), m.Hash)
	default:
		// ignore other messages
	}
}

// OnSend handles outgoing messages depending on command type. The
// scheduler itself drives GETDATA directly via RequestFromPeer, so there
// is nothing to observe on the send path.
func (s *Scheduler) OnSend(wire.Message, PeerI) {}

// handleInv requires s.mu held.
func (s *Scheduler) handleInv(msg *wire.MsgInv, peer PeerI) {
	id := s.peerID(peer)
	preferred := PeerPreference(peer)
	now := s.clock.Now()

	for _, iv := range msg.InvList {
		if iv.Type != wire.InvTypeTx {
			continue
		}
		gtxid := txtracker.GenTxid{Variant: txtracker.InvVariantStandard, Hash: iv.Hash}
		s.tracker.ReceivedInv(id, gtxid, preferred, now)
	}
}

// handleNotFound requires s.mu held.
func (s *Scheduler) handleNotFound(msg *wire.MsgNotFound, peer PeerI) {
	id := s.peerID(peer)
	for _, iv := range msg.InvList {
		if iv.Type != wire.InvTypeTx {
			continue
		}
		s.tracker.ReceivedResponse(id, iv.Hash)
	}
}

// RequestFromPeer sweeps peer's requestable candidates forward to now and
// sends a single GETDATA covering all of them, recording each as REQUESTED
// with an expiry of now+expiryAfter.
func (s *Scheduler) RequestFromPeer(peer PeerI) {
	getMsg := s.buildGetData(peer)
	if getMsg == nil {
		return
	}
	peer.WriteMsg(getMsg)
}

func (s *Scheduler) buildGetData(peer PeerI) *wire.MsgGetData {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.peerID(peer)
	now := s.clock.Now()

	gtxids := s.tracker.GetRequestable(id, now)
	if len(gtxids) == 0 {
		return nil
	}

	getMsg := wire.NewMsgGetDataSizeHint(uint(len(gtxids)))
	expiry := now + txtracker.Time(s.expiryAfter.Microseconds())

	for _, gtxid := range gtxids {
		hash := gtxid.Hash
		iv := wire.NewInvVect(wire.InvTypeTx, &hash)
		if err := getMsg.AddInvVect(iv); err != nil {
			s.l.Warn("dropping oversized getdata batch", slog.String("peer", peer.String()), slog.String("err", err.Error()))
			break
		}
		s.tracker.RequestedTx(id, gtxid.Hash, expiry)
	}

	return getMsg
}

// RequestAll drives RequestFromPeer for every peer this Scheduler has seen
// traffic from. A network driver calls this on a fixed interval to keep
// candidates flowing into requests even absent fresh INV traffic.
func (s *Scheduler) RequestAll() {
	s.mu.Lock()
	peers := make([]PeerI, 0, len(s.peers))
	for _, p := range s.peers {
		peers = append(peers, p)
	}
	s.mu.Unlock()

	for _, p := range peers {
		s.RequestFromPeer(p)
	}
}
